package fileio

import (
	"io"
	"os"
	"path/filepath"
)

func CreateFile(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		err2 := os.MkdirAll(filepath.Dir(path), os.ModePerm)
		if err2 == nil {
			f, err = os.Create(path)
		}
		if err != nil {
			return nil, err
		}
	}

	return f, nil
}

func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// CopyFile copies src to dst, creating parent directories on demand, and
// feeds the bytes through extra writers (hashers) when given.
func CopyFile(src, dst string, extra ...io.Writer) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := CreateFile(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	writers := append([]io.Writer{out}, extra...)
	if _, err := io.Copy(io.MultiWriter(writers...), in); err != nil {
		return err
	}
	return out.Sync()
}

// listFiles snapshots every regular file under dir, sorted by Walk order.
func listFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
