package fileio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"
	"github.com/vbauerster/mpb/v4"
	"github.com/vbauerster/mpb/v4/decor"

	"github.com/leocov-dev/packmedic/core"
)

const (
	backupDirName    = "backup"
	manifestFileName = "manifest.toml"
	backupTimeLayout = "20060102-150405"

	// CurrentBackupFormat is written into every manifest; readers accept
	// the whole 1.x range.
	CurrentBackupFormat = "packmedic-backup:1.0.0"
)

var backupFormatConstraintAccepted = mustParseConstraint("~1")

func mustParseConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}

// BackupManifest describes one backup directory: when it was taken and a
// hash per copied file, keyed by the file's slash path relative to the pack
// root.
type BackupManifest struct {
	Format     string            `toml:"format"`
	Created    time.Time         `toml:"created"`
	HashFormat string            `toml:"hash-format"`
	Files      map[string]string `toml:"files"`
}

// BackupInfo pairs a backup directory name with its parsed manifest.
type BackupInfo struct {
	Dir      string
	Manifest BackupManifest
}

// BackupTree copies the assets subtree and the metadata file into
// <root>/backup/<timestamp>/ and writes a manifest next to them. Every
// failure here is fatal for the run: mutating a pack that could not be
// backed up is not acceptable.
func BackupTree(root, metaFile, hashFormat string) (string, error) {
	if _, err := core.GetHashImpl(hashFormat); err != nil {
		return "", core.Fatalf("backup failed: %v", err)
	}

	files, err := listFiles(filepath.Join(root, "assets"))
	if err != nil {
		return "", core.Fatalf("backup failed: %v", err)
	}
	metaPath := filepath.Join(root, metaFile)
	if FileExists(metaPath) {
		files = append(files, metaPath)
	}

	timestamp := time.Now().Format(backupTimeLayout)
	backupDir := filepath.Join(root, backupDirName, timestamp)

	progressContainer := mpb.New(mpb.PopCompletedMode())
	bar := progressContainer.AddBar(int64(len(files)),
		mpb.PrependDecorators(
			decor.Name("Backing up..."),
			decor.CountersNoUnit(" %d / %d", decor.WCSyncSpace),
		),
		mpb.AppendDecorators(decor.Percentage(decor.WCSyncSpace)),
	)

	manifest := BackupManifest{
		Format:     CurrentBackupFormat,
		Created:    time.Now(),
		HashFormat: hashFormat,
		Files:      make(map[string]string, len(files)),
	}
	for _, path := range files {
		rel, err := core.RelSlashPath(root, path)
		if err != nil {
			return "", core.Fatalf("backup failed: %v", err)
		}
		hasher, err := core.GetHashImpl(hashFormat)
		if err != nil {
			return "", core.Fatalf("backup failed: %v", err)
		}
		if err := CopyFile(path, filepath.Join(backupDir, filepath.FromSlash(rel)), hasher); err != nil {
			return "", core.Fatalf("backup of %s failed: %v", rel, err)
		}
		manifest.Files[rel] = hasher.String()
		bar.Increment()
	}
	progressContainer.Wait()

	if err := writeManifest(filepath.Join(backupDir, manifestFileName), manifest); err != nil {
		return "", core.Fatalf("backup manifest could not be written: %v", err)
	}
	return backupDir, nil
}

func writeManifest(path string, manifest BackupManifest) error {
	data, err := toml.Marshal(manifest)
	if err != nil {
		return err
	}
	f, err := CreateFile(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(data)
	return err
}

// ListBackups reads the manifests under <root>/backup, newest last.
// Directories without a readable, version-compatible manifest are skipped
// with a note.
func ListBackups(root string) ([]BackupInfo, error) {
	entries, err := os.ReadDir(filepath.Join(root, backupDirName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var backups []BackupInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		manifest, err := loadManifest(filepath.Join(root, backupDirName, entry.Name(), manifestFileName))
		if err != nil {
			fmt.Printf("Skipping backup %s: %v\n", entry.Name(), err)
			continue
		}
		backups = append(backups, BackupInfo{Dir: entry.Name(), Manifest: manifest})
	}
	return backups, nil
}

func loadManifest(path string) (BackupManifest, error) {
	var manifest BackupManifest
	raw, err := os.ReadFile(path)
	if err != nil {
		return manifest, err
	}
	if err := toml.Unmarshal(raw, &manifest); err != nil {
		return manifest, err
	}
	if !strings.HasPrefix(manifest.Format, "packmedic-backup:") {
		return manifest, errors.New("format field does not indicate a packmedic backup")
	}
	ver, err := semver.StrictNewVersion(strings.TrimPrefix(manifest.Format, "packmedic-backup:"))
	if err != nil {
		return manifest, fmt.Errorf("format field is not valid semver: %w", err)
	}
	if !backupFormatConstraintAccepted.Check(ver) {
		return manifest, errors.New("backup was made by an incompatible version of this tool")
	}
	return manifest, nil
}
