package shared

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// GetPackDir resolves the configured pack root to an absolute path.
func GetPackDir() (string, error) {
	packDir, err := filepath.Abs(viper.GetString("dir"))
	if err != nil {
		return "", err
	}
	return packDir, nil
}

// GetMetaPath resolves the pack root and the metadata file path inside it.
func GetMetaPath() (string, string, error) {
	packDir, err := GetPackDir()
	if err != nil {
		return "", "", err
	}
	return packDir, filepath.Join(packDir, viper.GetString("meta-file")), nil
}
