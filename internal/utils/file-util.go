package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// GetLatestFile picks the newest regular file whose name starts with
// filePrefix from a directory listing.
func GetLatestFile(files []os.FileInfo, filePrefix string) (os.FileInfo, error) {
	var latestFile os.FileInfo
	var latestModTime time.Time

	for _, file := range files {
		if file == nil || file.IsDir() || !strings.HasPrefix(file.Name(), filePrefix) {
			continue
		}
		if latestFile == nil || file.ModTime().After(latestModTime) {
			latestFile = file
			latestModTime = file.ModTime()
		}
	}

	if latestFile == nil {
		return nil, fmt.Errorf("no file with prefix %q", filePrefix)
	}

	return latestFile, nil
}

// FindLatestFileWithPrefix resolves the newest matching file in a local
// directory to its full path.
func FindLatestFileWithPrefix(dir, filePrefix string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read dir %s: %w", dir, err)
	}

	infos := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		infos = append(infos, info)
	}

	latest, err := GetLatestFile(infos, filePrefix)
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, latest.Name()), nil
}
