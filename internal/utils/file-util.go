package utils

import (
	"fmt"
	"os"
	"strings"
	"time"
)

func GetLatestFile(files []os.FileInfo, filePrefix string) (os.FileInfo, error) {
	var latestFile os.FileInfo
	var latestModTime time.Time

	for _, file := range files {
		if file.IsDir() || !strings.HasPrefix(file.Name(), filePrefix) {
			continue
		}

		if latestFile == nil || file.ModTime().After(latestModTime) {
			latestFile = file
			latestModTime = file.ModTime()
		}
	}

	if latestFile == nil {
		return nil, fmt.Errorf("no file with prefix %s", filePrefix)
	}

	return latestFile, nil
}
