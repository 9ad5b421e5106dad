package stockPipelineService

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

func FindLatestFileWithPrefix(dir string, prefix string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("unable to read directory: %w", err)
	}

	var latestFile string
	var latestModTime time.Time

	for _, file := range files {
		if file.IsDir() || !strings.HasPrefix(file.Name(), prefix) {
			continue
		}

		info, err := file.Info()
		if err != nil {
			return "", fmt.Errorf("unable to stat file: %w", err)
		}

		if info.ModTime().After(latestModTime) {
			latestModTime = info.ModTime()
			latestFile = filepath.Join(dir, file.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no files found with prefix %s in %s", prefix, dir)
	}

	return latestFile, nil
}

// ReadTabFile reads a tab-separated SAP extract into header-keyed rows. The
// first line carries the column names.
func ReadTabFile(filePath string) ([]map[string]interface{}, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("unable to open file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	if !scanner.Scan() {
		return nil, errors.New("no data found in the stock file")
	}

	headers := strings.Split(scanner.Text(), "\t")
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
		if headers[i] == "" {
			headers[i] = fmt.Sprintf("Column%d", i+1)
		}
	}

	var results []map[string]interface{}

	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "\t")

		record := make(map[string]interface{})
		for j, columnName := range headers {
			if j >= len(fields) {
				record[columnName] = ""
				continue
			}
			record[columnName] = strings.TrimSpace(fields[j])
		}

		results = append(results, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading stock file: %w", err)
	}

	return results, nil
}
