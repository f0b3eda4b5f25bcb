package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/elC0mpa/storage-doctor/model"
)

// NewService writes reports into dir, defaulting to the working directory.
func NewService(dir string) *service {
	if dir == "" {
		dir = "."
	}
	return &service{dir: dir}
}

// ExportUnusedAccounts writes one CSV row per unused account, preserving
// discovery order, and returns the absolute path of the file. The write
// happens in a single step after the scan; a failure here never
// invalidates the console report.
func (s *service) ExportUnusedAccounts(result *model.ScanResult) (string, error) {
	path := filepath.Join(s.dir, UnusedAccountsFile)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write([]string{"StorageAccountName", "Location"}); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, account := range result.UnusedAccounts {
		if err := writer.Write([]string{account.Name, account.Location}); err != nil {
			return "", fmt.Errorf("failed to write CSV row for %s: %w", account.Name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV file: %w", err)
	}

	return filepath.Abs(path)
}
