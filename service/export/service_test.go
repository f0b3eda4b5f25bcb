package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/elC0mpa/storage-doctor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportUnusedAccountsWritesRowsInOrder(t *testing.T) {
	dir := t.TempDir()
	s := NewService(dir)

	result := &model.ScanResult{
		UnusedAccounts: []model.StorageAccount{
			{Name: "stale-logs", Location: "westeurope"},
			{Name: "old-backups", Location: "northeurope"},
			{Name: "forgotten", Location: "westeurope"},
		},
	}

	path, err := s.ExportUnusedAccounts(result)

	require.NoError(t, err)
	assert.Equal(t, UnusedAccountsFile, filepath.Base(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"StorageAccountName,Location\n"+
			"stale-logs,westeurope\n"+
			"old-backups,northeurope\n"+
			"forgotten,westeurope\n",
		string(content))
}

func TestExportUnusedAccountsEmptyResultWritesHeaderOnly(t *testing.T) {
	dir := t.TempDir()
	s := NewService(dir)

	path, err := s.ExportUnusedAccounts(&model.ScanResult{})

	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "StorageAccountName,Location\n", string(content))
}

func TestExportUnusedAccountsUnwritableDir(t *testing.T) {
	s := NewService(filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := s.ExportUnusedAccounts(&model.ScanResult{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create CSV file")
}
