package export

import "github.com/elC0mpa/storage-doctor/model"

// UnusedAccountsFile is the fixed name of the CSV report written into the
// invocation's working directory.
const UnusedAccountsFile = "UnusedStorageAccounts.csv"

type service struct {
	dir string
}

type ExportService interface {
	ExportUnusedAccounts(result *model.ScanResult) (string, error)
}
