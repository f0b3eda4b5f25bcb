package service

import (
	"context"

	"github.com/elC0mpa/storage-doctor/model"
)

// IdentityService provides cloud account/project identity information
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

// StorageLister enumerates a provider's two-level store hierarchy:
// storage accounts (or buckets), their containers, and the blobs inside.
// Implementations must yield finite, restartable sequences.
type StorageLister interface {
	ListAccounts(ctx context.Context) ([]model.StorageAccount, error)
	ListContainers(ctx context.Context, account model.StorageAccount) ([]model.Container, error)
	ListBlobs(ctx context.Context, container model.Container) ([]model.BlobRef, error)
}

// ScannerService walks a StorageLister and reports the accounts whose
// blobs were all last modified before the staleness threshold
type ScannerService interface {
	Scan(ctx context.Context, daysAgo int) (*model.ScanResult, error)
}

// ExportService persists a scan result outside the console report
type ExportService interface {
	ExportUnusedAccounts(result *model.ScanResult) (string, error)
}
