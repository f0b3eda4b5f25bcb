package model

import "time"

// StorageAccount represents a top-level object store: an Azure storage
// account, an S3 bucket, or a GCS bucket depending on the provider.
type StorageAccount struct {
	Name     string
	Location string
	// BlobEndpoint is the data-plane endpoint used to enumerate the
	// account's containers. Empty for providers that address stores by name.
	BlobEndpoint string
}

// Container groups blobs within a StorageAccount. Providers without a
// container level map each store to a single container.
type Container struct {
	Name    string
	Account StorageAccount
}

// BlobRef is the leaf unit of staleness evidence.
type BlobRef struct {
	Name         string
	LastModified time.Time
}

// ScanProgress is emitted after each account has been evaluated.
type ScanProgress struct {
	Processed int
	Total     int
	Percent   float64
}

// ScanResult aggregates a full scan run. UnusedAccounts preserves
// discovery order; SampledBlobs holds the last blob observed per account
// and is diagnostic only (accounts with zero blobs contribute nothing).
type ScanResult struct {
	UnusedAccounts []StorageAccount
	SampledBlobs   []BlobRef
	ProcessedCount int
	TotalCount     int
}
