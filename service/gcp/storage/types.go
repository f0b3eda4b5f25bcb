package gcpstorage

import (
	"context"

	"github.com/elC0mpa/storage-doctor/model"
	storage "google.golang.org/api/storage/v1"
)

type service struct {
	projectID     string
	storageClient *storage.Service
}

type StorageService interface {
	// Implements service.StorageLister
	ListAccounts(ctx context.Context) ([]model.StorageAccount, error)
	ListContainers(ctx context.Context, account model.StorageAccount) ([]model.Container, error)
	ListBlobs(ctx context.Context, container model.Container) ([]model.BlobRef, error)
}
