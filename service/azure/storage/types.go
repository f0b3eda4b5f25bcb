package azurestorage

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/elC0mpa/storage-doctor/model"
)

type service struct {
	resourceGroup  string
	accountsClient *armstorage.AccountsClient
	credential     *Credential

	// One data-plane client per storage account, created lazily
	blobClients map[string]*azblob.Client
}

type StorageService interface {
	// Implements service.StorageLister
	ListAccounts(ctx context.Context) ([]model.StorageAccount, error)
	ListContainers(ctx context.Context, account model.StorageAccount) ([]model.Container, error)
	ListBlobs(ctx context.Context, container model.Container) ([]model.BlobRef, error)
}

// Credential is passed to allow reuse across services
type Credential = azidentity.DefaultAzureCredential
