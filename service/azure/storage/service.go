package azurestorage

import (
	"context"
	"errors"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/elC0mpa/storage-doctor/model"
)

func NewService(subscriptionID, resourceGroup string, credential *Credential) (*service, error) {
	accountsClient, err := armstorage.NewAccountsClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage accounts client: %w", err)
	}

	return &service{
		resourceGroup:  resourceGroup,
		accountsClient: accountsClient,
		credential:     credential,
		blobClients:    map[string]*azblob.Client{},
	}, nil
}

// ListAccounts implements service.StorageLister
// Returns the storage accounts of the configured resource group, with the
// primary blob endpoint carried along for container enumeration.
func (s *service) ListAccounts(ctx context.Context) ([]model.StorageAccount, error) {
	var accounts []model.StorageAccount

	pager := s.accountsClient.NewListByResourceGroupPager(s.resourceGroup, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			var respErr *azcore.ResponseError
			if errors.As(err, &respErr) && respErr.ErrorCode == "ResourceGroupNotFound" {
				return nil, fmt.Errorf("resource group %s not found: %w", s.resourceGroup, err)
			}
			return nil, fmt.Errorf("failed to list storage accounts in %s: %w", s.resourceGroup, err)
		}

		for _, account := range page.Value {
			if account.Name == nil {
				continue
			}

			location := ""
			if account.Location != nil {
				location = *account.Location
			}

			endpoint := ""
			if account.Properties != nil &&
				account.Properties.PrimaryEndpoints != nil &&
				account.Properties.PrimaryEndpoints.Blob != nil {
				endpoint = *account.Properties.PrimaryEndpoints.Blob
			}

			accounts = append(accounts, model.StorageAccount{
				Name:         *account.Name,
				Location:     location,
				BlobEndpoint: endpoint,
			})
		}
	}

	return accounts, nil
}

// ListContainers implements service.StorageLister
func (s *service) ListContainers(ctx context.Context, account model.StorageAccount) ([]model.Container, error) {
	client, err := s.blobClient(account)
	if err != nil {
		return nil, err
	}

	var containers []model.Container

	pager := client.NewListContainersPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list containers for %s: %w", account.Name, err)
		}

		for _, item := range page.ContainerItems {
			if item.Name == nil {
				continue
			}

			containers = append(containers, model.Container{
				Name:    *item.Name,
				Account: account,
			})
		}
	}

	return containers, nil
}

// ListBlobs implements service.StorageLister
func (s *service) ListBlobs(ctx context.Context, container model.Container) ([]model.BlobRef, error) {
	client, err := s.blobClient(container.Account)
	if err != nil {
		return nil, err
	}

	var blobs []model.BlobRef

	pager := client.NewListBlobsFlatPager(container.Name, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list blobs in %s/%s: %w", container.Account.Name, container.Name, err)
		}

		for _, item := range page.Segment.BlobItems {
			if item.Name == nil || item.Properties == nil || item.Properties.LastModified == nil {
				continue
			}

			blobs = append(blobs, model.BlobRef{
				Name:         *item.Name,
				LastModified: *item.Properties.LastModified,
			})
		}
	}

	return blobs, nil
}

func (s *service) blobClient(account model.StorageAccount) (*azblob.Client, error) {
	if client, ok := s.blobClients[account.Name]; ok {
		return client, nil
	}

	endpoint := account.BlobEndpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.blob.core.windows.net/", account.Name)
	}

	client, err := azblob.NewClient(endpoint, s.credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client for %s: %w", account.Name, err)
	}

	s.blobClients[account.Name] = client
	return client, nil
}
