package gcpstorage

import (
	"context"
	"fmt"
	"time"

	"github.com/elC0mpa/storage-doctor/model"
	"google.golang.org/api/option"
	storage "google.golang.org/api/storage/v1"
)

func NewService(ctx context.Context, projectID string) (*service, error) {
	storageClient, err := storage.NewService(ctx, option.WithScopes(
		storage.DevstorageReadOnlyScope,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &service{
		projectID:     projectID,
		storageClient: storageClient,
	}, nil
}

// ListAccounts implements service.StorageLister
// Each GCS bucket is its own top-level store.
func (s *service) ListAccounts(ctx context.Context) ([]model.StorageAccount, error) {
	var accounts []model.StorageAccount

	pageToken := ""
	for {
		call := s.storageClient.Buckets.List(s.projectID).Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list buckets in project %s: %w", s.projectID, err)
		}

		for _, bucket := range resp.Items {
			accounts = append(accounts, model.StorageAccount{
				Name:     bucket.Name,
				Location: bucket.Location,
			})
		}

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	return accounts, nil
}

// ListContainers implements service.StorageLister
// GCS has no grouping level between bucket and object, so each bucket maps
// to a single container carrying the bucket's name.
func (s *service) ListContainers(ctx context.Context, account model.StorageAccount) ([]model.Container, error) {
	return []model.Container{{Name: account.Name, Account: account}}, nil
}

// ListBlobs implements service.StorageLister
func (s *service) ListBlobs(ctx context.Context, container model.Container) ([]model.BlobRef, error) {
	var blobs []model.BlobRef

	pageToken := ""
	for {
		call := s.storageClient.Objects.List(container.Name).Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list objects in %s: %w", container.Name, err)
		}

		for _, object := range resp.Items {
			updated, err := time.Parse(time.RFC3339, object.Updated)
			if err != nil {
				// Objects without a parsable timestamp cannot count as
				// staleness evidence either way
				continue
			}

			blobs = append(blobs, model.BlobRef{
				Name:         object.Name,
				LastModified: updated,
			})
		}

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	return blobs, nil
}
