package awss3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/elC0mpa/storage-doctor/model"
)

type service struct {
	client *s3.Client
}

type S3Service interface {
	// Implements service.StorageLister
	ListAccounts(ctx context.Context) ([]model.StorageAccount, error)
	ListContainers(ctx context.Context, account model.StorageAccount) ([]model.Container, error)
	ListBlobs(ctx context.Context, container model.Container) ([]model.BlobRef, error)
}
