package awss3

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/elC0mpa/storage-doctor/model"
)

func NewService(awsconfig aws.Config) *service {
	client := s3.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

// ListAccounts implements service.StorageLister
// Each S3 bucket is its own top-level store; Location is the bucket region.
func (s *service) ListAccounts(ctx context.Context) ([]model.StorageAccount, error) {
	output, err := s.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}

	accounts := make([]model.StorageAccount, 0, len(output.Buckets))
	for _, bucket := range output.Buckets {
		name := aws.ToString(bucket.Name)
		accounts = append(accounts, model.StorageAccount{
			Name:     name,
			Location: s.bucketRegion(ctx, name),
		})
	}

	return accounts, nil
}

// ListContainers implements service.StorageLister
// S3 has no grouping level between bucket and object, so each bucket maps
// to a single container carrying the bucket's name.
func (s *service) ListContainers(ctx context.Context, account model.StorageAccount) ([]model.Container, error) {
	return []model.Container{{Name: account.Name, Account: account}}, nil
}

// ListBlobs implements service.StorageLister
func (s *service) ListBlobs(ctx context.Context, container model.Container) ([]model.BlobRef, error) {
	var blobs []model.BlobRef

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(container.Name),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects in %s: %w", container.Name, err)
		}

		for _, object := range page.Contents {
			if object.LastModified == nil {
				continue
			}

			blobs = append(blobs, model.BlobRef{
				Name:         aws.ToString(object.Key),
				LastModified: *object.LastModified,
			})
		}
	}

	return blobs, nil
}

func (s *service) bucketRegion(ctx context.Context, bucket string) string {
	output, err := s.client.GetBucketLocation(ctx, &s3.GetBucketLocationInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return ""
	}

	// The legacy API reports us-east-1 as an empty location constraint
	region := string(output.LocationConstraint)
	if region == "" {
		region = "us-east-1"
	}
	return region
}
