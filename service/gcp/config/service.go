package gcpconfig

import (
	"context"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/cloudresourcemanager/v1"
	storage "google.golang.org/api/storage/v1"
)

func NewService(projectID string) *service {
	return &service{
		projectID: projectID,
	}
}

// GetCredentials resolves Application Default Credentials, which covers
// GOOGLE_APPLICATION_CREDENTIALS, gcloud auth application-default login,
// and service accounts on GCE/Cloud Run. Called before any scan so a
// missing credential fails fast.
func (s *service) GetCredentials(ctx context.Context) (*google.Credentials, error) {
	return google.FindDefaultCredentials(ctx,
		cloudresourcemanager.CloudPlatformReadOnlyScope,
		storage.DevstorageReadOnlyScope,
	)
}

func (s *service) GetProjectID() string {
	return s.projectID
}
