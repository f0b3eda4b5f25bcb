package scanner

import (
	"context"
	"time"

	"github.com/elC0mpa/storage-doctor/model"
	"github.com/elC0mpa/storage-doctor/service"
)

const (
	// containerListAttempts bounds the retries on container enumeration;
	// after the last attempt the account degrades to zero containers.
	containerListAttempts = 3
	retryBaseDelay        = 2 * time.Second
)

type scanService struct {
	lister     service.StorageLister
	onProgress func(model.ScanProgress)
	logf       func(format string, args ...any)

	// Overridable in tests
	now   func() time.Time
	sleep func(time.Duration)
}

type ScannerService interface {
	Scan(ctx context.Context, daysAgo int) (*model.ScanResult, error)
}
