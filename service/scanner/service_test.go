package scanner

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/elC0mpa/storage-doctor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scanStart = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// fakeLister serves a fixed hierarchy and can be programmed to fail
// container or blob listings a number of times per account/container.
type fakeLister struct {
	accounts   []model.StorageAccount
	containers map[string][]model.Container
	blobs      map[string][]model.BlobRef

	accountsErr    error
	containerFails map[string]int
	blobFails      map[string]int
	containerCalls map[string]int
	blobCalls      map[string]int
}

func newFakeLister() *fakeLister {
	return &fakeLister{
		containers:     map[string][]model.Container{},
		blobs:          map[string][]model.BlobRef{},
		containerFails: map[string]int{},
		blobFails:      map[string]int{},
		containerCalls: map[string]int{},
		blobCalls:      map[string]int{},
	}
}

func (f *fakeLister) addAccount(name string, location string) model.StorageAccount {
	account := model.StorageAccount{Name: name, Location: location}
	f.accounts = append(f.accounts, account)
	return account
}

func (f *fakeLister) addContainer(account model.StorageAccount, name string, blobs ...model.BlobRef) {
	container := model.Container{Name: name, Account: account}
	f.containers[account.Name] = append(f.containers[account.Name], container)
	f.blobs[account.Name+"/"+name] = blobs
}

func (f *fakeLister) ListAccounts(ctx context.Context) ([]model.StorageAccount, error) {
	if f.accountsErr != nil {
		return nil, f.accountsErr
	}
	return f.accounts, nil
}

func (f *fakeLister) ListContainers(ctx context.Context, account model.StorageAccount) ([]model.Container, error) {
	f.containerCalls[account.Name]++
	if f.containerFails[account.Name] > 0 {
		f.containerFails[account.Name]--
		return nil, errors.New("transient enumeration failure")
	}
	return f.containers[account.Name], nil
}

func (f *fakeLister) ListBlobs(ctx context.Context, container model.Container) ([]model.BlobRef, error) {
	key := container.Account.Name + "/" + container.Name
	f.blobCalls[key]++
	if f.blobFails[key] > 0 {
		f.blobFails[key]--
		return nil, errors.New("blob listing failure")
	}
	return f.blobs[key], nil
}

// newTestService pins the clock to scanStart and records sleeps instead
// of blocking.
func newTestService(lister *fakeLister, onProgress func(model.ScanProgress)) (*scanService, *[]time.Duration) {
	sleeps := &[]time.Duration{}
	s := NewService(lister, onProgress, nil)
	s.now = func() time.Time { return scanStart }
	s.sleep = func(d time.Duration) { *sleeps = append(*sleeps, d) }
	return s, sleeps
}

func blobModified(name string, age time.Duration) model.BlobRef {
	return model.BlobRef{Name: name, LastModified: scanStart.Add(-age)}
}

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

func TestScanProcessedCountMatchesTotal(t *testing.T) {
	lister := newFakeLister()
	for i := 0; i < 5; i++ {
		account := lister.addAccount(fmt.Sprintf("account%d", i), "westeurope")
		lister.addContainer(account, "data", blobModified("doc", days(200)))
	}

	s, _ := newTestService(lister, nil)
	result, err := s.Scan(context.Background(), 90)

	require.NoError(t, err)
	assert.Equal(t, 5, result.TotalCount)
	assert.Equal(t, result.TotalCount, result.ProcessedCount)
}

func TestScanFreshBlobExcludesAccount(t *testing.T) {
	tests := []struct {
		name  string
		blobs []model.BlobRef
	}{
		{
			name:  "fresh blob first",
			blobs: []model.BlobRef{blobModified("fresh", days(10)), blobModified("stale", days(400))},
		},
		{
			name:  "fresh blob last",
			blobs: []model.BlobRef{blobModified("stale", days(400)), blobModified("fresh", days(10))},
		},
		{
			name:  "only fresh blobs",
			blobs: []model.BlobRef{blobModified("fresh", days(1))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lister := newFakeLister()
			account := lister.addAccount("active", "westeurope")
			lister.addContainer(account, "data", tt.blobs...)

			s, _ := newTestService(lister, nil)
			result, err := s.Scan(context.Background(), 90)

			require.NoError(t, err)
			assert.Empty(t, result.UnusedAccounts)
		})
	}
}

func TestScanAccountsWithoutBlobsAreUnused(t *testing.T) {
	lister := newFakeLister()
	lister.addAccount("no-containers", "westeurope")
	empty := lister.addAccount("empty-container", "northeurope")
	lister.addContainer(empty, "logs")

	s, _ := newTestService(lister, nil)
	result, err := s.Scan(context.Background(), 90)

	require.NoError(t, err)
	require.Len(t, result.UnusedAccounts, 2)
	assert.Equal(t, "no-containers", result.UnusedAccounts[0].Name)
	assert.Equal(t, "empty-container", result.UnusedAccounts[1].Name)
	assert.Empty(t, result.SampledBlobs)
}

func TestScanAllStaleBlobsStillRecordsAccount(t *testing.T) {
	// An account whose blobs are all older than the threshold is unused
	// even though blobs were observed.
	lister := newFakeLister()
	account := lister.addAccount("dormant", "westeurope")
	lister.addContainer(account, "archive",
		blobModified("old1", days(120)),
		blobModified("old2", days(365)),
	)

	s, _ := newTestService(lister, nil)
	result, err := s.Scan(context.Background(), 90)

	require.NoError(t, err)
	require.Len(t, result.UnusedAccounts, 1)
	assert.Equal(t, "dormant", result.UnusedAccounts[0].Name)
	require.Len(t, result.SampledBlobs, 1)
	assert.Equal(t, "old2", result.SampledBlobs[0].Name)
}

func TestScanBlobExactlyAtThresholdIsStale(t *testing.T) {
	lister := newFakeLister()
	account := lister.addAccount("boundary", "westeurope")
	lister.addContainer(account, "data", blobModified("cutoff", days(90)))

	s, _ := newTestService(lister, nil)
	result, err := s.Scan(context.Background(), 90)

	require.NoError(t, err)
	require.Len(t, result.UnusedAccounts, 1)
	assert.Equal(t, "boundary", result.UnusedAccounts[0].Name)
}

func TestScanStopsEvaluatingAccountAfterFreshBlob(t *testing.T) {
	lister := newFakeLister()
	account := lister.addAccount("active", "westeurope")
	lister.addContainer(account, "first", blobModified("fresh", days(1)))
	lister.addContainer(account, "second", blobModified("never-visited", days(1)))

	s, _ := newTestService(lister, nil)
	_, err := s.Scan(context.Background(), 90)

	require.NoError(t, err)
	assert.Equal(t, 1, lister.blobCalls["active/first"])
	assert.Zero(t, lister.blobCalls["active/second"])
}

func TestScanRetriesContainerListing(t *testing.T) {
	lister := newFakeLister()
	account := lister.addAccount("flaky", "westeurope")
	lister.addContainer(account, "data", blobModified("old", days(200)))
	lister.containerFails["flaky"] = 2

	s, sleeps := newTestService(lister, nil)
	result, err := s.Scan(context.Background(), 90)

	require.NoError(t, err)
	assert.Equal(t, 3, lister.containerCalls["flaky"])
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, *sleeps)
	// Third attempt succeeded, so the container was actually walked
	assert.Equal(t, 1, lister.blobCalls["flaky/data"])
	require.Len(t, result.UnusedAccounts, 1)
}

func TestScanExhaustedRetriesDegradeToEmptyAccount(t *testing.T) {
	lister := newFakeLister()
	flaky := lister.addAccount("flaky", "westeurope")
	lister.addContainer(flaky, "data", blobModified("fresh", days(1)))
	lister.containerFails["flaky"] = 3
	healthy := lister.addAccount("healthy", "westeurope")
	lister.addContainer(healthy, "data", blobModified("fresh", days(1)))

	var warnings []string
	s, sleeps := newTestService(lister, nil)
	s.logf = func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	result, err := s.Scan(context.Background(), 90)

	require.NoError(t, err)
	assert.Equal(t, 3, lister.containerCalls["flaky"])
	assert.Len(t, *sleeps, 2)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "flaky")
	// Zero containers means zero blobs, which means unused; the healthy
	// account was still scanned and excluded.
	require.Len(t, result.UnusedAccounts, 1)
	assert.Equal(t, "flaky", result.UnusedAccounts[0].Name)
	assert.Equal(t, 2, result.ProcessedCount)
}

func TestScanBlobListingFailureCountsAsEmpty(t *testing.T) {
	lister := newFakeLister()
	account := lister.addAccount("unreadable", "westeurope")
	lister.addContainer(account, "data", blobModified("fresh", days(1)))
	lister.blobFails["unreadable/data"] = 1

	var warnings []string
	s, sleeps := newTestService(lister, nil)
	s.logf = func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	result, err := s.Scan(context.Background(), 90)

	require.NoError(t, err)
	// No retry on blob listing: a single failed attempt, then move on
	assert.Equal(t, 1, lister.blobCalls["unreadable/data"])
	assert.Empty(t, *sleeps)
	assert.Len(t, warnings, 1)
	require.Len(t, result.UnusedAccounts, 1)
}

func TestScanProgressPercentages(t *testing.T) {
	lister := newFakeLister()
	for i := 0; i < 3; i++ {
		lister.addAccount(fmt.Sprintf("account%d", i), "westeurope")
	}

	var progress []model.ScanProgress
	s, _ := newTestService(lister, func(p model.ScanProgress) {
		progress = append(progress, p)
	})

	_, err := s.Scan(context.Background(), 90)

	require.NoError(t, err)
	require.Len(t, progress, 3)
	assert.Equal(t, model.ScanProgress{Processed: 1, Total: 3, Percent: 33.33}, progress[0])
	assert.Equal(t, model.ScanProgress{Processed: 2, Total: 3, Percent: 66.67}, progress[1])
	assert.Equal(t, model.ScanProgress{Processed: 3, Total: 3, Percent: 100}, progress[2])
}

func TestScanAccountListingErrorIsFatal(t *testing.T) {
	lister := newFakeLister()
	lister.accountsErr = errors.New("resource group not found")

	s, _ := newTestService(lister, nil)
	result, err := s.Scan(context.Background(), 90)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "resource group not found")
}

func TestScanThresholdSampledOnce(t *testing.T) {
	lister := newFakeLister()
	account := lister.addAccount("account", "westeurope")
	lister.addContainer(account, "data", blobModified("doc", days(10)))

	calls := 0
	s, _ := newTestService(lister, nil)
	s.now = func() time.Time {
		calls++
		return scanStart
	}

	_, err := s.Scan(context.Background(), 90)

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestScanEndToEnd(t *testing.T) {
	// Two accounts: A holds a blob modified 10 days ago, B has one empty
	// container. With a 90 day window only B is unused.
	lister := newFakeLister()
	accountA := lister.addAccount("account-a", "westeurope")
	lister.addContainer(accountA, "docs", blobModified("report.pdf", days(10)))
	accountB := lister.addAccount("account-b", "northeurope")
	lister.addContainer(accountB, "empty")

	var progress []model.ScanProgress
	s, _ := newTestService(lister, func(p model.ScanProgress) {
		progress = append(progress, p)
	})

	result, err := s.Scan(context.Background(), 90)

	require.NoError(t, err)
	require.Len(t, result.UnusedAccounts, 1)
	assert.Equal(t, "account-b", result.UnusedAccounts[0].Name)
	assert.Equal(t, 2, result.ProcessedCount)
	assert.Equal(t, 2, result.TotalCount)
	require.NotEmpty(t, progress)
	assert.Equal(t, 100.0, progress[len(progress)-1].Percent)
}
