package scanner

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/elC0mpa/storage-doctor/model"
	"github.com/elC0mpa/storage-doctor/service"
)

// NewService builds a scanner over the given lister. onProgress is invoked
// after each account has been evaluated; logf receives walker warnings.
// Both hooks may be nil.
func NewService(lister service.StorageLister, onProgress func(model.ScanProgress), logf func(format string, args ...any)) *scanService {
	return &scanService{
		lister:     lister,
		onProgress: onProgress,
		logf:       logf,
		now:        time.Now,
		sleep:      time.Sleep,
	}
}

// Scan walks every account, container, and blob reachable through the
// lister and collects the accounts with no blob modified after the
// threshold. The threshold is sampled once, before the walk starts.
func (s *scanService) Scan(ctx context.Context, daysAgo int) (*model.ScanResult, error) {
	threshold := s.now().Add(-time.Duration(daysAgo) * 24 * time.Hour)

	accounts, err := s.lister.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list storage accounts: %w", err)
	}

	result := &model.ScanResult{TotalCount: len(accounts)}

	for _, account := range accounts {
		unused, lastSeen := s.evaluateAccount(ctx, account, threshold)
		if unused {
			result.UnusedAccounts = append(result.UnusedAccounts, account)
		}
		if lastSeen != nil {
			result.SampledBlobs = append(result.SampledBlobs, *lastSeen)
		}

		result.ProcessedCount++
		s.reportProgress(result.ProcessedCount, result.TotalCount)
	}

	return result, nil
}

// evaluateAccount returns unused=false as soon as any blob turns out to be
// modified strictly after the threshold; the rest of the account is
// skipped. A blob stamped exactly at the threshold counts as stale. The
// last blob observed is returned as diagnostic metadata only and never
// gates the unused decision.
func (s *scanService) evaluateAccount(ctx context.Context, account model.StorageAccount, threshold time.Time) (bool, *model.BlobRef) {
	containers := s.listContainersWithRetry(ctx, account)

	var lastSeen *model.BlobRef
	for _, container := range containers {
		blobs, err := s.lister.ListBlobs(ctx, container)
		if err != nil {
			// Single attempt only; an unreadable container counts as empty
			s.warnf("skipping container %s/%s: failed to list blobs: %v", account.Name, container.Name, err)
			continue
		}

		for i := range blobs {
			lastSeen = &blobs[i]
			if blobs[i].LastModified.After(threshold) {
				return false, lastSeen
			}
		}
	}

	return true, lastSeen
}

// listContainersWithRetry waits 2s then 4s between attempts and degrades
// to an empty container list once they are exhausted, so a single flaky
// account cannot abort the whole scan.
func (s *scanService) listContainersWithRetry(ctx context.Context, account model.StorageAccount) []model.Container {
	var lastErr error
	for attempt := 1; attempt <= containerListAttempts; attempt++ {
		containers, err := s.lister.ListContainers(ctx, account)
		if err == nil {
			return containers
		}

		lastErr = err
		if attempt < containerListAttempts {
			s.sleep(time.Duration(attempt) * retryBaseDelay)
		}
	}

	s.warnf("treating account %s as empty: container listing failed %d times: %v", account.Name, containerListAttempts, lastErr)
	return nil
}

func (s *scanService) reportProgress(processed, total int) {
	if s.onProgress == nil {
		return
	}

	percent := 100.0
	if total > 0 {
		percent = math.Round(float64(processed)/float64(total)*100*100) / 100
	}

	s.onProgress(model.ScanProgress{
		Processed: processed,
		Total:     total,
		Percent:   percent,
	})
}

func (s *scanService) warnf(format string, args ...any) {
	if s.logf != nil {
		s.logf(format, args...)
	}
}
