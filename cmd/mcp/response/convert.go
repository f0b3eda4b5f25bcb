package response

import (
	"github.com/elC0mpa/storage-doctor/model"
)

// ConvertAccountInfo converts model.AccountInfo to response.AccountInfo
func ConvertAccountInfo(info *model.AccountInfo) *AccountInfo {
	if info == nil {
		return nil
	}
	return &AccountInfo{
		Provider:    info.Provider,
		AccountID:   info.AccountID,
		AccountName: info.AccountName,
	}
}

// ConvertScanResult converts a scan result into a ScanSummary
func ConvertScanResult(provider, accountID, scope string, daysAgo int, result *model.ScanResult) *ScanSummary {
	summary := &ScanSummary{
		Provider:     provider,
		AccountID:    accountID,
		Scope:        scope,
		DaysAgo:      daysAgo,
		UnusedStores: []UnusedStore{},
	}

	if result == nil {
		return summary
	}

	summary.ScannedCount = result.ProcessedCount
	for _, account := range result.UnusedAccounts {
		summary.UnusedStores = append(summary.UnusedStores, UnusedStore{
			Name:     account.Name,
			Location: account.Location,
		})
	}

	return summary
}
