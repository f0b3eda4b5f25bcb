package response

// AccountInfo is the JSON representation of cloud account identity
type AccountInfo struct {
	Provider    string `json:"provider"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
}

// UnusedStore describes one storage account with no recent activity
type UnusedStore struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// ScanSummary is the JSON result of an unused-storage scan
type ScanSummary struct {
	Provider     string        `json:"provider"`
	AccountID    string        `json:"account_id"`
	Scope        string        `json:"scope,omitempty"`
	DaysAgo      int           `json:"days_ago"`
	ScannedCount int           `json:"scanned_count"`
	UnusedStores []UnusedStore `json:"unused_stores"`
	Error        string        `json:"error,omitempty"`
}

// AzureSubscription describes a subscription visible to the credential
type AzureSubscription struct {
	SubscriptionID string `json:"subscription_id"`
	DisplayName    string `json:"display_name"`
	State          string `json:"state"`
}
