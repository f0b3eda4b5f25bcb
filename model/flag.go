package model

type Flags struct {
	// Common flags
	Provider  string
	DaysAgo   int
	ExportCSV string
	Chart     bool

	// Azure-specific flags
	Subscription  string
	ResourceGroup string

	// AWS-specific flags
	Region  string
	Profile string

	// GCP-specific flags
	Project string
}
