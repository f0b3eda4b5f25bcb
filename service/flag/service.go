package flag

import (
	"flag"
	"fmt"

	"github.com/elC0mpa/storage-doctor/model"
)

func NewService() *service {
	return &service{}
}

func (s *service) GetParsedFlags() (model.Flags, error) {
	provider := flag.String("provider", "azure", "Cloud provider to scan (azure, aws, gcp)")
	daysAgo := flag.Int("days-ago", -1, "Staleness threshold in days; stores with no blob modified since are reported unused")
	exportCSV := flag.String("export-csv", "n", "Write unused stores to UnusedStorageAccounts.csv (y/n)")
	chart := flag.Bool("chart", false, "Display unused stores per location as a bar chart")

	subscription := flag.String("subscription", "", "Azure subscription ID")
	resourceGroup := flag.String("resource-group", "", "Azure resource group to scan")

	region := flag.String("region", "us-east-1", "AWS region")
	profile := flag.String("profile", "", "AWS profile configuration")

	project := flag.String("project", "", "GCP project ID")

	flag.Parse()

	flags := model.Flags{
		Provider:      *provider,
		DaysAgo:       *daysAgo,
		ExportCSV:     *exportCSV,
		Chart:         *chart,
		Subscription:  *subscription,
		ResourceGroup: *resourceGroup,
		Region:        *region,
		Profile:       *profile,
		Project:       *project,
	}

	if err := Validate(flags); err != nil {
		return model.Flags{}, err
	}

	return flags, nil
}

// Validate enforces the per-provider required flags before any credential
// is resolved.
func Validate(flags model.Flags) error {
	if flags.DaysAgo < 0 {
		return fmt.Errorf("days-ago is required and must be zero or positive")
	}

	switch flags.Provider {
	case "azure":
		if flags.Subscription == "" {
			return fmt.Errorf("subscription is required for the azure provider")
		}
		if flags.ResourceGroup == "" {
			return fmt.Errorf("resource-group is required for the azure provider")
		}
	case "aws":
	case "gcp":
		if flags.Project == "" {
			return fmt.Errorf("project is required for the gcp provider")
		}
	default:
		return fmt.Errorf("unknown provider %q (expected azure, aws, or gcp)", flags.Provider)
	}

	return nil
}
