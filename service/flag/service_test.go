package flag

import (
	"testing"

	"github.com/elC0mpa/storage-doctor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAzureFlags() model.Flags {
	return model.Flags{
		Provider:      "azure",
		DaysAgo:       90,
		Subscription:  "11111111-2222-3333-4444-555555555555",
		ResourceGroup: "rg-storage",
	}
}

func TestValidateAcceptsCompleteAzureFlags(t *testing.T) {
	require.NoError(t, Validate(validAzureFlags()))
}

func TestValidateAcceptsZeroDaysAgo(t *testing.T) {
	flags := validAzureFlags()
	flags.DaysAgo = 0
	require.NoError(t, Validate(flags))
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.Flags)
		message string
	}{
		{
			name:    "missing days-ago",
			mutate:  func(f *model.Flags) { f.DaysAgo = -1 },
			message: "days-ago",
		},
		{
			name:    "missing subscription",
			mutate:  func(f *model.Flags) { f.Subscription = "" },
			message: "subscription",
		},
		{
			name:    "missing resource group",
			mutate:  func(f *model.Flags) { f.ResourceGroup = "" },
			message: "resource-group",
		},
		{
			name:    "unknown provider",
			mutate:  func(f *model.Flags) { f.Provider = "digitalocean" },
			message: "unknown provider",
		},
		{
			name: "gcp without project",
			mutate: func(f *model.Flags) {
				f.Provider = "gcp"
				f.Project = ""
			},
			message: "project",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := validAzureFlags()
			tt.mutate(&flags)

			err := Validate(flags)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestValidateAWSNeedsNoScopeFlags(t *testing.T) {
	flags := model.Flags{Provider: "aws", DaysAgo: 30}
	require.NoError(t, Validate(flags))
}
