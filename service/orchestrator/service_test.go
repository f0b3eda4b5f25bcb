package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportEnabled(t *testing.T) {
	tests := []struct {
		flag    string
		enabled bool
	}{
		{"y", true},
		{"Y", true},
		{"n", false},
		{"N", false},
		{"", false},
		{"yes", false},
		{"true", false},
		{"1", false},
	}

	for _, tt := range tests {
		t.Run("flag "+tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.enabled, ExportEnabled(tt.flag))
		})
	}
}
