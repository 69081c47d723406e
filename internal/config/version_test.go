package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCheckVersion verifies the schema version gate.
func TestCheckVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{name: "current version", version: CurrentVersion, wantErr: false},
		{name: "newer minor", version: "1.4", wantErr: false},
		{name: "full semver", version: "1.0.3", wantErr: false},
		{name: "next major rejected", version: "2.0", wantErr: true},
		{name: "ancient rejected", version: "0.9", wantErr: true},
		{name: "empty rejected", version: "", wantErr: true},
		{name: "garbage rejected", version: "latest", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckVersion(tt.version)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
