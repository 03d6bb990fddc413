package typevalidator

import (
	"os"
	"testing"

	"github.com/gobeaver/sniffkit"
)

func TestGetConfig(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    Config
	}{
		{
			name:    "default values",
			envVars: map[string]string{},
			want: Config{
				MaxSize: 10485760,
				MinSize: 1,
			},
		},
		{
			name: "full configuration",
			envVars: map[string]string{
				"BEAVER_SNIFFKIT_MAX_SIZE":       "5242880",
				"BEAVER_SNIFFKIT_MIN_SIZE":       "16",
				"BEAVER_SNIFFKIT_ACCEPTED_TYPES": "image/*,application/pdf",
				"BEAVER_SNIFFKIT_BLOCKED_TYPES":  "application/octet-stream",
				"BEAVER_SNIFFKIT_CHECKSUM":       "sha256",
			},
			want: Config{
				MaxSize:       5242880,
				MinSize:       16,
				AcceptedTypes: "image/*,application/pdf",
				BlockedTypes:  "application/octet-stream",
				Checksum:      "sha256",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				k := k // capture for closure
				os.Setenv(k, v)
				t.Cleanup(func() { os.Unsetenv(k) })
			}

			cfg, err := GetConfig()
			if err != nil {
				t.Fatalf("GetConfig() error = %v", err)
			}

			if cfg.MaxSize != tt.want.MaxSize {
				t.Errorf("MaxSize = %v, want %v", cfg.MaxSize, tt.want.MaxSize)
			}
			if cfg.MinSize != tt.want.MinSize {
				t.Errorf("MinSize = %v, want %v", cfg.MinSize, tt.want.MinSize)
			}
			if cfg.AcceptedTypes != tt.want.AcceptedTypes {
				t.Errorf("AcceptedTypes = %v, want %v", cfg.AcceptedTypes, tt.want.AcceptedTypes)
			}
			if cfg.BlockedTypes != tt.want.BlockedTypes {
				t.Errorf("BlockedTypes = %v, want %v", cfg.BlockedTypes, tt.want.BlockedTypes)
			}
			if cfg.Checksum != tt.want.Checksum {
				t.Errorf("Checksum = %v, want %v", cfg.Checksum, tt.want.Checksum)
			}
		})
	}
}

func TestConfigConstraints(t *testing.T) {
	cfg := &Config{
		MaxSize:       1024,
		MinSize:       4,
		AcceptedTypes: "image/*, text/plain ,",
		BlockedTypes:  "",
		Checksum:      "xxhash",
	}

	c := cfg.Constraints()
	if c.MaxSize != 1024 || c.MinSize != 4 {
		t.Errorf("sizes = [%d, %d]", c.MinSize, c.MaxSize)
	}
	if len(c.AcceptedTypes) != 2 || c.AcceptedTypes[0] != "image/*" || c.AcceptedTypes[1] != "text/plain" {
		t.Errorf("AcceptedTypes = %v", c.AcceptedTypes)
	}
	if c.BlockedTypes != nil {
		t.Errorf("BlockedTypes = %v, want nil", c.BlockedTypes)
	}
	if c.Checksum != sniffkit.ChecksumXXHash {
		t.Errorf("Checksum = %q, want xxhash", c.Checksum)
	}
}

func TestFromConfig(t *testing.T) {
	for k, v := range map[string]string{
		"BEAVER_SNIFFKIT_ACCEPTED_TYPES": "image/*",
		"BEAVER_SNIFFKIT_MIN_SIZE":       "1",
	} {
		k := k
		os.Setenv(k, v)
		t.Cleanup(func() { os.Unsetenv(k) })
	}

	v, err := FromConfig()
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}

	if err := v.Validate([]byte("GIF89a......")); err != nil {
		t.Errorf("Validate(gif) error = %v, want nil", err)
	}
	if err := v.Validate([]byte("not an image")); !IsErrorOfType(err, ErrorTypeContent) {
		t.Errorf("Validate(text) error = %v, want content error", err)
	}
}
