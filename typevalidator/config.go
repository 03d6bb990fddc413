package typevalidator

import (
	"strings"

	"github.com/gobeaver/beaver-kit/config"
	"github.com/gobeaver/sniffkit"
)

// Config holds environment-driven validator settings
type Config struct {
	// Maximum allowed payload size in bytes
	MaxSize int64 `env:"SNIFFKIT_MAX_SIZE,default:10485760"` // 10MB default

	// Minimum required payload size in bytes
	MinSize int64 `env:"SNIFFKIT_MIN_SIZE,default:1"`

	// Accepted content types or patterns, comma-separated
	AcceptedTypes string `env:"SNIFFKIT_ACCEPTED_TYPES"`

	// Blocked content types or patterns, comma-separated
	BlockedTypes string `env:"SNIFFKIT_BLOCKED_TYPES"`

	// Checksum algorithm reported in results (md5, sha1, sha256, sha512,
	// crc32, xxhash); empty disables checksums
	Checksum string `env:"SNIFFKIT_CHECKSUM"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Constraints converts the config into validator constraints
func (c *Config) Constraints() Constraints {
	return Constraints{
		MaxSize:       c.MaxSize,
		MinSize:       c.MinSize,
		AcceptedTypes: splitList(c.AcceptedTypes),
		BlockedTypes:  splitList(c.BlockedTypes),
		Checksum:      sniffkit.ChecksumAlgorithm(c.Checksum),
	}
}

// FromConfig builds a validator from environment configuration
func FromConfig() (*TypeValidator, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg.Constraints())
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
