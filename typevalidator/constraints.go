package typevalidator

import (
	"github.com/gobeaver/sniffkit"
)

// Size constants for easier size configuration
const (
	KB = int64(1024)
	MB = KB * 1024
	GB = MB * 1024
)

// Constraints defines the configuration for payload validation. All checks
// operate on the payload bytes alone: size, and the content type sniffed
// from the leading bytes. Filenames and extensions are never consulted.
type Constraints struct {
	// MaxSize is the maximum allowed payload size in bytes
	// Use the provided constants for readable configuration, e.g., 10 * MB for 10 megabytes
	MaxSize int64

	// MinSize is the minimum required payload size in bytes
	MinSize int64

	// AcceptedTypes is a list of allowed content types. Entries may be
	// exact types ("image/png") or glob patterns ("image/*", "*/*").
	// Patterns are matched against the sniffed type with its parameters
	// stripped, so "text/plain" accepts "text/plain; charset=utf-8".
	// If empty, every type is accepted unless blocked by BlockedTypes.
	AcceptedTypes []string

	// BlockedTypes is a list of content types or glob patterns that are
	// rejected regardless of AcceptedTypes.
	BlockedTypes []string

	// Checksum selects the digest reported in validation results.
	// Empty disables checksum computation.
	Checksum sniffkit.ChecksumAlgorithm
}

// DefaultConstraints creates a new set of constraints with sensible defaults
func DefaultConstraints() Constraints {
	return Constraints{
		MaxSize:  10 * MB,
		MinSize:  1, // 1 byte
		Checksum: sniffkit.ChecksumXXHash,
	}
}
