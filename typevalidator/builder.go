package typevalidator

import "github.com/gobeaver/sniffkit"

// Builder provides a fluent API for constructing validators
type Builder struct {
	constraints Constraints
}

// NewBuilder creates a new validator builder with sensible defaults
func NewBuilder() *Builder {
	return &Builder{
		constraints: DefaultConstraints(),
	}
}

// Empty creates a builder with minimal defaults (no restrictions)
func Empty() *Builder {
	return &Builder{}
}

// --- Size constraints ---

// MaxSize sets the maximum allowed payload size
func (b *Builder) MaxSize(size int64) *Builder {
	b.constraints.MaxSize = size
	return b
}

// MinSize sets the minimum required payload size
func (b *Builder) MinSize(size int64) *Builder {
	b.constraints.MinSize = size
	return b
}

// SizeRange sets both minimum and maximum payload size
func (b *Builder) SizeRange(minSize, maxSize int64) *Builder {
	b.constraints.MinSize = minSize
	b.constraints.MaxSize = maxSize
	return b
}

// --- Content type constraints ---

// Accept adds accepted content types (e.g., "image/png", "image/*")
func (b *Builder) Accept(contentTypes ...string) *Builder {
	b.constraints.AcceptedTypes = append(b.constraints.AcceptedTypes, contentTypes...)
	return b
}

// AcceptImages allows all sniffable image types
func (b *Builder) AcceptImages() *Builder {
	return b.Accept(string(sniffkit.AllImages))
}

// AcceptAudio allows all sniffable audio types, application/ogg included
func (b *Builder) AcceptAudio() *Builder {
	return b.Accept(string(sniffkit.AllAudio), "application/ogg")
}

// AcceptVideo allows all sniffable video types
func (b *Builder) AcceptVideo() *Builder {
	return b.Accept(string(sniffkit.AllVideo))
}

// AcceptMedia allows all audio and video types
func (b *Builder) AcceptMedia() *Builder {
	return b.AcceptAudio().AcceptVideo()
}

// AcceptText allows all sniffable text types
func (b *Builder) AcceptText() *Builder {
	return b.Accept(string(sniffkit.AllText))
}

// AcceptFonts allows all sniffable font types, Embedded OpenType included
func (b *Builder) AcceptFonts() *Builder {
	return b.Accept(string(sniffkit.AllFonts), "application/vnd.ms-fontobject")
}

// AcceptAll allows every content type
func (b *Builder) AcceptAll() *Builder {
	return b.Accept(string(sniffkit.AllTypes))
}

// Block adds content types or patterns to the blocklist
func (b *Builder) Block(contentTypes ...string) *Builder {
	b.constraints.BlockedTypes = append(b.constraints.BlockedTypes, contentTypes...)
	return b
}

// --- Checksum ---

// WithChecksum selects the digest algorithm reported in results
func (b *Builder) WithChecksum(algorithm sniffkit.ChecksumAlgorithm) *Builder {
	b.constraints.Checksum = algorithm
	return b
}

// WithoutChecksum disables checksum computation
func (b *Builder) WithoutChecksum() *Builder {
	b.constraints.Checksum = ""
	return b
}

// Build constructs the validator. Returns an error if any configured type
// pattern does not compile.
func (b *Builder) Build() (*TypeValidator, error) {
	return New(b.constraints)
}

// MustBuild constructs the validator and panics on invalid patterns.
// Intended for the preset builders and static configuration.
func (b *Builder) MustBuild() *TypeValidator {
	v, err := b.Build()
	if err != nil {
		panic(err)
	}
	return v
}

// --- Presets ---

// ForImages returns a builder accepting image payloads up to 10MB
func ForImages() *Builder {
	return NewBuilder().AcceptImages()
}

// ForMedia returns a builder accepting audio and video payloads up to 500MB
func ForMedia() *Builder {
	return NewBuilder().AcceptMedia().MaxSize(500 * MB)
}

// ForText returns a builder accepting textual payloads up to 5MB
func ForText() *Builder {
	return NewBuilder().AcceptText().MaxSize(5 * MB)
}

// ForFonts returns a builder accepting font payloads up to 5MB
func ForFonts() *Builder {
	return NewBuilder().AcceptFonts().MaxSize(5 * MB)
}

// Strict returns a builder that rejects anything the detector could not
// classify (the application/octet-stream fallback)
func Strict() *Builder {
	return NewBuilder().Block("application/octet-stream")
}
