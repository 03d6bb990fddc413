package typevalidator

import (
	"fmt"

	"github.com/gobeaver/sniffkit"
	"github.com/gobwas/glob"
)

// Validator provides the main interface for validating payloads
type Validator interface {
	// Validate validates a payload against the validator's constraints
	Validate(data []byte) error

	// Check validates a payload and returns a detailed report
	Check(data []byte) *Result

	// GetConstraints returns the current validation constraints
	GetConstraints() Constraints
}

// TypeValidator implements the Validator interface
type TypeValidator struct {
	constraints Constraints
	accepted    []typePattern
	blocked     []typePattern
}

// typePattern pairs a compiled glob with its source string for error
// messages.
type typePattern struct {
	src string
	g   glob.Glob
}

// New creates a new validator with the given constraints. Returns an error
// if any accepted or blocked type pattern does not compile.
func New(constraints Constraints) (*TypeValidator, error) {
	v := &TypeValidator{constraints: constraints}

	var err error
	if v.accepted, err = compilePatterns(constraints.AcceptedTypes); err != nil {
		return nil, err
	}
	if v.blocked, err = compilePatterns(constraints.BlockedTypes); err != nil {
		return nil, err
	}
	return v, nil
}

// NewDefault creates a new validator with sensible default constraints
func NewDefault() *TypeValidator {
	v, err := New(DefaultConstraints())
	if err != nil {
		// Default constraints carry no patterns; compilation cannot fail.
		panic(err)
	}
	return v
}

func compilePatterns(patterns []string) ([]typePattern, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	compiled := make([]typePattern, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid type pattern %q: %w", p, err)
		}
		compiled = append(compiled, typePattern{src: p, g: g})
	}
	return compiled, nil
}

// GetConstraints returns the current validation constraints
func (v *TypeValidator) GetConstraints() Constraints {
	return v.constraints
}

// Validate validates a payload against the validator's constraints.
// It returns the first failure as a *ValidationError, or nil.
func (v *TypeValidator) Validate(data []byte) error {
	size := int64(len(data))

	if v.constraints.MaxSize > 0 && size > v.constraints.MaxSize {
		return NewValidationError(ErrorTypeSize,
			fmt.Sprintf("payload too big: %d bytes (max: %d bytes)", size, v.constraints.MaxSize))
	}
	if v.constraints.MinSize > 0 && size < v.constraints.MinSize {
		return NewValidationError(ErrorTypeSize,
			fmt.Sprintf("payload too small: %d bytes (min: %d bytes)", size, v.constraints.MinSize))
	}

	contentType := sniffkit.DetectContentType(data)

	if p, ok := matchPattern(v.blocked, contentType); ok {
		return NewValidationError(ErrorTypeContent,
			fmt.Sprintf("content type %s is blocked by pattern %q", contentType, p))
	}

	// No accepted types configured means everything not blocked passes.
	if len(v.accepted) == 0 {
		return nil
	}

	if _, ok := matchPattern(v.accepted, contentType); !ok {
		return NewValidationError(ErrorTypeContent,
			fmt.Sprintf("content type %s is not accepted; allowed types: %v", contentType, v.constraints.AcceptedTypes))
	}

	return nil
}

// matchPattern reports whether the sniffed content type matches one of the
// compiled patterns, returning the source pattern that matched. Patterns
// are tried against both the full content type and its parameter-free
// media type.
func matchPattern(patterns []typePattern, contentType string) (string, bool) {
	mediaType := sniffkit.MediaType(contentType)
	for _, p := range patterns {
		if p.g.Match(mediaType) || p.g.Match(contentType) {
			return p.src, true
		}
	}
	return "", false
}
