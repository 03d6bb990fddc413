package typevalidator

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gobeaver/sniffkit"
)

// Result contains detailed information about a validation attempt
type Result struct {
	// Valid indicates whether the payload passed all validations
	Valid bool

	// Size is the payload size in bytes
	Size int64

	// DetectedType is the content type sniffed from the payload
	DetectedType string

	// Category is the human-readable category of the detected type
	Category string

	// Checksum is the hex-encoded digest of the payload, when the
	// constraints request one
	Checksum string

	// Algorithm is the checksum algorithm used, when any
	Algorithm sniffkit.ChecksumAlgorithm

	// Errors contains all validation errors encountered
	Errors []ValidationError

	// Checks contains details about each validation check performed
	Checks []CheckResult

	// Duration is how long validation took
	Duration time.Duration
}

// CheckResult represents the result of a single validation check
type CheckResult struct {
	Name    string // e.g., "size", "content", "checksum"
	Passed  bool   // whether this check passed
	Message string // human-readable result
}

// Check validates a payload and returns a detailed report. Unlike
// Validate, it runs every check and collects all failures.
func (v *TypeValidator) Check(data []byte) *Result {
	start := time.Now()
	result := &Result{
		Size:      int64(len(data)),
		Algorithm: v.constraints.Checksum,
	}

	result.runSizeCheck(v.constraints)

	result.DetectedType = sniffkit.DetectContentType(data)
	result.Category = sniffkit.Category(result.DetectedType)
	result.runContentCheck(v)

	if v.constraints.Checksum != "" {
		result.runChecksumCheck(data, v.constraints.Checksum)
	}

	result.Valid = len(result.Errors) == 0
	result.Duration = time.Since(start)
	return result
}

func (r *Result) runSizeCheck(c Constraints) {
	switch {
	case c.MaxSize > 0 && r.Size > c.MaxSize:
		r.fail(ErrorTypeSize, "size",
			fmt.Sprintf("payload too big: %d bytes (max: %d bytes)", r.Size, c.MaxSize))
	case c.MinSize > 0 && r.Size < c.MinSize:
		r.fail(ErrorTypeSize, "size",
			fmt.Sprintf("payload too small: %d bytes (min: %d bytes)", r.Size, c.MinSize))
	default:
		r.pass("size", fmt.Sprintf("%s within bounds", FormatSizeReadable(r.Size)))
	}
}

func (r *Result) runContentCheck(v *TypeValidator) {
	if p, ok := matchPattern(v.blocked, r.DetectedType); ok {
		r.fail(ErrorTypeContent, "content",
			fmt.Sprintf("content type %s is blocked by pattern %q", r.DetectedType, p))
		return
	}
	if len(v.accepted) > 0 {
		if _, ok := matchPattern(v.accepted, r.DetectedType); !ok {
			r.fail(ErrorTypeContent, "content",
				fmt.Sprintf("content type %s is not accepted; allowed types: %v", r.DetectedType, v.constraints.AcceptedTypes))
			return
		}
	}
	r.pass("content", fmt.Sprintf("detected %s (%s)", r.DetectedType, r.Category))
}

func (r *Result) runChecksumCheck(data []byte, algorithm sniffkit.ChecksumAlgorithm) {
	sum, err := sniffkit.Checksum(data, algorithm)
	if err != nil {
		r.fail(ErrorTypeChecksum, "checksum", err.Error())
		return
	}
	r.Checksum = sum
	r.pass("checksum", fmt.Sprintf("%s: %s", algorithm, sum))
}

func (r *Result) pass(name, message string) {
	r.Checks = append(r.Checks, CheckResult{Name: name, Passed: true, Message: message})
}

func (r *Result) fail(errType ValidationErrorType, name, message string) {
	r.Errors = append(r.Errors, ValidationError{Type: errType, Message: message})
	r.Checks = append(r.Checks, CheckResult{Name: name, Passed: false, Message: message})
}

// Error returns the first validation error if validation failed, nil if valid
func (r *Result) Error() error {
	if r.Valid || len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// AllErrors returns all errors as a single combined error
func (r *Result) AllErrors() error {
	if r.Valid || len(r.Errors) == 0 {
		return nil
	}

	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}

// Summary returns a human-readable summary of the validation
func (r *Result) Summary() string {
	if r.Valid {
		return fmt.Sprintf("✓ %s (%s) validated in %v",
			r.DetectedType,
			FormatSizeReadable(r.Size),
			r.Duration.Round(time.Microsecond),
		)
	}

	return fmt.Sprintf("✗ %s failed: %s",
		r.DetectedType,
		r.Errors[0].Message,
	)
}

// FailedChecks returns only the checks that failed
func (r *Result) FailedChecks() []CheckResult {
	var failed []CheckResult
	for _, check := range r.Checks {
		if !check.Passed {
			failed = append(failed, check)
		}
	}
	return failed
}

// FormatSizeReadable converts a size in bytes to a human-readable string
func FormatSizeReadable(size int64) string {
	format := func(value float64, unit string) string {
		rounded := math.Round(value*10) / 10
		if rounded == float64(int(rounded)) {
			return fmt.Sprintf("%.0f %s", rounded, unit)
		}
		return fmt.Sprintf("%.1f %s", rounded, unit)
	}

	switch {
	case size < KB:
		return fmt.Sprintf("%d B", size)
	case size < MB:
		return format(float64(size)/float64(KB), "KB")
	case size < GB:
		return format(float64(size)/float64(MB), "MB")
	default:
		return format(float64(size)/float64(GB), "GB")
	}
}
