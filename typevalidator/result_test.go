package typevalidator

import (
	"strings"
	"testing"

	"github.com/gobeaver/sniffkit"
)

func TestCheckValid(t *testing.T) {
	v := ForImages().WithChecksum(sniffkit.ChecksumSHA256).MustBuild()

	result := v.Check([]byte("GIF89a lots of pixels"))
	if !result.Valid {
		t.Fatalf("Check() not valid: %v", result.Errors)
	}
	if result.DetectedType != "image/gif" {
		t.Errorf("DetectedType = %q, want image/gif", result.DetectedType)
	}
	if result.Category != "image" {
		t.Errorf("Category = %q, want image", result.Category)
	}
	if result.Size != int64(len("GIF89a lots of pixels")) {
		t.Errorf("Size = %d", result.Size)
	}
	if len(result.Checksum) != 64 {
		t.Errorf("Checksum length = %d, want 64 hex chars for sha256", len(result.Checksum))
	}
	if result.Algorithm != sniffkit.ChecksumSHA256 {
		t.Errorf("Algorithm = %q, want sha256", result.Algorithm)
	}
	if len(result.Checks) != 3 {
		t.Errorf("Checks = %d, want size+content+checksum", len(result.Checks))
	}
	if result.Error() != nil {
		t.Errorf("Error() = %v, want nil", result.Error())
	}
	if !strings.HasPrefix(result.Summary(), "✓") {
		t.Errorf("Summary() = %q", result.Summary())
	}
}

func TestCheckCollectsAllFailures(t *testing.T) {
	v, err := New(Constraints{
		MaxSize:       4,
		AcceptedTypes: []string{"image/*"},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Too big and not an image: both failures must be reported.
	result := v.Check([]byte("plain text payload"))
	if result.Valid {
		t.Fatal("Check() valid, want failures")
	}
	if len(result.Errors) != 2 {
		t.Fatalf("Errors = %d, want 2: %v", len(result.Errors), result.Errors)
	}
	if len(result.FailedChecks()) != 2 {
		t.Errorf("FailedChecks() = %d, want 2", len(result.FailedChecks()))
	}

	if result.Error() == nil {
		t.Error("Error() = nil, want first error")
	}
	combined := result.AllErrors()
	if combined == nil || !strings.Contains(combined.Error(), ";") {
		t.Errorf("AllErrors() = %v, want combined message", combined)
	}
	if !strings.HasPrefix(result.Summary(), "✗") {
		t.Errorf("Summary() = %q", result.Summary())
	}
}

func TestCheckWithoutChecksum(t *testing.T) {
	v, err := New(Constraints{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	result := v.Check([]byte("hello"))
	if result.Checksum != "" {
		t.Errorf("Checksum = %q, want empty when disabled", result.Checksum)
	}
	if len(result.Checks) != 2 {
		t.Errorf("Checks = %d, want size+content only", len(result.Checks))
	}
}

func TestFormatSizeReadable(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{512, "512 B"},
		{KB, "1 KB"},
		{1536, "1.5 KB"},
		{10 * MB, "10 MB"},
		{int64(2.5 * float64(GB)), "2.5 GB"},
	}

	for _, tt := range tests {
		if got := FormatSizeReadable(tt.size); got != tt.expected {
			t.Errorf("FormatSizeReadable(%d) = %q, want %q", tt.size, got, tt.expected)
		}
	}
}
