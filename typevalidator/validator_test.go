package typevalidator

import (
	"bytes"
	"testing"

	"github.com/gobeaver/sniffkit"
)

var pngHeader = []byte("\x89PNG\x0D\x0A\x1A\x0A\x00\x00\x00\x0DIHDR")

func TestValidateAcceptedTypes(t *testing.T) {
	tests := []struct {
		name     string
		accepted []string
		data     []byte
		wantErr  ValidationErrorType // "" means valid
	}{
		{
			name:     "exact type accepted",
			accepted: []string{"image/png"},
			data:     pngHeader,
		},
		{
			name:     "glob pattern accepted",
			accepted: []string{"image/*"},
			data:     pngHeader,
		},
		{
			name:     "parameters stripped before matching",
			accepted: []string{"text/html"},
			data:     []byte("<html><body>hi</body></html>"),
		},
		{
			name:     "type not accepted",
			accepted: []string{"image/*"},
			data:     []byte("plain text payload"),
			wantErr:  ErrorTypeContent,
		},
		{
			name:     "no accepted types allows everything",
			accepted: nil,
			data:     []byte{0x01, 0x02, 0x03},
		},
		{
			name:     "match all pattern",
			accepted: []string{"*/*"},
			data:     []byte("GIF89a"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New(Constraints{AcceptedTypes: tt.accepted})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			err = v.Validate(tt.data)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !IsErrorOfType(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want type %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateBlockedTypes(t *testing.T) {
	v, err := New(Constraints{
		AcceptedTypes: []string{"*/*"},
		BlockedTypes:  []string{"application/octet-stream", "application/x-rar-compressed"},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Blocked wins even though */* accepts everything.
	if err := v.Validate([]byte{0x01, 0x02, 0x03}); !IsErrorOfType(err, ErrorTypeContent) {
		t.Errorf("Validate(binary) error = %v, want content error", err)
	}
	if err := v.Validate([]byte("Rar!\x1A\x07\x00")); !IsErrorOfType(err, ErrorTypeContent) {
		t.Errorf("Validate(rar) error = %v, want content error", err)
	}
	if err := v.Validate(pngHeader); err != nil {
		t.Errorf("Validate(png) error = %v, want nil", err)
	}
}

func TestValidateSize(t *testing.T) {
	v, err := New(Constraints{MinSize: 4, MaxSize: 16})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := v.Validate([]byte("ok payload")); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
	if err := v.Validate([]byte("ab")); !IsErrorOfType(err, ErrorTypeSize) {
		t.Errorf("Validate(small) error = %v, want size error", err)
	}
	if err := v.Validate(bytes.Repeat([]byte("x"), 17)); !IsErrorOfType(err, ErrorTypeSize) {
		t.Errorf("Validate(big) error = %v, want size error", err)
	}
}

func TestValidateSizeUnbounded(t *testing.T) {
	v, err := New(Constraints{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Zero MinSize/MaxSize disables the bounds, empty payload included.
	if err := v.Validate(nil); err != nil {
		t.Errorf("Validate(nil) error = %v, want nil", err)
	}
}

func TestNewInvalidPattern(t *testing.T) {
	_, err := New(Constraints{AcceptedTypes: []string{"image/["}})
	if err == nil {
		t.Fatal("New() with invalid glob pattern, want error")
	}
}

func TestNewDefault(t *testing.T) {
	v := NewDefault()
	got := v.GetConstraints()
	want := DefaultConstraints()
	if got.MaxSize != want.MaxSize || got.MinSize != want.MinSize || got.Checksum != want.Checksum {
		t.Errorf("GetConstraints() = %+v, want defaults %+v", got, want)
	}

	if err := v.Validate(pngHeader); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
	if err := v.Validate(nil); !IsErrorOfType(err, ErrorTypeSize) {
		t.Errorf("Validate(empty) error = %v, want size error", err)
	}
}

func TestValidateUsesOnlyContent(t *testing.T) {
	// Identical bytes must validate identically regardless of where they
	// came from; there is no filename anywhere in the API to bias it.
	v, err := New(Constraints{AcceptedTypes: []string{string(sniffkit.AllImages)}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	gif := []byte("GIF87a..........")
	if err := v.Validate(gif); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}
