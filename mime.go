package sniffkit

import "strings"

// MediaTypeGroup names a family of content types the detector can produce.
type MediaTypeGroup string

const (
	AllImages MediaTypeGroup = "image/*"
	AllAudio  MediaTypeGroup = "audio/*"
	AllVideo  MediaTypeGroup = "video/*"
	AllText   MediaTypeGroup = "text/*"
	AllFonts  MediaTypeGroup = "font/*"
	AllTypes  MediaTypeGroup = "*/*"
)

// mediaTypeGroups maps each group to the concrete content types the
// signature table can return for it.
var mediaTypeGroups = map[MediaTypeGroup][]string{
	AllImages: {
		"image/x-icon",
		"image/bmp",
		"image/gif",
		"image/webp",
		"image/png",
		"image/jpeg",
	},
	AllAudio: {
		"audio/basic",
		"audio/aiff",
		"audio/mpeg",
		"application/ogg",
		"audio/midi",
		"audio/wave",
	},
	AllVideo: {
		"video/avi",
		"video/mp4",
		"video/webm",
	},
	AllText: {
		"text/html; charset=utf-8",
		"text/xml; charset=utf-8",
		"text/plain; charset=utf-8",
		"text/plain; charset=utf-16be",
		"text/plain; charset=utf-16le",
	},
	AllFonts: {
		"application/vnd.ms-fontobject",
		"font/ttf",
		"font/otf",
		"font/collection",
		"font/woff",
		"font/woff2",
	},
}

// sniffableTypes lists every content type the detector can return,
// fallback included, in table order.
var sniffableTypes = []string{
	"text/html; charset=utf-8",
	"text/xml; charset=utf-8",
	"application/pdf",
	"application/postscript",
	"text/plain; charset=utf-16be",
	"text/plain; charset=utf-16le",
	"text/plain; charset=utf-8",
	"image/x-icon",
	"image/bmp",
	"image/gif",
	"image/webp",
	"image/png",
	"image/jpeg",
	"audio/basic",
	"audio/aiff",
	"audio/mpeg",
	"application/ogg",
	"audio/midi",
	"video/avi",
	"audio/wave",
	"video/mp4",
	"video/webm",
	"application/vnd.ms-fontobject",
	"font/ttf",
	"font/otf",
	"font/collection",
	"font/woff",
	"font/woff2",
	"application/x-gzip",
	"application/zip",
	"application/x-rar-compressed",
	"application/wasm",
	octetStream,
}

// SniffableTypes returns the fixed set of content types DetectContentType
// can produce, including the "application/octet-stream" fallback.
func SniffableTypes() []string {
	out := make([]string, len(sniffableTypes))
	copy(out, sniffableTypes)
	return out
}

// ExpandGroup resolves a media type group to the concrete content types the
// detector can return for it. Unknown groups resolve to nil; AllTypes
// resolves to every sniffable type.
func ExpandGroup(group MediaTypeGroup) []string {
	if group == AllTypes {
		return SniffableTypes()
	}
	types, ok := mediaTypeGroups[group]
	if !ok {
		return nil
	}
	out := make([]string, len(types))
	copy(out, types)
	return out
}

// MediaType strips any parameters (such as "; charset=utf-8") from a
// content type, leaving the bare type/subtype.
func MediaType(contentType string) string {
	if idx := strings.IndexByte(contentType, ';'); idx >= 0 {
		contentType = contentType[:idx]
	}
	return strings.TrimSpace(contentType)
}

// Category returns a human-readable category for a content type
func Category(contentType string) string {
	mt := MediaType(contentType)
	switch {
	case strings.HasPrefix(mt, "image/"):
		return "image"
	case strings.HasPrefix(mt, "video/"):
		return "video"
	case strings.HasPrefix(mt, "audio/"), mt == "application/ogg":
		return "audio"
	case strings.HasPrefix(mt, "text/"):
		return "text"
	case strings.HasPrefix(mt, "font/"), mt == "application/vnd.ms-fontobject":
		return "font"
	case strings.Contains(mt, "zip") || strings.Contains(mt, "gzip") ||
		strings.Contains(mt, "rar"):
		return "archive"
	case mt == "application/pdf" || mt == "application/postscript":
		return "document"
	case IsExecutable(mt):
		return "executable"
	default:
		return "other"
	}
}

// executableTypes lists content types that indicate an executable. The
// sniffing table never produces these, but upstream sources hand over
// declared types too and callers bucket them with the same helpers.
var executableTypes = map[string]bool{
	"application/x-msdownload":    true,
	"application/x-msdos-program": true,
	"application/x-executable":    true,
	"application/x-mach-binary":   true,
	"application/x-sharedlib":     true,
	"application/x-dosexec":       true,
}

// IsExecutable returns true if the content type indicates an executable
func IsExecutable(contentType string) bool {
	return executableTypes[MediaType(contentType)]
}

// IsBinary returns true if the content type is typically binary (not text)
func IsBinary(contentType string) bool {
	mt := MediaType(contentType)
	textPrefixes := []string{
		"text/",
		"application/json",
		"application/xml",
		"application/javascript",
	}

	for _, prefix := range textPrefixes {
		if strings.HasPrefix(mt, prefix) {
			return false
		}
	}

	return true
}
