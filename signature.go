package sniffkit

import (
	"bytes"
	"encoding/binary"
)

// sniffSig is a single content-type signature. match is given at most the
// first sniffLen bytes of the input together with the precomputed index of
// the first non-whitespace byte, and returns the detected content type or
// "" when the signature does not apply. Matchers never mutate data.
type sniffSig interface {
	match(data []byte, firstNonWS int) string
}

// exactSig matches when data starts with sig byte-for-byte.
type exactSig struct {
	sig []byte
	ct  string
}

func (e *exactSig) match(data []byte, firstNonWS int) string {
	if bytes.HasPrefix(data, e.sig) {
		return e.ct
	}
	return ""
}

// maskedSig matches when every input byte, ANDed with its mask byte, equals
// the corresponding pattern byte. Zero mask bytes are "don't care"
// positions, which lets a single pattern cover container formats with
// variable size fields (RIFF, FORM) and short signatures padded to a fixed
// width (UTF BOMs).
type maskedSig struct {
	mask   []byte
	pat    []byte
	skipWS bool
	ct     string
}

func (m *maskedSig) match(data []byte, firstNonWS int) string {
	// https://mimesniff.spec.whatwg.org/#pattern-matching-algorithm
	if m.skipWS {
		data = data[firstNonWS:]
	}
	if len(m.pat) != len(m.mask) {
		return ""
	}
	if len(data) < len(m.pat) {
		return ""
	}
	for i, pb := range m.pat {
		if data[i]&m.mask[i] != pb {
			return ""
		}
	}
	return m.ct
}

// htmlSig holds an uppercase tag opener such as "<HTML". ASCII letters in
// the input are uppercased before comparison; the byte following the tag
// must be a tag-terminating byte for the match to count, so "<htmlx" is not
// HTML. Always yields "text/html; charset=utf-8".
type htmlSig []byte

func (h htmlSig) match(data []byte, firstNonWS int) string {
	data = data[firstNonWS:]
	if len(data) < len(h)+1 {
		return ""
	}
	for i, b := range h {
		db := data[i]
		if 'A' <= b && b <= 'Z' {
			db &= 0xDF
		}
		if b != db {
			return ""
		}
	}
	if !isTT(data[len(h)]) {
		return ""
	}
	return "text/html; charset=utf-8"
}

var (
	mp4ftyp  = []byte("ftyp")
	mp4Brand = []byte("mp4")
)

// mp4Sig applies the ISO base media file format box rule from
// https://mimesniff.spec.whatwg.org/#signature-for-mp4: a big-endian box
// size, the "ftyp" marker, then 4-byte brand codes compared against "mp4".
type mp4Sig struct{}

func (mp4Sig) match(data []byte, firstNonWS int) string {
	if len(data) < 12 {
		return ""
	}
	boxSize := int(binary.BigEndian.Uint32(data[:4]))
	if len(data) < boxSize || boxSize%4 != 0 {
		return ""
	}
	if !bytes.Equal(data[4:8], mp4ftyp) {
		return ""
	}
	for st := 8; st < boxSize; st += 4 {
		if st == 12 {
			// Minor version number of the major brand, not a brand code.
			continue
		}
		if bytes.Equal(data[st:st+3], mp4Brand) {
			return "video/mp4"
		}
	}
	return ""
}

// textSig accepts any remaining input free of binary control bytes. It sits
// last in the table so every structural signature gets priority.
type textSig struct{}

func (textSig) match(data []byte, firstNonWS int) string {
	// https://mimesniff.spec.whatwg.org/#identifying-a-resource-with-an-unknown-mime-type
	// step 4: binary data bytes defeat the text classification.
	for _, b := range data[firstNonWS:] {
		switch {
		case b <= 0x08,
			b == 0x0B,
			0x0E <= b && b <= 0x1A,
			0x1C <= b && b <= 0x1F:
			return ""
		}
	}
	return "text/plain; charset=utf-8"
}
