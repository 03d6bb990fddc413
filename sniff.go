package sniffkit

// sniffLen is the number of leading bytes the detector considers.
// Bytes past this point never influence the result.
const sniffLen = 512

// octetStream is the universal fallback returned when no signature matches.
const octetStream = "application/octet-stream"

// DetectContentType implements the algorithm described at
// https://mimesniff.spec.whatwg.org/ to determine the content type of the
// given data. It considers at most the first 512 bytes of data.
// DetectContentType always returns a valid MIME type: if it cannot determine
// a more specific one, it returns "application/octet-stream".
//
// The function performs no I/O, allocates nothing, and is safe for
// concurrent use.
func DetectContentType(data []byte) string {
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}

	// Index of the first non-whitespace byte in data.
	firstNonWS := 0
	for ; firstNonWS < len(data) && isWS(data[firstNonWS]); firstNonWS++ {
	}

	for _, sig := range sniffSignatures {
		if ct := sig.match(data, firstNonWS); ct != "" {
			return ct
		}
	}

	return octetStream
}

// isWS reports whether the provided byte is a whitespace byte (0xWS)
// as defined in https://mimesniff.spec.whatwg.org/#terminology.
func isWS(b byte) bool {
	switch b {
	case '\t', '\n', 0x0C, '\r', ' ':
		return true
	}
	return false
}

// isTT reports whether the provided byte is a tag-terminating byte (0xTT)
// as defined in https://mimesniff.spec.whatwg.org/#terminology.
func isTT(b byte) bool {
	switch b {
	case ' ', '>':
		return true
	}
	return false
}
