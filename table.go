package sniffkit

// sniffSignatures is the signature table from
// https://mimesniff.spec.whatwg.org/ section 6. Ordering is semantically
// significant: the first matching entry wins, and the audio/video group
// must be tried in the prescribed order. Do not sort or reorder.
var sniffSignatures = []sniffSig{
	htmlSig("<!DOCTYPE HTML"),
	htmlSig("<HTML"),
	htmlSig("<HEAD"),
	htmlSig("<SCRIPT"),
	htmlSig("<IFRAME"),
	htmlSig("<H1"),
	htmlSig("<DIV"),
	htmlSig("<FONT"),
	htmlSig("<TABLE"),
	htmlSig("<A"),
	htmlSig("<STYLE"),
	htmlSig("<TITLE"),
	htmlSig("<B"),
	htmlSig("<BODY"),
	htmlSig("<BR"),
	htmlSig("<P"),
	htmlSig("<!--"),
	&maskedSig{
		mask:   []byte("\xFF\xFF\xFF\xFF\xFF"),
		pat:    []byte("<?xml"),
		skipWS: true,
		ct:     "text/xml; charset=utf-8",
	},
	&exactSig{sig: []byte("%PDF-"), ct: "application/pdf"},
	&exactSig{sig: []byte("%!PS-Adobe-"), ct: "application/postscript"},

	// UTF BOMs. The patterns are padded to four bytes with zero mask bytes
	// so the trailing positions never constrain the input.
	&maskedSig{
		mask: []byte("\xFF\xFF\x00\x00"),
		pat:  []byte("\xFE\xFF\x00\x00"),
		ct:   "text/plain; charset=utf-16be",
	},
	&maskedSig{
		mask: []byte("\xFF\xFF\x00\x00"),
		pat:  []byte("\xFF\xFE\x00\x00"),
		ct:   "text/plain; charset=utf-16le",
	},
	&maskedSig{
		mask: []byte("\xFF\xFF\xFF\x00"),
		pat:  []byte("\xEF\xBB\xBF\x00"),
		ct:   "text/plain; charset=utf-8",
	},

	// Image types. "image/x-icon" covers both the icon and cursor
	// signatures per section 6.2 of the WHATWG spec.
	&exactSig{sig: []byte("\x00\x00\x01\x00"), ct: "image/x-icon"},
	&exactSig{sig: []byte("\x00\x00\x02\x00"), ct: "image/x-icon"},
	&exactSig{sig: []byte("BM"), ct: "image/bmp"},
	&exactSig{sig: []byte("GIF87a"), ct: "image/gif"},
	&exactSig{sig: []byte("GIF89a"), ct: "image/gif"},
	&maskedSig{
		mask: []byte("\xFF\xFF\xFF\xFF\x00\x00\x00\x00\xFF\xFF\xFF\xFF\xFF\xFF"),
		pat:  []byte("RIFF\x00\x00\x00\x00WEBPVP"),
		ct:   "image/webp",
	},
	&exactSig{sig: []byte("\x89PNG\x0D\x0A\x1A\x0A"), ct: "image/png"},
	&exactSig{sig: []byte("\xFF\xD8\xFF"), ct: "image/jpeg"},

	// Audio and video types, in the pattern match ordering prescribed by
	// https://mimesniff.spec.whatwg.org/#matching-an-audio-or-video-type-pattern.
	&maskedSig{
		mask: []byte("\xFF\xFF\xFF\xFF"),
		pat:  []byte(".snd"),
		ct:   "audio/basic",
	},
	&maskedSig{
		mask: []byte("\xFF\xFF\xFF\xFF\x00\x00\x00\x00\xFF\xFF\xFF\xFF"),
		pat:  []byte("FORM\x00\x00\x00\x00AIFF"),
		ct:   "audio/aiff",
	},
	&maskedSig{
		mask: []byte("\xFF\xFF\xFF"),
		pat:  []byte("ID3"),
		ct:   "audio/mpeg",
	},
	&maskedSig{
		mask: []byte("\xFF\xFF\xFF\xFF\xFF"),
		pat:  []byte("OggS\x00"),
		ct:   "application/ogg",
	},
	&maskedSig{
		mask: []byte("\xFF\xFF\xFF\xFF\xFF\xFF\xFF\xFF"),
		pat:  []byte("MThd\x00\x00\x00\x06"),
		ct:   "audio/midi",
	},
	&maskedSig{
		mask: []byte("\xFF\xFF\xFF\xFF\x00\x00\x00\x00\xFF\xFF\xFF\xFF"),
		pat:  []byte("RIFF\x00\x00\x00\x00AVI "),
		ct:   "video/avi",
	},
	&maskedSig{
		mask: []byte("\xFF\xFF\xFF\xFF\x00\x00\x00\x00\xFF\xFF\xFF\xFF"),
		pat:  []byte("RIFF\x00\x00\x00\x00WAVE"),
		ct:   "audio/wave",
	},
	mp4Sig{},
	&exactSig{sig: []byte("\x1A\x45\xDF\xA3"), ct: "video/webm"},

	// Font types. The Embedded OpenType signature is 34 wildcard bytes
	// followed by the string "LP".
	&maskedSig{
		pat:  []byte("\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00LP"),
		mask: []byte("\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\xFF\xFF"),
		ct:   "application/vnd.ms-fontobject",
	},
	&exactSig{sig: []byte("\x00\x01\x00\x00"), ct: "font/ttf"},
	&exactSig{sig: []byte("OTTO"), ct: "font/otf"},
	&exactSig{sig: []byte("ttcf"), ct: "font/collection"},
	&exactSig{sig: []byte("wOFF"), ct: "font/woff"},
	&exactSig{sig: []byte("wOF2"), ct: "font/woff2"},

	// Archive types.
	&exactSig{sig: []byte("\x1F\x8B\x08"), ct: "application/x-gzip"},
	&exactSig{sig: []byte("PK\x03\x04"), ct: "application/zip"},
	// RAR's signatures are incorrectly defined by the MIME spec as per
	//    https://github.com/whatwg/mimesniff/issues/63
	// However, RAR Labs correctly defines it at:
	//    https://www.rarlab.com/technote.htm#rarsign
	// so we use the definition from RAR Labs.
	// TODO: do whatever the spec ends up doing.
	&exactSig{sig: []byte("Rar!\x1A\x07\x00"), ct: "application/x-rar-compressed"},     // RAR v1.5-v4.0
	&exactSig{sig: []byte("Rar!\x1A\x07\x01\x00"), ct: "application/x-rar-compressed"}, // RAR v5+

	&exactSig{sig: []byte("\x00\x61\x73\x6D"), ct: "application/wasm"},

	textSig{}, // should be last
}
