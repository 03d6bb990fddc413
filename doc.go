// Package sniffkit determines the MIME content type of a byte buffer by
// inspecting its leading bytes, following the WHATWG MIME Sniffing
// algorithm (https://mimesniff.spec.whatwg.org/). It is meant for the
// places where a content type must be inferred because none was supplied,
// or the supplied one cannot be trusted: serving static files, accepting
// uploads, labeling blobs pulled out of storage.
//
// # Features
//
//   - WHATWG signature table: HTML, XML, images, audio, video, fonts,
//     archives, WASM, with the prescribed first-match-wins ordering
//   - Examines at most the first 512 bytes; input length never matters
//   - Total: always returns a valid MIME type, never an error, with
//     "application/octet-stream" as the universal fallback
//   - Pure function over immutable data, safe for concurrent use
//   - Checksum helpers (md5, sha1, sha256, sha512, crc32, xxhash) for
//     reporting content digests alongside detection
//
// # Quick Start
//
//	ct := sniffkit.DetectContentType(data)
//	// "image/png", "text/html; charset=utf-8", ...
//
// Helpers for working with the detected type:
//
//	sniffkit.Category("video/mp4")                 // "video"
//	sniffkit.IsBinary("text/html; charset=utf-8")  // false
//	sniffkit.ExpandGroup(sniffkit.AllImages)       // concrete image types
//
// # Validation
//
// The [typevalidator] subpackage builds payload validation on top of the
// detector: accepted/blocked type patterns (including globs like
// "image/*"), size bounds, and detailed per-check reports.
//
// # Design Philosophy
//
// Sniffing classifies content; it does not validate it. The detector reads
// only the 512-byte prefix, never decodes media, and never consults
// filenames, extensions, or transport headers. Callers that need deep
// structural validation (archive safety, image dimensions) should layer a
// dedicated tool on top of the detected type.
package sniffkit
