package store

import "encoding/base64"

// decodeChunk turns one chunk's raw column content into bytes. A real
// BLOB yields its bytes untouched; legacy v1 rows stored the bytes as
// base64 TEXT, so a non-empty string is base64-decoded; null or empty
// content yields zero bytes (spec.md §4.3).
func decodeChunk(data []byte, isText bool) []byte {
	if len(data) == 0 {
		return nil
	}
	if !isText {
		return data
	}
	decoded, err := base64.StdEncoding.DecodeString(string(data))
	if err != nil {
		// Not valid base64 despite TEXT affinity: treat literally,
		// the same way a tolerant reader would rather than fail a
		// read outright.
		return data
	}
	return decoded
}

// DecodeChunk is the exported form of decodeChunk, used by
// internal/persistentfs to assemble file content from raw chunk rows.
func DecodeChunk(data []byte, isText bool) []byte {
	return decodeChunk(data, isText)
}

// LegacyDecodedLen returns the byte length base64 text of length n
// with t trailing '=' padding characters decodes to: floor(n*3/4) - t.
// Used by Stat to size a legacy row without materializing its bytes
// (spec.md §4.3).
func LegacyDecodedLen(data []byte) int64 {
	n := len(data)
	if n == 0 {
		return 0
	}
	trailing := int64(0)
	for i := n - 1; i >= 0 && data[i] == '='; i-- {
		trailing++
	}
	return int64(n)*3/4 - trailing
}
