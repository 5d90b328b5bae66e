// Package source reads PoiBoi source files: BOM-aware decoding to UTF-8,
// per spec §6's "UTF-8 byte-wise input; only ASCII is lexically
// significant" contract.
package source

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Read loads path and returns its contents as a UTF-8 string, stripping
// and decoding any UTF-8/UTF-16 byte-order mark. A file with no BOM that
// is not valid UTF-8 is rejected rather than silently reinterpreted,
// since only ASCII is lexically significant to the PoiBoi grammar.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	switch {
	case len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF:
		return string(data[3:]), nil
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE:
		return decodeUTF16(data, unicode.LittleEndian)
	case len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF:
		return decodeUTF16(data, unicode.BigEndian)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: not valid UTF-8", path)
	}
	return string(data), nil
}

func decodeUTF16(data []byte, endianness unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder()
	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16: %w", err)
	}
	decoded = bytes.TrimPrefix(decoded, []byte{0xEF, 0xBB, 0xBF})
	return string(bytes.TrimPrefix(decoded, []byte("﻿"))), nil
}
