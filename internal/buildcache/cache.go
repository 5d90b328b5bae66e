// Package buildcache tracks per-file content hashes across poiboic
// builds so the `build` subcommand can skip regenerating output when
// nothing in a project's file list has changed. The manifest is a small
// JSON document read and patched with gjson/sjson rather than unmarshaled
// into a Go struct, since it is write-mostly (one field updated per
// file) and never needs a schema beyond "path -> hash".
package buildcache

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Cache is an in-memory view of a manifest document, flushed to disk by
// Save.
type Cache struct {
	path string
	raw  string
}

// Open loads the manifest at path, or starts an empty one if it does not
// exist yet or is not valid JSON.
func Open(path string) (*Cache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Cache{path: path, raw: "{}"}, nil
		}
		return nil, err
	}
	if !gjson.Valid(string(data)) {
		return &Cache{path: path, raw: "{}"}, nil
	}
	return &Cache{path: path, raw: string(data)}, nil
}

// Fresh reports whether file's previously recorded hash equals hash.
func (c *Cache) Fresh(file, hash string) bool {
	if hash == "" {
		return false
	}
	return gjson.Get(c.raw, recordPath(file)).String() == hash
}

// Record updates file's hash in the in-memory manifest; Save persists it.
func (c *Cache) Record(file, hash string) error {
	updated, err := sjson.Set(c.raw, recordPath(file), hash)
	if err != nil {
		return fmt.Errorf("recording hash for %s: %w", file, err)
	}
	c.raw = updated
	return nil
}

// Save writes the manifest back to its path.
func (c *Cache) Save() error {
	return os.WriteFile(c.path, []byte(c.raw), 0o644)
}

// recordPath builds a gjson/sjson path addressing one file's hash field.
// In gjson/sjson path syntax '.' separates keys and '\' escapes, so both
// (and '/') are replaced before the file path is used as a key.
func recordPath(file string) string {
	key := strings.NewReplacer(".", "_dot_", "/", "_slash_", "\\", "_bslash_").Replace(file)
	return "files." + key + ".hash"
}
