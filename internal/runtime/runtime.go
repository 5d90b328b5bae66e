// Package runtime ships the PBString value-type runtime (spec §4.6) as an
// embedded text blob, grounded on the go:embed pattern the corpus uses to
// bundle generated/static text assets into the compiler binary rather
// than reading them from a known on-disk path at codegen time.
package runtime

import _ "embed"

//go:embed poiboi_string.h
var header string

//go:embed poiboi_string.cc
var source string

// Blob returns the runtime's header and implementation, concatenated in
// the order the emitted program's preamble expects.
func Blob() string {
	return header + "\n" + source
}
