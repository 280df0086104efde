// Package sanitize confines untrusted relative paths, as found in
// archive entries and other external containers, so they cannot
// escape a base directory. Processing is purely lexical: no symlink
// resolution, no filesystem access.
package sanitize

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// ErrNULByte is reported by a Sanitizer with RejectNULBytes set when
// the raw input contains an embedded NUL byte.
var ErrNULByte = errors.New("path contains NUL byte")

// SanitizedPath is a path that cannot reference anything above its
// virtual root (or above the base directory it was rooted under).
// The only way to obtain one is through Sanitize or FromString, so
// every instance satisfies that guarantee. The zero value is the
// empty path.
type SanitizedPath struct {
	p string
}

// String returns the underlying path value. The result is safe to
// hand to file-creation APIs without further validation, provided
// the base directory itself contains no symlinks pointing outside.
func (sp SanitizedPath) String() string {
	return sp.p
}

// IsZero reports whether the path is empty, as produced by empty
// input with no base.
func (sp SanitizedPath) IsZero() bool {
	return sp.p == ""
}

// Sanitizer configures the sanitize operation. The zero value is the
// relaxed default: NUL bytes are not rejected, and any path segment
// containing one is stripped.
type Sanitizer struct {
	// RejectNULBytes makes Sanitize fail with ErrNULByte when the
	// raw input contains a NUL byte, before any other processing.
	RejectNULBytes bool
}

// Sanitize cleans raw into a path confined under a virtual root and,
// when base is non-empty, joins it under base. Absolute anchors and
// platform prefixes lose their meaning, and parent references that
// would climb above the starting point are silently dropped, so no
// arrangement of ".." segments in raw can make the result resolve
// outside base.
func (s Sanitizer) Sanitize(raw, base string) (SanitizedPath, error) {
	if s.RejectNULBytes && strings.ContainsRune(raw, 0) {
		return SanitizedPath{}, fmt.Errorf(
			"sanitize %q: %w", raw, ErrNULByte,
		)
	}
	cleaned := clean(raw)
	if base != "" {
		return SanitizedPath{filepath.Join(base, cleaned)}, nil
	}
	return SanitizedPath{cleaned}, nil
}

// Sanitize is shorthand for the zero Sanitizer.
func Sanitize(raw, base string) (SanitizedPath, error) {
	return Sanitizer{}.Sanitize(raw, base)
}

// FromString sanitizes raw with no base path.
func FromString(raw string) (SanitizedPath, error) {
	return Sanitizer{}.Sanitize(raw, "")
}

// clean walks the components of raw left to right, tracking how many
// real segments sit between the virtual root and the cursor. A ".."
// is kept only while that depth is positive; at depth zero it would
// escape the root and is dropped. Root anchors and volume prefixes
// degrade to a no-op "." marker, which is what keeps an entry like
// /etc/passwd inside the extraction directory.
func clean(raw string) string {
	vol := filepath.VolumeName(raw)
	rest := filepath.ToSlash(raw[len(vol):])

	depth := 0
	var kept []string
	if vol != "" || strings.HasPrefix(rest, "/") {
		kept = append(kept, ".")
	}
	for _, seg := range strings.Split(rest, "/") {
		switch {
		case seg == "":
			// repeated separators, or the anchor handled above
		case seg == ".":
			kept = append(kept, ".")
		case seg == "..":
			if depth > 0 {
				depth--
				kept = append(kept, "..")
			}
		case strings.ContainsRune(seg, 0):
			// relaxed mode strips NUL-bearing segments
		default:
			depth++
			kept = append(kept, seg)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	// Kept ".." segments never outnumber the normal segments before
	// them, so the lexical collapse cannot surface a leading "..".
	return path.Clean(strings.Join(kept, "/"))
}

// Within reports whether full stays at or under base. It is the
// check callers can use to verify a joined result against the
// directory it was rooted in.
func Within(base, full string) bool {
	rel, err := filepath.Rel(base, full)
	if err != nil {
		return false
	}
	return rel != ".." &&
		!strings.HasPrefix(rel, "../") &&
		!filepath.IsAbs(rel)
}
