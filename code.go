package drawfind

import (
	"strings"
)

// Backend identifies one of the lookup targets a drawing can be found in.
type Backend string

// Supported backends, in the order they are searched.
const (
	BackendWeb     Backend = "web"
	BackendLegacy  Backend = "legacy-archive"
	BackendCurrent Backend = "current-archive"
)

// padWidth is the width the first segment is zero-padded to for backends
// that store codes in padded form.
const padWidth = 3

// DrawingCode is a normalized drawing code, e.g. "180-570-542".
type DrawingCode string

// Segments returns the dash-separated parts of the code.
func (c DrawingCode) Segments() []string {
	return strings.Split(string(c), "-")
}

// Prefix returns the first n segments joined by dashes.
// Returns the whole code if it has fewer than n segments.
func (c DrawingCode) Prefix(n int) string {
	segments := c.Segments()
	if n > len(segments) {
		n = len(segments)
	}
	return strings.Join(segments[:n], "-")
}

func (c DrawingCode) String() string {
	return string(c)
}

// ParseDrawingCode validates the shape of a user-supplied code without
// applying any backend-specific transformation. Every segment must be a
// non-empty run of ASCII letters or digits, and there must be at least two.
func ParseDrawingCode(s string) (DrawingCode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", Errorf(EINVALID, "drawing code required")
	}
	segments := strings.Split(s, "-")
	if len(segments) < 2 {
		return "", Errorf(EINVALID, "invalid drawing code %q: use 'xxx-xxx' or 'xxx-xxx-xxx'", s)
	}
	for _, seg := range segments {
		if !isAlphanumeric(seg) {
			return "", Errorf(EINVALID, "invalid drawing code %q: segment %q must be alphanumeric", s, seg)
		}
	}
	return DrawingCode(s), nil
}

// Normalize canonicalizes a code into the form a backend stores it in.
//
// The web and legacy-archive backends zero-pad the first segment to three
// characters; the current-archive backend uses the code verbatim. The web
// backend requires exactly three segments, the archive backends two or more.
func Normalize(code string, backend Backend) (DrawingCode, error) {
	parsed, err := ParseDrawingCode(code)
	if err != nil {
		return "", err
	}
	segments := parsed.Segments()

	switch backend {
	case BackendWeb:
		if len(segments) != 3 {
			return "", Errorf(EINVALID, "invalid drawing code %q: use 'xxx-xxx-xxx'", code)
		}
		segments[0] = zeroPad(segments[0], padWidth)
	case BackendLegacy:
		segments[0] = zeroPad(segments[0], padWidth)
	case BackendCurrent:
	default:
		return "", Errorf(EINVALID, "unknown backend %q", backend)
	}

	return DrawingCode(strings.Join(segments, "-")), nil
}

func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		default:
			return false
		}
	}
	return true
}
