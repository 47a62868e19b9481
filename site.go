package knobs

import (
	"fmt"
	"runtime"
	"strings"
)

// SiteKey identifies one tweak annotation by its source position. Two renders
// of the same call site always produce equal keys, which is exactly the
// intended identity sharing; distinct static call sites produce distinct keys.
//
// Keys derived automatically (via [Tweak] and friends) carry a zero Column,
// because Go's call-site reflection resolves to file and line only. Use
// [SiteAt] to construct a fully explicit key.
type SiteKey struct {
	File   string
	Line   int
	Column int
}

// Here returns the SiteKey of the line it is called from.
func Here() SiteKey {
	return callerSite(1)
}

// SiteAt constructs an explicit SiteKey. Useful for helpers that declare
// tweaks on behalf of their callers, and for tests.
func SiteAt(file string, line, column int) SiteKey {
	return SiteKey{File: file, Line: line, Column: column}
}

// callerSite derives a SiteKey from the call frame skip+1 levels up.
func callerSite(skip int) SiteKey {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return SiteKey{File: "unknown"}
	}
	return SiteKey{File: file, Line: line}
}

// Compare orders keys lexicographically by (File, Line, Column).
// It returns -1, 0, or +1.
func (k SiteKey) Compare(other SiteKey) int {
	if c := strings.Compare(k.File, other.File); c != 0 {
		return c
	}
	if k.Line != other.Line {
		if k.Line < other.Line {
			return -1
		}
		return 1
	}
	if k.Column != other.Column {
		if k.Column < other.Column {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether k sorts before other. This is the display order used
// by the overlay.
func (k SiteKey) Less(other SiteKey) bool {
	return k.Compare(other) < 0
}

// String formats the key as "file:line" or "file:line:column".
func (k SiteKey) String() string {
	if k.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", k.File, k.Line, k.Column)
	}
	return fmt.Sprintf("%s:%d", k.File, k.Line)
}
