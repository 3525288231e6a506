// Package sanitize cleans third-party post text before it is stored or served
// Pipeline order
// 1 Drop invalid UTF-8 bytes
// 2 Strip NUL, C0 controls except '\n' '\r' '\t', DEL, and C1 controls
// 3 Unicode NFC normalization
// 4 Remove format characters (directional overrides, ZWSP and friends)
// ZWJ is kept so composed emoji sequences survive display
package sanitize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const zwj = '\u200d'

// pool of fresh transformer chains; a Chain carries state so instances
// cannot be shared concurrently
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFC,
			runes.Remove(runes.Predicate(func(r rune) bool {
				return unicode.Is(unicode.Cf, r) && r != zwj
			})),
		)
	},
}

// Clean returns the sanitized form of s following the pipeline above
// Pure and idempotent; safe for concurrent use
func Clean(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(s, "")
	s = stripControls(s)

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// transform errors only on malformed input, which step 1 removed;
		// fall back to the control-stripped string just in case
		return s
	}
	return out
}

// stripControls removes control characters that have no business in a comment
// body: NUL and other C0 controls (newline, carriage return and tab stay),
// DEL, and the C1 range
func stripControls(s string) string {
	clean := true
	for _, r := range s {
		if isBadControl(r) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isBadControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isBadControl(r rune) bool {
	switch {
	case r == '\n' || r == '\r' || r == '\t':
		return false
	case r < 0x20:
		return true
	case r == 0x7F:
		return true
	case r >= 0x80 && r <= 0x9F:
		return true
	}
	return false
}
