// Package aturi translates between bsky.app web URLs and at:// record URIs
// Both directions are soft-failure pure functions: third-party locators are
// routinely malformed or point at non-post records, so a miss is a value,
// never an error
package aturi

import (
	"regexp"
	"strings"
)

// FeedPostCollection is the NSID of the feed post record type
const FeedPostCollection = "app.bsky.feed.post"

// webHost is the canonical host for human-facing post URLs
const webHost = "https://bsky.app"

var (
	// scheme://host/profile/<identifier>/post/<rkey>
	// identifier excludes '/', rkey excludes '/', '?', '#'
	webURLRe = regexp.MustCompile(`^https?://[^/]+/profile/([^/]+)/post/([^/?#]+)`)

	// at://<did>/app.bsky.feed.post/<rkey>
	postURIRe = regexp.MustCompile(`^at://([^/]+)/` + regexp.QuoteMeta(FeedPostCollection) + `/([^/?#]+)$`)
)

// WebRef is a post reference extracted from a web URL
// Identifier is a handle or a DID, RKey is the opaque record key
type WebRef struct {
	Identifier string
	RKey       string
}

// ParseWebURL extracts the profile identifier and record key from a
// bsky.app style post URL. ok is false when s is not a web post locator;
// callers then try the at:// form instead
func ParseWebURL(s string) (WebRef, bool) {
	m := webURLRe.FindStringSubmatch(s)
	if m == nil {
		return WebRef{}, false
	}
	return WebRef{Identifier: m[1], RKey: m[2]}, true
}

// ToWebURL converts an at:// feed post URI to its canonical web URL.
// When handle is non-empty it replaces the DID segment so the link is
// human readable. Returns "" for anything that is not a feed post URI,
// including other record collections
func ToWebURL(uri, handle string) string {
	m := postURIRe.FindStringSubmatch(uri)
	if m == nil {
		return ""
	}
	id := m[1]
	if handle != "" {
		id = handle
	}
	return webHost + "/profile/" + id + "/post/" + m[2]
}

// ParseURI splits an at:// feed post URI into its authority and record key.
// ok is false for anything that is not a feed post URI
func ParseURI(uri string) (did, rkey string, ok bool) {
	m := postURIRe.FindStringSubmatch(uri)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// PostURI builds the at:// URI for a feed post record
func PostURI(did, rkey string) string {
	return "at://" + did + "/" + FeedPostCollection + "/" + rkey
}

// IsDID reports whether the identifier is a DID rather than a handle
func IsDID(s string) bool { return strings.HasPrefix(s, "did:") }
