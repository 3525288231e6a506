// Package domain holds DTOs for threads http and service contracts
package domain

// ResolveInput normalizes a post locator without fetching anything
// URL accepts either a bsky.app web URL or a canonical at:// post URI
type ResolveInput struct {
	URL string `json:"url" validate:"required,min=8,max=1024" example:"https://bsky.app/profile/alice.bsky.social/post/3kxyz"` //nolint:lll
}

// FetchInput asks for the flattened thread behind a locator
type FetchInput struct {
	URL string `json:"url" validate:"required,min=8,max=1024" example:"https://bsky.app/profile/alice.bsky.social/post/3kxyz"` //nolint:lll

	// FlattenSameAuthorThreads overrides the server default when set
	FlattenSameAuthorThreads *bool `json:"flatten_same_author_threads,omitempty" example:"true"`

	// MaxDepth bounds how many reply levels are requested upstream
	MaxDepth int `json:"max_depth,omitempty" validate:"omitempty,min=1,max=1000" example:"80"`

	// Refresh bypasses the snapshot cache and forces an upstream fetch
	Refresh bool `json:"refresh,omitempty" example:"false"`
}
