// Package domain holds threads core types independent of transport or storage
package domain

import (
	"time"

	"skythread/internal/core/thread"
)

// ResolvedPost is a post locator in every form callers care about
type ResolvedPost struct {
	URI    string `json:"uri" example:"at://did:plc:abc123/app.bsky.feed.post/3kxyz"`
	WebURL string `json:"web_url" example:"https://bsky.app/profile/alice.bsky.social/post/3kxyz"`
	DID    string `json:"did" example:"did:plc:abc123"`
	RKey   string `json:"rkey" example:"3kxyz"`
	Handle string `json:"handle,omitempty" example:"alice.bsky.social"`
}

// Snapshot is one cached AppView fetch: the anchor post plus the mapped reply
// tree. The tree is stored raw, before flattening, so per request options
// re-flatten cheaply and never contaminate the cache
type Snapshot struct {
	URI       string
	Root      thread.Post
	Nodes     []thread.Node
	FetchedAt time.Time
}

// ThreadView is the rendered result served to embeds
type ThreadView struct {
	Post         thread.Post      `json:"post"`
	Comments     []thread.Comment `json:"comments"`
	CommentCount int              `json:"comment_count" example:"42"`
	FetchedAt    time.Time        `json:"fetched_at" example:"2026-08-25T12:00:00Z"`
	CacheHit     bool             `json:"cache_hit" example:"true"`
}
