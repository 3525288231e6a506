package appview

import (
	"skythread/internal/core/sanitize"
	"skythread/internal/core/thread"
)

// MapPost converts a post view into the core post shape
// Text is sanitized here so the core and everything downstream only ever
// sees cleaned third-party content
func MapPost(v *PostView) *thread.Post {
	if v == nil {
		return nil
	}
	return &thread.Post{
		ID:  v.CID,
		URI: v.URI,
		Author: thread.Author{
			DID:         v.Author.DID,
			Handle:      v.Author.Handle,
			DisplayName: sanitize.Clean(v.Author.DisplayName),
			Avatar:      v.Author.Avatar,
		},
		Text:        sanitize.Clean(v.Record.Text),
		CreatedAt:   v.CreatedAt(),
		LikeCount:   v.LikeCount,
		ReplyCount:  v.ReplyCount,
		RepostCount: v.RepostCount,
	}
}

// MapNodes converts the union reply tree into core nodes
// This is the single place the open union is classified: blocked, not found,
// and unknown variants become placeholder nodes (nil Post) that the flattener
// silently drops
func MapNodes(replies []ThreadNode) []thread.Node {
	if len(replies) == 0 {
		return nil
	}
	out := make([]thread.Node, 0, len(replies))
	for _, n := range replies {
		if !n.IsThreadViewPost() {
			out = append(out, thread.Node{})
			continue
		}
		out = append(out, thread.Node{
			Post:    MapPost(n.Post),
			Replies: MapNodes(n.Replies),
		})
	}
	return out
}
