// Package thread turns the nested reply tree returned by the AppView into a
// flat, render-ready comment list
// Per level the transform is
// 1 Drop nodes that are not real posts (blocked, not found, unknown variants)
// 2 Build a comment at the current depth and recurse into its replies one deeper
// 3 Optionally promote same-author continuations up to the current level
// 4 Sort sibling groups by engagement, stable on the original order
// Input nodes are never mutated; every returned comment is freshly allocated
package thread

import (
	"sort"
	"time"
)

// Author identifies who wrote a post
type Author struct {
	DID         string `json:"did"`
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}

// Post is the valid-post payload of a reply node
type Post struct {
	ID          string    `json:"id"`
	URI         string    `json:"uri"`
	Author      Author    `json:"author"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"createdAt"`
	LikeCount   int64     `json:"likeCount"`
	ReplyCount  int64     `json:"replyCount"`
	RepostCount int64     `json:"repostCount"`
}

// Node is one element of the raw reply tree
// Post is nil when the upstream variant was blocked, not found, or otherwise
// not a post; such nodes are skipped, never errored. The variant check happens
// once at the adapter boundary so this package only sees the closed union
type Node struct {
	Post    *Post  `json:"post,omitempty"`
	Replies []Node `json:"replies,omitempty"`
}

// Options control the flatten transform
type Options struct {
	// FlattenSameAuthorThreads promotes a reply authored by its parent's
	// author to sit beside the parent at the same depth (thread-continuation
	// style) instead of nesting one level deeper
	FlattenSameAuthorThreads bool
}

// DefaultOptions enables same-author flattening
func DefaultOptions() Options {
	return Options{FlattenSameAuthorThreads: true}
}

// Comment is a depth-annotated, render-ready reply
// Depth is semantic, not structural: promoted continuations carry the depth of
// the comment they continue even though their own Replies nest deeper
type Comment struct {
	ID          string    `json:"id"`
	URI         string    `json:"uri"`
	Author      Author    `json:"author"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"createdAt"`
	LikeCount   int64     `json:"likeCount"`
	ReplyCount  int64     `json:"replyCount"`
	RepostCount int64     `json:"repostCount"`
	Depth       int       `json:"depth"`
	Replies     []Comment `json:"replies"`
	// ParentAuthorDID is the author of the comment this one replies to.
	// For a promoted continuation it equals the comment's own author
	ParentAuthorDID string `json:"parentAuthorDid,omitempty"`
}

// group keeps a head comment together with its promoted continuations so
// sorting can never interleave one run with another
type group struct {
	head Comment
	tail []Comment
}

// Flatten converts the direct children in replies into an ordered comment list.
// parentAuthorDID is the author of the comment these replies hang off of and
// depth is the current nesting level; recursion descends with the child's own
// author and depth+1. Empty or all-invalid input yields an empty list
func Flatten(replies []Node, parentAuthorDID string, depth int, opts Options) []Comment {
	out := make([]Comment, 0, len(replies))
	if len(replies) == 0 {
		return out
	}

	groups := make([]group, 0, len(replies))
	for _, n := range replies {
		if n.Post == nil {
			continue
		}
		p := n.Post

		c := Comment{
			ID:              p.ID,
			URI:             p.URI,
			Author:          p.Author,
			Text:            p.Text,
			CreatedAt:       p.CreatedAt,
			LikeCount:       p.LikeCount,
			ReplyCount:      p.ReplyCount,
			RepostCount:     p.RepostCount,
			Depth:           depth,
			ParentAuthorDID: parentAuthorDID,
		}

		children := Flatten(n.Replies, p.Author.DID, depth+1, opts)

		var tail []Comment
		if opts.FlattenSameAuthorThreads {
			kept := make([]Comment, 0, len(children))
			for _, ch := range children {
				if ch.Author.DID == p.Author.DID {
					// continuation: surfaces beside its head at the head's
					// depth. Promotion in the recursive call already lifted
					// deeper continuations to the top of children, so the
					// effect is transitive but scoped to this level
					ch.Depth = depth
					ch.ParentAuthorDID = p.Author.DID
					tail = append(tail, ch)
					continue
				}
				kept = append(kept, ch)
			}
			children = kept
		}
		c.Replies = children

		groups = append(groups, group{head: c, tail: tail})
	}

	// engagement order on the head only; continuations ride along unsorted.
	// SliceStable keeps the original sibling order on ties
	sort.SliceStable(groups, func(i, j int) bool {
		return engagement(groups[i].head) > engagement(groups[j].head)
	})

	for _, g := range groups {
		out = append(out, g.head)
		out = append(out, g.tail...)
	}
	return out
}

// engagement is the sibling sort key. Reposts are deliberately not counted
func engagement(c Comment) int64 { return c.LikeCount + c.ReplyCount }

// Count returns the total number of comments including nested replies
func Count(comments []Comment) int {
	n := 0
	for i := range comments {
		n += 1 + Count(comments[i].Replies)
	}
	return n
}
