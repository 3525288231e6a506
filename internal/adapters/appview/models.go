package appview

import "time"

// Union $type tags for thread nodes as returned by getPostThread
const (
	TypeThreadViewPost = "app.bsky.feed.defs#threadViewPost"
	TypeNotFoundPost   = "app.bsky.feed.defs#notFoundPost"
	TypeBlockedPost    = "app.bsky.feed.defs#blockedPost"
)

// ActorBasic is a partial actor profile view with the fields we use
type ActorBasic struct {
	DID         string `json:"did"`
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}

// FeedPostRecord is the post record payload inside a post view
type FeedPostRecord struct {
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

// PostView is a partial app.bsky.feed.defs#postView document
type PostView struct {
	URI         string         `json:"uri"`
	CID         string         `json:"cid"`
	Author      ActorBasic     `json:"author"`
	Record      FeedPostRecord `json:"record"`
	ReplyCount  int64          `json:"replyCount"`
	RepostCount int64          `json:"repostCount"`
	LikeCount   int64          `json:"likeCount"`
	IndexedAt   string         `json:"indexedAt"`
}

// ThreadNode is the open union element of a thread response
// Exactly one variant's fields are populated depending on Type; unknown
// variants decode to a node that classifies as none of the three
type ThreadNode struct {
	Type string `json:"$type"`

	// threadViewPost
	Post    *PostView    `json:"post,omitempty"`
	Replies []ThreadNode `json:"replies,omitempty"`

	// notFoundPost / blockedPost
	URI      string `json:"uri,omitempty"`
	NotFound bool   `json:"notFound,omitempty"`
	Blocked  bool   `json:"blocked,omitempty"`
}

// IsThreadViewPost reports whether the node is a real post view
func (n ThreadNode) IsThreadViewPost() bool {
	return n.Type == TypeThreadViewPost && n.Post != nil
}

// IsNotFound reports whether the node is a deleted or missing post
func (n ThreadNode) IsNotFound() bool { return n.Type == TypeNotFoundPost }

// IsBlocked reports whether the node is hidden by a block
func (n ThreadNode) IsBlocked() bool { return n.Type == TypeBlockedPost }

// CreatedAt parses the record timestamp; zero time when absent or malformed
// (third-party records carry arbitrary client-written timestamps)
func (v PostView) CreatedAt() time.Time {
	t, err := time.Parse(time.RFC3339, v.Record.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
