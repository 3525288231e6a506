package domain

import (
	"context"
	"time"

	"skythread/internal/core/thread"
)

// ServicePort is the interface implemented by the threads service
type ServicePort interface {
	Resolve(ctx context.Context, in ResolveInput) (ResolvedPost, error)
	Fetch(ctx context.Context, in FetchInput) (ThreadView, error)
}

// AppViewPort is the read surface of the upstream AppView the service needs.
// Thread returns the anchor post and its mapped reply tree; a blocked or
// deleted anchor surfaces as a not found error, never as a nil root
type AppViewPort interface {
	Thread(ctx context.Context, uri string, depth int) (*thread.Post, []thread.Node, error)
	ResolveHandle(ctx context.Context, handle string) (string, error)
}

// MaintenancePort exposes snapshot retention to background jobs
type MaintenancePort interface {
	Prune(ctx context.Context, olderThan time.Time) (int64, error)
}

// LoadRecorderPort receives one analytics event per served thread.
// Implementations must be cheap; the service logs failures and moves on
type LoadRecorderPort interface {
	RecordLoad(ctx context.Context, did, rkey string, comments int, cacheHit bool) error
}
