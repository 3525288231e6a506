package module

import (
	"context"
	"time"

	vdom "skythread/internal/services/views/domain"
)

// loadRecorder adapts the views writer to the threads analytics port
type loadRecorder struct{ w vdom.WriterPort }

func (l loadRecorder) RecordLoad(ctx context.Context, did, rkey string, comments int, cacheHit bool) error {
	return l.w.RecordLoad(ctx, vdom.LoadWrite{
		At:       time.Now().UTC(),
		DID:      did,
		RKey:     rkey,
		Comments: comments,
		CacheHit: cacheHit,
	})
}
