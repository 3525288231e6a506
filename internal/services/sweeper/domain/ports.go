// Package domain holds the sweeper contracts
package domain

import (
	"context"
	"time"
)

// PrunerPort deletes thread snapshots fetched before the cutoff and reports
// how many rows went
type PrunerPort interface {
	Prune(ctx context.Context, olderThan time.Time) (int64, error)
}
