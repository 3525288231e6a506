package domain

import "context"

// WriterPort records served-thread events
type WriterPort interface {
	RecordLoad(ctx context.Context, x LoadWrite) error
}

// QueryPort aggregates load traffic
type QueryPort interface {
	Summary(ctx context.Context, in SummaryInput) ([]SummaryRow, error)
	Top(ctx context.Context, in TopInput) ([]TopPostRow, error)
}
