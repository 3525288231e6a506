// Package repo provides clickhouse access for thread load analytics
package repo

import (
	"context"
	"time"

	perr "skythread/internal/platform/errors"
	"skythread/internal/platform/store"
	"skythread/internal/services/views/domain"
)

// loadsTable matches migrations: ts DateTime, did String, rkey String,
// comments UInt32, cache_hit UInt8
const loadsTable = "skythread.thread_loads (ts, did, rkey, comments, cache_hit)"

// CH is the clickhouse-backed views repository
type CH struct{ db store.Clickhouse }

// NewCH constructs the repository over the store seam
func NewCH(db store.Clickhouse) *CH { return &CH{db: db} }

// WriteLoads appends load events in one batch
// A disabled analytics store swallows writes silently
func (r *CH) WriteLoads(ctx context.Context, xs []domain.LoadWrite) error {
	if len(xs) == 0 || r.db == nil {
		return nil
	}
	rows := make([][]any, 0, len(xs))
	for _, x := range xs {
		hit := uint8(0)
		if x.CacheHit {
			hit = 1
		}
		rows = append(rows, []any{x.At, x.DID, x.RKey, uint32(x.Comments), hit})
	}
	return r.db.Insert(ctx, loadsTable, rows)
}

// Summary buckets loads per day inside [start, end)
func (r *CH) Summary(ctx context.Context, start, end time.Time) ([]domain.SummaryRow, error) {
	if r.db == nil {
		return nil, perr.Unavailablef("analytics store disabled")
	}
	const sql = `
SELECT toDate(ts) AS day, count() AS loads, sum(cache_hit) AS cache_hits, sum(comments) AS comments
FROM skythread.thread_loads
WHERE ts >= ? AND ts < ?
GROUP BY day
ORDER BY day ASC
`
	rs, err := r.db.Query(ctx, sql, start, end)
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	var out []domain.SummaryRow
	for rs.Next() {
		var (
			day                   time.Time
			loads, hits, comments uint64
		)
		if err := rs.Scan(&day, &loads, &hits, &comments); err != nil {
			return nil, err
		}
		out = append(out, domain.SummaryRow{
			Day:       day.Format("2006-01-02"),
			Loads:     int64(loads),
			CacheHits: int64(hits),
			Comments:  int64(comments),
		})
	}
	return out, rs.Err()
}

// Top ranks posts by load count inside [start, end)
func (r *CH) Top(ctx context.Context, start, end time.Time, limit int) ([]domain.TopPostRow, error) {
	if r.db == nil {
		return nil, perr.Unavailablef("analytics store disabled")
	}
	const sql = `
SELECT did, rkey, count() AS loads
FROM skythread.thread_loads
WHERE ts >= ? AND ts < ?
GROUP BY did, rkey
ORDER BY loads DESC, did ASC, rkey ASC
LIMIT ?
`
	rs, err := r.db.Query(ctx, sql, start, end, limit)
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	var out []domain.TopPostRow
	for rs.Next() {
		var (
			did, rkey string
			loads     uint64
		)
		if err := rs.Scan(&did, &rkey, &loads); err != nil {
			return nil, err
		}
		out = append(out, domain.TopPostRow{DID: did, RKey: rkey, Loads: int64(loads)})
	}
	return out, rs.Err()
}
