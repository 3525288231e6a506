// Package repo provides postgres access for thread snapshots
package repo

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"errors"
	"time"

	"skythread/internal/modkit/repokit"
	"skythread/internal/platform/store"
	"skythread/internal/services/threads/domain"
)

// Storage is the snapshot persistence surface
type Storage interface {
	Get(ctx context.Context, uri string) (domain.Snapshot, bool, error)
	Put(ctx context.Context, snap domain.Snapshot) error
	Prune(ctx context.Context, olderThan time.Time) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Storage interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Storage] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Storage { return &queries{q: q} }

// Get returns the snapshot for uri, reporting false on a miss
func (r *queries) Get(ctx context.Context, uri string) (domain.Snapshot, bool, error) {
	const sql = `
select root, nodes, fetched_at
from thread_snapshots
where uri = $1
`
	var (
		rootB, nodesB []byte
		fetchedAt     time.Time
	)
	if err := r.q.QueryRow(ctx, sql, uri).Scan(&rootB, &nodesB, &fetchedAt); err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return domain.Snapshot{}, false, nil
		}
		return domain.Snapshot{}, false, err
	}

	snap := domain.Snapshot{URI: uri, FetchedAt: fetchedAt}
	if err := json.Unmarshal(rootB, &snap.Root); err != nil {
		return domain.Snapshot{}, false, err
	}
	if len(nodesB) > 0 {
		if err := json.Unmarshal(nodesB, &snap.Nodes); err != nil {
			return domain.Snapshot{}, false, err
		}
	}
	return snap, true, nil
}

// Put upserts the snapshot keyed by uri
func (r *queries) Put(ctx context.Context, snap domain.Snapshot) error {
	rootB, err := json.Marshal(snap.Root)
	if err != nil {
		return err
	}
	nodesB, err := json.Marshal(snap.Nodes)
	if err != nil {
		return err
	}

	const sql = `
insert into thread_snapshots (uri, root, nodes, fetched_at)
values ($1, $2, $3, $4)
on conflict (uri) do update
set root = excluded.root, nodes = excluded.nodes, fetched_at = excluded.fetched_at
`
	return store.ExecOne(ctx, r.q, sql, snap.URI, rootB, nodesB, snap.FetchedAt)
}

// Prune deletes snapshots fetched before olderThan and reports how many went
func (r *queries) Prune(ctx context.Context, olderThan time.Time) (int64, error) {
	const sql = `delete from thread_snapshots where fetched_at < $1`
	tag, err := store.Exec(ctx, r.q, sql, olderThan)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Count reports how many snapshots are cached
func (r *queries) Count(ctx context.Context) (int64, error) {
	return store.Scalar[int64](ctx, r.q, `select count(*) from thread_snapshots`)
}
