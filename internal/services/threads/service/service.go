// Package service contains threads workflows
package service

import (
	"context"
	"strings"
	"time"

	"skythread/internal/core/aturi"
	"skythread/internal/core/thread"
	"skythread/internal/modkit/repokit"
	perr "skythread/internal/platform/errors"
	"skythread/internal/platform/logger"
	"skythread/internal/services/threads/domain"
	"skythread/internal/services/threads/repo"
)

// Service defines the threads service contract
type Service interface {
	domain.ServicePort
}

// Options tune caching and upstream fetch behavior
type Options struct {
	// CacheTTL is how long a snapshot serves before it counts as stale
	CacheTTL time.Duration

	// MaxDepth caps how many reply levels are requested upstream
	MaxDepth int

	// AppView resolves handles and fetches threads (required)
	AppView domain.AppViewPort

	// Recorder receives per-load analytics events (optional)
	Recorder domain.LoadRecorderPort

	// Now is a clock seam for tests
	Now func() time.Time
}

// Svc implements the threads service
type Svc struct {
	Repo   repo.Storage
	binder repokit.Binder[repo.Storage]
	db     repokit.TxRunner

	appview  domain.AppViewPort
	recorder domain.LoadRecorderPort
	ttl      time.Duration
	maxDepth int
	now      func() time.Time
}

// New constructs a threads service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage], opt Options) *Svc {
	if db == nil {
		panic("threads.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("threads.Service requires a non nil Storage binder")
	}
	if opt.AppView == nil {
		panic("threads.Service requires a non nil AppViewPort")
	}
	if opt.CacheTTL <= 0 {
		opt.CacheTTL = 5 * time.Minute
	}
	if opt.MaxDepth <= 0 || opt.MaxDepth > 1000 {
		opt.MaxDepth = 80
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	return &Svc{
		Repo:     binder.Bind(db),
		binder:   binder,
		db:       db,
		appview:  opt.AppView,
		recorder: opt.Recorder,
		ttl:      opt.CacheTTL,
		maxDepth: opt.MaxDepth,
		now:      opt.Now,
	}
}

// Resolve normalizes a web URL or at:// URI into every locator form.
// Handle identifiers cost one upstream resolveHandle call; DID forms resolve
// without touching the network
func (s *Svc) Resolve(ctx context.Context, in domain.ResolveInput) (domain.ResolvedPost, error) {
	raw := strings.TrimSpace(in.URL)

	if ref, ok := aturi.ParseWebURL(raw); ok {
		did := ref.Identifier
		handle := ""
		if !aturi.IsDID(ref.Identifier) {
			handle = ref.Identifier
			resolved, err := s.appview.ResolveHandle(ctx, handle)
			if err != nil {
				return domain.ResolvedPost{}, err
			}
			did = resolved
		}
		uri := aturi.PostURI(did, ref.RKey)
		return domain.ResolvedPost{
			URI:    uri,
			WebURL: aturi.ToWebURL(uri, handle),
			DID:    did,
			RKey:   ref.RKey,
			Handle: handle,
		}, nil
	}

	if did, rkey, ok := aturi.ParseURI(raw); ok {
		return domain.ResolvedPost{
			URI:    raw,
			WebURL: aturi.ToWebURL(raw, ""),
			DID:    did,
			RKey:   rkey,
		}, nil
	}

	return domain.ResolvedPost{}, perr.InvalidArgf("unrecognized post locator %q", raw)
}

// Fetch resolves the locator, serves from the snapshot cache when fresh, and
// otherwise fetches upstream, then flattens under the request options.
// Cache and analytics failures degrade to upstream behavior and a log line
func (s *Svc) Fetch(ctx context.Context, in domain.FetchInput) (domain.ThreadView, error) {
	rp, err := s.Resolve(ctx, domain.ResolveInput{URL: in.URL})
	if err != nil {
		return domain.ThreadView{}, err
	}

	opts := thread.DefaultOptions()
	if in.FlattenSameAuthorThreads != nil {
		opts.FlattenSameAuthorThreads = *in.FlattenSameAuthorThreads
	}
	depth := in.MaxDepth
	if depth <= 0 || depth > s.maxDepth {
		depth = s.maxDepth
	}

	var snap domain.Snapshot
	hit := false
	if !in.Refresh {
		got, ok, err := s.Repo.Get(ctx, rp.URI)
		switch {
		case err != nil:
			logger.C(ctx).Warn().Err(err).Str("uri", rp.URI).Msg("threads: snapshot read failed, fetching upstream")
		case ok && s.now().Sub(got.FetchedAt) < s.ttl:
			snap, hit = got, true
		}
	}

	if !hit {
		root, nodes, err := s.appview.Thread(ctx, rp.URI, depth)
		if err != nil {
			return domain.ThreadView{}, err
		}
		snap = domain.Snapshot{URI: rp.URI, Root: *root, Nodes: nodes, FetchedAt: s.now().UTC()}
		if err := s.Repo.Put(ctx, snap); err != nil {
			logger.C(ctx).Warn().Err(err).Str("uri", rp.URI).Msg("threads: snapshot write failed")
		}
	}

	comments := thread.Flatten(snap.Nodes, snap.Root.Author.DID, 0, opts)
	view := domain.ThreadView{
		Post:         snap.Root,
		Comments:     comments,
		CommentCount: thread.Count(comments),
		FetchedAt:    snap.FetchedAt,
		CacheHit:     hit,
	}

	if s.recorder != nil {
		if err := s.recorder.RecordLoad(ctx, rp.DID, rp.RKey, view.CommentCount, hit); err != nil {
			logger.C(ctx).Warn().Err(err).Str("uri", rp.URI).Msg("threads: load event dropped")
		}
	}
	return view, nil
}

// Prune deletes snapshots fetched before olderThan and reports how many went.
// The sweeper drives this on a schedule
func (s *Svc) Prune(ctx context.Context, olderThan time.Time) (int64, error) {
	var n int64
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		var err error
		n, err = s.binder.Bind(q).Prune(ctx, olderThan)
		return err
	})
	return n, err
}
