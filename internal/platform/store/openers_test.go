package store

import (
	"context"
	"testing"
	"time"
)

// fastFailPGURL points at a closed port so pings fail immediately
func fastFailPGURL() string {
	return "postgres://u:p@127.0.0.1:1/db?sslmode=disable"
}

func TestOpenPG_ParentAlreadyCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := Config{PG: PGConfig{URL: fastFailPGURL(), MaxConns: 2}}
	s := &Store{}

	start := time.Now()
	txr, err := openPG(ctx, cfg, s)
	elapsed := time.Since(start)

	if err == nil {
		t.Fatalf("expected error due to canceled context, got nil (txr=%T)", txr)
	}
	if txr != nil {
		t.Fatalf("expected nil TxRunner on canceled context, got %T", txr)
	}
	// no DNS, immediate ECONNREFUSED, so this should be quick
	if elapsed > time.Second {
		t.Fatalf("expected quick failure, got %v", elapsed)
	}
}

func TestOpenPG_BackoffThenCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := Config{PG: PGConfig{URL: fastFailPGURL(), MaxConns: 2}}

	// cancel a bit after the first 150ms backoff sleep so the retry loop
	// observes ctx.Err() on its next iteration
	go func() {
		time.Sleep(160 * time.Millisecond)
		cancel()
	}()

	s := &Store{}

	start := time.Now()
	txr, err := openPG(ctx, cfg, s)
	elapsed := time.Since(start)

	if err == nil {
		t.Fatalf("expected error due to parent cancellation, got nil (txr=%T)", txr)
	}
	if txr != nil {
		t.Fatalf("expected nil TxRunner when parent is canceled, got %T", txr)
	}
	if elapsed < 140*time.Millisecond {
		t.Fatalf("expected at least one backoff sleep (~150ms), got %v", elapsed)
	}
	if elapsed > time.Second {
		t.Fatalf("test took too long (%v); expected early cancel", elapsed)
	}
}

func TestOpenCH_BadDSN(t *testing.T) {
	t.Parallel()

	cfg := Config{CH: CHConfig{URL: "://bad"}}
	c, err := openCH(context.Background(), cfg, nil)
	if err == nil {
		t.Fatalf("expected DSN parse error, got client %T", c)
	}
}

func TestOpenCH_RoleFallsBackToAppName(t *testing.T) {
	t.Parallel()

	// no server behind the port; the point is that Open fails on ping, not parse
	cfg := Config{
		AppName: "skythread",
		CH:      CHConfig{URL: "clickhouse://127.0.0.1:1/default?dial_timeout=200ms"},
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c, err := openCH(ctx, cfg, nil)
	if err == nil {
		t.Fatalf("expected connect error, got client %T", c)
	}
}
