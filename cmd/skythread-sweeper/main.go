// skythread-sweeper enforces snapshot cache retention: one shot with -once,
// otherwise an interval loop until SIGINT/SIGTERM
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"skythread/internal/modkit/repokit"
	"skythread/internal/platform/config"
	"skythread/internal/platform/logger"
	"skythread/internal/platform/store"

	sweepsvc "skythread/internal/services/sweeper/service"
	trepo "skythread/internal/services/threads/repo"
)

// pgPruner runs the snapshot delete inside a transaction
type pgPruner struct {
	db     repokit.TxRunner
	binder repokit.Binder[trepo.Storage]
}

func (p pgPruner) Prune(ctx context.Context, olderThan time.Time) (int64, error) {
	var n int64
	err := repokit.WithTx(ctx, p.db, func(q repokit.Queryer) error {
		var err error
		n, err = p.binder.Bind(q).Prune(ctx, olderThan)
		return err
	})
	if err != nil {
		return 0, err
	}
	if left, cerr := p.binder.Bind(p.db).Count(ctx); cerr == nil {
		logger.Get().Debug().Int64("remaining", left).Msg("sweeper: snapshots left in cache")
	}
	return n, nil
}

func main() {
	_ = godotenv.Load()

	root := config.New()
	swCfg := root.Prefix("CORE_SWEEPER_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()

	var (
		fOnce      = flag.Bool("once", false, "run a single sweep and exit")
		fRetention = flag.Duration("retention", swCfg.MayDuration("RETENTION", 7*24*time.Hour), "snapshot retention window")
		fInterval  = flag.Duration("interval", swCfg.MayDuration("INTERVAL", time.Hour), "pause between sweeps in loop mode")
	)
	flag.Parse()

	st, err := store.Open(context.Background(), store.Config{
		AppName: "skythread",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 2)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	svc := sweepsvc.New(
		pgPruner{db: repokit.TxRunner(st.PG), binder: trepo.NewPG()},
		sweepsvc.Config{Retention: *fRetention, Interval: *fInterval},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *fOnce {
		if _, err := svc.SweepOnce(ctx); err != nil {
			l.Fatal().Err(err).Msg("sweeper: sweep failed")
		}
		return
	}

	if err := svc.Run(ctx); err != nil && ctx.Err() == nil {
		l.Fatal().Err(err).Msg("sweeper: loop stopped")
	}
	l.Info().Msg("sweeper: shutdown complete")
}
