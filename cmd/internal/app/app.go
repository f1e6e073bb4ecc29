// Package app wires the Lineage server runtime: config, logging, the database
// pool, and the HTTP API surface.
package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"lineage/cmd/identity"
	authapi "lineage/cmd/internal/auth/api"
	"lineage/cmd/internal/auth/session"
	"lineage/cmd/internal/auth/token"
	"lineage/cmd/internal/tree"
)

// App is the Lineage server runtime. It owns the database pool and the wired
// HTTP handler; sessions live in process memory and die with it.
type App struct {
	cfg Config
	log Logger

	dbPool *pgxpool.Pool

	auth *authapi.Handler
}

// New constructs a fully wired App instance from config and logger.
// The database is mandatory: identity, token, and tree operations all go
// through stored procedures.
func New(cfg Config, log Logger) (*App, error) {
	if log == nil {
		log = NewLogger(cfg.LogLevel)
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("app: LINEAGE_DATABASE_URL is required")
	}

	pool, err := NewDBPool(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	log.Info("db.connected")

	sessCfg, err := session.LoadConfigFromEnv()
	if err != nil {
		pool.Close()
		return nil, err
	}

	idStore, err := identity.NewPostgresStore(pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	tokenStore, err := token.NewPostgresStore(pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	treeStore, err := tree.NewPostgresStore(pool)
	if err != nil {
		pool.Close()
		return nil, err
	}

	sessions := session.NewManager(sessCfg, session.NewMemoryStore(), idStore, idStore)
	tokens := token.NewService(tokenStore, idStore)

	auth, err := authapi.NewHandler(log, authapi.LoadConfigFromEnv(), sessions, tokens, idStore, treeStore)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return &App{
		cfg:    cfg,
		log:    log,
		dbPool: pool,
		auth:   auth,
	}, nil
}

// Run starts the HTTP server and blocks until context cancellation or fatal
// server error.
func (a *App) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	registerHTTP(mux, a.log, a.cfg, a.dbPool, a.auth)

	handler := WithRequestLogging(WithTrailingSlashRedirect(mux), a.log)

	srv := &http.Server{
		Addr:              a.cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: nonZeroDuration(a.cfg.ReadHeaderTimeout, 5*time.Second),
		ReadTimeout:       nonZeroDuration(a.cfg.ReadTimeout, 15*time.Second),
		WriteTimeout:      nonZeroDuration(a.cfg.WriteTimeout, 15*time.Second),
		IdleTimeout:       nonZeroDuration(a.cfg.IdleTimeout, 60*time.Second),
		MaxHeaderBytes:    nonZeroInt(a.cfg.MaxHeaderBytes, 1<<20),
	}

	a.log.Info("server.start", "addr", a.cfg.HTTPAddr)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.log.Info("server.stop", "reason", "context_done")
	case err := <-errCh:
		a.log.Error("server.fail", "err", err)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.log.Error("server.shutdown.fail", "err", err)
		return err
	}

	a.dbPool.Close()

	a.log.Info("server.stopped")
	return nil
}

func nonZeroDuration(v, def time.Duration) time.Duration {
	if v <= 0 {
		return def
	}
	return v
}

func nonZeroInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
