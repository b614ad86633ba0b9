package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Clark-Hu/movie-catalog/internal/catalog"
	"github.com/Clark-Hu/movie-catalog/internal/config"
	httpserver "github.com/Clark-Hu/movie-catalog/internal/http"
	"github.com/Clark-Hu/movie-catalog/internal/repository"
	"github.com/Clark-Hu/movie-catalog/internal/seed"
	"github.com/Clark-Hu/movie-catalog/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := log.New(os.Stdout, "[catalog-api] ", log.LstdFlags|log.Lshortfile)

	cat, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("seed catalog: %v", err)
	}
	logger.Printf("catalog seeded from %s: %d movies, %d collections", cfg.SeedSource, cat.Len(), len(cat.Collections()))

	server := httpserver.New(cfg, cat, logger)

	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			serverErrCh <- err
			return
		}
		serverErrCh <- nil
	}()

	select {
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, context.Canceled) {
			log.Printf("server error: %v", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("graceful shutdown error: %v", err)
	}
}

// loadCatalog builds the catalog from the configured seed source. The
// Postgres pool only lives for the duration of the load.
func loadCatalog(ctx context.Context, cfg config.Config, logger *log.Logger) (*catalog.Catalog, error) {
	timeout := time.Duration(cfg.SeedTimeoutSecs) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	switch cfg.SeedSource {
	case config.SeedSample:
		return seed.Build(ctx, seed.SampleSource{})
	case config.SeedFile:
		return seed.Build(ctx, seed.FileSource{Path: cfg.SeedFile})
	case config.SeedHTTP:
		src, err := seed.NewHTTPSource(cfg.SeedURL, cfg.SeedAPIKey, timeout, logger)
		if err != nil {
			return nil, err
		}
		return seed.Build(ctx, src)
	case config.SeedPostgres:
		st, err := store.Open(ctx, cfg.DBURL, store.Options{
			MaxConns:               int32(cfg.DBMaxConns),
			MinConns:               int32(cfg.DBMinConns),
			ConnTimeout:            time.Duration(cfg.DBConnTimeoutSecs) * time.Second,
			StatementCacheCapacity: cfg.DBStatementCache,
			Logger:                 logger,
		})
		if err != nil {
			return nil, err
		}
		defer st.Close()
		return seed.Build(ctx, repository.New(st))
	default:
		return nil, fmt.Errorf("unknown seed source %q", cfg.SeedSource)
	}
}
