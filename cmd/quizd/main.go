package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	api "github.com/mind-engage/showquiz/internal/api/http"
	"github.com/mind-engage/showquiz/internal/bank"
	"github.com/mind-engage/showquiz/internal/config"
	"github.com/mind-engage/showquiz/internal/grading"
	"github.com/mind-engage/showquiz/internal/quiz"
	"github.com/mind-engage/showquiz/internal/reload"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Question bank ---
	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	store, err := bank.Open(openCtx, bank.Driver(cfg.BankDriver), cfg.BankDSN)
	cancel()
	if err != nil {
		log.Fatalf("bank open failed: %v", err)
	}
	defer store.Close()

	pool := quiz.NewPool(quiz.NewRand(cfg.Seed))
	if _, err := pool.Reload(ctx, store); err != nil {
		if !errors.Is(err, bank.ErrMissing) {
			log.Fatalf("initial load failed: %v", err)
		}
		log.Printf("[POOL] %v; serving an empty pool until the generator runs", err)
	}

	// --- Reloads (SIGHUP, optional cron) ---
	rl := reload.New(func(ctx context.Context) error {
		_, err := pool.Reload(ctx, store)
		return err
	})
	if err := rl.Schedule(cfg.ReloadCron); err != nil {
		log.Fatalf("reload schedule: %v", err)
	}
	rl.Start(ctx)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newRouter(cfg, pool),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s (bank=%s, questions=%d)", cfg.HTTPAddr, cfg.BankDriver, pool.Snapshot().Len())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// newRouter builds the middleware stack, single-origin CORS and the quiz API.
func newRouter(cfg config.Config, pool *quiz.Pool) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	api.Mount(r, pool, grading.NewGrader(grading.WithCaseFolding(cfg.GradeFoldCase)))
	return r
}
