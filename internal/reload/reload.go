// Package reload triggers pool reloads from SIGHUP and an optional cron schedule.
package reload

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/robfig/cron/v3"
)

type LoadFunc func(ctx context.Context) error

type Reloader struct {
	load LoadFunc
	cron *cron.Cron

	mu sync.Mutex // serializes reloads
}

func New(load LoadFunc) *Reloader {
	return &Reloader{load: load, cron: cron.New()}
}

// Trigger runs one reload now.
func (r *Reloader) Trigger(ctx context.Context, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	log.Printf("[RELOAD] %s: reloading question pool", reason)
	if err := r.load(ctx); err != nil {
		log.Printf("[RELOAD] %s: %v (keeping previous pool)", reason, err)
		return err
	}
	return nil
}

// Schedule registers a cron spec; an empty spec is a no-op.
func (r *Reloader) Schedule(spec string) error {
	if spec == "" {
		return nil
	}
	if _, err := r.cron.AddFunc(spec, func() {
		_ = r.Trigger(context.Background(), "cron")
	}); err != nil {
		return fmt.Errorf("reload schedule %q: %w", spec, err)
	}
	log.Printf("[RELOAD] scheduled reloads at %q", spec)
	return nil
}

// Start begins the cron scheduler and SIGHUP handling; both stop when ctx is done.
// The signal handler is installed before Start returns.
func (r *Reloader) Start(ctx context.Context) {
	r.cron.Start()
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)

	go func() {
		defer r.cron.Stop()
		defer signal.Stop(hup)
		for {
			select {
			case <-ctx.Done():
				return
			case <-hup:
				_ = r.Trigger(ctx, "SIGHUP")
			}
		}
	}()
}
