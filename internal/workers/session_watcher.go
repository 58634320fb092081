// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-blog-client/internal/logger"
	"github.com/MKhiriev/go-blog-client/internal/service"
)

// SessionWatcher periodically drops an expired session token so the UI falls
// back to anonymous mode without waiting for a 401 from the backend.
type SessionWatcher struct {
	auth     service.AuthService
	interval time.Duration
	onExpire func()
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionWatcher returns an idle watcher. onExpire, when not nil, is called
// from the watcher goroutine each time a token was dropped. A non-positive
// interval falls back to one minute.
func NewSessionWatcher(auth service.AuthService, interval time.Duration, onExpire func(), logger *logger.Logger) *SessionWatcher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &SessionWatcher{
		auth:     auth,
		interval: interval,
		onExpire: onExpire,
		logger:   logger,
	}
}

// Run checks the session once right away and then on every tick until ctx is
// cancelled or Stop is called.
func (w *SessionWatcher) Run(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		w.check(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.check(jobCtx)
			}
		}
	}()
}

// Stop cancels the watcher goroutine and blocks until it has exited.
func (w *SessionWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *SessionWatcher) check(ctx context.Context) {
	cleared, err := w.auth.ExpireSession(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Warn().Err(err).Msg("session check failed")
		}
		return
	}
	if cleared && w.onExpire != nil {
		w.onExpire()
	}
}
