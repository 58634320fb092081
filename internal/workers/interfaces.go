// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background jobs. A [Worker] starts its
// own goroutine in Run and returns; Stop cancels it and waits for it to exit.
// [Workers] starts and stops a group of them together.
package workers

import "context"

// Worker is a background job bound to the lifetime of a context.
//
// Run must not block. Calling Run on a running worker restarts it. Stop is
// safe to call on a worker that is not running.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
