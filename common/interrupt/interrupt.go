// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.
package interrupt

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Fantom-foundation/parray/common"
)

// ErrCanceled is reported by long running operations stopped before
// completion, either by a signal or by the cancellation of their context.
const ErrCanceled = common.ConstError("interrupted")

// IsCancelled returns true if the given context's CancelFunc has been called.
// Otherwise, returns false.
func IsCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// Check returns an error wrapping ErrCanceled and the cause of the
// cancellation if the given context is done, and nil otherwise.
func Check(ctx context.Context) error {
	if !IsCancelled(ctx) {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrCanceled, context.Cause(ctx))
}

// Register derives a context from the given parent that gets canceled when
// the process receives SIGINT or SIGTERM. The returned stop function
// releases the signal handler and cancels the context; it must be called
// once the guarded operation is complete.
func Register(parent context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancelCause(parent)
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	released := make(chan struct{})
	go func() {
		defer signal.Stop(signals)
		select {
		case sig := <-signals:
			log.Printf("received %v, stopping after the current step", sig)
			cancel(fmt.Errorf("received signal %v", sig))
		case <-ctx.Done():
		case <-released:
		}
	}()

	var once sync.Once
	return ctx, func() {
		once.Do(func() {
			close(released)
			cancel(nil)
		})
	}
}
