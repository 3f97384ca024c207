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
	"errors"
	"strings"
	"syscall"
	"testing"
	"time"
)

func TestRegister_InterruptCancelsContext(t *testing.T) {
	ctx, stop := Register(context.Background())
	defer stop()
	if err := syscall.Kill(syscall.Getpid(), syscall.SIGINT); err != nil {
		t.Fatal("failed to create a SIGINT signal")
	}
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context was not canceled")
	}
	err := Check(ctx)
	if !errors.Is(err, ErrCanceled) {
		t.Errorf("expected cancellation error, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "received signal interrupt") {
		t.Errorf("error should name the received signal, got %v", err)
	}
}

func TestRegister_StopCancelsContext(t *testing.T) {
	ctx, stop := Register(context.Background())
	if err := Check(ctx); err != nil {
		t.Fatalf("context should not be canceled yet, got %v", err)
	}
	stop()
	stop()
	if !IsCancelled(ctx) {
		t.Fatal("context should be canceled after stop")
	}
}

func TestRegister_CancelingParentCancelsContext(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx, stop := Register(parent)
	defer stop()
	cancel()
	<-ctx.Done()
	if err := Check(ctx); !errors.Is(err, ErrCanceled) {
		t.Errorf("expected cancellation error, got %v", err)
	}
}

func TestIsCancelled_ReportsStateOfContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	if IsCancelled(ctx) {
		t.Fatal("context was not canceled but func returned true")
	}
	cancel()
	if !IsCancelled(ctx) {
		t.Fatalf("context was canceled but func returned false")
	}
}
