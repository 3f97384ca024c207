// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.
package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Fantom-foundation/parray/common/interrupt"
)

func TestRunStress_CompletesWithoutMismatches(t *testing.T) {
	var logs bytes.Buffer
	config := stressConfig{length: 16, steps: 20_000, maxVersions: 50, reportInterval: 5_000, seed: 3}
	if err := runStress(context.Background(), newLogTo(&logs, "stress"), config); err != nil {
		t.Fatalf("stress test failed: %v", err)
	}
	if !strings.Contains(logs.String(), "Completed 20000 steps") {
		t.Errorf("missing summary in log:\n%s", logs.String())
	}
	if !strings.Contains(logs.String(), "5000 of 20000 steps (25.0%)") {
		t.Errorf("missing progress report in log:\n%s", logs.String())
	}
}

func TestRunStress_SingleTrackedVersion(t *testing.T) {
	config := stressConfig{length: 1, steps: 1_000, maxVersions: 1, seed: 5}
	if err := runStress(context.Background(), newLogTo(&bytes.Buffer{}, "stress"), config); err != nil {
		t.Fatalf("stress test failed: %v", err)
	}
}

func TestRunStress_CanceledRunStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	config := stressConfig{length: 4, steps: 1_000_000, maxVersions: 10, seed: 1}
	if err := runStress(ctx, newLogTo(&bytes.Buffer{}, "stress"), config); !errors.Is(err, interrupt.ErrCanceled) {
		t.Errorf("expected cancellation error, got %v", err)
	}
}

func TestRunStress_InvalidConfigurationIsRejected(t *testing.T) {
	configs := []stressConfig{
		{length: 0, maxVersions: 1},
		{length: 1, maxVersions: 0},
	}
	for _, config := range configs {
		if err := runStress(context.Background(), newLogTo(&bytes.Buffer{}, "stress"), config); err == nil {
			t.Errorf("configuration %+v should be rejected", config)
		}
	}
}
