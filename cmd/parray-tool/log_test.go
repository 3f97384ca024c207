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
	"regexp"
	"testing"
)

func TestLog_PrintTagsMessagesWithCommandAndTime(t *testing.T) {
	var buf bytes.Buffer
	newLogTo(&buf, "stress").Print("Test message")

	if got, want := buf.String(), regexp.MustCompile(`^\[stress t=\s*0:0\d\] Test message\n$`); !want.MatchString(got) {
		t.Errorf("unexpected log content: got %q, want %q", got, want)
	}
}

func TestLog_Printf(t *testing.T) {
	var buf bytes.Buffer
	newLogTo(&buf, "export").Printf("Test message %d", 42)

	if got, want := buf.String(), regexp.MustCompile(`\[export t=.*?\] Test message 42`); !want.MatchString(got) {
		t.Errorf("unexpected log content: got %q, want %q", got, want)
	}
}

func TestProgressLogger_StepReportsFullWindowsWithShareOfTotal(t *testing.T) {
	var buf bytes.Buffer
	progress := newLogTo(&buf, "export").NewProgressTracker("versions", 40, 10)

	progress.Step(5)
	if buf.Len() != 0 {
		t.Errorf("no progress should be reported before a window is complete, got %q", buf.String())
	}
	progress.Step(3)
	progress.Step(4)

	if got, want := buf.String(), regexp.MustCompile(`\] 10 of 40 versions \(25\.0%\), (\d+\.\d+|\+Inf) versions/s`); !want.MatchString(got) {
		t.Errorf("unexpected log content: got %q, want %q", got, want)
	}
	if got, want := progress.GetCounter(), 12; got != want {
		t.Errorf("unexpected counter, wanted %d, got %d", want, got)
	}
}

func TestProgressLogger_OpenEndedTask(t *testing.T) {
	var buf bytes.Buffer
	progress := newLogTo(&buf, "stress").NewProgressTracker("steps", 0, 2)
	progress.Step(2)
	if got, want := buf.String(), regexp.MustCompile(`\] 2 steps, (\d+\.\d+|\+Inf) steps/s`); !want.MatchString(got) {
		t.Errorf("unexpected log content: got %q, want %q", got, want)
	}
}

func TestProgressLogger_ZeroWindowDisablesReports(t *testing.T) {
	var buf bytes.Buffer
	progress := newLogTo(&buf, "stress").NewProgressTracker("steps", 100, 0)
	progress.Step(100)
	if buf.Len() != 0 {
		t.Errorf("no progress should be reported, got %q", buf.String())
	}
}
