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
	"os"
	"path/filepath"
	"testing"
)

func TestApp_CommandsCanBeRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "archive")
	commands := [][]string{
		{"parray-tool", "benchmark", "--length", "10", "--num-operations", "100", "--seed", "1"},
		{"parray-tool", "stress", "--length", "10", "--num-steps", "1000", "--seed", "1"},
		{"parray-tool", "export", "--length", "10", "--num-versions", "100", "--archive-interval", "10", "--seed", "1", dir},
		{"parray-tool", "verify", dir},
		{"parray-tool", "info", dir},
	}
	for _, args := range commands {
		if err := newApp().Run(args); err != nil {
			t.Errorf("failed to run %v: %v", args[1:], err)
		}
	}
}

func TestApp_MissingDirectoryArgumentIsReported(t *testing.T) {
	for _, command := range []string{"export", "verify", "info"} {
		if err := newApp().Run([]string{"parray-tool", command}); err == nil {
			t.Errorf("command %s should fail without a directory", command)
		}
	}
}

func TestApp_ProfilesAreWritten(t *testing.T) {
	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu.prof")
	heap := filepath.Join(dir, "heap.prof")
	tracefile := filepath.Join(dir, "trace.out")
	args := []string{
		"parray-tool", "--cpuprofile", cpu, "--memprofile", heap, "--tracefile", tracefile,
		"benchmark", "--length", "10", "--num-operations", "10",
	}
	if err := newApp().Run(args); err != nil {
		t.Fatalf("failed to run benchmark: %v", err)
	}
	for _, file := range []string{cpu, heap, tracefile} {
		info, err := os.Stat(file)
		if err != nil {
			t.Errorf("profile %s was not written: %v", file, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("profile %s is empty", file)
		}
	}
}

func TestDiagnostics_FailedStartIsReported(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing", "trace.out")
	d := diagnostics{cpuProfile: filepath.Join(t.TempDir(), "cpu.prof"), trace: missing}
	if _, err := d.start(); err == nil {
		t.Fatalf("starting diagnostics with an invalid trace file should fail")
	}
	// The CPU profiler must have been stopped again.
	stop, err := diagnostics{cpuProfile: filepath.Join(t.TempDir(), "cpu.prof")}.start()
	if err != nil {
		t.Fatalf("failed to restart CPU profiler: %v", err)
	}
	if err := stop(); err != nil {
		t.Errorf("failed to stop diagnostics: %v", err)
	}
}
