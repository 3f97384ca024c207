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
	"errors"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./cmd/parray-tool <command> <flags>

var (
	diagnosticsFlag = cli.IntFlag{
		Name:  "diagnostic-port",
		Usage: "enable hosting of a realtime diagnostic server by providing a port",
		Value: 0,
	}
	cpuProfileFlag = cli.StringFlag{
		Name:  "cpuprofile",
		Usage: "sets the target file for storing CPU profiles to, disabled if empty",
		Value: "",
	}
	memProfileFlag = cli.StringFlag{
		Name:  "memprofile",
		Usage: "sets the target file for a heap profile written when the command ends, disabled if empty",
		Value: "",
	}
	traceFlag = cli.StringFlag{
		Name:  "tracefile",
		Usage: "sets the target file for traces to, disabled if empty",
		Value: "",
	}
	lengthFlag = cli.IntFlag{
		Name:  "length",
		Usage: "the number of elements of the arrays",
		Value: 1000,
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "the seed for the random number generator, 0 for a random seed",
		Value: 0,
	}
	reportIntervalFlag = cli.IntFlag{
		Name:  "report-interval",
		Usage: "the number of steps between progress reports",
		Value: 100_000,
	}
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "parray-tool",
		Usage:     "benchmarks, stress tests and archives of persistent arrays",
		Copyright: "(c) 2024 Fantom Foundation",
		Flags: []cli.Flag{
			&diagnosticsFlag,
			&cpuProfileFlag,
			&memProfileFlag,
			&traceFlag,
		},
		Commands: []*cli.Command{
			&Benchmark,
			&Stress,
			&Export,
			&Verify,
			&Info,
		},
	}
}

// diagnostics collects the profiling requested for a single command run.
type diagnostics struct {
	port       int
	cpuProfile string
	memProfile string
	trace      string
}

func getDiagnostics(context *cli.Context) diagnostics {
	return diagnostics{
		port:       context.Int(diagnosticsFlag.Name),
		cpuProfile: strings.TrimSpace(context.String(cpuProfileFlag.Name)),
		memProfile: strings.TrimSpace(context.String(memProfileFlag.Name)),
		trace:      strings.TrimSpace(context.String(traceFlag.Name)),
	}
}

// withDiagnostics runs the given command with the diagnostics selected by
// the global flags. Failing to finish a profile is reported together with
// the result of the command.
func withDiagnostics(action cli.ActionFunc) cli.ActionFunc {
	return func(context *cli.Context) error {
		stop, err := getDiagnostics(context).start()
		if err != nil {
			return err
		}
		return errors.Join(action(context), stop())
	}
}

// start enables the requested diagnostics and returns a function ending
// them. If starting fails, everything started so far is stopped.
func (d diagnostics) start() (stop func() error, err error) {
	var stops []func() error
	stopAll := func() error {
		var errs []error
		for i := len(stops) - 1; i >= 0; i-- {
			errs = append(errs, stops[i]())
		}
		return errors.Join(errs...)
	}

	startDiagnosticServer(d.port)

	if d.cpuProfile != "" {
		stopCpu, err := startCpuProfiler(d.cpuProfile)
		if err != nil {
			return nil, errors.Join(err, stopAll())
		}
		stops = append(stops, stopCpu)
	}
	if d.trace != "" {
		stopTrace, err := startTracer(d.trace)
		if err != nil {
			return nil, errors.Join(err, stopAll())
		}
		stops = append(stops, stopTrace)
	}
	if d.memProfile != "" {
		filename := d.memProfile
		stops = append(stops, func() error { return writeHeapProfile(filename) })
	}
	return stopAll, nil
}

func startDiagnosticServer(port int) {
	if port <= 0 || port >= (1<<16) {
		return
	}
	fmt.Printf("Starting diagnostic server at port http://localhost:%d\n", port)
	fmt.Printf("(see https://pkg.go.dev/net/http/pprof#hdr-Usage_examples for usage examples)\n")
	fmt.Printf("Mutex sampling rate is set to 100%% to expose contention on synchronized version trees\n")
	go func() {
		addr := fmt.Sprintf("localhost:%d", port)
		log.Println(http.ListenAndServe(addr, nil))
	}()
	runtime.SetMutexProfileFraction(1)
}

func startCpuProfiler(filename string) (func() error, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		return nil, errors.Join(fmt.Errorf("could not start CPU profile: %w", err), f.Close())
	}
	return func() error {
		pprof.StopCPUProfile()
		return f.Close()
	}, nil
}

func startTracer(filename string) (func() error, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace file: %w", err)
	}
	if err := trace.Start(f); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to start trace: %w", err), f.Close())
	}
	return func() error {
		trace.Stop()
		return f.Close()
	}, nil
}

// writeHeapProfile records the heap allocations of the command. Most of them
// are node stocks and backing slices of version trees.
func writeHeapProfile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create heap profile: %w", err)
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return errors.Join(fmt.Errorf("could not write heap profile: %w", err), f.Close())
	}
	return f.Close()
}
