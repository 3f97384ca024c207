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
	"fmt"
	"io"
	"log"
	"time"
)

// Log writes messages of a single tool command, each tagged with the
// command name and the time elapsed since the command started.
type Log struct {
	command string
	start   time.Time
	logger  *log.Logger
}

// NewLog creates a log for the given command writing to the standard logger.
func NewLog(command string) *Log {
	return &Log{command: command, start: time.Now(), logger: log.Default()}
}

func newLogTo(out io.Writer, command string) *Log {
	return &Log{command: command, start: time.Now(), logger: log.New(out, "", 0)}
}

func (l *Log) Print(msg string) {
	t := uint64(time.Since(l.start).Seconds())
	l.logger.Printf("[%s t=%4d:%02d] %s\n", l.command, t/60, t%60, msg)
}

func (l *Log) Printf(format string, v ...any) {
	l.Print(fmt.Sprintf(format, v...))
}

// ProgressLogger reports how many units of a task of known size have been
// processed each time another window of units is complete.
type ProgressLogger struct {
	log     *Log
	unit    string
	total   int
	window  int
	start   time.Time
	counter int
	steps   int
}

// NewProgressTracker creates a tracker for a task processing the given total
// of units. A total of zero or less marks an open ended task, a window of zero
// or less disables the reports.
func (l *Log) NewProgressTracker(unit string, total, window int) *ProgressLogger {
	return &ProgressLogger{log: l, unit: unit, total: total, window: window, start: time.Now()}
}

func (p *ProgressLogger) Step(increment int) {
	p.counter += increment
	p.steps += increment
	if p.window <= 0 || p.steps < p.window {
		return
	}

	now := time.Now()
	rate := float64(p.steps) / now.Sub(p.start).Seconds()
	count := p.counter / p.window * p.window
	if p.total > 0 {
		p.log.Printf("%d of %d %s (%.1f%%), %.2f %s/s", count, p.total, p.unit, 100*float64(count)/float64(p.total), rate, p.unit)
	} else {
		p.log.Printf("%d %s, %.2f %s/s", count, p.unit, rate, p.unit)
	}
	p.steps = 0
	p.start = now
}

func (p *ProgressLogger) GetCounter() int {
	return p.counter
}
