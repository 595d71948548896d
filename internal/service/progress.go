// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "time"

// progressTracker turns byte counters into rate-limited ProgressEvents for
// one transfer. It is purely observational: it never blocks and never
// returns an error into the transfer path.
type progressTracker struct {
	presenter Presenter
	interval  time.Duration
	now       func() time.Time

	name      string
	total     uint64
	startedAt time.Time
	lastEmit  time.Time
}

func newProgressTracker(presenter Presenter, interval time.Duration, now func() time.Time, name string, total uint64) *progressTracker {
	return &progressTracker{
		presenter: presenter,
		interval:  interval,
		now:       now,
		name:      name,
		total:     total,
		startedAt: now(),
	}
}

// Update emits a tick unless one was emitted less than interval ago.
func (t *progressTracker) Update(current uint64) {
	ts := t.now()
	if !t.lastEmit.IsZero() && ts.Sub(t.lastEmit) < t.interval {
		return
	}
	t.lastEmit = ts
	t.presenter.Progress(t.event(current, ts, false))
}

// Finish always emits the terminal tick for the transfer.
func (t *progressTracker) Finish(current uint64) {
	t.presenter.Progress(t.event(current, t.now(), true))
}

func (t *progressTracker) event(current uint64, ts time.Time, done bool) ProgressEvent {
	ev := ProgressEvent{
		Name:    t.name,
		Current: current,
		Total:   t.total,
		Done:    done,
	}
	if t.total > 0 {
		ev.Percent = float64(current) / float64(t.total) * 100
	}

	elapsed := ts.Sub(t.startedAt).Seconds()
	if elapsed > 0 {
		ev.Speed = float64(current) / elapsed
	}
	if ev.Speed > 0 && t.total >= current {
		remaining := float64(t.total-current) / ev.Speed
		ev.ETA = time.Duration(remaining * float64(time.Second))
		ev.HasETA = true
	}
	return ev
}
