// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package statusupdater runs the periodic recompute cycle and reacts
// to host-published recompute triggers, pushing each scope's
// representative status after every cycle.
package statusupdater

import (
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/juju/pubsub/v2"
	"github.com/juju/worker/v4"
	"github.com/juju/worker/v4/catacomb"

	"github.com/juju/advancedstatus/core/status"
)

var logger = loggo.GetLogger("juju.advancedstatus.worker.statusupdater")

// RecomputeTopic is the hub topic that forces an immediate recompute
// cycle, ahead of the next interval tick.
const RecomputeTopic = "advancedstatus.recompute"

// Engine is the part of the aggregator the worker drives.
type Engine interface {
	Recompute() error
	Collect(scope status.Scope) error
}

// Config holds the resources needed to run a status updater worker.
type Config struct {
	Engine   Engine
	Hub      *pubsub.SimpleHub
	Clock    clock.Clock
	Interval time.Duration
}

// Validate returns an error if the worker cannot be started with this
// config.
func (config Config) Validate() error {
	if config.Engine == nil {
		return errors.NotValidf("nil Engine")
	}
	if config.Hub == nil {
		return errors.NotValidf("nil Hub")
	}
	if config.Clock == nil {
		return errors.NotValidf("nil Clock")
	}
	if config.Interval <= 0 {
		return errors.NotValidf("non-positive Interval")
	}
	return nil
}

// NewWorker returns a worker that recomputes and collects statuses on
// every interval tick and on every recompute trigger.
func NewWorker(config Config) (worker.Worker, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	w := &updaterWorker{
		config:   config,
		triggers: make(chan struct{}),
	}
	if err := catacomb.Invoke(catacomb.Plan{
		Site: &w.catacomb,
		Work: w.loop,
	}); err != nil {
		return nil, errors.Trace(err)
	}
	return w, nil
}

type updaterWorker struct {
	catacomb catacomb.Catacomb
	config   Config
	triggers chan struct{}
}

// Kill is part of the worker.Worker interface.
func (w *updaterWorker) Kill() {
	w.catacomb.Kill(nil)
}

// Wait is part of the worker.Worker interface.
func (w *updaterWorker) Wait() error {
	return w.catacomb.Wait()
}

func (w *updaterWorker) loop() error {
	unsubscribe := w.config.Hub.Subscribe(RecomputeTopic, w.recomputeRequested)
	defer unsubscribe()

	timer := w.config.Clock.NewTimer(w.config.Interval)
	defer timer.Stop()

	for {
		select {
		case <-w.catacomb.Dying():
			return w.catacomb.ErrDying()
		case <-timer.Chan():
			if err := w.update(); err != nil {
				return errors.Trace(err)
			}
			timer.Reset(w.config.Interval)
		case <-w.triggers:
			logger.Debugf("recompute requested")
			if err := w.update(); err != nil {
				return errors.Trace(err)
			}
			timer.Reset(w.config.Interval)
		}
	}
}

// recomputeRequested runs on the hub's goroutine; it only nudges the
// worker loop.
func (w *updaterWorker) recomputeRequested(topic string, data interface{}) {
	select {
	case w.triggers <- struct{}{}:
	case <-w.catacomb.Dying():
	}
}

func (w *updaterWorker) update() error {
	if err := w.config.Engine.Recompute(); err != nil {
		return errors.Annotate(err, "recomputing statuses")
	}
	for _, scope := range status.AllScopes() {
		if err := w.config.Engine.Collect(scope); err != nil {
			return errors.Annotatef(err, "collecting %s status", scope)
		}
	}
	return nil
}
