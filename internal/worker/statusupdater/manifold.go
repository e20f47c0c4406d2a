// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package statusupdater

import (
	"context"
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/pubsub/v2"
	"github.com/juju/worker/v4"
	"github.com/juju/worker/v4/dependency"
)

// ManifoldConfig holds the resources needed to start a status updater
// worker in a dependency engine.
type ManifoldConfig struct {
	HubName string

	Engine    Engine
	Clock     clock.Clock
	Interval  time.Duration
	NewWorker func(Config) (worker.Worker, error)
}

// Validate checks that the config has all the required values.
func (config ManifoldConfig) Validate() error {
	if config.HubName == "" {
		return errors.NotValidf("empty HubName")
	}
	if config.Engine == nil {
		return errors.NotValidf("nil Engine")
	}
	if config.Clock == nil {
		return errors.NotValidf("nil Clock")
	}
	if config.Interval <= 0 {
		return errors.NotValidf("non-positive Interval")
	}
	if config.NewWorker == nil {
		return errors.NotValidf("nil NewWorker")
	}
	return nil
}

// Manifold returns a dependency manifold that runs a status updater
// worker, using the hub resource named in the supplied config.
func Manifold(config ManifoldConfig) dependency.Manifold {
	return dependency.Manifold{
		Inputs: []string{config.HubName},
		Start: func(ctx context.Context, getter dependency.Getter) (worker.Worker, error) {
			if err := config.Validate(); err != nil {
				return nil, errors.Trace(err)
			}
			var hub *pubsub.SimpleHub
			if err := getter.Get(config.HubName, &hub); err != nil {
				return nil, errors.Trace(err)
			}
			w, err := config.NewWorker(Config{
				Engine:   config.Engine,
				Hub:      hub,
				Clock:    config.Clock,
				Interval: config.Interval,
			})
			if err != nil {
				return nil, errors.Trace(err)
			}
			return w, nil
		},
	}
}
