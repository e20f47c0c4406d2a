// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package aggregator

import (
	"github.com/juju/errors"

	"github.com/juju/advancedstatus/core/status"
	"github.com/juju/advancedstatus/statestore"
)

// SetRunningStatus immediately displays an in-progress status, outside
// the regular recompute cycle.
//
// Async statuses are also persisted through store so they survive
// future cycles; blocking statuses are display-only and vanish at the
// next cycle's clear. When critical statuses are pending for the
// scope, the running status is suppressed unless the call comes from
// an explicit operator action (isAction), which overrides the backlog.
//
// The status must carry a running classification; regular statuses
// belong to the recompute cycle.
func (a *Aggregator) SetRunningStatus(
	st status.Status,
	scope status.Scope,
	isAction bool,
	store *statestore.ComponentState,
) error {
	if !st.IsRunning() {
		return errors.NotValidf("non-running status %q", st.Message)
	}
	critical, err := a.CriticalStatuses(scope)
	if err != nil {
		return errors.Trace(err)
	}
	backlog := len(critical) > 0
	if backlog && !isAction {
		logger.Infof("not displaying running status %q: %d critical statuses pending", st.Message, len(critical))
		return nil
	}
	if backlog {
		logger.Infof("action overriding %d critical statuses with %q", len(critical), st.Message)
	}

	switch st.Running {
	case status.RunningAsync:
		if store == nil {
			return errors.NotValidf("async status %q without a component store", st.Message)
		}
		if err := a.setter.SetStatus(scope, st); err != nil {
			return errors.Trace(err)
		}
		store.Add(scope, st)
		// The persisted status must be visible to queries later in
		// this same cycle.
		a.Invalidate()
		return nil
	case status.RunningBlocking:
		return errors.Trace(a.setter.SetStatus(scope, st))
	default:
		return errors.NotValidf("running kind %q", st.Running)
	}
}
