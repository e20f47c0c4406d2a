// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package aggregator

import (
	"github.com/juju/errors"

	"github.com/juju/advancedstatus/core/status"
)

// Representative decides the single status that stands for scope, and
// whether there is one at all.
//
// Critical statuses win outright and are displayed verbatim, whatever
// their length. Otherwise a lone notable condition is shown plainly,
// while several at once collapse into a summary pointing at the detail
// view.
func (a *Aggregator) Representative(scope status.Scope) (status.Status, bool, error) {
	critical, err := a.CriticalStatuses(scope)
	if err != nil {
		return status.Status{}, false, errors.Trace(err)
	}
	if len(critical) > 0 {
		return critical[0].Status, true, nil
	}

	all, err := a.SortedStatuses(scope)
	if err != nil {
		return status.Status{}, false, errors.Trace(err)
	}
	if len(all) == 0 {
		return status.Status{}, false, nil
	}

	lowest := a.priorities.Lowest()
	important, actionsToRun := 0, 0
	for _, entry := range all {
		if entry.Status.Status != lowest {
			important++
		}
		if entry.Status.Action != "" {
			actionsToRun++
		}
	}

	first := all[0].Status
	if important > 1 {
		return status.Status{
			Status:  first.Status,
			Message: compactMessage(first, actionsToRun, important-1),
		}, true, nil
	}
	return first, true, nil
}
