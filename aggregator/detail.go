// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package aggregator

import (
	"bytes"

	"github.com/juju/errors"

	"github.com/juju/advancedstatus/core/status"
)

// DetailParams are the arguments of a detail request.
type DetailParams struct {
	// Recompute asks every component to recompute its statuses before
	// reporting, rather than reading the stored results of the last
	// cycle.
	Recompute bool
}

// ScopeDetail carries both renderings of one scope's sorted statuses.
type ScopeDetail struct {
	// Tabular is the fixed five-column human-readable view.
	Tabular string `json:"-"`

	// Statuses maps each component to its dump records, in sorted
	// order.
	Statuses map[string][]DetailRecord `json:"statuses"`
}

// DetailResult is the response to a detail request: one detail per
// scope.
type DetailResult struct {
	Scopes map[status.Scope]ScopeDetail
}

// Detail serves the action-style request exposing every contributing
// status, optionally recomputing first.
func (a *Aggregator) Detail(params DetailParams) (DetailResult, error) {
	if params.Recompute {
		if err := a.Recompute(); err != nil {
			return DetailResult{}, errors.Trace(err)
		}
	}
	result := DetailResult{Scopes: make(map[status.Scope]ScopeDetail)}
	for _, scope := range status.AllScopes() {
		entries, err := a.SortedStatuses(scope)
		if err != nil {
			return DetailResult{}, errors.Trace(err)
		}
		var buf bytes.Buffer
		if err := FormatTabular(&buf, scope, entries); err != nil {
			return DetailResult{}, errors.Trace(err)
		}
		result.Scopes[scope] = ScopeDetail{
			Tabular:  buf.String(),
			Statuses: GroupRecords(entries),
		}
	}
	return result, nil
}
