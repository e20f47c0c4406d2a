// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package status

import (
	"github.com/juju/errors"
)

// Scope is the visibility domain of a status value.
type Scope string

const (
	// ScopeLocal statuses are private to the reporting unit.
	ScopeLocal Scope = "local"

	// ScopeShared statuses form a single logical value visible to the
	// whole reporting group. Only the currently elected writer may
	// mutate shared scope.
	ScopeShared Scope = "shared"
)

// String returns a string representation of the Scope.
func (s Scope) String() string {
	return string(s)
}

// Validate returns an error for an unknown scope.
func (s Scope) Validate() error {
	switch s {
	case ScopeLocal, ScopeShared:
		return nil
	}
	return errors.NotValidf("scope %q", string(s))
}

// AllScopes returns every scope, in the order recompute cycles visit
// them.
func AllScopes() []Scope {
	return []Scope{ScopeLocal, ScopeShared}
}
