// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package status

import (
	"encoding/json"
	"sort"

	"github.com/juju/errors"
)

// List is an ordered sequence of statuses for one component in one
// scope. Insert keeps it non-increasing in kind priority, with
// insertion order preserved among equal kinds.
type List []Status

// Contains reports whether the list holds a status structurally equal
// to s.
func (l List) Contains(s Status) bool {
	for _, member := range l {
		if member.Equal(s) {
			return true
		}
	}
	return false
}

// Insert returns the list with s added at its sorted position, and
// whether it was added. A status structurally equal to an existing
// member is not inserted twice.
func (l List) Insert(s Status, priorities Priorities) (List, bool) {
	if l.Contains(s) {
		return l, false
	}
	value := priorities.Value(s.Status)
	// First position with a strictly lower priority; equal priorities
	// stay ahead of the new status, preserving insertion order.
	i := sort.Search(len(l), func(i int) bool {
		return priorities.Value(l[i].Status) < value
	})
	result := make(List, 0, len(l)+1)
	result = append(result, l[:i]...)
	result = append(result, s)
	result = append(result, l[i:]...)
	return result, true
}

// Remove returns the list without the first member structurally equal
// to s, and whether anything was removed.
func (l List) Remove(s Status) (List, bool) {
	for i, member := range l {
		if member.Equal(s) {
			result := make(List, 0, len(l)-1)
			result = append(result, l[:i]...)
			result = append(result, l[i+1:]...)
			return result, true
		}
	}
	return l, false
}

// Filter selects a subset of a list.
type Filter struct {
	// RunningOnly restricts the selection to in-progress statuses.
	RunningOnly bool

	// RunningKind further restricts a running-only selection to the
	// given classification. Empty selects every running status.
	RunningKind Running
}

// Select returns the members matching the filter, preserving order.
func (l List) Select(f Filter) List {
	if !f.RunningOnly {
		return l
	}
	var result List
	for _, member := range l {
		if !member.IsRunning() {
			continue
		}
		if f.RunningKind != RunningNone && member.Running != f.RunningKind {
			continue
		}
		result = append(result, member)
	}
	return result
}

// ParseList decodes the persisted JSON form of a list. Empty input
// yields an empty list.
func ParseList(data []byte) (List, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var l List
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, errors.Annotate(err, "parsing status sequence")
	}
	return l, nil
}

// Serialize encodes the list to its persisted JSON form. A nil list
// encodes as an empty sequence.
func (l List) Serialize() ([]byte, error) {
	if l == nil {
		l = List{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return data, nil
}
