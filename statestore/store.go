// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package statestore persists the status sequences reported by every
// component, in both scopes, over a narrow key/value partition supplied
// by the host. A single State is shared by all components and indexed
// by component name.
package statestore

import (
	"github.com/juju/errors"
	"github.com/juju/loggo"

	"github.com/juju/advancedstatus/core/leadership"
	"github.com/juju/advancedstatus/core/status"
)

var logger = loggo.GetLogger("juju.advancedstatus.statestore")

// State manages the persisted status sequences for every reporting
// component. Mutations of shared scope are gated on the leadership
// checker; mutations against unprovisioned storage are dropped with a
// warning. Neither condition is an error for the caller.
type State struct {
	partitions Partitions
	leadership leadership.Checker
	priorities status.Priorities
}

// NewState returns a State over the given partitions, gating shared
// scope on checker and ordering insertions by priorities.
func NewState(partitions Partitions, checker leadership.Checker, priorities status.Priorities) (*State, error) {
	if partitions == nil {
		return nil, errors.NotValidf("nil Partitions")
	}
	if checker == nil {
		return nil, errors.NotValidf("nil Checker")
	}
	if err := priorities.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &State{
		partitions: partitions,
		leadership: checker,
		priorities: priorities,
	}, nil
}

// writable returns the partition a mutation for component should go
// to, or nil if the mutation must be dropped.
func (s *State) writable(component string, scope status.Scope) Partition {
	if scope == status.ScopeShared && !s.leadership.IsWriter() {
		logger.Warningf("cannot mutate shared statuses of %q: not the current writer", component)
		return nil
	}
	p := s.partitions.Partition(scope)
	if p == nil {
		logger.Warningf("no status storage for %s scope, dropping update for %q", scope, component)
		return nil
	}
	return p
}

// load reads the stored sequence for component. Reads never fail the
// caller: storage errors and corrupt payloads degrade to an empty
// sequence.
func (s *State) load(p Partition, component string) status.List {
	data, err := p.Get(component)
	if err != nil {
		logger.Warningf("reading statuses of %q: %v", component, err)
		return nil
	}
	list, err := status.ParseList(data)
	if err != nil {
		logger.Warningf("discarding corrupt status sequence of %q: %v", component, err)
		return nil
	}
	return list
}

func (s *State) save(p Partition, component string, list status.List) {
	data, err := list.Serialize()
	if err != nil {
		logger.Warningf("serializing statuses of %q: %v", component, err)
		return
	}
	if err := p.Put(component, data); err != nil {
		logger.Warningf("writing statuses of %q: %v", component, err)
	}
}

// Add inserts st into component's sequence for scope, keeping the
// sequence sorted by kind priority. Adding a status structurally equal
// to a stored one is a no-op.
func (s *State) Add(component string, scope status.Scope, st status.Status) {
	p := s.writable(component, scope)
	if p == nil {
		return
	}
	list, inserted := s.load(p, component).Insert(st, s.priorities)
	if !inserted {
		return
	}
	s.save(p, component, list)
}

// Set replaces component's entire sequence for scope with the single
// given status.
func (s *State) Set(component string, scope status.Scope, st status.Status) {
	p := s.writable(component, scope)
	if p == nil {
		return
	}
	s.save(p, component, status.List{st})
}

// Delete removes the first stored status structurally equal to st.
// Deleting an absent status is a no-op; deletion is idempotent from
// the caller's perspective.
func (s *State) Delete(component string, scope status.Scope, st status.Status) {
	p := s.writable(component, scope)
	if p == nil {
		return
	}
	list, removed := s.load(p, component).Remove(st)
	if !removed {
		logger.Warningf("status %q not present for %q in %s scope", st.Message, component, scope)
		return
	}
	s.save(p, component, list)
}

// Clear empties component's sequence for scope.
func (s *State) Clear(component string, scope status.Scope) {
	p := s.writable(component, scope)
	if p == nil {
		return
	}
	s.save(p, component, nil)
}

// Get returns component's stored sequence for scope, optionally
// filtered. It never fails: unprovisioned storage yields an empty
// sequence.
func (s *State) Get(component string, scope status.Scope, filter status.Filter) status.List {
	p := s.partitions.Partition(scope)
	if p == nil {
		logger.Warningf("no status storage for %s scope, no statuses for %q", scope, component)
		return nil
	}
	return s.load(p, component).Select(filter)
}

// Component returns a view of the state bound to the named component,
// for handing to the component itself.
func (s *State) Component(name string) *ComponentState {
	return &ComponentState{state: s, name: name}
}

// ComponentState is one component's view over the shared State.
type ComponentState struct {
	state *State
	name  string
}

// Name returns the component name this view is bound to.
func (c *ComponentState) Name() string {
	return c.name
}

// Add inserts st into this component's sequence for scope.
func (c *ComponentState) Add(scope status.Scope, st status.Status) {
	c.state.Add(c.name, scope, st)
}

// Set replaces this component's sequence for scope with st.
func (c *ComponentState) Set(scope status.Scope, st status.Status) {
	c.state.Set(c.name, scope, st)
}

// Delete removes st from this component's sequence for scope.
func (c *ComponentState) Delete(scope status.Scope, st status.Status) {
	c.state.Delete(c.name, scope, st)
}

// Clear empties this component's sequence for scope.
func (c *ComponentState) Clear(scope status.Scope) {
	c.state.Clear(c.name, scope)
}

// Get returns this component's stored sequence for scope.
func (c *ComponentState) Get(scope status.Scope, filter status.Filter) status.List {
	return c.state.Get(c.name, scope, filter)
}
