// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package aggregator collapses the statuses reported by a fixed,
// ordered set of components into a single representative status per
// scope, with a detail view over every contributing status.
package aggregator

import (
	"sort"
	"sync"

	"github.com/juju/collections/set"
	"github.com/juju/errors"
	"github.com/juju/loggo"

	"github.com/juju/advancedstatus/core/status"
	"github.com/juju/advancedstatus/statestore"
)

var logger = loggo.GetLogger("juju.advancedstatus.aggregator")

// DetailCommand is the name of the host surface that renders the full
// status detail. Collapsed status messages point operators at it.
const DetailCommand = "status-detail"

// Reporter is implemented by every component that reports statuses.
type Reporter interface {
	// Name identifies the component. Names must be stable and unique
	// across the registered set.
	Name() string

	// Statuses computes the component's current candidate statuses
	// for scope, excluding blocking running statuses. recompute is
	// true when called from a recompute cycle, in which case the
	// component must compute fresh rather than return cached results.
	Statuses(scope status.Scope, recompute bool) ([]status.Status, error)
}

// StatusSetter pushes a representative status to the host's display
// surface.
type StatusSetter interface {
	SetStatus(scope status.Scope, s status.Status) error
}

// Entry pairs a status with the component that reported it.
type Entry struct {
	Component string
	Status    status.Status
}

// Config holds everything an Aggregator needs.
type Config struct {
	// Components lists the reporting components in priority order;
	// an earlier component wins ties of status kind.
	Components []Reporter

	// State is the shared status store all components write through.
	State *statestore.State

	// Setter receives each scope's representative status.
	Setter StatusSetter

	// Priorities ranks status kinds. Defaults to DefaultPriorities.
	Priorities status.Priorities
}

// Validate returns an error if the config is incomplete.
func (config Config) Validate() error {
	if len(config.Components) == 0 {
		return errors.NotValidf("empty Components")
	}
	if config.State == nil {
		return errors.NotValidf("nil State")
	}
	if config.Setter == nil {
		return errors.NotValidf("nil Setter")
	}
	names := set.NewStrings()
	for _, component := range config.Components {
		if component == nil {
			return errors.NotValidf("nil component")
		}
		name := component.Name()
		if names.Contains(name) {
			return errors.NotValidf("duplicate component %q", name)
		}
		names.Add(name)
	}
	if config.Priorities != nil {
		if err := config.Priorities.Validate(); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

// Aggregator reads every component's stored statuses, orders them, and
// decides the representative status per scope. Sorted results are
// memoized within an evaluation cycle and invalidated when the cycle's
// data changes.
type Aggregator struct {
	components []Reporter
	ranks      map[string]int
	state      *statestore.State
	setter     StatusSetter
	priorities status.Priorities

	mu   sync.Mutex
	memo map[status.Scope][]Entry
}

// New returns an Aggregator over the configured components.
func New(config Config) (*Aggregator, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	priorities := config.Priorities
	if priorities == nil {
		priorities = status.DefaultPriorities()
	}
	ranks := make(map[string]int, len(config.Components))
	for i, component := range config.Components {
		ranks[component.Name()] = i
	}
	return &Aggregator{
		components: config.Components,
		ranks:      ranks,
		state:      config.State,
		setter:     config.Setter,
		priorities: priorities,
		memo:       make(map[status.Scope][]Entry),
	}, nil
}

// State returns the shared status store the aggregator reads.
func (a *Aggregator) State() *statestore.State {
	return a.state
}

// Rank returns the registration rank of the named component; lower
// ranks win ties of status kind. An unknown name indicates a
// registration mismatch and is an error.
func (a *Aggregator) Rank(name string) (int, error) {
	rank, ok := a.ranks[name]
	if !ok {
		return 0, errors.NotValidf("unknown component %q", name)
	}
	return rank, nil
}

// Invalidate drops the memoized aggregation. It must be called
// whenever the underlying stores change: stale results from a previous
// cycle are a correctness bug, not a performance one.
func (a *Aggregator) Invalidate() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.memo = make(map[status.Scope][]Entry)
}

// SortedStatuses flattens every component's stored sequence for scope
// and sorts by descending kind priority, ties broken by registration
// rank. The result is the single ordering every higher-level view
// consumes, and is memoized for the rest of the evaluation cycle.
func (a *Aggregator) SortedStatuses(scope status.Scope) ([]Entry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if entries, ok := a.memo[scope]; ok {
		return entries, nil
	}

	type keyed struct {
		entry    Entry
		priority int
		rank     int
	}
	var all []keyed
	for _, component := range a.components {
		name := component.Name()
		rank, err := a.Rank(name)
		if err != nil {
			return nil, errors.Trace(err)
		}
		for _, st := range a.state.Get(name, scope, status.Filter{}) {
			all = append(all, keyed{
				entry:    Entry{Component: name, Status: st},
				priority: a.priorities.Value(st.Status),
				rank:     rank,
			})
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].priority != all[j].priority {
			return all[i].priority > all[j].priority
		}
		return all[i].rank < all[j].rank
	})

	entries := make([]Entry, len(all))
	for i, k := range all {
		entries[i] = k.entry
	}
	a.memo[scope] = entries
	return entries, nil
}

// CriticalStatuses returns the critical subset of SortedStatuses,
// preserving order.
func (a *Aggregator) CriticalStatuses(scope status.Scope) ([]Entry, error) {
	all, err := a.SortedStatuses(scope)
	if err != nil {
		return nil, errors.Trace(err)
	}
	var critical []Entry
	for _, entry := range all {
		if entry.Status.Critical {
			critical = append(critical, entry)
		}
	}
	return critical, nil
}

// Recompute runs a full cycle: every component, in priority order, has
// its stored sequences cleared and recomputed for both scopes.
func (a *Aggregator) Recompute() error {
	a.Invalidate()
	for _, component := range a.components {
		store := a.state.Component(component.Name())
		for _, scope := range status.AllScopes() {
			store.Clear(scope)
			statuses, err := component.Statuses(scope, true)
			if err != nil {
				return errors.Annotatef(err, "recomputing statuses of %q", component.Name())
			}
			logger.Debugf("recomputed %d statuses of %q in %s scope", len(statuses), component.Name(), scope)
			for _, st := range statuses {
				store.Add(scope, st)
			}
		}
	}
	// Anything memoized while components were reporting saw a
	// half-written table.
	a.Invalidate()
	return nil
}

// Collect decides scope's representative status and pushes it through
// the setter. Without any stored status, nothing is pushed and the
// host's own default stands.
func (a *Aggregator) Collect(scope status.Scope) error {
	representative, ok, err := a.Representative(scope)
	if err != nil {
		return errors.Trace(err)
	}
	if !ok {
		return nil
	}
	return errors.Trace(a.setter.SetStatus(scope, representative))
}
