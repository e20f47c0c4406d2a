// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package status

import (
	"github.com/juju/errors"
)

// Kind describes the severity class of a reported status. The set of
// kinds is open: hosts may rank additional kinds via a Priorities table,
// and unknown kinds sort below every known one.
type Kind string

// String returns a string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

const (
	// Error means the reporting unit requires human intervention in
	// order to operate correctly. It is ranked in the default priority
	// table but is reserved to the host agent; components report the
	// four kinds below.
	Error Kind = "error"

	// Blocked means manual intervention is required before the
	// component can make further progress.
	Blocked Kind = "blocked"

	// Maintenance means the component is performing an operation and
	// is expected to become active again without intervention.
	Maintenance Kind = "maintenance"

	// Waiting means the component is waiting on a collaborator it does
	// not control, typically another component or an external service.
	Waiting Kind = "waiting"

	// Active means the component is operating normally.
	Active Kind = "active"
)

// Running classifies in-progress statuses. A regular status carries
// RunningNone.
type Running string

const (
	// RunningNone marks a regular status.
	RunningNone Running = ""

	// RunningBlocking marks an in-progress status that holds for the
	// current cycle only; it is discarded by the next recompute.
	RunningBlocking Running = "blocking"

	// RunningAsync marks an in-progress status that persists across
	// cycles until the long-running task clears it.
	RunningAsync Running = "async"
)

// Validate returns an error if the running classification is unknown.
func (r Running) Validate() error {
	switch r {
	case RunningNone, RunningBlocking, RunningAsync:
		return nil
	}
	return errors.NotValidf("running kind %q", string(r))
}

// MaxShortMessageLength bounds short messages, and is the length beyond
// which a full message is truncated when statuses are collapsed into a
// single line. Critical statuses are exempt.
const MaxShortMessageLength = 40

// Status is the atomic signal reported by a component: the severity
// kind, a human-readable message, and optional diagnostic detail.
// Values are immutable by convention; mutating a stored Status is not
// supported.
type Status struct {
	// Status is the severity kind of this signal.
	Status Kind `json:"status"`

	// Message is the human-readable text displayed when this status is
	// chosen. Unbounded for critical statuses.
	Message string `json:"message"`

	// ShortMessage, when set, is preferred over Message whenever the
	// status is collapsed with others into a single line.
	ShortMessage string `json:"short_message,omitempty"`

	// Check names the diagnostic that produced this status.
	Check string `json:"check,omitempty"`

	// Action is the remediation the operator should take first.
	Action string `json:"action,omitempty"`

	// Running classifies in-progress statuses.
	Running Running `json:"running,omitempty"`

	// Critical statuses bypass collapsing and length limits, and are
	// always displayed when present. They require explicit sign-off
	// before use.
	Critical bool `json:"critical"`
}

// Equal reports structural equality. The short message is deliberately
// excluded: two statuses that differ only in their compact rendering
// are the same signal.
func (s Status) Equal(other Status) bool {
	return s.Status == other.Status &&
		s.Message == other.Message &&
		s.Check == other.Check &&
		s.Action == other.Action &&
		s.Running == other.Running &&
		s.Critical == other.Critical
}

// IsRunning reports whether this is an in-progress status.
func (s Status) IsRunning() bool {
	return s.Running != RunningNone
}

// Validate returns an error if the status is malformed.
func (s Status) Validate() error {
	if s.Status == "" {
		return errors.NotValidf("status with empty kind")
	}
	if err := s.Running.Validate(); err != nil {
		return errors.Trace(err)
	}
	if n := len([]rune(s.ShortMessage)); n > MaxShortMessageLength {
		return errors.NotValidf("short message of %d runes", n)
	}
	return nil
}
