// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package leadership defines the narrow predicate consulted before any
// shared-scope status mutation. The election mechanism itself lives in
// the host; this package only expresses the question.
package leadership

// Checker reports whether the calling unit currently holds write
// authority over shared-scope state. It is consulted before every
// shared-scope mutation; non-writers have their writes dropped.
type Checker interface {
	IsWriter() bool
}

// CheckerFunc adapts a plain function to the Checker interface.
type CheckerFunc func() bool

// IsWriter is part of the Checker interface.
func (f CheckerFunc) IsWriter() bool {
	return f()
}

// AlwaysWriter returns a Checker granting unconditional write
// authority, for hosts that do not form a reporting group.
func AlwaysWriter() Checker {
	return CheckerFunc(func() bool {
		return true
	})
}
