// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package statestore

import (
	"github.com/juju/advancedstatus/core/status"
)

// Partition is the narrow key/value surface over the storage that backs
// one scope's status sequences. Keys are component names; values are
// serialized status sequences. The replication and consistency of the
// underlying storage belong to the host.
type Partition interface {
	// Get returns the stored value for key, or nil if absent.
	Get(key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(key string, value []byte) error
}

// Partitions resolves the backing partition for each scope. A nil
// result means the scope's storage has not been provisioned yet, for
// example because the reporting group has not formed; store operations
// degrade to no-ops until it appears.
type Partitions interface {
	Partition(scope status.Scope) Partition
}
