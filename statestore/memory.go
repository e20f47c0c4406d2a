// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package statestore

import (
	"sync"

	"github.com/juju/advancedstatus/core/status"
)

// MemoryPartition is a map-backed Partition for hosts without
// replicated storage, and for tests.
type MemoryPartition struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryPartition returns an empty in-memory partition.
func NewMemoryPartition() *MemoryPartition {
	return &MemoryPartition{data: make(map[string][]byte)}
}

// Get is part of the Partition interface.
func (p *MemoryPartition) Get(key string) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	value, ok := p.data[key]
	if !ok {
		return nil, nil
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, nil
}

// Put is part of the Partition interface.
func (p *MemoryPartition) Put(key string, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	copied := make([]byte, len(value))
	copy(copied, value)
	p.data[key] = copied
	return nil
}

// MemoryPartitions backs both scopes in memory.
type MemoryPartitions struct {
	local  *MemoryPartition
	shared *MemoryPartition
}

// NewMemoryPartitions returns in-memory partitions for both scopes.
func NewMemoryPartitions() *MemoryPartitions {
	return &MemoryPartitions{
		local:  NewMemoryPartition(),
		shared: NewMemoryPartition(),
	}
}

// Partition is part of the Partitions interface.
func (p *MemoryPartitions) Partition(scope status.Scope) Partition {
	switch scope {
	case status.ScopeLocal:
		return p.local
	case status.ScopeShared:
		return p.shared
	}
	return nil
}

// scopedPartitions adapts explicit per-scope partitions, either of
// which may be nil while unprovisioned.
type scopedPartitions struct {
	local  Partition
	shared Partition
}

// NewPartitions combines per-scope partitions into a Partitions. Either
// may be nil while the corresponding storage is unprovisioned; a nil
// Partition interface value is returned for it.
func NewPartitions(local, shared Partition) Partitions {
	return &scopedPartitions{local: local, shared: shared}
}

// Partition is part of the Partitions interface.
func (p *scopedPartitions) Partition(scope status.Scope) Partition {
	switch scope {
	case status.ScopeLocal:
		return p.local
	case status.ScopeShared:
		return p.shared
	}
	return nil
}
