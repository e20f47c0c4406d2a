// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package status

import (
	"github.com/juju/errors"
	"gopkg.in/yaml.v2"
)

// Priorities ranks status kinds. Higher values sort first when statuses
// are aggregated. The absolute values carry no meaning beyond their
// relative order; kinds absent from the table rank below every ranked
// kind.
type Priorities map[Kind]int

// DefaultPriorities returns the standard ranking. Error outranks
// everything even though components do not set it themselves.
func DefaultPriorities() Priorities {
	return Priorities{
		Error:       5,
		Blocked:     4,
		Maintenance: 3,
		Waiting:     2,
		Active:      1,
	}
}

// Value returns the rank of kind, or zero for an unranked kind.
func (p Priorities) Value(kind Kind) int {
	return p[kind]
}

// Lowest returns the ranked kind with the smallest priority. This is
// the kind whose presence alone does not make a status "important"
// when deciding whether to collapse.
func (p Priorities) Lowest() Kind {
	var lowest Kind
	first := true
	for kind, value := range p {
		if first || value < p[lowest] {
			lowest = kind
			first = false
		}
	}
	return lowest
}

// Validate returns an error if the table is empty or two kinds share a
// rank, which would leave the aggregation order undefined.
func (p Priorities) Validate() error {
	if len(p) == 0 {
		return errors.NotValidf("empty priority table")
	}
	seen := make(map[int]Kind, len(p))
	for kind, value := range p {
		if other, ok := seen[value]; ok {
			return errors.NotValidf("priority %d shared by %q and %q", value, other, kind)
		}
		seen[value] = kind
	}
	return nil
}

// ParsePriorities reads a priority table from its YAML configuration
// form, a mapping from kind name to rank.
func ParsePriorities(data []byte) (Priorities, error) {
	var raw map[string]int
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Annotate(err, "parsing priority table")
	}
	p := make(Priorities, len(raw))
	for kind, value := range raw {
		p[Kind(kind)] = value
	}
	if err := p.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return p, nil
}
