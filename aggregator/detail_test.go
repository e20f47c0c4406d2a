// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package aggregator_test

import (
	"strings"

	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/advancedstatus/aggregator"
	"github.com/juju/advancedstatus/core/status"
)

type detailSuite struct {
	baseSuite
}

var _ = gc.Suite(&detailSuite{})

func (s *detailSuite) TestDetailReadsStoredResults(c *gc.C) {
	db := &fakeReporter{name: "db"}
	agg := s.newAggregator(c, db)
	s.state.Add("db", status.ScopeLocal, status.Status{
		Status: status.Blocked, Message: "no storage", Action: "attach storage",
	})
	s.state.Add("db", status.ScopeShared, status.Status{Status: status.Active, Message: "cluster ok"})

	result, err := agg.Detail(aggregator.DetailParams{})
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(result.Scopes, gc.HasLen, 2)
	// Without the recompute flag the stored results stand untouched.
	c.Check(db.calls, gc.Equals, 0)

	local := result.Scopes[status.ScopeLocal]
	c.Check(strings.HasPrefix(local.Tabular, "[Local Statuses]\n"), jc.IsTrue)
	c.Check(strings.Contains(local.Tabular, "no storage"), jc.IsTrue)
	c.Assert(local.Statuses["db"], gc.HasLen, 1)
	c.Check(local.Statuses["db"][0].Action, gc.Equals, "attach storage")

	shared := result.Scopes[status.ScopeShared]
	c.Check(strings.HasPrefix(shared.Tabular, "[Shared Statuses]\n"), jc.IsTrue)
	c.Assert(shared.Statuses["db"], gc.HasLen, 1)
	c.Check(shared.Statuses["db"][0].Message, gc.Equals, "cluster ok")
}

func (s *detailSuite) TestDetailRecomputes(c *gc.C) {
	db := &fakeReporter{name: "db", statuses: map[status.Scope][]status.Status{
		status.ScopeLocal: {
			{Status: status.Waiting, Message: "fresh", Check: "healthcheck"},
		},
	}}
	agg := s.newAggregator(c, db)
	s.state.Add("db", status.ScopeLocal, status.Status{Status: status.Blocked, Message: "stale"})

	result, err := agg.Detail(aggregator.DetailParams{Recompute: true})
	c.Assert(err, jc.ErrorIsNil)
	c.Check(db.calls, gc.Equals, 2)

	local := result.Scopes[status.ScopeLocal]
	c.Assert(local.Statuses["db"], gc.HasLen, 1)
	c.Check(local.Statuses["db"][0].Message, gc.Equals, "fresh")
	c.Check(local.Statuses["db"][0].Reason, gc.Equals, "healthcheck")
	c.Check(strings.Contains(local.Tabular, "stale"), jc.IsFalse)
}

func (s *detailSuite) TestDetailOrderMatchesSortedStatuses(c *gc.C) {
	agg := s.newAggregator(c, &fakeReporter{name: "c1"}, &fakeReporter{name: "c2"})
	s.state.Add("c1", status.ScopeLocal, status.Status{Status: status.Waiting, Message: "c1 waiting"})
	s.state.Add("c1", status.ScopeLocal, status.Status{Status: status.Blocked, Message: "c1 blocked"})
	s.state.Add("c2", status.ScopeLocal, status.Status{Status: status.Blocked, Message: "c2 blocked"})

	result, err := agg.Detail(aggregator.DetailParams{})
	c.Assert(err, jc.ErrorIsNil)

	records := result.Scopes[status.ScopeLocal].Statuses["c1"]
	c.Assert(records, gc.HasLen, 2)
	c.Check(records[0].Message, gc.Equals, "c1 blocked")
	c.Check(records[1].Message, gc.Equals, "c1 waiting")

	// The tabular view lists rows in global sorted order.
	tabular := result.Scopes[status.ScopeLocal].Tabular
	c.Check(strings.Index(tabular, "c1 blocked") < strings.Index(tabular, "c2 blocked"), jc.IsTrue)
	c.Check(strings.Index(tabular, "c2 blocked") < strings.Index(tabular, "c1 waiting"), jc.IsTrue)
}
