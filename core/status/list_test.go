// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package status_test

import (
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/advancedstatus/core/status"
)

type listSuite struct {
	testing.IsolationSuite

	priorities status.Priorities
}

var _ = gc.Suite(&listSuite{})

func (s *listSuite) SetUpTest(c *gc.C) {
	s.IsolationSuite.SetUpTest(c)
	s.priorities = status.DefaultPriorities()
}

func (s *listSuite) assertSorted(c *gc.C, l status.List) {
	for i := 1; i < len(l); i++ {
		c.Assert(s.priorities.Value(l[i-1].Status) >= s.priorities.Value(l[i].Status), jc.IsTrue,
			gc.Commentf("list not sorted at index %d: %v", i, l))
	}
}

func (s *listSuite) TestInsertKeepsDescendingOrder(c *gc.C) {
	var l status.List
	var inserted bool
	for _, st := range []status.Status{
		{Status: status.Waiting, Message: "waiting for peers"},
		{Status: status.Blocked, Message: "no storage"},
		{Status: status.Active, Message: "ok"},
		{Status: status.Maintenance, Message: "compacting"},
		{Status: status.Blocked, Message: "config invalid"},
	} {
		l, inserted = l.Insert(st, s.priorities)
		c.Check(inserted, jc.IsTrue)
		s.assertSorted(c, l)
	}
	c.Assert(l, gc.HasLen, 5)
	c.Check(l[0].Status, gc.Equals, status.Blocked)
	c.Check(l[1].Status, gc.Equals, status.Blocked)
	c.Check(l[2].Status, gc.Equals, status.Maintenance)
	c.Check(l[3].Status, gc.Equals, status.Waiting)
	c.Check(l[4].Status, gc.Equals, status.Active)
}

func (s *listSuite) TestInsertStableAmongEqualKinds(c *gc.C) {
	var l status.List
	first := status.Status{Status: status.Blocked, Message: "first"}
	second := status.Status{Status: status.Blocked, Message: "second"}
	l, _ = l.Insert(first, s.priorities)
	l, _ = l.Insert(second, s.priorities)
	c.Assert(l, gc.HasLen, 2)
	c.Check(l[0].Message, gc.Equals, "first")
	c.Check(l[1].Message, gc.Equals, "second")
}

func (s *listSuite) TestInsertDuplicateIsNoop(c *gc.C) {
	st := status.Status{Status: status.Blocked, Message: "no storage"}
	l, inserted := status.List(nil).Insert(st, s.priorities)
	c.Check(inserted, jc.IsTrue)

	// A copy differing only in short message is still a duplicate.
	dup := st
	dup.ShortMessage = "storage"
	l, inserted = l.Insert(dup, s.priorities)
	c.Check(inserted, jc.IsFalse)
	c.Check(l, gc.HasLen, 1)
}

func (s *listSuite) TestInsertUnrankedKindSortsLast(c *gc.C) {
	var l status.List
	l, _ = l.Insert(status.Status{Status: status.Active, Message: "ok"}, s.priorities)
	l, _ = l.Insert(status.Status{Status: status.Kind("exotic"), Message: "?"}, s.priorities)
	l, _ = l.Insert(status.Status{Status: status.Waiting, Message: "waiting"}, s.priorities)
	c.Assert(l, gc.HasLen, 3)
	c.Check(l[2].Status, gc.Equals, status.Kind("exotic"))
}

func (s *listSuite) TestRemove(c *gc.C) {
	first := status.Status{Status: status.Blocked, Message: "first"}
	second := status.Status{Status: status.Blocked, Message: "second"}
	var l status.List
	l, _ = l.Insert(first, s.priorities)
	l, _ = l.Insert(second, s.priorities)

	l, removed := l.Remove(first)
	c.Check(removed, jc.IsTrue)
	c.Assert(l, gc.HasLen, 1)
	c.Check(l[0].Message, gc.Equals, "second")

	l, removed = l.Remove(first)
	c.Check(removed, jc.IsFalse)
	c.Check(l, gc.HasLen, 1)
}

func (s *listSuite) TestSelectRunning(c *gc.C) {
	regular := status.Status{Status: status.Active, Message: "ok"}
	blocking := status.Status{Status: status.Maintenance, Message: "draining", Running: status.RunningBlocking}
	async := status.Status{Status: status.Maintenance, Message: "backing up", Running: status.RunningAsync}
	var l status.List
	for _, st := range []status.Status{regular, blocking, async} {
		l, _ = l.Insert(st, s.priorities)
	}

	c.Check(l.Select(status.Filter{}), gc.HasLen, 3)

	running := l.Select(status.Filter{RunningOnly: true})
	c.Assert(running, gc.HasLen, 2)
	for _, st := range running {
		c.Check(st.IsRunning(), jc.IsTrue)
	}

	async0 := l.Select(status.Filter{RunningOnly: true, RunningKind: status.RunningAsync})
	c.Assert(async0, gc.HasLen, 1)
	c.Check(async0[0].Message, gc.Equals, "backing up")

	blocking0 := l.Select(status.Filter{RunningOnly: true, RunningKind: status.RunningBlocking})
	c.Assert(blocking0, gc.HasLen, 1)
	c.Check(blocking0[0].Message, gc.Equals, "draining")
}

func (s *listSuite) TestSerializeRoundTrip(c *gc.C) {
	var l status.List
	for _, st := range []status.Status{
		{Status: status.Blocked, Message: "no storage", Action: "attach storage", Check: "storage"},
		{Status: status.Maintenance, Message: "backing up", Running: status.RunningAsync},
		{Status: status.Active, Message: "ok", Critical: true},
	} {
		l, _ = l.Insert(st, s.priorities)
	}

	data, err := l.Serialize()
	c.Assert(err, jc.ErrorIsNil)

	decoded, err := status.ParseList(data)
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(decoded, gc.HasLen, len(l))
	for i := range l {
		c.Check(decoded[i].Equal(l[i]), jc.IsTrue)
	}
}

func (s *listSuite) TestSerializeNil(c *gc.C) {
	data, err := status.List(nil).Serialize()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(string(data), gc.Equals, "[]")
}

func (s *listSuite) TestParseListEmpty(c *gc.C) {
	l, err := status.ParseList(nil)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(l, gc.HasLen, 0)

	l, err = status.ParseList([]byte("[]"))
	c.Assert(err, jc.ErrorIsNil)
	c.Check(l, gc.HasLen, 0)
}

func (s *listSuite) TestParseListCorrupt(c *gc.C) {
	_, err := status.ParseList([]byte("{not json"))
	c.Check(err, gc.ErrorMatches, "parsing status sequence: .*")
}
