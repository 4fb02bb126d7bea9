package rop

import "testing"

func TestMakeNameUnique(t *testing.T) {
	nm := NewNodeManager()

	if got := nm.MakeNameUnique("box"); got != "box" {
		t.Errorf("first use of box gave %q", got)
	}
	if got := nm.MakeNameUnique("box"); got != "box1" {
		t.Errorf("second use of box gave %q; expected box1", got)
	}
	if got := nm.MakeNameUnique("box"); got != "box2" {
		t.Errorf("third use of box gave %q; expected box2", got)
	}
	if got := nm.MakeNameUnique("cone"); got != "cone" {
		t.Errorf("unrelated name got suffixed to %q", got)
	}

	a := nm.MakeNameUnique("")
	b := nm.MakeNameUnique("")
	if a == "" || b == "" {
		t.Errorf("empty name did not get a generated replacement")
	}
	if a == b {
		t.Errorf("generated names collide: %q", a)
	}
}

func TestErrorManager(t *testing.T) {
	var em ErrorManager
	em.AddErrorf("warning %d", 1)
	if em.HasFatal() {
		t.Errorf("warning reported as fatal")
	}
	em.AddFatalf("fatal %d", 2)
	em.AddErrorf("warning %d", 3)
	if !em.HasFatal() {
		t.Errorf("fatal entry not reported")
	}

	// entries keep their recorded order, fatals do not clear warnings
	entries := em.Entries()
	if len(entries) != 3 {
		t.Fatalf("%d entries; expected 3", len(entries))
	}
	if entries[0].Message != "warning 1" || entries[1].Message != "fatal 2" || entries[2].Message != "warning 3" {
		t.Errorf("entries out of order: %+v", entries)
	}

	em.Reset()
	if len(em.Entries()) != 0 || em.HasFatal() {
		t.Errorf("Reset left entries behind")
	}
}

func TestActionManagerRunsOnce(t *testing.T) {
	am := NewActionManager()
	runs := 0
	am.QueuePostAction(actionFunc(func() { runs++ }))
	am.QueuePostAction(actionFunc(func() { runs++ }))

	am.PerformPostActions()
	am.PerformPostActions()
	if runs != 2 {
		t.Errorf("actions ran %d times; expected each exactly once", runs)
	}
}

type actionFunc func()

func (f actionFunc) PerformAction() { f() }
