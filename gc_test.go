// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "testing"

func TestGCFreesUnreachableNodes(t *testing.T) {
	m := newTestManager(t, "classic", 2)
	x0, _ := m.Literal(0, true)
	x1, _ := m.Literal(1, true)
	f := m.And(x0, x1) // builds an unrooted node, never pinned by a Handle
	_ = f
	before := m.Stats().NodeCount
	freed := m.GC(false)
	if freed == 0 {
		t.Errorf("GC should have freed the unrooted And node, freed=%d before=%d", freed, before)
	}
}

func TestGCKeepsHandleRootedNodes(t *testing.T) {
	m := newTestManager(t, "classic", 2)
	x0, _ := m.Literal(0, true)
	x1, _ := m.Literal(1, true)
	f := m.And(x0, x1)
	root := m.Root(f)
	defer root.Release()
	m.GC(false)
	if m.NodeCount(f) == 0 && !f.IsLeaf() {
		t.Errorf("GC freed a node still pinned by a live Handle")
	}
}

func TestGCKeepsLiteralsRooted(t *testing.T) {
	m := newTestManager(t, "classic", 2)
	x0, _ := m.Literal(0, true)
	root := m.Root(x0)
	defer root.Release()
	m.GC(true)
	// x0 must still resolve to a valid node after GC+shrink
	if got, _ := m.Literal(0, true); got != x0 {
		t.Errorf("Literal(0,+) changed identity across GC: %v -> %v", x0, got)
	}
}

func TestRegisterSweepBinderInvokedDuringGC(t *testing.T) {
	m := newTestManager(t, "classic", 1)
	called := false
	m.RegisterSweepBinder(func() { called = true })
	m.GC(false)
	if !called {
		t.Errorf("sweep binder was not invoked during GC")
	}
}

func TestAutoGCTriggersOnGarbageRatio(t *testing.T) {
	m, err := New("classic", "", "", GCNodeLimit(1), GCThreshold(0.1))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if err := m.NewVar(i); err != nil {
			t.Fatal(err)
		}
	}
	x0, _ := m.Literal(0, true)
	x1, _ := m.Literal(1, true)

	h := m.Root(m.And(x0, x1))
	h.Release()
	if m.Stats().GarbageCount == 0 {
		t.Fatalf("releasing the only root should raise the garbage estimate")
	}
	m.Xor(x0, x1) // next install crosses the ratio and collects
	if m.Stats().GCCount == 0 {
		t.Errorf("automatic GC should have run once garbage/total crossed gc_threshold")
	}
	if m.Stats().GarbageCount != 0 {
		t.Errorf("the sweep should reset the garbage estimate, got %d", m.Stats().GarbageCount)
	}
}

func TestAutoGCDoesNotThrashOnGrowth(t *testing.T) {
	m, err := New("classic", "", "", GCNodeLimit(1), GCThreshold(0.1))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 8; i++ {
		if err := m.NewVar(i); err != nil {
			t.Fatal(err)
		}
	}
	// A growing workload that never drops a root must never pay for a
	// mark-sweep pass, however large it gets relative to gc_node_limit.
	acc := eOne
	for i := 0; i < 8; i++ {
		lit, _ := m.Literal(i, true)
		acc = m.And(acc, lit)
	}
	if got := m.Stats().GCCount; got != 0 {
		t.Errorf("no roots were released, yet GC ran %d times", got)
	}
}
