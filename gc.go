// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// GCStats reports the external interface's statistics vocabulary for
// garbage collection: invocation count and nodes freed by the last pass.
type GCStats struct {
	Count     int // number of GC invocations so far
	LastFreed int
}

// pushProtected pins e against collection for the duration of the
// current recursive operator call. An operator's not-yet-returned
// intermediate edges would otherwise be invisible to a GC triggered by
// a nested lookupOrInsert call.
func (m *Manager) pushProtected(e Edge) {
	m.protected = append(m.protected, e)
}

// popProtected unwinds the protected-edge stack by n entries, called
// when a recursive operator is about to return.
func (m *Manager) popProtected(n int) {
	m.protected = m.protected[:len(m.protected)-n]
}

// RegisterSweepBinder registers fn to be invoked immediately before every
// GC sweep phase, so that client-side caches keyed by edges can
// invalidate themselves -- the Go equivalent of the original reference
// implementation's reg_sweep_binder/EventBinder.
func (m *Manager) RegisterSweepBinder(fn func()) {
	m.sweepBinders = append(m.sweepBinders, fn)
}

// GC runs an explicit mark-and-sweep pass. When shrink is true and
// occupancy allows it, the node table is rebuilt at a smaller capacity
// afterward.
func (m *Manager) GC(shrink bool) int {
	return m.gc(shrink)
}

func (m *Manager) gc(shrink bool) int {
	for _, fn := range m.sweepBinders {
		fn()
	}
	m.table.clearMarks()
	var mark func(e Edge)
	mark = func(e Edge) {
		if e.IsLeaf() {
			return
		}
		n := e.node()
		if !m.table.touch(n) {
			return
		}
		mark(m.table.low(n))
		mark(m.table.high(n))
	}
	for _, r := range m.liveRoots() {
		mark(r)
	}
	for _, p := range m.protected {
		mark(p)
	}
	// Literal nodes are permanent roots: m.posLiteral is consulted
	// directly by Literal, scc, OnePath and ShortestOnePath without going
	// through a Handle, so they must survive every sweep regardless of
	// reachability from liveRoots.
	for _, lit := range m.posLiteral {
		mark(lit)
	}
	freed := m.table.sweep()
	m.garbage = 0 // the sweep reclaimed everything unreachable
	m.opcache.purge(m)
	if shrink {
		m.table.shrink()
	}
	m.gcStats.Count++
	m.gcStats.LastFreed = freed
	m.log.Sugar().Infof("gc: freed=%d remaining=%d", freed, m.table.nodeCount())
	return freed
}

// maybeGC triggers an automatic collection when the estimated garbage
// fraction garbage/(live+garbage) crosses gc_threshold and the manager
// holds at least gc_node_limit nodes. nodeCount already includes
// not-yet-swept garbage, so it is the ratio's denominator directly.
// The estimate accrues when root handles are released (Handle.Release)
// and resets to zero after every sweep, so a workload that merely
// grows -- without dropping any roots -- never pays for a mark pass
// that would free nothing.
func (m *Manager) maybeGC() {
	total := m.table.nodeCount()
	if total < m.cfg.gcNodeLimit || m.garbage == 0 {
		return
	}
	if float64(m.garbage) >= m.cfg.gcThreshold*float64(total) {
		m.gc(false)
	}
}
