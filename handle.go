// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "runtime"

// Handle is an externally held, reference-counted root edge. Creating a
// Handle threads it into the manager's doubly-linked live-handle list
// (§4.4); GC walks that list to find every live root instead of relying
// solely on Go's own garbage collector. A finalizer is also attached,
// but the list's links keep every unreleased Handle reachable, so the
// finalizer does not run for a Handle a client forgets to Release: that
// Handle stays a live root for the manager's lifetime.
type Handle struct {
	mgr        *Manager
	edge       Edge
	prev, next *Handle
	released   bool
}

// sentinel-headed circular doubly-linked list, one per Manager.
func (m *Manager) newHandleList() {
	m.handles = &Handle{}
	m.handles.prev = m.handles
	m.handles.next = m.handles
}

// Root wraps e in a new Handle, pinning its sub-DAG alive until the
// Handle is released.
func (m *Manager) Root(e Edge) *Handle {
	h := &Handle{mgr: m, edge: e}
	m.linkHandle(h)
	if !e.IsLeaf() {
		runtime.SetFinalizer(h, (*Handle).Release)
	}
	return h
}

func (m *Manager) linkHandle(h *Handle) {
	sentinel := m.handles
	h.next = sentinel.next
	h.prev = sentinel
	sentinel.next.prev = h
	sentinel.next = h
}

func (m *Manager) unlinkHandle(h *Handle) {
	h.prev.next = h.next
	h.next.prev = h.prev
	h.prev, h.next = nil, nil
}

// Edge returns the edge a Handle refers to.
func (h *Handle) Edge() Edge { return h.edge }

// Release drops the handle. It is idempotent and safe to call from a
// finalizer.
func (h *Handle) Release() {
	if h.released {
		return
	}
	h.released = true
	h.mgr.unlinkHandle(h)
	if !h.edge.IsLeaf() {
		// Count the dropped sub-DAG toward the manager's garbage
		// estimate. Nodes shared with still-live roots are counted
		// too, so this is an upper bound; the counter returns to
		// truth (zero) at the next sweep.
		h.mgr.garbage += h.mgr.NodeCount(h.edge)
	}
	runtime.SetFinalizer(h, nil)
}

// liveRoots returns the edges of every handle currently linked into the
// manager's registry, used by the GC mark phase.
func (m *Manager) liveRoots() []Edge {
	var roots []Edge
	for h := m.handles.next; h != m.handles; h = h.next {
		roots = append(roots, h.edge)
	}
	return roots
}
