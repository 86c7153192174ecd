// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "container/heap"

// Vector holds an ordered sequence of root edges and exposes the
// aggregate reductions of §4.8 (vector_and/list_and etc., modeled here
// as member functions per the Open Question resolved in DESIGN.md: the
// collection API takes the member-function form rather than free
// functions taking a slice).
type Vector struct {
	m     *Manager
	roots []Edge
}

// List holds the same root-edge sequence as a singly linked chain, for
// callers that accumulate roots incrementally and never need random
// access; the aggregate operators only depend on traversal order, so
// both collections reduce through the manager's shared reduceEdges.
type List struct {
	m           *Manager
	front, back *listNode
	size        int
}

type listNode struct {
	e    Edge
	next *listNode
}

// NewVector builds a Vector over the given root edges.
func (m *Manager) NewVector(roots ...Edge) *Vector {
	cp := make([]Edge, len(roots))
	copy(cp, roots)
	return &Vector{m: m, roots: cp}
}

// Len returns the number of elements.
func (v *Vector) Len() int { return len(v.roots) }

// At returns the i'th root edge.
func (v *Vector) At(i int) Edge { return v.roots[i] }

// Append adds additional root edges to the end of v.
func (v *Vector) Append(edges ...Edge) { v.roots = append(v.roots, edges...) }

// pqItem pairs a root edge with its node-count weight for the
// size-weighted priority queue below.
type pqItem struct {
	e      Edge
	weight int
}

// edgeHeap is a min-heap on weight: smallest BDDs combine first, which
// keeps intermediate results small the way it would pairing the two
// lightest operands in any bottom-up Huffman-style reduction.
type edgeHeap []pqItem

func (h edgeHeap) Len() int            { return len(h) }
func (h edgeHeap) Less(i, j int) bool  { return h[i].weight < h[j].weight }
func (h edgeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(pqItem)) }
func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// reduceEdges folds roots pairwise using op. Sequences of four elements
// or fewer are folded left to right, a plain linear scan; five or more
// route through a size-weighted min-priority queue (container/heap) so
// that the two currently-smallest BDDs are always combined next,
// bounding the size of intermediate results the way a naive left fold
// cannot (§4.8's "a priority queue, weighted by size, for collections
// of five or more elements").
func (m *Manager) reduceEdges(roots []Edge, identity Edge, op func(a, b Edge) Edge) Edge {
	switch len(roots) {
	case 0:
		return identity
	case 1:
		return roots[0]
	}
	if len(roots) < 5 {
		r := roots[0]
		for _, e := range roots[1:] {
			r = op(r, e)
		}
		return r
	}
	h := make(edgeHeap, len(roots))
	for i, e := range roots {
		h[i] = pqItem{e: e, weight: m.NodeCount(e)}
	}
	heap.Init(&h)
	// Every combined edge produced below sits in the heap, unrooted,
	// across later iterations' op() calls; pin each until it is either
	// combined again or handed back as the final result.
	var pinned int
	for h.Len() > 1 {
		a := heap.Pop(&h).(pqItem)
		b := heap.Pop(&h).(pqItem)
		r := op(a.e, b.e)
		m.pushProtected(r)
		pinned++
		heap.Push(&h, pqItem{e: r, weight: m.NodeCount(r)})
	}
	m.popProtected(pinned)
	return h[0].e
}

// And returns the conjunction of every element.
func (v *Vector) And() Edge { return v.m.reduceEdges(v.roots, eOne, v.m.And) }

// Or returns the disjunction of every element.
func (v *Vector) Or() Edge { return v.m.reduceEdges(v.roots, eZero, v.m.Or) }

// Xor returns the exclusive-or of every element.
func (v *Vector) Xor() Edge { return v.m.reduceEdges(v.roots, eZero, v.m.Xor) }

// NodeCount returns the number of distinct internal nodes shared across
// every element of v, via the Manager's shared-traversal NodeCount.
func (v *Vector) NodeCount() int { return v.m.NodeCount(v.roots...) }

// Support returns the variable identifiers appearing in any element.
func (v *Vector) Support() []int { return v.m.Support(v.roots...) }

// NewList builds a List over the given root edges, preserving order.
func (m *Manager) NewList(roots ...Edge) *List {
	l := &List{m: m}
	for _, e := range roots {
		l.PushBack(e)
	}
	return l
}

// PushBack appends e to the end of the list.
func (l *List) PushBack(e Edge) {
	n := &listNode{e: e}
	if l.back == nil {
		l.front = n
	} else {
		l.back.next = n
	}
	l.back = n
	l.size++
}

// Len returns the number of elements.
func (l *List) Len() int { return l.size }

// Edges returns the elements in order.
func (l *List) Edges() []Edge {
	out := make([]Edge, 0, l.size)
	for n := l.front; n != nil; n = n.next {
		out = append(out, n.e)
	}
	return out
}

// And returns the conjunction of every element.
func (l *List) And() Edge { return l.m.reduceEdges(l.Edges(), eOne, l.m.And) }

// Or returns the disjunction of every element.
func (l *List) Or() Edge { return l.m.reduceEdges(l.Edges(), eZero, l.m.Or) }

// Xor returns the exclusive-or of every element.
func (l *List) Xor() Edge { return l.m.reduceEdges(l.Edges(), eZero, l.m.Xor) }

// NodeCount returns the number of distinct internal nodes shared across
// every element of l.
func (l *List) NodeCount() int { return l.m.NodeCount(l.Edges()...) }

// Support returns the variable identifiers appearing in any element.
func (l *List) Support() []int { return l.m.Support(l.Edges()...) }
