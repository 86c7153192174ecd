// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// nodeTable is the unique-table contract: hash-consed storage of
// internal nodes keyed by (level, edge0, edge1). Two implementations
// satisfy it -- classicTable (chained hashing) and modernTable (a Go
// map) -- selectable at Manager construction time by name, a runtime
// choice per the external interface's manager-type contract.
//
// Implementations only ever see canonicalized keys: rawInsert is called
// with e0 already guaranteed uncomplemented and e0 != e1; the
// canonicalization and reduction steps themselves live in
// lookupOrInsert below, shared by both implementations.
type nodeTable interface {
	// rawInsert finds or allocates the node for (level, e0, e1) and
	// returns its index. overflow is true when allocation was refused
	// (memory ceiling or table exhaustion).
	rawInsert(level int32, e0, e1 Edge) (idx int, overflow bool)

	level(n int) int32
	low(n int) Edge
	high(n int) Edge

	// clearMarks resets every node's accumulated reference count and
	// visited bit; called once at the start of a GC mark phase.
	clearMarks()
	// touch increments n's reference count and returns true iff this is
	// the first time n was touched since the last clearMarks, signaling
	// the caller should recurse into n's children.
	touch(n int) bool
	refCount(n int) int32

	// sweep frees every node whose reference count is still zero after
	// a full mark phase, invalidating its slot. It returns the number of
	// nodes freed.
	sweep() int
	// shrink rebuilds the table at a smaller capacity when requested and
	// occupancy allows it.
	shrink()
	// rehash grows the table when its load factor crosses the
	// configured threshold. Returns true if it actually grew.
	rehash(loadLimit float64) bool

	nodeCount() int
	capacity() int
	usedMemory() uint64

	reset(varnum int, cfg configs)
}

// newNodeTable builds the node-table implementation named by kind.
// Unknown names default to "classic", per the external interface's
// manager-type contract.
func newNodeTable(kind string, cfg configs) nodeTable {
	switch kind {
	case "modern":
		return newModernTable(cfg)
	default:
		return newClassicTable(cfg)
	}
}

// lookupOrInsert implements the unique table's public contract (§4.2):
// reduction when e0 == e1, canonicalization when e0 carries the
// complement bit, and otherwise a hash-consed install through the
// table's rawInsert primitive.
func lookupOrInsert(t nodeTable, level int32, e0, e1 Edge) Edge {
	if e0 == e1 {
		return e0
	}
	if !e0.IsLeaf() && e0.polarity() {
		return Negate(lookupOrInsert(t, level, Negate(e0), Negate(e1)))
	}
	if e0.IsLeaf() && e0 == eOne {
		// A leaf 0-edge is only ever eZero under canonical polarity;
		// eOne as a 0-edge is the complement of eZero and must be
		// pushed the same way internal complemented edges are.
		return Negate(lookupOrInsert(t, level, eZero, Negate(e1)))
	}
	idx, overflow := t.rawInsert(level, e0, e1)
	if overflow {
		return eOverflow
	}
	return internal(idx, false)
}
