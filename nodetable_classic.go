// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// classicTable is a chained hash table of internal nodes: a flat node
// array, prime-sized, with explicit hash/next link fields forming the
// collision chains, and a free list threaded through unused slots. This
// is the "classic" manager type of the external interface.
type classicTable struct {
	nodes    []classicNode
	unique   []int // hash bucket heads, length = len(nodes)
	freepos  int   // head of the free list, or -1
	freenum  int
	produced int
	cfg      configs
}

type classicNode struct {
	level         int32
	low, high     Edge
	refcou        int32
	touched       bool
	hash, next    int // collision chain bookkeeping
	free          bool
}

func newClassicTable(cfg configs) *classicTable {
	t := &classicTable{}
	t.reset(cfg.varnum, cfg)
	return t
}

func (t *classicTable) reset(varnum int, cfg configs) {
	cfg.varnum = varnum
	t.cfg = cfg
	size := primeGte(cfg.nodesize)
	t.nodes = make([]classicNode, size)
	t.unique = make([]int, size)
	for i := range t.unique {
		t.unique[i] = -1
	}
	for i := range t.nodes {
		t.nodes[i].free = true
		t.nodes[i].next = i + 1
	}
	if size > 0 {
		t.nodes[size-1].next = -1
	}
	t.freepos = 0
	t.freenum = size
	t.produced = 0
}

func (t *classicTable) bucket(level int32, e0, e1 Edge) int {
	h := tripleHash(int(level), int(e0), int(e1))
	if len(t.unique) == 0 {
		return 0
	}
	return h % len(t.unique)
}

func (t *classicTable) rawInsert(level int32, e0, e1 Edge) (int, bool) {
	b := t.bucket(level, e0, e1)
	for i := t.unique[b]; i != -1; i = t.nodes[i].next {
		n := &t.nodes[i]
		if n.level == level && n.low == e0 && n.high == e1 {
			return i, false
		}
	}
	if t.cfg.memLimit > 0 && t.usedMemory() >= t.cfg.memLimit {
		return 0, true
	}
	if t.freenum == 0 || (t.cfg.ntLoadLimit > 0 && float64(t.produced) >= t.cfg.ntLoadLimit*float64(len(t.nodes))) {
		if !t.rehash(t.cfg.ntLoadLimit) {
			return 0, true
		}
		b = t.bucket(level, e0, e1)
	}
	idx := t.freepos
	n := &t.nodes[idx]
	t.freepos = n.next
	t.freenum--
	n.free = false
	n.level = level
	n.low = e0
	n.high = e1
	n.refcou = 0
	n.touched = false
	n.hash = b
	n.next = t.unique[b]
	t.unique[b] = idx
	t.produced++
	return idx, false
}

func (t *classicTable) level(n int) int32 { return t.nodes[n].level }
func (t *classicTable) low(n int) Edge    { return t.nodes[n].low }
func (t *classicTable) high(n int) Edge   { return t.nodes[n].high }

func (t *classicTable) clearMarks() {
	for i := range t.nodes {
		if !t.nodes[i].free {
			t.nodes[i].refcou = 0
			t.nodes[i].touched = false
		}
	}
}

func (t *classicTable) touch(n int) bool {
	node := &t.nodes[n]
	node.refcou++
	if node.touched {
		return false
	}
	node.touched = true
	return true
}

func (t *classicTable) refCount(n int) int32 { return t.nodes[n].refcou }

func (t *classicTable) sweep() int {
	freed := 0
	for b := range t.unique {
		chain := -1
		for i := t.unique[b]; i != -1; {
			next := t.nodes[i].next
			if t.nodes[i].refcou == 0 {
				t.nodes[i].free = true
				t.nodes[i].next = t.freepos
				t.freepos = i
				t.freenum++
				t.produced--
				freed++
			} else {
				t.nodes[i].next = chain
				chain = i
			}
			i = next
		}
		t.unique[b] = chain
	}
	return freed
}

// shrink reclaims memory by truncating trailing free slots. It never
// renumbers a live node: an Edge is a bare node index with no manager-side
// indirection (§9), so every live node's index must stay fixed for as long
// as any edge -- stored in another node, a root handle, the posLiteral
// cache, or the GC protected-edge stack -- might still reference it.
// Fragmented garbage below the high-water mark is left in place; only a
// contiguous free run at the tail can be dropped safely.
func (t *classicTable) shrink() {
	last := len(t.nodes)
	for last > 0 && t.nodes[last-1].free {
		last--
	}
	if last >= len(t.nodes) {
		return
	}
	target := primeGte(last)
	if target >= len(t.nodes) {
		return
	}
	t.truncate(target)
}

func (t *classicTable) rehash(loadLimit float64) bool {
	if len(t.nodes) == 0 {
		t.growTo(primeGte(t.cfg.nodesize))
		return true
	}
	load := float64(t.produced) / float64(len(t.nodes))
	if load < loadLimit && t.freenum > 0 {
		return false
	}
	t.growTo(primeGte(len(t.nodes) * 2))
	return true
}

// growTo extends the node array to size, appending fresh free slots after
// the existing ones, and rebuilds the bucket/hash-chain array (whose
// layout depends on the bucket count) to span the larger table. Like
// truncate, it never changes an existing node's index -- only the number
// of buckets its hash resolves into changes.
func (t *classicTable) growTo(size int) {
	if size <= len(t.nodes) {
		return
	}
	old := t.nodes
	t.nodes = make([]classicNode, size)
	copy(t.nodes, old)
	for i := len(old); i < size; i++ {
		t.nodes[i] = classicNode{free: true}
	}
	t.relinkBuckets()
}

// truncate drops every index >= size, which the caller (shrink) guarantees
// are all free, and rebuilds the bucket/hash-chain array to match.
func (t *classicTable) truncate(size int) {
	t.nodes = t.nodes[:size]
	t.relinkBuckets()
}

// relinkBuckets rebuilds t.unique and every node's free-list/hash-chain
// links from scratch over the current t.nodes, without touching any
// node's level/low/high/refcou -- the fields an external Edge's meaning
// depends on.
func (t *classicTable) relinkBuckets() {
	size := len(t.nodes)
	t.unique = make([]int, size)
	for i := range t.unique {
		t.unique[i] = -1
	}
	t.freepos = -1
	t.freenum = 0
	t.produced = 0
	for i := size - 1; i >= 0; i-- {
		n := &t.nodes[i]
		if n.free {
			n.next = t.freepos
			t.freepos = i
			t.freenum++
			continue
		}
		t.produced++
		b := t.bucket(n.level, n.low, n.high)
		n.hash = b
		n.next = t.unique[b]
		t.unique[b] = i
	}
}

func (t *classicTable) nodeCount() int     { return t.produced }
func (t *classicTable) capacity() int      { return len(t.nodes) }
func (t *classicTable) usedMemory() uint64 { return uint64(len(t.nodes)) * classicNodeSize }

const classicNodeSize = 40 // level+low+high+refcou+hash+next+bookkeeping, approximate

// tripleHash combines three ints into a single hash value.
func tripleHash(a, b, c int) int {
	h := (a*31 + b) * 31
	h = (h + c) * 31
	if h < 0 {
		h = -h
	}
	return h
}

// pairHash combines two ints into a single hash key.
func pairHash(a, b int) int {
	h := a*31 + b
	if h < 0 {
		h = -h
	}
	return h
}
