// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// opTag identifies which recursive operator a cache entry belongs to,
// a single enumeration shared by one generic cache table rather than a
// separate cache per operator.
type opTag int32

const (
	tagApply opTag = iota // Operator (And/Xor/Or/...) is folded into extra
	tagIte
	tagExist
	tagAppEx
	tagCompose
	tagCofactor
	tagConstrain
	tagSCC
)

// Structural analyses (node_count, support, onepath, minterm_count,
// walsh0/1, check_*) use their own per-call memo maps instead of this
// shared cache; those are one-shot traversals, not operands reused
// across many operator calls.

type cacheKey struct {
	tag   opTag
	a, b, c Edge
	extra int32
}

type cacheEntry struct {
	key    cacheKey
	result Edge
	aux    int64 // non-Edge payload slot; every current caller stores 0
	valid  bool
	gen    uint64
}

// opCache is the manager's bounded operation cache (§4.5). It is kept
// coherent across GC by a generation counter instead of a selective
// sweep: purge() is an O(1) bump, and every stale entry (gen mismatch)
// is treated as a miss on next lookup, exactly the alternative the
// Design Notes call out ("a generation counter bumped on each GC").
type opCache struct {
	entries      []cacheEntry
	gen          uint64
	used         int // entries occupied in the current generation
	hits, misses int
	loadLimit    float64 // rt_load_limit: occupancy that triggers resize
}

func newOpCache(size int, loadLimit float64) *opCache {
	if size < 1 {
		size = 1
	}
	return &opCache{entries: make([]cacheEntry, primeGte(size)), loadLimit: loadLimit}
}

func (c *opCache) index(k cacheKey) int {
	h := tripleHash(int(k.tag), int(k.a), int(k.b))
	h = pairHash(h, int(k.c)) + int(k.extra)
	if h < 0 {
		h = -h
	}
	return h % len(c.entries)
}

func (c *opCache) lookup(k cacheKey) (Edge, int64, bool) {
	i := c.index(k)
	e := c.entries[i]
	if e.valid && e.gen == c.gen && e.key == k {
		c.hits++
		return e.result, e.aux, true
	}
	c.misses++
	return 0, 0, false
}

func (c *opCache) store(k cacheKey, result Edge, aux int64) {
	i := c.index(k)
	if prev := c.entries[i]; !prev.valid || prev.gen != c.gen {
		c.used++
	}
	c.entries[i] = cacheEntry{key: k, result: result, aux: aux, valid: true, gen: c.gen}
	c.resize(c.loadLimit)
}

// purge invalidates the entire cache in O(1); called after every GC
// sweep since a swept node could otherwise leave a dangling
// cache entry.
func (c *opCache) purge(m *Manager) {
	c.gen++
	c.used = 0
}

// resize doubles the table once occupancy in the current generation
// crosses the rt_load_limit, the operation-cache analogue of the node
// table's nt_load_limit rehash.
func (c *opCache) resize(loadLimit float64) {
	if float64(c.used) < loadLimit*float64(len(c.entries)) {
		return
	}
	c.entries = make([]cacheEntry, primeGte(len(c.entries)*2))
	c.gen = 0
	c.used = 0
}

// canon2 orders a pair of edges by their numeric representation so that
// commutative operators (And, Xor) share one cache entry regardless of
// argument order, per §4.5/§9.
func canon2(a, b Edge) (Edge, Edge) {
	if a > b {
		return b, a
	}
	return a, b
}
