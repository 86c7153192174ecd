// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "sort"

// Structural analyses each perform a single traversal with a per-call
// memo map rather than routing through the shared operation cache --
// these results are one-shot queries, not operands reused across many
// operator calls.

// NodeCount counts the distinct internal nodes reachable from the given
// roots, sharing one traversal across all of them.
func (m *Manager) NodeCount(roots ...Edge) int {
	seen := make(map[int]bool)
	var walk func(Edge)
	walk = func(e Edge) {
		if e.IsLeaf() || seen[e.node()] {
			return
		}
		seen[e.node()] = true
		walk(m.table.low(e.node()))
		walk(m.table.high(e.node()))
	}
	for _, r := range roots {
		walk(r)
	}
	return len(seen)
}

// Support returns the variable identifiers that actually appear in any
// of the given roots, sharing one traversal, ordered by level (closest
// to the roots first).
func (m *Manager) Support(roots ...Edge) []int {
	seen := make(map[int]bool)
	levels := make(map[int32]bool)
	var walk func(Edge)
	walk = func(e Edge) {
		if e.IsLeaf() || seen[e.node()] {
			return
		}
		seen[e.node()] = true
		levels[m.table.level(e.node())] = true
		walk(m.table.low(e.node()))
		walk(m.table.high(e.node()))
	}
	for _, r := range roots {
		walk(r)
	}
	sorted := make([]int32, 0, len(levels))
	for l := range levels {
		sorted = append(sorted, l)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	res := make([]int, len(sorted))
	for i, l := range sorted {
		res[i] = m.vars.varid(l)
	}
	return res
}

// SupportCube returns the support of the given roots as a BDD cube
// (a conjunction of positive literals), the "BDD-cube" alternative form
// named alongside vector/list in §4.7.
func (m *Manager) SupportCube(roots ...Edge) Edge {
	vars := m.Support(roots...)
	cube := eOne
	for i := len(vars) - 1; i >= 0; i-- {
		level := m.vars.level(vars[i])
		cube = lookupOrInsert(m.table, level, eZero, cube)
	}
	return cube
}

// OnePath returns a cube (a BDD with exactly one 1-path) representing
// one satisfying assignment of f. On f == 0 it returns the Error edge,
// the "empty sentinel" named in §4.7.
func (m *Manager) OnePath(f Edge) Edge {
	if f.IsZero() {
		return eError
	}
	if f.IsOne() {
		return eOne
	}
	lvl, f0, f1 := m.children(f)
	varid := m.vars.varid(lvl)
	if !f0.IsZero() {
		lit, _ := m.Literal(varid, false)
		return m.And(lit, m.OnePath(f0))
	}
	lit, _ := m.Literal(varid, true)
	return m.And(lit, m.OnePath(f1))
}

// ShortestOnePathLen returns the number of literals in the shortest
// satisfying cube of f.
func (m *Manager) ShortestOnePathLen(f Edge) (int, error) {
	if f.IsZero() {
		return 0, wrapf(ErrBadArgument, "no path, f is the zero function")
	}
	memo := make(map[Edge]int)
	return m.shortestLen(f, memo), nil
}

func (m *Manager) shortestLen(f Edge, memo map[Edge]int) int {
	if f.IsOne() {
		return 0
	}
	if n, ok := memo[f]; ok {
		return n
	}
	_, f0, f1 := m.children(f)
	best := -1
	if !f0.IsZero() {
		best = 1 + m.shortestLen(f0, memo)
	}
	if !f1.IsZero() {
		n := 1 + m.shortestLen(f1, memo)
		if best == -1 || n < best {
			best = n
		}
	}
	memo[f] = best
	return best
}

// ShortestOnePath returns the shortest satisfying cube of f (ties broken
// toward the 0-branch).
func (m *Manager) ShortestOnePath(f Edge) Edge {
	if f.IsZero() {
		return eError
	}
	if f.IsOne() {
		return eOne
	}
	memo := make(map[Edge]int)
	m.shortestLen(f, memo)
	var build func(Edge) Edge
	build = func(e Edge) Edge {
		if e.IsOne() {
			return eOne
		}
		lvl, e0, e1 := m.children(e)
		varid := m.vars.varid(lvl)
		len0, ok0 := -1, !e0.IsZero()
		if ok0 {
			len0 = 1 + m.shortestLen(e0, memo)
		}
		len1, ok1 := -1, !e1.IsZero()
		if ok1 {
			len1 = 1 + m.shortestLen(e1, memo)
		}
		if ok0 && (!ok1 || len0 <= len1) {
			lit, _ := m.Literal(varid, false)
			return m.And(lit, build(e0))
		}
		lit, _ := m.Literal(varid, true)
		return m.And(lit, build(e1))
	}
	return build(f)
}

// MintermCount returns the number of satisfying assignments of f over an
// n-variable universe, accounting for the "don't care" levels skipped by
// reduction -- each such level doubles the contribution of the branch it
// is skipped over.
func (m *Manager) MintermCount(f Edge, n int) *BigInt {
	memo := make(map[Edge]*BigInt)
	count := m.mintermCount(f, n, memo)
	top := m.firstLevelOrN(f, n)
	return count.Lsh(uint(top))
}

// firstLevelOrN returns f's top level, or n (one past the last variable
// of the n-variable universe under consideration) for a leaf, so that
// levelGap can treat a terminal edge uniformly with an internal one.
func (m *Manager) firstLevelOrN(f Edge, n int) int32 {
	if f.IsLeaf() {
		return int32(n)
	}
	return m.table.level(f.node())
}

func (m *Manager) mintermCount(f Edge, n int, memo map[Edge]*BigInt) *BigInt {
	if f.IsZero() {
		return NewBigInt(0)
	}
	if f.IsOne() {
		return NewBigInt(1)
	}
	if c, ok := memo[f]; ok {
		return c
	}
	lvl, f0, f1 := m.children(f)
	c0 := m.mintermCount(f0, n, memo).Lsh(uint(m.levelGap(f0, lvl, n)))
	c1 := m.mintermCount(f1, n, memo).Lsh(uint(m.levelGap(f1, lvl, n)))
	r := c0.Add(c1)
	memo[f] = r
	return r
}

// levelGap returns how many levels were skipped between parent (at
// level lvl) and child e, i.e. the number of "don't care" variables that
// reduction elided along that branch.
func (m *Manager) levelGap(e Edge, parent int32, n int) int32 {
	child := m.firstLevelOrN(e, n)
	gap := child - parent - 1
	if gap < 0 {
		gap = 0
	}
	return gap
}

// Walsh0 returns the zeroth-order Walsh spectral coefficient of f over
// an n-variable universe: 2*minterm_count(f,n) - 2^n.
func (m *Manager) Walsh0(f Edge, n int) *BigInt {
	count := m.MintermCount(f, n)
	total := NewBigInt(1).Lsh(uint(n))
	return count.Lsh(1).Sub(total)
}

// Walsh1 returns the first-order Walsh spectral coefficient of f with
// respect to varid over an n-variable universe:
// minterm_count(f|_{x=0},n-1) - minterm_count(f|_{x=1},n-1), doubled.
// Each cofactor is independent of x, so its count over all n variables
// is twice its count over the other n-1; the difference of the two
// n-variable counts is therefore that doubled value.
func (m *Manager) Walsh1(f Edge, varid int, n int) (*BigInt, error) {
	level, err := m.Level(varid)
	if err != nil {
		return nil, err
	}
	f0 := m.cofactor(f, level, false)
	f1 := m.cofactor(f, level, true)
	c0 := m.MintermCount(f0, n)
	c1 := m.MintermCount(f1, n)
	return c0.Sub(c1), nil
}

// CheckCube reports whether f is a cube (a conjunction of literals,
// i.e. a BDD with exactly one 1-path).
func (m *Manager) CheckCube(f Edge) bool {
	if f.IsOne() {
		return true
	}
	if f.IsZero() {
		return false
	}
	_, f0, f1 := m.children(f)
	switch {
	case f0.IsZero():
		return m.CheckCube(f1)
	case f1.IsZero():
		return m.CheckCube(f0)
	default:
		return false
	}
}

// CheckPosiCube reports whether f is a cube built only from positive
// literals (every internal node's 0-edge is Zero).
func (m *Manager) CheckPosiCube(f Edge) bool {
	if f.IsOne() {
		return true
	}
	if f.IsZero() {
		return false
	}
	_, f0, f1 := m.children(f)
	return f0.IsZero() && m.CheckPosiCube(f1)
}

// CheckSymmetry reports whether f is symmetric in variables x and y
// under the given polarity: swapping x and y (with the given relative
// polarity) leaves f unchanged. check_symmetry(x, x, pol) is trivially
// pol == true.
func (m *Manager) CheckSymmetry(f Edge, x, y int, pol bool) (bool, error) {
	if x == y {
		return pol, nil
	}
	lx, err := m.Level(x)
	if err != nil {
		return false, err
	}
	ly, err := m.Level(y)
	if err != nil {
		return false, err
	}
	fx0 := m.cofactor(f, lx, false)
	fx1 := m.cofactor(f, lx, true)
	// f is symmetric in (x,y,pol) iff f|_{x=0,y=1} == f|_{x=1,y=0} when
	// pol is positive (swapping x and y preserves the function value),
	// or f|_{x=0,y=0} == f|_{x=1,y=1} when pol is negative.
	if pol {
		a := m.cofactor(fx0, ly, true)
		b := m.cofactor(fx1, ly, false)
		return a == b, nil
	}
	a := m.cofactor(fx0, ly, false)
	b := m.cofactor(fx1, ly, true)
	return a == b, nil
}
