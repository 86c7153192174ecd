// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// children returns the level and (polarity-adjusted) child edges of e.
// Leaf edges report maxLevel so that min(level(f), level(g)) picks the
// correct top variable during Shannon recursion (§4.6 step 4) even when
// one operand is a constant. The canonical-polarity rule (§3) keeps a
// stored node's low edge uncomplemented; e's own complement bit is
// pushed onto both children here so callers never have to special-case
// it again.
func (m *Manager) children(e Edge) (level int32, e0, e1 Edge) {
	if e.IsLeaf() {
		return maxLevel, e, e
	}
	n := e.node()
	level = m.table.level(n)
	e0 = m.table.low(n)
	e1 = m.table.high(n)
	if e.polarity() {
		e0 = Negate(e0)
		e1 = Negate(e1)
	}
	return
}

// split returns (e0, e1) if e's level equals top, otherwise (e, e): the
// "replace with f itself if x is not a support variable" step of §4.6.
func split(e Edge, level, top int32, e0, e1 Edge) (Edge, Edge) {
	if level == top {
		return e0, e1
	}
	return e, e
}

func minLevel(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func boolEdge(b bool) Edge {
	if b {
		return eOne
	}
	return eZero
}

// Not negates e. Thanks to the output-complement bit this is O(1), never
// a recursive traversal.
func (m *Manager) Not(e Edge) Edge { return Negate(e) }

// apply is the generic Shannon-recursion engine shared by every binary
// operator named in §4.6 except Or, which is special-cased below to
// honor the explicit "Or is implemented as negate(And(negate,negate))"
// design requirement (grounded on the original reference
// implementation's or_op = ~and_op(~e1,~e2)).
func (m *Manager) apply(op Operator, f, g Edge) Edge {
	if e, stop := m.validate(f, g); stop {
		return e
	}
	if r, ok := applyShortcut(op, f, g); ok {
		return r
	}
	a, b := f, g
	if op == OPand || op == OPxor {
		a, b = canon2(f, g)
	}
	key := cacheKey{tag: tagApply, a: a, b: b, extra: int32(op)}
	if r, _, ok := m.opcache.lookup(key); ok {
		return r
	}
	// Pin the operands for the duration of the recursion: f or g may be a
	// fresh, not-yet-rooted result the caller is feeding straight into this
	// operator, and a GC triggered by a nested call must not sweep it.
	m.pushProtected(f)
	m.pushProtected(g)
	lvlF, f0, f1 := m.children(f)
	lvlG, g0, g1 := m.children(g)
	top := minLevel(lvlF, lvlG)
	ff0, ff1 := split(f, lvlF, top, f0, f1)
	gg0, gg1 := split(g, lvlG, top, g0, g1)
	r0 := m.apply(op, ff0, gg0)
	m.pushProtected(r0)
	r1 := m.apply(op, ff1, gg1)
	m.pushProtected(r1)
	r := lookupOrInsert(m.table, top, r0, r1)
	m.popProtected(4)
	m.opcache.store(key, r, 0)
	// r is not yet reachable from any root or from the cache (soft, per
	// §4.5), so it must stay pinned across autoMaybeGC's potential sweep
	// until it is back in the caller's hands.
	m.pushProtected(r)
	m.autoMaybeGC()
	m.popProtected(1)
	return r
}

// applyShortcut implements the terminal-case shortcuts of §4.6 step 1
// for any binary operator: when one operand is constant, the result is
// either a constant, the other operand, or its negation, read directly
// off the truth table.
func applyShortcut(op Operator, f, g Edge) (Edge, bool) {
	if f.IsConst() && g.IsConst() {
		fv, gv := constBit(f), constBit(g)
		return boolEdge(opres[op][fv][gv] == 1), true
	}
	if f.IsConst() {
		fv := constBit(f)
		r0, r1 := opres[op][fv][0], opres[op][fv][1]
		return constShortcut(r0, r1, g)
	}
	if g.IsConst() {
		gv := constBit(g)
		r0, r1 := opres[op][0][gv], opres[op][1][gv]
		return constShortcut(r0, r1, f)
	}
	return 0, false
}

func constBit(e Edge) int {
	if e == eOne {
		return 1
	}
	return 0
}

func constShortcut(r0, r1 int, other Edge) (Edge, bool) {
	switch {
	case r0 == r1:
		return boolEdge(r0 == 1), true
	case r0 == 0 && r1 == 1:
		return other, true
	default: // r0==1, r1==0
		return Negate(other), true
	}
}

// And returns f AND g.
func (m *Manager) And(f, g Edge) Edge { return m.apply(OPand, f, g) }

// Or returns f OR g, computed as negate(And(negate f, negate g)) per the
// external interface's explicit design requirement: the complement-bit
// edge representation means Or needs no recursive implementation of its
// own.
func (m *Manager) Or(f, g Edge) Edge { return Negate(m.And(Negate(f), Negate(g))) }

// Xor returns f XOR g.
func (m *Manager) Xor(f, g Edge) Edge { return m.apply(OPxor, f, g) }

// Nand, Nor, Imp, Biimp, Diff, Less and InvImp round out the operator
// set of §4.6/§6.
func (m *Manager) Nand(f, g Edge) Edge   { return Negate(m.And(f, g)) }
func (m *Manager) Nor(f, g Edge) Edge    { return Negate(m.Or(f, g)) }
func (m *Manager) Imp(f, g Edge) Edge    { return m.apply(OPimp, f, g) }
func (m *Manager) Biimp(f, g Edge) Edge  { return m.apply(OPbiimp, f, g) }
func (m *Manager) Diff(f, g Edge) Edge   { return m.apply(OPdiff, f, g) }
func (m *Manager) Less(f, g Edge) Edge   { return m.apply(OPless, f, g) }
func (m *Manager) InvImp(f, g Edge) Edge { return m.apply(OPinvimp, f, g) }

// Apply dispatches op generically, covering the whole public operator
// set of §4.6 through a single entry point.
func (m *Manager) Apply(op Operator, f, g Edge) Edge {
	if op == OPor {
		return m.Or(f, g)
	}
	return m.apply(op, f, g)
}

// Ite computes if-then-else(f, g, h): f ? g : h.
func (m *Manager) Ite(f, g, h Edge) Edge {
	if e, stop := m.validate(f, g, h); stop {
		return e
	}
	switch {
	case f.IsOne():
		return g
	case f.IsZero():
		return h
	case g == h:
		return g
	case g.IsOne() && h.IsZero():
		return f
	case g.IsZero() && h.IsOne():
		return Negate(f)
	}
	key := cacheKey{tag: tagIte, a: f, b: g, c: h}
	if r, _, ok := m.opcache.lookup(key); ok {
		return r
	}
	// Same operand pinning as apply: any of f, g, h may be an unrooted
	// intermediate result from the caller's own recursion.
	m.pushProtected(f)
	m.pushProtected(g)
	m.pushProtected(h)
	lvlF, f0, f1 := m.children(f)
	lvlG, g0, g1 := m.children(g)
	lvlH, h0, h1 := m.children(h)
	top := minLevel(minLevel(lvlF, lvlG), lvlH)
	ff0, ff1 := split(f, lvlF, top, f0, f1)
	gg0, gg1 := split(g, lvlG, top, g0, g1)
	hh0, hh1 := split(h, lvlH, top, h0, h1)
	r0 := m.Ite(ff0, gg0, hh0)
	m.pushProtected(r0)
	r1 := m.Ite(ff1, gg1, hh1)
	m.pushProtected(r1)
	r := lookupOrInsert(m.table, top, r0, r1)
	m.popProtected(5)
	m.opcache.store(key, r, 0)
	// r is not yet reachable from any root or from the cache (soft, per
	// §4.5), so it must stay pinned across autoMaybeGC's potential sweep
	// until it is back in the caller's hands.
	m.pushProtected(r)
	m.autoMaybeGC()
	m.popProtected(1)
	return r
}

// cofactor substitutes the constant value for the variable at level,
// leaving f unchanged if it does not appear in f's support at or below
// the current recursion point.
func (m *Manager) cofactor(f Edge, level int32, value bool) Edge {
	if f.IsLeaf() {
		return f
	}
	lvl, e0, e1 := m.children(f)
	if lvl > level {
		return f
	}
	if lvl == level {
		if value {
			return e1
		}
		return e0
	}
	key := cacheKey{tag: tagCofactor, a: f, extra: level, c: boolEdge(value)}
	if r, _, ok := m.opcache.lookup(key); ok {
		return r
	}
	r0 := m.cofactor(e0, level, value)
	r1 := m.cofactor(e1, level, value)
	r := lookupOrInsert(m.table, lvl, r0, r1)
	m.opcache.store(key, r, 0)
	return r
}

// Cofactor substitutes polarity for varid in f (f|_{varid=polarity}).
func (m *Manager) Cofactor(f Edge, varid int, polarity bool) (Edge, error) {
	if e, stop := m.validate(f); stop {
		return e, nil
	}
	level, err := m.Level(varid)
	if err != nil {
		return eError, err
	}
	return m.cofactor(f, level, polarity), nil
}

// Constrain implements the generalized cofactor f/c (also known as
// "restrict"): requires c != 0; f/1 = f. When c(x) = 0 for every
// extension of some partial assignment, the result takes the nearest
// defined value by following whichever branch of c is non-zero.
func (m *Manager) Constrain(f, c Edge) (Edge, error) {
	if c.IsZero() {
		return eError, wrapf(ErrBadArgument, "constrain requires a non-zero care-set")
	}
	return m.constrain(f, c), nil
}

func (m *Manager) constrain(f, c Edge) Edge {
	if c.IsOne() || f.IsConst() {
		return f
	}
	if e, stop := m.validate(f, c); stop {
		return e
	}
	key := cacheKey{tag: tagConstrain, a: f, b: c}
	if r, _, ok := m.opcache.lookup(key); ok {
		return r
	}
	lvlF, f0, f1 := m.children(f)
	lvlC, c0, c1 := m.children(c)
	top := minLevel(lvlF, lvlC)
	ff0, ff1 := split(f, lvlF, top, f0, f1)
	cc0, cc1 := split(c, lvlC, top, c0, c1)
	var r Edge
	switch {
	case cc0.IsZero() && !cc1.IsZero():
		r = m.constrain(ff1, cc1)
	case cc1.IsZero() && !cc0.IsZero():
		r = m.constrain(ff0, cc0)
	default:
		r0 := m.constrain(ff0, cc0)
		r1 := m.constrain(ff1, cc1)
		r = lookupOrInsert(m.table, top, r0, r1)
	}
	m.opcache.store(key, r, 0)
	return r
}

// Exist computes the existential quantification of f over the variable
// set named by cube (a BDD cube: a conjunction of positive literals,
// i.e. every internal node's 0-edge is Zero).
func (m *Manager) Exist(f, cube Edge) Edge {
	if e, stop := m.validate(f, cube); stop {
		return e
	}
	if cube.IsOne() || f.IsConst() {
		return f
	}
	key := cacheKey{tag: tagExist, a: f, b: cube}
	if r, _, ok := m.opcache.lookup(key); ok {
		return r
	}
	lvlF, f0, f1 := m.children(f)
	lvlC, _, c1 := m.children(cube)
	var r Edge
	switch {
	case lvlC < lvlF:
		r = m.Exist(f, c1)
	case lvlC > lvlF:
		r0 := m.Exist(f0, cube)
		m.pushProtected(r0)
		r1 := m.Exist(f1, cube)
		m.popProtected(1)
		r = lookupOrInsert(m.table, lvlF, r0, r1)
	default:
		r0 := m.Exist(f0, c1)
		m.pushProtected(r0)
		r1 := m.Exist(f1, c1)
		m.popProtected(1)
		r = m.Or(r0, r1)
	}
	m.opcache.store(key, r, 0)
	return r
}

// Forall computes the universal quantification of f over cube, the dual
// of Exist: negate(Exist(negate f, cube)).
func (m *Manager) Forall(f, cube Edge) Edge {
	return Negate(m.Exist(Negate(f), cube))
}

// AndExist computes Exist(And(f, g), cube) in a single recursive pass,
// avoiding the intermediate And result when it would be larger than
// necessary.
func (m *Manager) AndExist(f, g, cube Edge) Edge {
	if e, stop := m.validate(f, g, cube); stop {
		return e
	}
	if f.IsZero() || g.IsZero() {
		return eZero
	}
	if cube.IsOne() {
		return m.And(f, g)
	}
	if f.IsOne() {
		return m.Exist(g, cube)
	}
	if g.IsOne() {
		return m.Exist(f, cube)
	}
	if f == g {
		return m.Exist(f, cube)
	}
	a, b := canon2(f, g)
	key := cacheKey{tag: tagAppEx, a: a, b: b, c: cube}
	if r, _, ok := m.opcache.lookup(key); ok {
		return r
	}
	lvlF, f0, f1 := m.children(f)
	lvlG, g0, g1 := m.children(g)
	top := minLevel(lvlF, lvlG)
	ff0, ff1 := split(f, lvlF, top, f0, f1)
	gg0, gg1 := split(g, lvlG, top, g0, g1)
	lvlC, _, c1 := m.children(cube)
	var r Edge
	switch {
	case lvlC < top:
		r = m.AndExist(f, g, c1)
	case lvlC == top:
		r0 := m.AndExist(ff0, gg0, c1)
		m.pushProtected(r0)
		r1 := m.AndExist(ff1, gg1, c1)
		m.popProtected(1)
		r = m.Or(r0, r1)
	default:
		r0 := m.AndExist(ff0, gg0, cube)
		m.pushProtected(r0)
		r1 := m.AndExist(ff1, gg1, cube)
		m.popProtected(1)
		r = lookupOrInsert(m.table, top, r0, r1)
	}
	m.opcache.store(key, r, 0)
	return r
}

// XorMoment returns the Boolean derivative df/dx = f|_{x=0} XOR f|_{x=1}.
func (m *Manager) XorMoment(f Edge, varid int) (Edge, error) {
	level, err := m.Level(varid)
	if err != nil {
		return eError, err
	}
	f0 := m.cofactor(f, level, false)
	f1 := m.cofactor(f, level, true)
	return m.Xor(f0, f1), nil
}

// ShannonDecomp returns the top variable of f and its two cofactors. ok
// is false on a terminal edge (the "no variable" sentinel case).
func (m *Manager) ShannonDecomp(f Edge) (varid int, f0, f1 Edge, ok bool) {
	if f.IsLeaf() {
		return -1, f, f, false
	}
	lvl, e0, e1 := m.children(f)
	return m.vars.varid(lvl), e0, e1, true
}

// PushDown moves the variable currently at xLevel so that it instead
// sits at yLevel in the result, optionally flipping the 0/1 children
// (pol) along the way. It fails (returns the Error edge) when
// xLevel >= yLevel.
func (m *Manager) PushDown(f Edge, xLevel, yLevel int32, pol bool) Edge {
	if xLevel >= yLevel {
		return eError
	}
	g0 := m.cofactor(f, xLevel, false)
	g1 := m.cofactor(f, xLevel, true)
	if pol {
		g0, g1 = g1, g0
	}
	return m.insertAtLevel(g0, g1, yLevel)
}

// insertAtLevel rebuilds a node selecting between g0 and g1 on the
// variable registered at level, recursing over any variables g0/g1
// still mention at levels below level so the result stays ordered.
func (m *Manager) insertAtLevel(g0, g1 Edge, level int32) Edge {
	lvl0 := m.levelOf(g0)
	lvl1 := m.levelOf(g1)
	top := minLevel(lvl0, lvl1)
	if top >= level {
		return lookupOrInsert(m.table, level, g0, g1)
	}
	_, a0, a1 := m.children(g0)
	_, b0, b1 := m.children(g1)
	aa0, aa1 := split(g0, lvl0, top, a0, a1)
	bb0, bb1 := split(g1, lvl1, top, b0, b1)
	r0 := m.insertAtLevel(aa0, bb0, level)
	r1 := m.insertAtLevel(aa1, bb1, level)
	return lookupOrInsert(m.table, top, r0, r1)
}

// SCC returns the smallest cube containing f (the intersection of every
// cube that subsumes f); defined only for f != 0.
func (m *Manager) SCC(f Edge) (Edge, error) {
	if f.IsZero() {
		return eError, wrapf(ErrBadArgument, "SCC is undefined for the zero function")
	}
	return m.scc(f), nil
}

func (m *Manager) scc(f Edge) Edge {
	if f.IsOne() {
		return eOne
	}
	if r, _, ok := m.opcache.lookup(cacheKey{tag: tagSCC, a: f}); ok {
		return r
	}
	lvl, f0, f1 := m.children(f)
	varid := m.vars.varid(lvl)
	var r Edge
	switch {
	case f0.IsZero():
		lit, _ := m.Literal(varid, true)
		r = m.And(lit, m.scc(f1))
	case f1.IsZero():
		lit, _ := m.Literal(varid, false)
		r = m.And(lit, m.scc(f0))
	default:
		// Both cofactors are non-empty, so the top variable cannot appear
		// in the cube; the cube must contain both branches, i.e. it is the
		// supercube of the two branch cubes.
		s0 := m.scc(f0)
		m.pushProtected(s0)
		s1 := m.scc(f1)
		m.popProtected(1)
		r = m.superCube(s0, s1)
	}
	m.opcache.store(cacheKey{tag: tagSCC, a: f}, r, 0)
	return r
}

// cubeStep splits a non-constant cube node into its literal polarity and
// the remaining tail cube (the single non-zero branch).
func (m *Manager) cubeStep(c Edge) (pos bool, tail Edge) {
	_, c0, c1 := m.children(c)
	if c0.IsZero() {
		return true, c1
	}
	return false, c0
}

// superCube returns the smallest cube containing both cubes a and b:
// only the literals present in both, with equal polarity, survive.
func (m *Manager) superCube(a, b Edge) Edge {
	if a.IsOne() || b.IsOne() {
		return eOne
	}
	la := m.levelOf(a)
	lb := m.levelOf(b)
	switch {
	case la < lb:
		_, tail := m.cubeStep(a)
		return m.superCube(tail, b)
	case lb < la:
		_, tail := m.cubeStep(b)
		return m.superCube(a, tail)
	}
	pa, ta := m.cubeStep(a)
	pb, tb := m.cubeStep(b)
	rest := m.superCube(ta, tb)
	if pa != pb {
		return rest
	}
	if pa {
		return lookupOrInsert(m.table, la, eZero, rest)
	}
	return lookupOrInsert(m.table, la, rest, eZero)
}
