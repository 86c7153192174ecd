// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dalzilio/robdd/expr"
)

// ISOP, PrimeCover and MinimalSupport implement the three "bracketed
// cover" operations of §4.6: each takes an interval [lower,upper] with
// lower <= upper (as Boolean functions, i.e. And(lower,upper)==lower).
// ISOP and PrimeCover return a BDD f within that interval together
// with a sum-of-products expr.Expr covering f exactly; MinimalSupport
// returns only a BDD.
//
// The recursion follows the Shannon-decomposition shape any
// interval-ISOP algorithm must take (cofactor on the top variable,
// recurse on each branch, merge via Ite); the raw cover it produces is
// then made irredundant by irredundantCover below.

// ISOP returns a BDD f with lower <= f <= upper together with an
// irredundant sum-of-products expr.Expr that represents f exactly: no
// literal can be dropped from any cube without escaping the upper
// bound, and no cube can be removed without uncovering part of the
// lower bound.
func (m *Manager) ISOP(lower, upper Edge) (expr.Expr, Edge, error) {
	if e, stop := m.validate(lower, upper); stop {
		return expr.False(), e, nil
	}
	c, _ := m.isop(lower, upper)
	cubes := irredundantCover(m, flattenCubes(c), lower, upper)
	if len(cubes) == 0 {
		return expr.False(), eZero, nil
	}
	terms := make([]expr.Expr, len(cubes))
	f := eZero
	for i, cb := range cubes {
		terms[i] = cb.toExpr()
		f = m.Or(f, cubeEdge(m, cb))
	}
	return expr.Or(terms...), f, nil
}

func (m *Manager) isop(lower, upper Edge) (expr.Expr, Edge) {
	if upper.IsZero() || lower.IsZero() {
		return expr.False(), eZero
	}
	if lower.IsOne() {
		return expr.True(), eOne
	}
	lvlL, l0, l1 := m.children(lower)
	lvlU, u0, u1 := m.children(upper)
	top := minLevel(lvlL, lvlU)
	ll0, ll1 := split(lower, lvlL, top, l0, l1)
	uu0, uu1 := split(upper, lvlU, top, u0, u1)
	c0, f0 := m.isop(ll0, uu0)
	m.pushProtected(f0)
	c1, f1 := m.isop(ll1, uu1)
	m.popProtected(1)
	if f0 == f1 {
		return c0, f0
	}
	varid := m.vars.varid(top)
	cover := expr.Or(expr.And(expr.Not(expr.Var(varid)), c0), expr.And(expr.Var(varid), c1))
	f := m.Ite(m.posLiteral[top], f1, f0)
	return cover, f
}

// PrimeCover returns a sum of prime implicants of some f with
// lower <= f <= upper, covering f exactly. It starts from the ISOP
// cover (already an exact cover of a chosen f) and expands each cube
// one literal at a time for as long as the more general cube remains
// an implicant of f, the cube-expansion step used by two-level
// minimizers such as espresso; duplicate primes reached from different
// starting cubes are merged. Only primes that some ISOP cube expands
// into are returned: a prime of f that no ISOP cube grows into (a
// consensus term, for instance) is not in the result. This is cubic in
// the size of the ISOP cover rather than the classical consensus
// method's worst-case exponential enumeration of every prime implicant;
// see DESIGN.md.
func (m *Manager) PrimeCover(lower, upper Edge) (expr.Expr, Edge, error) {
	if e, stop := m.validate(lower, upper); stop {
		return expr.False(), e, nil
	}
	cover, f := m.isop(lower, upper)
	cubes := flattenCubes(cover)
	seen := make(map[string]bool, len(cubes))
	var primes []cube
	for _, c := range cubes {
		p := expandToPrime(m, c, f)
		sig := p.signature()
		if seen[sig] {
			continue
		}
		seen[sig] = true
		primes = append(primes, p)
	}
	if len(primes) == 0 {
		return expr.False(), eZero, nil
	}
	terms := make([]expr.Expr, len(primes))
	sum := eZero
	for i, p := range primes {
		terms[i] = p.toExpr()
		sum = m.Or(sum, cubeEdge(m, p))
	}
	return expr.Or(terms...), sum, nil
}

// lit is a single literal (varid, polarity); cube is a conjunction of
// literals, the internal form PrimeCover's expansion works over instead
// of expr.Expr directly.
type lit struct {
	varid int
	pos   bool
}

type cube []lit

// flattenCubes distributes an expr tree built the way isop builds its
// covers (nested Or/And of literals and sub-covers) into an explicit
// list of cubes.
func flattenCubes(e expr.Expr) []cube {
	switch e.Kind() {
	case expr.KindFalse:
		return nil
	case expr.KindTrue:
		return []cube{{}}
	case expr.KindVar:
		return []cube{{{varid: e.Var(), pos: true}}}
	case expr.KindNot:
		return []cube{{{varid: e.Children()[0].Var(), pos: false}}}
	case expr.KindOr:
		var out []cube
		for _, c := range e.Children() {
			out = append(out, flattenCubes(c)...)
		}
		return out
	case expr.KindAnd:
		cs := e.Children()
		acc := flattenCubes(cs[0])
		for _, child := range cs[1:] {
			acc = crossCubes(acc, flattenCubes(child))
		}
		return acc
	}
	return nil
}

func crossCubes(a, b []cube) []cube {
	out := make([]cube, 0, len(a)*len(b))
	for _, ca := range a {
		for _, cb := range b {
			if merged, ok := mergeCube(ca, cb); ok {
				out = append(out, merged)
			}
		}
	}
	return out
}

// mergeCube unions two cubes' literals, failing if they disagree on the
// polarity of some shared variable.
func mergeCube(a, b cube) (cube, bool) {
	polarity := make(map[int]bool, len(a))
	out := make(cube, 0, len(a)+len(b))
	for _, l := range a {
		polarity[l.varid] = l.pos
		out = append(out, l)
	}
	for _, l := range b {
		if pos, ok := polarity[l.varid]; ok {
			if pos != l.pos {
				return nil, false
			}
			continue
		}
		out = append(out, l)
	}
	return out, true
}

// irredundantCover rewrites a cube cover into an irredundant one with
// respect to the interval [lower, upper]: every cube is first grown
// into a prime of upper (after which no literal can be dropped without
// escaping the upper bound), duplicates reached from different starting
// cubes are merged, and finally any cube whose removal leaves the
// remaining union still covering lower is dropped.
func irredundantCover(m *Manager, cubes []cube, lower, upper Edge) []cube {
	seen := make(map[string]bool, len(cubes))
	var kept []cube
	for _, c := range cubes {
		p := expandToPrime(m, c, upper)
		sig := p.signature()
		if seen[sig] {
			continue
		}
		seen[sig] = true
		kept = append(kept, p)
	}
	for i := 0; i < len(kept); i++ {
		rest := eZero
		for j, p := range kept {
			if j != i {
				rest = m.Or(rest, cubeEdge(m, p))
			}
		}
		if m.And(lower, Negate(rest)) == eZero {
			kept = append(kept[:i], kept[i+1:]...)
			i--
		}
	}
	return kept
}

// expandToPrime generalizes c into a prime implicant of f: each literal
// is dropped, one at a time, whenever the resulting (more general) cube
// still implies f, i.e. cube AND NOT f == 0.
func expandToPrime(m *Manager, c cube, f Edge) cube {
	kept := make(cube, 0, len(c))
	for i, l := range c {
		trial := make(cube, 0, len(kept)+len(c)-i-1)
		trial = append(trial, kept...)
		trial = append(trial, c[i+1:]...)
		if m.And(cubeEdge(m, trial), Negate(f)) == eZero {
			continue // l is inessential, drop it for good
		}
		kept = append(kept, l)
	}
	return kept
}

func cubeEdge(m *Manager, c cube) Edge {
	r := eOne
	for _, l := range c {
		level := m.vars.level(l.varid)
		le := m.posLiteral[level]
		if !l.pos {
			le = Negate(le)
		}
		r = m.And(r, le)
	}
	return r
}

func (c cube) toExpr() expr.Expr {
	if len(c) == 0 {
		return expr.True()
	}
	lits := make([]expr.Expr, len(c))
	for i, l := range c {
		if l.pos {
			lits[i] = expr.Var(l.varid)
		} else {
			lits[i] = expr.Not(expr.Var(l.varid))
		}
	}
	return expr.And(lits...)
}

// signature is a canonical, order-independent key used to dedupe primes
// reached from different starting cubes.
func (c cube) signature() string {
	s := append(cube(nil), c...)
	sort.Slice(s, func(i, j int) bool { return s[i].varid < s[j].varid })
	var b strings.Builder
	for _, l := range s {
		if l.pos {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
		}
		b.WriteString(strconv.Itoa(l.varid))
		b.WriteByte(',')
	}
	return b.String()
}

// MinimalSupport returns a BDD whose 1-paths enumerate the minimal
// variable subsets sufficient to express some function f with
// lower <= f <= upper. Each returned cube lists one such minimal
// subset; a variable is forced into every cube only when no common
// function without it can satisfy both branches simultaneously.
func (m *Manager) MinimalSupport(lower, upper Edge) (Edge, error) {
	if upper.IsZero() {
		return eError, wrapf(ErrBadArgument, "minimal_support requires a non-empty interval")
	}
	return m.minimalSupport(lower, upper), nil
}

func (m *Manager) minimalSupport(lower, upper Edge) Edge {
	if lower.IsZero() || lower.IsOne() {
		// A constant function fits the interval, so the empty variable
		// set suffices: the single cube 1.
		return eOne
	}
	lvlL, l0, l1 := m.children(lower)
	lvlU, u0, u1 := m.children(upper)
	top := minLevel(lvlL, lvlU)
	ll0, ll1 := split(lower, lvlL, top, l0, l1)
	uu0, uu1 := split(upper, lvlU, top, u0, u1)
	s0 := m.minimalSupport(ll0, uu0)
	m.pushProtected(s0)
	s1 := m.minimalSupport(ll1, uu1)
	m.pushProtected(s1)
	// compatible iff some single g satisfies both branch intervals at
	// once: max(ll0,ll1) <= min(uu0,uu1), i.e. (ll0 or ll1) and not
	// (uu0 and uu1) is empty.
	compatible := m.And(m.Or(ll0, ll1), Negate(m.And(uu0, uu1))) == eZero
	if compatible {
		m.popProtected(2)
		return m.Or(s0, s1)
	}
	m.popProtected(2)
	lit := m.posLiteral[top]
	return m.And(lit, m.Or(s0, s1))
}
