// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "github.com/dalzilio/robdd/expr"

// ExprToBDD translates a logic expression (package expr) into an edge
// in m, substituting each variable reference for its registered
// literal. It fails if e references a variable that was never
// registered with NewVar.
func (m *Manager) ExprToBDD(e expr.Expr) (Edge, error) {
	return m.ExprToBDDSubst(e, nil)
}

// ExprToBDDSubst translates e with a variable-to-BDD substitution map:
// a variable found in subst is replaced by the mapped edge instead of
// its own literal. A variable-to-variable remapping is the special case
// where every mapped edge is itself a literal. Variables absent from
// subst fall back to their registered literal, so a nil map makes this
// identical to ExprToBDD.
func (m *Manager) ExprToBDDSubst(e expr.Expr, subst map[int]Edge) (Edge, error) {
	switch e.Kind() {
	case expr.KindFalse:
		return eZero, nil
	case expr.KindTrue:
		return eOne, nil
	case expr.KindVar:
		if g, ok := subst[e.Var()]; ok {
			if _, stop := m.validate(g); stop {
				return eError, wrapf(ErrBadArgument, "substitution for variable %d is not an edge of this manager", e.Var())
			}
			return g, nil
		}
		return m.Literal(e.Var(), true)
	case expr.KindNot:
		f, err := m.ExprToBDDSubst(e.Children()[0], subst)
		if err != nil {
			return eError, err
		}
		return Negate(f), nil
	case expr.KindAnd:
		return m.exprFold(e.Children(), subst, m.And, eOne)
	case expr.KindOr:
		return m.exprFold(e.Children(), subst, m.Or, eZero)
	}
	return eError, wrapf(ErrBadArgument, "unrecognized expression kind")
}

func (m *Manager) exprFold(cs []expr.Expr, subst map[int]Edge, op func(a, b Edge) Edge, identity Edge) (Edge, error) {
	r := identity
	for _, c := range cs {
		f, err := m.ExprToBDDSubst(c, subst)
		if err != nil {
			return eError, err
		}
		r = op(r, f)
	}
	return r, nil
}

// Thfunc builds the threshold function of the first n registered
// variables (in level order): the BDD that is 1 exactly when at least
// th of them are 1. It is built bottom-up by dynamic programming over
// (remaining variable count, remaining threshold) rather than naive
// Shannon recursion from the top, since the function has at most
// n-th+1 distinct non-constant cofactors at each level and a direct count-based
// construction shares them without ever invoking the operation cache.
func (m *Manager) Thfunc(n int, th int) (Edge, error) {
	if n < 0 || th < 0 || n > m.vars.count() {
		return eError, wrapf(ErrBadArgument, "thfunc(%d,%d): invalid arguments", n, th)
	}
	if th > n {
		return eZero, nil
	}
	if th <= 0 {
		return eOne, nil
	}
	// memo[k][t] is the threshold-t function over the last k variables
	// (closest to the leaves), built leaf-up so each level's node reuses
	// both children already computed for level k-1.
	memo := make([][]Edge, n+1)
	for k := range memo {
		memo[k] = make([]Edge, th+2)
	}
	for t := 0; t <= th+1; t++ {
		memo[0][t] = boolEdge(t <= 0)
	}
	for k := 1; k <= n; k++ {
		level := int32(n - k)
		for t := 0; t <= th; t++ {
			lo := memo[k-1][min(t, th+1)]
			var hi Edge
			if t == 0 {
				hi = eOne
			} else {
				hi = memo[k-1][min(t-1, th+1)]
			}
			memo[k][t] = lookupOrInsert(m.table, level, lo, hi)
		}
		memo[k][th+1] = eOne
	}
	return memo[n][th], nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// TableFromTruthVector builds a BDD from an explicit truth table. vars
// lists the ordered variable identifiers from the top of the diagram
// down (len(vars) == k); vector must hold exactly 2^k entries, index i
// giving the output for the assignment whose bit j (from the most
// significant bit down) is vars[j].
func (m *Manager) TableFromTruthVector(vars []int, vector []bool) (Edge, error) {
	k := len(vars)
	if len(vector) != 1<<uint(k) {
		return eError, wrapf(ErrBadArgument, "truth vector length %d does not match 2^%d", len(vector), k)
	}
	levels := make([]int32, k)
	for i, v := range vars {
		level, err := m.Level(v)
		if err != nil {
			return eError, err
		}
		levels[i] = level
	}
	var build func(depth int, base int) Edge
	build = func(depth int, base int) Edge {
		if depth == k {
			return boolEdge(vector[base])
		}
		span := 1 << uint(k-depth-1)
		e0 := build(depth+1, base)
		e1 := build(depth+1, base+span)
		return lookupOrInsert(m.table, levels[depth], e0, e1)
	}
	return build(0, 0), nil
}
