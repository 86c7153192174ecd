// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "testing"

func TestAndOrDeMorgan(t *testing.T) {
	m := newTestManager(t, "classic", 2)
	x0, _ := m.Literal(0, true)
	x1, _ := m.Literal(1, true)
	lhs := Negate(m.Or(x0, x1))
	rhs := m.And(Negate(x0), Negate(x1))
	if lhs != rhs {
		t.Errorf("De Morgan: !(x0|x1) != !x0 & !x1")
	}
}

func TestXorSelfIsZero(t *testing.T) {
	m := newTestManager(t, "classic", 1)
	x0, _ := m.Literal(0, true)
	if got := m.Xor(x0, x0); got != eZero {
		t.Errorf("Xor(x,x) = %v, want Zero", got)
	}
}

func TestIteEqualsOrAndForm(t *testing.T) {
	m := newTestManager(t, "classic", 3)
	x0, _ := m.Literal(0, true)
	x1, _ := m.Literal(1, true)
	x2, _ := m.Literal(2, true)
	ite := m.Ite(x0, x1, x2)
	expanded := m.Or(m.And(x0, x1), m.And(Negate(x0), x2))
	if ite != expanded {
		t.Errorf("Ite(x0,x1,x2) != (x0&x1)|(!x0&x2)")
	}
}

func TestNotIsConstantTimeInvolution(t *testing.T) {
	m := newTestManager(t, "classic", 1)
	x0, _ := m.Literal(0, true)
	if m.Not(m.Not(x0)) != x0 {
		t.Errorf("Not(Not(x0)) != x0")
	}
}

func TestCofactor(t *testing.T) {
	m := newTestManager(t, "classic", 2)
	x0, _ := m.Literal(0, true)
	x1, _ := m.Literal(1, true)
	f := m.And(x0, x1)
	f0, err := m.Cofactor(f, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	if f0 != eZero {
		t.Errorf("(x0&x1)|_{x0=0} = %v, want Zero", f0)
	}
	f1, err := m.Cofactor(f, 0, true)
	if err != nil {
		t.Fatal(err)
	}
	if f1 != x1 {
		t.Errorf("(x0&x1)|_{x0=1} = %v, want x1", f1)
	}
}

func TestExistForallDuality(t *testing.T) {
	m := newTestManager(t, "classic", 2)
	x0, _ := m.Literal(0, true)
	x1, _ := m.Literal(1, true)
	f := m.And(x0, x1)
	cube := m.SupportCube(x0)
	got := m.Forall(f, cube)
	want := Negate(m.Exist(Negate(f), cube))
	if got != want {
		t.Errorf("Forall does not match negate(Exist(negate f)) definition")
	}
	// forall x0. (x0 & x1) == 0 since x1 alone does not hold for x0=0
	if got != eZero {
		t.Errorf("Forall(x0&x1, {x0}) = %v, want Zero", got)
	}
}

func TestAndExistMatchesExistOfAnd(t *testing.T) {
	m := newTestManager(t, "classic", 3)
	x0, _ := m.Literal(0, true)
	x1, _ := m.Literal(1, true)
	x2, _ := m.Literal(2, true)
	cube := m.SupportCube(x1)
	got := m.AndExist(x0, m.Or(x1, x2), cube)
	want := m.Exist(m.And(x0, m.Or(x1, x2)), cube)
	if got != want {
		t.Errorf("AndExist(f,g,cube) != Exist(And(f,g),cube)")
	}
}

func TestShannonDecompTerminal(t *testing.T) {
	m := newTestManager(t, "classic", 1)
	_, _, _, ok := m.ShannonDecomp(eOne)
	if ok {
		t.Errorf("ShannonDecomp(One) should report ok=false")
	}
}

func TestSCCSmallestCube(t *testing.T) {
	m := newTestManager(t, "classic", 2)
	x0, _ := m.Literal(0, true)
	x1, _ := m.Literal(1, true)
	f := m.Or(m.And(x0, x1), x0)
	scc, err := m.SCC(f)
	if err != nil {
		t.Fatal(err)
	}
	if scc != x0 {
		t.Errorf("SCC((x0&x1)|x0) = %v, want x0", scc)
	}
}

// TestManagerMismatchYieldsError exercises §7's ManagerMismatch error
// kind: an edge produced by one manager, fed into an operator on a
// different, much smaller manager, is absorbed as Error rather than
// silently misinterpreted as one of the second manager's own nodes.
func TestManagerMismatchYieldsError(t *testing.T) {
	m1 := newTestManager(t, "modern", 2)
	x0, _ := m1.Literal(0, true)
	x1, _ := m1.Literal(1, true)
	f := m1.And(x0, x1) // an internal node, owned by m1's table

	m2, err := New("modern", "", "") // a fresh manager with no nodes at all
	if err != nil {
		t.Fatal(err)
	}

	if got := m2.And(f, eOne); !got.IsError() {
		t.Errorf("And(edge-from-other-manager, One) = %v, want Error", got)
	}
	if got := m2.Ite(f, eOne, eZero); !got.IsError() {
		t.Errorf("Ite(edge-from-other-manager, ...) = %v, want Error", got)
	}
}

func TestComposeSubstitutesAtomically(t *testing.T) {
	m := newTestManager(t, "classic", 3)
	x0, _ := m.Literal(0, true)
	x1, _ := m.Literal(1, true)
	x2, _ := m.Literal(2, true)
	f := m.Xor(x0, x1)
	s := m.ComposeStart()
	if err := s.ComposeReg(0, x1); err != nil {
		t.Fatal(err)
	}
	if err := s.ComposeReg(1, x2); err != nil {
		t.Fatal(err)
	}
	got := s.Compose(f)
	want := m.Xor(x1, x2)
	if got != want {
		t.Errorf("Compose({x0:=x1,x1:=x2})(x0^x1) != x1^x2, atomic substitution was not respected")
	}
}

func TestSCCSupercubeOfBothBranches(t *testing.T) {
	m := newTestManager(t, "classic", 3)
	x0, _ := m.Literal(0, true)
	x1, _ := m.Literal(1, true)
	x2, _ := m.Literal(2, true)

	// f = x1 & (x0 | x2): the cofactors on x0 are x1&x2 and x1, so the
	// smallest containing cube keeps only the shared literal x1.
	f := m.And(x1, m.Or(x0, x2))
	scc, err := m.SCC(f)
	if err != nil {
		t.Fatal(err)
	}
	if scc != x1 {
		t.Errorf("SCC(x1&(x0|x2)) = %v, want x1", scc)
	}

	// f = x0 | x1 has no containing cube smaller than 1.
	g := m.Or(x0, x1)
	scc, err = m.SCC(g)
	if err != nil {
		t.Fatal(err)
	}
	if !scc.IsOne() {
		t.Errorf("SCC(x0|x1) = %v, want One", scc)
	}
}
