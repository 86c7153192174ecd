// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "testing"

func TestISOPBracketing(t *testing.T) {
	m := newTestManager(t, "classic", 2)
	x0, _ := m.Literal(0, true)
	x1, _ := m.Literal(1, true)
	lower := m.And(x0, x1)
	upper := m.Or(x0, x1)
	_, f, err := m.ISOP(lower, upper)
	if err != nil {
		t.Fatal(err)
	}
	// lower <= f <= upper, i.e. (lower & !f) == 0 and (f & !upper) == 0
	if m.And(lower, Negate(f)) != eZero {
		t.Errorf("ISOP result does not dominate lower bound")
	}
	if m.And(f, Negate(upper)) != eZero {
		t.Errorf("ISOP result exceeds upper bound")
	}
}

func TestISOPExactFunction(t *testing.T) {
	m := newTestManager(t, "classic", 2)
	x0, _ := m.Literal(0, true)
	x1, _ := m.Literal(1, true)
	f := m.And(x0, x1)
	// lower == upper == f pins the result to exactly f
	_, got, err := m.ISOP(f, f)
	if err != nil {
		t.Fatal(err)
	}
	if got != f {
		t.Errorf("ISOP(f,f) = %v, want %v", got, f)
	}
}

func TestMinimalSupportNonEmptyInterval(t *testing.T) {
	m := newTestManager(t, "classic", 2)
	x0, _ := m.Literal(0, true)
	_, err := m.MinimalSupport(eZero, x0)
	if err != nil {
		t.Fatal(err)
	}
	_, err = m.MinimalSupport(eZero, eZero)
	if err == nil {
		t.Errorf("MinimalSupport with an empty interval (upper=0) should fail")
	}
}

func TestISOPCoverIsIrredundant(t *testing.T) {
	m := newTestManager(t, "classic", 2)
	x0, _ := m.Literal(0, true)
	x1, _ := m.Literal(1, true)
	// With the full slack interval [x0&x1, x0|x1] a single one-literal
	// prime suffices; a redundant cover would keep both literals.
	lower := m.And(x0, x1)
	upper := m.Or(x0, x1)
	cover, f, err := m.ISOP(lower, upper)
	if err != nil {
		t.Fatal(err)
	}
	if m.And(lower, Negate(f)) != eZero || m.And(f, Negate(upper)) != eZero {
		t.Fatalf("ISOP result left the interval")
	}
	if got := len(flattenCubes(cover)); got != 1 {
		t.Errorf("irredundant cover of the slack interval has %d cubes, want 1", got)
	}
}

func TestISOPZeroLowerBound(t *testing.T) {
	m := newTestManager(t, "classic", 1)
	_, f, err := m.ISOP(eZero, eOne)
	if err != nil {
		t.Fatal(err)
	}
	if !f.IsZero() {
		t.Errorf("ISOP(0, 1) = %v, want the zero function", f)
	}
}
