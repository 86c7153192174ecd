// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "testing"

func TestNegateInvolution(t *testing.T) {
	cases := []Edge{eZero, eOne, eError, eOverflow, internal(0, false), internal(0, true), internal(7, false)}
	for _, e := range cases {
		if got := Negate(Negate(e)); got != e {
			t.Errorf("Negate(Negate(%v)) = %v, want %v", e, got, e)
		}
	}
}

func TestNegateSwapsConstants(t *testing.T) {
	if Negate(eZero) != eOne {
		t.Errorf("Negate(Zero) = %v, want One", Negate(eZero))
	}
	if Negate(eOne) != eZero {
		t.Errorf("Negate(One) = %v, want Zero", Negate(eOne))
	}
	if Negate(eError) != eError {
		t.Errorf("Negate(Error) = %v, want Error", Negate(eError))
	}
	if Negate(eOverflow) != eOverflow {
		t.Errorf("Negate(Overflow) = %v, want Overflow", Negate(eOverflow))
	}
}

func TestInternalEdgeRoundTrip(t *testing.T) {
	e := internal(3, true)
	if e.IsLeaf() {
		t.Fatalf("internal(3,true) reports IsLeaf")
	}
	if e.node() != 3 {
		t.Errorf("node() = %d, want 3", e.node())
	}
	if !e.polarity() {
		t.Errorf("polarity() = false, want true")
	}
}

func TestAbsorb(t *testing.T) {
	if e, stop := absorb(eZero, eOne); stop {
		t.Errorf("absorb(Zero,One) stopped with %v", e)
	}
	if e, stop := absorb(eZero, eError); !stop || e != eError {
		t.Errorf("absorb(Zero,Error) = (%v,%v), want (Error,true)", e, stop)
	}
	if e, stop := absorb(eOverflow, eOne); !stop || e != eOverflow {
		t.Errorf("absorb(Overflow,One) = (%v,%v), want (Overflow,true)", e, stop)
	}
	if e, stop := absorb(eError, eOverflow); !stop || e != eError {
		t.Errorf("Error must dominate Overflow, got (%v,%v)", e, stop)
	}
}
