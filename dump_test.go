// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"bytes"
	"testing"
)

func TestDumpRestoreRoundTrip(t *testing.T) {
	m := newTestManager(t, "classic", 3)
	x0, _ := m.Literal(0, true)
	x1, _ := m.Literal(1, true)
	x2, _ := m.Literal(2, true)
	f := m.Or(m.Or(x0, x1), x2)

	var buf bytes.Buffer
	if err := m.Dump(&buf, f); err != nil {
		t.Fatal(err)
	}

	m2 := newTestManager(t, "modern", 3)
	roots, err := m2.Restore(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(roots) != 1 {
		t.Fatalf("Restore returned %d roots, want 1", len(roots))
	}
	got := m2.MintermCount(roots[0], 3)
	if got.String() != "7" {
		t.Errorf("restored function has minterm_count %s, want 7", got.String())
	}
	support := m2.Support(roots[0])
	if len(support) != 3 {
		t.Errorf("restored function support has %d variables, want 3", len(support))
	}
}

func TestDumpMultipleRoots(t *testing.T) {
	m := newTestManager(t, "classic", 2)
	x0, _ := m.Literal(0, true)
	x1, _ := m.Literal(1, true)
	f1 := m.And(x0, x1)
	f2 := m.Or(x0, x1)

	var buf bytes.Buffer
	if err := m.Dump(&buf, f1, f2); err != nil {
		t.Fatal(err)
	}

	m2 := newTestManager(t, "classic", 2)
	roots, err := m2.Restore(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(roots) != 2 {
		t.Fatalf("Restore returned %d roots, want 2", len(roots))
	}
	if m2.MintermCount(roots[0], 2).String() != "1" {
		t.Errorf("first restored root should be x0&x1 (1 minterm)")
	}
	if m2.MintermCount(roots[1], 2).String() != "3" {
		t.Errorf("second restored root should be x0|x1 (3 minterms)")
	}
}

func TestRestoreMalformedStream(t *testing.T) {
	m := newTestManager(t, "classic", 1)
	_, err := m.Restore(bytes.NewReader([]byte{0xff}))
	if err == nil {
		t.Errorf("Restore on truncated input should fail")
	}
}

func TestDumpRejectsForeignRoot(t *testing.T) {
	m1 := newTestManager(t, "modern", 2)
	x0, _ := m1.Literal(0, true)
	x1, _ := m1.Literal(1, true)
	f := m1.And(x0, x1)

	m2 := newTestManager(t, "modern", 0)
	var buf bytes.Buffer
	if err := m2.Dump(&buf, f); err == nil {
		t.Errorf("Dump of an edge from a different manager should fail")
	}
}
