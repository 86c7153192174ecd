// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"testing"

	"github.com/dalzilio/robdd/expr"
	"github.com/stretchr/testify/require"
)

// TestThfuncMintermCount exercises spec scenario 3: thfunc(3,2) has 4
// satisfying minterms and is its own dual under threshold duality here.
func TestThfuncMintermCount(t *testing.T) {
	m := newTestManager(t, "classic", 3)
	f, err := m.Thfunc(3, 2)
	require.NoError(t, err)
	if got := m.MintermCount(f, 3).String(); got != "4" {
		t.Errorf("Thfunc(3,2) minterm_count = %s, want 4", got)
	}
}

// TestThfuncHammingWeight checks the §8 threshold-correctness property
// directly against every assignment: thfunc(n, k) evaluates to 1 on an
// input iff its Hamming weight is >= k.
func TestThfuncHammingWeight(t *testing.T) {
	const n = 4
	for th := 0; th <= n+1; th++ {
		m := newTestManager(t, "classic", n)
		f, err := m.Thfunc(n, th)
		require.NoError(t, err)
		for assignment := 0; assignment < 1<<n; assignment++ {
			weight := 0
			e := f
			for bit := 0; bit < n; bit++ {
				v := assignment&(1<<uint(n-1-bit)) != 0
				if v {
					weight++
				}
				level := int32(bit)
				e = m.cofactor(e, level, v)
			}
			want := weight >= th
			got := e.IsOne()
			if got != want {
				t.Fatalf("thfunc(%d,%d) on assignment %04b: got %v want %v (weight %d)", n, th, assignment, got, want, weight)
			}
		}
	}
}

// TestThfuncIndependentOfTotalVarCount guards against using the
// manager's total variable count instead of n when building the
// threshold function bottom-up.
func TestThfuncIndependentOfTotalVarCount(t *testing.T) {
	m := newTestManager(t, "classic", 3)
	require.NoError(t, m.NewVar(100)) // an extra, unrelated variable

	f, err := m.Thfunc(3, 2)
	require.NoError(t, err)
	if got := m.MintermCount(f, 3).String(); got != "4" {
		t.Errorf("Thfunc(3,2) minterm_count = %s, want 4 even with extra variables registered", got)
	}
	support := m.Support(f)
	for _, v := range support {
		if v == 100 {
			t.Errorf("Thfunc(3,2) support must not include variables beyond the first n, got %v", support)
		}
	}
}

// TestTableFromTruthVectorMatchesXor exercises spec scenario 4: the
// truth vector [0,1,1,0] over (x0,x1) must be literally equal to
// literal(x0,+) XOR literal(x1,+).
func TestTableFromTruthVectorMatchesXor(t *testing.T) {
	m := newTestManager(t, "classic", 2)
	x0, _ := m.Literal(0, true)
	x1, _ := m.Literal(1, true)
	want := m.Xor(x0, x1)

	got, err := m.TableFromTruthVector([]int{0, 1}, []bool{false, true, true, false})
	require.NoError(t, err)
	if got != want {
		t.Errorf("TableFromTruthVector([0,1,1,0]) != literal(x0)^literal(x1): got %v want %v", got, want)
	}
}

func TestTableFromTruthVectorBadLength(t *testing.T) {
	m := newTestManager(t, "classic", 2)
	_, err := m.TableFromTruthVector([]int{0, 1}, []bool{true, false})
	require.Error(t, err)
}

func TestExprToBDDMatchesDirectConstruction(t *testing.T) {
	m := newTestManager(t, "classic", 3)
	x0, _ := m.Literal(0, true)
	x1, _ := m.Literal(1, true)
	x2, _ := m.Literal(2, true)
	want := m.And(m.Or(x0, x1), Negate(x2))

	e := expr.And(expr.Or(expr.Var(0), expr.Var(1)), expr.Not(expr.Var(2)))
	got, err := m.ExprToBDD(e)
	require.NoError(t, err)
	if got != want {
		t.Errorf("ExprToBDD((x0|x1)&!x2) != manually built edge: got %v want %v", got, want)
	}
}

func TestExprToBDDUnknownVariable(t *testing.T) {
	m := newTestManager(t, "classic", 1)
	_, err := m.ExprToBDD(expr.Var(99))
	require.Error(t, err)
}

func TestExprToBDDSubstReplacesVariables(t *testing.T) {
	m := newTestManager(t, "classic", 3)
	x1, _ := m.Literal(1, true)
	x2, _ := m.Literal(2, true)

	// x0 := x1 & x2 inside x0 | !x2.
	e := expr.Or(expr.Var(0), expr.Not(expr.Var(2)))
	got, err := m.ExprToBDDSubst(e, map[int]Edge{0: m.And(x1, x2)})
	require.NoError(t, err)
	want := m.Or(m.And(x1, x2), Negate(x2))
	if got != want {
		t.Errorf("ExprToBDDSubst did not substitute x0: got %v want %v", got, want)
	}
}

func TestExprToBDDSubstVariableToVariable(t *testing.T) {
	m := newTestManager(t, "classic", 2)
	x1, _ := m.Literal(1, true)
	got, err := m.ExprToBDDSubst(expr.Var(0), map[int]Edge{0: x1})
	require.NoError(t, err)
	if got != x1 {
		t.Errorf("variable-to-variable substitution: got %v want x1", got)
	}
}
