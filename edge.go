// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "fmt"

// Edge is a tagged reference to a BDD rooted at some node. It packs a
// terminal tag, the output-complement bit, and (for internal edges) a
// node-table index into a single machine word: negation is always a
// constant-time bit flip, never a recursive traversal.
//
// The bit layout for an internal edge is ((node+firstNode)<<1)|inv, the
// firstNode offset keeping the four terminal values 0..3 from colliding
// with a shifted node index. Zero and One are each other's
// negation; Error and Overflow are their own negation and absorb through
// every operator.
type Edge int64

const (
	eZero Edge = iota
	eOne
	eError
	eOverflow
	firstNode
)

// zero, one, errorEdge and overflowEdge are the four terminal edges.
func zero() Edge     { return eZero }
func one() Edge      { return eOne }
func errorEdge() Edge { return eError }
func overflowEdge() Edge { return eOverflow }

func internal(node int, inv bool) Edge {
	e := Edge(int64(node)+int64(firstNode)) << 1
	if inv {
		e |= 1
	}
	return e
}

// IsZero, IsOne, IsConst, IsLeaf, IsError, IsOverflow and IsInvalid test
// the terminal tag of an edge.
func (e Edge) IsZero() bool     { return e == eZero }
func (e Edge) IsOne() bool      { return e == eOne }
func (e Edge) IsConst() bool    { return e == eZero || e == eOne }
func (e Edge) IsError() bool    { return e == eError }
func (e Edge) IsOverflow() bool { return e == eOverflow }
func (e Edge) IsInvalid() bool  { return e == eError || e == eOverflow }
func (e Edge) IsLeaf() bool     { return e < firstNode<<1 }

// node returns the node-table index targeted by an internal edge. The
// result is meaningless for leaf edges; callers must check IsLeaf first.
func (e Edge) node() int {
	return int(e>>1) - int(firstNode)
}

// polarity returns the output-complement bit of an internal edge.
func (e Edge) polarity() bool {
	return e&1 == 1
}

// Negate flips an edge in constant time: Zero<->One, Error and Overflow
// are their own negation, and an internal edge simply flips its
// complement bit.
func Negate(e Edge) Edge {
	switch e {
	case eZero:
		return eOne
	case eOne:
		return eZero
	case eError, eOverflow:
		return e
	default:
		return e ^ 1
	}
}

// withPolarity returns e with its complement bit forced to inv, without
// touching its target node. Only meaningful for internal edges.
func (e Edge) withPolarity(inv bool) Edge {
	if e.polarity() == inv {
		return e
	}
	return e ^ 1
}

func (e Edge) String() string {
	switch e {
	case eZero:
		return "0"
	case eOne:
		return "1"
	case eError:
		return "error"
	case eOverflow:
		return "overflow"
	default:
		if e.polarity() {
			return fmt.Sprintf("~n%d", e.node())
		}
		return fmt.Sprintf("n%d", e.node())
	}
}

// absorb implements the Error/Overflow short-circuit shared by every
// recursive operator: Error dominates, then Overflow, over any number of
// operands.
func absorb(edges ...Edge) (Edge, bool) {
	overflow := false
	for _, e := range edges {
		if e.IsError() {
			return eError, true
		}
		if e.IsOverflow() {
			overflow = true
		}
	}
	if overflow {
		return eOverflow, true
	}
	return eZero, false
}

// foreignTo reports whether e could not have been produced by t: an
// internal edge whose node index falls outside t's current capacity
// belongs to some other manager's table. This is a best-effort check
// (§7 ManagerMismatch) -- two managers whose tables happen to overlap in
// index range are not distinguished, since an edge is a bare node index
// with no embedded manager tag, by design (§9 "output-complement bit on
// edges... a tagged pointer or an explicit (node, bool) pair").
func foreignTo(t nodeTable, e Edge) bool {
	if e.IsLeaf() {
		return false
	}
	n := e.node()
	return n < 0 || n >= t.capacity()
}
