// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"encoding/binary"
	"io"
)

// Edge token values for the dump/restore wire format (§4.9/§6). These
// are wire constants, not to be confused with the in-memory Edge
// encoding in edge.go: the wire format is portable across processes and
// must not change shape if the in-memory representation ever does.
const (
	wireZero      = 0
	wireOne       = 1
	wireError     = 2
	wireOverflow  = 3
	wirePositive  = 4
	wireNegative  = 5
	wireEndOfNode = 1<<31 - 1 // sentinel varid, "the implementation reserves the maximum representable value"
)

// Dump writes the union of the given roots to w: a topologically
// ordered sequence of internal-node records (varid, edge0, edge1), an
// end-of-nodes marker, then a root count and that many root edge
// tokens. The algorithm -- number internal nodes in post-order as they
// are first visited, then emit each edge as either a terminal token or
// a back-reference to an already-numbered node -- follows the
// post-order id-assignment walk of the original reference
// implementation's dumper, adapted to this package's exact binary
// token layout rather than its line-oriented text format.
func (m *Manager) Dump(w io.Writer, roots ...Edge) error {
	for _, r := range roots {
		if foreignTo(m.table, r) {
			return wrapf(ErrManagerMismatch, "dump: root %v was not produced by this manager", r)
		}
	}
	ids := make(map[int]uint32)
	var order []int
	var visit func(Edge)
	visit = func(e Edge) {
		if e.IsLeaf() {
			return
		}
		n := e.node()
		if _, ok := ids[n]; ok {
			return
		}
		visit(m.table.low(n))
		visit(m.table.high(n))
		ids[n] = uint32(len(order))
		order = append(order, n)
	}
	for _, r := range roots {
		visit(r)
	}
	bw := &byteWriter{w: w}
	for _, n := range order {
		bw.writeUint32(uint32(m.vars.varid(m.table.level(n))))
		bw.writeEdge(m.table.low(n), ids)
		bw.writeEdge(m.table.high(n), ids)
	}
	bw.writeUint32(wireEndOfNode)
	bw.writeUint32(uint32(len(roots)))
	for _, r := range roots {
		bw.writeEdge(r, ids)
	}
	if bw.err != nil {
		return wrapf(ErrStream, "dump: %v", bw.err)
	}
	return nil
}

type byteWriter struct {
	w   io.Writer
	err error
}

func (bw *byteWriter) writeUint32(v uint32) {
	if bw.err != nil {
		return
	}
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, bw.err = bw.w.Write(buf[:])
}

func (bw *byteWriter) writeByte(b byte) {
	if bw.err != nil {
		return
	}
	_, bw.err = bw.w.Write([]byte{b})
}

func (bw *byteWriter) writeEdge(e Edge, ids map[int]uint32) {
	switch {
	case e == eZero:
		bw.writeByte(wireZero)
	case e == eOne:
		bw.writeByte(wireOne)
	case e == eError:
		bw.writeByte(wireError)
	case e == eOverflow:
		bw.writeByte(wireOverflow)
	case e.polarity():
		bw.writeByte(wireNegative)
		bw.writeUint32(ids[e.node()])
	default:
		bw.writeByte(wirePositive)
		bw.writeUint32(ids[e.node()])
	}
}
