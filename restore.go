// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"encoding/binary"
	"io"
)

// Restore reads a dump produced by Dump and reconstructs each root by
// threading every internal record through lookup_or_insert in m. It
// returns the reconstructed roots, or a nil slice and an error on
// malformed input (per §7, restore failures are reported as 0 roots
// read rather than partial results). Manager choice is orthogonal to
// the dump: any manager whose variable universe covers the varids used
// in the dump can restore it, following the original reference
// implementation's Restorer::read/make_bdd, adapted to this package's
// binary token layout.
func (m *Manager) Restore(r io.Reader) ([]Edge, error) {
	br := &byteReader{r: r}
	var nodes []Edge // nodes[i] is the (uncomplemented) edge for the i'th dumped internal node
	for {
		varid := br.readUint32()
		if br.err != nil {
			return nil, wrapf(ErrStream, "restore: %v", br.err)
		}
		if varid == wireEndOfNode {
			break
		}
		if !m.vars.has(int(varid)) {
			return nil, wrapf(ErrStream, "restore: unknown variable %d", varid)
		}
		level := m.vars.level(int(varid))
		e0, err := br.readEdge(nodes)
		if err != nil {
			return nil, wrapf(ErrStream, "restore: %v", err)
		}
		e1, err := br.readEdge(nodes)
		if err != nil {
			return nil, wrapf(ErrStream, "restore: %v", err)
		}
		nodes = append(nodes, lookupOrInsert(m.table, level, e0, e1))
	}
	count := br.readUint32()
	if br.err != nil {
		return nil, wrapf(ErrStream, "restore: %v", br.err)
	}
	roots := make([]Edge, 0, count)
	for i := uint32(0); i < count; i++ {
		e, err := br.readEdge(nodes)
		if err != nil {
			return nil, wrapf(ErrStream, "restore: %v", err)
		}
		roots = append(roots, e)
	}
	if br.err != nil {
		return nil, wrapf(ErrStream, "restore: %v", br.err)
	}
	return roots, nil
}

type byteReader struct {
	r   io.Reader
	err error
}

func (br *byteReader) readUint32() uint32 {
	if br.err != nil {
		return 0
	}
	var buf [4]byte
	if _, err := io.ReadFull(br.r, buf[:]); err != nil {
		br.err = err
		return 0
	}
	return binary.BigEndian.Uint32(buf[:])
}

func (br *byteReader) readByte() byte {
	if br.err != nil {
		return 0
	}
	var buf [1]byte
	if _, err := io.ReadFull(br.r, buf[:]); err != nil {
		br.err = err
		return 0
	}
	return buf[0]
}

func (br *byteReader) readEdge(nodes []Edge) (Edge, error) {
	tok := br.readByte()
	if br.err != nil {
		return eError, br.err
	}
	switch tok {
	case wireZero:
		return eZero, nil
	case wireOne:
		return eOne, nil
	case wireError:
		return eError, nil
	case wireOverflow:
		return eOverflow, nil
	case wirePositive:
		idx := br.readUint32()
		if br.err != nil || int(idx) >= len(nodes) {
			return eError, wrapf(ErrStream, "bad node back-reference %d", idx)
		}
		return nodes[idx], nil
	case wireNegative:
		idx := br.readUint32()
		if br.err != nil || int(idx) >= len(nodes) {
			return eError, wrapf(ErrStream, "bad node back-reference %d", idx)
		}
		return Negate(nodes[idx]), nil
	default:
		return eError, wrapf(ErrStream, "bad edge token %d", tok)
	}
}
