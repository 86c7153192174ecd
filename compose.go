// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "sync/atomic"

var composeIDs int32

// ComposeSession implements the staged multiple-variable compose API of
// §4.6: compose_start(), compose_reg(varid, g) once per substitution,
// then compose(f) performs one recursive traversal that substitutes
// every registered pair atomically, mapping each variable to an
// arbitrary BDD rather than just another variable. Each session gets
// its own cache id so composed results from different sessions never
// collide in the operation cache.
type ComposeSession struct {
	m    *Manager
	id   int32
	subs map[int32]Edge // level -> replacement edge
}

// ComposeStart begins a new staged compose.
func (m *Manager) ComposeStart() *ComposeSession {
	return &ComposeSession{
		m:    m,
		id:   atomic.AddInt32(&composeIDs, 1),
		subs: make(map[int32]Edge),
	}
}

// ComposeReg registers the substitution varid := g. Registering the same
// variable twice overwrites the earlier registration.
func (s *ComposeSession) ComposeReg(varid int, g Edge) error {
	level, err := s.m.Level(varid)
	if err != nil {
		return err
	}
	s.subs[level] = g
	return nil
}

// Compose performs the single recursive traversal substituting every
// registered variable in f atomically, per §8's
// `compose(x, g)(f) = f[x := g]` law.
func (s *ComposeSession) Compose(f Edge) Edge {
	if f.IsLeaf() {
		return f
	}
	if r, _, ok := s.m.opcache.lookup(cacheKey{tag: tagCompose, a: f, extra: s.id}); ok {
		return r
	}
	lvl, f0, f1 := s.m.children(f)
	r0 := s.Compose(f0)
	s.m.pushProtected(r0)
	r1 := s.Compose(f1)
	s.m.pushProtected(r1)
	var r Edge
	if g, ok := s.subs[lvl]; ok {
		r = s.m.Ite(g, r1, r0)
	} else {
		r = s.m.Ite(s.m.posLiteral[lvl], r1, r0)
	}
	s.m.popProtected(2)
	s.m.opcache.store(cacheKey{tag: tagCompose, a: f, extra: s.id}, r, 0)
	return r
}
