// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Manager owns a node table, operation cache, variable map and
// live-handle registry: every edge it hands out is only meaningful
// relative to this particular Manager (§5 -- mixing edges from two
// managers in any operator yields Error). It is not safe for concurrent
// mutation from multiple goroutines, mirroring the single-threaded
// cooperative scheduling model of §5.
type Manager struct {
	kind string
	name string
	cfg  configs

	table   nodeTable
	opcache *opCache
	vars    *varmap
	handles *Handle

	protected    []Edge
	sweepBinders []func()
	gcStats      GCStats
	garbage      int // estimated reclaimable nodes; accrued by Handle.Release, reset by gc

	posLiteral []Edge // posLiteral[level] is literal(varid(level), +)

	dvoEnabled bool

	log *zap.Logger
}

var (
	defaultMgr   *Manager
	defaultMutex sync.Mutex
)

// Default returns a process-global classic manager, lazily constructed
// the first time it is called, per §9's "Manager as process-wide
// singleton fallback" design note and the original reference
// implementation's default_mgr() accessor. Explicit managers constructed
// with New remain the normal, recommended path.
func Default() *Manager {
	defaultMutex.Lock()
	defer defaultMutex.Unlock()
	if defaultMgr == nil {
		m, err := New("classic", "default", "")
		if err != nil {
			panic(err)
		}
		defaultMgr = m
	}
	return defaultMgr
}

// New constructs a Manager. kind selects the node-table implementation
// ("classic" or "modern"; unrecognized values default to classic, per
// §4.10); an empty name is replaced with a freshly generated UUID so
// every manager has a stable, loggable identity even when anonymous;
// option, when non-empty, is a JSON document validated and applied as
// configuration (see config.go).
func New(kind, name, option string, opts ...Option) (*Manager, error) {
	if name == "" {
		name = uuid.NewString()
	}
	cfg := makeconfigs(0)
	optionOpts, err := parseOption(option)
	if err != nil {
		return nil, err
	}
	for _, o := range optionOpts {
		o(&cfg)
	}
	for _, o := range opts {
		o(&cfg)
	}
	m := &Manager{
		kind:    kind,
		name:    name,
		cfg:     cfg,
		table:   newNodeTable(kind, cfg),
		opcache: newOpCache(cfg.cachesize, cfg.rtLoadLimit),
		vars:    newVarmap(),
		log:     zap.NewNop(),
	}
	m.newHandleList()
	return m, nil
}

// Name returns the manager's identity string.
func (m *Manager) Name() string { return m.name }

// Kind returns the node-table implementation name ("classic" or
// "modern") this manager was constructed with.
func (m *Manager) Kind() string { return m.kind }

// Zero, One, Error and Overflow return the four terminal edges.
func (m *Manager) Zero() Edge     { return eZero }
func (m *Manager) One() Edge      { return eOne }
func (m *Manager) Error() Edge    { return eError }
func (m *Manager) Overflow() Edge { return eOverflow }

// NewVar registers varid at the next (deepest) level and allocates its
// positive and negative literal edges.
func (m *Manager) NewVar(varid int) error {
	level, err := m.vars.newVar(varid)
	if err != nil {
		return err
	}
	lit := lookupOrInsert(m.table, level, eZero, eOne)
	m.posLiteral = append(m.posLiteral, lit)
	m.autoMaybeGC()
	return nil
}

// Varnum returns the number of variables registered so far.
func (m *Manager) Varnum() int { return m.vars.count() }

// Level returns the internal level of varid, or an error if it was
// never registered with NewVar.
func (m *Manager) Level(varid int) (int32, error) {
	if !m.vars.has(varid) {
		return 0, wrapf(ErrUnknownVar, "variable %d", varid)
	}
	return m.vars.level(varid), nil
}

// VarID returns the variable identifier registered at level.
func (m *Manager) VarID(level int32) int { return m.vars.varid(level) }

// Literal returns literal(varid, +) when polarity is true, otherwise
// literal(varid, -).
func (m *Manager) Literal(varid int, polarity bool) (Edge, error) {
	if !m.vars.has(varid) {
		return eError, wrapf(ErrUnknownVar, "variable %d", varid)
	}
	level := m.vars.level(varid)
	lit := m.posLiteral[level]
	if polarity {
		return lit, nil
	}
	return Negate(lit), nil
}

// PosLiteral returns literal(varid, +).
func (m *Manager) PosLiteral(varid int) (Edge, error) { return m.Literal(varid, true) }

// NegLiteral returns literal(varid, -).
func (m *Manager) NegLiteral(varid int) (Edge, error) { return m.Literal(varid, false) }

// EnableDVO permits the manager to reorder variables dynamically between
// operations. Any reordering pass invalidates the entire operation cache
// (a reordered graph represents the same functions but not the same
// nodes). The shipped manager never initiates a sift on its own, so
// node graphs stay deterministic whether or not DVO is enabled; the
// toggle records the caller's permission for implementations that do.
func (m *Manager) EnableDVO() { m.dvoEnabled = true }

// DisableDVO forbids dynamic variable reordering between operations.
func (m *Manager) DisableDVO() { m.dvoEnabled = false }

// DVOEnabled reports whether dynamic variable reordering is permitted.
func (m *Manager) DVOEnabled() bool { return m.dvoEnabled }

// BuildNode installs (or finds) the node for (varid, child0, child1),
// the manual node-construction entry point of the external interface.
func (m *Manager) BuildNode(varid int, child0, child1 Edge) (Edge, error) {
	if !m.vars.has(varid) {
		return eError, wrapf(ErrUnknownVar, "variable %d", varid)
	}
	if e, stop := m.validate(child0, child1); stop {
		return e, nil
	}
	level := m.vars.level(varid)
	r := lookupOrInsert(m.table, level, child0, child1)
	// r is not yet reachable from any root, so it must stay pinned across
	// autoMaybeGC's potential sweep until it is back in the caller's hands.
	m.pushProtected(r)
	m.autoMaybeGC()
	m.popProtected(1)
	return r, nil
}

func (m *Manager) autoMaybeGC() { m.maybeGC() }

// validate combines the absorb() Error/Overflow short-circuit with the
// best-effort ManagerMismatch check of §7: any operand edge that could
// not have come from m is itself treated as an absorbing Error, the way
// the external interface specifies ("mixing edges from two different
// managers in any operator yields Error").
func (m *Manager) validate(edges ...Edge) (Edge, bool) {
	if e, stop := absorb(edges...); stop {
		return e, stop
	}
	for _, e := range edges {
		if foreignTo(m.table, e) {
			return eError, true
		}
	}
	return eZero, false
}

// levelOf returns the level of an edge's target node, or maxLevel
// for a leaf edge, so that min(level(f), level(g)) picks correctly
// across terminal/internal mixes during Shannon recursion (§4.6 step 4).
func (m *Manager) levelOf(e Edge) int32 {
	if e.IsLeaf() {
		return maxLevel
	}
	return m.table.level(e.node())
}

const maxLevel = int32(1) << 30

// Stats is the statistics surface named in the external interface:
// name, used memory, total/garbage/free node counts and GC invocation
// count.
type Stats struct {
	Name         string
	UsedMemory   uint64
	NodeCount    int
	GarbageCount int
	FreeCount    int
	GCCount      int
}

func (m *Manager) Stats() Stats {
	total := m.table.nodeCount()
	garbage := m.garbage
	if garbage > total {
		// The estimate is an upper bound (released sub-DAGs may share
		// nodes with live roots); never report more garbage than nodes.
		garbage = total
	}
	return Stats{
		Name:         m.name,
		UsedMemory:   m.table.usedMemory(),
		NodeCount:    total,
		GarbageCount: garbage,
		FreeCount:    m.table.capacity() - total,
		GCCount:      m.gcStats.Count,
	}
}
