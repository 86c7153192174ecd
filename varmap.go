// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// varmap is the bijection between externally visible variable
// identifiers and internal levels. Levels are assigned in allocation
// order: the first variable registered sits at level 0, closest to the
// roots, and levels strictly increase toward the leaves.
type varmap struct {
	varidToLevel map[int]int32
	levelToVarid []int
}

func newVarmap() *varmap {
	return &varmap{varidToLevel: make(map[int]int32)}
}

// newVar inserts varid at the next available (deepest) level. It is an
// error to register the same varid twice.
func (v *varmap) newVar(varid int) (int32, error) {
	if _, ok := v.varidToLevel[varid]; ok {
		return 0, wrapf(ErrBadArgument, "variable %d already registered", varid)
	}
	level := int32(len(v.levelToVarid))
	v.varidToLevel[varid] = level
	v.levelToVarid = append(v.levelToVarid, varid)
	return level, nil
}

// level returns the level of varid. Querying an unregistered variable is
// a contract violation per the external interface ("a fatal contract
// violation"); callers that can tolerate failure should check has first.
func (v *varmap) level(varid int) int32 {
	l, ok := v.varidToLevel[varid]
	if !ok {
		panic(wrapf(ErrUnknownVar, "variable %d", varid))
	}
	return l
}

func (v *varmap) has(varid int) bool {
	_, ok := v.varidToLevel[varid]
	return ok
}

// varid is the inverse of level; it panics on an out-of-range level,
// which can only happen on a manager-internal bug (levels are always
// assigned contiguously from 0).
func (v *varmap) varid(level int32) int {
	return v.levelToVarid[level]
}

func (v *varmap) count() int {
	return len(v.levelToVarid)
}
