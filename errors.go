// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "github.com/pkg/errors"

// Sentinel error kinds. Operators never return these as Go errors --
// Error and Overflow are themselves absorbing Edge values (see edge.go)
// -- these are reserved for manager-level contract violations: malformed
// construction arguments, unregistered variables, and corrupt dump
// streams. Compare with errors.Is, e.g. errors.Is(err, ErrUnknownVar).
var (
	// ErrUnknownVar is returned when a variable identifier has not been
	// registered with NewVar.
	ErrUnknownVar = errors.New("unknown variable")
	// ErrManagerMismatch is returned when a non-edge-returning entry point
	// (e.g. Dump) is asked to operate on an edge that was not produced by
	// the receiving manager. Edge-returning operators (And, Ite, Exist,
	// ...) signal the same condition by yielding the absorbing Error edge
	// instead of a Go error, via Manager.validate; see manager.go.
	ErrManagerMismatch = errors.New("edges belong to different managers")
	// ErrBadArgument covers malformed truth-vector lengths, invalid
	// Thfunc bounds, invalid ExprToBDD substitution maps,
	// duplicate NewVar registration, malformed option JSON, and queries
	// undefined on their input (a zero care-set for Constrain, a zero
	// function for SCC or ShortestOnePathLen, an empty interval for
	// MinimalSupport). PushDown with xLevel >= yLevel yields the Error
	// edge instead.
	ErrBadArgument = errors.New("invalid argument")
	// ErrStream is returned by Restore on a malformed or truncated dump
	// stream.
	ErrStream = errors.New("malformed dump stream")
	// ErrReorder flags a broken internal invariant surfaced during
	// dynamic variable reordering; a manager that returns this must not
	// be reused.
	ErrReorder = errors.New("reordering invariant violated")
)

// wrapf annotates err with additional context using github.com/pkg/errors,
// producing a real error value that supports errors.Is/errors.Cause
// instead of a plain formatted string.
func wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
