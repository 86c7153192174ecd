// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package robdd implements a manager for Reduced Ordered Binary Decision
// Diagrams (ROBDD). A BDD is a compact, canonical representation of a
// Boolean function over a fixed, ordered set of variables: the manager
// owns a unique table of internal nodes, a bounded operation cache, and a
// reference-counted garbage collector, and exposes a family of recursive
// operators (And, Or, Xor, Ite, quantification, composition, ...) plus a
// handful of structural analyses (support, minterm counting, ISOP, ...)
// over the edges it hands out.
//
// Two node-table implementations are available, selectable by name when
// a Manager is constructed: "classic", a chained hash table with an
// explicit free list, and "modern", which stores nodes in a Go map.
// Both honor the same contract and are interchangeable at the public
// API level; an unrecognized type name falls back to "classic".
//
// Edges embed an output-complement bit, so negation is a constant-time
// operation and every stored node keeps its 0-edge uncomplemented
// (canonical polarity) -- see edge.go for the encoding.
package robdd
