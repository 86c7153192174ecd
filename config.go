// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"encoding/json"

	"github.com/xeipuuv/gojsonschema"
)

// configs holds the tunable parameters of a Manager, set via functional
// options. The field set covers the five parameters named in the
// external interface: gc_threshold, gc_node_limit, nt_load_limit,
// rt_load_limit and mem_limit.
type configs struct {
	varnum      int
	nodesize    int
	cachesize   int
	gcThreshold float64 // fraction of garbage nodes that triggers automatic GC
	gcNodeLimit int     // GC never runs below this many total nodes
	ntLoadLimit float64 // node-table load factor that triggers rehash
	rtLoadLimit float64 // operation-cache load factor that triggers resize
	memLimit    uint64  // byte ceiling; 0 means unbounded
}

func makeconfigs(varnum int) configs {
	return configs{
		varnum:      varnum,
		nodesize:    1009,
		cachesize:   1009 / 4,
		gcThreshold: 0.20,
		gcNodeLimit: 1000,
		ntLoadLimit: 0.75,
		rtLoadLimit: 0.75,
		memLimit:    0,
	}
}

// Option configures a Manager at construction time.
type Option func(*configs)

// Nodesize sets the initial size of the node table.
func Nodesize(n int) Option {
	return func(c *configs) { c.nodesize = n }
}

// Cachesize sets the initial size of the operation cache.
func Cachesize(n int) Option {
	return func(c *configs) { c.cachesize = n }
}

// GCThreshold sets the garbage/(live+garbage) fraction that triggers an
// automatic GC during node install.
func GCThreshold(f float64) Option {
	return func(c *configs) { c.gcThreshold = f }
}

// GCNodeLimit sets the total-node-count lower bound below which
// automatic GC never runs.
func GCNodeLimit(n int) Option {
	return func(c *configs) { c.gcNodeLimit = n }
}

// NTLoadLimit sets the node-table load factor that triggers a rehash.
func NTLoadLimit(f float64) Option {
	return func(c *configs) { c.ntLoadLimit = f }
}

// RTLoadLimit sets the operation-cache load factor that triggers a
// resize.
func RTLoadLimit(f float64) Option {
	return func(c *configs) { c.rtLoadLimit = f }
}

// MemLimit sets the byte ceiling past which node allocation returns
// Overflow. Zero means unbounded.
func MemLimit(n uint64) Option {
	return func(c *configs) { c.memLimit = n }
}

// optionSchema is the schema validated against a non-empty "option" JSON
// payload passed to New. It mirrors the Option set above so that a
// manager can be configured from a serialized string, the way the
// original (type, name, option) constructor accepts a free-form option
// argument.
const optionSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "nodesize": {"type": "integer", "minimum": 1},
    "cachesize": {"type": "integer", "minimum": 1},
    "gc_threshold": {"type": "number", "minimum": 0, "maximum": 1},
    "gc_node_limit": {"type": "integer", "minimum": 0},
    "nt_load_limit": {"type": "number", "minimum": 0, "maximum": 1},
    "rt_load_limit": {"type": "number", "minimum": 0, "maximum": 1},
    "mem_limit": {"type": "integer", "minimum": 0}
  }
}`

type optionDoc struct {
	Nodesize    *int     `json:"nodesize"`
	Cachesize   *int     `json:"cachesize"`
	GCThreshold *float64 `json:"gc_threshold"`
	GCNodeLimit *int     `json:"gc_node_limit"`
	NTLoadLimit *float64 `json:"nt_load_limit"`
	RTLoadLimit *float64 `json:"rt_load_limit"`
	MemLimit    *uint64  `json:"mem_limit"`
}

// parseOption validates and parses the option JSON string accepted by
// New's (type, name, option) constructor, returning the Options it
// describes. An empty string is valid and yields no options.
func parseOption(option string) ([]Option, error) {
	if option == "" {
		return nil, nil
	}
	schemaLoader := gojsonschema.NewStringLoader(optionSchema)
	docLoader := gojsonschema.NewStringLoader(option)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, wrapf(ErrBadArgument, "option is not valid JSON: %v", err)
	}
	if !result.Valid() {
		return nil, wrapf(ErrBadArgument, "option failed validation: %v", result.Errors())
	}
	var doc optionDoc
	if err := json.Unmarshal([]byte(option), &doc); err != nil {
		return nil, wrapf(ErrBadArgument, "option decode: %v", err)
	}
	var opts []Option
	if doc.Nodesize != nil {
		opts = append(opts, Nodesize(*doc.Nodesize))
	}
	if doc.Cachesize != nil {
		opts = append(opts, Cachesize(*doc.Cachesize))
	}
	if doc.GCThreshold != nil {
		opts = append(opts, GCThreshold(*doc.GCThreshold))
	}
	if doc.GCNodeLimit != nil {
		opts = append(opts, GCNodeLimit(*doc.GCNodeLimit))
	}
	if doc.NTLoadLimit != nil {
		opts = append(opts, NTLoadLimit(*doc.NTLoadLimit))
	}
	if doc.RTLoadLimit != nil {
		opts = append(opts, RTLoadLimit(*doc.RTLoadLimit))
	}
	if doc.MemLimit != nil {
		opts = append(opts, MemLimit(*doc.MemLimit))
	}
	return opts, nil
}
