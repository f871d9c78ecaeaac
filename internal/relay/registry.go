package relay

import (
	"fmt"
	"sort"
)

// ToolInfo describes one registered operation for the listing endpoint.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Registry holds the callable operations by name.
type Registry struct {
	ops   map[string]Operation
	names []string
}

// NewRegistry builds a registry from the given operations. Registering two
// operations under one name is a programming error.
func NewRegistry(ops ...Operation) *Registry {
	r := &Registry{ops: make(map[string]Operation, len(ops))}
	for _, op := range ops {
		if _, exists := r.ops[op.Name()]; exists {
			panic(fmt.Errorf("%q already exists in relay registry", op.Name()))
		}
		r.ops[op.Name()] = op
		r.names = append(r.names, op.Name())
	}
	sort.Strings(r.names)
	return r
}

// Get returns the named operation, or nil when nothing is registered under
// that name.
func (r *Registry) Get(name string) Operation {
	return r.ops[name]
}

// Names returns every registered operation name in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Describe returns the sorted tool listing.
func (r *Registry) Describe() []ToolInfo {
	out := make([]ToolInfo, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, ToolInfo{Name: name, Description: r.ops[name].Description()})
	}
	return out
}
