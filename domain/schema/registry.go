package schema

import (
	"sort"
)

// Model is one named record type together with its field definitions.
type Model struct {
	Name   string
	Fields Fields
}

// Registry holds every model definition. It is built once at startup and
// read-only afterwards, so concurrent lookups need no locking.
type Registry struct {
	models map[string]Model
	names  []string
}

func NewRegistry(definitions map[string]Fields) *Registry {
	r := &Registry{
		models: make(map[string]Model, len(definitions)),
		names:  make([]string, 0, len(definitions)),
	}
	for name, fields := range definitions {
		r.models[name] = Model{Name: name, Fields: fields}
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)
	return r
}

// Lookup resolves a model name. The boolean is false for unregistered names.
func (r *Registry) Lookup(name string) (Model, bool) {
	m, ok := r.models[name]
	return m, ok
}

// Names returns the registered model names in stable order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Definitions returns the whole registry keyed by model name, the payload of
// GET /models that the table/form UI renders from.
func (r *Registry) Definitions() map[string]Fields {
	out := make(map[string]Fields, len(r.models))
	for name, m := range r.models {
		out[name] = m.Fields
	}
	return out
}
