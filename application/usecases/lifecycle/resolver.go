package lifecycle

import (
	"github.com/ecstazane/zane-crud2/domain/repository"
	"github.com/ecstazane/zane-crud2/domain/schema"
)

// Store bundles one model's schema with its record repository.
type Store struct {
	Name    string
	Schema  schema.Model
	Records repository.RecordRepository
}

// Resolver maps model names from the URL to their stores. It is populated once
// at startup from the schema registry, so resolution is a plain map read.
type Resolver struct {
	stores map[string]*Store
}

// StoreFactory builds the record repository for one registered model.
type StoreFactory func(modelName string) repository.RecordRepository

func NewResolver(registry *schema.Registry, factory StoreFactory) *Resolver {
	stores := make(map[string]*Store, len(registry.Names()))
	for _, name := range registry.Names() {
		m, _ := registry.Lookup(name)
		stores[name] = &Store{
			Name:    name,
			Schema:  m,
			Records: factory(name),
		}
	}
	return &Resolver{stores: stores}
}

func (r *Resolver) Resolve(modelName string) (*Store, error) {
	store, ok := r.stores[modelName]
	if !ok {
		return nil, repository.ErrUnknownModel
	}
	return store, nil
}
