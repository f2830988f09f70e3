/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"

	"github.com/suparena/filestore/errors"
	"github.com/suparena/filestore/model"
)

// Constructor rehydrates an entity of one concrete type from its flat attribute map.
type Constructor func(attrs map[string]any) (*model.Entity, error)

// Registry maps a discriminant to the constructor for that type. It is populated
// once at startup and only read afterwards, so lookups take no lock.
type Registry struct {
	constructors map[string]Constructor
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{constructors: make(map[string]Constructor)}
}

// Register adds a constructor for the given type name.
// If the name is already registered, it panics to prevent accidental overrides.
func (r *Registry) Register(typeName string, fn Constructor) {
	if typeName == "" {
		panic("type registry: empty type name")
	}
	if _, exists := r.constructors[typeName]; exists {
		panic(fmt.Sprintf("type registry: type %q already registered", typeName))
	}
	r.constructors[typeName] = fn
}

// RegisterPlain registers typeName with a constructor that accepts any flat map.
func (r *Registry) RegisterPlain(typeName string) {
	r.Register(typeName, func(attrs map[string]any) (*model.Entity, error) {
		return model.FromAttributes(typeName, attrs)
	})
}

// Lookup returns the constructor registered for typeName, or an UnknownTypeError.
func (r *Registry) Lookup(typeName string) (Constructor, error) {
	fn, ok := r.constructors[typeName]
	if !ok {
		return nil, errors.NewUnknownTypeError(typeName)
	}
	return fn, nil
}

// Has reports whether typeName is registered.
func (r *Registry) Has(typeName string) bool {
	_, ok := r.constructors[typeName]
	return ok
}

// Rehydrate looks up typeName and runs its constructor over attrs.
func (r *Registry) Rehydrate(typeName string, attrs map[string]any) (*model.Entity, error) {
	fn, err := r.Lookup(typeName)
	if err != nil {
		return nil, err
	}
	return fn(attrs)
}

// Types returns the registered type names in sorted order.
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
