/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package engine

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"github.com/suparena/filestore/datastore"
	"github.com/suparena/filestore/errors"
	"github.com/suparena/filestore/model"
	"github.com/suparena/filestore/registry"
	"github.com/suparena/filestore/storagemodels"
)

// Engine owns the in-memory registry of live entities and moves it, as one
// document, to and from a DocumentStore.
//
// A single mutex covers New, Get, Delete, Update, Save and Reload. The map
// returned by All and the entities returned by Get and List are live and not
// guarded; callers sharing an Engine across goroutines mutate entities through
// Update only.
type Engine struct {
	mu      sync.Mutex
	objects map[string]*model.Entity
	store   datastore.DocumentStore
	types   *registry.Registry
	log     zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = l.With().Str("component", "engine").Logger()
	}
}

// New creates an empty engine over store, resolving types through types.
func New(store datastore.DocumentStore, types *registry.Registry, opts ...Option) *Engine {
	e := &Engine{
		objects: make(map[string]*model.Entity),
		store:   store,
		types:   types,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Key builds the composite registry key "<type>.<id>".
func Key(typeName, id string) string {
	return typeName + "." + id
}

// Types returns the registry the engine rehydrates through.
func (e *Engine) Types() *registry.Registry {
	return e.types
}

// Location describes the backing store.
func (e *Engine) Location() string {
	return e.store.Location()
}

// All returns the live registry. Deleting from it is visible to the next Save.
func (e *Engine) All() map[string]*model.Entity {
	return e.objects
}

// Len returns the number of registered entities.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.objects)
}

// List returns the entities matching params, ordered by composite key.
func (e *Engine) List(params *storagemodels.ListParams) []*model.Entity {
	e.mu.Lock()
	defer e.mu.Unlock()

	keys := make([]string, 0, len(e.objects))
	for key := range e.objects {
		if params.Matches(key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	out := make([]*model.Entity, len(keys))
	for i, key := range keys {
		out[i] = e.objects[key]
	}
	return out
}

// New registers ent under its composite key. An existing entry is replaced.
func (e *Engine) New(ent *model.Entity) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.objects[ent.Key()] = ent
}

// Get looks up an entity by type and id.
func (e *Engine) Get(typeName, id string) (*model.Entity, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	ent, ok := e.objects[Key(typeName, id)]
	return ent, ok
}

// Delete removes an entity from the registry. It reports whether it was present.
// The removal reaches the backing store on the next Save.
func (e *Engine) Delete(typeName, id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	key := Key(typeName, id)
	if _, ok := e.objects[key]; !ok {
		return false
	}
	delete(e.objects, key)
	return true
}

// Save serializes the whole registry and replaces the backing document.
func (e *Engine) Save(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.saveLocked(ctx)
}

// SaveEntity refreshes ent's update timestamp and saves the whole registry.
// It does not register ent: an entity removed from the registry stays removed.
func (e *Engine) SaveEntity(ctx context.Context, ent *model.Entity) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	ent.Touch()
	return e.saveLocked(ctx)
}

// Update runs fn on the entity stored under type and id, then touches it and
// saves the whole registry, all while holding the engine lock. When fn fails
// nothing is touched or saved.
func (e *Engine) Update(ctx context.Context, typeName, id string, fn func(ent *model.Entity) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := Key(typeName, id)
	ent, ok := e.objects[key]
	if !ok {
		return errors.NewNotFoundError(typeName, key)
	}
	if err := fn(ent); err != nil {
		return err
	}
	ent.Touch()
	return e.saveLocked(ctx)
}

func (e *Engine) saveLocked(ctx context.Context) error {
	data, err := encodeDocument(e.objects)
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}

	if err := e.store.Store(ctx, data); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	e.log.Debug().
		Int("entities", len(e.objects)).
		Int("bytes", len(data)).
		Str("location", e.store.Location()).
		Msg("registry saved")
	return nil
}

// Reload reads the backing document and admits every entity in it, replacing
// in-memory entries with the same key. A missing document is not an error.
// Either the whole document is admitted or, on any error, none of it is.
func (e *Engine) Reload(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	data, err := e.store.Load(ctx)
	if err != nil {
		if errors.IsNotFound(err) {
			e.log.Debug().Str("location", e.store.Location()).Msg("no document to reload")
			return nil
		}
		return fmt.Errorf("reload: %w", err)
	}

	staged, err := e.decode(data)
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}

	for key, ent := range staged {
		e.objects[key] = ent
	}

	e.log.Debug().
		Int("entities", len(staged)).
		Str("location", e.store.Location()).
		Msg("registry reloaded")
	return nil
}

// decode turns a document into entities without touching the live registry.
func (e *Engine) decode(data []byte) (map[string]*model.Entity, error) {
	doc, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}

	staged := make(map[string]*model.Entity, len(doc))
	for _, key := range doc.Keys() {
		rec := doc[key]
		if rec == nil {
			return nil, errors.NewDeserializationError(key, fmt.Errorf("record is not an object"))
		}

		typeName, ok := rec[model.TypeKey].(string)
		if !ok || typeName == "" {
			return nil, errors.NewDeserializationError(key, fmt.Errorf("missing %s discriminant", model.TypeKey))
		}

		ent, err := e.types.Rehydrate(typeName, rec)
		if err != nil {
			return nil, errors.NewDeserializationError(key, err)
		}
		staged[key] = ent
	}
	return staged, nil
}
