/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package filestore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"github.com/suparena/filestore/config"
	"github.com/suparena/filestore/datastore"
	"github.com/suparena/filestore/datastore/ddb"
	"github.com/suparena/filestore/datastore/file"
	"github.com/suparena/filestore/datastore/mock"
	"github.com/suparena/filestore/datastore/sqlite"
	"github.com/suparena/filestore/engine"
	"github.com/suparena/filestore/errors"
	"github.com/suparena/filestore/models"
)

// BackendFactory opens the DocumentStore selected by cfg.
type BackendFactory func(ctx context.Context, cfg *config.Config) (datastore.DocumentStore, error)

// Backends is a thread-safe set of named backend factories.
type Backends struct {
	mu        sync.RWMutex
	factories map[string]BackendFactory
}

// NewBackends returns an empty set.
func NewBackends() *Backends {
	return &Backends{
		factories: make(map[string]BackendFactory),
	}
}

// DefaultBackends returns the file, dynamodb, sqlite and memory backends.
func DefaultBackends() *Backends {
	b := NewBackends()
	b.mustRegister(config.BackendFile, openFile)
	b.mustRegister(config.BackendDynamoDB, openDynamoDB)
	b.mustRegister(config.BackendSQLite, openSQLite)
	b.mustRegister(config.BackendMemory, openMemory)
	return b
}

// Register adds a factory under name.
func (b *Backends) Register(name string, f BackendFactory) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.factories[name]; exists {
		return fmt.Errorf("backend %q already registered", name)
	}
	b.factories[name] = f
	return nil
}

func (b *Backends) mustRegister(name string, f BackendFactory) {
	if err := b.Register(name, f); err != nil {
		panic(err)
	}
}

// Get returns the factory registered under name.
func (b *Backends) Get(name string) (BackendFactory, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	f, exists := b.factories[name]
	if !exists {
		return nil, errors.NewNotFoundError("backend", name)
	}
	return f, nil
}

// Remove deletes the factory registered under name.
func (b *Backends) Remove(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.factories[name]; !exists {
		return errors.NewNotFoundError("backend", name)
	}
	delete(b.factories, name)
	return nil
}

// List returns the registered backend names in sorted order.
func (b *Backends) List() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.factories))
	for name := range b.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open wires the model registry, the configured backend and an engine, reloads
// the stored document once, and returns the service with a func that releases
// the backend.
func (b *Backends) Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Service, func() error, error) {
	factory, err := b.Get(cfg.Backend)
	if err != nil {
		return nil, nil, err
	}

	store, err := factory(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}

	closeFn := func() error {
		if c, ok := store.(datastore.Closer); ok {
			return c.Close()
		}
		return nil
	}

	eng := engine.New(store, models.NewRegistry(), engine.WithLogger(logger))
	if err := eng.Reload(ctx); err != nil {
		closeFn()
		return nil, nil, err
	}

	logger.Debug().
		Str("backend", cfg.Backend).
		Str("location", store.Location()).
		Int("entities", eng.Len()).
		Msg("filestore opened")

	return NewService(eng), closeFn, nil
}

// Open is DefaultBackends().Open.
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Service, func() error, error) {
	return DefaultBackends().Open(ctx, cfg, logger)
}

func openFile(_ context.Context, cfg *config.Config) (datastore.DocumentStore, error) {
	return file.New(cfg.File.Path), nil
}

func openDynamoDB(ctx context.Context, cfg *config.Config) (datastore.DocumentStore, error) {
	return ddb.NewDynamodbDataStore(ctx, ddb.Options{
		Region:      cfg.DynamoDB.Region,
		AccessKey:   cfg.DynamoDB.AccessKey,
		SecretKey:   cfg.DynamoDB.SecretKey,
		Endpoint:    cfg.DynamoDB.Endpoint,
		Table:       cfg.DynamoDB.Table,
		Document:    cfg.DynamoDB.Document,
		KeyTemplate: cfg.DynamoDB.KeyTemplate,
	})
}

func openSQLite(_ context.Context, cfg *config.Config) (datastore.DocumentStore, error) {
	return sqlite.NewSQLiteStore(cfg.SQLite.Path, cfg.SQLite.Document)
}

func openMemory(_ context.Context, _ *config.Config) (datastore.DocumentStore, error) {
	return mock.New(), nil
}
