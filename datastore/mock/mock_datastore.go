/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the DocumentStore interface
package mock

import (
	"context"
	"sync"

	"github.com/suparena/filestore/errors"
)

// DataStore is an in-memory datastore.DocumentStore. It backs the "memory"
// backend and lets tests inject failures.
type DataStore struct {
	mu         sync.RWMutex
	data       []byte
	present    bool
	name       string
	loadError  error
	storeError error
	loads      int
	stores     int
}

// New creates a new mock DataStore with no document
func New() *DataStore {
	return &DataStore{name: "memory"}
}

// WithName sets the location reported by Location
func (m *DataStore) WithName(name string) *DataStore {
	m.name = name
	return m
}

// WithLoadError makes Load operations return an error
func (m *DataStore) WithLoadError(err error) *DataStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadError = err
	return m
}

// WithStoreError makes Store operations return an error
func (m *DataStore) WithStoreError(err error) *DataStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storeError = err
	return m
}

// Load returns a copy of the stored document
func (m *DataStore) Load(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loads++
	if m.loadError != nil {
		return nil, m.loadError
	}
	if !m.present {
		return nil, errors.NewNotFoundError("document", m.name)
	}

	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

// Store replaces the document
func (m *DataStore) Store(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.storeError != nil {
		return m.storeError
	}

	m.data = make([]byte, len(data))
	copy(m.data, data)
	m.present = true
	m.stores++
	return nil
}

// Location returns the configured name
func (m *DataStore) Location() string {
	return m.name
}

// Helper methods for testing

// SetData directly sets the stored document
func (m *DataStore) SetData(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	m.present = true
}

// GetData returns a copy of the stored document and whether one exists
func (m *DataStore) GetData() ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]byte(nil), m.data...), m.present
}

// Stores returns the number of successful Store calls
func (m *DataStore) Stores() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stores
}

// Loads returns the number of Load calls
func (m *DataStore) Loads() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loads
}

// Clear removes the document
func (m *DataStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	m.present = false
}
