/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"
)

// DocumentStore persists the encoded whole-store document as a single unit.
type DocumentStore interface {
	// Load returns the current document. It returns a NotFoundError
	// (errors.IsNotFound) when no document has been stored yet.
	Load(ctx context.Context) ([]byte, error)

	// Store replaces the document atomically: readers see either the previous
	// document or data, never a mix.
	Store(ctx context.Context, data []byte) error

	// Location describes where the document lives, for logs and errors.
	Location() string
}

// Closer is implemented by stores that hold connections.
type Closer interface {
	Close() error
}
