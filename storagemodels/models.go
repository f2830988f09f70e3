/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"sort"
	"strings"
)

// Record is the flat attribute map of a single entity, as stored in the document.
type Record map[string]any

// Document is a complete snapshot of the store: composite key -> record.
// The JSON encoding of a Document is the backing document itself.
type Document map[string]Record

// Keys returns the composite keys of the document in sorted order.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ListParams narrows an entity listing.
type ListParams struct {
	// TypeName limits the listing to one entity type. Empty means all types.
	TypeName string
}

// Matches reports whether a composite key belongs to the listing.
func (p *ListParams) Matches(key string) bool {
	if p == nil || p.TypeName == "" {
		return true
	}
	return strings.HasPrefix(key, p.TypeName+".")
}
