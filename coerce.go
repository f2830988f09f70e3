/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package filestore

import (
	"strconv"
	"strings"

	"github.com/suparena/filestore/errors"
	"github.com/suparena/filestore/model"
)

var protectedFields = map[string]struct{}{
	model.IDKey:        {},
	model.CreatedAtKey: {},
	model.UpdatedAtKey: {},
	model.TypeKey:      {},
}

// IsProtected reports whether attr is managed by the store and cannot be updated.
func IsProtected(attr string) bool {
	_, ok := protectedFields[attr]
	return ok
}

// Coerce converts raw to the type of prior. Absent attributes and values of
// any other type are kept as strings.
func Coerce(attr string, prior any, present bool, raw string) (any, error) {
	if !present {
		return raw, nil
	}

	switch prior.(type) {
	case int64, int:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, errors.NewFormatError(attr, raw, err)
		}
		return n, nil
	case float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, errors.NewFormatError(attr, raw, err)
		}
		return f, nil
	case bool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, errors.NewFormatError(attr, raw, err)
		}
		return b, nil
	default:
		return raw, nil
	}
}
