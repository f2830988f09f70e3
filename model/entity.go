/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/suparena/filestore/errors"
)

// Reserved keys of the flat attribute map.
const (
	TypeKey      = "__type__"
	IDKey        = "id"
	CreatedAtKey = "created_at"
	UpdatedAtKey = "updated_at"
)

// TimeLayout is the fixed timestamp format of the flat map: YYYY-MM-DDTHH:MM:SS.ffffff.
const TimeLayout = "2006-01-02T15:04:05.000000"

// Entity is one persisted record: identity, lifecycle timestamps and an open attribute bag.
type Entity struct {
	TypeName   string
	ID         string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Attributes map[string]any
}

// now returns the current UTC time at the precision the flat map can carry.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// New creates a fresh entity with a random UUIDv4 identifier. Registering it
// with a storage engine is the caller's job.
func New(typeName string) *Entity {
	ts := now()
	return &Entity{
		TypeName:   typeName,
		ID:         uuid.New().String(),
		CreatedAt:  ts,
		UpdatedAt:  ts,
		Attributes: make(map[string]any),
	}
}

// FromAttributes rebuilds an entity from its flat map. id and both timestamps are
// taken verbatim; the discriminant key is skipped; everything else becomes an attribute.
func FromAttributes(typeName string, attrs map[string]any) (*Entity, error) {
	e := &Entity{
		TypeName:   typeName,
		Attributes: make(map[string]any, len(attrs)),
	}

	for key, value := range attrs {
		switch key {
		case TypeKey:
			continue
		case IDKey:
			id, ok := value.(string)
			if !ok || id == "" {
				return nil, errors.NewFormatError(IDKey, fmt.Sprint(value), fmt.Errorf("id must be a non-empty string"))
			}
			e.ID = id
		case CreatedAtKey:
			ts, err := parseTimestamp(key, value)
			if err != nil {
				return nil, err
			}
			e.CreatedAt = ts
		case UpdatedAtKey:
			ts, err := parseTimestamp(key, value)
			if err != nil {
				return nil, err
			}
			e.UpdatedAt = ts
		default:
			e.Attributes[key] = NormalizeValue(value)
		}
	}

	switch {
	case e.ID == "":
		return nil, errors.NewFormatError(IDKey, "", fmt.Errorf("missing"))
	case e.CreatedAt.IsZero():
		return nil, errors.NewFormatError(CreatedAtKey, "", fmt.Errorf("missing"))
	case e.UpdatedAt.IsZero():
		return nil, errors.NewFormatError(UpdatedAtKey, "", fmt.Errorf("missing"))
	}
	return e, nil
}

func parseTimestamp(field string, value any) (time.Time, error) {
	s, ok := value.(string)
	if !ok {
		return time.Time{}, errors.NewFormatError(field, fmt.Sprint(value), fmt.Errorf("timestamp must be a string"))
	}
	ts, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, errors.NewFormatError(field, s, err)
	}
	return ts, nil
}

// FormatTime renders t in TimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// Key returns the composite registry key "<type>.<id>".
func (e *Entity) Key() string {
	return e.TypeName + "." + e.ID
}

// Touch refreshes UpdatedAt. Only an explicit save should call it.
func (e *Entity) Touch() {
	e.UpdatedAt = now()
}

// Get returns the attribute stored under name.
func (e *Entity) Get(name string) (any, bool) {
	v, ok := e.Attributes[name]
	return v, ok
}

// Set stores an attribute value.
func (e *Entity) Set(name string, value any) {
	if e.Attributes == nil {
		e.Attributes = make(map[string]any)
	}
	e.Attributes[name] = value
}

// ToMap flattens the entity for JSON encoding. It is the inverse of FromAttributes.
func (e *Entity) ToMap() map[string]any {
	m := make(map[string]any, len(e.Attributes)+4)
	for k, v := range e.Attributes {
		m[k] = v
	}
	// Base fields are written last so a stray attribute can never shadow them.
	m[TypeKey] = e.TypeName
	m[IDKey] = e.ID
	m[CreatedAtKey] = FormatTime(e.CreatedAt)
	m[UpdatedAtKey] = FormatTime(e.UpdatedAt)
	return m
}

// String renders the entity for console display as "[<type>] (<id>) <attributes>".
func (e *Entity) String() string {
	fields := make(map[string]any, len(e.Attributes)+3)
	for k, v := range e.Attributes {
		fields[k] = v
	}
	fields[IDKey] = e.ID
	fields[CreatedAtKey] = FormatTime(e.CreatedAt)
	fields[UpdatedAtKey] = FormatTime(e.UpdatedAt)
	return fmt.Sprintf("[%s] (%s) %v", e.TypeName, e.ID, fields)
}

// NormalizeValue converts decoded JSON values into the attribute variant:
// json.Number becomes int64 when it has no fraction or exponent, float64 otherwise.
// Maps and slices are normalized recursively.
func NormalizeValue(v any) any {
	switch tv := v.(type) {
	case json.Number:
		s := tv.String()
		if !strings.ContainsAny(s, ".eE") {
			if i, err := tv.Int64(); err == nil {
				return i
			}
		}
		if f, err := tv.Float64(); err == nil {
			return f
		}
		return s
	case map[string]any:
		out := make(map[string]any, len(tv))
		for k, item := range tv {
			out[k] = NormalizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(tv))
		for i, item := range tv {
			out[i] = NormalizeValue(item)
		}
		return out
	default:
		return v
	}
}
