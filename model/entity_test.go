/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/suparena/filestore/errors"
)

func TestNew(t *testing.T) {
	e := New("BaseModel")

	if !strfmt.IsUUID4(e.ID) {
		t.Errorf("expected a UUIDv4 id, got %q", e.ID)
	}
	if e.CreatedAt.IsZero() || !e.CreatedAt.Equal(e.UpdatedAt) {
		t.Errorf("expected created_at == updated_at, got %v / %v", e.CreatedAt, e.UpdatedAt)
	}
	if e.CreatedAt.Nanosecond()%1000 != 0 {
		t.Errorf("timestamps should carry microsecond precision, got %v", e.CreatedAt)
	}
	if e.Key() != "BaseModel."+e.ID {
		t.Errorf("unexpected key %q", e.Key())
	}

	other := New("BaseModel")
	if other.ID == e.ID {
		t.Error("two fresh entities share an id")
	}
}

func TestFromAttributes(t *testing.T) {
	attrs := map[string]any{
		TypeKey:      "SomeClass",
		IDKey:        "123456",
		CreatedAtKey: "2023-01-01T12:00:00.000000",
		UpdatedAtKey: "2023-01-01T12:00:00.000000",
		"dict_attr":  map[string]any{"key": "value"},
		"list_attr":  []any{json.Number("1"), json.Number("2"), json.Number("3")},
	}

	e, err := FromAttributes("BaseModel", attrs)
	if err != nil {
		t.Fatalf("FromAttributes: %v", err)
	}

	want := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	if e.ID != "123456" {
		t.Errorf("id = %q", e.ID)
	}
	if !e.CreatedAt.Equal(want) || !e.UpdatedAt.Equal(want) {
		t.Errorf("timestamps = %v / %v, want %v", e.CreatedAt, e.UpdatedAt, want)
	}
	if _, ok := e.Get(TypeKey); ok {
		t.Error("the discriminant must not be stored as an attribute")
	}
	if e.TypeName != "BaseModel" {
		t.Errorf("type name = %q", e.TypeName)
	}
	if got, _ := e.Get("dict_attr"); !reflect.DeepEqual(got, map[string]any{"key": "value"}) {
		t.Errorf("dict_attr = %#v", got)
	}
	if got, _ := e.Get("list_attr"); !reflect.DeepEqual(got, []any{int64(1), int64(2), int64(3)}) {
		t.Errorf("list_attr = %#v", got)
	}
}

func TestFromAttributesErrors(t *testing.T) {
	base := func() map[string]any {
		return map[string]any{
			IDKey:        "abc",
			CreatedAtKey: "2023-01-01T12:00:00.000000",
			UpdatedAtKey: "2023-01-01T12:00:00.000000",
		}
	}

	tests := []struct {
		name   string
		mutate func(m map[string]any)
		field  string
	}{
		{"space separated timestamp", func(m map[string]any) { m[CreatedAtKey] = "2023-01-01 12:00:00" }, CreatedAtKey},
		{"missing fraction", func(m map[string]any) { m[UpdatedAtKey] = "2023-01-01T12:00:00" }, UpdatedAtKey},
		{"numeric timestamp", func(m map[string]any) { m[CreatedAtKey] = json.Number("1700000000") }, CreatedAtKey},
		{"missing created_at", func(m map[string]any) { delete(m, CreatedAtKey) }, CreatedAtKey},
		{"missing id", func(m map[string]any) { delete(m, IDKey) }, IDKey},
		{"non-string id", func(m map[string]any) { m[IDKey] = json.Number("12") }, IDKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := base()
			tt.mutate(attrs)

			_, err := FromAttributes("BaseModel", attrs)
			if !errors.IsFormatError(err) {
				t.Fatalf("expected FormatError, got %v", err)
			}
			fe, ok := err.(*errors.FormatError)
			if !ok || fe.Field != tt.field {
				t.Errorf("expected field %q, got %#v", tt.field, err)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	e := New("User")
	e.Set("email", "a@b.c")
	e.Set("age", int64(42))
	e.Set("score", 9.5)
	e.Set("active", true)
	e.Set("tags", []any{"x", "y"})

	back, err := FromAttributes(e.TypeName, e.ToMap())
	if err != nil {
		t.Fatalf("FromAttributes: %v", err)
	}

	if back.ID != e.ID || back.TypeName != e.TypeName {
		t.Errorf("identity changed: %s vs %s", back.Key(), e.Key())
	}
	if !back.CreatedAt.Equal(e.CreatedAt) || !back.UpdatedAt.Equal(e.UpdatedAt) {
		t.Errorf("timestamps changed: %v/%v vs %v/%v", back.CreatedAt, back.UpdatedAt, e.CreatedAt, e.UpdatedAt)
	}
	if !reflect.DeepEqual(back.Attributes, e.Attributes) {
		t.Errorf("attributes changed: %#v vs %#v", back.Attributes, e.Attributes)
	}
	if !reflect.DeepEqual(back.ToMap(), e.ToMap()) {
		t.Error("ToMap is not stable across a round trip")
	}
}

func TestToMap(t *testing.T) {
	e := New("BaseModel")
	e.Set(IDKey, "shadow")

	m := e.ToMap()
	if m[TypeKey] != "BaseModel" {
		t.Errorf("%s = %v", TypeKey, m[TypeKey])
	}
	if m[IDKey] != e.ID {
		t.Errorf("base id must win over attributes, got %v", m[IDKey])
	}
	if m[CreatedAtKey] != FormatTime(e.CreatedAt) || m[UpdatedAtKey] != FormatTime(e.UpdatedAt) {
		t.Errorf("unexpected timestamps %v / %v", m[CreatedAtKey], m[UpdatedAtKey])
	}
	if len(m[CreatedAtKey].(string)) != len("2006-01-02T15:04:05.000000") {
		t.Errorf("timestamp not in fixed layout: %v", m[CreatedAtKey])
	}
}

func TestTouch(t *testing.T) {
	e := New("BaseModel")
	e.UpdatedAt = e.UpdatedAt.Add(-time.Second)
	before := e.UpdatedAt
	created := e.CreatedAt

	e.Touch()
	if !e.UpdatedAt.After(before) {
		t.Errorf("Touch did not advance updated_at: %v -> %v", before, e.UpdatedAt)
	}
	if !e.CreatedAt.Equal(created) {
		t.Error("created_at must not move with Touch")
	}
}

func TestString(t *testing.T) {
	e := New("User")
	e.Set("first_name", "Betty")

	s := e.String()
	prefix := "[User] (" + e.ID + ") map["
	if !strings.HasPrefix(s, prefix) {
		t.Errorf("String() = %q, want prefix %q", s, prefix)
	}
	if !strings.Contains(s, "first_name:Betty") {
		t.Errorf("String() should list attributes, got %q", s)
	}
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		in   any
		want any
	}{
		{json.Number("7"), int64(7)},
		{json.Number("7.5"), 7.5},
		{json.Number("1e3"), float64(1000)},
		{"s", "s"},
		{true, true},
		{map[string]any{"n": json.Number("1")}, map[string]any{"n": int64(1)}},
	}
	for _, tt := range tests {
		if got := NormalizeValue(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("NormalizeValue(%#v) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}
