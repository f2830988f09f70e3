/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package filestore

import (
	"context"

	"github.com/suparena/filestore/engine"
	"github.com/suparena/filestore/errors"
	"github.com/suparena/filestore/model"
	"github.com/suparena/filestore/storagemodels"
)

// Service is the operation surface used by the command line and other callers.
// Every mutating call persists the whole store before returning. Calls are
// serialized by the engine lock, so a Service may be shared across goroutines
// as long as callers do not mutate the entities Show and List return.
type Service struct {
	engine *engine.Engine
}

// NewService wraps eng.
func NewService(eng *engine.Engine) *Service {
	return &Service{engine: eng}
}

func (s *Service) checkType(typeName string) error {
	if typeName == "" {
		return errors.NewValidationError("type", "class name missing")
	}
	if !s.engine.Types().Has(typeName) {
		return errors.NewUnknownTypeError(typeName)
	}
	return nil
}

func (s *Service) checkTarget(typeName, id string) error {
	if err := s.checkType(typeName); err != nil {
		return err
	}
	if id == "" {
		return errors.NewValidationError("id", "instance id missing")
	}
	return nil
}

// Create makes a new entity of typeName, persists the store and returns the id.
func (s *Service) Create(ctx context.Context, typeName string) (string, error) {
	if err := s.checkType(typeName); err != nil {
		return "", err
	}
	ent := model.New(typeName)
	s.engine.New(ent)
	if err := s.engine.Save(ctx); err != nil {
		return "", err
	}
	return ent.ID, nil
}

// Show returns the entity stored under typeName and id. A miss is reported
// through the boolean, not as an error.
func (s *Service) Show(typeName, id string) (*model.Entity, bool, error) {
	if err := s.checkTarget(typeName, id); err != nil {
		return nil, false, err
	}
	ent, ok := s.engine.Get(typeName, id)
	return ent, ok, nil
}

// List returns every entity, or only those of typeName when it is not empty,
// ordered by composite key.
func (s *Service) List(typeName string) ([]*model.Entity, error) {
	if typeName != "" {
		if err := s.checkType(typeName); err != nil {
			return nil, err
		}
	}
	return s.engine.List(&storagemodels.ListParams{TypeName: typeName}), nil
}

// Destroy removes the entity and persists the store.
func (s *Service) Destroy(ctx context.Context, typeName, id string) error {
	if err := s.checkTarget(typeName, id); err != nil {
		return err
	}
	if !s.engine.Delete(typeName, id) {
		return errors.NewNotFoundError(typeName, engine.Key(typeName, id))
	}
	return s.engine.Save(ctx)
}

// Update sets attr on the entity from its textual form, converting it to the
// type the attribute already holds. The entity is touched and the store saved.
func (s *Service) Update(ctx context.Context, typeName, id, attr, value string) error {
	if err := s.checkTarget(typeName, id); err != nil {
		return err
	}
	return s.engine.Update(ctx, typeName, id, func(ent *model.Entity) error {
		if attr == "" {
			return errors.NewValidationError("attribute", "attribute name missing")
		}
		if IsProtected(attr) {
			return errors.NewProtectedFieldError(attr)
		}

		prior, present := ent.Get(attr)
		coerced, err := Coerce(attr, prior, present, value)
		if err != nil {
			return err
		}
		ent.Set(attr, coerced)
		return nil
	})
}
