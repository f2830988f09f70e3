/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	"github.com/suparena/filestore/registry"
)

// Type names of the closed model set.
const (
	BaseModel = "BaseModel"
	User      = "User"
	State     = "State"
	City      = "City"
	Amenity   = "Amenity"
	Place     = "Place"
	Review    = "Review"
)

// All lists every model type in registration order.
var All = []string{BaseModel, User, State, City, Amenity, Place, Review}

// Register adds every model type to r.
func Register(r *registry.Registry) {
	for _, name := range All {
		r.RegisterPlain(name)
	}
}

// NewRegistry returns a registry populated with the model set.
func NewRegistry() *registry.Registry {
	r := registry.New()
	Register(r)
	return r
}
