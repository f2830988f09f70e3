/*
Package registry manages type registration for the filestore.

The registry enables:
  - Polymorphic entity storage in a single JSON document
  - Type resolution based on the "__type__" discriminant of each stored record
  - A closed, explicit set of known types instead of name evaluation

Type Registry:
Maps entity type names to constructor functions:

	types := registry.New()
	types.Register("User", func(attrs map[string]any) (*model.Entity, error) {
	    return model.FromAttributes("User", attrs)
	})

	e, err := types.Rehydrate("User", attrs)

A Registry is an explicit value, owned by whatever composes the system. It should
be fully populated during initialization and treated as read-only afterwards.
*/
package registry
