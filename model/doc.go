/*
Package model defines the Entity, the single record shape the filestore persists.

An Entity carries a type name (the discriminant), a UUID identifier, creation and
update timestamps with microsecond precision, and an open attribute bag whose
values are strings, int64, float64, booleans or nested maps and slices.

Flat map:
Every entity converts to and from a flat map suitable for JSON encoding:

	{
	    "__type__":   "User",
	    "id":         "0b6f4c1e-...",
	    "created_at": "2023-01-01T12:00:00.000000",
	    "updated_at": "2023-01-01T12:00:00.000000",
	    "email":      "betty@example.com"
	}

FromAttributes and ToMap are exact inverses, so an entity survives any number of
save/reload cycles unchanged.
*/
package model
