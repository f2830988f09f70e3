/*
Package storagemodels defines the data structures shared by the filestore engine
and its backends.

Key Types:

Document:
The whole-store snapshot. Top-level keys are composite keys, values are flat
records:

	doc := storagemodels.Document{
	    "User.1f0e...": {
	        "__type__":   "User",
	        "id":         "1f0e...",
	        "created_at": "2023-01-01T12:00:00.000000",
	        "updated_at": "2023-01-01T12:00:00.000000",
	        "email":      "betty@example.com",
	    },
	}

ListParams:
Parameters for listing entities:

	params := &ListParams{TypeName: "User"}

Backends never look inside a Document; they store its encoded bytes as one unit.
*/
package storagemodels
