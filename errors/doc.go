/*
Package errors provides semantic error types for the filestore library.

The package defines the failure taxonomy of the object store with specific types
that can be checked using the standard errors.Is() function or the provided helper
functions.

Common Errors:

	var (
	    ErrNotFound        = errors.New("entity not found")
	    ErrUnknownType     = errors.New("unknown entity type")
	    ErrFormat          = errors.New("invalid format")
	    ErrDeserialization = errors.New("deserialization failed")
	    ErrIO              = errors.New("storage i/o failed")
	    ErrProtectedField  = errors.New("protected field")
	    ErrInvalidInput    = errors.New("invalid input")
	)

Usage:

	// A missing entity is a normal negative result
	err := svc.Destroy(ctx, "User", id)
	if errors.IsNotFound(err) {
	    fmt.Println("** no instance found **")
	    return nil
	}

	// A failed reload keeps its cause
	if err := eng.Reload(ctx); errors.IsUnknownType(err) {
	    // the document names a type the registry does not know
	}

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
