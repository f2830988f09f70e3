/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package commands

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/suparena/filestore/errors"
)

// Console messages.
const (
	msgClassMissing     = "** class name missing **"
	msgClassUnknown     = "** class doesn't exist **"
	msgIDMissing        = "** instance id missing **"
	msgNoInstance       = "** no instance found **"
	msgAttributeMissing = "** attribute name missing **"
	msgValueMissing     = "** value missing **"
	msgProtected        = "** attribute can't be updated **"
)

// explain prints the console message for user errors and reports whether err
// was one. Other errors are left to the caller.
func explain(w io.Writer, err error) bool {
	var msg string
	var verr *errors.ValidationError

	switch {
	case stderrors.As(err, &verr):
		switch verr.Field {
		case "type":
			msg = msgClassMissing
		case "id":
			msg = msgIDMissing
		case "attribute":
			msg = msgAttributeMissing
		default:
			return false
		}
	case errors.IsUnknownType(err):
		msg = msgClassUnknown
	case errors.IsNotFound(err):
		msg = msgNoInstance
	case errors.IsProtectedField(err):
		msg = msgProtected
	case errors.IsFormatError(err):
		msg = fmt.Sprintf("** %v **", err)
	default:
		return false
	}
	fmt.Fprintln(w, msg)
	return true
}

// argAt returns args[i] or "" when it is absent.
func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
