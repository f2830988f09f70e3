/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	"fmt"

	"github.com/suparena/filestore/model"
)

// Attribute names a User carries.
const (
	UserEmail     = "email"
	UserPassword  = "password"
	UserFirstName = "first_name"
	UserLastName  = "last_name"
)

// UserView is a typed view over an entity of type User. The underlying entity
// stays the source of truth; the view only reads and writes its attributes.
type UserView struct {
	*model.Entity
}

// AsUser wraps e, failing if e is not a User.
func AsUser(e *model.Entity) (UserView, error) {
	if e == nil || e.TypeName != User {
		return UserView{}, fmt.Errorf("entity is not a %s", User)
	}
	return UserView{Entity: e}, nil
}

func (u UserView) str(name string) string {
	v, _ := u.Get(name)
	s, _ := v.(string)
	return s
}

// Email returns the user's email, or "" if unset.
func (u UserView) Email() string { return u.str(UserEmail) }

// Password returns the user's password, or "" if unset.
func (u UserView) Password() string { return u.str(UserPassword) }

// FirstName returns the user's first name, or "" if unset.
func (u UserView) FirstName() string { return u.str(UserFirstName) }

// LastName returns the user's last name, or "" if unset.
func (u UserView) LastName() string { return u.str(UserLastName) }

func (u UserView) SetEmail(v string)     { u.Set(UserEmail, v) }
func (u UserView) SetPassword(v string)  { u.Set(UserPassword, v) }
func (u UserView) SetFirstName(v string) { u.Set(UserFirstName, v) }
func (u UserView) SetLastName(v string)  { u.Set(UserLastName, v) }
