/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when no entity is stored under a composite key
	ErrNotFound = errors.New("entity not found")

	// ErrUnknownType is returned when a discriminant has no registered constructor
	ErrUnknownType = errors.New("unknown entity type")

	// ErrFormat is returned when a timestamp or a coerced attribute value cannot be parsed
	ErrFormat = errors.New("invalid format")

	// ErrDeserialization is returned when the backing document cannot be decoded
	ErrDeserialization = errors.New("deserialization failed")

	// ErrIO is returned when the backing document cannot be read or written
	ErrIO = errors.New("storage i/o failed")

	// ErrProtectedField is returned when an update targets an identity or timestamp field
	ErrProtectedField = errors.New("protected field")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// UnknownTypeError is returned by the type registry for an unregistered discriminant
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown entity type %q", e.Type)
}

func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}

// FormatError reports a value that does not match the expected format for a field
type FormatError struct {
	Field string
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid format for field %q (value %q): %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid format for field %q (value %q)", e.Field, e.Value)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// DeserializationError wraps any failure to turn the backing document back into entities.
// The cause stays reachable through errors.Is/As, so an unknown discriminant matches
// both ErrDeserialization and ErrUnknownType.
type DeserializationError struct {
	Key string
	Err error
}

func (e *DeserializationError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("deserialization failed for %q: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("deserialization failed: %v", e.Err)
}

func (e *DeserializationError) Is(target error) bool {
	return target == ErrDeserialization
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// IOError represents a failed read or write against the backing store
type IOError struct {
	Op       string
	Location string
	Err      error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Location, e.Err)
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ProtectedFieldError is returned when an update targets a field the store manages itself
type ProtectedFieldError struct {
	Field string
}

func (e *ProtectedFieldError) Error() string {
	return fmt.Sprintf("field %q is protected and cannot be updated", e.Field)
}

func (e *ProtectedFieldError) Is(target error) bool {
	return target == ErrProtectedField
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewUnknownTypeError creates a new UnknownTypeError
func NewUnknownTypeError(entityType string) error {
	return &UnknownTypeError{Type: entityType}
}

// NewFormatError creates a new FormatError
func NewFormatError(field, value string, cause error) error {
	return &FormatError{Field: field, Value: value, Err: cause}
}

// NewDeserializationError creates a new DeserializationError
func NewDeserializationError(key string, cause error) error {
	return &DeserializationError{Key: key, Err: cause}
}

// NewIOError creates a new IOError
func NewIOError(op, location string, cause error) error {
	return &IOError{Op: op, Location: location, Err: cause}
}

// NewProtectedFieldError creates a new ProtectedFieldError
func NewProtectedFieldError(field string) error {
	return &ProtectedFieldError{Field: field}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnknownType checks if an error is an unknown type error
func IsUnknownType(err error) bool {
	return errors.Is(err, ErrUnknownType)
}

// IsFormatError checks if an error is a format error
func IsFormatError(err error) bool {
	return errors.Is(err, ErrFormat)
}

// IsDeserializationError checks if an error is a deserialization error
func IsDeserializationError(err error) bool {
	return errors.Is(err, ErrDeserialization)
}

// IsIOError checks if an error is a storage i/o error
func IsIOError(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsProtectedField checks if an error is a protected field error
func IsProtectedField(err error) bool {
	return errors.Is(err, ErrProtectedField)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
