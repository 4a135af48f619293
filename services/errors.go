// services/errors.go
package services

import (
	"errors"
	"sort"
	"strings"
)

// errors the controllers switch on
var (
	ErrDishNotFound  = errors.New("dish not found")
	ErrPhotoNotFound = errors.New("dish has no photo")
)

// ValidationError lists every violated rule, keyed by field name.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, strings.Join(e.Fields[k], " "))
	}
	return "validation failed: " + strings.Join(parts, " ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) empty() bool {
	return len(e.Fields) == 0
}

// UnexpectedError carries any failure of create-or-replace that is not a
// validation failure. The message of the cause is reported as is.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string { return e.Err.Error() }

func (e *UnexpectedError) Unwrap() error { return e.Err }
