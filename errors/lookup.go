// Package errors defines the typed error surface of the tacular library.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies a lookup failure.
type Code string

const (
	// CodeNotFound indicates no record matched the given key.
	CodeNotFound Code = "not-found"
	// CodeBadIdentifier indicates a key that cannot be a valid identifier.
	CodeBadIdentifier Code = "bad-identifier"
	// CodeAmbiguousMass indicates a mass query matched records with
	// differing elemental compositions.
	CodeAmbiguousMass Code = "ambiguous-mass"
	// CodeNoMass indicates the record carries no mass for the requested mode.
	CodeNoMass Code = "no-mass"
	// CodeNoComposition indicates the record carries no elemental composition.
	CodeNoComposition Code = "no-composition"
	// CodeDuplicateID indicates a table was built with a repeated identifier.
	CodeDuplicateID Code = "duplicate-id"
	// CodeDecode indicates a bundled or user-supplied dataset could not be decoded.
	CodeDecode Code = "decode-error"
	// CodeEmptyTable indicates an operation that needs at least one record
	// was applied to an empty selection.
	CodeEmptyTable Code = "empty-table"
)

// Lookup describes a failed table operation with its code, the table it was
// issued against, and the offending key.
//
//nolint:errname // public API name uses the lookup domain term.
type Lookup struct {
	Code    Code
	Table   string
	Key     string
	Message string
}

// Error formats the lookup error for display.
func (e *Lookup) Error() string {
	if e == nil {
		return "lookup <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s]", e.Code))
	if e.Table != "" {
		b.WriteString(" " + e.Table)
	}
	if e.Key != "" {
		b.WriteString(fmt.Sprintf(" %q", e.Key))
	}
	if e.Message != "" {
		b.WriteString(": " + e.Message)
	}
	return b.String()
}

// NewLookup builds a Lookup error with a code, table, and key.
func NewLookup(code Code, table, key string) *Lookup {
	return &Lookup{Code: code, Table: table, Key: key}
}

// NewLookupf builds a Lookup error with a formatted message.
func NewLookupf(code Code, table, key, format string, args ...any) *Lookup {
	return &Lookup{Code: code, Table: table, Key: key, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds the standard missing-key error for a table.
func NotFound(table, key string) *Lookup {
	return &Lookup{Code: CodeNotFound, Table: table, Key: key, Message: "no record matches key"}
}

// AsLookup extracts a Lookup error from an error chain.
func AsLookup(err error) (*Lookup, bool) {
	if err == nil {
		return nil, false
	}
	var lookup *Lookup
	if errors.As(err, &lookup) && lookup != nil {
		return lookup, true
	}
	return nil, false
}

// IsCode reports whether the error chain carries a Lookup error with the code.
func IsCode(err error, code Code) bool {
	lookup, ok := AsLookup(err)
	return ok && lookup.Code == code
}

// IsNotFound reports whether the error is a missing-key lookup error.
func IsNotFound(err error) bool {
	return IsCode(err, CodeNotFound)
}
