// Package error defines domain-specific errors for the Expense Tracker application.
package error

import (
	"fmt"
	"sort"
)

// ErrCodeValidation is the code carried by every ValidationError.
const ErrCodeValidation = "VAL-010001"

// ValidationError collects per-field validation messages.
// Fields keeps messages in the order they were added for each field.
type ValidationError struct {
	Fields map[string][]string
	order  []string
}

// NewValidationError creates an empty ValidationError.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add records a message for field.
func (e *ValidationError) Add(field, message string) {
	if _, ok := e.Fields[field]; !ok {
		e.order = append(e.order, field)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// Merge copies all messages from other into e.
func (e *ValidationError) Merge(other *ValidationError) {
	if other == nil {
		return
	}
	for _, field := range other.fieldOrder() {
		for _, msg := range other.Fields[field] {
			e.Add(field, msg)
		}
	}
}

// Has reports whether field has at least one message.
func (e *ValidationError) Has(field string) bool {
	return len(e.Fields[field]) > 0
}

// HasErrors reports whether any message was recorded.
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// OrNil returns e as an error when it holds messages, nil otherwise.
func (e *ValidationError) OrNil() error {
	if e == nil || !e.HasErrors() {
		return nil
	}
	return e
}

// Error returns the first message, suffixed with the number of remaining ones.
func (e *ValidationError) Error() string {
	order := e.fieldOrder()
	if len(order) == 0 {
		return "The given data was invalid."
	}

	first := e.Fields[order[0]][0]
	remaining := -1
	for _, msgs := range e.Fields {
		remaining += len(msgs)
	}

	switch remaining {
	case 0:
		return first
	case 1:
		return fmt.Sprintf("%s (and 1 more error)", first)
	default:
		return fmt.Sprintf("%s (and %d more errors)", first, remaining)
	}
}

// fieldOrder returns insertion order, falling back to sorted keys for literals built without Add.
func (e *ValidationError) fieldOrder() []string {
	if len(e.order) == len(e.Fields) {
		return e.order
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
