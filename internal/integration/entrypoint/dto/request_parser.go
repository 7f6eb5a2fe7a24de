// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// MaxBodyBytes is the largest request body DecodeBody accepts.
const MaxBodyBytes = 1 << 20

// maxDecimalExponent bounds the exponent Decimal accepts. Rounding and
// comparing a decimal costs time proportional to its exponent.
const maxDecimalExponent = 20

var (
	// ErrMalformedBody is returned when the request body is not a JSON object.
	ErrMalformedBody = errors.New("request body must be a JSON object")
	// ErrBodyTooLarge is returned when the request body exceeds MaxBodyBytes.
	ErrBodyTooLarge = errors.New("request body too large")
)

// Body is a decoded JSON object whose fields are read with type checks.
// Type errors are collected and reported together by Err.
// Empty strings and JSON null both read as an explicit null.
type Body struct {
	fields map[string]json.RawMessage
	errs   *domainerror.ValidationError
}

// DecodeBody reads a JSON object of at most MaxBodyBytes from r.
// An empty body decodes as an empty object.
func DecodeBody(r io.Reader) (*Body, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxBodyBytes+1))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrBodyTooLarge
		}
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(data) > MaxBodyBytes {
		return nil, ErrBodyTooLarge
	}

	fields := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, ErrMalformedBody
		}
		if fields == nil {
			// top-level null
			fields = map[string]json.RawMessage{}
		}
	}

	return &Body{
		fields: fields,
		errs:   domainerror.NewValidationError(),
	}, nil
}

// Errors returns the collected type errors. The result may be empty.
func (b *Body) Errors() *domainerror.ValidationError {
	return b.errs
}

// Err returns the collected type errors, or nil.
func (b *Body) Err() error {
	return b.errs.OrNil()
}

func (b *Body) raw(key string) (json.RawMessage, bool) {
	raw, ok := b.fields[key]
	if !ok {
		return nil, false
	}
	return raw, true
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// label renders a field key the way validation messages name it.
func label(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

// String reads key as a string.
func (b *Body) String(key string) valueobject.Optional[string] {
	raw, ok := b.raw(key)
	if !ok {
		return valueobject.Absent[string]()
	}
	if isNull(raw) {
		return valueobject.Null[string]()
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		b.errs.Add(key, fmt.Sprintf("The %s field must be a string.", label(key)))
		return valueobject.Absent[string]()
	}
	if s == "" {
		return valueobject.Null[string]()
	}
	return valueobject.Some(s)
}

// Decimal reads key as a JSON number or a numeric string.
func (b *Body) Decimal(key string) valueobject.Optional[decimal.Decimal] {
	raw, ok := b.raw(key)
	if !ok {
		return valueobject.Absent[decimal.Decimal]()
	}
	if isNull(raw) {
		return valueobject.Null[decimal.Decimal]()
	}

	text := strings.TrimSpace(string(raw))
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			b.errs.Add(key, fmt.Sprintf("The %s field must be a number.", label(key)))
			return valueobject.Absent[decimal.Decimal]()
		}
		text = strings.TrimSpace(s)
		if text == "" {
			return valueobject.Null[decimal.Decimal]()
		}
	}

	d, err := decimal.NewFromString(text)
	if err != nil || d.Exponent() < -maxDecimalExponent || d.Exponent() > maxDecimalExponent {
		b.errs.Add(key, fmt.Sprintf("The %s field must be a number.", label(key)))
		return valueobject.Absent[decimal.Decimal]()
	}
	return valueobject.Some(d)
}

// Date reads key as a calendar date: YYYY-MM-DD or an RFC 3339 timestamp.
func (b *Body) Date(key string) valueobject.Optional[time.Time] {
	s := b.String(key)
	if s.IsNull() {
		return valueobject.Null[time.Time]()
	}
	value, ok := s.Get()
	if !ok {
		return valueobject.Absent[time.Time]()
	}

	if t, err := ParseDate(value); err == nil {
		return valueobject.Some(t)
	}
	b.errs.Add(key, fmt.Sprintf("The %s field must be a valid date.", label(key)))
	return valueobject.Absent[time.Time]()
}

// UUID reads key as an id. Anything that is not a UUID cannot reference a row.
func (b *Body) UUID(key string) valueobject.Optional[uuid.UUID] {
	raw, ok := b.raw(key)
	if !ok {
		return valueobject.Absent[uuid.UUID]()
	}
	if isNull(raw) {
		return valueobject.Null[uuid.UUID]()
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return valueobject.Null[uuid.UUID]()
		}
		if id, err := uuid.Parse(s); err == nil {
			return valueobject.Some(id)
		}
	}
	b.errs.Add(key, fmt.Sprintf("The selected %s is invalid.", label(key)))
	return valueobject.Absent[uuid.UUID]()
}

// ParseDate parses YYYY-MM-DD, falling back to the date part of an RFC 3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
