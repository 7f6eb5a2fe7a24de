// Package valueobject contains domain value objects for the Expense Tracker system.
package valueobject

// Optional is a partial-update field that distinguishes an absent key,
// an explicit null and a concrete value.
type Optional[T any] struct {
	present bool
	null    bool
	value   T
}

// Some returns a present, non-null Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{present: true, value: v}
}

// Null returns a present Optional carrying an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{present: true, null: true}
}

// Absent returns an Optional for a key that was not supplied.
func Absent[T any]() Optional[T] {
	return Optional[T]{}
}

// IsPresent reports whether the key was supplied, null or not.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// IsNull reports whether the key was supplied with an explicit null.
func (o Optional[T]) IsNull() bool {
	return o.present && o.null
}

// Get returns the value and whether a non-null value is held.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present && !o.null
}

// Ptr returns nil for an absent or null Optional, otherwise a pointer to a copy of the value.
func (o Optional[T]) Ptr() *T {
	if !o.present || o.null {
		return nil
	}
	v := o.value
	return &v
}

// FromPtr returns Null for a nil pointer and Some otherwise.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Null[T]()
	}
	return Some(*p)
}
