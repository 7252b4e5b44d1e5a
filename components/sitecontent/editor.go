package sitecontent

import (
	"context"
	"fmt"
	"sync"
)

// AppendItem returns a new slice with item appended. items is never mutated.
func AppendItem[E any](items []E, item E) []E {
	out := make([]E, len(items), len(items)+1)
	copy(out, items)
	return append(out, item)
}

// RemoveAt returns a new slice without the element at index.
func RemoveAt[E any](items []E, index int) ([]E, error) {
	if index < 0 || index >= len(items) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(items))
	}
	out := make([]E, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...), nil
}

// RemoveByID returns a new slice without elements whose id matches. An
// unknown id yields an unchanged copy.
func RemoveByID[E any](items []E, id string, idOf func(E) string) []E {
	out := make([]E, 0, len(items))
	for _, item := range items {
		if idOf(item) == id {
			continue
		}
		out = append(out, item)
	}
	return out
}

// UpdateAt returns a new slice where the element at index was passed through fn.
func UpdateAt[E any](items []E, index int, fn func(*E)) ([]E, error) {
	if index < 0 || index >= len(items) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(items))
	}
	out := make([]E, len(items))
	copy(out, items)
	fn(&out[index])
	return out, nil
}

// MoveItem returns a new slice with the element at from relocated to to.
func MoveItem[E any](items []E, from, to int) ([]E, error) {
	if from < 0 || from >= len(items) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, from, len(items))
	}
	if to < 0 || to >= len(items) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, to, len(items))
	}
	out := make([]E, 0, len(items))
	out = append(out, items[:from]...)
	out = append(out, items[from+1:]...)
	moved := items[from]
	out = append(out[:to], append([]E{moved}, out[to:]...)...)
	return out, nil
}

// FieldKind selects the field primitive a form renders for a scalar field.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldTextarea FieldKind = "textarea"
	FieldColor    FieldKind = "color"
	FieldImage    FieldKind = "image"
)

// FieldSpec describes one bindable scalar field of a section.
type FieldSpec struct {
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Kind  FieldKind `json:"kind"`
}

type fieldBinding[T SectionValue] struct {
	spec FieldSpec
	get  func(T) string
	set  func(*T, string)
}

func bind[T SectionValue](key, label string, kind FieldKind, field func(*T) *string) fieldBinding[T] {
	return fieldBinding[T]{
		spec: FieldSpec{Key: key, Label: label, Kind: kind},
		get: func(v T) string {
			return *field(&v)
		},
		set: func(v *T, value string) {
			*field(v) = value
		},
	}
}

// SectionEditor is the type-erased view of an editor used by generic forms,
// transports and the Service.
type SectionEditor interface {
	Section() SectionID
	Current() SectionValue
	Fields() []FieldSpec
	Field(key string) (string, error)
	SetField(ctx context.Context, key, value string) error
}

// Editor holds the working value of one section and emits a complete
// replacement through onUpdate on every change.
type Editor[T SectionValue] struct {
	mu       sync.Mutex
	value    T
	onUpdate func(ctx context.Context, value T) error
	fields   []fieldBinding[T]
}

func newEditor[T SectionValue](value T, onUpdate func(context.Context, T) error, fields ...fieldBinding[T]) *Editor[T] {
	if onUpdate == nil {
		onUpdate = func(context.Context, T) error { return nil }
	}
	return &Editor[T]{
		value:    cloneValue(value),
		onUpdate: onUpdate,
		fields:   fields,
	}
}

// NewEditor builds an editor without scalar field bindings.
func NewEditor[T SectionValue](value T, onUpdate func(context.Context, T) error) *Editor[T] {
	return newEditor(value, onUpdate)
}

func cloneValue[T SectionValue](value T) T {
	return value.cloneSection().(T)
}

// Section implements SectionEditor.
func (e *Editor[T]) Section() SectionID {
	var zero T
	return zero.Section()
}

// Value returns a copy of the working value.
func (e *Editor[T]) Value() T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneValue(e.value)
}

// Current implements SectionEditor.
func (e *Editor[T]) Current() SectionValue {
	return e.Value()
}

// Replace swaps the working value in full.
func (e *Editor[T]) Replace(ctx context.Context, value T) error {
	return e.Edit(ctx, func(v *T) error {
		*v = cloneValue(value)
		return nil
	})
}

// Edit applies fn to a copy of the working value. The copy becomes the
// working value only when fn and onUpdate both succeed.
func (e *Editor[T]) Edit(ctx context.Context, fn func(*T) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	next := cloneValue(e.value)
	if err := fn(&next); err != nil {
		return err
	}
	if err := e.onUpdate(ctx, cloneValue(next)); err != nil {
		return err
	}
	e.value = next
	return nil
}

// Fields implements SectionEditor.
func (e *Editor[T]) Fields() []FieldSpec {
	specs := make([]FieldSpec, len(e.fields))
	for i, f := range e.fields {
		specs[i] = f.spec
	}
	return specs
}

// Field reads a bound scalar field.
func (e *Editor[T]) Field(key string) (string, error) {
	binding, err := e.binding(key)
	if err != nil {
		return "", err
	}
	return binding.get(e.Value()), nil
}

// SetField writes a bound scalar field. Color fields are normalized.
func (e *Editor[T]) SetField(ctx context.Context, key, value string) error {
	binding, err := e.binding(key)
	if err != nil {
		return err
	}
	if binding.spec.Kind == FieldColor {
		value = NormalizeHex(value)
	}
	return e.Edit(ctx, func(v *T) error {
		binding.set(v, value)
		return nil
	})
}

func (e *Editor[T]) binding(key string) (fieldBinding[T], error) {
	for _, f := range e.fields {
		if f.spec.Key == key {
			return f, nil
		}
	}
	return fieldBinding[T]{}, fmt.Errorf("%w: %s.%s", ErrUnknownField, e.Section(), key)
}
