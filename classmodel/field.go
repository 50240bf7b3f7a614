package classmodel

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/zoobzio/fieldlens"
)

// ClassField is one declared field of exactly one Class. It implements
// fieldlens.Field. Its identity is the (declaring class, name) pair: two
// fields from different classes are distinct even when same-named.
type ClassField struct {
	name  string
	owner *Class
	typ   reflect.Type
	mods  Modifier

	// Accessibility flag. Monotonic: transitions closed to open, never
	// back, so concurrent SetAccessible calls are a benign race.
	open atomic.Bool
}

// Name returns the field name.
func (f *ClassField) Name() string { return f.name }

// DeclaringType returns the class or interface that declares f.
func (f *ClassField) DeclaringType() fieldlens.Type { return f.owner }

// Type returns the declared value type.
func (f *ClassField) Type() reflect.Type { return f.typ }

// IsPublic reports whether f is publicly visible.
func (f *ClassField) IsPublic() bool { return f.mods.IsPublic() }

// IsStatic reports whether f belongs to the class rather than to instances.
func (f *ClassField) IsStatic() bool { return f.mods.IsStatic() }

// IsFinal reports whether f is immutable after initialization.
func (f *ClassField) IsFinal() bool { return f.mods.IsFinal() }

// Accessible reports whether the accessibility flag has been opened.
func (f *ClassField) Accessible() bool { return f.open.Load() }

// SetAccessible opens the accessibility flag. Idempotent.
func (f *ClassField) SetAccessible() { f.open.Store(true) }

// Get returns the field's current value. Static fields read class storage
// and ignore target; instance fields require a target object whose class
// inherits f's declaring class.
func (f *ClassField) Get(target fieldlens.Instance) (any, error) {
	if f.IsStatic() {
		return f.owner.staticValue(f.name), nil
	}
	obj, err := f.object(target)
	if err != nil {
		return nil, err
	}
	return obj.get(f), nil
}

// Set mutates the field's storage: class storage for static fields
// (ignoring target), per-object storage otherwise.
func (f *ClassField) Set(target fieldlens.Instance, value any) error {
	v, err := coerce(value, f.typ)
	if err != nil {
		return fmt.Errorf("field %s.%s: %w", f.owner.name, f.name, err)
	}
	if f.IsStatic() {
		f.owner.setStatic(f.name, v)
		return nil
	}
	obj, err := f.object(target)
	if err != nil {
		return err
	}
	obj.set(f, v)
	return nil
}

// object validates target as a class-model object carrying f's declaring
// class in its superclass chain.
func (f *ClassField) object(target fieldlens.Instance) (*Object, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: instance field %s.%s requires a target object",
			fieldlens.ErrInvalidArgument, f.owner.name, f.name)
	}
	obj, ok := target.(*Object)
	if !ok || obj == nil {
		return nil, fmt.Errorf("%w: target is not a class-model object", fieldlens.ErrInvalidArgument)
	}
	if !obj.class.extends(f.owner) {
		return nil, fmt.Errorf("%w: type %s does not inherit field %s.%s",
			fieldlens.ErrInvalidArgument, obj.class.name, f.owner.name, f.name)
	}
	return obj, nil
}

// coerce converts value into storage of the declared type. A nil value
// becomes the zero value for nilable kinds and is rejected otherwise.
func coerce(value any, typ reflect.Type) (reflect.Value, error) {
	if value == nil {
		switch typ.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
			reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
			return reflect.Zero(typ), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: nil is not assignable to %s", fieldlens.ErrTypeMismatch, typ)
	}
	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(typ) {
		return reflect.Value{}, fmt.Errorf("%w: value of type %T is not assignable to %s",
			fieldlens.ErrTypeMismatch, value, typ)
	}
	// Store under the declared type so interface-typed fields keep their
	// declared kind.
	out := reflect.New(typ).Elem()
	out.Set(rv)
	return out, nil
}

var _ fieldlens.Field = (*ClassField)(nil)
