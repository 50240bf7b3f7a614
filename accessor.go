package fieldlens

import (
	"fmt"
	"reflect"
	"time"
)

// fieldAccessible reports whether f may be accessed without breaking scope:
// either the field is public or its accessibility flag has been opened.
func fieldAccessible(f Field) bool {
	return f.IsPublic() || f.Accessible()
}

// forceAccessible opens f's accessibility flag. This is the only path by
// which non-public fields become readable or writable. The flag transitions
// monotonically from closed to open, so concurrent forcing is a benign
// race and repeated calls are idempotent.
func forceAccessible(f Field) {
	if f.Accessible() {
		return
	}
	f.SetAccessible()
	emitAccessForced(typeName(f.DeclaringType()), f.Name())
}

// ReadField returns the field's current value on target. Static fields
// ignore the target; pass a nil Instance for them.
//
// With ForceAccess(), an inaccessible field is opened before the read.
// Without it, an inaccessible field fails with ErrAccessDenied.
func ReadField(f Field, target Instance, opts ...Option) (any, error) {
	cfg := applyOptions(opts)
	start := time.Now()
	v, err := readField(f, target, cfg.force)
	if f != nil {
		emitReadComplete(typeName(f.DeclaringType()), f.Name(), time.Since(start), err)
	}
	return v, err
}

func readField(f Field, target Instance, force bool) (any, error) {
	if f == nil {
		return nil, invalidArg("field must not be nil")
	}
	if force && !f.Accessible() {
		forceAccessible(f)
	}
	if !fieldAccessible(f) {
		return nil, newAccessError(ErrAccessDenied, "read", f.Name(), nil)
	}
	return f.Get(target)
}

// WriteField mutates the field's storage on target (or the type's static
// storage for static fields, ignoring target).
//
// Accessibility is handled as in ReadField. The write additionally fails
// with ErrImmutableField if the field is final, and with ErrTypeMismatch if
// value's runtime type is not assignable to the field's declared type.
func WriteField(f Field, target Instance, value any, opts ...Option) error {
	cfg := applyOptions(opts)
	start := time.Now()
	err := writeField(f, target, value, cfg.force)
	if f != nil {
		emitWriteComplete(typeName(f.DeclaringType()), f.Name(), time.Since(start), err)
	}
	return err
}

func writeField(f Field, target Instance, value any, force bool) error {
	if f == nil {
		return invalidArg("field must not be nil")
	}
	if force && !f.Accessible() {
		forceAccessible(f)
	}
	if !fieldAccessible(f) {
		return newAccessError(ErrAccessDenied, "write", f.Name(), nil)
	}
	if f.IsFinal() {
		return newAccessError(ErrImmutableField, "write", f.Name(), nil)
	}
	if !assignable(value, f.Type()) {
		return newAccessError(ErrTypeMismatch, "write", f.Name(),
			fmt.Errorf("value of type %T is not assignable to %s", value, f.Type()))
	}
	return f.Set(target, value)
}

// assignable reports whether value may be stored in a field of type ft.
// An untyped nil is assignable to any nilable kind.
func assignable(value any, ft reflect.Type) bool {
	if ft == nil {
		return false
	}
	if value == nil {
		switch ft.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
			reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
			return true
		}
		return false
	}
	return reflect.TypeOf(value).AssignableTo(ft)
}
