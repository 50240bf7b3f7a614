// Package structmodel adapts native Go structs to the fieldlens descriptor
// interfaces.
//
// Exported struct fields form the public surface; unexported fields are
// non-public and only reachable with fieldlens.ForceAccess(), which reads
// and writes them through their addresses. The first embedded struct field
// acts as the superclass link, so resolution walks embedded types the way
// it walks a superclass chain. Go interfaces carry no fields, so the
// adapter exposes an empty interface set and the interface phase of
// resolution never matches.
//
// Field metadata for scanned types comes from sentinel; types that were
// never scanned fall back to plain reflection. A `lens:"final"` struct tag
// marks a field immutable through this package:
//
//	type Account struct {
//		ID      string `lens:"final"`
//		Balance int64
//		pin     string
//	}
//
//	st, _ := structmodel.For[Account]()
//	obj, _ := structmodel.ValueOf(&Account{pin: "0000"})
//	v, _ := fieldlens.ReadNamedField(obj, "pin", fieldlens.ForceAccess())
//
// There are no static fields in this model: every field is instance-scoped.
package structmodel

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/zoobzio/sentinel"

	"github.com/zoobzio/fieldlens"
)

func init() {
	// Register the lens tag with sentinel so scans surface it.
	sentinel.Tag("lens")
}

// StructType describes one Go struct type. It implements fieldlens.Type.
// Descriptors are cached per reflect.Type, so repeated lookups return the
// same handles (and therefore share accessibility flags).
type StructType struct {
	rt         reflect.Type
	super      *StructType
	embedIndex int // field index of the embedded superclass, -1 if none
	fields     []*StructField
	byName     map[string]*StructField
}

var (
	types   = make(map[reflect.Type]*StructType)
	typesMu sync.RWMutex
)

// For returns the descriptor for the struct type T, registering T's
// metadata with sentinel first so tag information is available.
func For[T any]() (*StructType, error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct type", fieldlens.ErrInvalidArgument, rt)
	}
	sentinel.Scan[T]()
	return typeOf(rt), nil
}

// Of returns the descriptor for v's struct type. v may be a struct value or
// a pointer to one.
func Of(v any) (*StructType, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: value must not be nil", fieldlens.ErrInvalidArgument)
	}
	rt := reflect.TypeOf(v)
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct type", fieldlens.ErrInvalidArgument, rt)
	}
	return typeOf(rt), nil
}

// typeOf returns the cached descriptor for rt, building it on first use.
func typeOf(rt reflect.Type) *StructType {
	// Fast path: read-lock cache check.
	typesMu.RLock()
	if cached, ok := types[rt]; ok {
		typesMu.RUnlock()
		return cached
	}
	typesMu.RUnlock()

	// Slow path: build and cache with write-lock.
	typesMu.Lock()
	defer typesMu.Unlock()
	return buildLocked(rt)
}

// buildLocked builds the descriptor for rt and every embedded ancestor.
// Callers must hold the write lock.
func buildLocked(rt reflect.Type) *StructType {
	if cached, ok := types[rt]; ok {
		return cached
	}

	st := &StructType{
		rt:         rt,
		embedIndex: -1,
		byName:     make(map[string]*StructField),
	}
	types[rt] = st

	meta := lookupMeta(rt)
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && st.super == nil {
			// First embedded struct is the superclass link; later
			// embeddings are treated as ordinary declared fields.
			st.super = buildLocked(sf.Type)
			st.embedIndex = i
			continue
		}
		f := &StructField{
			owner: st,
			sf:    sf,
			name:  sf.Name,
			typ:   sf.Type,
			index: i,
			final: lensTag(sf, meta) == "final",
		}
		st.fields = append(st.fields, f)
		st.byName[sf.Name] = f
	}
	return st
}

// lookupMeta returns sentinel metadata for rt if the type was scanned.
func lookupMeta(rt reflect.Type) *sentinel.Metadata {
	if meta, ok := sentinel.Lookup(rt.String()); ok {
		return &meta
	}
	return nil
}

// lensTag extracts the lens tag value, preferring sentinel metadata over
// the raw struct tag.
func lensTag(sf reflect.StructField, meta *sentinel.Metadata) string {
	if meta != nil {
		for _, fm := range meta.Fields {
			if fm.Name == sf.Name {
				if v, ok := fm.Tags["lens"]; ok {
					return v
				}
			}
		}
	}
	return sf.Tag.Get("lens")
}

// Name returns the package-qualified type name.
func (st *StructType) Name() string { return st.rt.String() }

// ReflectType returns the underlying struct type.
func (st *StructType) ReflectType() reflect.Type { return st.rt }

// DeclaredField returns the field declared directly on this struct type.
// Fields of the embedded superclass are not considered.
func (st *StructType) DeclaredField(name string) (fieldlens.Field, bool) {
	f, ok := st.byName[name]
	if !ok {
		return nil, false
	}
	return f, true
}

// DeclaredFields returns every field declared directly on this struct type,
// in field order.
func (st *StructType) DeclaredFields() []fieldlens.Field {
	out := make([]fieldlens.Field, len(st.fields))
	for i, f := range st.fields {
		out[i] = f
	}
	return out
}

// Superclass returns the descriptor of the first embedded struct, or nil.
func (st *StructType) Superclass() fieldlens.Type {
	if st.super == nil {
		return nil
	}
	return st.super
}

// Interfaces returns nil: Go interfaces declare no fields.
func (st *StructType) Interfaces() []fieldlens.Type { return nil }

var _ fieldlens.Type = (*StructType)(nil)
