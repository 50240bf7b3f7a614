// Package classmodel provides an in-process class model that implements the
// fieldlens descriptor interfaces.
//
// A Class has a name, at most one superclass, a set of implemented
// interfaces, and declared fields with Java-like modifiers (public, static,
// final). Interfaces may only declare constants: fields declared on an
// interface are implicitly public, static, and final. Instances are
// map-backed objects created with Class.New.
//
// Classes are assembled once, at startup, and are immutable afterwards
// except for static storage and per-field accessibility flags:
//
//	account := classmodel.NewClass("Account")
//	account.DeclareField("balance", reflect.TypeOf(int64(0)), classmodel.Public)
//	account.DeclareField("pin", reflect.TypeOf(""), 0) // package-private
//
//	savings := classmodel.NewClass("SavingsAccount", classmodel.Extends(account))
//
// Declaration mistakes (duplicate names, extending an interface) panic, the
// same way signal or tag registration does: they are programmer errors at
// wiring time, not runtime conditions.
package classmodel

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/zoobzio/fieldlens"
)

// Modifier is a bit set of field visibility and storage flags.
type Modifier uint8

const (
	// Public marks a field as publicly visible. Absent means non-public.
	Public Modifier = 1 << iota

	// Static marks a field as belonging to the class rather than to
	// instances.
	Static

	// Final marks a field as immutable after initialization.
	Final
)

// IsPublic reports whether the Public flag is set.
func (m Modifier) IsPublic() bool { return m&Public != 0 }

// IsStatic reports whether the Static flag is set.
func (m Modifier) IsStatic() bool { return m&Static != 0 }

// IsFinal reports whether the Final flag is set.
func (m Modifier) IsFinal() bool { return m&Final != 0 }

// Class is a runtime type in the class model. It implements fieldlens.Type.
type Class struct {
	name       string
	iface      bool
	super      *Class
	interfaces []*Class
	fields     []*ClassField
	byName     map[string]*ClassField

	// Static storage, keyed by field name. Guarded separately from the
	// (immutable after assembly) structural data above.
	staticsMu sync.RWMutex
	statics   map[string]reflect.Value
}

// ClassOption configures a class under construction.
type ClassOption func(*Class)

// Extends sets the direct superclass. Panics if super is an interface.
func Extends(super *Class) ClassOption {
	return func(c *Class) {
		if super == nil {
			return
		}
		if super.iface {
			panic(fmt.Sprintf("classmodel: class %s cannot extend interface %s", c.name, super.name))
		}
		if c.iface {
			panic(fmt.Sprintf("classmodel: interface %s cannot extend class %s", c.name, super.name))
		}
		c.super = super
	}
}

// Implements adds directly implemented interfaces, in declaration order.
// On an interface it declares superinterfaces. Panics if any argument is
// not an interface.
func Implements(ifaces ...*Class) ClassOption {
	return func(c *Class) {
		for _, it := range ifaces {
			if it == nil {
				continue
			}
			if !it.iface {
				panic(fmt.Sprintf("classmodel: %s is not an interface", it.name))
			}
			c.interfaces = append(c.interfaces, it)
		}
	}
}

// NewClass creates a class. Panics if name is blank.
func NewClass(name string, opts ...ClassOption) *Class {
	return newType(name, false, opts)
}

// NewInterface creates an interface. Interfaces have no superclass; use
// Implements to declare superinterfaces. Panics if name is blank.
func NewInterface(name string, opts ...ClassOption) *Class {
	return newType(name, true, opts)
}

func newType(name string, iface bool, opts []ClassOption) *Class {
	if strings.TrimSpace(name) == "" {
		panic("classmodel: type name must not be blank")
	}
	c := &Class{
		name:    name,
		iface:   iface,
		byName:  make(map[string]*ClassField),
		statics: make(map[string]reflect.Value),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DeclareField declares a field on c with the given value type and
// modifiers, initialized to the zero value. Fields declared on an interface
// are forced public, static, and final. Panics on a blank name, a nil type,
// or a duplicate declaration.
func (c *Class) DeclareField(name string, typ reflect.Type, mods Modifier) *ClassField {
	if strings.TrimSpace(name) == "" {
		panic(fmt.Sprintf("classmodel: field name on %s must not be blank", c.name))
	}
	if typ == nil {
		panic(fmt.Sprintf("classmodel: field %s.%s must have a type", c.name, name))
	}
	if _, exists := c.byName[name]; exists {
		panic(fmt.Sprintf("classmodel: field %s already declared on %s", name, c.name))
	}
	if c.iface {
		mods |= Public | Static | Final
	}
	f := &ClassField{
		name:  name,
		owner: c,
		typ:   typ,
		mods:  mods,
	}
	c.fields = append(c.fields, f)
	c.byName[name] = f
	if f.IsStatic() {
		c.statics[name] = reflect.Zero(typ)
	}
	return f
}

// DeclareConst declares a public static final field initialized to value,
// with value's runtime type as the declared type. This is how interface
// constants are declared. Panics on a nil value.
func (c *Class) DeclareConst(name string, value any) *ClassField {
	if value == nil {
		panic(fmt.Sprintf("classmodel: constant %s.%s must have a value", c.name, name))
	}
	f := c.DeclareField(name, reflect.TypeOf(value), Public|Static|Final)
	c.statics[name] = reflect.ValueOf(value)
	return f
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// IsInterface reports whether c is an interface.
func (c *Class) IsInterface() bool { return c.iface }

// DeclaredField returns the field declared directly on c with the given
// name.
func (c *Class) DeclaredField(name string) (fieldlens.Field, bool) {
	f, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return f, true
}

// DeclaredFields returns every field declared directly on c, in
// declaration order.
func (c *Class) DeclaredFields() []fieldlens.Field {
	out := make([]fieldlens.Field, len(c.fields))
	for i, f := range c.fields {
		out[i] = f
	}
	return out
}

// Superclass returns the direct superclass, or nil at the root.
func (c *Class) Superclass() fieldlens.Type {
	if c.super == nil {
		return nil
	}
	return c.super
}

// Interfaces returns the directly implemented interfaces (superinterfaces,
// for an interface) in declaration order.
func (c *Class) Interfaces() []fieldlens.Type {
	out := make([]fieldlens.Type, len(c.interfaces))
	for i, it := range c.interfaces {
		out[i] = it
	}
	return out
}

// extends reports whether c is other or a subclass of other.
func (c *Class) extends(other *Class) bool {
	for s := c; s != nil; s = s.super {
		if s == other {
			return true
		}
	}
	return false
}

// staticValue returns the current value of a static field.
func (c *Class) staticValue(name string) any {
	c.staticsMu.RLock()
	defer c.staticsMu.RUnlock()
	v, ok := c.statics[name]
	if !ok || !v.IsValid() {
		return nil
	}
	return v.Interface()
}

// setStatic replaces the stored value of a static field.
func (c *Class) setStatic(name string, v reflect.Value) {
	c.staticsMu.Lock()
	defer c.staticsMu.Unlock()
	c.statics[name] = v
}

var _ fieldlens.Type = (*Class)(nil)
