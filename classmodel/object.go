package classmodel

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/zoobzio/fieldlens"
)

// slotKey identifies one storage slot on an object. The declaring class is
// part of the key so that a field shadowed at a derived level does not
// share storage with the base declaration.
type slotKey struct {
	class *Class
	name  string
}

// Object is an instance of a Class. It implements fieldlens.Instance.
// Objects are safe for concurrent use.
type Object struct {
	class *Class

	mu    sync.RWMutex
	slots map[slotKey]reflect.Value
}

// New creates an instance of c with every instance field in the hierarchy
// initialized to its zero value. Panics if c is an interface.
func (c *Class) New() *Object {
	if c.iface {
		panic(fmt.Sprintf("classmodel: cannot instantiate interface %s", c.name))
	}
	o := &Object{
		class: c,
		slots: make(map[slotKey]reflect.Value),
	}
	for s := c; s != nil; s = s.super {
		for _, f := range s.fields {
			if f.IsStatic() {
				continue
			}
			o.slots[slotKey{class: s, name: f.name}] = reflect.Zero(f.typ)
		}
	}
	return o
}

// TypeOf returns the object's class.
func (o *Object) TypeOf() fieldlens.Type { return o.class }

// Class returns the object's class as its concrete type.
func (o *Object) Class() *Class { return o.class }

func (o *Object) get(f *ClassField) any {
	o.mu.RLock()
	defer o.mu.RUnlock()
	v, ok := o.slots[slotKey{class: f.owner, name: f.name}]
	if !ok || !v.IsValid() {
		return nil
	}
	return v.Interface()
}

func (o *Object) set(f *ClassField, v reflect.Value) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.slots[slotKey{class: f.owner, name: f.name}] = v
}

var _ fieldlens.Instance = (*Object)(nil)
