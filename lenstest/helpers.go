// Package lenstest provides shared class-model fixtures for fieldlens
// tests.
package lenstest

import (
	"reflect"

	"github.com/zoobzio/fieldlens/classmodel"
)

// Hierarchy is a two-level class hierarchy covering the canonical
// resolution scenarios: shadowing, non-public fields, statics, and finals.
//
//	Base:    label  (non-public string)
//	         secret (non-public int)
//	         id     (public string)
//	         count  (public static int)
//	         kind   (public final string)
//	Derived: label  (public string, shadows Base.label)
//	         note   (non-public string)
type Hierarchy struct {
	Base    *classmodel.Class
	Derived *classmodel.Class
}

// NewHierarchy builds a fresh Base/Derived pair. Fixtures are never shared
// between tests: accessibility flags are global per descriptor, so reuse
// would leak forced access across tests.
func NewHierarchy() *Hierarchy {
	base := classmodel.NewClass("Base")
	base.DeclareField("label", reflect.TypeOf(""), 0)
	base.DeclareField("secret", reflect.TypeOf(0), 0)
	base.DeclareField("id", reflect.TypeOf(""), classmodel.Public)
	base.DeclareField("count", reflect.TypeOf(0), classmodel.Public|classmodel.Static)
	base.DeclareField("kind", reflect.TypeOf(""), classmodel.Public|classmodel.Final)

	derived := classmodel.NewClass("Derived", classmodel.Extends(base))
	derived.DeclareField("label", reflect.TypeOf(""), classmodel.Public)
	derived.DeclareField("note", reflect.TypeOf(""), 0)

	return &Hierarchy{Base: base, Derived: derived}
}

// Ambiguous is a class implementing two unrelated interfaces that both
// declare the constant "version": resolving "version" on Impl is
// undecidable.
type Ambiguous struct {
	Reader *classmodel.Class // interface, declares version = 1
	Writer *classmodel.Class // interface, declares version = 2
	Impl   *classmodel.Class // implements Reader and Writer, declares nothing
}

// NewAmbiguous builds the ambiguous-interface fixture.
func NewAmbiguous() *Ambiguous {
	reader := classmodel.NewInterface("Reader")
	reader.DeclareConst("version", 1)

	writer := classmodel.NewInterface("Writer")
	writer.DeclareConst("version", 2)

	impl := classmodel.NewClass("Impl", classmodel.Implements(reader, writer))
	return &Ambiguous{Reader: reader, Writer: writer, Impl: impl}
}

// Diamond is a class that reaches the same root interface twice: directly
// and through a subinterface. The root's constant "origin" must resolve
// unambiguously because deduplication collapses both paths.
type Diamond struct {
	Root *classmodel.Class // interface, declares origin
	Mid  *classmodel.Class // interface extending Root
	Impl *classmodel.Class // implements Root and Mid
}

// NewDiamond builds the diamond-interface fixture.
func NewDiamond() *Diamond {
	root := classmodel.NewInterface("Root")
	root.DeclareConst("origin", "root")

	mid := classmodel.NewInterface("Mid", classmodel.Implements(root))

	impl := classmodel.NewClass("DiamondImpl", classmodel.Implements(root, mid))
	return &Diamond{Root: root, Mid: mid, Impl: impl}
}
