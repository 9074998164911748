// Package javatype models the closed set of resolved Java type
// descriptors that flow through the refactor tree: classes, methods,
// variables, generic type variables, primitives and arrays.
//
// Classes are interned by fully qualified name so that two references
// to "java.lang.String" are the same *Class, which is what lets the
// method matcher and the subtype relation compare types by identity
// where it's cheap to do so and fall back to name comparison otherwise.
package javatype

import "sync"

// Type is the sealed interface implemented by every resolved type
// descriptor. The private method keeps the set closed to this package.
type Type interface {
	typeNode()
	String() string
}

// Class is a resolved reference to a Java class, interface, enum or
// annotation type. Instances are interned: Build returns the same
// *Class for the same fully qualified name.
type Class struct {
	FullyQualifiedName string

	// Owner is the enclosing package name, or the fully qualified name
	// of the enclosing class for a nested type. Empty for top-level
	// types in the unnamed package.
	Owner string

	Supertype  *Class
	Interfaces []*Class
	Members    []Type
}

func (*Class) typeNode() {}

func (c *Class) String() string { return c.FullyQualifiedName }

// SimpleName returns the last segment of the fully qualified name.
func (c *Class) SimpleName() string {
	name := c.FullyQualifiedName
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[i+1:]
		}
	}
	return name
}

// Package returns the package portion of the fully qualified name, or
// "" if the class lives in the unnamed package.
func (c *Class) Package() string {
	name := c.FullyQualifiedName
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[:i]
		}
	}
	return ""
}

var classRegistry sync.Map // map[string]*Class

// Build returns the canonical *Class for the given fully qualified
// name, creating it on first use. Safe for concurrent use: the
// registry is a sync.Map, so independent transactions running in
// different goroutines observe stable identity for the same name.
func Build(fqn string) *Class {
	if v, ok := classRegistry.Load(fqn); ok {
		return v.(*Class)
	}
	c := &Class{FullyQualifiedName: fqn}
	actual, _ := classRegistry.LoadOrStore(fqn, c)
	return actual.(*Class)
}

// AsClass narrows t to *Class, if it is one.
func AsClass(t Type) (*Class, bool) {
	c, ok := t.(*Class)
	return c, ok
}

// AsPackage narrows t to the package name it denotes, if t is a Class
// and the caller really means its package rather than the class
// itself. There is no distinct Package type in the closed set;
// packages are represented as plain strings wherever they occur
// (Class.Owner, Class.Package()).
func AsPackage(t Type) (string, bool) {
	c, ok := t.(*Class)
	if !ok {
		return "", false
	}
	return c.Package(), true
}

// Method is a resolved method or constructor signature.
type Method struct {
	DeclaringType     *Class
	Name              string
	GenericSignature  string
	ResolvedSignature string
	ParamTypes        []Type
	ReturnType        Type
}

func (*Method) typeNode() {}

func (m *Method) String() string { return m.DeclaringType.String() + "." + m.Name }

// Var is a resolved field or local variable.
type Var struct {
	Name  string
	Owner Type
	Type  Type
}

func (*Var) typeNode() {}

func (v *Var) String() string { return v.Name }

// GenericTypeVariable is a type parameter such as <T extends Comparable<T>>.
type GenericTypeVariable struct {
	Name   string
	Bounds []Type
}

func (*GenericTypeVariable) typeNode() {}

func (g *GenericTypeVariable) String() string { return g.Name }

// PrimitiveTag enumerates the closed set of primitive-ish tags,
// including the literal-only tags (String, Wildcard, Null, None) that
// appear as a literal node's type tag rather than as a resolved
// expression type; ChangeLiteral picks a rewritten literal's source
// form by this tag.
type PrimitiveTag int

const (
	Boolean PrimitiveTag = iota
	Byte
	Char
	Short
	Int
	Long
	Float
	Double
	Void
	String
	Wildcard
	Null
	None
)

var primitiveTagNames = map[PrimitiveTag]string{
	Boolean:  "boolean",
	Byte:     "byte",
	Char:     "char",
	Short:    "short",
	Int:      "int",
	Long:     "long",
	Float:    "float",
	Double:   "double",
	Void:     "void",
	String:   "String",
	Wildcard: "*",
	Null:     "null",
	None:     "",
}

func (t PrimitiveTag) String() string {
	if s, ok := primitiveTagNames[t]; ok {
		return s
	}
	return "Unknown"
}

// Primitive is a resolved primitive type, keyed by its tag.
type Primitive struct {
	Tag PrimitiveTag
}

func (*Primitive) typeNode() {}

func (p *Primitive) String() string { return p.Tag.String() }

// Array is a resolved array type, covariant in its element type per
// the subtype relation implemented in subtype.go.
type Array struct {
	ElementType Type
}

func (*Array) typeNode() {}

func (a *Array) String() string { return a.ElementType.String() + "[]" }

// JavaLangString returns the canonical resolved type of a string literal
// expression, as distinct from the Primitive{Tag: String} literal
// type tag.
func JavaLangString() *Class { return Build("java.lang.String") }

func JavaLangObject() *Class { return Build("java.lang.Object") }
