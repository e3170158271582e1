// Package decl describes annotated service declarations: packages, types,
// methods and the attribute values of the annotations attached to them.
//
// The model is populated once by a front end (see package source) and is
// read-only afterwards.
package decl

import (
	"fmt"
	"strings"
)

// Kind tags the shape of a Type. It is computed once when the Type is
// constructed.
type Kind int

// Type kinds.
const (
	Void Kind = iota
	Primitive
	Array
	Collection
	Class
	Interface
)

var kindNames = [...]string{
	Void:       "void",
	Primitive:  "primitive",
	Array:      "array",
	Collection: "collection",
	Class:      "class",
	Interface:  "interface",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Type is a reference to a type as it appears in a declaration: a return
// type, a parameter type or an accessor type.
type Type struct {
	kind Kind
	name string // primitive name
	elem *Type
	decl *TypeDecl
	args []*Type
}

// primitives lists the names accepted by NewPrimitive.
var primitives = map[string]bool{
	"boolean": true,
	"byte":    true,
	"char":    true,
	"short":   true,
	"int":     true,
	"long":    true,
	"float":   true,
	"double":  true,
}

// IsPrimitiveName reports whether name is a primitive type name.
func IsPrimitiveName(name string) bool {
	return primitives[name]
}

// VoidType is the type of methods that return nothing.
var VoidType = &Type{kind: Void, name: "void"}

// NewPrimitive returns the primitive type with the given name. It panics
// on unknown names since those are front end bugs.
func NewPrimitive(name string) *Type {
	if !primitives[name] {
		panic(fmt.Sprintf("decl: %q is not a primitive type", name))
	}
	return &Type{kind: Primitive, name: name}
}

// NewArray returns an array of elem.
func NewArray(elem *Type) *Type {
	return &Type{kind: Array, elem: elem}
}

// NewDeclared returns a reference to d with the given type arguments.
func NewDeclared(d *TypeDecl, args ...*Type) *Type {
	k := Class
	switch {
	case d.Collection:
		k = Collection
	case d.Interface:
		k = Interface
	}
	return &Type{kind: k, decl: d, args: args}
}

// Kind returns the kind tag of t.
func (t *Type) Kind() Kind { return t.kind }

// IsVoid reports whether t is void.
func (t *Type) IsVoid() bool { return t.kind == Void }

// IsPrimitive reports whether t is a primitive.
func (t *Type) IsPrimitive() bool { return t.kind == Primitive }

// IsArray reports whether t is an array.
func (t *Type) IsArray() bool { return t.kind == Array }

// IsCollection reports whether t is a collection.
func (t *Type) IsCollection() bool { return t.kind == Collection }

// IsDeclared reports whether t references a type declaration.
func (t *Type) IsDeclared() bool { return t.decl != nil }

// Name returns the primitive name of t, or "void". Empty for other kinds.
func (t *Type) Name() string { return t.name }

// Elem returns the element type of an array, nil otherwise.
func (t *Type) Elem() *Type { return t.elem }

// Decl returns the declaration of a declared type, nil otherwise.
func (t *Type) Decl() *TypeDecl { return t.decl }

// Args returns the type arguments of a declared type.
func (t *Type) Args() []*Type { return t.args }

// IsRootElementClass reports whether t is a class declaration carrying a
// root element marker.
func (t *Type) IsRootElementClass() bool {
	return t.kind == Class && t.decl.RootElement != nil
}

// QualifiedName returns the erased qualified name of t: no type arguments,
// arrays suffixed with [].
func (t *Type) QualifiedName() string {
	switch t.kind {
	case Void, Primitive:
		return t.name
	case Array:
		return t.elem.QualifiedName() + "[]"
	default:
		return t.decl.QualifiedName()
	}
}

// String returns t with its type arguments, as written in source.
func (t *Type) String() string {
	switch t.kind {
	case Void, Primitive:
		return t.name
	case Array:
		return t.elem.String() + "[]"
	}
	if len(t.args) == 0 {
		return t.decl.QualifiedName()
	}
	args := make([]string, len(t.args))
	for i, a := range t.args {
		args[i] = a.String()
	}
	return t.decl.QualifiedName() + "<" + strings.Join(args, ", ") + ">"
}
