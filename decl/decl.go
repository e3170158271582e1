package decl

import (
	"fmt"
	"strings"
)

// Position is a location in the declaration source.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	file := p.File
	if file == "" {
		file = "<unknown>"
	}
	switch {
	case p.Line > 0 && p.Column > 0:
		return fmt.Sprintf("%s:%d:%d", file, p.Line, p.Column)
	case p.Line > 0:
		return fmt.Sprintf("%s:%d", file, p.Line)
	}
	return file
}

// Package is a package declaration.
type Package struct {
	Name string
	// Namespace is the XML namespace of the package schema, if declared.
	Namespace string
	Doc       string
	Pos       Position
}

// Segments returns the dot separated segments of the package name.
func (p *Package) Segments() []string {
	if p == nil || p.Name == "" {
		return nil
	}
	return strings.Split(p.Name, ".")
}

// TypeDecl is a class or interface declaration.
type TypeDecl struct {
	Package *Package
	Name    string
	Doc     string
	Pos     Position

	Interface  bool
	Collection bool
	Enum       bool

	// RootElement is set when the type is marked as an XML root element.
	RootElement *RootElementAnnotation
	// XMLType overrides the XML type naming of the type.
	XMLType *XMLTypeAnnotation

	// WebService and SOAPBinding are set on endpoint interfaces.
	WebService  *WebServiceAnnotation
	SOAPBinding *SOAPBindingAnnotation

	Accessors []*Accessor
	Methods   []*MethodDecl
}

// QualifiedName returns the package qualified name of d.
func (d *TypeDecl) QualifiedName() string {
	if d.Package == nil || d.Package.Name == "" {
		return d.Name
	}
	return d.Package.Name + "." + d.Name
}

func (d *TypeDecl) String() string { return d.QualifiedName() }

// MethodDecl is a method of an interface declaration.
type MethodDecl struct {
	Name    string
	Doc     string
	Pos     Position
	Returns *Type
	Params  []*ParamDecl
	Throws  []*Type
	// ReturnDoc documents the return value.
	ReturnDoc string

	WebMethod   *WebMethodAnnotation
	WebResult   *WebResultAnnotation
	SOAPBinding *SOAPBindingAnnotation
	Oneway      bool
	// ResultAdapter binds an XML adapter to the return value.
	ResultAdapter *AdapterBinding

	// Owner is the declaring type.
	Owner *TypeDecl
}

// ParamDecl is a method parameter.
type ParamDecl struct {
	Name     string
	Doc      string
	Pos      Position
	Type     *Type
	WebParam *WebParamAnnotation
	Adapter  *AdapterBinding
}

// Accessor is a bound property of a class.
type Accessor struct {
	Name    string
	Doc     string
	Pos     Position
	Type    *Type
	Adapter *AdapterBinding
}

// AdapterBinding substitutes AdaptingType for BoundType during
// marshaling.
type AdapterBinding struct {
	// Adapter is the adapter declaration.
	Adapter *TypeDecl
	// BoundType is the type the adapter converts from. For arrays this is
	// the component type.
	BoundType *Type
	// AdaptingType is the type used in its place on the wire.
	AdaptingType *Type
}
