// Package xmltype maps declared types to XML schema types.
package xmltype

import (
	"encoding/xml"
	"fmt"

	"aqwari.net/xml/xsd"

	"github.com/fiorix/wscontract/decl"
)

// A Mapper resolves the XML schema type of a declared type.
type Mapper interface {
	// Resolve returns the schema type of t. Arrays and collections
	// resolve to the type of their items.
	Resolve(t *decl.Type) (xsd.Type, error)
}

// Error is returned when a type has no XML schema mapping.
type Error struct {
	Type string
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Msg)
}

var primitives = map[string]xsd.Builtin{
	"boolean": xsd.Boolean,
	"byte":    xsd.Byte,
	"char":    xsd.UnsignedShort,
	"short":   xsd.Short,
	"int":     xsd.Int,
	"long":    xsd.Long,
	"float":   xsd.Float,
	"double":  xsd.Double,
}

// wellKnown maps library classes to their builtin schema types.
var wellKnown = map[string]xsd.Builtin{
	"java.lang.Boolean":                       xsd.Boolean,
	"java.lang.Byte":                          xsd.Byte,
	"java.lang.Character":                     xsd.UnsignedShort,
	"java.lang.Short":                         xsd.Short,
	"java.lang.Integer":                       xsd.Int,
	"java.lang.Long":                          xsd.Long,
	"java.lang.Float":                         xsd.Float,
	"java.lang.Double":                        xsd.Double,
	"java.lang.String":                        xsd.String,
	"java.lang.Object":                        xsd.AnyType,
	"java.math.BigDecimal":                    xsd.Decimal,
	"java.math.BigInteger":                    xsd.Integer,
	"java.net.URI":                            xsd.AnyURI,
	"java.util.Calendar":                      xsd.DateTime,
	"java.util.Date":                          xsd.DateTime,
	"java.util.UUID":                          xsd.String,
	"javax.xml.namespace.QName":               xsd.QName,
	"javax.xml.datatype.Duration":             xsd.Duration,
	"javax.activation.DataHandler":            xsd.Base64Binary,
	"javax.xml.datatype.XMLGregorianCalendar": xsd.DateTime,
}

// TypeMapper is the default Mapper. The zero value is not usable, use
// New.
type TypeMapper struct {
	known map[string]xsd.Type
}

// New creates a TypeMapper that knows the primitive and library types.
func New() *TypeMapper {
	m := &TypeMapper{known: make(map[string]xsd.Type, len(wellKnown))}
	for name, b := range wellKnown {
		m.known[name] = b
	}
	return m
}

// Register maps the class with the given qualified name to t, overriding
// the default mapping.
func (m *TypeMapper) Register(qualifiedName string, t xsd.Type) {
	m.known[qualifiedName] = t
}

// Resolve implements Mapper.
func (m *TypeMapper) Resolve(t *decl.Type) (xsd.Type, error) {
	switch t.Kind() {
	case decl.Void:
		return nil, &Error{Type: t.String(), Msg: "void has no XML type"}
	case decl.Primitive:
		b, ok := primitives[t.Name()]
		if !ok {
			return nil, &Error{Type: t.String(), Msg: "unknown primitive"}
		}
		return b, nil
	case decl.Array:
		if e := t.Elem(); e.IsPrimitive() && e.Name() == "byte" {
			return xsd.Base64Binary, nil
		}
		return m.Resolve(t.Elem())
	case decl.Collection:
		args := t.Args()
		if len(args) == 0 {
			return xsd.AnyType, nil
		}
		return m.Resolve(args[0])
	case decl.Interface:
		if known, ok := m.known[t.QualifiedName()]; ok {
			return known, nil
		}
		return nil, &Error{Type: t.String(), Msg: "an interface cannot be mapped to an XML type"}
	}
	return m.resolveClass(t.Decl())
}

func (m *TypeMapper) resolveClass(d *decl.TypeDecl) (xsd.Type, error) {
	if known, ok := m.known[d.QualifiedName()]; ok {
		return known, nil
	}
	ann := d.XMLType
	if ann == nil {
		ann = &decl.XMLTypeAnnotation{}
	}
	if ann.Anonymous {
		if d.Enum {
			return &xsd.SimpleType{Anonymous: true}, nil
		}
		return &xsd.ComplexType{Anonymous: true}, nil
	}
	name := xml.Name{
		Space: decl.SchemaNamespace(d, ann.Namespace),
		Local: ann.Name,
	}
	if name.Local == "" {
		name.Local = decl.Decapitalize(d.Name)
	}
	if d.Enum {
		return &xsd.SimpleType{Name: name}, nil
	}
	return &xsd.ComplexType{Name: name}, nil
}

// IsAnonymous reports whether t is a schema type without a name.
func IsAnonymous(t xsd.Type) bool {
	switch t := t.(type) {
	case *xsd.ComplexType:
		return t.Anonymous || t.Name.Local == ""
	case *xsd.SimpleType:
		return t.Anonymous || t.Name.Local == ""
	}
	return false
}

// QName returns the qualified name of t.
func QName(t xsd.Type) xml.Name {
	return xsd.XMLName(t)
}
