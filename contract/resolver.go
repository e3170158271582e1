package contract

import (
	"encoding/xml"
	"fmt"

	"github.com/fiorix/wscontract/registry"
	"github.com/fiorix/wscontract/xmltype"
)

// Resolver computes the qualified XML names of message parts. It reads the
// root element registry and the type mapper but never modifies them.
type Resolver struct {
	registry registry.Finder
	mapper   xmltype.Mapper
}

// NewResolver returns a Resolver consulting the given registry and mapper.
func NewResolver(r registry.Finder, m xmltype.Mapper) *Resolver {
	return &Resolver{registry: r, mapper: m}
}

// ElementQName returns the qualified name of the element of part p.
//
// A part typed by a root element class is the registered element of that
// class; it is a validation error for the class to be missing from the
// registry. Any other part is an implicit element named after the part in
// the namespace of the endpoint interface.
func (r *Resolver) ElementQName(p WebMessagePart) (xml.Name, error) {
	switch p := p.(type) {
	case *Wrapper:
		return p.ElementQName(), nil
	case TypedPart:
		m := p.WebMethod()
		t := p.Type()
		if t.IsRootElementClass() {
			e, ok := r.registry.FindRootElement(t.Decl())
			if !ok {
				return xml.Name{}, &ValidationError{
					Kind:    KindUnregisteredRootElement,
					Pos:     m.Position(),
					Subject: t.Decl().QualifiedName(),
					Msg: t.Decl().QualifiedName() +
						" is not a known root element.  Please add it to the list of known classes.",
				}
			}
			return e.QName(), nil
		}
		return xml.Name{Space: m.Endpoint().TargetNamespace(), Local: p.ElementName()}, nil
	}
	return xml.Name{}, fmt.Errorf("%w: %T has no element", ErrUnsupported, p)
}

// TypeQName returns the qualified name of the XML type of part p, which
// must be a typed part. Adapters are ignored: the XML type is the one of
// the declared type. The type must be named: anonymous types cannot be referenced from a
// part.
func (r *Resolver) TypeQName(p WebMessagePart) (xml.Name, error) {
	tp, ok := p.(TypedPart)
	if !ok {
		return xml.Name{}, fmt.Errorf("%w: %T has no type", ErrUnsupported, p)
	}
	pos := tp.WebMethod().Position()
	t := tp.Type()
	x, err := r.mapper.Resolve(t)
	if err != nil {
		return xml.Name{}, &ValidationError{
			Kind:    KindTypeMapping,
			Pos:     pos,
			Subject: t.String(),
			Msg:     err.Error(),
			Err:     err,
		}
	}
	if xmltype.IsAnonymous(x) {
		return xml.Name{}, &ValidationError{
			Kind:    KindAnonymousType,
			Pos:     pos,
			Subject: t.String(),
			Msg:     fmt.Sprintf("Type of %s cannot be anonymous.", roleOf(tp)),
		}
	}
	return xmltype.QName(x), nil
}

func roleOf(p TypedPart) string {
	switch p.(type) {
	case *WebParam:
		return "web parameter"
	case *WebFault:
		return "web fault"
	}
	return "web result"
}
