// Package wsdl provides a Web Services Description Language (WSDL) 1.1
// decoder and encoder.
//
// http://www.w3schools.com/xml/xml_wsdl.asp
package wsdl

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Name formats n as {namespace}local, or local when n has no namespace.
func Name(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return "{" + n.Space + "}" + n.Local
}

// ParseName parses a name formatted by Name.
func ParseName(s string) xml.Name {
	if strings.HasPrefix(s, "{") {
		if i := strings.Index(s, "}"); i > 0 {
			return xml.Name{Space: s[1:i], Local: s[i+1:]}
		}
	}
	return xml.Name{Local: s}
}

// Unmarshal unmarshals WSDL documents starting from the <definitions> tag.
//
// The Definitions object it returns is an unmarshalled version of the
// WSDL XML; prefixed names in attribute values are resolved against the
// namespace declarations of the document.
func Unmarshal(r io.Reader) (*Definitions, error) {
	var d Definitions
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	err := dec.Decode(&d)
	if err != nil {
		return nil, err
	}
	if err = resolveNames(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// scope maps prefixes to namespaces. The empty prefix is the default
// namespace.
type scope map[string]string

func newScope(parent scope, attrs []xml.Attr) scope {
	s := make(scope, len(parent)+len(attrs))
	for k, v := range parent {
		s[k] = v
	}
	for _, a := range attrs {
		switch {
		case a.Name.Space == "xmlns":
			s[a.Name.Local] = a.Value
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			s[""] = a.Value
		}
	}
	return s
}

// resolve rewrites the prefixed name in *v as {namespace}local.
func (s scope) resolve(v *string) error {
	if *v == "" {
		return nil
	}
	prefix, local := "", *v
	if i := strings.Index(*v, ":"); i >= 0 {
		prefix, local = (*v)[:i], (*v)[i+1:]
	}
	ns, ok := s[prefix]
	if !ok && prefix != "" {
		return fmt.Errorf("wsdl: undeclared prefix %q in %q", prefix, *v)
	}
	*v = Name(xml.Name{Space: ns, Local: local})
	return nil
}

func resolveNames(d *Definitions) error {
	root := newScope(nil, d.Attrs)
	for _, n := range d.qnames() {
		if err := root.resolve(n); err != nil {
			return err
		}
	}
	for _, s := range d.Schemas {
		sc := newScope(root, s.Attrs)
		for _, n := range s.qnames() {
			if err := sc.resolve(n); err != nil {
				return err
			}
		}
	}
	return nil
}

// qnames returns the qualified name attributes of d outside its schemas.
func (d *Definitions) qnames() []*string {
	var names []*string
	for _, m := range d.Messages {
		for _, p := range m.Parts {
			names = append(names, &p.Element, &p.Type)
		}
	}
	for _, pt := range d.PortTypes {
		for _, op := range pt.Operations {
			for _, x := range append([]*IO{op.Input, op.Output}, op.Faults...) {
				if x != nil {
					names = append(names, &x.Message)
				}
			}
		}
	}
	for _, b := range d.Bindings {
		names = append(names, &b.Type)
		for _, op := range b.Operations {
			for _, x := range []*BindingIO{op.Input, op.Output} {
				if x == nil {
					continue
				}
				for _, h := range x.Headers {
					names = append(names, &h.Message)
				}
			}
		}
	}
	for _, s := range d.Services {
		for _, p := range s.Ports {
			names = append(names, &p.Binding)
		}
	}
	return names
}

// qnames returns the qualified name attributes of the elements of s.
func (s *Schema) qnames() []*string {
	names := elementNames(nil, s.Elements)
	for _, ct := range s.ComplexTypes {
		names = complexTypeNames(names, ct)
	}
	return names
}

func elementNames(names []*string, els []*Element) []*string {
	for _, el := range els {
		names = append(names, &el.Ref, &el.Type)
		if el.ComplexType != nil {
			names = complexTypeNames(names, el.ComplexType)
		}
	}
	return names
}

func complexTypeNames(names []*string, ct *ComplexType) []*string {
	if ct.Sequence == nil {
		return names
	}
	return elementNames(names, ct.Sequence.Elements)
}
