package wsdl

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

// Marshal writes d to w as a WSDL 1.1 document.
//
// Elements of the WSDL, SOAP binding and XML Schema vocabularies are
// written with the wsdl, soap and xs prefixes. The target namespace is
// bound to tns and every other namespace referenced by a qualified name
// gets an nsN prefix, numbered in order of first use.
func Marshal(w io.Writer, d *Definitions) error {
	e := &encoder{
		enc:      xml.NewEncoder(w),
		prefixes: make(map[string]string),
	}
	e.enc.Indent("", "  ")
	e.declare(WSDLNamespace, "wsdl")
	e.declare(SOAPNamespace, "soap")
	e.declare(SchemaNamespace, "xs")
	if d.TargetNamespace != "" {
		e.declare(d.TargetNamespace, "tns")
	}
	names := d.qnames()
	for _, s := range d.Schemas {
		names = append(names, s.qnames()...)
	}
	for _, n := range names {
		if ns := ParseName(*n).Space; ns != "" {
			e.declare(ns, "")
		}
	}
	e.definitions(d)
	if e.err != nil {
		return e.err
	}
	if err := e.enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

type encoder struct {
	enc      *xml.Encoder
	prefixes map[string]string // namespace to prefix
	decls    []xml.Attr
	seq      int
	err      error
}

// declare binds ns to prefix, or to the next nsN prefix when prefix is
// empty. Namespaces already bound keep their prefix.
func (e *encoder) declare(ns, prefix string) {
	if _, ok := e.prefixes[ns]; ok {
		return
	}
	if prefix == "" {
		e.seq++
		prefix = "ns" + strconv.Itoa(e.seq)
	}
	e.prefixes[ns] = prefix
	e.decls = append(e.decls, xml.Attr{
		Name:  xml.Name{Local: "xmlns:" + prefix},
		Value: ns,
	})
}

// qname writes a {namespace}local name with the prefix of its namespace.
func (e *encoder) qname(s string) string {
	n := ParseName(s)
	if n.Space == "" {
		return n.Local
	}
	p, ok := e.prefixes[n.Space]
	if !ok && e.err == nil {
		e.err = fmt.Errorf("wsdl: no prefix for namespace %q", n.Space)
	}
	return p + ":" + n.Local
}

func (e *encoder) token(t xml.Token) {
	if e.err != nil {
		return
	}
	e.err = e.enc.EncodeToken(t)
}

// start opens name with the given attribute pairs, skipping empty values.
func (e *encoder) start(name string, attrs ...string) {
	el := xml.StartElement{Name: xml.Name{Local: name}}
	for i := 0; i+1 < len(attrs); i += 2 {
		if attrs[i+1] == "" {
			continue
		}
		el.Attr = append(el.Attr, xml.Attr{
			Name:  xml.Name{Local: attrs[i]},
			Value: attrs[i+1],
		})
	}
	e.token(el)
}

func (e *encoder) end(name string) {
	e.token(xml.EndElement{Name: xml.Name{Local: name}})
}

func (e *encoder) text(name, s string) {
	if s == "" {
		return
	}
	e.start(name)
	e.token(xml.CharData(s))
	e.end(name)
}

func (e *encoder) definitions(d *Definitions) {
	e.token(xml.ProcInst{Target: "xml", Inst: []byte(`version="1.0" encoding="UTF-8"`)})
	root := xml.StartElement{Name: xml.Name{Local: "wsdl:definitions"}}
	for _, a := range []xml.Attr{
		{Name: xml.Name{Local: "name"}, Value: d.Name},
		{Name: xml.Name{Local: "targetNamespace"}, Value: d.TargetNamespace},
	} {
		if a.Value != "" {
			root.Attr = append(root.Attr, a)
		}
	}
	root.Attr = append(root.Attr, e.decls...)
	e.token(root)
	e.text("wsdl:documentation", d.Doc)
	for _, imp := range d.Imports {
		e.start("wsdl:import", "namespace", imp.Namespace, "location", imp.Location)
		e.end("wsdl:import")
	}
	if len(d.Schemas) > 0 {
		e.start("wsdl:types")
		for _, s := range d.Schemas {
			e.schema(s)
		}
		e.end("wsdl:types")
	}
	for _, m := range d.Messages {
		e.message(m)
	}
	for _, pt := range d.PortTypes {
		e.portType(pt)
	}
	for _, b := range d.Bindings {
		e.binding(b)
	}
	for _, s := range d.Services {
		e.service(s)
	}
	e.end("wsdl:definitions")
}

func (e *encoder) schema(s *Schema) {
	e.start("xs:schema",
		"targetNamespace", s.TargetNamespace,
		"elementFormDefault", s.ElementFormDefault)
	for _, imp := range s.Imports {
		e.start("xs:import", "namespace", imp.Namespace, "schemaLocation", imp.Location)
		e.end("xs:import")
	}
	for _, ct := range s.ComplexTypes {
		e.complexType(ct)
	}
	for _, el := range s.Elements {
		e.element(el)
	}
	e.end("xs:schema")
}

func (e *encoder) annotation(doc string) {
	if doc == "" {
		return
	}
	e.start("xs:annotation")
	e.text("xs:documentation", doc)
	e.end("xs:annotation")
}

func (e *encoder) element(el *Element) {
	nillable := ""
	if el.Nillable {
		nillable = "true"
	}
	e.start("xs:element",
		"name", el.Name,
		"ref", e.qname(el.Ref),
		"type", e.qname(el.Type),
		"minOccurs", el.Min,
		"maxOccurs", el.Max,
		"nillable", nillable)
	e.annotation(el.Doc)
	if el.ComplexType != nil {
		e.complexType(el.ComplexType)
	}
	e.end("xs:element")
}

func (e *encoder) complexType(ct *ComplexType) {
	e.start("xs:complexType", "name", ct.Name)
	e.annotation(ct.Doc)
	if ct.Sequence != nil {
		e.start("xs:sequence")
		for _, el := range ct.Sequence.Elements {
			e.element(el)
		}
		e.end("xs:sequence")
	}
	e.end("xs:complexType")
}

func (e *encoder) message(m *Message) {
	e.start("wsdl:message", "name", m.Name)
	e.text("wsdl:documentation", m.Doc)
	for _, p := range m.Parts {
		e.start("wsdl:part",
			"name", p.Name,
			"element", e.qname(p.Element),
			"type", e.qname(p.Type))
		e.end("wsdl:part")
	}
	e.end("wsdl:message")
}

func (e *encoder) portType(pt *PortType) {
	e.start("wsdl:portType", "name", pt.Name)
	e.text("wsdl:documentation", pt.Doc)
	for _, op := range pt.Operations {
		e.start("wsdl:operation", "name", op.Name)
		e.text("wsdl:documentation", op.Doc)
		e.io("wsdl:input", op.Input)
		e.io("wsdl:output", op.Output)
		for _, f := range op.Faults {
			e.io("wsdl:fault", f)
		}
		e.end("wsdl:operation")
	}
	e.end("wsdl:portType")
}

func (e *encoder) io(name string, x *IO) {
	if x == nil {
		return
	}
	e.start(name, "name", x.Name, "message", e.qname(x.Message))
	e.end(name)
}

func (e *encoder) binding(b *Binding) {
	e.start("wsdl:binding", "name", b.Name, "type", e.qname(b.Type))
	e.start("soap:binding", "style", b.SOAP.Style, "transport", b.SOAP.Transport)
	e.end("soap:binding")
	for _, op := range b.Operations {
		e.start("wsdl:operation", "name", op.Name)
		e.start("soap:operation", "soapAction", op.SOAP.Action, "style", op.SOAP.Style)
		e.end("soap:operation")
		e.bindingIO("wsdl:input", op.Input)
		e.bindingIO("wsdl:output", op.Output)
		for _, f := range op.Faults {
			e.start("wsdl:fault", "name", f.Name)
			e.start("soap:fault", "name", f.SOAP.Name, "use", f.SOAP.Use)
			e.end("soap:fault")
			e.end("wsdl:fault")
		}
		e.end("wsdl:operation")
	}
	e.end("wsdl:binding")
}

func (e *encoder) bindingIO(name string, x *BindingIO) {
	if x == nil {
		return
	}
	e.start(name)
	e.start("soap:body", "parts", x.Body.Parts, "use", x.Body.Use, "namespace", x.Body.Namespace)
	e.end("soap:body")
	for _, h := range x.Headers {
		e.start("soap:header", "message", e.qname(h.Message), "part", h.Part, "use", h.Use)
		e.end("soap:header")
	}
	e.end(name)
}

func (e *encoder) service(s *Service) {
	e.start("wsdl:service", "name", s.Name)
	e.text("wsdl:documentation", s.Doc)
	for _, p := range s.Ports {
		e.start("wsdl:port", "name", p.Name, "binding", e.qname(p.Binding))
		e.start("soap:address", "location", p.Address.Location)
		e.end("soap:address")
		e.end("wsdl:port")
	}
	e.end("wsdl:service")
}
