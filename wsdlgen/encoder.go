// Package wsdlgen provides an encoder from endpoint interfaces to WSDL
// documents.
package wsdlgen

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/fiorix/wscontract/contract"
	"github.com/fiorix/wscontract/wsdl"
)

// DefaultLocation is the service address written when none is set.
const DefaultLocation = "REPLACE_WITH_ACTUAL_URL"

// An Encoder generates WSDL documents from endpoint interfaces.
type Encoder interface {
	// Encode generates the WSDL document of ei.
	Encode(ei *contract.EndpointInterface) error

	// SetLocation records the address of the service port.
	SetLocation(url string)
}

type wsdlEncoder struct {
	// where to write the document
	w io.Writer

	resolver *contract.Resolver
	location string
}

// NewEncoder creates and initializes an Encoder that writes to w. Names
// of parts are resolved with r.
func NewEncoder(w io.Writer, r *contract.Resolver) Encoder {
	return &wsdlEncoder{
		w:        w,
		resolver: r,
		location: DefaultLocation,
	}
}

func (we *wsdlEncoder) SetLocation(url string) {
	we.location = url
}

func (we *wsdlEncoder) Encode(ei *contract.EndpointInterface) error {
	if ei == nil {
		return nil
	}
	if err := contract.Validate(we.resolver, ei); err != nil {
		return err
	}
	d, err := Definitions(ei, we.resolver)
	if err != nil {
		return err
	}
	d.Services[0].Ports[0].Address.Location = we.location
	var b bytes.Buffer
	if err = wsdl.Marshal(&b, d); err != nil {
		return err
	}
	input := b.String()

	// try to read the generated document back
	if _, err = wsdl.Unmarshal(strings.NewReader(input)); err != nil {
		var src bytes.Buffer
		s := bufio.NewScanner(strings.NewReader(input))
		for line := 1; s.Scan(); line++ {
			fmt.Fprintf(&src, "%5d\t%s\n", line, s.Bytes())
		}
		return fmt.Errorf("generated bad wsdl: %v\n%s", err, src.String())
	}
	log.Debug().
		Str("endpoint", ei.Name()).
		Int("messages", len(d.Messages)).
		Int("elements", len(d.Schemas[0].Elements)).
		Msg("encoded wsdl")
	_, err = io.Copy(we.w, &b)
	return err
}

// Definitions builds the WSDL definitions of ei. The interface is not
// validated; resolution errors are returned as they are found. Parts
// sharing an element or message name must agree on its shape, else a
// contract.KindNameClash error is returned.
func Definitions(ei *contract.EndpointInterface, r *contract.Resolver) (*wsdl.Definitions, error) {
	g := &generator{
		resolver: r,
		tns:      ei.TargetNamespace(),
		schemas:  make(map[string]*wsdl.Schema),
		elements: make(map[string]origin),
		imports:  make(map[string]bool),
		messages: make(map[string]origin),
	}
	binding := ei.PortName() + "Binding"
	g.defs = &wsdl.Definitions{
		Name:            ei.ServiceName(),
		TargetNamespace: g.tns,
	}
	g.schema = g.schemaOf(g.tns)
	pt := &wsdl.PortType{Name: ei.Name(), Doc: ei.Doc()}
	b := &wsdl.Binding{
		Name: binding,
		Type: g.name(ei.Name()),
		SOAP: wsdl.SOAPBinding{
			Style:     strings.ToLower(string(ei.Style())),
			Transport: wsdl.HTTPTransport,
		},
	}
	for _, m := range ei.WebMethods() {
		op, bop, err := g.operation(m)
		if err != nil {
			return nil, err
		}
		pt.Operations = append(pt.Operations, op)
		b.Operations = append(b.Operations, bop)
	}
	g.defs.PortTypes = []*wsdl.PortType{pt}
	g.defs.Bindings = []*wsdl.Binding{b}
	g.defs.Services = []*wsdl.Service{{
		Name: ei.ServiceName(),
		Ports: []*wsdl.Port{{
			Name:    ei.PortName(),
			Binding: g.name(binding),
			Address: wsdl.Address{Location: DefaultLocation},
		}},
	}}
	return g.defs, nil
}

type generator struct {
	resolver *contract.Resolver
	tns      string
	defs     *wsdl.Definitions
	schema   *wsdl.Schema

	schemas map[string]*wsdl.Schema

	// caches, to write shared elements and messages once
	elements map[string]origin
	imports  map[string]bool
	messages map[string]origin
}

// origin records what a shared element or message was first written for.
// A name can only be shared by parts of the same shape.
type origin struct {
	shape  string
	method *contract.WebMethod
}

// share reports whether name was already written with the given shape. It
// fails when name was written with another shape.
func share(cache map[string]origin, what, name, shape string, m *contract.WebMethod) (bool, error) {
	o, ok := cache[name]
	switch {
	case !ok:
		cache[name] = origin{shape: shape, method: m}
		return false, nil
	case o.shape == shape:
		return true, nil
	}
	return false, &contract.ValidationError{
		Kind:    contract.KindNameClash,
		Pos:     m.Position(),
		Subject: name,
		Msg: fmt.Sprintf("%s %s of operation %s is already defined differently by operation %s at %s",
			what, name, m.OperationName(), o.method.OperationName(), o.method.Position()),
	}
}

// name returns local qualified by the target namespace.
func (g *generator) name(local string) string {
	return wsdl.Name(xml.Name{Space: g.tns, Local: local})
}

func (g *generator) operation(m *contract.WebMethod) (*wsdl.Operation, *wsdl.BindingOperation, error) {
	op := &wsdl.Operation{Name: m.OperationName(), Doc: m.Doc()}
	bop := &wsdl.BindingOperation{
		Name: m.OperationName(),
		SOAP: wsdl.SOAPOperation{
			Action: m.Action(),
			Style:  strings.ToLower(string(m.Style())),
		},
	}
	use := strings.ToLower(string(m.Use()))
	var (
		in, out         *wsdl.Message
		inHead, outHead []*wsdl.SOAPHeader
	)
	for _, msg := range m.Messages() {
		wm, err := g.message(m, msg)
		if err != nil {
			return nil, nil, err
		}
		switch {
		case msg.IsFault():
			for _, f := range op.Faults {
				if f.Name == wm.Name {
					return nil, nil, &contract.ValidationError{
						Kind:    contract.KindNameClash,
						Pos:     m.Position(),
						Subject: wm.Name,
						Msg:     fmt.Sprintf("operation %s throws more than one fault named %s", m.OperationName(), wm.Name),
					}
				}
			}
			op.Faults = append(op.Faults, &wsdl.IO{Name: wm.Name, Message: g.name(wm.Name)})
			bop.Faults = append(bop.Faults, &wsdl.BindingFault{
				Name: wm.Name,
				SOAP: wsdl.SOAPFault{Name: wm.Name, Use: use},
			})
		case msg.IsHeader():
			h := &wsdl.SOAPHeader{Message: g.name(wm.Name), Part: wm.Parts[0].Name, Use: use}
			if msg.IsInput() {
				inHead = append(inHead, h)
			}
			// bare in-out headers have a message of their own for the response
			if msg.IsOutput() && (!msg.IsInput() || m.ParameterStyle() != contract.Bare) {
				outHead = append(outHead, h)
			}
		case msg.IsInput():
			in = wm
		default:
			out = wm
		}
	}
	var err error
	if in == nil {
		if in, err = g.emptyMessage(m, m.RequestMessageName()); err != nil {
			return nil, nil, err
		}
	}
	op.Input = &wsdl.IO{Message: g.name(in.Name)}
	bop.Input = g.bindingIO(m, in, inHead, use)
	if !m.IsOneWay() {
		if out == nil {
			if out, err = g.emptyMessage(m, m.ResponseMessageName()); err != nil {
				return nil, nil, err
			}
		}
		op.Output = &wsdl.IO{Message: g.name(out.Name)}
		bop.Output = g.bindingIO(m, out, outHead, use)
	}
	return op, bop, nil
}

func (g *generator) bindingIO(m *contract.WebMethod, body *wsdl.Message, headers []*wsdl.SOAPHeader, use string) *wsdl.BindingIO {
	bio := &wsdl.BindingIO{
		Body:    wsdl.SOAPBody{Use: use},
		Headers: headers,
	}
	if m.Style() == contract.RPC {
		bio.Body.Namespace = g.tns
	}
	if len(headers) > 0 {
		names := make([]string, len(body.Parts))
		for i, p := range body.Parts {
			names[i] = p.Name
		}
		bio.Body.Parts = strings.Join(names, " ")
	}
	return bio
}

// emptyMessage adds a message with no parts, for operations whose body
// carries nothing.
func (g *generator) emptyMessage(m *contract.WebMethod, name string) (*wsdl.Message, error) {
	wm := &wsdl.Message{Name: name}
	return wm, g.addMessage(m, wm, "")
}

// addMessage adds wm, unless a message of the same name and shape is
// already there.
func (g *generator) addMessage(m *contract.WebMethod, wm *wsdl.Message, shape string) error {
	dup, err := share(g.messages, "message", wm.Name, shape, m)
	if err != nil || dup {
		return err
	}
	g.defs.Messages = append(g.defs.Messages, wm)
	return nil
}

func (g *generator) message(m *contract.WebMethod, msg contract.WebMessage) (*wsdl.Message, error) {
	parts, err := msg.Parts()
	if err != nil {
		return nil, err
	}
	wm := &wsdl.Message{Name: msg.MessageName(), Doc: msg.MessageDocs()}
	rpc := false
	if w, ok := msg.(*contract.Wrapper); ok {
		rpc = w.WebMethod().Style() == contract.RPC
	}
	var shape []string
	if f, ok := msg.(*contract.WebFault); ok {
		shape = append(shape, "fault "+f.Type().QualifiedName())
	}
	for _, p := range parts {
		wp, err := g.part(m, p, rpc)
		if err != nil {
			return nil, err
		}
		wm.Parts = append(wm.Parts, wp)
		shape = append(shape, wp.Name+" "+wp.Element+wp.Type)
	}
	if err = g.addMessage(m, wm, strings.Join(shape, "\n")); err != nil {
		return nil, err
	}
	return wm, nil
}

// part returns the message part of p. Parts of RPC wrappers reference
// their type directly; every other part references an element.
func (g *generator) part(m *contract.WebMethod, p contract.WebMessagePart, rpc bool) (*wsdl.Part, error) {
	wp := &wsdl.Part{Name: p.PartName()}
	if rpc && p.IsImplicitSchemaElement() {
		t, err := g.resolver.TypeQName(p)
		if err != nil {
			return nil, err
		}
		wp.Type = wsdl.Name(t)
		return wp, nil
	}
	q, err := g.resolver.ElementQName(p)
	if err != nil {
		return nil, err
	}
	wp.Element = wsdl.Name(q)
	if !p.IsImplicitSchemaElement() {
		g.importNamespace(q.Space)
		return wp, nil
	}
	el := &wsdl.Element{Name: q.Local}
	var shape string
	if w, ok := p.(*contract.Wrapper); ok {
		shape = fmt.Sprintf("wrapper %s output=%t", m.OperationName(), w.IsOutput())
		el.ComplexType = &wsdl.ComplexType{Sequence: &wsdl.Sequence{}}
		for _, c := range w.Children() {
			ce, err := g.child(m, c)
			if err != nil {
				return nil, err
			}
			el.ComplexType.Sequence.Elements = append(el.ComplexType.Sequence.Elements, ce)
		}
	} else {
		t, err := g.resolver.TypeQName(p)
		if err != nil {
			return nil, err
		}
		el.Type = wsdl.Name(t)
		shape = "type " + el.Type
		if f, ok := p.(*contract.WebFault); ok {
			shape += " fault " + f.Type().QualifiedName()
		}
		if d, ok := p.(interface{ ElementDocs() string }); ok {
			el.Doc = d.ElementDocs()
		}
	}
	dup, err := share(g.elements, "element", wp.Element, shape, m)
	if err != nil {
		return nil, err
	}
	if !dup {
		g.schema.Elements = append(g.schema.Elements, el)
	}
	return wp, nil
}

// child returns the sequence element of a wrapper child. A child in a
// namespace other than the target namespace references an element
// declared in the schema of its namespace.
func (g *generator) child(m *contract.WebMethod, c contract.ImplicitChildElement) (*wsdl.Element, error) {
	el := &wsdl.Element{
		Min: strconv.Itoa(c.MinOccurs()),
		Max: c.MaxOccurs(),
		Doc: c.ElementDocs(),
	}
	if !c.IsImplicitSchemaElement() {
		q, err := g.resolver.ElementQName(c)
		if err != nil {
			return nil, err
		}
		g.importNamespace(q.Space)
		el.Ref = wsdl.Name(q)
		return el, nil
	}
	t, err := g.resolver.TypeQName(c)
	if err != nil {
		return nil, err
	}
	ns := c.TargetNamespace()
	if ns == "" || ns == g.tns {
		el.Name = c.ElementName()
		el.Type = wsdl.Name(t)
		return el, nil
	}
	q := wsdl.Name(xml.Name{Space: ns, Local: c.ElementName()})
	dup, err := share(g.elements, "element", q, "type "+wsdl.Name(t), m)
	if err != nil {
		return nil, err
	}
	if !dup {
		s := g.schemaOf(ns)
		s.Elements = append(s.Elements, &wsdl.Element{Name: c.ElementName(), Type: wsdl.Name(t)})
	}
	g.importNamespace(ns)
	el.Ref = q
	return el, nil
}

// schemaOf returns the schema of namespace ns, adding it when missing.
func (g *generator) schemaOf(ns string) *wsdl.Schema {
	if s, ok := g.schemas[ns]; ok {
		return s
	}
	s := &wsdl.Schema{
		TargetNamespace:    ns,
		ElementFormDefault: "qualified",
	}
	g.schemas[ns] = s
	g.defs.Schemas = append(g.defs.Schemas, s)
	return s
}

func (g *generator) importNamespace(ns string) {
	if ns == "" || ns == g.tns || g.imports[ns] {
		return
	}
	g.imports[ns] = true
	g.schema.Imports = append(g.schema.Imports, &wsdl.ImportSchema{Namespace: ns})
}
