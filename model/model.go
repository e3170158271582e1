// Package model builds the rendering view of endpoint interfaces: the
// resolved names, shapes and classnames of every message part, flattened
// into plain values templates and encoders consume.
package model

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/fiorix/wscontract/classname"
	"github.com/fiorix/wscontract/contract"
)

// Endpoint is the view of an endpoint interface.
type Endpoint struct {
	Name           string      `yaml:"name" json:"name"`
	Namespace      string      `yaml:"namespace" json:"namespace"`
	ServiceName    string      `yaml:"serviceName" json:"serviceName"`
	PortName       string      `yaml:"portName" json:"portName"`
	Style          string      `yaml:"style" json:"style"`
	Use            string      `yaml:"use" json:"use"`
	ParameterStyle string      `yaml:"parameterStyle" json:"parameterStyle"`
	Doc            string      `yaml:"doc,omitempty" json:"doc,omitempty"`
	Operations     []Operation `yaml:"operations" json:"operations"`
}

// Operation is the view of a web method.
type Operation struct {
	Name           string    `yaml:"name" json:"name"`
	Action         string    `yaml:"action,omitempty" json:"action,omitempty"`
	Style          string    `yaml:"style" json:"style"`
	Use            string    `yaml:"use" json:"use"`
	ParameterStyle string    `yaml:"parameterStyle" json:"parameterStyle"`
	OneWay         bool      `yaml:"oneWay,omitempty" json:"oneWay,omitempty"`
	Doc            string    `yaml:"doc,omitempty" json:"doc,omitempty"`
	Messages       []Message `yaml:"messages" json:"messages"`
}

// Message roles.
const (
	RoleInput  = "input"
	RoleOutput = "output"
	RoleInOut  = "inout"
	RoleFault  = "fault"
)

// Message is the view of a message of an operation.
type Message struct {
	Name   string `yaml:"name" json:"name"`
	Role   string `yaml:"role" json:"role"`
	Header bool   `yaml:"header,omitempty" json:"header,omitempty"`
	Docs   string `yaml:"docs,omitempty" json:"docs,omitempty"`
	Parts  []Part `yaml:"parts" json:"parts"`
}

// Part is the view of a message part or of a child element of a wrapper.
// Qualified names are written as {namespace}local.
type Part struct {
	Name      string `yaml:"name" json:"name"`
	Namespace string `yaml:"namespace" json:"namespace"`
	PartName  string `yaml:"partName,omitempty" json:"partName,omitempty"`
	Header    bool   `yaml:"header,omitempty" json:"header,omitempty"`
	MinOccurs int    `yaml:"minOccurs" json:"minOccurs"`
	MaxOccurs string `yaml:"maxOccurs" json:"maxOccurs"`
	Implicit  bool   `yaml:"implicit" json:"implicit"`
	Element   string `yaml:"element" json:"element"`
	Type      string `yaml:"type,omitempty" json:"type,omitempty"`
	Classname string `yaml:"classname,omitempty" json:"classname,omitempty"`
	Docs      string `yaml:"docs,omitempty" json:"docs,omitempty"`
	Children  []Part `yaml:"children,omitempty" json:"children,omitempty"`
}

// QName formats a qualified name as {namespace}local, or local when it has
// no namespace.
func QName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return "{" + n.Space + "}" + n.Local
}

// Build validates ei and returns its view. Classnames are projected with
// conv.
func Build(ei *contract.EndpointInterface, r *contract.Resolver, conv *classname.Converter) (*Endpoint, error) {
	if err := contract.Validate(r, ei); err != nil {
		return nil, err
	}
	b := &builder{resolver: r, conv: conv}
	e := &Endpoint{
		Name:           ei.Name(),
		Namespace:      ei.TargetNamespace(),
		ServiceName:    ei.ServiceName(),
		PortName:       ei.PortName(),
		Style:          string(ei.Style()),
		Use:            string(ei.Use()),
		ParameterStyle: string(ei.ParameterStyle()),
		Doc:            ei.Doc(),
	}
	for _, m := range ei.WebMethods() {
		op, err := b.operation(m)
		if err != nil {
			return nil, err
		}
		e.Operations = append(e.Operations, op)
	}
	log.Debug().
		Str("endpoint", e.Name).
		Int("operations", len(e.Operations)).
		Msg("built endpoint model")
	return e, nil
}

type builder struct {
	resolver *contract.Resolver
	conv     *classname.Converter
}

func (b *builder) operation(m *contract.WebMethod) (Operation, error) {
	op := Operation{
		Name:           m.OperationName(),
		Action:         m.Action(),
		Style:          string(m.Style()),
		Use:            string(m.Use()),
		ParameterStyle: string(m.ParameterStyle()),
		OneWay:         m.IsOneWay(),
		Doc:            m.Doc(),
	}
	for _, msg := range m.Messages() {
		v := Message{
			Name:   msg.MessageName(),
			Role:   role(msg),
			Header: msg.IsHeader(),
			Docs:   msg.MessageDocs(),
		}
		parts, err := msg.Parts()
		if err != nil {
			return op, err
		}
		for _, p := range parts {
			pv, err := b.part(p)
			if err != nil {
				return op, err
			}
			v.Parts = append(v.Parts, pv)
		}
		op.Messages = append(op.Messages, v)
	}
	return op, nil
}

func role(msg contract.WebMessage) string {
	switch {
	case msg.IsFault():
		return RoleFault
	case msg.IsInput() && msg.IsOutput():
		return RoleInOut
	case msg.IsOutput():
		return RoleOutput
	}
	return RoleInput
}

func (b *builder) part(p contract.WebMessagePart) (Part, error) {
	el, err := b.resolver.ElementQName(p)
	if err != nil {
		return Part{}, err
	}
	v := Part{
		Name:      p.ElementName(),
		Namespace: el.Space,
		PartName:  p.PartName(),
		MinOccurs: 1,
		MaxOccurs: "1",
		Implicit:  p.IsImplicitSchemaElement(),
		Element:   QName(el),
		Docs:      p.PartDocs(),
	}
	if w, ok := p.(*contract.Wrapper); ok {
		for _, c := range w.Children() {
			cv, err := b.child(c)
			if err != nil {
				return Part{}, err
			}
			v.Children = append(v.Children, cv)
		}
		return v, nil
	}
	if c, ok := p.(contract.ImplicitChildElement); ok {
		v.Namespace = c.TargetNamespace()
		v.MinOccurs = c.MinOccurs()
		v.MaxOccurs = c.MaxOccurs()
		v.Header = isHeader(c)
		if v.Docs == "" {
			v.Docs = c.ElementDocs()
		}
	}
	if tp, ok := p.(contract.TypedPart); ok {
		v.Classname = b.conv.Part(tp)
		if v.Implicit {
			t, err := b.resolver.TypeQName(tp)
			if err != nil {
				return Part{}, err
			}
			v.Type = QName(t)
		}
	}
	return v, nil
}

// child is the view of a wrapper child, which has no part name.
func (b *builder) child(c contract.ImplicitChildElement) (Part, error) {
	v, err := b.part(c)
	if err != nil {
		return Part{}, err
	}
	v.PartName = ""
	v.Docs = c.ElementDocs()
	return v, nil
}

func isHeader(c contract.ImplicitChildElement) bool {
	h, ok := c.(interface{ IsHeader() bool })
	return ok && h.IsHeader()
}

// Formats accepted by Write.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Write encodes endpoints to w in the given format.
func Write(w io.Writer, format string, endpoints []*Endpoint) error {
	switch format {
	case "", FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(endpoints); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(endpoints)
	}
	return fmt.Errorf("unknown format %q", format)
}
