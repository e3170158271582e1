package contract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fiorix/wscontract/decl"
)

// Mode is the direction of a web parameter.
type Mode string

// Parameter modes.
const (
	In    Mode = "IN"
	Out   Mode = "OUT"
	InOut Mode = "INOUT"
)

// holderClass wraps OUT and INOUT parameter values.
const holderClass = "javax.xml.ws.Holder"

// WebParam is a parameter of a web method.
type WebParam struct {
	decl    *decl.ParamDecl
	typ     *decl.Type
	method  *WebMethod
	index   int
	mode    Mode
	cfg     partConfig
	adapter *decl.AdapterBinding
}

func newWebParam(pd *decl.ParamDecl, index int, m *WebMethod) (*WebParam, error) {
	p := &WebParam{
		decl:    pd,
		typ:     pd.Type,
		method:  m,
		index:   index,
		mode:    In,
		adapter: pd.Adapter,
	}
	holder := isHolder(pd.Type)
	if holder {
		p.typ = holderValue(pd.Type)
		p.mode = InOut
	}
	ann := pd.WebParam
	if ann == nil {
		ann = &decl.WebParamAnnotation{}
	}
	if v := strings.ToUpper(ann.Mode); v != "" {
		switch Mode(v) {
		case In, Out, InOut:
			p.mode = Mode(v)
		default:
			return nil, fmt.Errorf("%s: unknown web parameter mode %q", pd.Pos, ann.Mode)
		}
	}
	if p.mode != In && !holder {
		return nil, fmt.Errorf("%s: %s parameter %q must be declared as a %s",
			pd.Pos, p.mode, pd.Name, holderClass)
	}
	name := orElse(ann.Name, p.defaultName())
	p.cfg = partConfig{
		name:      name,
		namespace: orElse(ann.TargetNamespace, m.endpoint.TargetNamespace()),
		partName:  orElse(ann.PartName, name),
		header:    ann.Header,
	}
	return p, nil
}

func isHolder(t *decl.Type) bool {
	return t.IsDeclared() && t.Decl().QualifiedName() == holderClass
}

func holderValue(t *decl.Type) *decl.Type {
	if args := t.Args(); len(args) == 1 {
		return args[0]
	}
	return t
}

// defaultName follows the JAX-WS defaults: a bare parameter is named after
// the operation, a wrapped one after its position.
func (p *WebParam) defaultName() string {
	if p.method.ParameterStyle() == Bare {
		if p.mode == In {
			return p.method.OperationName()
		}
		return p.method.ResponseMessageName()
	}
	return "arg" + strconv.Itoa(p.index)
}

// Name returns the name of the parameter.
func (p *WebParam) Name() string { return p.cfg.name }

// DeclaredName returns the parameter name as declared.
func (p *WebParam) DeclaredName() string { return p.decl.Name }

// TargetNamespace returns the namespace of the parameter.
func (p *WebParam) TargetNamespace() string { return p.cfg.namespace }

// PartName returns the part name of the parameter.
func (p *WebParam) PartName() string { return p.cfg.partName }

// Index returns the position of the parameter in the method signature.
func (p *WebParam) Index() int { return p.index }

// Mode returns the direction of the parameter.
func (p *WebParam) Mode() Mode { return p.mode }

// WebMethod returns the owning method.
func (p *WebParam) WebMethod() *WebMethod { return p.method }

// Type returns the declared type of the parameter value. Holder wrappers
// are unwrapped.
func (p *WebParam) Type() *decl.Type { return p.typ }

// Adapter returns the adapter bound to the parameter, if any.
func (p *WebParam) Adapter() *decl.AdapterBinding { return p.adapter }

// IsAdapted reports whether an adapter is bound to the parameter.
func (p *WebParam) IsAdapted() bool { return p.adapter != nil }

// DocComment returns the documentation of the parameter.
func (p *WebParam) DocComment() string { return p.decl.Doc }

// Position returns the position of the parameter declaration.
func (p *WebParam) Position() decl.Position { return p.decl.Pos }

func (p *WebParam) isBare() bool {
	return p.method.ParameterStyle() == Bare
}

// MessageName returns the name of the message the parameter stands for
// when it is bare or a header. Output only parameters are named after the
// response message.
func (p *WebParam) MessageName() string {
	switch {
	case !p.IsInput():
		return p.method.ResponseMessageName() + "." + p.cfg.partName
	case p.cfg.header:
		return p.method.OperationName() + "." + p.cfg.partName
	}
	return p.method.OperationName()
}

// MessageDocs returns the parameter documentation when the parameter is
// bare, "" otherwise.
func (p *WebParam) MessageDocs() string {
	if p.isBare() {
		return p.decl.Doc
	}
	return ""
}

// PartDocs returns the parameter documentation when the parameter is part
// of a wrapper, "" when it is bare.
func (p *WebParam) PartDocs() string {
	if p.isBare() {
		return ""
	}
	return p.decl.Doc
}

// IsInput reports whether the parameter is sent with the request.
func (p *WebParam) IsInput() bool { return p.mode != Out }

// IsOutput reports whether the parameter is returned with the response.
func (p *WebParam) IsOutput() bool { return p.mode != In }

// IsHeader reports whether the parameter travels in a SOAP header.
func (p *WebParam) IsHeader() bool { return p.cfg.header }

// IsFault always returns false.
func (p *WebParam) IsFault() bool { return false }

// Parts returns the parameter itself when it is bare or a header. Other
// parameters are children of a wrapper and return ErrUnsupported.
func (p *WebParam) Parts() ([]WebMessagePart, error) {
	if !p.isBare() && !p.cfg.header {
		return nil, fmt.Errorf("%w: web parameter %q of %s doesn't represent a complex method input/output",
			ErrUnsupported, p.cfg.name, p.method.OperationName())
	}
	return []WebMessagePart{p}, nil
}

// IsImplicitSchemaElement reports whether the parameter type is anything
// but a root element class.
func (p *WebParam) IsImplicitSchemaElement() bool {
	return !p.typ.IsRootElementClass()
}

// MinOccurs returns the minimum occurrences of the parameter element.
func (p *WebParam) MinOccurs() int { return minOccurs(p.typ) }

// MaxOccurs returns the maximum occurrences of the parameter element.
func (p *WebParam) MaxOccurs() string { return maxOccurs(p.typ) }

// ElementName returns the name of the parameter element.
func (p *WebParam) ElementName() string { return p.cfg.name }

// ElementDocs returns the documentation of the parameter element.
func (p *WebParam) ElementDocs() string { return p.decl.Doc }
