// Package contract resolves annotated endpoint interfaces into the wire
// contract of their operations: the messages each operation exchanges, the
// role of each message part and the XML names that identify it.
package contract

import (
	"fmt"
	"strings"

	"github.com/fiorix/wscontract/decl"
)

// Style is the SOAP binding style.
type Style string

// Binding styles.
const (
	Document Style = "DOCUMENT"
	RPC      Style = "RPC"
)

// Use is the SOAP binding use.
type Use string

// Binding uses.
const (
	Literal Use = "LITERAL"
	Encoded Use = "ENCODED"
)

// ParameterStyle is the SOAP parameter style.
type ParameterStyle string

// Parameter styles.
const (
	Wrapped ParameterStyle = "WRAPPED"
	Bare    ParameterStyle = "BARE"
)

// soapBinding is a resolved SOAP binding.
type soapBinding struct {
	style      Style
	use        Use
	paramStyle ParameterStyle
}

var defaultBinding = soapBinding{style: Document, use: Literal, paramStyle: Wrapped}

// override returns b with the attributes set in ann replacing its own.
func (b soapBinding) override(ann *decl.SOAPBindingAnnotation, pos decl.Position) (soapBinding, error) {
	if ann == nil {
		return b, nil
	}
	if v := strings.ToUpper(ann.Style); v != "" {
		switch Style(v) {
		case Document, RPC:
			b.style = Style(v)
		default:
			return b, fmt.Errorf("%s: unknown SOAP binding style %q", pos, ann.Style)
		}
	}
	if v := strings.ToUpper(ann.Use); v != "" {
		switch Use(v) {
		case Literal, Encoded:
			b.use = Use(v)
		default:
			return b, fmt.Errorf("%s: unknown SOAP binding use %q", pos, ann.Use)
		}
	}
	if v := strings.ToUpper(ann.ParameterStyle); v != "" {
		switch ParameterStyle(v) {
		case Wrapped, Bare:
			b.paramStyle = ParameterStyle(v)
		default:
			return b, fmt.Errorf("%s: unknown SOAP parameter style %q", pos, ann.ParameterStyle)
		}
	}
	return b, nil
}

// EndpointInterface is an interface declaration exposed as a web service.
type EndpointInterface struct {
	decl        *decl.TypeDecl
	name        string
	namespace   string
	serviceName string
	portName    string
	binding     soapBinding
	methods     []*WebMethod
}

// NewEndpointInterface builds the endpoint interface of d, which must carry
// a web service annotation.
func NewEndpointInterface(d *decl.TypeDecl) (*EndpointInterface, error) {
	ws := d.WebService
	if ws == nil {
		return nil, fmt.Errorf("%s: %s is not a web service", d.Pos, d.QualifiedName())
	}
	ei := &EndpointInterface{
		decl:      d,
		name:      orElse(ws.Name, d.Name),
		namespace: orElse(ws.TargetNamespace, DefaultNamespace(d.Package)),
	}
	if ei.namespace == "" {
		return nil, fmt.Errorf("%s: %s is in the default package and must declare a target namespace",
			d.Pos, d.QualifiedName())
	}
	ei.serviceName = orElse(ws.ServiceName, ei.name+"Service")
	ei.portName = orElse(ws.PortName, ei.name+"Port")
	var err error
	ei.binding, err = defaultBinding.override(d.SOAPBinding, d.Pos)
	if err != nil {
		return nil, err
	}
	for _, md := range d.Methods {
		if md.WebMethod != nil && md.WebMethod.Exclude {
			continue
		}
		m, err := newWebMethod(md, ei)
		if err != nil {
			return nil, err
		}
		ei.methods = append(ei.methods, m)
	}
	return ei, nil
}

// DefaultNamespace derives a target namespace from a package name by
// reversing its segments: com.example.api becomes http://api.example.com/.
func DefaultNamespace(pkg *decl.Package) string {
	segs := pkg.Segments()
	if len(segs) == 0 {
		return ""
	}
	rev := make([]string, len(segs))
	for i, s := range segs {
		rev[len(segs)-1-i] = s
	}
	return "http://" + strings.Join(rev, ".") + "/"
}

// Decl returns the interface declaration.
func (ei *EndpointInterface) Decl() *decl.TypeDecl { return ei.decl }

// Name returns the port type name.
func (ei *EndpointInterface) Name() string { return ei.name }

// SimpleName returns the declared simple name of the interface.
func (ei *EndpointInterface) SimpleName() string { return ei.decl.Name }

// TargetNamespace returns the namespace of the interface.
func (ei *EndpointInterface) TargetNamespace() string { return ei.namespace }

// ServiceName returns the name of the service exposing the interface.
func (ei *EndpointInterface) ServiceName() string { return ei.serviceName }

// PortName returns the name of the service port.
func (ei *EndpointInterface) PortName() string { return ei.portName }

// Style returns the interface binding style.
func (ei *EndpointInterface) Style() Style { return ei.binding.style }

// Use returns the interface binding use.
func (ei *EndpointInterface) Use() Use { return ei.binding.use }

// ParameterStyle returns the interface parameter style.
func (ei *EndpointInterface) ParameterStyle() ParameterStyle { return ei.binding.paramStyle }

// WebMethods returns the operations of the interface in declaration order.
func (ei *EndpointInterface) WebMethods() []*WebMethod { return ei.methods }

// Doc returns the documentation of the interface.
func (ei *EndpointInterface) Doc() string { return ei.decl.Doc }

// EvalName returns a description of the interface for diagnostics.
func (ei *EndpointInterface) EvalName() string {
	return fmt.Sprintf("endpoint interface %q", ei.decl.QualifiedName())
}
