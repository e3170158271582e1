package contract

import (
	"fmt"

	"github.com/fiorix/wscontract/decl"
)

// WebMethod is an operation of an endpoint interface.
type WebMethod struct {
	decl          *decl.MethodDecl
	endpoint      *EndpointInterface
	operationName string
	action        string
	binding       soapBinding
	oneway        bool
	result        *WebResult
	params        []*WebParam
	faults        []*WebFault
}

func newWebMethod(md *decl.MethodDecl, ei *EndpointInterface) (*WebMethod, error) {
	m := &WebMethod{
		decl:          md,
		endpoint:      ei,
		operationName: md.Name,
		oneway:        md.Oneway,
	}
	if wm := md.WebMethod; wm != nil {
		m.operationName = orElse(wm.OperationName, md.Name)
		m.action = wm.Action
	}
	var err error
	m.binding, err = ei.binding.override(md.SOAPBinding, md.Pos)
	if err != nil {
		return nil, err
	}
	m.result = newWebResult(md, m)
	for i, pd := range md.Params {
		p, err := newWebParam(pd, i, m)
		if err != nil {
			return nil, err
		}
		m.params = append(m.params, p)
	}
	for _, t := range md.Throws {
		if !t.IsDeclared() {
			return nil, fmt.Errorf("%s: %s throws %s, which is not a class",
				md.Pos, m.operationName, t)
		}
		m.faults = append(m.faults, &WebFault{typ: t, method: m})
	}
	if m.oneway {
		if !m.result.typ.IsVoid() {
			return nil, fmt.Errorf("%s: one-way operation %s must return void", md.Pos, m.operationName)
		}
		for _, p := range m.params {
			if p.IsOutput() {
				return nil, fmt.Errorf("%s: one-way operation %s cannot have output parameter %q",
					md.Pos, m.operationName, p.Name())
			}
		}
	}
	return m, nil
}

// Decl returns the method declaration.
func (m *WebMethod) Decl() *decl.MethodDecl { return m.decl }

// Endpoint returns the declaring endpoint interface.
func (m *WebMethod) Endpoint() *EndpointInterface { return m.endpoint }

// Position returns the position of the method declaration.
func (m *WebMethod) Position() decl.Position { return m.decl.Pos }

// OperationName returns the name of the operation.
func (m *WebMethod) OperationName() string { return m.operationName }

// Action returns the SOAP action of the operation.
func (m *WebMethod) Action() string { return m.action }

// Style returns the binding style of the method.
func (m *WebMethod) Style() Style { return m.binding.style }

// Use returns the binding use of the method.
func (m *WebMethod) Use() Use { return m.binding.use }

// ParameterStyle returns the parameter style of the method.
func (m *WebMethod) ParameterStyle() ParameterStyle { return m.binding.paramStyle }

// IsOneWay reports whether the operation has no response.
func (m *WebMethod) IsOneWay() bool { return m.oneway }

// RequestMessageName returns the name of the request message.
func (m *WebMethod) RequestMessageName() string { return m.operationName }

// ResponseMessageName returns the name of the response message.
func (m *WebMethod) ResponseMessageName() string { return m.operationName + "Response" }

// WebResult returns the result of the method.
func (m *WebMethod) WebResult() *WebResult { return m.result }

// WebParameters returns the parameters of the method in declaration order.
func (m *WebMethod) WebParameters() []*WebParam { return m.params }

// WebFaults returns the faults of the method.
func (m *WebMethod) WebFaults() []*WebFault { return m.faults }

// Doc returns the documentation of the method.
func (m *WebMethod) Doc() string { return m.decl.Doc }

// EvalName returns a description of the method for diagnostics.
func (m *WebMethod) EvalName() string {
	return fmt.Sprintf("operation %q of %s", m.operationName, m.endpoint.Name())
}

// hasResult reports whether the method returns a value on the wire.
func (m *WebMethod) hasResult() bool {
	return !m.oneway && !m.result.typ.IsVoid()
}

// Messages returns the messages exchanged by the operation: inputs first,
// then outputs, then headers of wrapped methods, then faults.
func (m *WebMethod) Messages() []WebMessage {
	var msgs []WebMessage
	if m.binding.paramStyle == Bare {
		for _, p := range m.params {
			if p.IsInput() {
				msgs = append(msgs, p)
			}
		}
		if m.hasResult() {
			msgs = append(msgs, m.result)
		}
		for _, p := range m.params {
			switch {
			case p.IsOutput() && p.IsInput():
				msgs = append(msgs, &paramOutput{p})
			case p.IsOutput():
				msgs = append(msgs, p)
			}
		}
	} else {
		msgs = append(msgs, &Wrapper{method: m})
		if !m.oneway {
			msgs = append(msgs, &Wrapper{method: m, output: true})
		}
		for _, p := range m.params {
			if p.IsHeader() {
				msgs = append(msgs, p)
			}
		}
		if m.hasResult() && m.result.IsHeader() {
			msgs = append(msgs, &headerResult{m.result})
		}
	}
	for _, f := range m.faults {
		msgs = append(msgs, f)
	}
	return msgs
}

// BodyInputs returns the parameters sent in the request body.
func (m *WebMethod) BodyInputs() []*WebParam {
	var ps []*WebParam
	for _, p := range m.params {
		if p.IsInput() && !p.IsHeader() {
			ps = append(ps, p)
		}
	}
	return ps
}
