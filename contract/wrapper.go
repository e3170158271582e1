package contract

import "encoding/xml"

// wrapperPartName is the part name of a document wrapped message.
const wrapperPartName = "parameters"

// Wrapper is the request or response message of a wrapped method. In
// document style it is a single part whose element wraps the non-header
// parameters (and result); in RPC style the children are the parts.
type Wrapper struct {
	method *WebMethod
	output bool
}

// WebMethod returns the owning method.
func (w *Wrapper) WebMethod() *WebMethod { return w.method }

// MessageName returns the request or response message name.
func (w *Wrapper) MessageName() string {
	if w.output {
		return w.method.ResponseMessageName()
	}
	return w.method.RequestMessageName()
}

// MessageDocs returns "" for requests and the result documentation for
// responses.
func (w *Wrapper) MessageDocs() string {
	if w.output {
		return w.method.result.doc
	}
	return ""
}

// Parts returns the wrapper itself in document style and the children in
// RPC style.
func (w *Wrapper) Parts() ([]WebMessagePart, error) {
	if w.method.Style() == RPC {
		var parts []WebMessagePart
		for _, c := range w.Children() {
			parts = append(parts, c)
		}
		return parts, nil
	}
	return []WebMessagePart{w}, nil
}

// IsInput reports whether the wrapper is the request.
func (w *Wrapper) IsInput() bool { return !w.output }

// IsOutput reports whether the wrapper is the response.
func (w *Wrapper) IsOutput() bool { return w.output }

// IsHeader always returns false.
func (w *Wrapper) IsHeader() bool { return false }

// IsFault always returns false.
func (w *Wrapper) IsFault() bool { return false }

// PartName returns "parameters".
func (w *Wrapper) PartName() string { return wrapperPartName }

// PartDocs returns "".
func (w *Wrapper) PartDocs() string { return "" }

// ElementName returns the name of the wrapper element.
func (w *Wrapper) ElementName() string { return w.MessageName() }

// ElementQName returns the wrapper element name in the interface
// namespace.
func (w *Wrapper) ElementQName() xml.Name {
	return xml.Name{Space: w.method.endpoint.TargetNamespace(), Local: w.ElementName()}
}

// ElementDocs returns the documentation of the wrapper element.
func (w *Wrapper) ElementDocs() string { return w.MessageDocs() }

// IsImplicitSchemaElement always returns true, wrapper elements are
// synthesized.
func (w *Wrapper) IsImplicitSchemaElement() bool { return true }

// Children returns the elements of the wrapper sequence: the non-header
// input parameters of a request, or the non-header result and output
// parameters of a response.
func (w *Wrapper) Children() []ImplicitChildElement {
	var cs []ImplicitChildElement
	m := w.method
	if !w.output {
		for _, p := range m.BodyInputs() {
			cs = append(cs, p)
		}
		return cs
	}
	if m.hasResult() && !m.result.IsHeader() {
		cs = append(cs, m.result)
	}
	for _, p := range m.params {
		if p.IsOutput() && !p.IsHeader() {
			cs = append(cs, p)
		}
	}
	return cs
}

// headerResult is the header message of a wrapped method result.
type headerResult struct {
	*WebResult
}

func (h *headerResult) MessageName() string {
	return h.method.ResponseMessageName() + "." + h.cfg.partName
}

func (h *headerResult) MessageDocs() string { return h.doc }

func (h *headerResult) Parts() ([]WebMessagePart, error) {
	return []WebMessagePart{h.WebResult}, nil
}

// paramOutput is the response message of a bare INOUT parameter.
type paramOutput struct {
	*WebParam
}

func (o *paramOutput) MessageName() string {
	return o.method.ResponseMessageName() + "." + o.cfg.partName
}

func (o *paramOutput) IsInput() bool { return false }

func (o *paramOutput) Parts() ([]WebMessagePart, error) {
	return []WebMessagePart{o.WebParam}, nil
}

var (
	_ WebMessage           = (*Wrapper)(nil)
	_ WebMessagePart       = (*Wrapper)(nil)
	_ WebMessage           = (*headerResult)(nil)
	_ WebMessage           = (*paramOutput)(nil)
	_ WebMessage           = (*WebResult)(nil)
	_ ImplicitChildElement = (*WebResult)(nil)
	_ WebMessage           = (*WebParam)(nil)
	_ ImplicitChildElement = (*WebParam)(nil)
	_ WebMessage           = (*WebFault)(nil)
	_ TypedPart            = (*WebFault)(nil)
)
