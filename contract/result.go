package contract

import (
	"fmt"

	"github.com/fiorix/wscontract/decl"
)

const defaultResultName = "return"

// WebResult is the return value of a web method.
type WebResult struct {
	typ     *decl.Type
	method  *WebMethod
	cfg     partConfig
	doc     string
	adapter *decl.AdapterBinding
}

func newWebResult(md *decl.MethodDecl, m *WebMethod) *WebResult {
	r := &WebResult{
		typ:     md.Returns,
		method:  m,
		doc:     md.ReturnDoc,
		adapter: md.ResultAdapter,
	}
	if r.typ == nil {
		r.typ = decl.VoidType
	}
	r.cfg = resultConfig(md.WebResult, m.endpoint.TargetNamespace())
	return r
}

// resultConfig applies the web result annotation over the defaults.
func resultConfig(ann *decl.WebResultAnnotation, interfaceNS string) partConfig {
	if ann == nil {
		ann = &decl.WebResultAnnotation{}
	}
	return partConfig{
		name:      orElse(ann.Name, defaultResultName),
		namespace: orElse(ann.TargetNamespace, interfaceNS),
		partName:  orElse(ann.PartName, defaultResultName),
		header:    ann.Header,
	}
}

// Name returns the name of the result.
func (r *WebResult) Name() string { return r.cfg.name }

// TargetNamespace returns the namespace of the result.
func (r *WebResult) TargetNamespace() string { return r.cfg.namespace }

// PartName returns the part name of the result.
func (r *WebResult) PartName() string { return r.cfg.partName }

// WebMethod returns the owning method.
func (r *WebResult) WebMethod() *WebMethod { return r.method }

// Type returns the declared return type.
func (r *WebResult) Type() *decl.Type { return r.typ }

// Adapter returns the adapter bound to the return value, if any.
func (r *WebResult) Adapter() *decl.AdapterBinding { return r.adapter }

// IsAdapted reports whether an adapter is bound to the return value.
func (r *WebResult) IsAdapted() bool { return r.adapter != nil }

// DocComment returns the documentation of the return value.
func (r *WebResult) DocComment() string { return r.doc }

func (r *WebResult) isBare() bool {
	return r.method.ParameterStyle() == Bare
}

// MessageName returns the response message name of the method.
func (r *WebResult) MessageName() string {
	return r.method.ResponseMessageName()
}

// MessageDocs returns the result documentation when the result is bare,
// in which case it stands for the whole message, and "" otherwise.
func (r *WebResult) MessageDocs() string {
	if r.isBare() {
		return r.doc
	}
	return ""
}

// PartDocs returns the result documentation when the result is a part of
// a wrapper, and "" when it is bare.
func (r *WebResult) PartDocs() string {
	if r.isBare() {
		return ""
	}
	return r.doc
}

// IsInput always returns false.
func (r *WebResult) IsInput() bool { return false }

// IsOutput always returns true.
func (r *WebResult) IsOutput() bool { return true }

// IsHeader reports whether the result travels in a SOAP header.
func (r *WebResult) IsHeader() bool { return r.cfg.header }

// IsFault always returns false.
func (r *WebResult) IsFault() bool { return false }

// Parts returns the result itself when it is bare. A wrapped result is not
// a message of its own and returns ErrUnsupported.
func (r *WebResult) Parts() ([]WebMessagePart, error) {
	if !r.isBare() {
		return nil, fmt.Errorf("%w: web result of %s doesn't represent a complex method input/output",
			ErrUnsupported, r.method.OperationName())
	}
	return []WebMessagePart{r}, nil
}

// IsImplicitSchemaElement reports whether the return type is anything but
// a root element class.
func (r *WebResult) IsImplicitSchemaElement() bool {
	return !r.typ.IsRootElementClass()
}

// MinOccurs returns the minimum occurrences of the result element.
func (r *WebResult) MinOccurs() int { return minOccurs(r.typ) }

// MaxOccurs returns the maximum occurrences of the result element.
func (r *WebResult) MaxOccurs() string { return maxOccurs(r.typ) }

// ElementName returns the name of the result element.
func (r *WebResult) ElementName() string { return r.cfg.name }

// ElementDocs returns the documentation of the result element.
func (r *WebResult) ElementDocs() string { return r.doc }
