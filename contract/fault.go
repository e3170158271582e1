package contract

import "github.com/fiorix/wscontract/decl"

// WebFault is a declared exception of a web method.
type WebFault struct {
	typ    *decl.Type
	method *WebMethod
}

// Name returns the simple name of the fault class.
func (f *WebFault) Name() string { return f.typ.Decl().Name }

// WebMethod returns the owning method.
func (f *WebFault) WebMethod() *WebMethod { return f.method }

// Type returns the fault class type.
func (f *WebFault) Type() *decl.Type { return f.typ }

// Adapter always returns nil, faults cannot be adapted.
func (f *WebFault) Adapter() *decl.AdapterBinding { return nil }

// TargetNamespace returns the namespace of the declaring interface.
func (f *WebFault) TargetNamespace() string {
	return f.method.endpoint.TargetNamespace()
}

// MessageName returns the name of the fault message.
func (f *WebFault) MessageName() string { return f.Name() }

// MessageDocs returns the documentation of the fault class.
func (f *WebFault) MessageDocs() string { return f.typ.Decl().Doc }

// Parts returns the fault itself.
func (f *WebFault) Parts() ([]WebMessagePart, error) {
	return []WebMessagePart{f}, nil
}

// IsInput always returns false.
func (f *WebFault) IsInput() bool { return false }

// IsOutput always returns false.
func (f *WebFault) IsOutput() bool { return false }

// IsHeader always returns false.
func (f *WebFault) IsHeader() bool { return false }

// IsFault always returns true.
func (f *WebFault) IsFault() bool { return true }

// PartName returns the name of the fault part.
func (f *WebFault) PartName() string { return "fault" }

// PartDocs returns "", the fault documents the message instead.
func (f *WebFault) PartDocs() string { return "" }

// ElementName returns the name of the fault element.
func (f *WebFault) ElementName() string { return f.Name() }

// IsImplicitSchemaElement reports whether the fault class is anything but
// a root element class.
func (f *WebFault) IsImplicitSchemaElement() bool {
	return !f.typ.IsRootElementClass()
}

// MinOccurs returns 1, a fault always carries its detail.
func (f *WebFault) MinOccurs() int { return 1 }

// MaxOccurs returns "1".
func (f *WebFault) MaxOccurs() string { return "1" }

// ElementDocs returns the documentation of the fault class.
func (f *WebFault) ElementDocs() string { return f.typ.Decl().Doc }
