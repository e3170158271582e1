package contract

import "github.com/fiorix/wscontract/decl"

// WebMessage is a message exchanged by an operation.
type WebMessage interface {
	// MessageName returns the name of the message.
	MessageName() string
	// MessageDocs returns the documentation of the message, if any.
	MessageDocs() string
	// Parts returns the parts of the message. Asking a shape that does not
	// stand for a whole message returns ErrUnsupported.
	Parts() ([]WebMessagePart, error)
	IsInput() bool
	IsOutput() bool
	IsHeader() bool
	IsFault() bool
}

// WebMessagePart is a part of a message.
type WebMessagePart interface {
	PartName() string
	PartDocs() string
	ElementName() string
	// IsImplicitSchemaElement reports whether the part needs a schema
	// element synthesized for it, as opposed to referencing a declared
	// root element.
	IsImplicitSchemaElement() bool
}

// TypedPart is a message part defined by a declared type: a web result, a
// web parameter or a web fault.
type TypedPart interface {
	WebMessagePart
	// Type returns the declared type of the part.
	Type() *decl.Type
	// Adapter returns the adapter bound to the part, if any.
	Adapter() *decl.AdapterBinding
	// WebMethod returns the method owning the part.
	WebMethod() *WebMethod
}

// ImplicitChildElement is a typed part rendered as a child element of a
// wrapper element or as an implicit schema element.
type ImplicitChildElement interface {
	TypedPart
	TargetNamespace() string
	MinOccurs() int
	MaxOccurs() string
	ElementDocs() string
}

// partConfig holds the resolved naming of a part. Each field is the
// annotation value when one is given, else its default.
type partConfig struct {
	name      string
	namespace string
	partName  string
	header    bool
}

// orElse returns v, or def when v is not specified.
func orElse(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

// minOccurs returns 1 for primitives, which cannot be absent, else 0.
func minOccurs(t *decl.Type) int {
	if t.IsPrimitive() {
		return 1
	}
	return 0
}

// maxOccurs returns "unbounded" for arrays and collections, else "1".
func maxOccurs(t *decl.Type) string {
	if t.IsArray() || t.IsCollection() {
		return "unbounded"
	}
	return "1"
}
