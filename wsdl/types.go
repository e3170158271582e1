package wsdl

import "encoding/xml"

// Namespaces of the WSDL 1.1 vocabularies.
const (
	WSDLNamespace   = "http://schemas.xmlsoap.org/wsdl/"
	SOAPNamespace   = "http://schemas.xmlsoap.org/wsdl/soap/"
	SchemaNamespace = "http://www.w3.org/2001/XMLSchema"
	HTTPTransport   = "http://schemas.xmlsoap.org/soap/http"
)

// Definitions is the root element of a WSDL document.
//
// Attributes holding qualified names (part elements, message references,
// schema types) are kept as {namespace}local strings; see Name and
// ParseName. Unmarshal resolves document prefixes into that form and
// Marshal allocates prefixes for it.
type Definitions struct {
	XMLName         xml.Name    `xml:"definitions"`
	Name            string      `xml:"name,attr"`
	TargetNamespace string      `xml:"targetNamespace,attr"`
	Doc             string      `xml:"documentation"`
	Imports         []*Import   `xml:"import"`
	Schemas         []*Schema   `xml:"types>schema"`
	Messages        []*Message  `xml:"message"`
	PortTypes       []*PortType `xml:"portType"`
	Bindings        []*Binding  `xml:"binding"`
	Services        []*Service  `xml:"service"`
	Attrs           []xml.Attr  `xml:",any,attr"`
}

// Service defines a WSDL service and with a location, like an HTTP server.
type Service struct {
	Name  string  `xml:"name,attr"`
	Doc   string  `xml:"documentation"`
	Ports []*Port `xml:"port"`
}

// Port for WSDL service.
type Port struct {
	Name    string  `xml:"name,attr"`
	Binding string  `xml:"binding,attr"`
	Address Address `xml:"address"`
}

// Address of WSDL service.
type Address struct {
	Location string `xml:"location,attr"`
}

// Schema of WSDL document.
type Schema struct {
	TargetNamespace    string          `xml:"targetNamespace,attr"`
	ElementFormDefault string          `xml:"elementFormDefault,attr"`
	Imports            []*ImportSchema `xml:"import"`
	ComplexTypes       []*ComplexType  `xml:"complexType"`
	Elements           []*Element      `xml:"element"`
	Attrs              []xml.Attr      `xml:",any,attr"`
}

// ComplexType describes a complex type, such as a struct.
type ComplexType struct {
	Name     string    `xml:"name,attr"`
	Doc      string    `xml:"annotation>documentation"`
	Sequence *Sequence `xml:"sequence"`
}

// Sequence describes a list of elements (parameters) of a type.
type Sequence struct {
	Elements []*Element `xml:"element"`
}

// Element describes an element of a given type. Local elements of a
// sequence carry occurrence bounds; Min and Max are left empty on global
// elements.
type Element struct {
	Name        string       `xml:"name,attr"`
	Ref         string       `xml:"ref,attr"`
	Type        string       `xml:"type,attr"`
	Min         string       `xml:"minOccurs,attr"`
	Max         string       `xml:"maxOccurs,attr"` // can be # or unbounded
	Nillable    bool         `xml:"nillable,attr"`
	Doc         string       `xml:"annotation>documentation"`
	ComplexType *ComplexType `xml:"complexType"`
}

// Import points to another WSDL to be imported at root level.
type Import struct {
	Namespace string `xml:"namespace,attr"`
	Location  string `xml:"location,attr"`
}

// ImportSchema points to another schema to be imported at schema level.
type ImportSchema struct {
	Namespace string `xml:"namespace,attr"`
	Location  string `xml:"schemaLocation,attr"`
}

// Message describes the data being communicated, such as functions
// and their parameters.
type Message struct {
	Name  string  `xml:"name,attr"`
	Doc   string  `xml:"documentation"`
	Parts []*Part `xml:"part"`
}

// Part describes what Type or Element to use from the PortType.
type Part struct {
	Name    string `xml:"name,attr"`
	Type    string `xml:"type,attr"`
	Element string `xml:"element,attr"`
}

// PortType describes a set of operations.
type PortType struct {
	Name       string       `xml:"name,attr"`
	Doc        string       `xml:"documentation"`
	Operations []*Operation `xml:"operation"`
}

// Operation describes an operation.
type Operation struct {
	Name   string `xml:"name,attr"`
	Doc    string `xml:"documentation"`
	Input  *IO    `xml:"input"`
	Output *IO    `xml:"output"`
	Faults []*IO  `xml:"fault"`
}

// IO describes which message is linked to an operation, for input
// or output parameters and faults.
type IO struct {
	Name    string `xml:"name,attr"`
	Message string `xml:"message,attr"`
}

// Binding describes SOAP to WSDL binding.
type Binding struct {
	Name       string              `xml:"name,attr"`
	Type       string              `xml:"type,attr"`
	SOAP       SOAPBinding         `xml:"binding"`
	Operations []*BindingOperation `xml:"operation"`
}

// SOAPBinding is the soap:binding extension of a binding.
type SOAPBinding struct {
	Style     string `xml:"style,attr"`
	Transport string `xml:"transport,attr"`
}

// BindingOperation describes the requirement for binding SOAP to WSDL
// operations.
type BindingOperation struct {
	Name   string          `xml:"name,attr"`
	SOAP   SOAPOperation   `xml:"operation"`
	Input  *BindingIO      `xml:"input"`
	Output *BindingIO      `xml:"output"`
	Faults []*BindingFault `xml:"fault"`
}

// SOAPOperation is the soap:operation extension of a binding operation.
type SOAPOperation struct {
	Action string `xml:"soapAction,attr"`
	Style  string `xml:"style,attr"`
}

// BindingIO describes the IO binding of SOAP operations. See IO for details.
type BindingIO struct {
	Body    SOAPBody      `xml:"body"`
	Headers []*SOAPHeader `xml:"header"`
}

// SOAPBody is the soap:body of a binding input or output. Parts lists the
// body parts when some parts of the message travel in headers.
type SOAPBody struct {
	Parts     string `xml:"parts,attr"`
	Use       string `xml:"use,attr"`
	Namespace string `xml:"namespace,attr"`
}

// SOAPHeader binds a message part to a SOAP header.
type SOAPHeader struct {
	Message string `xml:"message,attr"`
	Part    string `xml:"part,attr"`
	Use     string `xml:"use,attr"`
}

// BindingFault binds a fault of an operation.
type BindingFault struct {
	Name string    `xml:"name,attr"`
	SOAP SOAPFault `xml:"fault"`
}

// SOAPFault is the soap:fault of a binding fault.
type SOAPFault struct {
	Name string `xml:"name,attr"`
	Use  string `xml:"use,attr"`
}
