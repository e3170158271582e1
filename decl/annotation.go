package decl

// The annotation types below carry raw attribute values as declared. An
// empty string means the attribute was not specified; defaults are applied
// by package contract.

// RootElementAnnotation marks a class as an XML root element.
type RootElementAnnotation struct {
	Name      string `yaml:"name,omitempty" json:"name,omitempty"`
	Namespace string `yaml:"namespace,omitempty" json:"namespace,omitempty"`
}

// XMLTypeAnnotation names the XML type of a class. A type declared with
// Anonymous set has no name of its own.
type XMLTypeAnnotation struct {
	Name      string `yaml:"name,omitempty" json:"name,omitempty"`
	Namespace string `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Anonymous bool   `yaml:"anonymous,omitempty" json:"anonymous,omitempty"`
}

// WebServiceAnnotation marks an interface as an endpoint.
type WebServiceAnnotation struct {
	Name            string `yaml:"name,omitempty" json:"name,omitempty"`
	TargetNamespace string `yaml:"targetNamespace,omitempty" json:"targetNamespace,omitempty"`
	ServiceName     string `yaml:"serviceName,omitempty" json:"serviceName,omitempty"`
	PortName        string `yaml:"portName,omitempty" json:"portName,omitempty"`
}

// SOAPBindingAnnotation holds SOAP binding attributes. Zero values mean
// "not specified".
type SOAPBindingAnnotation struct {
	Style          string `yaml:"style,omitempty" json:"style,omitempty"`                   // DOCUMENT or RPC
	Use            string `yaml:"use,omitempty" json:"use,omitempty"`                       // LITERAL or ENCODED
	ParameterStyle string `yaml:"parameterStyle,omitempty" json:"parameterStyle,omitempty"` // WRAPPED or BARE
}

// WebMethodAnnotation customizes an operation.
type WebMethodAnnotation struct {
	OperationName string `yaml:"operationName,omitempty" json:"operationName,omitempty"`
	Action        string `yaml:"action,omitempty" json:"action,omitempty"`
	Exclude       bool   `yaml:"exclude,omitempty" json:"exclude,omitempty"`
}

// WebResultAnnotation customizes the return value of an operation.
type WebResultAnnotation struct {
	Name            string `yaml:"name,omitempty" json:"name,omitempty"`
	TargetNamespace string `yaml:"targetNamespace,omitempty" json:"targetNamespace,omitempty"`
	PartName        string `yaml:"partName,omitempty" json:"partName,omitempty"`
	Header          bool   `yaml:"header,omitempty" json:"header,omitempty"`
}

// WebParamAnnotation customizes an operation parameter.
type WebParamAnnotation struct {
	Name            string `yaml:"name,omitempty" json:"name,omitempty"`
	TargetNamespace string `yaml:"targetNamespace,omitempty" json:"targetNamespace,omitempty"`
	PartName        string `yaml:"partName,omitempty" json:"partName,omitempty"`
	Header          bool   `yaml:"header,omitempty" json:"header,omitempty"`
	Mode            string `yaml:"mode,omitempty" json:"mode,omitempty"` // IN, OUT or INOUT
}
