package source

import (
	"gopkg.in/yaml.v3"

	"github.com/fiorix/wscontract/decl"
)

// position is where a node starts in the declaration file.
type position struct {
	Line   int
	Column int
}

func (p *position) set(n *yaml.Node) {
	p.Line, p.Column = n.Line, n.Column
}

type fileDoc struct {
	KnownClasses []string      `yaml:"knownClasses"`
	Packages     []*packageDoc `yaml:"packages"`
}

type packageDoc struct {
	position  `yaml:"-"`
	Name      string     `yaml:"name"`
	Namespace string     `yaml:"namespace"`
	Doc       string     `yaml:"doc"`
	Types     []*typeDoc `yaml:"types"`
}

func (d *packageDoc) UnmarshalYAML(n *yaml.Node) error {
	type plain packageDoc
	if err := n.Decode((*plain)(d)); err != nil {
		return err
	}
	d.set(n)
	return nil
}

type typeDoc struct {
	position    `yaml:"-"`
	Name        string                      `yaml:"name"`
	Kind        string                      `yaml:"kind"` // class, interface or enum
	Collection  bool                        `yaml:"collection"`
	Doc         string                      `yaml:"doc"`
	RootElement *decl.RootElementAnnotation `yaml:"rootElement"`
	XMLType     *decl.XMLTypeAnnotation     `yaml:"xmlType"`
	WebService  *decl.WebServiceAnnotation  `yaml:"webService"`
	SOAPBinding *decl.SOAPBindingAnnotation `yaml:"soapBinding"`
	Accessors   []*accessorDoc              `yaml:"accessors"`
	Methods     []*methodDoc                `yaml:"methods"`
}

func (d *typeDoc) UnmarshalYAML(n *yaml.Node) error {
	type plain typeDoc
	if err := n.Decode((*plain)(d)); err != nil {
		return err
	}
	d.set(n)
	return nil
}

type accessorDoc struct {
	position `yaml:"-"`
	Name     string      `yaml:"name"`
	Doc      string      `yaml:"doc"`
	Type     string      `yaml:"type"`
	Adapter  *adapterDoc `yaml:"adapter"`
}

func (d *accessorDoc) UnmarshalYAML(n *yaml.Node) error {
	type plain accessorDoc
	if err := n.Decode((*plain)(d)); err != nil {
		return err
	}
	d.set(n)
	return nil
}

type adapterDoc struct {
	position `yaml:"-"`
	Adapter  string `yaml:"adapter"`
	Bound    string `yaml:"bound"`
	Adapting string `yaml:"adapting"`
}

func (d *adapterDoc) UnmarshalYAML(n *yaml.Node) error {
	type plain adapterDoc
	if err := n.Decode((*plain)(d)); err != nil {
		return err
	}
	d.set(n)
	return nil
}

type methodDoc struct {
	position      `yaml:"-"`
	Name          string                      `yaml:"name"`
	Doc           string                      `yaml:"doc"`
	Returns       string                      `yaml:"returns"`
	ReturnDoc     string                      `yaml:"returnDoc"`
	Params        []*paramDoc                 `yaml:"params"`
	Throws        []string                    `yaml:"throws"`
	Oneway        bool                        `yaml:"oneway"`
	WebMethod     *decl.WebMethodAnnotation   `yaml:"webMethod"`
	WebResult     *decl.WebResultAnnotation   `yaml:"webResult"`
	SOAPBinding   *decl.SOAPBindingAnnotation `yaml:"soapBinding"`
	ResultAdapter *adapterDoc                 `yaml:"resultAdapter"`
}

func (d *methodDoc) UnmarshalYAML(n *yaml.Node) error {
	type plain methodDoc
	if err := n.Decode((*plain)(d)); err != nil {
		return err
	}
	d.set(n)
	return nil
}

type paramDoc struct {
	position `yaml:"-"`
	Name     string                   `yaml:"name"`
	Doc      string                   `yaml:"doc"`
	Type     string                   `yaml:"type"`
	WebParam *decl.WebParamAnnotation `yaml:"webParam"`
	Adapter  *adapterDoc              `yaml:"adapter"`
}

func (d *paramDoc) UnmarshalYAML(n *yaml.Node) error {
	type plain paramDoc
	if err := n.Decode((*plain)(d)); err != nil {
		return err
	}
	d.set(n)
	return nil
}
