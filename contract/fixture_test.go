package contract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fiorix/wscontract/decl"
	"github.com/fiorix/wscontract/registry"
	"github.com/fiorix/wscontract/xmltype"
)

const apiNS = "http://api.example.com/"

var (
	apiPkg    = &decl.Package{Name: "com.example.api"}
	dataPkg   = &decl.Package{Name: "com.example.data", Namespace: "urn:example"}
	langPkg   = &decl.Package{Name: "java.lang"}
	utilPkg   = &decl.Package{Name: "java.util"}
	holderPkg = &decl.Package{Name: "javax.xml.ws"}

	stringDecl   = &decl.TypeDecl{Package: langPkg, Name: "String"}
	runnableDecl = &decl.TypeDecl{Package: langPkg, Name: "Runnable", Interface: true}
	listDecl     = &decl.TypeDecl{Package: utilPkg, Name: "List", Interface: true, Collection: true}
	holderDecl   = &decl.TypeDecl{Package: holderPkg, Name: "Holder"}

	personDecl = &decl.TypeDecl{
		Package:     dataPkg,
		Name:        "Person",
		RootElement: &decl.RootElementAnnotation{},
		Pos:         decl.Position{File: "Person.java", Line: 7},
	}
	// eventDecl is a root element class that is never registered.
	eventDecl = &decl.TypeDecl{
		Package:     dataPkg,
		Name:        "Event",
		RootElement: &decl.RootElementAnnotation{},
	}
	addressDecl = &decl.TypeDecl{Package: dataPkg, Name: "Address"}
	inlineDecl  = &decl.TypeDecl{
		Package: dataPkg,
		Name:    "Inline",
		XMLType: &decl.XMLTypeAnnotation{Anonymous: true},
	}
	faultDecl = &decl.TypeDecl{Package: apiPkg, Name: "PersonNotFound", Doc: "No such person."}
)

func stringType() *decl.Type { return decl.NewDeclared(stringDecl) }

func personType() *decl.Type { return decl.NewDeclared(personDecl) }

func holderOf(t *decl.Type) *decl.Type { return decl.NewDeclared(holderDecl, t) }

// newEndpoint builds the PersonService endpoint interface holding methods,
// with the given interface parameter style ("" for the default).
func newEndpoint(t *testing.T, style string, methods ...*decl.MethodDecl) *EndpointInterface {
	t.Helper()
	d := &decl.TypeDecl{
		Package:    apiPkg,
		Name:       "PersonService",
		Interface:  true,
		WebService: &decl.WebServiceAnnotation{},
		Methods:    methods,
		Pos:        decl.Position{File: "PersonService.java", Line: 12},
	}
	if style != "" {
		d.SOAPBinding = &decl.SOAPBindingAnnotation{ParameterStyle: style}
	}
	for _, m := range methods {
		m.Owner = d
	}
	ei, err := NewEndpointInterface(d)
	require.NoError(t, err)
	return ei
}

// newMethod builds the single method of an endpoint interface.
func newMethod(t *testing.T, style string, md *decl.MethodDecl) *WebMethod {
	t.Helper()
	ei := newEndpoint(t, style, md)
	require.Len(t, ei.WebMethods(), 1)
	return ei.WebMethods()[0]
}

func newResolver(t *testing.T) *Resolver {
	t.Helper()
	reg := registry.New()
	_, err := reg.Add(personDecl)
	require.NoError(t, err)
	return NewResolver(reg, xmltype.New())
}
