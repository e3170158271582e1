package contract

import (
	"encoding/xml"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiorix/wscontract/decl"
)

func TestWebParamNaming(t *testing.T) {
	cases := []struct {
		Style    string
		Param    *decl.ParamDecl
		Name     string
		PartName string
		Mode     Mode
	}{
		{
			Param:    &decl.ParamDecl{Name: "id", Type: stringType()},
			Name:     "arg0",
			PartName: "arg0",
			Mode:     In,
		},
		{
			Style:    "BARE",
			Param:    &decl.ParamDecl{Name: "id", Type: stringType()},
			Name:     "find",
			PartName: "find",
			Mode:     In,
		},
		{
			Param:    &decl.ParamDecl{Name: "id", Type: stringType(), WebParam: &decl.WebParamAnnotation{Name: "id"}},
			Name:     "id",
			PartName: "id",
			Mode:     In,
		},
		{
			Param: &decl.ParamDecl{
				Name:     "id",
				Type:     stringType(),
				WebParam: &decl.WebParamAnnotation{Name: "id", PartName: "key"},
			},
			Name:     "id",
			PartName: "key",
			Mode:     In,
		},
		{
			Param:    &decl.ParamDecl{Name: "p", Type: holderOf(personType())},
			Name:     "arg0",
			PartName: "arg0",
			Mode:     InOut,
		},
		{
			Style: "BARE",
			Param: &decl.ParamDecl{
				Name:     "p",
				Type:     holderOf(personType()),
				WebParam: &decl.WebParamAnnotation{Mode: "out"},
			},
			Name:     "findResponse",
			PartName: "findResponse",
			Mode:     Out,
		},
	}
	for i, tc := range cases {
		m := newMethod(t, tc.Style, &decl.MethodDecl{Name: "find", Params: []*decl.ParamDecl{tc.Param}})
		p := m.WebParameters()[0]
		assert.Equal(t, tc.Name, p.Name(), "test %d", i)
		assert.Equal(t, tc.PartName, p.PartName(), "test %d", i)
		assert.Equal(t, tc.Mode, p.Mode(), "test %d", i)
		assert.Equal(t, apiNS, p.TargetNamespace(), "test %d", i)
		assert.Equal(t, tc.Mode != Out, p.IsInput(), "test %d", i)
		assert.Equal(t, tc.Mode != In, p.IsOutput(), "test %d", i)
		assert.False(t, p.IsFault(), "test %d", i)
	}
}

func TestHolderIsUnwrapped(t *testing.T) {
	m := newMethod(t, "", &decl.MethodDecl{
		Name:   "update",
		Params: []*decl.ParamDecl{{Name: "p", Type: holderOf(personType())}},
	})
	p := m.WebParameters()[0]
	assert.Equal(t, "com.example.data.Person", p.Type().String())
	assert.False(t, p.IsImplicitSchemaElement())
}

func TestWebParamErrors(t *testing.T) {
	cases := []struct {
		Param *decl.ParamDecl
		Want  string
	}{
		{
			Param: &decl.ParamDecl{Name: "p", Type: personType(), WebParam: &decl.WebParamAnnotation{Mode: "OUT"}},
			Want:  `OUT parameter "p" must be declared as a javax.xml.ws.Holder`,
		},
		{
			Param: &decl.ParamDecl{Name: "p", Type: personType(), WebParam: &decl.WebParamAnnotation{Mode: "sideways"}},
			Want:  `unknown web parameter mode "sideways"`,
		},
	}
	for i, tc := range cases {
		d := &decl.TypeDecl{
			Package:    apiPkg,
			Name:       "PersonService",
			Interface:  true,
			WebService: &decl.WebServiceAnnotation{},
			Methods:    []*decl.MethodDecl{{Name: "update", Params: []*decl.ParamDecl{tc.Param}}},
		}
		_, err := NewEndpointInterface(d)
		require.Error(t, err, "test %d", i)
		assert.Contains(t, err.Error(), tc.Want, "test %d", i)
	}
}

func TestWebParamParts(t *testing.T) {
	params := []*decl.ParamDecl{
		{Name: "id", Type: stringType(), Doc: "The id."},
		{Name: "auth", Type: stringType(), WebParam: &decl.WebParamAnnotation{Name: "auth", Header: true}},
	}

	wrapped := newMethod(t, "", &decl.MethodDecl{Name: "find", Returns: personType(), Params: params})
	body, header := wrapped.WebParameters()[0], wrapped.WebParameters()[1]
	_, err := body.Parts()
	assert.True(t, errors.Is(err, ErrUnsupported))
	assert.Equal(t, "The id.", body.PartDocs())
	assert.Equal(t, "", body.MessageDocs())
	parts, err := header.Parts()
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Same(t, header, parts[0])
	assert.Equal(t, "find.auth", header.MessageName())

	bare := newMethod(t, "BARE", &decl.MethodDecl{Name: "find", Returns: personType(), Params: params[:1]})
	p := bare.WebParameters()[0]
	parts, err = p.Parts()
	require.NoError(t, err)
	assert.Equal(t, []WebMessagePart{p}, parts)
	assert.Equal(t, "find", p.MessageName())
	assert.Equal(t, "The id.", p.MessageDocs())
	assert.Equal(t, "", p.PartDocs())
}

func TestWebParamElementQName(t *testing.T) {
	res := newResolver(t)
	m := newMethod(t, "", &decl.MethodDecl{
		Name: "save",
		Params: []*decl.ParamDecl{
			{Name: "p", Type: personType()},
			{Name: "note", Type: stringType(), WebParam: &decl.WebParamAnnotation{Name: "note", TargetNamespace: "urn:notes"}},
		},
	})
	name, err := res.ElementQName(m.WebParameters()[0])
	require.NoError(t, err)
	assert.Equal(t, xml.Name{Space: "urn:example", Local: "person"}, name)
	name, err = res.ElementQName(m.WebParameters()[1])
	require.NoError(t, err)
	assert.Equal(t, xml.Name{Space: apiNS, Local: "note"}, name)
}

func TestWebFault(t *testing.T) {
	m := newMethod(t, "", &decl.MethodDecl{
		Name:    "find",
		Returns: personType(),
		Throws:  []*decl.Type{decl.NewDeclared(faultDecl)},
	})
	require.Len(t, m.WebFaults(), 1)
	f := m.WebFaults()[0]
	assert.Equal(t, "PersonNotFound", f.Name())
	assert.Equal(t, "PersonNotFound", f.MessageName())
	assert.Equal(t, "fault", f.PartName())
	assert.Equal(t, "No such person.", f.MessageDocs())
	assert.True(t, f.IsFault())
	assert.False(t, f.IsInput() || f.IsOutput() || f.IsHeader())
	parts, err := f.Parts()
	require.NoError(t, err)
	assert.Equal(t, []WebMessagePart{f}, parts)

	res := newResolver(t)
	name, err := res.ElementQName(f)
	require.NoError(t, err)
	assert.Equal(t, xml.Name{Space: apiNS, Local: "PersonNotFound"}, name)
	name, err = res.TypeQName(f)
	require.NoError(t, err)
	assert.Equal(t, xml.Name{Local: "personNotFound"}, name)
}
