package contract

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiorix/wscontract/decl"
)

// summary describes a message as "name:role[parts]".
func summary(t *testing.T, msg WebMessage) string {
	t.Helper()
	role := "in"
	switch {
	case msg.IsFault():
		role = "fault"
	case msg.IsHeader() && msg.IsOutput():
		role = "header-out"
	case msg.IsHeader():
		role = "header-in"
	case msg.IsOutput():
		role = "out"
	}
	parts, err := msg.Parts()
	require.NoError(t, err)
	s := msg.MessageName() + ":" + role + "["
	for i, p := range parts {
		if i > 0 {
			s += ","
		}
		s += p.PartName()
	}
	return s + "]"
}

func summaries(t *testing.T, m *WebMethod) []string {
	var list []string
	for _, msg := range m.Messages() {
		list = append(list, summary(t, msg))
	}
	return list
}

func TestMessages(t *testing.T) {
	fault := []*decl.Type{decl.NewDeclared(faultDecl)}
	cases := []struct {
		Style  string
		Method *decl.MethodDecl
		Want   []string
	}{
		{
			Method: &decl.MethodDecl{
				Name:    "find",
				Returns: personType(),
				Params: []*decl.ParamDecl{
					{Name: "id", Type: stringType()},
					{Name: "auth", Type: stringType(), WebParam: &decl.WebParamAnnotation{Name: "auth", Header: true}},
				},
				Throws: fault,
			},
			Want: []string{
				"find:in[parameters]",
				"findResponse:out[parameters]",
				"find.auth:header-in[auth]",
				"PersonNotFound:fault[fault]",
			},
		},
		{
			Method: &decl.MethodDecl{
				Name:      "session",
				Returns:   stringType(),
				WebResult: &decl.WebResultAnnotation{Name: "token", PartName: "token", Header: true},
			},
			Want: []string{
				"session:in[parameters]",
				"sessionResponse:out[parameters]",
				"sessionResponse.token:header-out[token]",
			},
		},
		{
			Style: "BARE",
			Method: &decl.MethodDecl{
				Name:    "find",
				Returns: personType(),
				Params:  []*decl.ParamDecl{{Name: "id", Type: stringType()}},
				Throws:  fault,
			},
			Want: []string{
				"find:in[find]",
				"findResponse:out[return]",
				"PersonNotFound:fault[fault]",
			},
		},
		{
			Style: "BARE",
			Method: &decl.MethodDecl{
				Name: "swap",
				Params: []*decl.ParamDecl{
					{Name: "p", Type: holderOf(personType()), WebParam: &decl.WebParamAnnotation{Name: "p", Mode: "OUT"}},
				},
			},
			Want: []string{"swapResponse.p:out[p]"},
		},
		{
			Style: "BARE",
			Method: &decl.MethodDecl{
				Name: "lookup",
				Params: []*decl.ParamDecl{
					{Name: "n", Type: holderOf(decl.NewPrimitive("int")), WebParam: &decl.WebParamAnnotation{Mode: "OUT", PartName: "count"}},
				},
			},
			Want: []string{"lookupResponse.count:out[count]"},
		},
		{
			Method: &decl.MethodDecl{
				Name: "rotate",
				Params: []*decl.ParamDecl{
					{Name: "id", Type: stringType()},
					{Name: "key", Type: holderOf(stringType()), WebParam: &decl.WebParamAnnotation{Name: "key", Mode: "OUT", Header: true}},
				},
			},
			Want: []string{
				"rotate:in[parameters]",
				"rotateResponse:out[parameters]",
				"rotateResponse.key:header-out[key]",
			},
		},
		{
			Method: &decl.MethodDecl{
				Name: "renew",
				Params: []*decl.ParamDecl{
					{Name: "token", Type: holderOf(stringType()), WebParam: &decl.WebParamAnnotation{Name: "token", Header: true}},
				},
			},
			Want: []string{
				"renew:in[parameters]",
				"renewResponse:out[parameters]",
				"renew.token:header-out[token]",
			},
		},
	}
	for i, tc := range cases {
		m := newMethod(t, tc.Style, tc.Method)
		assert.Equal(t, tc.Want, summaries(t, m), "test %d", i)
	}
}

func TestWrapperChildren(t *testing.T) {
	m := newMethod(t, "", &decl.MethodDecl{
		Name:    "update",
		Returns: decl.NewPrimitive("boolean"),
		Params: []*decl.ParamDecl{
			{Name: "id", Type: stringType()},
			{Name: "p", Type: holderOf(personType())},
			{Name: "auth", Type: stringType(), WebParam: &decl.WebParamAnnotation{Header: true}},
		},
	})
	msgs := m.Messages()
	req, ok := msgs[0].(*Wrapper)
	require.True(t, ok)
	resp, ok := msgs[1].(*Wrapper)
	require.True(t, ok)

	names := func(cs []ImplicitChildElement) []string {
		var list []string
		for _, c := range cs {
			list = append(list, c.ElementName())
		}
		return list
	}
	assert.Equal(t, []string{"arg0", "arg1"}, names(req.Children()))
	assert.Equal(t, []string{"return", "arg1"}, names(resp.Children()))
	assert.Equal(t, xml.Name{Space: apiNS, Local: "update"}, req.ElementQName())
	assert.Equal(t, xml.Name{Space: apiNS, Local: "updateResponse"}, resp.ElementQName())
	assert.True(t, req.IsImplicitSchemaElement())
	assert.Equal(t, "parameters", req.PartName())

	name, err := newResolver(t).ElementQName(resp)
	require.NoError(t, err)
	assert.Equal(t, "updateResponse", name.Local)
}

func TestRPCWrapperPartsAreChildren(t *testing.T) {
	md := &decl.MethodDecl{
		Name:        "add",
		Returns:     decl.NewPrimitive("int"),
		SOAPBinding: &decl.SOAPBindingAnnotation{Style: "RPC"},
		Params: []*decl.ParamDecl{
			{Name: "a", Type: decl.NewPrimitive("int"), WebParam: &decl.WebParamAnnotation{Name: "a"}},
			{Name: "b", Type: decl.NewPrimitive("int"), WebParam: &decl.WebParamAnnotation{Name: "b"}},
		},
	}
	m := newMethod(t, "", md)
	assert.Equal(t, []string{"add:in[a,b]", "addResponse:out[return]"}, summaries(t, m))
}
