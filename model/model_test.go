package model

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"aqwari.net/xml/xsd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fiorix/wscontract/classname"
	"github.com/fiorix/wscontract/contract"
	"github.com/fiorix/wscontract/source"
	"github.com/fiorix/wscontract/xmltype"
)

const decls = `
packages:
  - name: com.example.data
    namespace: urn:example
    types:
      - name: Person
        rootElement: {}
      - name: DateAdapter
  - name: com.example.api
    types:
      - name: PersonService
        kind: interface
        doc: Finds people.
        webService: {}
        methods:
          - name: findPerson
            returns: com.example.data.Person
            returnDoc: The person.
            params:
              - {name: id, type: String, doc: The id., webParam: {name: id}}
              - {name: auth, type: String, webParam: {name: auth, header: true}}
          - name: birthdays
            returns: java.util.Date[]
            resultAdapter:
              adapter: com.example.data.DateAdapter
              bound: java.util.Date
              adapting: String
          - name: count
            soapBinding: {parameterStyle: BARE}
            returns: int
            params:
              - {name: kind, type: String}
            webResult: {name: total}
          - name: ping
            oneway: true
`

func build(t *testing.T, conv *classname.Converter) *Endpoint {
	t.Helper()
	ds, err := source.Load(strings.NewReader(decls), "decls.yaml")
	require.NoError(t, err)
	ei, err := contract.NewEndpointInterface(ds.Endpoints()[0])
	require.NoError(t, err)
	e, err := Build(ei, contract.NewResolver(ds.Registry, xmltype.New()), conv)
	require.NoError(t, err)
	return e
}

func TestBuild(t *testing.T) {
	e := build(t, classname.New())
	assert.Equal(t, "PersonService", e.Name)
	assert.Equal(t, "http://api.example.com/", e.Namespace)
	assert.Equal(t, "Finds people.", e.Doc)
	require.Len(t, e.Operations, 4)

	find := e.Operations[0]
	require.Len(t, find.Messages, 3)
	req := find.Messages[0]
	assert.Equal(t, "findPerson", req.Name)
	assert.Equal(t, RoleInput, req.Role)
	require.Len(t, req.Parts, 1)
	wrapper := req.Parts[0]
	assert.Equal(t, "parameters", wrapper.PartName)
	assert.Equal(t, "{http://api.example.com/}findPerson", wrapper.Element)
	assert.True(t, wrapper.Implicit)
	require.Len(t, wrapper.Children, 1)
	id := wrapper.Children[0]
	assert.Equal(t, "id", id.Name)
	assert.Equal(t, "java.lang.String", id.Classname)
	assert.Equal(t, "The id.", id.Docs)
	assert.Equal(t, 0, id.MinOccurs)
	assert.Equal(t, "1", id.MaxOccurs)
	assert.Equal(t, "", id.PartName)
	assert.Equal(t, QName(xsd.XMLName(xsd.String)), id.Type)

	resp := find.Messages[1]
	assert.Equal(t, RoleOutput, resp.Role)
	ret := resp.Parts[0].Children[0]
	assert.Equal(t, "{urn:example}person", ret.Element)
	assert.False(t, ret.Implicit)
	assert.Equal(t, "", ret.Type)
	assert.Equal(t, "The person.", ret.Docs)

	header := find.Messages[2]
	assert.Equal(t, "findPerson.auth", header.Name)
	assert.True(t, header.Header)
	assert.True(t, header.Parts[0].Header)
	assert.Equal(t, "auth", header.Parts[0].PartName)

	count := e.Operations[2]
	assert.Equal(t, "BARE", count.ParameterStyle)
	require.Len(t, count.Messages, 2)
	total := count.Messages[1].Parts[0]
	assert.Equal(t, "total", total.Name)
	assert.Equal(t, "return", total.PartName)
	assert.Equal(t, 1, total.MinOccurs)
	assert.Equal(t, "int", total.Classname)

	ping := e.Operations[3]
	assert.True(t, ping.OneWay)
	require.Len(t, ping.Messages, 1)
}

func TestBuildClassnameModes(t *testing.T) {
	modern := build(t, classname.New())
	legacy := build(t, classname.New(classname.WithGenerics(false)))
	get := func(e *Endpoint) Part { return e.Operations[1].Messages[1].Parts[0].Children[0] }
	assert.Equal(t, "java.util.Date[]", get(modern).Classname)
	assert.Equal(t, "java.lang.String[]", get(legacy).Classname)
	assert.Equal(t, QName(xsd.XMLName(xsd.DateTime)), get(legacy).Type, "adapters don't change the XML type")
	assert.Equal(t, "unbounded", get(modern).MaxOccurs)
}

func TestBuildFailsOnInvalidContract(t *testing.T) {
	src := `
knownClasses: []
packages:
  - name: com.example.api
    types:
      - {name: Event, rootElement: {}}
      - name: EventService
        kind: interface
        webService: {}
        methods:
          - {name: next, returns: Event}
`
	ds, err := source.Load(strings.NewReader(src), "events.yaml")
	require.NoError(t, err)
	ei, err := contract.NewEndpointInterface(ds.Endpoints()[0])
	require.NoError(t, err)
	_, err = Build(ei, contract.NewResolver(ds.Registry, xmltype.New()), classname.New())
	require.Error(t, err)
	assert.True(t, contract.IsKind(err, contract.KindUnregisteredRootElement))
}

func TestWrite(t *testing.T) {
	e := build(t, classname.New())

	var y bytes.Buffer
	require.NoError(t, Write(&y, FormatYAML, []*Endpoint{e}))
	var fromYAML []*Endpoint
	require.NoError(t, yaml.Unmarshal(y.Bytes(), &fromYAML))
	assert.Equal(t, []*Endpoint{e}, fromYAML)

	var j bytes.Buffer
	require.NoError(t, Write(&j, FormatJSON, []*Endpoint{e}))
	var fromJSON []*Endpoint
	require.NoError(t, json.Unmarshal(j.Bytes(), &fromJSON))
	assert.Equal(t, []*Endpoint{e}, fromJSON)

	assert.Error(t, Write(&j, "xml", nil))
}
