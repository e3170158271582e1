package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiorix/wscontract/model"
	"github.com/fiorix/wscontract/wsdl"
)

const decls = `
packages:
  - name: com.example.data
    namespace: urn:example
    types:
      - {name: Person, rootElement: {}}
  - name: com.example.api
    types:
      - name: PersonService
        kind: interface
        webService: {}
        methods:
          - name: findPerson
            returns: com.example.data.Person
            params:
              - {name: ids, type: "java.util.List<String>", webParam: {name: ids}}
      - name: AuditService
        kind: interface
        webService: {}
        methods:
          - {name: ping, oneway: true}
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeDecls(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	src := filepath.Join(dir, "decls.yaml")
	require.NoError(t, os.WriteFile(src, []byte(decls), 0o644))
	return dir, src
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--pretty=false")
	require.NoError(t, err)
	assert.Equal(t, "wscontract tip\n", out)
}

func TestGen(t *testing.T) {
	dir, src := writeDecls(t)
	dst := filepath.Join(dir, "people.wsdl")
	_, err := run(t, "gen", "-i", src, "-o", dst, "--interface", "PersonService", "--location", "http://localhost/people")
	require.NoError(t, err)
	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()
	d, err := wsdl.Unmarshal(f)
	require.NoError(t, err)
	assert.Equal(t, "PersonServiceService", d.Name)
	assert.Equal(t, "http://localhost/people", d.Services[0].Ports[0].Address.Location)

	_, err = run(t, "gen", "-i", src, "-o", dst, "--interface", "", "--location", "")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "pick one with --interface"), err.Error())

	_, err = run(t, "gen", "-i", src, "-o", dst, "--interface", "Nope")
	assert.EqualError(t, err, `no endpoint interface "Nope"`)
}

func TestDescribe(t *testing.T) {
	dir, src := writeDecls(t)
	dst := filepath.Join(dir, "people.json")
	_, err := run(t, "describe", "-i", src, "-o", dst, "--interface", "", "--format", "json", "--generics=false")
	require.NoError(t, err)
	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	var eps []*model.Endpoint
	require.NoError(t, json.Unmarshal(b, &eps))
	require.Len(t, eps, 2)
	assert.Equal(t, "PersonService", eps[0].Name)
	assert.Equal(t, "AuditService", eps[1].Name)
	ids := eps[0].Operations[0].Messages[0].Parts[0].Children[0]
	assert.Equal(t, "java.util.List", ids.Classname)
	assert.Equal(t, "unbounded", ids.MaxOccurs)
}
