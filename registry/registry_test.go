package registry

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiorix/wscontract/decl"
)

func TestAddDefaults(t *testing.T) {
	pkg := &decl.Package{Name: "com.example", Namespace: "urn:example"}
	cases := []struct {
		D    *decl.TypeDecl
		Want xml.Name
	}{
		{
			D:    &decl.TypeDecl{Package: pkg, Name: "Person", RootElement: &decl.RootElementAnnotation{}},
			Want: xml.Name{Space: "urn:example", Local: "person"},
		},
		{
			D:    &decl.TypeDecl{Package: pkg, Name: "URLList", RootElement: &decl.RootElementAnnotation{}},
			Want: xml.Name{Space: "urn:example", Local: "URLList"},
		},
		{
			D:    &decl.TypeDecl{Package: pkg, Name: "Event", RootElement: &decl.RootElementAnnotation{Name: "evt", Namespace: "urn:events"}},
			Want: xml.Name{Space: "urn:events", Local: "evt"},
		},
	}
	r := New()
	for i, tc := range cases {
		e, err := r.Add(tc.D)
		require.NoError(t, err, "test %d", i)
		assert.Equal(t, tc.Want, e.QName(), "test %d", i)
		found, ok := r.FindRootElement(tc.D)
		require.True(t, ok, "test %d", i)
		assert.Equal(t, e, found, "test %d", i)
	}
	assert.Equal(t, 3, r.Len())
	elems := r.Elements()
	require.Len(t, elems, 3)
	assert.Equal(t, "evt", elems[0].Name)
	assert.Equal(t, "URLList", elems[1].Name)
	assert.Equal(t, "person", elems[2].Name)
}

func TestAddRejects(t *testing.T) {
	pkg := &decl.Package{Name: "com.example"}
	r := New()
	_, err := r.Add(&decl.TypeDecl{Package: pkg, Name: "Plain"})
	assert.Error(t, err)
	_, err = r.Add(&decl.TypeDecl{Package: pkg, Name: "Shape", Interface: true, RootElement: &decl.RootElementAnnotation{}})
	assert.Error(t, err)

	_, err = r.Add(&decl.TypeDecl{Package: pkg, Name: "A", RootElement: &decl.RootElementAnnotation{Name: "x"}})
	require.NoError(t, err)
	_, err = r.Add(&decl.TypeDecl{Package: pkg, Name: "B", RootElement: &decl.RootElementAnnotation{Name: "x"}})
	assert.Error(t, err)
}

func TestFindRootElementMissing(t *testing.T) {
	r := New()
	_, ok := r.FindRootElement(&decl.TypeDecl{Name: "Nope"})
	assert.False(t, ok)
	_, ok = r.FindRootElement(nil)
	assert.False(t, ok)
}
