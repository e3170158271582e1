package decl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeKinds(t *testing.T) {
	lang := &Package{Name: "java.lang"}
	util := &Package{Name: "java.util"}
	str := &TypeDecl{Package: lang, Name: "String"}
	list := &TypeDecl{Package: util, Name: "List", Interface: true, Collection: true}
	runnable := &TypeDecl{Package: lang, Name: "Runnable", Interface: true}
	cases := []struct {
		T          *Type
		Kind       Kind
		Qualified  string
		String     string
		Primitive  bool
		Array      bool
		Collection bool
	}{
		{T: VoidType, Kind: Void, Qualified: "void", String: "void"},
		{T: NewPrimitive("int"), Kind: Primitive, Qualified: "int", String: "int", Primitive: true},
		{T: NewDeclared(str), Kind: Class, Qualified: "java.lang.String", String: "java.lang.String"},
		{T: NewDeclared(runnable), Kind: Interface, Qualified: "java.lang.Runnable", String: "java.lang.Runnable"},
		{
			T:          NewDeclared(list, NewDeclared(str)),
			Kind:       Collection,
			Qualified:  "java.util.List",
			String:     "java.util.List<java.lang.String>",
			Collection: true,
		},
		{
			T:         NewArray(NewDeclared(str)),
			Kind:      Array,
			Qualified: "java.lang.String[]",
			String:    "java.lang.String[]",
			Array:     true,
		},
		{
			T:         NewArray(NewDeclared(list, NewDeclared(str))),
			Kind:      Array,
			Qualified: "java.util.List[]",
			String:    "java.util.List<java.lang.String>[]",
			Array:     true,
		},
	}
	for i, tc := range cases {
		assert.Equal(t, tc.Kind, tc.T.Kind(), "test %d", i)
		assert.Equal(t, tc.Qualified, tc.T.QualifiedName(), "test %d", i)
		assert.Equal(t, tc.String, tc.T.String(), "test %d", i)
		assert.Equal(t, tc.Primitive, tc.T.IsPrimitive(), "test %d", i)
		assert.Equal(t, tc.Array, tc.T.IsArray(), "test %d", i)
		assert.Equal(t, tc.Collection, tc.T.IsCollection(), "test %d", i)
	}
}

func TestNewPrimitivePanicsOnUnknownName(t *testing.T) {
	assert.Panics(t, func() { NewPrimitive("String") })
}

func TestIsRootElementClass(t *testing.T) {
	pkg := &Package{Name: "com.example"}
	person := &TypeDecl{Package: pkg, Name: "Person", RootElement: &RootElementAnnotation{}}
	address := &TypeDecl{Package: pkg, Name: "Address"}
	named := &TypeDecl{Package: pkg, Name: "Named", Interface: true, RootElement: &RootElementAnnotation{}}

	assert.True(t, NewDeclared(person).IsRootElementClass())
	assert.False(t, NewDeclared(address).IsRootElementClass())
	assert.False(t, NewDeclared(named).IsRootElementClass())
	assert.False(t, NewArray(NewDeclared(person)).IsRootElementClass())
	assert.False(t, NewPrimitive("long").IsRootElementClass())
}

func TestPositionString(t *testing.T) {
	cases := []struct {
		P Position
		S string
	}{
		{P: Position{}, S: "<unknown>"},
		{P: Position{File: "a.yaml"}, S: "a.yaml"},
		{P: Position{File: "a.yaml", Line: 3}, S: "a.yaml:3"},
		{P: Position{File: "a.yaml", Line: 3, Column: 7}, S: "a.yaml:3:7"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.S, tc.P.String())
	}
}

func TestQualifiedNameDefaultPackage(t *testing.T) {
	d := &TypeDecl{Name: "Orphan"}
	assert.Equal(t, "Orphan", d.QualifiedName())
	d.Package = &Package{}
	assert.Equal(t, "Orphan", d.QualifiedName())
	assert.Nil(t, d.Package.Segments())
}
