package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiorix/wscontract/decl"
)

func TestValidateClean(t *testing.T) {
	ei := newEndpoint(t, "",
		&decl.MethodDecl{
			Name:    "find",
			Returns: personType(),
			Params:  []*decl.ParamDecl{{Name: "id", Type: stringType()}},
			Throws:  []*decl.Type{decl.NewDeclared(faultDecl)},
		},
		&decl.MethodDecl{Name: "count", Returns: decl.NewPrimitive("long")},
		&decl.MethodDecl{Name: "ping", Oneway: true},
	)
	assert.NoError(t, Validate(newResolver(t), ei))
}

func TestValidateReportsEveryFailure(t *testing.T) {
	ei := newEndpoint(t, "",
		&decl.MethodDecl{
			Name:    "next",
			Returns: decl.NewDeclared(eventDecl),
			Pos:     decl.Position{File: "PersonService.java", Line: 20},
		},
		&decl.MethodDecl{
			Name:   "save",
			Params: []*decl.ParamDecl{{Name: "v", Type: decl.NewDeclared(inlineDecl)}},
			Pos:    decl.Position{File: "PersonService.java", Line: 21},
		},
		&decl.MethodDecl{
			Name:    "run",
			Returns: decl.NewDeclared(runnableDecl),
			Pos:     decl.Position{File: "PersonService.java", Line: 22},
		},
	)
	err := Validate(newResolver(t), ei)
	require.Error(t, err)
	list := ValidationErrors(err)
	require.Len(t, list, 3)
	assert.Equal(t, KindUnregisteredRootElement, list[0].Kind)
	assert.Equal(t, 20, list[0].Pos.Line)
	assert.Equal(t, KindAnonymousType, list[1].Kind)
	assert.Equal(t, "Type of web parameter cannot be anonymous.", list[1].Msg)
	assert.Equal(t, KindTypeMapping, list[2].Kind)
	assert.True(t, IsKind(err, KindAnonymousType))
	assert.False(t, IsKind(err, KindMessageShape))
}

func TestValidateBareShape(t *testing.T) {
	ei := newEndpoint(t, "BARE", &decl.MethodDecl{
		Name: "pair",
		Params: []*decl.ParamDecl{
			{Name: "a", Type: stringType()},
			{Name: "b", Type: stringType()},
		},
	})
	err := Validate(newResolver(t), ei)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindMessageShape))
}
