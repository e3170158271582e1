package source

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/fiorix/wscontract/decl"
)

// resolveFunc looks a type name up, simple or qualified.
type resolveFunc func(name string) (*decl.TypeDecl, error)

// parseType parses a type expression:
//
//	type = name [ "<" type { "," type } ">" ] { "[]" }
//
// Names are primitives, void, or class names resolved with resolve.
func parseType(expr string, resolve resolveFunc) (*decl.Type, error) {
	p := &typeParser{src: expr, resolve: resolve}
	t, err := p.parse()
	if err != nil {
		return nil, fmt.Errorf("type %q: %w", expr, err)
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("type %q: unexpected %q at offset %d", expr, p.src[p.pos:], p.pos)
	}
	return t, nil
}

type typeParser struct {
	src     string
	pos     int
	resolve resolveFunc
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *typeParser) accept(s string) bool {
	p.skipSpace()
	if strings.HasPrefix(p.src[p.pos:], s) {
		p.pos += len(s)
		return true
	}
	return false
}

func (p *typeParser) name() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		r := rune(p.src[p.pos])
		if r != '.' && r != '_' && r != '$' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *typeParser) parse() (*decl.Type, error) {
	name := p.name()
	if name == "" {
		return nil, fmt.Errorf("missing type name at offset %d", p.pos)
	}
	var t *decl.Type
	switch {
	case name == "void":
		t = decl.VoidType
	case decl.IsPrimitiveName(name):
		t = decl.NewPrimitive(name)
	default:
		d, err := p.resolve(name)
		if err != nil {
			return nil, err
		}
		var args []*decl.Type
		if p.accept("<") {
			for {
				a, err := p.parse()
				if err != nil {
					return nil, err
				}
				if a.IsPrimitive() || a.IsVoid() {
					return nil, fmt.Errorf("type argument %s of %s must be a class", a, name)
				}
				args = append(args, a)
				if p.accept(">") {
					break
				}
				if !p.accept(",") {
					return nil, fmt.Errorf("expected ',' or '>' at offset %d", p.pos)
				}
			}
		}
		t = decl.NewDeclared(d, args...)
	}
	for p.accept("[]") {
		if t.IsVoid() {
			return nil, fmt.Errorf("void cannot be an array component")
		}
		t = decl.NewArray(t)
	}
	return t, nil
}
