// Package classname projects declared types onto the classnames a client
// library uses for them.
//
// A Converter remaps packages through a conversion table, appends type
// arguments when the client has generics and substitutes adapted types
// when the client cannot apply XML adapters itself.
package classname

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fiorix/wscontract/contract"
	"github.com/fiorix/wscontract/decl"
)

// ErrUnsupported is returned for values that have no client classname.
var ErrUnsupported = contract.ErrUnsupported

// Converter converts declarations to client classnames. The zero value
// converts without remapping, generics or adapters.
type Converter struct {
	conversions map[string]string
	generics    bool
	adapters    bool
	adaptersSet bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithConversions sets the package conversion table. Keys are original
// package names, values their replacement.
func WithConversions(conversions map[string]string) Option {
	return func(c *Converter) {
		c.conversions = make(map[string]string, len(conversions))
		for k, v := range conversions {
			c.conversions[k] = v
		}
	}
}

// WithGenerics sets whether type arguments are emitted.
func WithGenerics(on bool) Option {
	return func(c *Converter) { c.generics = on }
}

// WithAdapters sets whether adapted types are substituted by their
// adapting types.
func WithAdapters(on bool) Option {
	return func(c *Converter) {
		c.adapters = on
		c.adaptersSet = true
	}
}

// New returns a Converter. Generics are on by default. Unless set with
// WithAdapters, adapters are substituted exactly when generics are off.
func New(opts ...Option) *Converter {
	c := &Converter{generics: true}
	for _, o := range opts {
		o(c)
	}
	if !c.adaptersSet {
		c.adapters = !c.generics
	}
	return c
}

// Generics reports whether the converter emits type arguments.
func (c *Converter) Generics() bool { return c.generics }

// Adapters reports whether the converter substitutes adapted types.
func (c *Converter) Adapters() bool { return c.adapters }

// Package returns the client package of pkg: the conversion of the exact
// name if there is one, else the conversion of its longest converted
// parent package followed by the rest of the name, else pkg itself.
func (c *Converter) Package(pkg string) string {
	if v, ok := c.conversions[pkg]; ok {
		return v
	}
	best := ""
	for k := range c.conversions {
		if len(k) > len(best) && strings.HasPrefix(pkg, k+".") {
			best = k
		}
	}
	if best == "" {
		return pkg
	}
	return c.conversions[best] + pkg[len(best):]
}

// Decl returns the client classname of a type declaration.
func (c *Converter) Decl(d *decl.TypeDecl) string {
	if d.Package == nil || d.Package.Name == "" {
		return d.Name
	}
	return c.Package(d.Package.Name) + "." + d.Name
}

// Type returns the client classname of t. Arrays get a "[]" suffix
// whatever the mode; type arguments are only emitted with generics.
func (c *Converter) Type(t *decl.Type) string {
	switch t.Kind() {
	case decl.Void:
		return "void"
	case decl.Primitive:
		return t.Name()
	case decl.Array:
		return c.Type(t.Elem()) + "[]"
	}
	name := c.Decl(t.Decl())
	if !c.generics || len(t.Args()) == 0 {
		return name
	}
	args := make([]string, len(t.Args()))
	for i, a := range t.Args() {
		args[i] = c.Type(a)
	}
	return name + "<" + strings.Join(args, ", ") + ">"
}

// Adapted returns the type to project for a value of type t bound to
// adapter a. Substitution happens only when the converter applies
// adapters, a is set and t is not a collection. The adapter converts the
// component of an array, so arrays are wrapped back around the adapting
// type.
func (c *Converter) Adapted(t *decl.Type, a *decl.AdapterBinding) *decl.Type {
	if !c.adapters || a == nil || a.AdaptingType == nil || t.IsCollection() {
		return t
	}
	if t.IsArray() {
		return decl.NewArray(a.AdaptingType)
	}
	return a.AdaptingType
}

// Accessor returns the client classname of the type of an accessor.
func (c *Converter) Accessor(a *decl.Accessor) string {
	return c.Type(c.Adapted(a.Type, a.Adapter))
}

// Part returns the client classname of the type of a message part.
func (c *Converter) Part(p contract.TypedPart) string {
	return c.Type(c.Adapted(p.Type(), p.Adapter()))
}

// Classname returns the client classname of v, which may be a package
// name, a type, a type declaration, an accessor or a typed message part.
// Package declarations have no classname and return ErrUnsupported.
func (c *Converter) Classname(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return c.Package(v), nil
	case *decl.Type:
		return c.Type(v), nil
	case *decl.TypeDecl:
		return c.Decl(v), nil
	case *decl.Accessor:
		return c.Accessor(v), nil
	case contract.TypedPart:
		return c.Part(v), nil
	case *decl.Package:
		return "", fmt.Errorf("%w: packages don't have a client classname", ErrUnsupported)
	case nil:
		return "", errors.New("classname: nil value")
	}
	return "", fmt.Errorf("%w: no client classname for %T", ErrUnsupported, v)
}
