// Package registry keeps the root element declarations known to a
// generation run.
//
// A Registry is populated once, before resolution starts, and is only read
// afterwards. Lookups are safe for concurrent use once population is done.
package registry

import (
	"encoding/xml"
	"fmt"
	"sort"

	"github.com/fiorix/wscontract/decl"
)

// RootElement is a registered root element declaration.
type RootElement struct {
	Namespace string
	Name      string
	Decl      *decl.TypeDecl
}

// QName returns the qualified element name.
func (e RootElement) QName() xml.Name {
	return xml.Name{Space: e.Namespace, Local: e.Name}
}

// A Finder looks up the root element registered for a type declaration.
type Finder interface {
	FindRootElement(d *decl.TypeDecl) (RootElement, bool)
}

// Registry maps type declarations to root elements, by qualified name.
type Registry struct {
	elements map[string]RootElement
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{elements: make(map[string]RootElement)}
}

// Add registers d, which must carry a root element marker. The element name
// defaults to the decapitalized simple name of d and the namespace to the
// schema namespace of its package.
func (r *Registry) Add(d *decl.TypeDecl) (RootElement, error) {
	ann := d.RootElement
	if ann == nil {
		return RootElement{}, fmt.Errorf("%s: %s is not marked as a root element", d.Pos, d.QualifiedName())
	}
	if d.Interface {
		return RootElement{}, fmt.Errorf("%s: root element %s must be a class", d.Pos, d.QualifiedName())
	}
	e := RootElement{
		Namespace: decl.SchemaNamespace(d, ann.Namespace),
		Name:      ann.Name,
		Decl:      d,
	}
	if e.Name == "" {
		e.Name = decl.Decapitalize(d.Name)
	}
	if prev, ok := r.byQName(e.QName()); ok && prev.Decl.QualifiedName() != d.QualifiedName() {
		return RootElement{}, fmt.Errorf("%s: root element {%s}%s of %s is already declared by %s",
			d.Pos, e.Namespace, e.Name, d.QualifiedName(), prev.Decl.QualifiedName())
	}
	r.elements[d.QualifiedName()] = e
	return e, nil
}

// FindRootElement implements Finder.
func (r *Registry) FindRootElement(d *decl.TypeDecl) (RootElement, bool) {
	if d == nil {
		return RootElement{}, false
	}
	e, ok := r.elements[d.QualifiedName()]
	return e, ok
}

// Len returns the number of registered elements.
func (r *Registry) Len() int {
	return len(r.elements)
}

// Elements returns the registered elements sorted by namespace and name.
func (r *Registry) Elements() []RootElement {
	list := make([]RootElement, 0, len(r.elements))
	for _, e := range r.elements {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Namespace != list[j].Namespace {
			return list[i].Namespace < list[j].Namespace
		}
		return list[i].Name < list[j].Name
	})
	return list
}

func (r *Registry) byQName(name xml.Name) (RootElement, bool) {
	for _, e := range r.elements {
		if e.QName() == name {
			return e, true
		}
	}
	return RootElement{}, false
}
