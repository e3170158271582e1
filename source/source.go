// Package source loads annotated declarations from YAML files.
//
// A declaration file lists packages and the types they declare, with the
// annotation attributes that drive contract resolution. It stands in for
// the annotation processing front end of a compiler:
//
//	knownClasses:
//	  - com.example.data.Person
//	packages:
//	  - name: com.example.data
//	    namespace: urn:example
//	    types:
//	      - name: Person
//	        rootElement: {}
//	        accessors:
//	          - {name: name, type: String}
//	  - name: com.example.api
//	    types:
//	      - name: PersonService
//	        kind: interface
//	        webService: {}
//	        methods:
//	          - name: findPerson
//	            returns: com.example.data.Person
//	            params:
//	              - {name: id, type: String}
//
// Type expressions are primitives, void, class names, generic types like
// java.util.List<String> and arrays like Person[]. Simple names resolve in
// the declaring package first and then among the library types.
//
// Root element classes listed in knownClasses are registered in the root
// element registry. When the knownClasses key is absent every root element
// class is registered.
package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/fiorix/wscontract/decl"
	"github.com/fiorix/wscontract/registry"
)

// Declarations is the result of loading a declaration file.
type Declarations struct {
	// Packages in file order.
	Packages []*decl.Package
	// Types declared by the file, in file order.
	Types []*decl.TypeDecl
	// Registry holds the known root elements.
	Registry *registry.Registry

	types    map[string]*decl.TypeDecl
	builtins map[string]*decl.TypeDecl
}

// Type returns the declared or library type with the given qualified name.
func (ds *Declarations) Type(qualifiedName string) (*decl.TypeDecl, bool) {
	if d, ok := ds.types[qualifiedName]; ok {
		return d, true
	}
	d, ok := ds.builtins[qualifiedName]
	return d, ok
}

// Endpoints returns the declared types carrying a web service annotation.
func (ds *Declarations) Endpoints() []*decl.TypeDecl {
	var list []*decl.TypeDecl
	for _, d := range ds.Types {
		if d.WebService != nil {
			list = append(list, d)
		}
	}
	return list
}

// ParseType parses a type expression in the scope of package pkg.
func (ds *Declarations) ParseType(expr, pkg string) (*decl.Type, error) {
	return parseType(expr, ds.resolver(pkg))
}

func (ds *Declarations) resolver(pkg string) resolveFunc {
	return func(name string) (*decl.TypeDecl, error) {
		if strings.Contains(name, ".") {
			if d, ok := ds.Type(name); ok {
				return d, nil
			}
			return nil, fmt.Errorf("unknown type %s", name)
		}
		if pkg != "" {
			if d, ok := ds.types[pkg+"."+name]; ok {
				return d, nil
			}
		} else if d, ok := ds.types[name]; ok {
			return d, nil
		}
		for _, b := range builtins {
			if _, ok := b.names[name]; ok {
				return ds.builtins[b.pkg+"."+name], nil
			}
		}
		return nil, fmt.Errorf("unknown type %s", name)
	}
}

// LoadFile loads the declaration file at path.
func LoadFile(path string) (*Declarations, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, path)
}

// Load reads declarations from r. Name is used in positions.
func Load(r io.Reader, name string) (*Declarations, error) {
	var doc fileDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%s: empty declaration file", name)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	b := &builder{
		file: name,
		ds: &Declarations{
			Registry: registry.New(),
			types:    make(map[string]*decl.TypeDecl),
			builtins: newBuiltins(),
		},
	}
	if err := b.build(&doc); err != nil {
		return nil, err
	}
	log.Debug().
		Str("file", name).
		Int("packages", len(b.ds.Packages)).
		Int("types", len(b.ds.Types)).
		Int("rootElements", b.ds.Registry.Len()).
		Msg("loaded declarations")
	return b.ds, nil
}

type builder struct {
	file string
	ds   *Declarations
}

func (b *builder) pos(at position) decl.Position {
	return decl.Position{File: b.file, Line: at.Line, Column: at.Column}
}

func (b *builder) errorf(at position, format string, args ...any) error {
	return fmt.Errorf("%s: %s", b.pos(at), fmt.Sprintf(format, args...))
}

// build declares every type before resolving members, so that types may
// refer to types declared further down the file.
func (b *builder) build(doc *fileDoc) error {
	type pending struct {
		d   *decl.TypeDecl
		doc *typeDoc
	}
	var todo []pending
	for _, pd := range doc.Packages {
		pkg := &decl.Package{
			Name:      pd.Name,
			Namespace: pd.Namespace,
			Doc:       pd.Doc,
			Pos:       b.pos(pd.position),
		}
		b.ds.Packages = append(b.ds.Packages, pkg)
		for _, td := range pd.Types {
			d, err := b.declare(pkg, td)
			if err != nil {
				return err
			}
			todo = append(todo, pending{d, td})
		}
	}
	for _, p := range todo {
		if err := b.members(p.d, p.doc); err != nil {
			return err
		}
	}
	return b.register(doc)
}

func (b *builder) declare(pkg *decl.Package, td *typeDoc) (*decl.TypeDecl, error) {
	if td.Name == "" {
		return nil, b.errorf(td.position, "type without a name")
	}
	d := &decl.TypeDecl{
		Package:     pkg,
		Name:        td.Name,
		Doc:         td.Doc,
		Pos:         b.pos(td.position),
		Collection:  td.Collection,
		RootElement: td.RootElement,
		XMLType:     td.XMLType,
		WebService:  td.WebService,
		SOAPBinding: td.SOAPBinding,
	}
	switch strings.ToLower(td.Kind) {
	case "", "class":
	case "interface":
		d.Interface = true
	case "enum":
		d.Enum = true
	default:
		return nil, b.errorf(td.position, "unknown kind %q of %s", td.Kind, d.QualifiedName())
	}
	if d.WebService != nil && !d.Interface {
		return nil, b.errorf(td.position, "web service %s must be an interface", d.QualifiedName())
	}
	qn := d.QualifiedName()
	if prev, ok := b.ds.types[qn]; ok {
		return nil, b.errorf(td.position, "%s is already declared at %s", qn, prev.Pos)
	}
	b.ds.types[qn] = d
	b.ds.Types = append(b.ds.Types, d)
	return d, nil
}

func (b *builder) parseType(expr string, pkg *decl.Package, at position) (*decl.Type, error) {
	if expr == "" {
		return nil, b.errorf(at, "missing type")
	}
	t, err := b.ds.ParseType(expr, pkg.Name)
	if err != nil {
		return nil, b.errorf(at, "%v", err)
	}
	return t, nil
}

func (b *builder) adapter(ad *adapterDoc, pkg *decl.Package) (*decl.AdapterBinding, error) {
	if ad == nil {
		return nil, nil
	}
	at, err := b.parseType(ad.Adapter, pkg, ad.position)
	if err != nil {
		return nil, err
	}
	if !at.IsDeclared() {
		return nil, b.errorf(ad.position, "adapter %s must be a class", at)
	}
	bound, err := b.parseType(ad.Bound, pkg, ad.position)
	if err != nil {
		return nil, err
	}
	adapting, err := b.parseType(ad.Adapting, pkg, ad.position)
	if err != nil {
		return nil, err
	}
	return &decl.AdapterBinding{Adapter: at.Decl(), BoundType: bound, AdaptingType: adapting}, nil
}

func (b *builder) members(d *decl.TypeDecl, td *typeDoc) error {
	for _, ad := range td.Accessors {
		t, err := b.parseType(ad.Type, d.Package, ad.position)
		if err != nil {
			return err
		}
		adapter, err := b.adapter(ad.Adapter, d.Package)
		if err != nil {
			return err
		}
		d.Accessors = append(d.Accessors, &decl.Accessor{
			Name:    ad.Name,
			Doc:     ad.Doc,
			Pos:     b.pos(ad.position),
			Type:    t,
			Adapter: adapter,
		})
	}
	for _, md := range td.Methods {
		m, err := b.method(d, md)
		if err != nil {
			return err
		}
		d.Methods = append(d.Methods, m)
	}
	return nil
}

func (b *builder) method(owner *decl.TypeDecl, md *methodDoc) (*decl.MethodDecl, error) {
	if md.Name == "" {
		return nil, b.errorf(md.position, "method of %s without a name", owner.QualifiedName())
	}
	m := &decl.MethodDecl{
		Name:        md.Name,
		Doc:         md.Doc,
		Pos:         b.pos(md.position),
		ReturnDoc:   md.ReturnDoc,
		WebMethod:   md.WebMethod,
		WebResult:   md.WebResult,
		SOAPBinding: md.SOAPBinding,
		Oneway:      md.Oneway,
		Owner:       owner,
		Returns:     decl.VoidType,
	}
	var err error
	if md.Returns != "" {
		if m.Returns, err = b.parseType(md.Returns, owner.Package, md.position); err != nil {
			return nil, err
		}
	}
	if m.ResultAdapter, err = b.adapter(md.ResultAdapter, owner.Package); err != nil {
		return nil, err
	}
	for _, pd := range md.Params {
		t, err := b.parseType(pd.Type, owner.Package, pd.position)
		if err != nil {
			return nil, err
		}
		adapter, err := b.adapter(pd.Adapter, owner.Package)
		if err != nil {
			return nil, err
		}
		m.Params = append(m.Params, &decl.ParamDecl{
			Name:     pd.Name,
			Doc:      pd.Doc,
			Pos:      b.pos(pd.position),
			Type:     t,
			WebParam: pd.WebParam,
			Adapter:  adapter,
		})
	}
	for _, expr := range md.Throws {
		t, err := b.parseType(expr, owner.Package, md.position)
		if err != nil {
			return nil, err
		}
		m.Throws = append(m.Throws, t)
	}
	return m, nil
}

func (b *builder) register(doc *fileDoc) error {
	if doc.KnownClasses == nil {
		for _, d := range b.ds.Types {
			if d.RootElement == nil {
				continue
			}
			if _, err := b.ds.Registry.Add(d); err != nil {
				return err
			}
		}
		return nil
	}
	for _, name := range doc.KnownClasses {
		d, ok := b.ds.types[name]
		if !ok {
			return fmt.Errorf("%s: unknown class %s in knownClasses", b.file, name)
		}
		if _, err := b.ds.Registry.Add(d); err != nil {
			return err
		}
	}
	return nil
}
