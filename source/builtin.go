package source

import "github.com/fiorix/wscontract/decl"

// builtinKind describes a library type known without being declared.
type builtinKind int

const (
	builtinClass builtinKind = iota
	builtinInterface
	builtinCollection      // a collection interface
	builtinCollectionClass // a collection implementation
)

// builtins are the library types declaration files may refer to. Simple
// names resolve against them in the order of this list.
var builtins = []struct {
	pkg   string
	names map[string]builtinKind
}{
	{"java.lang", map[string]builtinKind{
		"Object":    builtinClass,
		"String":    builtinClass,
		"Boolean":   builtinClass,
		"Byte":      builtinClass,
		"Character": builtinClass,
		"Short":     builtinClass,
		"Integer":   builtinClass,
		"Long":      builtinClass,
		"Float":     builtinClass,
		"Double":    builtinClass,
		"Runnable":  builtinInterface,
		"Exception": builtinClass,
	}},
	{"java.util", map[string]builtinKind{
		"Collection": builtinCollection,
		"List":       builtinCollection,
		"Set":        builtinCollection,
		"ArrayList":  builtinCollectionClass,
		"HashSet":    builtinCollectionClass,
		"Map":        builtinInterface,
		"Date":       builtinClass,
		"Calendar":   builtinClass,
		"UUID":       builtinClass,
	}},
	{"java.math", map[string]builtinKind{
		"BigDecimal": builtinClass,
		"BigInteger": builtinClass,
	}},
	{"java.net", map[string]builtinKind{
		"URI": builtinClass,
	}},
	{"javax.xml.namespace", map[string]builtinKind{
		"QName": builtinClass,
	}},
	{"javax.xml.datatype", map[string]builtinKind{
		"XMLGregorianCalendar": builtinClass,
		"Duration":             builtinClass,
	}},
	{"javax.activation", map[string]builtinKind{
		"DataHandler": builtinClass,
	}},
	{"javax.xml.ws", map[string]builtinKind{
		"Holder": builtinClass,
	}},
}

// newBuiltins declares the library types, by qualified name.
func newBuiltins() map[string]*decl.TypeDecl {
	m := make(map[string]*decl.TypeDecl)
	for _, b := range builtins {
		pkg := &decl.Package{Name: b.pkg}
		for name, kind := range b.names {
			d := &decl.TypeDecl{Package: pkg, Name: name}
			switch kind {
			case builtinInterface:
				d.Interface = true
			case builtinCollection:
				d.Interface = true
				d.Collection = true
			case builtinCollectionClass:
				d.Collection = true
			}
			m[d.QualifiedName()] = d
		}
	}
	return m
}
