package decl

import (
	"unicode"
	"unicode/utf8"
)

// Decapitalize lowercases the first letter of name, unless the first two
// letters are both upper case ("URL" stays "URL", "Person" becomes
// "person").
func Decapitalize(name string) string {
	first, n := utf8.DecodeRuneInString(name)
	if n == 0 || !unicode.IsUpper(first) {
		return name
	}
	if second, _ := utf8.DecodeRuneInString(name[n:]); unicode.IsUpper(second) {
		return name
	}
	return string(unicode.ToLower(first)) + name[n:]
}

// SchemaNamespace returns ns when set, else the schema namespace of the
// package of d.
func SchemaNamespace(d *TypeDecl, ns string) string {
	if ns != "" {
		return ns
	}
	if d.Package != nil {
		return d.Package.Namespace
	}
	return ""
}
