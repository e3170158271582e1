package contract

import (
	"errors"

	"goa.design/goa/v3/eval"

	"github.com/fiorix/wscontract/decl"
)

// ErrUnsupported is returned when a query does not apply to the shape it
// is asked of, like asking a wrapped web result for its parts. It signals
// a caller bug rather than bad declarations.
var ErrUnsupported = errors.New("unsupported operation")

// ErrorKind classifies validation errors.
type ErrorKind int

// Validation error kinds.
const (
	// KindUnregisteredRootElement: a root element class is missing from the
	// root element registry.
	KindUnregisteredRootElement ErrorKind = iota + 1
	// KindAnonymousType: a part refers to an anonymous XML type.
	KindAnonymousType
	// KindTypeMapping: a part type has no XML type mapping.
	KindTypeMapping
	// KindMessageShape: a method declares parts its binding style cannot
	// carry.
	KindMessageShape
	// KindNameClash: parts of different shapes resolve to the same element
	// or message name.
	KindNameClash
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnregisteredRootElement:
		return "unregistered root element"
	case KindAnonymousType:
		return "anonymous type"
	case KindTypeMapping:
		return "type mapping"
	case KindMessageShape:
		return "message shape"
	case KindNameClash:
		return "name clash"
	}
	return "unknown"
}

// ValidationError is a fatal problem with the declarations. It aborts the
// generation of the artifact being built.
type ValidationError struct {
	Kind    ErrorKind
	Pos     decl.Position
	Subject string // offending declaration, when there is one
	Msg     string
	Err     error // underlying cause, if any
}

func (e *ValidationError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsKind reports whether err is, or wraps, a ValidationError of kind k.
// Errors aggregated by Validate are searched too.
func IsKind(err error, k ErrorKind) bool {
	for _, v := range ValidationErrors(err) {
		if v.Kind == k {
			return true
		}
	}
	return false
}

// ValidationErrors flattens err into the validation errors it carries.
func ValidationErrors(err error) []*ValidationError {
	var list []*ValidationError
	var verr *eval.ValidationErrors
	if errors.As(err, &verr) {
		for _, e := range verr.Errors {
			list = append(list, ValidationErrors(e)...)
		}
		return list
	}
	var v *ValidationError
	if errors.As(err, &v) {
		list = append(list, v)
	}
	return list
}
