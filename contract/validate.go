package contract

import (
	"fmt"

	"goa.design/goa/v3/eval"
)

// Validate resolves the element and type names of every part of every
// operation of the given endpoint interfaces and returns all the failures
// at once, as an *eval.ValidationErrors. It returns nil when the contract
// is consistent.
func Validate(r *Resolver, endpoints ...*EndpointInterface) error {
	verr := new(eval.ValidationErrors)
	for _, ei := range endpoints {
		for _, m := range ei.WebMethods() {
			validateMethod(r, m, verr)
		}
	}
	if len(verr.Errors) == 0 {
		return nil
	}
	return verr
}

func validateMethod(r *Resolver, m *WebMethod, verr *eval.ValidationErrors) {
	if m.ParameterStyle() == Bare {
		validateBareShape(m, verr)
	}
	seen := make(map[WebMessagePart]bool)
	check := func(p WebMessagePart) {
		if !seen[p] {
			seen[p] = true
			validatePart(r, m, p, verr)
		}
	}
	for _, msg := range m.Messages() {
		parts, err := msg.Parts()
		if err != nil {
			verr.AddError(m, err)
			continue
		}
		for _, p := range parts {
			check(p)
			if w, ok := p.(*Wrapper); ok {
				for _, c := range w.Children() {
					check(c)
				}
			}
		}
	}
}

// validateBareShape checks that a bare method has at most one body part
// each way, bare messages having a single part.
func validateBareShape(m *WebMethod, verr *eval.ValidationErrors) {
	if in := m.BodyInputs(); len(in) > 1 {
		verr.AddError(m, &ValidationError{
			Kind:    KindMessageShape,
			Pos:     m.Position(),
			Subject: m.OperationName(),
			Msg: fmt.Sprintf("bare operation %s has %d body input parameters, at most one is allowed",
				m.OperationName(), len(in)),
		})
	}
	out := 0
	if m.hasResult() && !m.result.IsHeader() {
		out++
	}
	for _, p := range m.params {
		if p.IsOutput() && !p.IsHeader() {
			out++
		}
	}
	if out > 1 {
		verr.AddError(m, &ValidationError{
			Kind:    KindMessageShape,
			Pos:     m.Position(),
			Subject: m.OperationName(),
			Msg: fmt.Sprintf("bare operation %s has %d body outputs, at most one is allowed",
				m.OperationName(), out),
		})
	}
}

func validatePart(r *Resolver, m *WebMethod, p WebMessagePart, verr *eval.ValidationErrors) {
	if _, err := r.ElementQName(p); err != nil {
		verr.AddError(m, err)
		return
	}
	if _, ok := p.(TypedPart); !ok || !p.IsImplicitSchemaElement() {
		return
	}
	if _, err := r.TypeQName(p); err != nil {
		verr.AddError(m, err)
	}
}
