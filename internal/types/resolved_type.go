package types

import (
	"strings"

	"github.com/lattice-lang/latticec/internal/diagnostic"
)

// ResolvedType is the tagged variant §3 describes: a class instantiation,
// a type-variable reference, the dynamic sentinel, or a malformed-type
// sentinel. It deliberately has no behavior beyond identity and rendering —
// the components that consume it (Class Resolver, Linearization Builder)
// do the type-kind switch themselves rather than hiding it behind virtual
// dispatch, since the set of variants is small and closed (§9 design notes).
type ResolvedType interface {
	resolvedType()
	String() string
}

// ClassInstantiation is a class declaration applied to a (possibly empty)
// list of type arguments. Arity between Args and Class.TypeParams is
// validated where the instantiation is built, not here: a mismatched arity
// yields a MalformedType instead of a ClassInstantiation with the wrong
// length (§4.2).
type ClassInstantiation struct {
	Class *ClassDeclaration
	Args  []ResolvedType
}

func (*ClassInstantiation) resolvedType() {}

func (c *ClassInstantiation) String() string {
	if len(c.Args) == 0 {
		return c.Class.Name
	}
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Class.Name + "<" + strings.Join(parts, ", ") + ">"
}

// IsRaw reports whether this is a raw instantiation of a generic class —
// every argument defaulted to dynamic because none were written (§4.2,
// GLOSSARY "Raw instantiation").
func (c *ClassInstantiation) IsRaw() bool {
	if len(c.Class.TypeParams) == 0 {
		return false
	}
	for _, a := range c.Args {
		if _, ok := a.(*DynamicType); !ok {
			return false
		}
	}
	return len(c.Args) == len(c.Class.TypeParams)
}

// SameClass reports whether two instantiations name the same class
// declaration, ignoring type arguments — the identity the Linearization
// Builder dedups on (§4.5).
func (c *ClassInstantiation) SameClass(other *ClassInstantiation) bool {
	return other != nil && c.Class.ID == other.Class.ID
}

// TypeVariableRef refers to an in-scope type parameter, either of the
// enclosing class or (per §4.2) a function-type-parameter scope — this core
// only ever populates the former.
type TypeVariableRef struct {
	Param *TypeParameter
}

func (*TypeVariableRef) resolvedType() {}

func (t *TypeVariableRef) String() string { return t.Param.Name }

// DynamicType is the dynamic-type sentinel: "accept anything, check
// nothing". Every argument of a raw instantiation is a DynamicType.
type DynamicType struct{}

func (*DynamicType) resolvedType() {}
func (*DynamicType) String() string { return "dynamic" }

// Dynamic is the shared DynamicType instance; callers may compare against
// it with ==, but prefer a type switch for clarity.
var Dynamic = &DynamicType{}

// TopType is the implicit bound every type parameter gets when its
// declaration names none (§3, §4.3 step 1) — the top of the type lattice,
// independent of any particular class (it is not "the root class", which is
// a class declaration; TopType is a standing-in sentinel for "unbounded").
type TopType struct{}

func (*TopType) resolvedType() {}
func (*TopType) String() string { return "⊤" }

// Top is the shared TopType instance.
var Top = &TopType{}

// MalformedType carries the diagnostic that produced it, so a later pass
// asking "why is this malformed" doesn't have to re-derive the reason
// (§3). Equal by construction only — two malformed types are never
// considered interchangeable.
type MalformedType struct {
	Diagnostic diagnostic.Message
}

func (*MalformedType) resolvedType() {}
func (*MalformedType) String() string { return "<malformed>" }

// NewMalformedType wraps the diagnostic that produced the fallback.
func NewMalformedType(msg diagnostic.Message) *MalformedType {
	return &MalformedType{Diagnostic: msg}
}

// IsMalformed reports whether t is the malformed-type sentinel.
func IsMalformed(t ResolvedType) bool {
	_, ok := t.(*MalformedType)
	return ok
}

// IsDynamic reports whether t is the dynamic-type sentinel.
func IsDynamic(t ResolvedType) bool {
	_, ok := t.(*DynamicType)
	return ok
}
