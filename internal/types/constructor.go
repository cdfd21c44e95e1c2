package types

import "github.com/lattice-lang/latticec/internal/ast"

// ConstructorElement is a constructor attached to a resolved class: either
// one the user wrote, or one the Class Resolver synthesized (§4.3 step 4,
// §4.4). Synthesized constructors still carry enough shape information
// (name, parameters) for a downstream code-generation phase to emit the
// forwarding call — this core stops at describing that shape.
type ConstructorElement struct {
	Name       string
	Params     []*ast.ParamNode
	Kind       ast.ConstructorKind
	Visibility ast.Visibility

	// IsSynthetic is true for a default or forwarding constructor the Class
	// Resolver installed because the source declared none.
	IsSynthetic bool

	// IsErroneous is true when synthesis failed (no matching unnamed
	// superclass constructor, a factory where a generative one was needed,
	// ...) and this element is only a placeholder so later phases have
	// something to call (§4.3 step 4).
	IsErroneous bool

	// ForwardsTo is the superclass constructor a synthesized constructor
	// calls with a matching argument list. Nil for user-written
	// constructors and for erroneous placeholders.
	ForwardsTo *ConstructorElement

	// DeclaringClass is the class this constructor is attached to — the
	// mixin application it forwards for, not necessarily ForwardsTo's
	// class.
	DeclaringClass *ClassDeclaration
}

// IsGenerative reports whether this constructor produces a fresh instance
// of exactly its declaring class, as opposed to a factory.
func (c *ConstructorElement) IsGenerative() bool {
	return c.Kind == ast.ConstructorGenerative
}

// IsZeroArg reports whether the constructor can be invoked with no
// arguments — the shape default-constructor synthesis requires of the
// superclass's unnamed constructor (§4.3 step 4).
func (c *ConstructorElement) IsZeroArg() bool {
	for _, p := range c.Params {
		if !p.Optional {
			return false
		}
	}
	return true
}

// NewErroneousConstructor builds the placeholder §4.3 step 4 installs when
// default-constructor synthesis fails for any of its three documented
// reasons. The caller is responsible for also reporting the diagnostic and
// registering the throw-no-such-method feature.
func NewErroneousConstructor(owner *ClassDeclaration) *ConstructorElement {
	return &ConstructorElement{
		Name:           "",
		Kind:           ast.ConstructorGenerative,
		Visibility:     ast.VisibilityPublic,
		IsSynthetic:    true,
		IsErroneous:    true,
		DeclaringClass: owner,
	}
}

// NewForwardingConstructor builds a synthesized constructor that forwards
// to target with no parameters of its own (the default-constructor case),
// or with target's own parameter shape (the mixin-application forwarder
// case, where the forwarder mirrors its superclass constructor exactly —
// §4.4).
func NewForwardingConstructor(owner *ClassDeclaration, target *ConstructorElement, mirrorParams bool) *ConstructorElement {
	c := &ConstructorElement{
		Name:           target.Name,
		Kind:           ast.ConstructorGenerative,
		Visibility:     target.Visibility,
		IsSynthetic:    true,
		ForwardsTo:     target,
		DeclaringClass: owner,
	}
	if mirrorParams {
		c.Params = target.Params
	}
	return c
}
