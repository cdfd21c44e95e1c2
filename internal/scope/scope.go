// Package scope implements the Name Resolver Façade (§4.1): lookup of a
// simple or prefixed identifier against an enclosing lexical scope. The
// scope chain itself — how a class's type parameters, its library's
// top-level declarations, and its imports compose — is supplied by a host
// compiler; this package only defines the contract and a minimal in-memory
// implementation used by this module's own fixtures and tests.
package scope

import "github.com/lattice-lang/latticec/internal/types"

// SymbolKind distinguishes a class-like declaration from any other kind of
// top-level declaration a scope might hold (functions, variables, ...).
// Only class-like declarations are ever a valid answer to a type lookup.
type SymbolKind int

const (
	SymbolClassLike SymbolKind = iota
	SymbolOther
)

// Symbol is whatever a scope's simple-name lookup returns, before the
// façade judges whether it is type-like.
type Symbol struct {
	Kind  SymbolKind
	Class *types.ClassDeclaration // valid when Kind == SymbolClassLike
}

// Scope is the enclosing lexical scope the façade searches. A concrete
// scope composes a class's type parameters with its library's and its
// imports' top-level declarations; exactly how is a host compiler's
// business.
type Scope interface {
	// Lookup resolves a simple (unprefixed) name against this scope's
	// top-level declarations — not its type parameters; see TypeParam.
	Lookup(name string) (Symbol, bool)

	// TypeParam resolves name against the type parameters visible at this
	// point (the enclosing class, per §4.2's "enclosing-class scope").
	TypeParam(name string) (*types.TypeParameter, bool)

	// Prefix resolves an import prefix to the scope it names. ok is false
	// when prefix is not a bound import alias at all (the *not-a-prefix*
	// case, §4.1) — not merely when the prefix resolves to an empty scope.
	Prefix(prefix string) (Scope, bool)
}

// Provider is the ScopeProvider collaborator (§6): given a declaration, it
// yields the lexical scope enclosing it. The core never constructs scopes
// itself outside of tests.
type Provider interface {
	ScopeFor(decl *types.ClassDeclaration) Scope
}
