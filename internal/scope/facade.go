package scope

import (
	"github.com/lattice-lang/latticec/internal/ast"
	"github.com/lattice-lang/latticec/internal/diagnostic"
	"github.com/lattice-lang/latticec/internal/types"
)

// Result is the Name Resolver Façade's output (§4.1): exactly one of Class,
// TypeParam, or Err is populated. Err is empty on success.
type Result struct {
	Class     *types.ClassDeclaration
	TypeParam *types.TypeParameter
	Err       diagnostic.Kind
}

// Found reports whether the lookup succeeded.
func (r Result) Found() bool {
	return r.Class != nil || r.TypeParam != nil
}

// Resolve looks up ref (a simple or `prefix.name` identifier) against sc,
// the Name Resolver Façade of §4.1. A prefixed reference whose prefix is
// not a bound import alias fails with NotAPrefix; any reference that finds
// a declaration which isn't class-like fails with CannotResolveType —
// including one that resolves to nothing at all, since the closed message
// set (§6) has no separate "undeclared identifier" kind.
func Resolve(ref *ast.Identifier, sc Scope) Result {
	if ref.Prefix == "" {
		if tp, ok := sc.TypeParam(ref.Name); ok {
			return Result{TypeParam: tp}
		}
		sym, ok := sc.Lookup(ref.Name)
		if !ok || sym.Kind != SymbolClassLike {
			return Result{Err: diagnostic.CannotResolveType}
		}
		return Result{Class: sym.Class}
	}

	target, ok := sc.Prefix(ref.Prefix)
	if !ok {
		return Result{Err: diagnostic.NotAPrefix}
	}
	sym, ok := target.Lookup(ref.Name)
	if !ok || sym.Kind != SymbolClassLike {
		return Result{Err: diagnostic.CannotResolveType}
	}
	return Result{Class: sym.Class}
}
