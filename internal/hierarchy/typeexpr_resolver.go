package hierarchy

import (
	"strconv"

	"github.com/lattice-lang/latticec/internal/ast"
	"github.com/lattice-lang/latticec/internal/diagnostic"
	"github.com/lattice-lang/latticec/internal/scope"
	"github.com/lattice-lang/latticec/internal/types"
)

// resolveTypeExpr is the Type-Expression Resolver (§4.2): it turns a
// syntactic nominal type annotation into a types.ResolvedType, against sc
// (the enclosing-class scope, which also answers type-parameter lookups).
// This core never has a function-type-parameter scope to thread through —
// §4.2 notes it is "empty at class level", the only level this core
// operates at — so sc alone stands in for both.
func resolveTypeExpr(expr ast.TypeExpr, sc scope.Scope, report diagnostic.Reporter) types.ResolvedType {
	switch t := expr.(type) {
	case *ast.DynamicTypeExpr:
		return types.Dynamic
	case *ast.NamedTypeExpr:
		return resolveNamedTypeExpr(t, sc, report)
	default:
		// An unrecognized TypeExpr implementation is a driver bug (§7
		// "internal errors"): every syntactic form this core knows about
		// is one of the two cases above.
		panic("hierarchy: unknown ast.TypeExpr implementation")
	}
}

func resolveNamedTypeExpr(t *ast.NamedTypeExpr, sc scope.Scope, report diagnostic.Reporter) types.ResolvedType {
	result := scope.Resolve(t.Ref, sc)

	if result.TypeParam != nil {
		// A type-variable reference takes no arguments of its own; any
		// written here would be a syntax error the parser should have
		// rejected, so the core doesn't re-validate it.
		return &types.TypeVariableRef{Param: result.TypeParam}
	}

	if result.Err != "" {
		msg := diagnostic.Message{
			Kind:   result.Err,
			Anchor: t.Pos(),
			Args:   map[string]string{"name": t.Ref.String()},
		}
		report.Report(msg)
		return types.NewMalformedType(msg)
	}

	class := result.Class
	if len(t.Args) == 0 {
		// Raw instantiation: every argument defaults to dynamic (§4.2,
		// GLOSSARY).
		return class.InstantiateRaw()
	}

	if len(t.Args) != len(class.TypeParams) {
		msg := diagnostic.Message{
			Kind:   diagnostic.CannotResolveType,
			Anchor: t.Pos(),
			Args: map[string]string{
				"name":     class.Name,
				"expected": strconv.Itoa(len(class.TypeParams)),
				"got":      strconv.Itoa(len(t.Args)),
			},
		}
		report.Report(msg)
		return types.NewMalformedType(msg)
	}

	args := make([]types.ResolvedType, len(t.Args))
	for i, argExpr := range t.Args {
		args[i] = resolveTypeExpr(argExpr, sc, report)
	}
	return &types.ClassInstantiation{Class: class, Args: args}
}

