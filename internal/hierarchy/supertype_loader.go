package hierarchy

import (
	"github.com/lattice-lang/latticec/internal/ast"
	"github.com/lattice-lang/latticec/internal/diagnostic"
	"github.com/lattice-lang/latticec/internal/scope"
	"github.com/lattice-lang/latticec/internal/types"
)

// Loader is the Supertype Loader (§4.3 intro, §5): the first pass that, for
// every class, ensures its directly named supertypes, mixins, and
// interfaces are themselves loaded before the Class Resolver runs on it.
// It only binds names to declarations — it never resolves a type
// expression into a types.ResolvedType, that is the Class Resolver's job
// once it owns the class.
type Loader struct {
	scopes scope.Provider
	report diagnostic.Reporter
	root   *types.ClassDeclaration
}

// NewLoader builds a Supertype Loader. root is the designated root class
// (conventionally Object); a cycle that loops back to a class is broken by
// wiring that class directly to root, bypassing the Class Resolver's own
// supertype resolution for it entirely (§5).
func NewLoader(scopes scope.Provider, report diagnostic.Reporter, root *types.ClassDeclaration) *Loader {
	return &Loader{scopes: scopes, report: report, root: root}
}

// Load performs the depth-first recursive load of §5's ordering guarantee:
// class is marked load-started before descending into its direct
// supertype, mixin, and interface references; revisiting an ancestor still
// in load-started state is a cycle.
func (l *Loader) Load(class *types.ClassDeclaration) {
	if class.SupertypeLoadState != types.LoadUnstarted {
		return
	}
	class.SupertypeLoadState = types.LoadStarted

	sc := l.scopes.ScopeFor(class)
	for _, ref := range directTypeRefs(class.DeclNode) {
		target := l.bind(ref, sc)
		if target == nil {
			// Unresolved name: the Class Resolver's own calls into the
			// Type-Expression Resolver will report cannot-resolve-type
			// when it gets to this class; the loader has nothing further
			// to descend into.
			continue
		}
		if target.SupertypeLoadState == types.LoadStarted {
			l.breakCycle(class, target, ref)
			continue
		}
		l.Load(target)
	}

	class.SupertypeLoadState = types.LoadDone
}

// bind resolves ref to the class declaration it names, ignoring generic
// type arguments entirely — the loader cares only about which declaration
// a name is bound to, not what it's instantiated with.
func (l *Loader) bind(ref *ast.Identifier, sc scope.Scope) *types.ClassDeclaration {
	result := scope.Resolve(ref, sc)
	return result.Class
}

// breakCycle fires when descending from class reaches target while target
// is still mid-load, i.e. target is an ancestor of class on the current
// load path (target and class coincide for direct self-reference). Per §5
// the affected class — target, the one whose cycle-closing edge was found —
// is wired directly to root so the Class Resolver never has to re-detect
// the same cycle during its own step 2.
func (l *Loader) breakCycle(class *types.ClassDeclaration, target *types.ClassDeclaration, ref *ast.Identifier) {
	if target.HasIncompleteHierarchy {
		return // already broken by an earlier revisit of the same cycle
	}
	l.report.Report(diagnostic.Message{
		Kind:   diagnostic.IllegalMixinCycle,
		Anchor: ref.Pos(),
		Args:   map[string]string{"name": target.Name},
	})
	target.HasIncompleteHierarchy = true
	if target != l.root {
		target.Supertype = l.root.InstantiateRaw()
	}
}

// directTypeRefs extracts the top-level identifiers named by a class-like
// declaration's supertype, mixin clause, and interfaces — the graph edges
// the Supertype Loader walks. Generic arguments are not walked: they name
// instantiations, not structural ancestors, and the Class Resolver resolves
// them once the class itself is being resolved.
func directTypeRefs(decl *ast.ClassLikeDecl) []*ast.Identifier {
	if decl == nil {
		// A host-builtin declaration (the root) names nothing.
		return nil
	}
	var refs []*ast.Identifier
	add := func(expr ast.TypeExpr) {
		if named, ok := expr.(*ast.NamedTypeExpr); ok {
			refs = append(refs, named.Ref)
		}
	}
	if decl.MixinClause != nil {
		add(decl.MixinClause.Super)
		for _, m := range decl.MixinClause.Mixins {
			add(m)
		}
	} else if decl.Supertype != nil {
		add(decl.Supertype)
	}
	for _, iface := range decl.Interfaces {
		add(iface)
	}
	return refs
}
