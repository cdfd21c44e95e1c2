package hierarchy

import (
	"github.com/lattice-lang/latticec/internal/ast"
	"github.com/lattice-lang/latticec/internal/diagnostic"
	"github.com/lattice-lang/latticec/internal/scope"
	"github.com/lattice-lang/latticec/internal/source"
	"github.com/lattice-lang/latticec/internal/types"
)

// Resolver is the Class Resolver (§4.3), the heart of the core. One
// Resolver instance is shared by every class resolved in a compilation; it
// holds no per-class state between calls to Resolve.
type Resolver struct {
	cfg      Config
	scopes   scope.Provider
	report   diagnostic.Reporter
	registry Registry
	ids      *IDAllocator
	deferred *DeferredQueue
}

// NewResolver builds a Class Resolver. cfg.Root and cfg.Backend must be set.
func NewResolver(cfg Config, scopes scope.Provider, report diagnostic.Reporter, registry Registry, ids *IDAllocator, deferred *DeferredQueue) *Resolver {
	return &Resolver{cfg: cfg, scopes: scopes, report: report, registry: registry, ids: ids, deferred: deferred}
}

// Resolve runs the six-step pipeline of §4.3 on class, which must be in
// state started. It leaves class in state done.
func (r *Resolver) Resolve(class *types.ClassDeclaration) {
	decl := class.DeclNode
	if decl == nil {
		// A host-builtin declaration with no source — the designated root
		// is the only class this core ever expects in this state (§4.3
		// step 2: "when the current class is itself the default
		// superclass, it gets no supertype").
		r.synthesizeDefaultConstructor(class)
		LinearizeInto(class)
		class.ResolutionState = types.ResolutionDone
		return
	}

	sc := &classScope{host: r.scopes.ScopeFor(class)}

	r.resolveTypeParams(class, decl, sc)
	if class.Kind == types.KindEnum {
		r.resolveEnum(class, decl)
	} else {
		r.resolveSupertype(class, decl, sc)
		r.resolveInterfaces(class, decl, sc)
	}
	r.synthesizeDefaultConstructor(class)
	LinearizeInto(class)

	class.ResolutionState = types.ResolutionDone
}

// resolveEnum is step 1a: an enum never carries its own supertype or
// interface list — the root is used and interfaces stay empty — but an
// empty value list is still diagnosed; resolution proceeds either way.
func (r *Resolver) resolveEnum(class *types.ClassDeclaration, decl *ast.ClassLikeDecl) {
	if len(decl.EnumValues) == 0 {
		r.report.Report(diagnostic.Message{
			Kind:   diagnostic.EmptyEnumDeclaration,
			Anchor: decl.Pos(),
			Args:   map[string]string{"name": class.Name},
		})
	}

	if r.cfg.Root != class {
		class.Supertype = r.cfg.Root.InstantiateRaw()
	}
	class.Interfaces = nil
}

// classScope layers a class's own (in-progress) type parameters over a
// host-supplied scope, so that a bound annotation like `<T extends U, U
// extends T>` can see sibling type parameters that the host's
// ScopeProvider never knew about.
type classScope struct {
	host   scope.Scope
	params []*types.TypeParameter
}

func (s *classScope) Lookup(name string) (scope.Symbol, bool) { return s.host.Lookup(name) }

func (s *classScope) TypeParam(name string) (*types.TypeParameter, bool) {
	for _, tp := range s.params {
		if tp.Name == name {
			return tp, true
		}
	}
	return s.host.TypeParam(name)
}

func (s *classScope) Prefix(prefix string) (scope.Scope, bool) { return s.host.Prefix(prefix) }

// resolveTypeParams is step 1: resolve each bound (or default to Top),
// reject duplicate names, and register each parameter's bound-cycle check
// for the driver to flush once class reaches done.
func (r *Resolver) resolveTypeParams(class *types.ClassDeclaration, decl *ast.ClassLikeDecl, sc *classScope) {
	seen := make(map[string]bool, len(decl.TypeParams))
	for _, node := range decl.TypeParams {
		tp := class.AddTypeParam(node.Name.Name)
		sc.params = append(sc.params, tp)
		if seen[node.Name.Name] {
			r.report.Report(diagnostic.Message{
				Kind:   diagnostic.DuplicateTypeVariableName,
				Anchor: node.Pos(),
				Args:   map[string]string{"name": node.Name.Name},
			})
		}
		seen[node.Name.Name] = true
	}

	for i, node := range decl.TypeParams {
		tp := class.TypeParams[i]
		if node.Bound != nil {
			tp.Bound = resolveTypeExpr(node.Bound, sc, r.report)
		} else {
			tp.Bound = types.Top
		}
		r.deferred.Enqueue(tp, node.Pos())
	}
}

// resolveSupertype is step 2.
func (r *Resolver) resolveSupertype(class *types.ClassDeclaration, decl *ast.ClassLikeDecl, sc *classScope) {
	if class.HasIncompleteHierarchy && class.Supertype != nil {
		// Already broken by the Supertype Loader's cycle detection (§5);
		// nothing left for the Class Resolver to decide here.
		return
	}

	switch {
	case decl.MixinClause != nil:
		r.expandMixinClause(class, decl.MixinClause, sc)
	case decl.Supertype != nil:
		resolved := resolveTypeExpr(decl.Supertype, sc, r.report)
		class.Supertype = r.validateAncestor(resolved, class.Library,
			diagnostic.CannotExtendMalformed, diagnostic.CannotExtendEnum, diagnostic.CannotExtend,
			decl.Supertype.Pos())
	default:
		def := r.cfg.Backend.DefaultSuperclass(class)
		if def == nil || def == class {
			class.Supertype = nil // class is the root
			return
		}
		class.Supertype = def.InstantiateRaw()
	}
}

// resolveInterfaces is step 3.
func (r *Resolver) resolveInterfaces(class *types.ClassDeclaration, decl *ast.ClassLikeDecl, sc *classScope) {
	for _, item := range decl.Interfaces {
		resolved := resolveTypeExpr(item, sc, r.report)
		inst := r.validateAncestor(resolved, class.Library,
			diagnostic.CannotImplementMalformed, diagnostic.CannotImplementEnum, diagnostic.CannotImplement,
			item.Pos())

		if class.Supertype != nil && inst.SameClass(class.Supertype) {
			r.report.Report(diagnostic.Message{
				Kind:   diagnostic.DuplicateExtendsImplements,
				Anchor: item.Pos(),
				Args:   map[string]string{"name": inst.Class.Name},
			})
		}
		for _, existing := range class.Interfaces {
			if existing.SameClass(inst) {
				r.report.Report(diagnostic.Message{
					Kind:   diagnostic.DuplicateImplements,
					Anchor: item.Pos(),
					Args:   map[string]string{"name": inst.Class.Name},
				})
				break
			}
		}
		class.Interfaces = append(class.Interfaces, inst)
	}
}

// validateAncestor applies the shared malformed/enum/blacklist checks §4.3
// steps 2 and 3 both specify, parameterized by which diagnostic kind
// triplet the caller (extends vs. implements) reports. A value that isn't
// a class instantiation at all is the "not an interface type" case, which
// both steps report under the single class-name-expected kind (§6's closed
// set has no implements-specific variant of it).
func (r *Resolver) validateAncestor(resolved types.ResolvedType, lib *types.Library, malformed, enum, blacklisted diagnostic.Kind, anchor source.Position) *types.ClassInstantiation {
	switch t := resolved.(type) {
	case *types.MalformedType:
		r.report.Report(diagnostic.Message{Kind: malformed, Anchor: anchor})
		return r.cfg.Root.InstantiateRaw()
	case *types.ClassInstantiation:
		if t.Class.Kind == types.KindEnum {
			r.report.Report(diagnostic.Message{Kind: enum, Anchor: anchor, Args: map[string]string{"name": t.Class.Name}})
			return r.cfg.Root.InstantiateRaw()
		}
		if r.isBlacklisted(t.Class, lib) {
			r.report.Report(diagnostic.Message{Kind: blacklisted, Anchor: anchor, Args: map[string]string{"name": t.Class.Name}})
			return r.cfg.Root.InstantiateRaw()
		}
		return t
	default:
		r.report.Report(diagnostic.Message{Kind: diagnostic.ClassNameExpected, Anchor: anchor})
		return r.cfg.Root.InstantiateRaw()
	}
}

func (r *Resolver) isBlacklisted(target *types.ClassDeclaration, fromLibrary *types.Library) bool {
	if r.cfg.Backend.IsTargetSpecificLibrary(fromLibrary.ID) {
		return false
	}
	return r.cfg.BlacklistedTypeNames[target.Name]
}

// synthesizeDefaultConstructor is step 4. Mixin-application classes are
// skipped: §4.4 already gave them one forwarder per accessible generative
// superclass constructor, a richer synthesis than this step's single
// unnamed-constructor lookup.
func (r *Resolver) synthesizeDefaultConstructor(class *types.ClassDeclaration) {
	if class.Kind.IsMixinApplication() {
		return
	}
	if class.DeclNode != nil && len(class.DeclNode.Constructors) > 0 {
		for _, node := range class.DeclNode.Constructors {
			class.Constructors = append(class.Constructors, &types.ConstructorElement{
				Name: node.Name, Params: node.Params, Kind: node.Kind,
				Visibility: node.Visibility, DeclaringClass: class,
			})
		}
		return
	}

	if class.Supertype == nil {
		// The root class itself: a plain zero-arg constructor with
		// nothing to forward to.
		class.Constructors = append(class.Constructors, &types.ConstructorElement{
			Kind: ast.ConstructorGenerative, Visibility: ast.VisibilityPublic,
			IsSynthetic: true, DeclaringClass: class,
		})
		return
	}

	super := class.Supertype.Class
	unnamed, found := super.UnnamedConstructor()
	var ctor *types.ConstructorElement
	var failKind diagnostic.Kind
	switch {
	case !found:
		failKind = diagnostic.CannotFindUnnamedConstructor
	case !unnamed.IsGenerative():
		failKind = diagnostic.SuperCallToFactory
	case !unnamed.IsZeroArg():
		failKind = diagnostic.NoMatchingConstructorImplicit
	}

	if failKind != "" {
		anchor := class.DeclNode.Pos()
		r.report.Report(diagnostic.Message{Kind: failKind, Anchor: anchor, Args: map[string]string{"name": class.Name}})
		ctor = types.NewErroneousConstructor(class)
		r.registry.RegisterFeature(ThrowNoSuchMethod)
		r.registry.RegisterConstructorError(ctor, string(failKind))
	} else {
		ctor = types.NewForwardingConstructor(class, unnamed, false)
	}
	class.Constructors = append(class.Constructors, ctor)
}
