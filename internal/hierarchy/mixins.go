package hierarchy

import (
	"fmt"
	"strings"

	"github.com/lattice-lang/latticec/internal/ast"
	"github.com/lattice-lang/latticec/internal/diagnostic"
	"github.com/lattice-lang/latticec/internal/scope"
	"github.com/lattice-lang/latticec/internal/source"
	"github.com/lattice-lang/latticec/internal/types"
)

// expandMixinClause compiles a `S with M1, ..., Mk` clause into the linear
// chain of synthetic classes §4.4 describes. class is either a regular
// class with an anonymous clause in its extends position, or a named
// mixin-application class (class.Kind already set to
// KindNamedMixinApplication by the loader) whose own MixinClause this is —
// in the named case, class itself occupies the chain's last slot instead of
// a freshly synthesized intermediate.
func (r *Resolver) expandMixinClause(class *types.ClassDeclaration, clause *ast.MixinApplicationClause, sc scope.Scope) {
	named := class.Kind == types.KindNamedMixinApplication

	superResolved := resolveTypeExpr(clause.Super, sc, r.report)
	cur := r.validateAncestor(superResolved, class.Library,
		diagnostic.CannotExtendMalformed, diagnostic.CannotExtendEnum, diagnostic.CannotExtend,
		clause.Super.Pos())

	n := len(clause.Mixins)
	finalIsClass := false
	for i, mixinExpr := range clause.Mixins {
		last := i == n-1
		var link *types.ClassDeclaration
		if last && named {
			link = class
			finalIsClass = true
		} else {
			hit, existing := r.internedIntermediate(class.Library, class, clause.Super, clause.Mixins[:i+1])
			if existing != nil {
				cur = existing.InstantiateRaw()
				continue
			}
			link = hit
			link.TypeParams = mirrorTypeParams(link, class.TypeParams)
		}

		mixinResolved := resolveTypeExpr(mixinExpr, sc, r.report)
		mixinInst, ok := r.validateMixinTarget(mixinResolved, class.Library, mixinExpr.Pos())
		if !ok {
			link.Supertype = cur
			link.HasIncompleteHierarchy = true
			LinearizeInto(link)
			link.ResolutionState = types.ResolutionDone
			cur = link.InstantiateRaw()
			break
		}

		link.Supertype = cur
		link.MixinType = mixinInst
		link.Interfaces = append([]*types.ClassInstantiation{mixinInst}, link.Interfaces...)
		r.synthesizeMixinConstructors(link, cur.Class)
		r.checkMixinCycle(link, mixinExpr)
		LinearizeInto(link)
		link.ResolutionState = types.ResolutionDone

		cur = link.InstantiateRaw()
	}

	if n == 0 || !finalIsClass {
		class.Supertype = cur
	}
}

// validateMixinTarget validates a resolved mixin-position type the way
// validateAncestor validates an extends/implements position (§4.4 routes
// the mixin position through the same malformed/enum/blacklist checks), but
// reports under the dedicated cannot-mixin* kinds and — since §6 gives the
// mixin position no equivalent of class-name-expected — folds the "not a
// class at all" case into cannot-mixin alongside the blacklist case.
func (r *Resolver) validateMixinTarget(resolved types.ResolvedType, lib *types.Library, anchor source.Position) (*types.ClassInstantiation, bool) {
	switch t := resolved.(type) {
	case *types.MalformedType:
		r.report.Report(diagnostic.Message{Kind: diagnostic.CannotMixinMalformed, Anchor: anchor})
		return nil, false
	case *types.ClassInstantiation:
		if t.Class.Kind == types.KindEnum {
			r.report.Report(diagnostic.Message{Kind: diagnostic.CannotMixinEnum, Anchor: anchor, Args: map[string]string{"name": t.Class.Name}})
			return nil, false
		}
		if r.isBlacklisted(t.Class, lib) {
			r.report.Report(diagnostic.Message{Kind: diagnostic.CannotMixin, Anchor: anchor, Args: map[string]string{"name": t.Class.Name}})
			return nil, false
		}
		return t, true
	default:
		r.report.Report(diagnostic.Message{Kind: diagnostic.CannotMixin, Anchor: anchor})
		return nil, false
	}
}

// synthesizeMixinConstructors installs one forwarding constructor per
// accessible generative constructor of super on link, per §4.4: "cross-
// library private constructors are not forwarded."
func (r *Resolver) synthesizeMixinConstructors(link *types.ClassDeclaration, super *types.ClassDeclaration) {
	crossLibrary := super.Library != link.Library
	for _, ctor := range super.Constructors {
		if !ctor.IsGenerative() {
			continue
		}
		if crossLibrary && ctor.Visibility == ast.VisibilityPrivate {
			continue
		}
		link.Constructors = append(link.Constructors, types.NewForwardingConstructor(link, ctor, true))
	}
}

// checkMixinCycle walks link's .mixin pointer chain looking for a revisit —
// the case in which a mixin is itself (transitively) a mixin application
// that mixes link back in (§4.4, §8 scenario 6).
func (r *Resolver) checkMixinCycle(link *types.ClassDeclaration, anchor ast.TypeExpr) {
	seen := map[uint64]bool{link.ID: true}
	cur := link
	for cur.Kind.IsMixinApplication() && cur.MixinType != nil {
		next := cur.MixinType.Class
		if seen[next.ID] {
			r.report.Report(diagnostic.Message{
				Kind:   diagnostic.IllegalMixinCycle,
				Anchor: anchor.Pos(),
				Args:   map[string]string{"name": link.Name},
			})
			link.MixinType = nil
			link.HasIncompleteHierarchy = true
			return
		}
		seen[next.ID] = true
		cur = next
	}
}

// mirrorTypeParams gives a freshly allocated intermediate (every intermediate
// under non-sharing, an interning-table miss under sharing) its own
// type-parameter identities, one per parameter of owner, with the same names
// and bounds
// (§4.4 strategy (a): "synthetic type parameters mirror those of the
// enclosing class with renamed identities").
func mirrorTypeParams(owner *types.ClassDeclaration, ownerParams []*types.TypeParameter) []*types.TypeParameter {
	mirrored := make([]*types.TypeParameter, len(ownerParams))
	for i, tp := range ownerParams {
		mirrored[i] = &types.TypeParameter{Owner: owner, Index: i, Name: tp.Name, Bound: tp.Bound}
	}
	return mirrored
}

// internedIntermediate returns the synthetic class that should serve as
// the k-th link of owner's mixin chain (k = len(prefix)), where prefix is
// the super expression together with mixins 1..k. Under NonSharing it
// always allocates a fresh class. Under Sharing it interns by the
// structural signature of §4.4 in owner's library, returning (nil,
// existingHit) on a cache hit and (freshClass, nil) on a miss — the caller
// distinguishes the two by which return is nil.
func (r *Resolver) internedIntermediate(lib *types.Library, owner *types.ClassDeclaration, super ast.TypeExpr, mixinPrefix []ast.TypeExpr) (*types.ClassDeclaration, *types.ClassDeclaration) {
	superName := typeExprHeadName(super)
	mixinName := typeExprHeadName(mixinPrefix[len(mixinPrefix)-1])
	name := fmt.Sprintf("_%s&%s", superName, mixinName)

	if r.cfg.MixinStrategy != Sharing {
		return types.NewClassDeclaration(r.ids.Next(), name, lib, types.KindSyntheticMixinApplication), nil
	}

	key := name + mixinSignature(owner.TypeParams, super, mixinPrefix)
	if hit, ok := lib.MixinApplications[key]; ok {
		return nil, hit
	}
	fresh := types.NewClassDeclaration(r.ids.Next(), name, lib, types.KindSyntheticMixinApplication)
	lib.MixinApplications[key] = fresh
	return fresh, nil
}

// mixinSignature builds the structural-equality key of §4.4 strategy (b):
// free type variables of ownerParams are rendered as #T<index>; every other
// referenced name is rendered by its own textual shape, which is enough to
// distinguish structurally different instantiations while still matching
// on structurally identical ones. Argument lists are separated by '^',
// arguments within a list by '&'.
func mixinSignature(ownerParams []*types.TypeParameter, super ast.TypeExpr, mixins []ast.TypeExpr) string {
	parts := make([]string, 0, len(mixins)+1)
	parts = append(parts, signaturePart(ownerParams, super))
	for _, m := range mixins {
		parts = append(parts, signaturePart(ownerParams, m))
	}
	return strings.Join(parts, "^")
}

func signaturePart(ownerParams []*types.TypeParameter, expr ast.TypeExpr) string {
	named, ok := expr.(*ast.NamedTypeExpr)
	if !ok {
		return "dynamic"
	}
	if named.Ref.Prefix == "" {
		for i, tp := range ownerParams {
			if tp.Name == named.Ref.Name {
				return fmt.Sprintf("#T%d", i)
			}
		}
	}
	if len(named.Args) == 0 {
		return "#raw:" + named.Ref.String()
	}
	args := make([]string, len(named.Args))
	for i, a := range named.Args {
		args[i] = signaturePart(ownerParams, a)
	}
	return named.Ref.String() + "<" + strings.Join(args, "&") + ">"
}

func typeExprHeadName(expr ast.TypeExpr) string {
	if named, ok := expr.(*ast.NamedTypeExpr); ok {
		return named.Ref.Name
	}
	return "dynamic"
}
