package loader

import (
	"fmt"

	"github.com/lattice-lang/latticec/internal/ast"
	"github.com/lattice-lang/latticec/internal/hierarchy"
	"github.com/lattice-lang/latticec/internal/scope"
	"github.com/lattice-lang/latticec/internal/source"
	"github.com/lattice-lang/latticec/internal/types"
)

// Graph is a fully-built declaration graph, ready to hand to
// hierarchy.Driver.ResolveAll.
type Graph struct {
	Root       *types.ClassDeclaration
	Classes    []*types.ClassDeclaration
	Libraries  map[string]*types.Library
	ScopeByLib map[string]*scope.MapScope
}

// Provider adapts a Graph's per-library scopes to scope.Provider: every
// class in a library shares that library's top-level scope, since this
// loader's declarations never nest (§1 — member bodies, and therefore
// nested block scopes, are out of scope for this core).
type Provider struct {
	byLibrary map[string]*scope.MapScope
}

func (p *Provider) ScopeFor(class *types.ClassDeclaration) scope.Scope {
	return p.byLibrary[class.Library.ID]
}

// Build constructs a Graph from a parsed Fixture. Class identity is
// allocated from ids, so a caller sharing the same allocator with its
// hierarchy.Driver (the usual, and only correct, arrangement per §5's
// "global id generator" contract) never collides with ids the driver
// allocates later for synthetic mixin-application classes.
func Build(fx *Fixture, ids *hierarchy.IDAllocator) (*Graph, error) {
	g := &Graph{
		Libraries:  make(map[string]*types.Library),
		ScopeByLib: make(map[string]*scope.MapScope),
	}

	type pending struct {
		class   *types.ClassDeclaration
		fixture ClassFixture
	}
	var all []pending

	// Pass 1: allocate every class's identity and register it in its
	// library's scope, so forward and cross-library references resolve
	// regardless of declaration order.
	for _, libFx := range fx.Libraries {
		lib := types.NewLibrary(libFx.ID)
		g.Libraries[libFx.ID] = lib
		g.ScopeByLib[libFx.ID] = scope.NewMapScope()

		for _, cf := range libFx.Classes {
			kind, err := parseKind(cf.Kind)
			if err != nil {
				return nil, fmt.Errorf("library %s, class %s: %w", libFx.ID, cf.Name, err)
			}
			class := types.NewClassDeclaration(ids.Next(), cf.Name, lib, kind)
			g.ScopeByLib[libFx.ID].DefineClass(cf.Name, class)
			g.Classes = append(g.Classes, class)
			all = append(all, pending{class: class, fixture: cf})
			if cf.Root {
				if g.Root != nil {
					return nil, fmt.Errorf("fixture names two root classes: %s and %s", g.Root.Name, class.Name)
				}
				g.Root = class
			}
		}
	}
	if g.Root == nil {
		return nil, fmt.Errorf("fixture names no root class")
	}

	// Wire import aliases once every library's scope exists.
	for _, libFx := range fx.Libraries {
		sc := g.ScopeByLib[libFx.ID]
		for alias, targetID := range libFx.Imports {
			target, ok := g.ScopeByLib[targetID]
			if !ok {
				return nil, fmt.Errorf("library %s imports unknown library %s as %s", libFx.ID, targetID, alias)
			}
			sc.Import(alias, target)
		}
	}

	// Pass 2: now that every name is bound, build each class's declaration
	// tree node. Building can reference any class in any library.
	for _, pend := range all {
		decl, err := buildDeclNode(pend.fixture, pend.class.Library.ID)
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", pend.fixture.Name, err)
		}
		pend.class.DeclNode = decl
	}

	return g, nil
}

// Provider returns the scope.Provider backing this graph.
func (g *Graph) Provider() scope.Provider {
	return &Provider{byLibrary: g.ScopeByLib}
}

func parseKind(s string) (types.ClassKind, error) {
	switch s {
	case "", "class":
		return types.KindRegular, nil
	case "enum":
		return types.KindEnum, nil
	case "mixin-application":
		return types.KindNamedMixinApplication, nil
	default:
		return 0, fmt.Errorf("unknown class kind %q", s)
	}
}

func buildDeclNode(cf ClassFixture, libraryID string) (*ast.ClassLikeDecl, error) {
	pos := source.Position{File: libraryID, Line: 0, Column: 0}

	decl := &ast.ClassLikeDecl{
		Name:    &ast.Identifier{Name: cf.Name, Token: pos},
		Library: libraryID,
		Token:   pos,
	}

	switch cf.Kind {
	case "enum":
		decl.Kind = ast.DeclEnum
	case "mixin-application":
		decl.Kind = ast.DeclNamedMixinApplication
	default:
		decl.Kind = ast.DeclRegular
	}

	for _, tpf := range cf.TypeParams {
		node := &ast.TypeParamNode{Name: &ast.Identifier{Name: tpf.Name, Token: pos}, Token: pos}
		if tpf.Bound != "" {
			bound, err := parseTypeExpr(tpf.Bound, pos)
			if err != nil {
				return nil, err
			}
			node.Bound = bound
		}
		decl.TypeParams = append(decl.TypeParams, node)
	}

	if cf.MixinSuper != "" {
		super, err := parseTypeExpr(cf.MixinSuper, pos)
		if err != nil {
			return nil, err
		}
		decl.MixinClause = &ast.MixinApplicationClause{
			Super:  super,
			Mixins: mustParseTypeExprs(cf.Mixins, pos),
			Token:  pos,
		}
	} else if cf.Extends != "" {
		super, err := parseTypeExpr(cf.Extends, pos)
		if err != nil {
			return nil, err
		}
		decl.Supertype = super
	}

	decl.Interfaces = mustParseTypeExprs(cf.Implements, pos)

	for _, ctorFx := range cf.Constructors {
		ctor := &ast.ConstructorNode{Name: ctorFx.Name, Token: pos}
		if ctorFx.Factory {
			ctor.Kind = ast.ConstructorFactory
		}
		if ctorFx.Private {
			ctor.Visibility = ast.VisibilityPrivate
		}
		for _, pf := range ctorFx.Params {
			ctor.Params = append(ctor.Params, &ast.ParamNode{
				Name: pf.Name, IsNamed: pf.Named, Optional: pf.Optional, Token: pos,
			})
		}
		decl.Constructors = append(decl.Constructors, ctor)
	}

	for _, name := range cf.Members {
		decl.Members = append(decl.Members, &ast.OpaqueMember{Name: name, Token: pos})
	}
	for _, name := range cf.EnumValues {
		decl.EnumValues = append(decl.EnumValues, &ast.Identifier{Name: name, Token: pos})
	}

	return decl, nil
}
