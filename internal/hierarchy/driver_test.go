package hierarchy

import (
	"testing"

	"github.com/lattice-lang/latticec/internal/ast"
	"github.com/lattice-lang/latticec/internal/diagnostic"
	"github.com/lattice-lang/latticec/internal/scope"
	"github.com/lattice-lang/latticec/internal/types"
)

// env bundles the pieces a scenario test needs: a single library, a
// pre-registered root class, and a driver wired to a collector so
// assertions can inspect every reported diagnostic.
type env struct {
	lib      *types.Library
	sc       *scope.MapScope
	root     *types.ClassDeclaration
	ids      *IDAllocator
	reporter *diagnostic.Collector
	driver   *Driver
}

func newEnv() *env {
	lib := types.NewLibrary("test")
	sc := scope.NewMapScope()
	ids := NewIDAllocator()
	root := types.NewClassDeclaration(ids.Next(), "Object", lib, types.KindRegular)
	sc.DefineClass("Object", root)

	reporter := diagnostic.NewCollector()
	backend := &SimpleBackend{Root: root}
	cfg := Config{Root: root, Backend: backend, BlacklistedTypeNames: DefaultBlacklistedTypeNames()}
	provider := singleScopeProvider{sc: sc}
	driver := NewDriverWithIDs(cfg, provider, reporter, NopRegistry{}, ids)

	return &env{lib: lib, sc: sc, root: root, ids: ids, reporter: reporter, driver: driver}
}

// singleScopeProvider hands every class the same scope, for tests that
// only exercise a single library.
type singleScopeProvider struct{ sc *scope.MapScope }

func (p singleScopeProvider) ScopeFor(*types.ClassDeclaration) scope.Scope { return p.sc }

func (e *env) newClass(name string, kind types.ClassKind) *types.ClassDeclaration {
	c := types.NewClassDeclaration(e.ids.Next(), name, e.lib, kind)
	e.sc.DefineClass(name, c)
	return c
}

func plainTypeExpr(name string) ast.TypeExpr {
	return &ast.NamedTypeExpr{Ref: &ast.Identifier{Name: name}}
}

func TestScenario1_BareClass(t *testing.T) {
	e := newEnv()
	a := e.newClass("A", types.KindRegular)
	a.DeclNode = &ast.ClassLikeDecl{Name: &ast.Identifier{Name: "A"}, Kind: ast.DeclRegular}

	e.driver.ResolveAll([]*types.ClassDeclaration{a})

	if e.reporter.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", e.reporter.Messages)
	}
	if a.Supertype == nil || a.Supertype.Class != e.root {
		t.Fatalf("A.Supertype = %v, want Object", a.Supertype)
	}
	if len(a.Interfaces) != 0 {
		t.Fatalf("A.Interfaces = %v, want empty", a.Interfaces)
	}
	wantChain := []*types.ClassDeclaration{a, e.root}
	assertLinearized(t, a, wantChain)
	if len(a.Constructors) != 1 || !a.Constructors[0].IsSynthetic {
		t.Fatalf("A should own exactly one synthesized constructor, got %+v", a.Constructors)
	}
}

func TestScenario2_ExtendsAndImplements(t *testing.T) {
	e := newEnv()
	i1 := e.newClass("I1", types.KindRegular)
	i1.DeclNode = &ast.ClassLikeDecl{Name: &ast.Identifier{Name: "I1"}, Kind: ast.DeclRegular}
	i2 := e.newClass("I2", types.KindRegular)
	i2.DeclNode = &ast.ClassLikeDecl{Name: &ast.Identifier{Name: "I2"}, Kind: ast.DeclRegular}
	a := e.newClass("A", types.KindRegular)
	a.DeclNode = &ast.ClassLikeDecl{Name: &ast.Identifier{Name: "A"}, Kind: ast.DeclRegular}
	b := e.newClass("B", types.KindRegular)
	b.DeclNode = &ast.ClassLikeDecl{
		Name: &ast.Identifier{Name: "B"}, Kind: ast.DeclRegular,
		Supertype:  plainTypeExpr("A"),
		Interfaces: []ast.TypeExpr{plainTypeExpr("I1"), plainTypeExpr("I2")},
	}

	e.driver.ResolveAll([]*types.ClassDeclaration{i1, i2, a, b})

	if e.reporter.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", e.reporter.Messages)
	}
	assertLinearized(t, b, []*types.ClassDeclaration{b, a, i1, i2, e.root})
}

func TestScenario3_CyclicTypeVariable(t *testing.T) {
	e := newEnv()
	c := e.newClass("C", types.KindRegular)
	c.DeclNode = &ast.ClassLikeDecl{
		Name: &ast.Identifier{Name: "C"}, Kind: ast.DeclRegular,
		TypeParams: []*ast.TypeParamNode{
			{Name: &ast.Identifier{Name: "T"}, Bound: plainTypeExpr("T")},
		},
	}

	e.driver.ResolveAll([]*types.ClassDeclaration{c})

	cycles := e.reporter.ByKind(diagnostic.CyclicTypeVariable)
	if len(cycles) != 1 {
		t.Fatalf("got %d cyclic-type-variable diagnostics, want 1: %v", len(cycles), e.reporter.Messages)
	}
	tp, _ := c.TypeParamByName("T")
	if ref, ok := tp.Bound.(*types.TypeVariableRef); !ok || ref.Param != tp {
		t.Fatalf("bound(T) = %v, want T itself", tp.Bound)
	}
}

func TestScenario5_CannotExtendBlacklisted(t *testing.T) {
	e := newEnv()
	intClass := e.newClass("int", types.KindRegular)
	intClass.DeclNode = &ast.ClassLikeDecl{Name: &ast.Identifier{Name: "int"}, Kind: ast.DeclRegular}
	ecls := e.newClass("E", types.KindRegular)
	ecls.DeclNode = &ast.ClassLikeDecl{
		Name: &ast.Identifier{Name: "E"}, Kind: ast.DeclRegular,
		Supertype: plainTypeExpr("int"),
	}

	e.driver.ResolveAll([]*types.ClassDeclaration{intClass, ecls})

	got := e.reporter.ByKind(diagnostic.CannotExtend)
	if len(got) != 1 {
		t.Fatalf("got %d cannot-extend diagnostics, want 1: %v", len(got), e.reporter.Messages)
	}
	if ecls.Supertype == nil || ecls.Supertype.Class != e.root {
		t.Fatalf("E.Supertype = %v, want Object", ecls.Supertype)
	}
}

func TestBoundarySelfExtension(t *testing.T) {
	e := newEnv()
	a := e.newClass("A", types.KindRegular)
	a.DeclNode = &ast.ClassLikeDecl{
		Name: &ast.Identifier{Name: "A"}, Kind: ast.DeclRegular,
		Supertype: plainTypeExpr("A"),
	}

	e.driver.ResolveAll([]*types.ClassDeclaration{a})

	if !a.HasIncompleteHierarchy {
		t.Fatal("A.HasIncompleteHierarchy = false, want true")
	}
	if a.Supertype == nil || a.Supertype.Class != e.root {
		t.Fatalf("A.Supertype = %v, want Object", a.Supertype)
	}
	cycles := e.reporter.ByKind(diagnostic.IllegalMixinCycle)
	if len(cycles) != 1 {
		t.Fatalf("got %d cycle diagnostics, want exactly 1: %v", len(cycles), e.reporter.Messages)
	}
}

func TestEmptyEnumDeclaration(t *testing.T) {
	e := newEnv()
	empty := e.newClass("Suit", types.KindEnum)
	empty.DeclNode = &ast.ClassLikeDecl{Name: &ast.Identifier{Name: "Suit"}, Kind: ast.DeclEnum}

	e.driver.ResolveAll([]*types.ClassDeclaration{empty})

	got := e.reporter.ByKind(diagnostic.EmptyEnumDeclaration)
	if len(got) != 1 {
		t.Fatalf("got %d empty-enum-declaration diagnostics, want 1: %v", len(got), e.reporter.Messages)
	}
	if empty.Supertype == nil || empty.Supertype.Class != e.root {
		t.Fatalf("Suit.Supertype = %v, want Object", empty.Supertype)
	}
	if len(empty.Interfaces) != 0 {
		t.Fatalf("Suit.Interfaces = %v, want empty", empty.Interfaces)
	}
}

func TestNonEmptyEnumDeclarationResolvesWithoutDiagnostic(t *testing.T) {
	e := newEnv()
	suit := e.newClass("Suit", types.KindEnum)
	suit.DeclNode = &ast.ClassLikeDecl{
		Name: &ast.Identifier{Name: "Suit"}, Kind: ast.DeclEnum,
		EnumValues: []*ast.Identifier{{Name: "Hearts"}, {Name: "Spades"}},
	}

	e.driver.ResolveAll([]*types.ClassDeclaration{suit})

	if got := e.reporter.ByKind(diagnostic.EmptyEnumDeclaration); len(got) != 0 {
		t.Fatalf("got %d empty-enum-declaration diagnostics, want 0: %v", len(got), got)
	}
	assertLinearized(t, suit, []*types.ClassDeclaration{suit, e.root})
}

func TestRootLinearizesToSingleton(t *testing.T) {
	e := newEnv()
	e.driver.ResolveAll(nil)

	if len(e.root.LinearizedSupertypes) != 1 || e.root.LinearizedSupertypes[0].Class != e.root {
		t.Fatalf("root linearization = %v, want [Object]", e.root.LinearizedSupertypes)
	}
	if len(e.root.Constructors) != 1 {
		t.Fatalf("root constructors = %v, want exactly one", e.root.Constructors)
	}
}

func assertLinearized(t *testing.T, class *types.ClassDeclaration, want []*types.ClassDeclaration) {
	t.Helper()
	got := class.LinearizedSupertypes
	if len(got) != len(want) {
		t.Fatalf("linearized(%s) has %d entries, want %d: %v", class.Name, len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].Class != w {
			t.Fatalf("linearized(%s)[%d] = %s, want %s", class.Name, i, got[i].Class.Name, w.Name)
		}
	}
	seen := make(map[uint64]bool)
	for _, inst := range got {
		if seen[inst.Class.ID] {
			t.Fatalf("linearized(%s) contains %s more than once", class.Name, inst.Class.Name)
		}
		seen[inst.Class.ID] = true
	}
	if got[len(got)-1].Class.Name != "Object" {
		t.Fatalf("linearized(%s) does not end at the root: %v", class.Name, got)
	}
}
