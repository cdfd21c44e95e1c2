package loader

import (
	"testing"

	"github.com/lattice-lang/latticec/internal/diagnostic"
	"github.com/lattice-lang/latticec/internal/hierarchy"
	"github.com/lattice-lang/latticec/internal/types"
)

func resolveFixture(t *testing.T, fx *Fixture) (*Graph, *diagnostic.Collector) {
	t.Helper()
	ids := hierarchy.NewIDAllocator()
	g, err := Build(fx, ids)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	reporter := diagnostic.NewCollector()
	backend := &hierarchy.SimpleBackend{Root: g.Root}
	cfg := hierarchy.Config{Root: g.Root, Backend: backend, BlacklistedTypeNames: hierarchy.DefaultBlacklistedTypeNames()}
	driver := hierarchy.NewDriverWithIDs(cfg, g.Provider(), reporter, hierarchy.NopRegistry{}, ids)
	driver.ResolveAll(g.Classes)
	return g, reporter
}

func classByName(g *Graph, name string) *types.ClassDeclaration {
	for _, c := range g.Classes {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestBuildCrossLibraryHierarchy(t *testing.T) {
	fx := &Fixture{
		Libraries: []LibraryFixture{
			{
				ID: "core",
				Classes: []ClassFixture{
					{Name: "Object", Root: true},
					{Name: "Comparable"},
				},
			},
			{
				ID:      "app",
				Imports: map[string]string{"core": "core"},
				Classes: []ClassFixture{
					{Name: "Box", Extends: "core.Object", Implements: []string{"core.Comparable"}},
				},
			},
		},
	}

	g, reporter := resolveFixture(t, fx)
	if reporter.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", reporter.Messages)
	}

	box := classByName(g, "Box")
	comparable := classByName(g, "Comparable")
	root := g.Root

	if box.Supertype == nil || box.Supertype.Class != root {
		t.Fatalf("Box.Supertype = %v, want core.Object", box.Supertype)
	}
	if len(box.Interfaces) != 1 || box.Interfaces[0].Class != comparable {
		t.Fatalf("Box.Interfaces = %v, want [Comparable]", box.Interfaces)
	}
	if len(box.Constructors) != 1 || !box.Constructors[0].IsSynthetic {
		t.Fatalf("Box.Constructors = %+v, want one synthesized forwarding constructor", box.Constructors)
	}
}

func TestBuildGenericTypeParamBound(t *testing.T) {
	fx := &Fixture{
		Libraries: []LibraryFixture{
			{
				ID: "core",
				Classes: []ClassFixture{
					{Name: "Object", Root: true},
					{
						Name:       "Box",
						TypeParams: []TypeParamFixture{{Name: "T", Bound: "Object"}},
					},
				},
			},
		},
	}

	g, reporter := resolveFixture(t, fx)
	if reporter.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", reporter.Messages)
	}
	box := classByName(g, "Box")
	if len(box.TypeParams) != 1 {
		t.Fatalf("Box.TypeParams = %v, want one entry", box.TypeParams)
	}
	inst, ok := box.TypeParams[0].Bound.(*types.ClassInstantiation)
	if !ok || inst.Class != g.Root {
		t.Fatalf("bound(T) = %v, want Object", box.TypeParams[0].Bound)
	}
}

func TestBuildRejectsMissingRoot(t *testing.T) {
	fx := &Fixture{Libraries: []LibraryFixture{{ID: "core", Classes: []ClassFixture{{Name: "Object"}}}}}
	if _, err := Build(fx, hierarchy.NewIDAllocator()); err == nil {
		t.Fatal("Build succeeded on a fixture with no root class, want an error")
	}
}

func TestBuildRejectsDuplicateRoot(t *testing.T) {
	fx := &Fixture{Libraries: []LibraryFixture{{ID: "core", Classes: []ClassFixture{
		{Name: "Object", Root: true},
		{Name: "Other", Root: true},
	}}}}
	if _, err := Build(fx, hierarchy.NewIDAllocator()); err == nil {
		t.Fatal("Build succeeded on a fixture naming two root classes, want an error")
	}
}
