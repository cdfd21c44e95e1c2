package types

import "github.com/lattice-lang/latticec/internal/ast"

// ClassDeclaration is the mutable record §3 describes. It is created once
// by the parser collaborator (or, in this module, by the fixture loader)
// and from then on mutated only by the Class Resolver, under the
// single-writer invariant of §5 — nothing here is safe for concurrent
// mutation, which is fine because the resolver never runs on more than one
// goroutine.
type ClassDeclaration struct {
	// ID is a stable, process-unique identity, assigned once by the
	// driver's id allocator (§5) and never reused.
	ID uint64

	Name    string
	Library *Library
	Kind    ClassKind

	TypeParams []*TypeParameter

	ResolutionState    ResolutionState
	SupertypeLoadState SupertypeLoadState

	// Supertype is nil exactly for the root class (§3 invariant: "exactly
	// one supertype, except for the designated root class which has
	// none"). Set once, by the Class Resolver.
	Supertype *ClassInstantiation

	// Interfaces is set once, in declaration order.
	Interfaces []*ClassInstantiation

	// MixinType is set only when Kind is one of the mixin-application
	// kinds: the Mi this synthetic or named link in the chain mixes in.
	MixinType *ClassInstantiation

	// LinearizedSupertypes is allSupertypesAndSelf from §4.5: this class
	// first, the root class last, each identity at most once. Set once.
	LinearizedSupertypes []*ClassInstantiation

	// HasIncompleteHierarchy is set when a cycle or unrecoverable error
	// forced the supertype chain to be cut at the root (§7).
	HasIncompleteHierarchy bool

	Constructors []*ConstructorElement
	Members      []ast.Member

	// DeclNode is the originating declaration, kept so the driver and
	// diagnostics can report positions and re-inspect syntax the resolved
	// fields no longer carry (e.g. the original mixin clause).
	DeclNode *ast.ClassLikeDecl
}

// NewClassDeclaration creates a class record in state Unstarted/Unstarted.
// Its slices start out nil; appending to them needs no prior allocation.
func NewClassDeclaration(id uint64, name string, lib *Library, kind ClassKind) *ClassDeclaration {
	return &ClassDeclaration{
		ID:         id,
		Name:       name,
		Library:    lib,
		Kind:       kind,
		TypeParams: nil,
	}
}

// IsRoot reports whether this class is the designated root of the
// hierarchy — identified, per §4.3 step 2, by having no supertype once
// resolution completes.
func (c *ClassDeclaration) IsRoot() bool {
	return c.ResolutionState == ResolutionDone && c.Supertype == nil
}

// InstantiateRaw builds a ClassInstantiation of c with every argument
// defaulted to dynamic — the shape a bare generic reference resolves to
// (§4.2 "raw instantiation").
func (c *ClassDeclaration) InstantiateRaw() *ClassInstantiation {
	args := make([]ResolvedType, len(c.TypeParams))
	for i := range args {
		args[i] = Dynamic
	}
	return &ClassInstantiation{Class: c, Args: args}
}

// AddTypeParam appends a new type parameter and returns it, assigning the
// next available index.
func (c *ClassDeclaration) AddTypeParam(name string) *TypeParameter {
	tp := NewTypeParameter(c, len(c.TypeParams), name)
	c.TypeParams = append(c.TypeParams, tp)
	return tp
}

// TypeParamByName returns the first type parameter with the given name,
// honoring §4.3 step 1's "duplicates are reported but the first wins".
func (c *ClassDeclaration) TypeParamByName(name string) (*TypeParameter, bool) {
	for _, tp := range c.TypeParams {
		if tp.Name == name {
			return tp, true
		}
	}
	return nil, false
}

// UnnamedConstructor returns the constructor named "" attached to this
// class, if any — the lookup §4.3 step 4 performs on the direct
// superclass.
func (c *ClassDeclaration) UnnamedConstructor() (*ConstructorElement, bool) {
	for _, ctor := range c.Constructors {
		if ctor.Name == "" {
			return ctor, true
		}
	}
	return nil, false
}

// Library owns the mixin-application interning table shared by every class
// declared within it (§3, §4.4 strategy (b)). A Library corresponds to one
// compilation unit/module in the host language; classes from different
// libraries never share interned mixin applications.
type Library struct {
	ID string

	// MixinApplications interns synthetic mixin-application classes by
	// structural signature (§4.4). Only consulted under the sharing
	// strategy; NewLibrary allocates it under either strategy.
	MixinApplications map[string]*ClassDeclaration
}

// NewLibrary creates an empty library with its interning table ready to
// use.
func NewLibrary(id string) *Library {
	return &Library{
		ID:                id,
		MixinApplications: make(map[string]*ClassDeclaration),
	}
}
