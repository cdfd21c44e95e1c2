package ast

import "github.com/lattice-lang/latticec/internal/source"

// DeclKind distinguishes the syntactic forms a class-like declaration can
// take, prior to resolution. It is narrower than types.ClassKind: the
// synthetic-mixin-application kind only exists after the Class Resolver
// expands a mixin clause (§4.4) — no syntax produces it directly.
type DeclKind int

const (
	// DeclRegular is an ordinary `class Name ...` declaration.
	DeclRegular DeclKind = iota
	// DeclEnum is an `enum Name { ... }` declaration.
	DeclEnum
	// DeclNamedMixinApplication is `class N = S with M1, ..., Mk implements I...;`.
	DeclNamedMixinApplication
)

// ClassLikeDecl is the declaration-tree node for any class-like
// declaration (§2 GLOSSARY): a regular class, an enum, or a named mixin
// application. It is the concrete ParseTree node type this module's
// fixtures and tests construct, and the type the core reads through
// types.ClassDeclaration.DeclNode; a host front end's parser output is
// converted to this struct.
type ClassLikeDecl struct {
	Name         *Identifier
	Library      string // owning library id
	Kind         DeclKind
	TypeParams   []*TypeParamNode
	Supertype    TypeExpr                // plain `extends S`; nil if absent or if MixinClause is set
	MixinClause  *MixinApplicationClause // set for `extends S with M1, ...` or named mixin application
	Interfaces   []TypeExpr
	Constructors []*ConstructorNode
	Members      []Member
	EnumValues   []*Identifier // only meaningful when Kind == DeclEnum
	Token        source.Position
}

func (c *ClassLikeDecl) Pos() source.Position { return c.Token }

// HasExplicitSupertype reports whether the source named any supertype at
// all — plain or via a mixin clause. When false, the Class Resolver asks
// the backend for a default superclass (§4.3 step 2).
func (c *ClassLikeDecl) HasExplicitSupertype() bool {
	return c.Supertype != nil || c.MixinClause != nil
}
