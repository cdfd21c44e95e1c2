package ast

import "github.com/lattice-lang/latticec/internal/source"

// TypeExpr is a syntactic type annotation as written by the user: a bare or
// generic nominal reference. It is what the Type-Expression Resolver (§4.2)
// turns into a types.ResolvedType.
type TypeExpr interface {
	Node
	typeExprNode()
}

// NamedTypeExpr is `Name` or `Name<Arg1, Arg2, ...>`, possibly prefixed by
// an import alias (`lib.Name<...>`). A bare generic reference (Args == nil)
// is a raw instantiation (§4.2).
type NamedTypeExpr struct {
	Ref   *Identifier
	Args  []TypeExpr
	Token source.Position
}

func (t *NamedTypeExpr) Pos() source.Position { return t.Token }
func (*NamedTypeExpr) typeExprNode()          {}

// DynamicTypeExpr is the syntactic spelling of the dynamic-type sentinel
// ("dynamic", "any", ...depending on the front end's surface syntax).
type DynamicTypeExpr struct {
	Token source.Position
}

func (t *DynamicTypeExpr) Pos() source.Position { return t.Token }
func (*DynamicTypeExpr) typeExprNode()          {}
