package ast

import "github.com/lattice-lang/latticec/internal/source"

// TypeParamNode is one `<Name extends Bound>` entry in a class's type
// parameter list. Bound is nil when the parameter has no explicit bound,
// in which case the Class Resolver substitutes the top type (§4.3 step 1).
type TypeParamNode struct {
	Name  *Identifier
	Bound TypeExpr
	Token source.Position
}

func (t *TypeParamNode) Pos() source.Position { return t.Token }
