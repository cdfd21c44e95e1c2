package ast

import "github.com/lattice-lang/latticec/internal/source"

// MixinApplicationClause is the syntactic `S with M1, M2, ..., Mk` clause
// (§4.4). It appears either anonymously inside an `extends` position, or as
// the right-hand side of a named mixin application `class N = S with M...`.
type MixinApplicationClause struct {
	Super  TypeExpr
	Mixins []TypeExpr
	Token  source.Position
}

func (m *MixinApplicationClause) Pos() source.Position { return m.Token }
