// Package ast defines the declaration-tree node types the hierarchy
// resolution core consumes. Lexing and parsing are out of scope for this
// core (§1) — these types describe the shape of an already-parsed tree, not
// how one gets built. A real front end's parser package would produce a
// much richer tree (expressions, statements, bodies); only the nominal,
// class-hierarchy-relevant slice of it lives here.
package ast

import "github.com/lattice-lang/latticec/internal/source"

// Node is implemented by every declaration-tree node the core inspects or
// attaches diagnostics to.
type Node interface {
	Pos() source.Position
}

// Identifier is a bare name reference, optionally qualified by an import
// prefix ("prefix.name"). It is the unit the Name Resolver Façade consumes.
type Identifier struct {
	Prefix string // import prefix, or "" for an unqualified reference
	Name   string
	Token  source.Position
}

func (id *Identifier) Pos() source.Position { return id.Token }

func (id *Identifier) String() string {
	if id.Prefix == "" {
		return id.Name
	}
	return id.Prefix + "." + id.Name
}
