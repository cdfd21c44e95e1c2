package ast

import "github.com/lattice-lang/latticec/internal/source"

// Member is any class-body declaration that is not a constructor: a field,
// method, property, operator, ... The core never inspects these (member
// resolution inside bodies is out of scope, §1); it
// is an opaque placeholder a host front end would replace with its real
// member AST.
type Member interface {
	Node
	MemberName() string
}

// OpaqueMember is a stand-in for whatever member kinds a full front end
// declares (fields, ordinary methods, properties, ...). Fixtures and tests
// use it to populate ClassLikeDecl.Members without modeling member bodies.
type OpaqueMember struct {
	Name  string
	Token source.Position
}

func (m *OpaqueMember) Pos() source.Position { return m.Token }
func (m *OpaqueMember) MemberName() string   { return m.Name }

// ParamNode is one constructor parameter. Only the shape the Class Resolver
// needs to judge "zero-arg" vs. "requires arguments" (§4.3 step 4) is kept;
// a real front end's parameter node carries a type annotation, default
// value, and modifiers the core never looks at.
type ParamNode struct {
	Name     string
	IsNamed  bool // true for a named (keyword) parameter, false for positional
	Optional bool
	Token    source.Position
}

func (p *ParamNode) Pos() source.Position { return p.Token }

// Visibility distinguishes constructors a mixin-application forwarder may
// not reach across a library boundary (§4.4: "cross-library private
// constructors are not forwarded").
type Visibility int

const (
	VisibilityPublic Visibility = iota
	VisibilityPrivate
)

// ConstructorKind distinguishes a generative constructor (produces a fresh
// instance of exactly its declaring class) from a factory (may return
// anything) — see GLOSSARY.
type ConstructorKind int

const (
	ConstructorGenerative ConstructorKind = iota
	ConstructorFactory
)

// ConstructorNode is one constructor declaration in a class body. Name is
// "" for the unnamed (default-named) constructor.
type ConstructorNode struct {
	Name       string
	Params     []*ParamNode
	Kind       ConstructorKind
	Visibility Visibility
	Token      source.Position
}

func (c *ConstructorNode) Pos() source.Position { return c.Token }

// IsZeroArg reports whether every parameter is optional, i.e. the
// constructor can be invoked with no arguments at all — the shape §4.3
// step 4 requires of a synthesized default constructor's forwarding target.
func (c *ConstructorNode) IsZeroArg() bool {
	for _, p := range c.Params {
		if !p.Optional {
			return false
		}
	}
	return true
}
