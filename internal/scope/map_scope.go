package scope

import "github.com/lattice-lang/latticec/internal/types"

// MapScope is the minimal in-memory Scope this module's own fixtures and
// tests build directly, grounded on the teacher's chained-map Scope (its
// PassContext.Scope: a symbol map plus a parent link). Unlike that teacher
// scope, a MapScope's "parent" is not lexical nesting but the two axes
// §4.2 names explicitly: the enclosing class's type parameters, and the
// set of importable libraries reachable by prefix.
type MapScope struct {
	symbols    map[string]Symbol
	typeParams map[string]*types.TypeParameter
	imports    map[string]Scope
}

// NewMapScope returns an empty, ready-to-populate scope.
func NewMapScope() *MapScope {
	return &MapScope{
		symbols:    make(map[string]Symbol),
		typeParams: make(map[string]*types.TypeParameter),
		imports:    make(map[string]Scope),
	}
}

// DefineClass registers class as a class-like symbol, reachable by its
// simple name.
func (s *MapScope) DefineClass(name string, class *types.ClassDeclaration) {
	s.symbols[name] = Symbol{Kind: SymbolClassLike, Class: class}
}

// DefineOther registers name as present but not class-like — the case
// that should yield cannot-resolve-type when used in a type position.
func (s *MapScope) DefineOther(name string) {
	s.symbols[name] = Symbol{Kind: SymbolOther}
}

// DefineTypeParam makes tp visible under its own name.
func (s *MapScope) DefineTypeParam(tp *types.TypeParameter) {
	s.typeParams[tp.Name] = tp
}

// Import binds prefix to target, so a `prefix.Name` reference resolves
// against target's own top-level symbols.
func (s *MapScope) Import(prefix string, target Scope) {
	s.imports[prefix] = target
}

func (s *MapScope) Lookup(name string) (Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

func (s *MapScope) TypeParam(name string) (*types.TypeParameter, bool) {
	tp, ok := s.typeParams[name]
	return tp, ok
}

func (s *MapScope) Prefix(prefix string) (Scope, bool) {
	target, ok := s.imports[prefix]
	return target, ok
}
