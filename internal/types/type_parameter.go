package types

// TypeParameter is one generic parameter of a class declaration. Its
// identity is the pair (declaring class, index) — two TypeParameter values
// are never "the same parameter" just because they share a name (§3).
type TypeParameter struct {
	Owner *ClassDeclaration
	Index int
	Name  string
	Bound ResolvedType // never nil once the Class Resolver runs; defaults to Top
}

// NewTypeParameter creates a type parameter with no bound yet resolved.
// The Class Resolver fills Bound in during step 1 of §4.3.
func NewTypeParameter(owner *ClassDeclaration, index int, name string) *TypeParameter {
	return &TypeParameter{Owner: owner, Index: index, Name: name}
}
