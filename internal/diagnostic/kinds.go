package diagnostic

// Kind is one of the closed set of message kinds the hierarchy core can
// report. Keeping the set closed (rather than letting callers format ad-hoc
// strings) is what lets a host compiler localize, suppress, or test against
// individual diagnostics.
type Kind string

const (
	DuplicateTypeVariableName Kind = "duplicate-type-variable-name"
	CyclicTypeVariable        Kind = "cyclic-type-variable"

	CannotExtendMalformed Kind = "cannot-extend-malformed"
	CannotExtendEnum      Kind = "cannot-extend-enum"
	ClassNameExpected     Kind = "class-name-expected"
	CannotExtend          Kind = "cannot-extend"

	CannotImplementMalformed Kind = "cannot-implement-malformed"
	CannotImplementEnum      Kind = "cannot-implement-enum"
	CannotImplement          Kind = "cannot-implement"

	DuplicateExtendsImplements Kind = "duplicate-extends-implements"
	DuplicateImplements        Kind = "duplicate-implements"

	CannotMixin          Kind = "cannot-mixin"
	CannotMixinMalformed Kind = "cannot-mixin-malformed"
	CannotMixinEnum      Kind = "cannot-mixin-enum"
	IllegalMixinCycle    Kind = "illegal-mixin-cycle"

	CannotFindUnnamedConstructor  Kind = "cannot-find-unnamed-constructor"
	SuperCallToFactory            Kind = "super-call-to-factory"
	NoMatchingConstructorImplicit Kind = "no-matching-constructor-for-implicit"

	EmptyEnumDeclaration Kind = "empty-enum-declaration"

	NotAPrefix         Kind = "not-a-prefix"
	CannotResolveType  Kind = "cannot-resolve-type"
)

// Severity distinguishes diagnostics that merely inform from ones that mark
// the subject as having an incomplete hierarchy.
type Severity int

const (
	// SeverityError is a local-recoverable error (§7): reported, and the
	// offending construct is replaced by a documented fallback.
	SeverityError Severity = iota
	// SeverityStructural additionally means hasIncompleteHierarchy was set
	// and the chain was forcibly cut.
	SeverityStructural
)
