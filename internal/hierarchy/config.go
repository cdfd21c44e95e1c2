package hierarchy

import "github.com/lattice-lang/latticec/internal/types"

// MixinStrategy selects one of the two mixin-application interning
// strategies described in §4.4. Both strategies are required to produce
// hierarchies with the same observable semantics; the choice only affects
// whether structurally equal applications share a class object.
type MixinStrategy int

const (
	// NonSharing gives every mixin-application clause its own unique
	// synthetic classes. It is the default: simpler to reason about, and
	// correct on its own for any single compilation.
	NonSharing MixinStrategy = iota
	// Sharing interns synthetic classes per library by structural
	// signature, so two clauses that expand identically reuse the same
	// class object. Needed when a host wants bit-identical output across
	// compilation modes (e.g. incremental vs. from-scratch).
	Sharing
)

// Config is the explicit configuration the driver threads through every
// component, standing in for what the design notes (§9) call out as
// otherwise-global mutable state: the mixin-sharing strategy flag and the
// backend hooks. Nothing in this package reads a package-level variable.
type Config struct {
	MixinStrategy MixinStrategy
	Backend       Backend

	// Root is the designated root of the hierarchy (conventionally named
	// Object). It is host-provided rather than computed, since nothing in
	// the declaration graph self-identifies as the root ahead of
	// resolution (§4.3 step 2: "when the current class is itself the
	// default superclass, it gets no supertype").
	Root *types.ClassDeclaration

	// BlacklistedTypeNames is the fixed set of platform type names no
	// non-exempt library may extend, implement, or mix in — dynamic, the
	// boolean type, the numeric tower, string, and the null type (§4.3
	// "Blacklist policy"). dynamic itself is never looked up by name here:
	// it is caught earlier, as the DynamicType sentinel, by the
	// Type-Expression Resolver.
	BlacklistedTypeNames map[string]bool
}

// DefaultBlacklistedTypeNames returns the platform type names §4.3 names
// by description, under the conventional spelling a Lattice core library
// would use for them.
func DefaultBlacklistedTypeNames() map[string]bool {
	return map[string]bool{
		"bool":   true,
		"int":    true,
		"double": true,
		"num":    true,
		"String": true,
		"Null":   true,
	}
}

// Backend is the pair of host-supplied hooks §6 lists under "Backend
// hooks". A compiler embedding this core implements it once, typically
// backed by knowledge of the core/platform libraries it ships.
type Backend interface {
	// DefaultSuperclass returns the superclass a class-like declaration
	// gets when its source names none (§4.3 step 2). Usually the root
	// class; a backend may override it for special classes, e.g. to
	// insert an interceptor ahead of Object.
	DefaultSuperclass(class *types.ClassDeclaration) *types.ClassDeclaration

	// IsTargetSpecificLibrary reports whether libraryID is exempt from the
	// extends/implements/mixin blacklist (§4.3's "Blacklist policy") because
	// it is where the blacklisted platform types themselves are declared.
	IsTargetSpecificLibrary(libraryID string) bool
}
