package hierarchy

import "github.com/lattice-lang/latticec/internal/types"

// Feature names the compilation-wide capability events the resolver
// registers with a Registry as a side effect of resolving a class. §6 gives
// one example ("this compilation may throw no-such-method"); this package
// defines the closed set the Class Resolver actually emits.
type Feature string

// ThrowNoSuchMethod is registered whenever default-constructor synthesis
// installs an erroneous placeholder (§4.3 step 4): the compiled program may
// now reach a call with no matching constructor at runtime, so a backend
// that only emits the no-such-method machinery on demand must emit it here.
const ThrowNoSuchMethod Feature = "throw-no-such-method"

// Registry is the sink for feature-registration events and for compile-time
// errors a backend wants attached directly to a constructor element, rather
// than only to the diagnostic stream (§6). A host compiler typically backs
// this with whatever drives its final codegen decisions.
type Registry interface {
	// RegisterFeature records that feature is exercised somewhere in this
	// compilation. Idempotent from the caller's perspective: the core
	// calls it once per occurrence and never checks for duplicates itself.
	RegisterFeature(feature Feature)

	// RegisterConstructorError attaches a compile-time error to ctor, for
	// backends that want the failure to surface again if the placeholder
	// constructor is ever actually invoked.
	RegisterConstructorError(ctor *types.ConstructorElement, message string)
}

// NopRegistry discards every event. Useful for callers (tests, a CLI that
// only wants diagnostics) that have no feature-gated codegen to drive.
type NopRegistry struct{}

func (NopRegistry) RegisterFeature(Feature)                                      {}
func (NopRegistry) RegisterConstructorError(*types.ConstructorElement, string) {}

// CollectingRegistry accumulates events instead of discarding them, for
// tests that assert on which features fired.
type CollectingRegistry struct {
	Features          []Feature
	ConstructorErrors []ConstructorErrorEvent
}

// ConstructorErrorEvent pairs a registered constructor error with its
// message, in report order.
type ConstructorErrorEvent struct {
	Ctor    *types.ConstructorElement
	Message string
}

func NewCollectingRegistry() *CollectingRegistry {
	return &CollectingRegistry{}
}

func (r *CollectingRegistry) RegisterFeature(feature Feature) {
	r.Features = append(r.Features, feature)
}

func (r *CollectingRegistry) RegisterConstructorError(ctor *types.ConstructorElement, message string) {
	r.ConstructorErrors = append(r.ConstructorErrors, ConstructorErrorEvent{Ctor: ctor, Message: message})
}

// HasFeature reports whether feature was registered at least once.
func (r *CollectingRegistry) HasFeature(feature Feature) bool {
	for _, f := range r.Features {
		if f == feature {
			return true
		}
	}
	return false
}
