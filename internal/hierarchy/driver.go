package hierarchy

import (
	"github.com/lattice-lang/latticec/internal/diagnostic"
	"github.com/lattice-lang/latticec/internal/scope"
	"github.com/lattice-lang/latticec/internal/types"
)

// Driver orchestrates the Supertype Loader and the Class Resolver over the
// whole declaration graph, in topological order over the supertype-naming
// graph (§2 "Control flow"). It owns the two shared resources §5 calls
// out: the id allocator and the deferred bound-cycle-check queue.
type Driver struct {
	cfg      Config
	scopes   scope.Provider
	report   diagnostic.Reporter
	registry Registry
	ids      *IDAllocator
	deferred *DeferredQueue
	loader   *Loader
	resolver *Resolver
}

// NewDriver wires the five components together, with a fresh id allocator.
// cfg.Root and cfg.Backend must be set; registry may be NopRegistry{} if the
// caller has no feature-gated codegen to drive.
func NewDriver(cfg Config, scopes scope.Provider, report diagnostic.Reporter, registry Registry) *Driver {
	return NewDriverWithIDs(cfg, scopes, report, registry, NewIDAllocator())
}

// NewDriverWithIDs is NewDriver for a caller that already allocated class
// identities through ids — a declaration-graph loader, most commonly — and
// must keep allocating from the same counter so a synthetic mixin-
// application class the driver creates later never collides with an id the
// loader already handed out.
func NewDriverWithIDs(cfg Config, scopes scope.Provider, report diagnostic.Reporter, registry Registry, ids *IDAllocator) *Driver {
	deferred := NewDeferredQueue()
	d := &Driver{
		cfg:      cfg,
		scopes:   scopes,
		report:   report,
		registry: registry,
		ids:      ids,
		deferred: deferred,
	}
	d.loader = NewLoader(scopes, report, cfg.Root)
	d.resolver = NewResolver(cfg, scopes, report, registry, ids, deferred)
	return d
}

// ResolveAll resolves every class in classes, plus (always first) the
// configured root, each exactly once. Order among independent classes
// follows classes' own order; order among dependent classes is forced by
// Resolve's own recursive descent regardless of the slice's order.
func (d *Driver) ResolveAll(classes []*types.ClassDeclaration) {
	d.Resolve(d.cfg.Root)
	for _, class := range classes {
		d.Resolve(class)
	}
}

// Resolve resolves class and, first, every class it directly names as a
// supertype, mixin, or interface — the dependency order the Class Resolver
// requires (§2, §5). A class already done or currently being resolved
// higher up the call stack (a naming cycle the Supertype Loader has
// already broken) is a no-op.
func (d *Driver) Resolve(class *types.ClassDeclaration) {
	if class.ResolutionState != types.ResolutionUnstarted {
		return
	}
	class.ResolutionState = types.ResolutionStarted

	d.loader.Load(class)

	if class.DeclNode != nil {
		sc := d.scopes.ScopeFor(class)
		for _, ref := range directTypeRefs(class.DeclNode) {
			if dep := d.loader.bind(ref, sc); dep != nil {
				d.Resolve(dep)
			}
		}
	}

	d.resolver.Resolve(class)
	d.deferred.Flush(d.report)
}
