package hierarchy

import "github.com/lattice-lang/latticec/internal/types"

// SimpleBackend is a straightforward Backend: every class with no explicit
// supertype gets the configured root, and a fixed set of library ids is
// exempt from the platform-type blacklist. Most hosts embedding this core
// need nothing more elaborate; one that does (e.g. to insert an
// interceptor class ahead of Object for a specific runtime) implements
// Backend directly instead.
type SimpleBackend struct {
	Root                   *types.ClassDeclaration
	TargetSpecificLibraries map[string]bool
}

func (b *SimpleBackend) DefaultSuperclass(class *types.ClassDeclaration) *types.ClassDeclaration {
	return b.Root
}

func (b *SimpleBackend) IsTargetSpecificLibrary(libraryID string) bool {
	return b.TargetSpecificLibraries[libraryID]
}
