package hierarchy

import "github.com/lattice-lang/latticec/internal/types"

// LinearizeInto computes class.LinearizedSupertypes (§4.5): class itself,
// then its direct supertype, then each direct interface in declaration
// order, then the recursive linearization of the supertype, then of each
// interface — each class identity kept at most once, the earliest
// (therefore most specific) instantiation winning. It assumes every
// ancestor named here has already reached resolution state done, which
// the driver's topological order guarantees.
func LinearizeInto(class *types.ClassDeclaration) {
	if class.Supertype == nil {
		// The root class's linearization is the singleton containing
		// itself (§4.5).
		class.LinearizedSupertypes = []*types.ClassInstantiation{class.InstantiateRaw()}
		return
	}

	seen := make(map[uint64]bool)
	var order []*types.ClassInstantiation

	push := func(inst *types.ClassInstantiation) {
		if !seen[inst.Class.ID] {
			seen[inst.Class.ID] = true
			order = append(order, inst)
		}
	}

	push(class.InstantiateRaw())
	push(class.Supertype)
	for _, iface := range class.Interfaces {
		push(iface)
	}
	for _, ancestor := range class.Supertype.Class.LinearizedSupertypes {
		push(ancestor)
	}
	for _, iface := range class.Interfaces {
		for _, ancestor := range iface.Class.LinearizedSupertypes {
			push(ancestor)
		}
	}

	class.LinearizedSupertypes = order
}
