package hierarchy

// IDAllocator hands out the strictly monotonic class ids §5 requires of
// the "global id generator" shared resource. It belongs to the driver, not
// to any one component, and — per the single-threaded contract — needs no
// locking.
type IDAllocator struct {
	next uint64
}

// NewIDAllocator returns an allocator whose first id is 1; 0 is reserved so
// a zero-valued ClassDeclaration.ID is recognizably "never allocated".
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{next: 1}
}

// Next returns the next id and advances the counter.
func (a *IDAllocator) Next() uint64 {
	id := a.next
	a.next++
	return id
}
