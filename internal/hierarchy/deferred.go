package hierarchy

import (
	"github.com/lattice-lang/latticec/internal/diagnostic"
	"github.com/lattice-lang/latticec/internal/source"
	"github.com/lattice-lang/latticec/internal/types"
)

// DeferredQueue is the append-only queue of bound-cycle checks §5 and §9
// describe: "deferred actions ... should be modeled as an append-only
// queue owned by the driver, not as callbacks captured over mutable
// scopes." The Class Resolver only enqueues; the driver decides when to
// flush, typically right after the class that owns the enqueued checks
// reaches state done.
type DeferredQueue struct {
	checks []boundCycleCheck
}

type boundCycleCheck struct {
	param  *types.TypeParameter
	anchor source.Position
}

// NewDeferredQueue returns an empty queue.
func NewDeferredQueue() *DeferredQueue {
	return &DeferredQueue{}
}

// Enqueue registers a bound-cycle check for param, anchored at the
// position its declaration node occupies (for diagnostic reporting).
func (q *DeferredQueue) Enqueue(param *types.TypeParameter, anchor source.Position) {
	q.checks = append(q.checks, boundCycleCheck{param: param, anchor: anchor})
}

// Flush runs every queued check against report and empties the queue.
func (q *DeferredQueue) Flush(report diagnostic.Reporter) {
	for _, c := range q.checks {
		checkBoundCycle(c.param, c.anchor, report)
	}
	q.checks = q.checks[:0]
}

// checkBoundCycle implements §4.3 step 1's deferred walk: starting from
// start's bound, follow type-variable references; a walk that revisits
// start is a cycle, reported once on start. A walk that revisits some
// other already-visited variable stops silently — that cycle is reported
// on its own starting member when its own deferred check runs.
func checkBoundCycle(start *types.TypeParameter, anchor source.Position, report diagnostic.Reporter) {
	visited := map[*types.TypeParameter]bool{start: true}
	cur := start.Bound
	for {
		tv, ok := cur.(*types.TypeVariableRef)
		if !ok {
			return
		}
		if tv.Param == start {
			report.Report(diagnostic.Message{
				Kind:   diagnostic.CyclicTypeVariable,
				Anchor: anchor,
				Args:   map[string]string{"name": start.Name},
			})
			return
		}
		if visited[tv.Param] {
			return
		}
		visited[tv.Param] = true
		cur = tv.Param.Bound
	}
}
