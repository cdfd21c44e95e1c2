package diagnostic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lattice-lang/latticec/internal/source"
)

// Message is one reported diagnostic. Args carries the named arguments a
// host compiler's message catalog would interpolate ("name", "other", ...);
// the core never formats user-facing prose itself, it only ever appends to
// this map.
type Message struct {
	Kind     Kind
	Anchor   source.Position
	Args     map[string]string
	Severity Severity
}

// String renders a diagnostic the way a CLI or test fixture wants to see it:
// "position: kind (arg=val, ...)". Host compilers with a real message
// catalog are expected to format Kind+Args themselves instead.
func (m Message) String() string {
	var sb strings.Builder
	sb.WriteString(m.Anchor.String())
	sb.WriteString(": ")
	sb.WriteString(string(m.Kind))
	if len(m.Args) > 0 {
		keys := make([]string, 0, len(m.Args))
		for k := range m.Args {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteString(" (")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s=%s", k, m.Args[k])
		}
		sb.WriteString(")")
	}
	return sb.String()
}

// Reporter is the sink the hierarchy core reports diagnostics to (§6). It is
// a pure write interface: the core never reads diagnostics back, so it can
// continue resolving unrelated classes after reporting one.
type Reporter interface {
	Report(msg Message)
}

// Collector is a Reporter that accumulates every message it sees, in report
// order. It is the default used outside a full compiler driver (tests, the
// CLI), and is safe to read after resolution completes since the resolver
// never runs concurrently (§5).
type Collector struct {
	Messages []Message
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Report implements Reporter.
func (c *Collector) Report(msg Message) {
	c.Messages = append(c.Messages, msg)
}

// HasErrors reports whether any message was collected.
func (c *Collector) HasErrors() bool {
	return len(c.Messages) > 0
}

// ByKind returns the subset of collected messages with the given kind, in
// report order. Useful for asserting "exactly one cyclic-type-variable" in
// tests without string-matching formatted prose.
func (c *Collector) ByKind(kind Kind) []Message {
	var out []Message
	for _, m := range c.Messages {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}
