package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/maruel/natural"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/lattice-lang/latticec/internal/diagnostic"
	"github.com/lattice-lang/latticec/internal/hierarchy"
	"github.com/lattice-lang/latticec/internal/loader"
)

var (
	resolveSharing bool
	resolveQuery   string
	resolvePatch   string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [fixture.yaml]",
	Short: "Load a declaration-graph fixture and resolve its class hierarchy",
	Long: `resolve reads a YAML declaration-graph fixture, runs the
class-hierarchy resolution core over every class it declares, and
prints the resolved graph as JSON: one object per class carrying its
supertype, interfaces, linearized ancestor chain, constructors, and the
diagnostics whose "name" argument equals the class's name (for some kinds
that is the class being resolved, for others the class it refers to;
diagnostics with no "name" argument are not listed).

Examples:
  # Resolve a fixture and print the full graph
  latticec resolve testdata/diamond.yaml

  # Resolve with the sharing mixin-interning strategy
  latticec resolve testdata/mixins.yaml --mixin-sharing

  # Extract one field from the resolved JSON
  latticec resolve testdata/diamond.yaml --query '0.linearized'

  # Flip which class is the designated root before resolving
  latticec resolve testdata/diamond.yaml --patch 'libraries.0.classes.0.root=true'`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().BoolVar(&resolveSharing, "mixin-sharing", false, "use the structural-signature mixin-interning strategy instead of non-sharing")
	resolveCmd.Flags().StringVar(&resolveQuery, "query", "", "gjson path to extract from the resolved JSON instead of printing it whole")
	resolveCmd.Flags().StringVar(&resolvePatch, "patch", "", "path=value to rewrite in the fixture's JSON-equivalent representation before resolving")
}

// classResult is the JSON shape printed for one resolved class.
type classResult struct {
	Name                    string   `json:"name"`
	Library                 string   `json:"library"`
	Supertype               string   `json:"supertype,omitempty"`
	Interfaces              []string `json:"interfaces,omitempty"`
	Linearized              []string `json:"linearized"`
	Constructors            []string `json:"constructors,omitempty"`
	HasIncompleteHierarchy  bool     `json:"hasIncompleteHierarchy,omitempty"`
	Diagnostics             []string `json:"diagnostics,omitempty"`
}

func runResolve(_ *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading fixture: %w", err)
	}

	if resolvePatch != "" {
		raw, err = applyPatch(raw, resolvePatch)
		if err != nil {
			return err
		}
	}

	var fx loader.Fixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return fmt.Errorf("parsing fixture: %w", err)
	}

	ids := hierarchy.NewIDAllocator()
	graph, err := loader.Build(&fx, ids)
	if err != nil {
		return fmt.Errorf("building declaration graph: %w", err)
	}

	strategy := hierarchy.NonSharing
	if resolveSharing {
		strategy = hierarchy.Sharing
	}

	reporter := diagnostic.NewCollector()
	backend := &hierarchy.SimpleBackend{Root: graph.Root}
	cfg := hierarchy.Config{
		Root:                 graph.Root,
		Backend:              backend,
		MixinStrategy:        strategy,
		BlacklistedTypeNames: hierarchy.DefaultBlacklistedTypeNames(),
	}
	driver := hierarchy.NewDriverWithIDs(cfg, graph.Provider(), reporter, hierarchy.NopRegistry{}, ids)
	driver.ResolveAll(graph.Classes)

	results := buildResults(graph, reporter)
	sort.Slice(results, func(i, j int) bool { return natural.Less(results[i].Name, results[j].Name) })

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	if resolveQuery != "" {
		fmt.Println(gjson.GetBytes(out, resolveQuery).String())
		return nil
	}
	fmt.Println(string(out))
	return nil
}

// applyPatch rewrites path in fixture's JSON-equivalent representation: the
// YAML is first decoded generically, re-encoded as JSON so sjson can address
// it by path, patched, then handed back as bytes a YAML decoder (JSON is
// valid YAML) can parse into the real Fixture shape. A value that is valid
// JSON is set as that JSON value; any other value is set as a string.
func applyPatch(raw []byte, patch string) ([]byte, error) {
	path, value, ok := strings.Cut(patch, "=")
	if !ok {
		return nil, fmt.Errorf("--patch expects path=value, got %q", patch)
	}

	var generic any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("parsing fixture for --patch: %w", err)
	}
	jsonBytes, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("re-encoding fixture as JSON: %w", err)
	}
	var patched []byte
	if gjson.Valid(value) {
		// A JSON literal (true, 3, "text", {...}) is stored as that value.
		patched, err = sjson.SetRawBytes(jsonBytes, path, []byte(value))
	} else {
		patched, err = sjson.SetBytes(jsonBytes, path, value)
	}
	if err != nil {
		return nil, fmt.Errorf("applying --patch %q: %w", patch, err)
	}
	return patched, nil
}

func buildResults(graph *loader.Graph, reporter *diagnostic.Collector) []classResult {
	diagsByClass := make(map[string][]string)
	for _, msg := range reporter.Messages {
		name := msg.Args["name"]
		diagsByClass[name] = append(diagsByClass[name], msg.String())
	}

	results := make([]classResult, 0, len(graph.Classes))
	for _, class := range graph.Classes {
		r := classResult{
			Name:                   class.Name,
			Library:                class.Library.ID,
			HasIncompleteHierarchy: class.HasIncompleteHierarchy,
			Diagnostics:            diagsByClass[class.Name],
		}
		if class.Supertype != nil {
			r.Supertype = class.Supertype.String()
		}
		for _, iface := range class.Interfaces {
			r.Interfaces = append(r.Interfaces, iface.String())
		}
		for _, anc := range class.LinearizedSupertypes {
			r.Linearized = append(r.Linearized, anc.String())
		}
		for _, ctor := range class.Constructors {
			desc := ctor.Name
			if desc == "" {
				desc = "<unnamed>"
			}
			if ctor.IsSynthetic {
				desc += " (synthesized)"
			}
			if ctor.IsErroneous {
				desc += " (erroneous)"
			}
			r.Constructors = append(r.Constructors, desc)
		}
		results = append(results, r)
	}
	return results
}
