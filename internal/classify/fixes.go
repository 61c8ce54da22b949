package classify

import (
	_ "embed"
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/skirrithan/Clkwise/internal/types"
)

//go:embed rules.yaml
var rulesYAML []byte

type fixRules struct {
	PathKinds map[string][]string `yaml:"path_kinds"`
	OBUF      []string            `yaml:"obuf"`
	Routing   []string            `yaml:"routing"`
	Skew      []string            `yaml:"skew"`
}

//nolint:gochecknoglobals // rule table, effectively const
var rules = loadRules()

func loadRules() fixRules {
	var r fixRules
	if err := yaml.Unmarshal(rulesYAML, &r); err != nil {
		panic(fmt.Sprintf("load rules.yaml: %v", err))
	}

	return r
}

// pickFixes assembles the hint list for an issue: the path-kind table,
// augmented with OBUF hints for buffered output paths, routing-congestion
// hints when routing dominates, and clock-region hints when skew is large.
// The result is deduplicated first-seen and capped at opts.MaxFixHints.
func pickFixes(kind types.PathKind, dom dominant, v *types.PathViolation, enriched types.EnrichedFields, opts Options) []string {
	var fixes []string

	fixes = append(fixes, rules.PathKinds[string(kind)]...)

	if kind == types.RegToOut {
		obufDriven := enriched.IOPrimitive != nil && strings.Contains(*enriched.IOPrimitive, "OBUF")
		if obufDriven || strings.Contains(dom.Label(), "OBUF") {
			fixes = append(fixes, rules.OBUF...)
		}
	}

	if strings.Contains(dom.Label(), "routing") {
		fixes = append(fixes, rules.Routing...)
	}

	skew := deref(v.ClockPathSkewNs)
	req := deref(v.RequirementNs)

	if req != 0 && math.Abs(skew) >= opts.SkewFraction*req {
		fixes = append(fixes, rules.Skew...)
	}

	seen := make(map[string]struct{}, len(fixes))
	unique := make([]string, 0, len(fixes))

	for _, fix := range fixes {
		if _, ok := seen[fix]; ok {
			continue
		}

		seen[fix] = struct{}{}
		unique = append(unique, fix)

		if len(unique) == opts.MaxFixHints {
			break
		}
	}

	return unique
}
