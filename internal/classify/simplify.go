package classify

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/skirrithan/Clkwise/internal/types"
)

// Simplify converts a timing summary into the simplified report: overview
// metrics, constraint gaps worth surfacing, and one classified issue per
// (path kind, bus) group of violations, sorted ascending by worst slack.
func Simplify(summary *types.TimingSummary, opts Options) *types.SimplifiedReport {
	opts = opts.withDefaults()

	out := &types.SimplifiedReport{
		Overview: types.Overview{
			WnsNs:      summary.WNS,
			TnsNs:      summary.TNS,
			Violations: len(summary.Violations),
		},
		SdcGaps: []string{},
		Issues:  []types.Issue{},
	}

	// Single-clock assumption; with several clocks the lexicographically
	// first keeps the output stable across runs.
	if len(summary.Clocks) > 0 {
		names := slices.Sorted(maps.Keys(summary.Clocks))
		name := names[0]
		info := summary.Clocks[name]
		clock := fmt.Sprintf("%s@%sMHz (%sns)", name, formatFloat(info.FrequencyMHz), formatFloat(info.PeriodNs))
		out.Clock = &clock
	}

	out.SdcGaps = append(out.SdcGaps, sdcGaps(summary.Checks)...)

	type groupKey struct {
		Kind types.PathKind
		Bus  string
	}

	groups := map[groupKey][]*types.PathViolation{}

	for i := range summary.Violations {
		v := &summary.Violations[i]

		dest := ""
		if v.Destination != nil {
			dest = *v.Destination
		}

		base, bit := BusName(dest)

		bus := base
		if bit != nil {
			bus = base + "[*]"
		}

		key := groupKey{Kind: ClassifyPath(v), Bus: bus}
		groups[key] = append(groups[key], v)
	}

	for key, group := range groups {
		worst := group[0]
		for _, v := range group[1:] {
			if v.Slack < worst.Slack {
				worst = v
			}
		}

		// The worst violation is the group's representative: enrichment,
		// dominant delay, skew, and fixes all come from it alone.
		enriched := EnrichFromRaw(worst)
		dom := dominantDelay(worst, opts)

		bits := collectBits(group)

		base := strings.TrimSuffix(key.Bus, "[*]")

		destPort := ""

		if len(bits) > 0 {
			destPort = base + "[" + formatBitRanges(bits) + "]"
		} else if worst.Destination != nil {
			destPort = *worst.Destination
		}

		worstDest := ""
		if worst.Destination != nil {
			worstDest = *worst.Destination
		}

		_, worstBit := BusName(worstDest)

		issue := types.Issue{
			PathKind:      key.Kind,
			SignalGroup:   key.Bus,
			WorstBit:      worstBit,
			WorstSlackNs:  worst.Slack,
			DominantDelay: dom.Label(),
			SkewCharacter: skewCharacter(worst, enriched, opts),
			Evidence:      buildEvidence(worst, enriched),
			RootCause:     rootCauseSentence(key.Kind, dom, worst, enriched, opts),
			WhereInCode: types.WhereInCode{
				DestPort:   destPort,
				SrcFFRegex: srcFFPattern(base, len(bits) > 0),
			},
			FixHints: pickFixes(key.Kind, dom, worst, enriched, opts),
		}

		out.Issues = append(out.Issues, issue)
	}

	// Most critical first. The extra keys only break ties so repeated runs
	// are byte-identical.
	slices.SortFunc(out.Issues, func(a, b types.Issue) int {
		switch {
		case a.WorstSlackNs < b.WorstSlackNs:
			return -1
		case a.WorstSlackNs > b.WorstSlackNs:
			return 1
		}

		if c := strings.Compare(string(a.PathKind), string(b.PathKind)); c != 0 {
			return c
		}

		return strings.Compare(a.SignalGroup, b.SignalGroup)
	})

	return out
}

// sdcGaps maps the constraint checks that commonly block timing closure to
// human-readable gap descriptions.
func sdcGaps(checks map[string]int) []string {
	var gaps []string

	if checks["no_input_delay"] > 0 {
		gaps = append(gaps, "Missing set_input_delay on at least one input; verify external timing model.")
	}

	if checks["no_output_delay"] > 0 {
		gaps = append(gaps, "Missing set_output_delay on outputs; confirm external device setup/hold.")
	}

	if checks["generated_clocks"] > 0 {
		gaps = append(gaps, "Generated clocks absent; add create_generated_clock where appropriate.")
	}

	return gaps
}

// collectBits returns the sorted, deduplicated destination bit indices seen
// across a group.
func collectBits(group []*types.PathViolation) []int {
	seen := map[int]struct{}{}

	for _, v := range group {
		if v.Destination == nil {
			continue
		}

		if _, bit := BusName(*v.Destination); bit != nil {
			seen[*bit] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(seen))
}

// formatBitRanges compresses sorted bit indices into maximal contiguous
// ranges rendered MSB:LSB ("2:0,6:5,9").
func formatBitRanges(bits []int) string {
	var parts []string

	lo := bits[0]
	prev := lo

	flush := func() {
		if lo == prev {
			parts = append(parts, strconv.Itoa(lo))
		} else {
			parts = append(parts, strconv.Itoa(prev)+":"+strconv.Itoa(lo))
		}
	}

	for _, b := range bits[1:] {
		if b == prev+1 {
			prev = b

			continue
		}

		flush()

		lo, prev = b, b
	}

	flush()

	return strings.Join(parts, ",")
}

// srcFFPattern synthesizes a regex matching the launching registers of a
// bus: named after the base when bit indices were observed, generic
// otherwise.
func srcFFPattern(base string, indexed bool) string {
	if indexed && base != "" {
		return regexp.QuoteMeta(base) + `_reg\[(\d+)\]`
	}

	return `(\w+)_reg\[(\d+)\]`
}

func buildEvidence(v *types.PathViolation, enriched types.EnrichedFields) types.Evidence {
	return types.Evidence{
		DataPathNs:    v.DataPathDelayNs,
		LogicNs:       v.LogicDelayNs,
		RouteNs:       v.RouteDelayNs,
		LevelsOfLogic: v.LevelsOfLogic,
		ClockSkewNs:   v.ClockPathSkewNs,
		OutputDelayNs: v.OutputDelayNs,

		DcdNs:                enriched.DcdNs,
		ScdNs:                enriched.ScdNs,
		CprNs:                enriched.CprNs,
		ClockUncertaintyNs:   enriched.ClockUncertaintyNs,
		TsjNs:                enriched.TsjNs,
		TijNs:                enriched.TijNs,
		DjNs:                 enriched.DjNs,
		PeNs:                 enriched.PeNs,
		RequiredTimeNs:       enriched.RequiredTimeNs,
		ArrivalTimeNs:        enriched.ArrivalTimeNs,
		IOPrimitive:          enriched.IOPrimitive,
		IOSite:               enriched.IOSite,
		SrcSlice:             enriched.SrcSlice,
		ClockNetFanoutMax:    enriched.ClockNetFanoutMax,
		ClockNetDelayNsTotal: enriched.ClockNetDelayNsTotal,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
