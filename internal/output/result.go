// Package output provides shared result serialization for clkwise JSON and
// console output.
package output

import (
	"github.com/skirrithan/Clkwise/internal/types"
)

// SummaryToMap converts a timing summary into the canonical map structure
// used for JSON and JSONL serialization.
func SummaryToMap(summary *types.TimingSummary) map[string]any {
	clocks := make(map[string]any, len(summary.Clocks))
	for name, info := range summary.Clocks {
		clocks[name] = map[string]any{
			"period_ns":     info.PeriodNs,
			"frequency_mhz": info.FrequencyMHz,
		}
	}

	violations := make([]any, 0, len(summary.Violations))
	for i := range summary.Violations {
		violations = append(violations, ViolationToMap(&summary.Violations[i]))
	}

	return map[string]any{
		"wns":        summary.WNS,
		"tns":        summary.TNS,
		"clocks":     clocks,
		"checks":     summary.Checks,
		"violations": violations,
	}
}

// ViolationToMap converts one parsed path to a map.
func ViolationToMap(v *types.PathViolation) map[string]any {
	return map[string]any{
		"status":             v.Status,
		"slack":              v.Slack,
		"source":             v.Source,
		"destination":        v.Destination,
		"path_group":         v.PathGroup,
		"requirement_ns":     v.RequirementNs,
		"data_path_delay_ns": v.DataPathDelayNs,
		"logic_delay_ns":     v.LogicDelayNs,
		"logic_pct":          v.LogicPct,
		"route_delay_ns":     v.RouteDelayNs,
		"route_pct":          v.RoutePct,
		"levels_of_logic":    v.LevelsOfLogic,
		"output_delay_ns":    v.OutputDelayNs,
		"clock_path_skew_ns": v.ClockPathSkewNs,
		"raw":                v.Raw,
	}
}

// SimplifiedToMap converts a simplified report into the canonical map
// structure.
func SimplifiedToMap(report *types.SimplifiedReport) map[string]any {
	issues := make([]any, 0, len(report.Issues))
	for i := range report.Issues {
		issues = append(issues, IssueToMap(&report.Issues[i]))
	}

	return map[string]any{
		"clock": report.Clock,
		"overview": map[string]any{
			"wns_ns":     report.Overview.WnsNs,
			"tns_ns":     report.Overview.TnsNs,
			"violations": report.Overview.Violations,
		},
		"sdc_gaps": report.SdcGaps,
		"issues":   issues,
	}
}

// IssueToMap converts one classified issue to a map.
func IssueToMap(issue *types.Issue) map[string]any {
	return map[string]any{
		"path_kind":      issue.PathKind,
		"signal_group":   issue.SignalGroup,
		"worst_bit":      issue.WorstBit,
		"worst_slack_ns": issue.WorstSlackNs,
		"dominant_delay": issue.DominantDelay,
		"skew_character": issue.SkewCharacter,
		"evidence":       EvidenceToMap(issue.Evidence),
		"root_cause":     issue.RootCause,
		"where_in_code": map[string]any{
			"dest_port":    issue.WhereInCode.DestPort,
			"src_ff_regex": issue.WhereInCode.SrcFFRegex,
		},
		"fix_hints": issue.FixHints,
	}
}

// EvidenceToMap flattens the evidence fields.
func EvidenceToMap(e types.Evidence) map[string]any {
	return map[string]any{
		"data_path_ns":             e.DataPathNs,
		"logic_ns":                 e.LogicNs,
		"route_ns":                 e.RouteNs,
		"levels_of_logic":          e.LevelsOfLogic,
		"clock_skew_ns":            e.ClockSkewNs,
		"output_delay_ns":          e.OutputDelayNs,
		"dcd_ns":                   e.DcdNs,
		"scd_ns":                   e.ScdNs,
		"cpr_ns":                   e.CprNs,
		"clock_uncertainty_ns":     e.ClockUncertaintyNs,
		"tsj_ns":                   e.TsjNs,
		"tij_ns":                   e.TijNs,
		"dj_ns":                    e.DjNs,
		"pe_ns":                    e.PeNs,
		"required_time_ns":         e.RequiredTimeNs,
		"arrival_time_ns":          e.ArrivalTimeNs,
		"io_primitive":             e.IOPrimitive,
		"io_site":                  e.IOSite,
		"src_slice":                e.SrcSlice,
		"clock_net_fanout_max":     e.ClockNetFanoutMax,
		"clock_net_delay_ns_total": e.ClockNetDelayNsTotal,
	}
}
