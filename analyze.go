//nolint:wrapcheck
package clkwise

import (
	"github.com/skirrithan/Clkwise/internal/classify"
	"github.com/skirrithan/Clkwise/internal/ingest"
	"github.com/skirrithan/Clkwise/internal/types"
)

/*
Usage:

	summary, simplified := clkwise.Analyze(reportText, clkwise.DefaultOptions())
	fmt.Println(simplified.Overview.Violations)

	// Stages separately
	summary := clkwise.Parse(reportText)
	simplified := clkwise.Simplify(summary, clkwise.DefaultOptions())

	// Custom thresholds
	opts := clkwise.DefaultOptions()
	opts.SkewFraction = 0.4
	_, simplified = clkwise.Analyze(reportText, opts)

	// Iterate issues, most critical first
	for _, issue := range simplified.Issues {
		fmt.Printf("[%s] %s %s\n", issue.PathKind, issue.SignalGroup, issue.RootCause)
	}

Both stages are pure transforms: they never fail on malformed or truncated
reports, they degrade to absent fields instead. Concurrent calls on
different inputs need no locking.
*/

// Parse converts raw report text into a timing summary.
func Parse(text string) *types.TimingSummary {
	return ingest.ParseSummary(text)
}

// Simplify converts a timing summary into the simplified report.
func Simplify(summary *types.TimingSummary, opts Options) *types.SimplifiedReport {
	return classify.Simplify(summary, opts)
}

// Analyze runs both stages over raw report text.
func Analyze(text string, opts Options) (*types.TimingSummary, *types.SimplifiedReport) {
	summary := ingest.ParseSummary(text)

	return summary, classify.Simplify(summary, opts)
}
