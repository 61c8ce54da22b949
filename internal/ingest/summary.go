package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/skirrithan/Clkwise/internal/types"
)

var (
	reSummaryStart = regexp.MustCompile(`Design Timing Summary\s*[-\s|]*\n`)
	reSummaryEnd   = regexp.MustCompile(`\n\s*Clock Summary`)

	// First numeric row under the WNS(ns)/TNS(ns)/... header:
	// WNS TNS <failing endpoints> <total endpoints> THS TPWS <int> <int>.
	reSummaryRow = regexp.MustCompile(`(?m)^\s*(` + floatPat + `)\s+(` + floatPat + `)\s+(\d+)\s+(\d+)\s+(` + floatPat + `)\s+(` + floatPat + `)\s+(\d+)\s+(\d+)`)

	reClockStart = regexp.MustCompile(`Clock Summary\s*[-\s|]*\n`)
	reClockEnd   = regexp.MustCompile(`\n\s*Intra Clock Table`)

	// Rows like: sys_clk  {0.000 1.000}        2.000           500.000
	reClockRow = regexp.MustCompile(`^\s*([A-Za-z0-9_./]+)\s+\{[^}]*\}\s+(` + floatPat + `)\s+(` + floatPat + `)`)

	reChecksStart = regexp.MustCompile(`check_timing report`)
	reChecksEnd   = regexp.MustCompile(`\n\s*Design Timing Summary`)

	// Headings like: 5. checking no_input_delay (1)
	reCheckItem = regexp.MustCompile(`\d+\.\s*checking\s+([A-Za-z0-9_]+)\s*\((\d+)\)`)
)

// ParseDesignTimingSummary extracts WNS and TNS from the Design Timing
// Summary table. Both are nil when the section or its numeric row is
// missing.
func ParseDesignTimingSummary(text string) (wns, tns *float64) {
	block := between(text, reSummaryStart, reSummaryEnd)

	m := reSummaryRow.FindStringSubmatch(block)
	if m == nil {
		return nil, nil
	}

	w, errW := strconv.ParseFloat(m[1], 64)
	t, errT := strconv.ParseFloat(m[2], 64)

	if errW == nil {
		wns = &w
	}

	if errT == nil {
		tns = &t
	}

	return wns, tns
}

// ParseClockSummary parses the Clock Summary table into clock name →
// period/frequency. Rows that do not match are skipped silently.
func ParseClockSummary(text string) map[string]types.ClockInfo {
	block := between(text, reClockStart, reClockEnd)
	clocks := map[string]types.ClockInfo{}

	for line := range strings.SplitSeq(block, "\n") {
		m := reClockRow.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		period, errP := strconv.ParseFloat(m[2], 64)
		freq, errF := strconv.ParseFloat(m[3], 64)

		if errP != nil || errF != nil {
			continue
		}

		clocks[m[1]] = types.ClockInfo{PeriodNs: period, FrequencyMHz: freq}
	}

	return clocks
}

// ParseChecks parses the check_timing report section into check name →
// occurrence count.
func ParseChecks(text string) map[string]int {
	block := between(text, reChecksStart, reChecksEnd)
	checks := map[string]int{}

	for _, m := range reCheckItem.FindAllStringSubmatch(block, -1) {
		count, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}

		checks[m[1]] = count
	}

	return checks
}

// ParseSummary composes the section parsers into one TimingSummary.
func ParseSummary(text string) *types.TimingSummary {
	wns, tns := ParseDesignTimingSummary(text)

	return &types.TimingSummary{
		WNS:        wns,
		TNS:        tns,
		Clocks:     ParseClockSummary(text),
		Checks:     ParseChecks(text),
		Violations: IterPathBlocks(text),
	}
}
