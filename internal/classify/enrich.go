package classify

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/skirrithan/Clkwise/internal/types"
)

var (
	reDcd    = regexp.MustCompile(`Destination Clock Delay\s*\(DCD\):\s*(` + floatPat + `)ns`)
	reScd    = regexp.MustCompile(`Source Clock Delay\s*\(SCD\):\s*(` + floatPat + `)ns`)
	reCpr    = regexp.MustCompile(`Clock Pessimism Removal\s*\(CPR\):\s*(` + floatPat + `)ns`)
	reClkUnc = regexp.MustCompile(`Clock Uncertainty:\s*(` + floatPat + `)ns`)
	reTsj    = regexp.MustCompile(`Total System Jitter\s*\(TSJ\):\s*(` + floatPat + `)ns`)
	reTij    = regexp.MustCompile(`Total Input Jitter\s*\(TIJ\):\s*(` + floatPat + `)ns`)
	reDj     = regexp.MustCompile(`Discrete Jitter\s*\(DJ\):\s*(` + floatPat + `)ns`)
	rePe     = regexp.MustCompile(`Phase Error\s*\(PE\):\s*(` + floatPat + `)ns`)

	// Footer table of the path block.
	reRequiredTime = regexp.MustCompile(`(?m)^\s*required time\s+(` + floatPat + `)`)
	reArrivalTime  = regexp.MustCompile(`(?m)^\s*arrival time\s+(` + floatPat + `)`)

	// First site/primitive mentions.
	reOBUF     = regexp.MustCompile(`\bOBUF\b`)
	reIOSite   = regexp.MustCompile(`(?m)^\s*([A-Z]\d+)\s+OBUF\b`)
	reSrcSlice = regexp.MustCompile(`(?m)^\s*(SLICE_[A-Z0-9XY]+)\s+FD\w+\b`)

	reNetFanout = regexp.MustCompile(`net\s*\(fo=(\d+)`)
	reNetDelay  = regexp.MustCompile(`net\s*\(fo=\d+.*?\)\s+(` + floatPat + `)`)
)

// EnrichFromRaw mines secondary timing components out of a violation's raw
// text: skew and jitter sub-components, the footer required/arrival times,
// placement hints, and clock-tree statistics. It is a second, narrower
// parser pass over the retained snippet, independent of the report parser.
func EnrichFromRaw(v *types.PathViolation) types.EnrichedFields {
	raw := v.Raw

	enriched := types.EnrichedFields{
		DcdNs:              matchFloat(reDcd, raw),
		ScdNs:              matchFloat(reScd, raw),
		CprNs:              matchFloat(reCpr, raw),
		ClockUncertaintyNs: matchFloat(reClkUnc, raw),
		TsjNs:              matchFloat(reTsj, raw),
		TijNs:              matchFloat(reTij, raw),
		DjNs:               matchFloat(reDj, raw),
		PeNs:               matchFloat(rePe, raw),
		RequiredTimeNs:     matchFloat(reRequiredTime, raw),
		ArrivalTimeNs:      matchFloat(reArrivalTime, raw),
		IOSite:             matchString(reIOSite, raw),
		SrcSlice:           matchString(reSrcSlice, raw),
	}

	if reOBUF.MatchString(raw) {
		primitive := "OBUF"
		enriched.IOPrimitive = &primitive
	}

	// Clock-network stats come only from the text preceding the first
	// flip-flop token, so data-path net delays are not mixed in.
	clockSection := raw
	if i := strings.Index(raw, "FD"); i >= 0 {
		clockSection = raw[:i]
	}

	var fanoutMax *int

	for _, m := range reNetFanout.FindAllStringSubmatch(clockSection, -1) {
		fanout, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		if fanoutMax == nil || fanout > *fanoutMax {
			value := fanout
			fanoutMax = &value
		}
	}

	enriched.ClockNetFanoutMax = fanoutMax

	var (
		delayTotal float64
		delaySeen  bool
	)

	for _, m := range reNetDelay.FindAllStringSubmatch(clockSection, -1) {
		delay, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}

		delayTotal += delay
		delaySeen = true
	}

	if delaySeen {
		enriched.ClockNetDelayNsTotal = &delayTotal
	}

	return enriched
}

func matchFloat(re *regexp.Regexp, s string) *float64 {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil
	}

	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}

	return &v
}

func matchString(re *regexp.Regexp, s string) *string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil
	}

	v := m[1]

	return &v
}
