package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/skirrithan/Clkwise/internal/types"
)

// maxRawLen caps the raw snippet retained per path block. The cap is the
// engine's one mandatory resource bound against pathological reports.
const maxRawLen = 4000

var (
	rePathsStart = regexp.MustCompile(`Max Delay Paths`)
	rePathsEnd   = regexp.MustCompile(`Pulse Width Checks`)

	// Each path block starts at its Slack line and runs to the next one.
	reSlack = regexp.MustCompile(`(?m)^Slack \((VIOLATED|MET)\)\s*:\s*(` + floatPat + `)ns`)

	reSource      = regexp.MustCompile(`(?m)^\s*Source:\s*(.+)$`)
	reDestination = regexp.MustCompile(`(?m)^\s*Destination:\s*(.+)$`)
	rePathGroup   = regexp.MustCompile(`(?m)^\s*Path Group:\s*(.+)$`)
	reRequirement = regexp.MustCompile(`(?m)^\s*Requirement:\s*(` + floatPat + `)ns`)
	reLogicLevels = regexp.MustCompile(`(?m)^\s*Logic Levels:\s*(\d+)`)
	reOutputDelay = regexp.MustCompile(`(?m)^\s*Output Delay:\s*(` + floatPat + `)ns`)
	reClockSkew   = regexp.MustCompile(`(?m)^\s*Clock Path Skew:\s*(` + floatPat + `)ns`)

	// Data Path Delay: 4.737ns  (logic 2.757ns (58.196%)  route 1.980ns (41.804%))
	reDataPath = regexp.MustCompile(`Data Path Delay:\s*(` + floatPat + `)ns\s*\(logic\s*(` + floatPat + `)ns\s*\((` + pctPat + `)%\)\s*route\s*(` + floatPat + `)ns\s*\((` + pctPat + `)%\)\)`)
)

// IterPathBlocks scans the Max Delay Paths section (bounded by Pulse Width
// Checks or end of text) and returns one PathViolation per Slack marker.
// Field patterns that fail to match leave the field nil without affecting
// the rest of the block or any later block.
func IterPathBlocks(text string) []types.PathViolation {
	section := between(text, rePathsStart, rePathsEnd)
	if section == "" {
		return []types.PathViolation{}
	}

	markers := reSlack.FindAllStringSubmatchIndex(section, -1)
	paths := make([]types.PathViolation, 0, len(markers))

	for i, m := range markers {
		start := m[0]

		end := len(section)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}

		block := section[start:end]

		slack, err := strconv.ParseFloat(section[m[4]:m[5]], 64)
		if err != nil {
			continue
		}

		violation := types.PathViolation{
			Status:          types.Status(section[m[2]:m[3]]),
			Slack:           slack,
			Source:          firstString(reSource, block),
			Destination:     firstString(reDestination, block),
			PathGroup:       firstString(rePathGroup, block),
			RequirementNs:   firstFloat(reRequirement, block),
			LevelsOfLogic:   firstInt(reLogicLevels, block),
			OutputDelayNs:   firstFloat(reOutputDelay, block),
			ClockPathSkewNs: firstFloat(reClockSkew, block),
			Raw:             capRunes(strings.TrimSpace(block), maxRawLen),
		}

		if d := reDataPath.FindStringSubmatch(block); d != nil {
			violation.DataPathDelayNs = parseFloatPtr(d[1])
			violation.LogicDelayNs = parseFloatPtr(d[2])
			violation.LogicPct = parseFloatPtr(d[3])
			violation.RouteDelayNs = parseFloatPtr(d[4])
			violation.RoutePct = parseFloatPtr(d[5])
		}

		paths = append(paths, violation)
	}

	return paths
}

func parseFloatPtr(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}

	return &v
}
