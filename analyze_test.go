package clkwise_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clkwise "github.com/skirrithan/Clkwise"
)

const report = `check_timing report

1. checking no_clock (0)
5. checking no_input_delay (1)
6. checking no_output_delay (64)

Design Timing Summary
---------------------

    WNS(ns)  TNS(ns)  TNS Failing Endpoints  TNS Total Endpoints  WHS(ns)  THS(ns)  THS Failing Endpoints  THS Total Endpoints
     -1.250  -40.000                     64                  128    0.100    0.000                      0                    0

Clock Summary
-------------

sys_clk     {0.000 2.000}        4.000           250.000

Intra Clock Table
-----------------

Max Delay Paths
---------------

Slack (VIOLATED) :        -1.250ns  (required time - arrival time)
  Source:                 y_reg[5]/C
                            (rising edge-triggered cell FDRE clocked by sys_clk)
  Destination:            y[5]
                            (output port y[5] clocked by sys_clk)
  Path Group:             sys_clk
  Requirement:            4.000ns  (sys_clk rise@4.000ns - sys_clk rise@0.000ns)
  Data Path Delay:        4.737ns  (logic 2.757ns (58.196%)  route 1.980ns (41.804%))
  Logic Levels:           3
  Output Delay:           0.500ns
  Clock Path Skew:        -0.300ns (DCD - SCD + CPR)
    Destination Clock Delay (DCD):    2.200ns
    Source Clock Delay      (SCD):    2.500ns
    Clock Pessimism Removal (CPR):    0.000ns

Pulse Width Checks
------------------
`

func TestAnalyzeEndToEnd(t *testing.T) {
	summary, simplified := clkwise.Analyze(report, clkwise.DefaultOptions())

	require.NotNil(t, summary.WNS)
	assert.InDelta(t, -1.25, *summary.WNS, 1e-9)
	require.Len(t, summary.Violations, 1)

	require.NotNil(t, simplified.Overview.WnsNs)
	assert.InDelta(t, -1.25, *simplified.Overview.WnsNs, 1e-9)
	assert.Equal(t, 1, simplified.Overview.Violations)

	require.NotNil(t, simplified.Clock)
	assert.Equal(t, "sys_clk@250MHz (4ns)", *simplified.Clock)

	assert.Len(t, simplified.SdcGaps, 2)

	require.Len(t, simplified.Issues, 1)
	issue := simplified.Issues[0]

	assert.Equal(t, clkwise.RegToOut, issue.PathKind)
	assert.Equal(t, "y[*]", issue.SignalGroup)
	require.NotNil(t, issue.WorstBit)
	assert.Equal(t, 5, *issue.WorstBit)
	assert.InDelta(t, -1.25, issue.WorstSlackNs, 1e-9)
	assert.Contains(t, issue.DominantDelay, "logic")
	assert.Equal(t, "Unpipelined REG->OBUF path to top-level port with high logic.", issue.RootCause)
	assert.Equal(t, "y[5]", issue.WhereInCode.DestPort)
	assert.Equal(t, `y_reg\[(\d+)\]`, issue.WhereInCode.SrcFFRegex)
	assert.NotEmpty(t, issue.FixHints)
	assert.LessOrEqual(t, len(issue.FixHints), 6)

	require.NotNil(t, issue.Evidence.DataPathNs)
	assert.InDelta(t, 4.737, *issue.Evidence.DataPathNs, 1e-9)
	require.NotNil(t, issue.Evidence.ScdNs)
	assert.InDelta(t, 2.5, *issue.Evidence.ScdNs, 1e-9)
	require.NotNil(t, issue.Evidence.DcdNs)
	assert.InDelta(t, 2.2, *issue.Evidence.DcdNs, 1e-9)

	// Skew delta -0.3 is well below half the 4ns requirement.
	require.NotNil(t, issue.SkewCharacter)
	assert.Equal(t, clkwise.SkewCharacter("balanced"), *issue.SkewCharacter)
}

func TestAnalyzeIdempotent(t *testing.T) {
	_, first := clkwise.Analyze(report, clkwise.DefaultOptions())
	_, second := clkwise.Analyze(report, clkwise.DefaultOptions())

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, string(a), string(b), "repeated runs must serialize identically")
}

func TestAnalyzeEmptyInput(t *testing.T) {
	summary, simplified := clkwise.Analyze("", clkwise.DefaultOptions())

	assert.Nil(t, summary.WNS)
	assert.Empty(t, summary.Violations)
	assert.Empty(t, simplified.Issues)
	assert.Empty(t, simplified.SdcGaps)
	assert.Nil(t, simplified.Clock)
}

func TestParseThenSimplifyMatchesAnalyze(t *testing.T) {
	summary := clkwise.Parse(report)
	staged := clkwise.Simplify(summary, clkwise.DefaultOptions())

	_, combined := clkwise.Analyze(report, clkwise.DefaultOptions())

	a, err := json.Marshal(staged)
	require.NoError(t, err)
	b, err := json.Marshal(combined)
	require.NoError(t, err)

	assert.JSONEq(t, string(a), string(b))
}
