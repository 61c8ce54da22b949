package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skirrithan/Clkwise/internal/types"
)

const enrichRaw = `Slack (VIOLATED) :        -1.250ns  (required time - arrival time)
  Clock Path Skew:        -0.300ns (DCD - SCD + CPR)
    Destination Clock Delay (DCD):    2.200ns
    Source Clock Delay      (SCD):    2.500ns
    Clock Pessimism Removal (CPR):    0.150ns
  Clock Uncertainty:      0.035ns  ((TSJ^2 + TIJ^2)^1/2 + DJ) / 2 + PE
    Total System Jitter     (TSJ):    0.071ns
    Total Input Jitter      (TIJ):    0.000ns
    Discrete Jitter          (DJ):    0.010ns
    Phase Error              (PE):    0.020ns

    E3            IBUF (Prop_ibuf_I_O)    1.458    1.458 r  clk_IBUF_inst/O
                  net (fo=1, routed)      1.967    3.425    clk_IBUF
    BUFGCTRL_X0Y0 BUFG (Prop_bufg_I_O)    0.096    3.521 r  clk_IBUF_BUFG_inst/O
                  net (fo=64, routed)     1.584    5.105    clk_IBUF_BUFG
    SLICE_X0Y14   FDRE (Prop_fdre_C_Q)    0.456    5.561 r  y_reg[5]/Q
                  net (fo=1, routed)      1.524    7.085    y_OBUF[5]
    H5            OBUF (Prop_obuf_I_O)    2.281    9.366 r  y_OBUF[5]_inst/O

                  required time          2.750
                  arrival time          -4.000
`

func TestEnrichFromRaw(t *testing.T) {
	v := &types.PathViolation{Raw: enrichRaw}
	enriched := EnrichFromRaw(v)

	require.NotNil(t, enriched.DcdNs)
	assert.InDelta(t, 2.2, *enriched.DcdNs, 1e-9)
	require.NotNil(t, enriched.ScdNs)
	assert.InDelta(t, 2.5, *enriched.ScdNs, 1e-9)
	require.NotNil(t, enriched.CprNs)
	assert.InDelta(t, 0.15, *enriched.CprNs, 1e-9)

	require.NotNil(t, enriched.ClockUncertaintyNs)
	assert.InDelta(t, 0.035, *enriched.ClockUncertaintyNs, 1e-9)
	require.NotNil(t, enriched.TsjNs)
	assert.InDelta(t, 0.071, *enriched.TsjNs, 1e-9)
	require.NotNil(t, enriched.TijNs)
	assert.InDelta(t, 0.0, *enriched.TijNs, 1e-9)
	require.NotNil(t, enriched.DjNs)
	assert.InDelta(t, 0.01, *enriched.DjNs, 1e-9)
	require.NotNil(t, enriched.PeNs)
	assert.InDelta(t, 0.02, *enriched.PeNs, 1e-9)

	require.NotNil(t, enriched.RequiredTimeNs)
	assert.InDelta(t, 2.75, *enriched.RequiredTimeNs, 1e-9)
	require.NotNil(t, enriched.ArrivalTimeNs)
	assert.InDelta(t, -4.0, *enriched.ArrivalTimeNs, 1e-9)

	require.NotNil(t, enriched.IOPrimitive)
	assert.Equal(t, "OBUF", *enriched.IOPrimitive)
	require.NotNil(t, enriched.IOSite)
	assert.Equal(t, "H5", *enriched.IOSite)
	require.NotNil(t, enriched.SrcSlice)
	assert.Equal(t, "SLICE_X0Y14", *enriched.SrcSlice)

	// Clock-tree stats come only from the text before the first FD token,
	// so the y_OBUF net after the FDRE stays out.
	require.NotNil(t, enriched.ClockNetFanoutMax)
	assert.Equal(t, 64, *enriched.ClockNetFanoutMax)
	require.NotNil(t, enriched.ClockNetDelayNsTotal)
	assert.InDelta(t, 1.967+1.584, *enriched.ClockNetDelayNsTotal, 1e-9)
}

func TestEnrichFromRawEmpty(t *testing.T) {
	v := &types.PathViolation{Raw: "Slack (MET) : 0.100ns\n  Source: a\n  Destination: b\n"}
	enriched := EnrichFromRaw(v)

	assert.Nil(t, enriched.DcdNs)
	assert.Nil(t, enriched.ScdNs)
	assert.Nil(t, enriched.IOPrimitive)
	assert.Nil(t, enriched.IOSite)
	assert.Nil(t, enriched.SrcSlice)
	assert.Nil(t, enriched.ClockNetFanoutMax)
	assert.Nil(t, enriched.ClockNetDelayNsTotal)
}
