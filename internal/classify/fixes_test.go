package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skirrithan/Clkwise/internal/types"
)

func TestPickFixesRegToReg(t *testing.T) {
	v := &types.PathViolation{}

	fixes := pickFixes(types.RegToReg, dominant{Class: types.DelayLogic}, v, types.EnrichedFields{}, DefaultOptions())

	assert.Equal(t, rules.PathKinds["reg_to_reg"], fixes)
}

func TestPickFixesCapAndOrder(t *testing.T) {
	// OBUF-driven reg_to_out with routing-dominant delay and large skew
	// triggers every table, well past the cap.
	v := &types.PathViolation{
		ClockPathSkewNs: fptr(-2.5),
		RequirementNs:   fptr(4.0),
	}
	enriched := types.EnrichedFields{IOPrimitive: sptr("OBUF")}
	dom := dominant{Class: types.DelayOBUFRouting, Skew: true}

	fixes := pickFixes(types.RegToOut, dom, v, enriched, DefaultOptions())

	require.Len(t, fixes, 6)
	assert.Equal(t, rules.PathKinds["reg_to_out"][0], fixes[0], "path-kind hints come first")

	seen := map[string]struct{}{}
	for _, fix := range fixes {
		_, dup := seen[fix]
		assert.False(t, dup, "duplicate hint: %q", fix)
		seen[fix] = struct{}{}
	}
}

func TestPickFixesCustomCap(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxFixHints = 2

	fixes := pickFixes(types.RegToOut, dominant{Class: types.DelayOBUFRouting}, &types.PathViolation{},
		types.EnrichedFields{IOPrimitive: sptr("OBUF")}, opts)

	assert.Len(t, fixes, 2)
}

func TestPickFixesSkewOnlyWhenLarge(t *testing.T) {
	v := &types.PathViolation{
		ClockPathSkewNs: fptr(-0.3),
		RequirementNs:   fptr(4.0),
	}

	fixes := pickFixes(types.RegToReg, dominant{Class: types.DelayLogic}, v, types.EnrichedFields{}, DefaultOptions())

	for _, fix := range fixes {
		assert.NotContains(t, rules.Skew, fix)
	}
}

func TestRulesTablesLoaded(t *testing.T) {
	assert.NotEmpty(t, rules.PathKinds["reg_to_out"])
	assert.NotEmpty(t, rules.PathKinds["reg_to_reg"])
	assert.NotEmpty(t, rules.OBUF)
	assert.NotEmpty(t, rules.Routing)
	assert.NotEmpty(t, rules.Skew)
}
