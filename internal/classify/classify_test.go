package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skirrithan/Clkwise/internal/types"
)

func fptr(v float64) *float64 { return &v }

func iptr(v int) *int { return &v }

func sptr(v string) *string { return &v }

func TestClassifyPath(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want types.PathKind
	}{
		{
			name: "flip-flop source to output port",
			raw:  "Source: y_reg[5]/C (rising edge-triggered cell FDRE)\nDestination: y[5]\n  (output port y[5])",
			want: types.RegToOut,
		},
		{
			name: "flip-flop source to output pin marker",
			raw:  "FDCE cell\n H5  r  y[5] (OUT)",
			want: types.RegToOut,
		},
		{
			name: "flip-flop to flip-flop",
			raw:  "Source: ctrl_reg/C (FDRE)\nDestination: state_reg/D",
			want: types.RegToReg,
		},
		{
			name: "input port to output port",
			raw:  "Source: a (input port)\nDestination: y (output port y)",
			want: types.InToOut,
		},
		{
			name: "no markers at all",
			raw:  "Source: a\nDestination: b",
			want: types.InToReg,
		},
		{
			name: "FD token requires word boundary",
			raw:  "Source: OLDFDATA_reg something\nDestination: b",
			want: types.InToReg,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := &types.PathViolation{Raw: tc.raw}
			assert.Equal(t, tc.want, ClassifyPath(v))
		})
	}
}

func TestBusName(t *testing.T) {
	base, bit := BusName("y[63]")
	assert.Equal(t, "y", base)
	require.NotNil(t, bit)
	assert.Equal(t, 63, *bit)

	base, bit = BusName("ctrl")
	assert.Equal(t, "ctrl", base)
	assert.Nil(t, bit)

	// Trailing hierarchy after the index is tolerated.
	base, bit = BusName("data_out[7]/D")
	assert.Equal(t, "data_out", base)
	require.NotNil(t, bit)
	assert.Equal(t, 7, *bit)

	// Index must be at the first bracket.
	base, bit = BusName("[3]y")
	assert.Equal(t, "[3]y", base)
	assert.Nil(t, bit)
}
