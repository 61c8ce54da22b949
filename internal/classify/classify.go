// Package classify turns a parsed timing summary into a simplified report:
// per-bit violations grouped into per-bus issues, each classified by path
// kind, dominant delay contributor, and clock-skew character, with a
// root-cause sentence and ranked fix hints. Everything here is a pure
// function over the summary; the only text it reads is the bounded raw
// snippet each violation already carries.
package classify

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/skirrithan/Clkwise/internal/types"
)

// floatPat matches a signed decimal inside a raw path block.
const floatPat = `[-+]?\d+(?:\.\d+)?`

// Options holds the classification thresholds. The defaults are the
// empirically calibrated constants of the heuristics; override them only
// with evidence.
type Options struct {
	// SkewFraction: |clock path skew| >= SkewFraction * requirement marks
	// the skew as dominant (label suffix, skew fix hints, large skew
	// buckets). Default 0.5.
	SkewFraction float64

	// SkewMinorFraction is the lower bucket boundary for the skew
	// character. Default 0.1.
	SkewMinorFraction float64

	// MaxFixHints caps the deduplicated hint list per issue. Default 6.
	MaxFixHints int
}

// DefaultOptions returns the calibrated default thresholds.
func DefaultOptions() Options {
	return Options{
		SkewFraction:      0.5,
		SkewMinorFraction: 0.1,
		MaxFixHints:       6,
	}
}

func (o Options) withDefaults() Options {
	if o.SkewFraction == 0 {
		o.SkewFraction = 0.5
	}

	if o.SkewMinorFraction == 0 {
		o.SkewMinorFraction = 0.1
	}

	if o.MaxFixHints == 0 {
		o.MaxFixHints = 6
	}

	return o
}

var (
	// Strict about flip-flop primitives (FDRE, FDCE, ...) to avoid false
	// positives from unrelated substrings.
	reFlipFlop = regexp.MustCompile(`\bFD\w*\b`)

	reBusBit = regexp.MustCompile(`^([A-Za-z_]\w*)\[(\d+)\]`)
)

// ClassifyPath decides the path kind from the violation's raw text: the
// source end is a flip-flop iff a flip-flop primitive token appears, the
// destination end is an output iff an output-port marker appears.
func ClassifyPath(v *types.PathViolation) types.PathKind {
	srcIsFF := reFlipFlop.MatchString(v.Raw)
	dstIsOut := strings.Contains(v.Raw, " (OUT)") || strings.Contains(v.Raw, "(output port")

	switch {
	case srcIsFF && dstIsOut:
		return types.RegToOut
	case srcIsFF:
		return types.RegToReg
	case dstIsOut:
		return types.InToOut
	default:
		return types.InToReg
	}
}

// BusName splits an indexed signal name ("y[63]") into its base name and
// bit index. Non-indexed signals return the name unchanged and a nil bit.
func BusName(signal string) (string, *int) {
	m := reBusBit.FindStringSubmatch(signal)
	if m == nil {
		return signal, nil
	}

	bit, err := strconv.Atoi(m[2])
	if err != nil {
		return signal, nil
	}

	return m[1], &bit
}
