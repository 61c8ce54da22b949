package classify

import (
	"fmt"
	"math"

	"github.com/skirrithan/Clkwise/internal/types"
)

// dominant is the classified dominant delay contributor of a path: the base
// class plus whether clock skew is large enough to co-dominate.
type dominant struct {
	Class types.DelayClass
	Skew  bool
}

// Label composes the human-readable dominant-delay label.
func (d dominant) Label() string {
	if d.Skew {
		return string(d.Class) + " + skew"
	}

	return string(d.Class)
}

// dominantDelay classifies the dominant contributor. An OBUF on the only
// logic level with routing at least on par with logic is called out
// explicitly; otherwise the larger of logic/routing percentage wins.
func dominantDelay(v *types.PathViolation, opts Options) dominant {
	logicPct := deref(v.LogicPct)
	routePct := deref(v.RoutePct)

	levels := 0
	if v.LevelsOfLogic != nil {
		levels = *v.LevelsOfLogic
	}

	skew := deref(v.ClockPathSkewNs)
	req := deref(v.RequirementNs)
	bigSkew := req != 0 && math.Abs(skew) >= opts.SkewFraction*req

	if reOBUF.MatchString(v.Raw) && (routePct >= logicPct || levels <= 1) {
		return dominant{Class: types.DelayOBUFRouting, Skew: bigSkew}
	}

	if logicPct > routePct {
		return dominant{Class: types.DelayLogic, Skew: bigSkew}
	}

	return dominant{Class: types.DelayRouting, Skew: bigSkew}
}

// skewCharacter buckets the destination-minus-source clock delay as a
// fraction of the requirement. Requires both delay components and a
// non-zero requirement; otherwise nil.
func skewCharacter(v *types.PathViolation, enriched types.EnrichedFields, opts Options) *types.SkewCharacter {
	if enriched.ScdNs == nil || enriched.DcdNs == nil || v.RequirementNs == nil || *v.RequirementNs == 0 {
		return nil
	}

	req := *v.RequirementNs
	// Negative delta: source clock path slower (arrives later) than destination.
	delta := *enriched.DcdNs - *enriched.ScdNs

	var character types.SkewCharacter

	switch {
	case delta <= -opts.SkewFraction*req:
		character = types.SkewNegativeSourceLarge
	case delta <= -opts.SkewMinorFraction*req:
		character = types.SkewNegativeSource
	case delta >= opts.SkewFraction*req:
		character = types.SkewNegativeDestLarge
	case delta >= opts.SkewMinorFraction*req:
		character = types.SkewNegativeDest
	default:
		character = types.SkewBalanced
	}

	return &character
}

// rootCauseSentence renders the one-line diagnosis for an issue, embedding
// the dominant-delay label and, when skew is large, a directional clause.
func rootCauseSentence(kind types.PathKind, dom dominant, v *types.PathViolation, enriched types.EnrichedFields, opts Options) string {
	skew := deref(v.ClockPathSkewNs)
	req := deref(v.RequirementNs)

	skewNote := ""

	if req != 0 && math.Abs(skew) >= opts.SkewFraction*req {
		direction := ""
		if enriched.ScdNs != nil && enriched.DcdNs != nil {
			if *enriched.ScdNs > *enriched.DcdNs {
				direction = " (source path > dest path)"
			} else {
				direction = " (dest path > source path)"
			}
		}

		if skew < 0 {
			skewNote = " and large negative source clock skew" + direction
		} else {
			skewNote = " and large destination clock skew" + direction
		}
	}

	switch kind {
	case types.RegToOut:
		return fmt.Sprintf("Unpipelined REG->OBUF path to top-level port with high %s%s.", dom.Label(), skewNote)
	case types.RegToReg:
		return fmt.Sprintf("Deep combinational logic on REG->REG path with high %s%s.", dom.Label(), skewNote)
	default:
		return fmt.Sprintf("Path limited by %s%s.", dom.Label(), skewNote)
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}
