// Package clkwise reduces FPGA static-timing-analysis reports to a compact,
// classified description of their worst violations.
package clkwise

import (
	"github.com/skirrithan/Clkwise/internal/classify"
	"github.com/skirrithan/Clkwise/internal/types"
)

// Options holds the classification thresholds; see classify.Options for the
// field semantics and defaults.
type Options = classify.Options

// DefaultOptions returns the calibrated default thresholds.
func DefaultOptions() Options {
	return classify.DefaultOptions()
}

// Data model aliases for embedding callers.
type (
	TimingSummary    = types.TimingSummary
	ClockInfo        = types.ClockInfo
	PathViolation    = types.PathViolation
	EnrichedFields   = types.EnrichedFields
	SimplifiedReport = types.SimplifiedReport
	Issue            = types.Issue
	Evidence         = types.Evidence

	Status        = types.Status
	PathKind      = types.PathKind
	SkewCharacter = types.SkewCharacter
)

const (
	RegToOut = types.RegToOut
	RegToReg = types.RegToReg
	InToOut  = types.InToOut
	InToReg  = types.InToReg
)
