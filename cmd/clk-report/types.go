package main

import (
	"github.com/skirrithan/Clkwise/internal/types"
)

// Record is one JSONL line of a bulk report: one timing report's parsed
// metrics and simplified issues, or the error that prevented them.
type Record struct {
	File       string                  `json:"file,omitempty"`
	Error      string                  `json:"error,omitempty"`
	Timing     *RecordTiming           `json:"timing,omitempty"`
	Metrics    *RecordMetrics          `json:"metrics,omitempty"`
	Simplified *types.SimplifiedReport `json:"simplified,omitempty"`
}

// RecordTiming tracks per-stage wall time in milliseconds.
type RecordTiming struct {
	ParseMs    float64 `json:"parse_ms"`
	ClassifyMs float64 `json:"classify_ms"`
}

// RecordMetrics carries the report-level numbers the digest aggregates
// without walking the full simplified report.
type RecordMetrics struct {
	Wns    *float64 `json:"wns"`
	Tns    *float64 `json:"tns"`
	Paths  int      `json:"paths"`
	Clocks int      `json:"clocks"`
	Checks int      `json:"checks"`
}
