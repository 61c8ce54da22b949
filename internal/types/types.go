// Package types holds the shared data model produced by the report parser
// and consumed by the classifier. All values are built once and never
// mutated afterwards; optional fields are pointers and serialize to null.
package types

// Status of a parsed timing path, as printed on its Slack line.
type Status string

const (
	StatusViolated Status = "VIOLATED"
	StatusMet      Status = "MET"
)

// PathKind classifies a timing path by its endpoints.
type PathKind string

const (
	RegToOut PathKind = "reg_to_out" // flip-flop launch, output port capture
	RegToReg PathKind = "reg_to_reg" // flip-flop launch, internal capture
	InToOut  PathKind = "in_to_out"  // input port launch, output port capture
	InToReg  PathKind = "in_to_reg"  // input port launch, internal capture
)

// SkewCharacter buckets the source/destination clock-delay imbalance of a
// path relative to its requirement.
type SkewCharacter string

const (
	SkewBalanced             SkewCharacter = "balanced"
	SkewNegativeSource       SkewCharacter = "negative_source_skew"
	SkewNegativeSourceLarge  SkewCharacter = "negative_source_skew_large"
	SkewNegativeDest         SkewCharacter = "negative_destination_skew"
	SkewNegativeDestLarge    SkewCharacter = "negative_destination_skew_large"
)

// DelayClass is the base label of the dominant delay contributor.
type DelayClass string

const (
	DelayLogic       DelayClass = "logic"
	DelayRouting     DelayClass = "routing"
	DelayOBUFRouting DelayClass = "OBUF + routing"
)

// ClockInfo is one row of the Clock Summary table.
type ClockInfo struct {
	PeriodNs     float64 `json:"period_ns"`
	FrequencyMHz float64 `json:"frequency_mhz"`
}

// PathViolation is one parsed timing path from the Max Delay Paths section.
// Raw is the exact block text (capped at 4000 characters) retained for the
// classifier's second mining pass; every other field may be absent.
type PathViolation struct {
	Status          Status   `json:"status"`
	Slack           float64  `json:"slack"`
	Source          *string  `json:"source"`
	Destination     *string  `json:"destination"`
	PathGroup       *string  `json:"path_group"`
	RequirementNs   *float64 `json:"requirement_ns"`
	DataPathDelayNs *float64 `json:"data_path_delay_ns"`
	LogicDelayNs    *float64 `json:"logic_delay_ns"`
	LogicPct        *float64 `json:"logic_pct"`
	RouteDelayNs    *float64 `json:"route_delay_ns"`
	RoutePct        *float64 `json:"route_pct"`
	LevelsOfLogic   *int     `json:"levels_of_logic"`
	OutputDelayNs   *float64 `json:"output_delay_ns"`
	ClockPathSkewNs *float64 `json:"clock_path_skew_ns"`
	Raw             string   `json:"raw"`
}

// TimingSummary is the parser's complete output for one report.
type TimingSummary struct {
	WNS        *float64             `json:"wns"`
	TNS        *float64             `json:"tns"`
	Clocks     map[string]ClockInfo `json:"clocks"`
	Checks     map[string]int       `json:"checks"`
	Violations []PathViolation      `json:"violations"`
}

// EnrichedFields are secondary timing components mined out of a single
// violation's raw text. Derived on demand for the worst path of each group.
type EnrichedFields struct {
	DcdNs                *float64 `json:"dcd_ns"`
	ScdNs                *float64 `json:"scd_ns"`
	CprNs                *float64 `json:"cpr_ns"`
	ClockUncertaintyNs   *float64 `json:"clock_uncertainty_ns"`
	TsjNs                *float64 `json:"tsj_ns"`
	TijNs                *float64 `json:"tij_ns"`
	DjNs                 *float64 `json:"dj_ns"`
	PeNs                 *float64 `json:"pe_ns"`
	RequiredTimeNs       *float64 `json:"required_time_ns"`
	ArrivalTimeNs        *float64 `json:"arrival_time_ns"`
	IOPrimitive          *string  `json:"io_primitive"`
	IOSite               *string  `json:"io_site"`
	SrcSlice             *string  `json:"src_slice"`
	ClockNetFanoutMax    *int     `json:"clock_net_fanout_max"`
	ClockNetDelayNsTotal *float64 `json:"clock_net_delay_ns_total"`
}

// Evidence is the flattened set of numeric and contextual fields that
// justify an issue's classification: the worst violation's measured delays
// plus its enriched fields.
type Evidence struct {
	DataPathNs    *float64 `json:"data_path_ns"`
	LogicNs       *float64 `json:"logic_ns"`
	RouteNs       *float64 `json:"route_ns"`
	LevelsOfLogic *int     `json:"levels_of_logic"`
	ClockSkewNs   *float64 `json:"clock_skew_ns"`
	OutputDelayNs *float64 `json:"output_delay_ns"`

	DcdNs                *float64 `json:"dcd_ns"`
	ScdNs                *float64 `json:"scd_ns"`
	CprNs                *float64 `json:"cpr_ns"`
	ClockUncertaintyNs   *float64 `json:"clock_uncertainty_ns"`
	TsjNs                *float64 `json:"tsj_ns"`
	TijNs                *float64 `json:"tij_ns"`
	DjNs                 *float64 `json:"dj_ns"`
	PeNs                 *float64 `json:"pe_ns"`
	RequiredTimeNs       *float64 `json:"required_time_ns"`
	ArrivalTimeNs        *float64 `json:"arrival_time_ns"`
	IOPrimitive          *string  `json:"io_primitive"`
	IOSite               *string  `json:"io_site"`
	SrcSlice             *string  `json:"src_slice"`
	ClockNetFanoutMax    *int     `json:"clock_net_fanout_max"`
	ClockNetDelayNsTotal *float64 `json:"clock_net_delay_ns_total"`
}

// WhereInCode points remediation at the RTL: the synthesized destination
// port (with compacted bit ranges) and a regex matching the launching
// registers.
type WhereInCode struct {
	DestPort   string `json:"dest_port"`
	SrcFFRegex string `json:"src_ff_regex"`
}

// Issue is one classified, deduplicated finding covering a bus of related
// bits.
type Issue struct {
	PathKind      PathKind       `json:"path_kind"`
	SignalGroup   string         `json:"signal_group"`
	WorstBit      *int           `json:"worst_bit"`
	WorstSlackNs  float64        `json:"worst_slack_ns"`
	DominantDelay string         `json:"dominant_delay"`
	SkewCharacter *SkewCharacter `json:"skew_character"`
	Evidence      Evidence       `json:"evidence"`
	RootCause     string         `json:"root_cause"`
	WhereInCode   WhereInCode    `json:"where_in_code"`
	FixHints      []string       `json:"fix_hints"`
}

// Overview carries the report-level metrics into the simplified view.
type Overview struct {
	WnsNs      *float64 `json:"wns_ns"`
	TnsNs      *float64 `json:"tns_ns"`
	Violations int      `json:"violations"`
}

// SimplifiedReport is the classifier's output: global metrics, constraint
// gaps, and issues sorted ascending by worst slack (most critical first).
type SimplifiedReport struct {
	Clock    *string  `json:"clock"`
	Overview Overview `json:"overview"`
	SdcGaps  []string `json:"sdc_gaps"`
	Issues   []Issue  `json:"issues"`
}
