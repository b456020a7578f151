// Package prover implements the given-clause saturation loop: the search
// state (set of support, usable, demodulators, hints, statistics) and the
// per-iteration pipeline that ties the symbol/term/clause/inference
// packages together into a refutation search.
package prover

import "math"

// MaxWeight is the weight-table sentinel used by hint-adjustment defaults
// that mean "no effective threshold" (the hint always qualifies).
const MaxWeight int32 = math.MaxInt32

// Config holds every tunable option from the problem file's set/clear/assign
// directives. Field names match the directive names via the mapstructure
// tag so input.BuildProver can decode a map[string]any straight from the
// parser onto this struct.
type Config struct {
	MaxClauses         int `mapstructure:"max_clauses"`
	MaxGiven           int `mapstructure:"max_given"`
	MaxSeconds         int `mapstructure:"max_seconds"`
	MaxMemoryBytes     uint64 `mapstructure:"max_memory_bytes"`
	MaxClausesPerGiven int `mapstructure:"max_clauses_per_given"`
	MaxDemodIterations int `mapstructure:"max_demod_iterations"`
	PickGivenRatio     int `mapstructure:"pick_given_ratio"`
	MaxWeight          int32 `mapstructure:"max_weight"`

	UseBinaryRes  bool `mapstructure:"use_binary_res"`
	UseHyperRes   bool `mapstructure:"use_hyper_res"`
	UseURRes      bool `mapstructure:"use_ur_res"`
	UseLinkedURRes bool `mapstructure:"use_linked_ur_res"`
	UseFactor     bool `mapstructure:"use_factor"`

	UseParaInto  bool `mapstructure:"use_para_into"`
	UseParaFrom  bool `mapstructure:"use_para_from"`
	ParaIntoLeft  bool `mapstructure:"para_into_left"`
	ParaIntoRight bool `mapstructure:"para_into_right"`
	ParaFromLeft  bool `mapstructure:"para_from_left"`
	ParaFromRight bool `mapstructure:"para_from_right"`

	UseDemod        bool `mapstructure:"use_demod"`
	UseBackDemod    bool `mapstructure:"use_back_demod"`
	UseSubsumption  bool `mapstructure:"use_subsumption"`
	UseAncestorSubsume bool `mapstructure:"use_ancestor_subsume"`
	UseUnitDeletion bool `mapstructure:"use_unit_deletion"`

	FSubHintWt    int32 `mapstructure:"fsub_hint_wt"`
	FSubHintAddWt int32 `mapstructure:"fsub_hint_add_wt"`
	BSubHintWt    int32 `mapstructure:"bsub_hint_wt"`
	BSubHintAddWt int32 `mapstructure:"bsub_hint_add_wt"`
	EquivHintWt    int32 `mapstructure:"equiv_hint_wt"`
	EquivHintAddWt int32 `mapstructure:"equiv_hint_add_wt"`

	KeepHintSubsumers   bool `mapstructure:"keep_hint_subsumers"`
	KeepHintEquivalents bool `mapstructure:"keep_hint_equivalents"`

	// Debug gates the optional "BUG:"/"TAUTOLOGY DETECTED"-style diagnostic
	// logging the source prover shipped in its hot path (spec §9); off by
	// default, routed through logrus rather than printed unconditionally.
	Debug bool `mapstructure:"debug"`

	LinkedURMaxDepth int `mapstructure:"linked_ur_max_depth"`
	LinkedURMaxWidth int `mapstructure:"linked_ur_max_width"`
}

// DefaultConfig returns the option defaults listed in spec §6.
func DefaultConfig() Config {
	return Config{
		MaxClauses:         10000,
		MaxGiven:           1000,
		MaxSeconds:         0,
		MaxMemoryBytes:     0,
		MaxClausesPerGiven: 0,
		MaxDemodIterations: 100,
		PickGivenRatio:     4,
		MaxWeight:          MaxWeight,

		UseBinaryRes: true,

		ParaIntoLeft:  true,
		ParaIntoRight: true,
		ParaFromLeft:  true,
		ParaFromRight: true,

		FSubHintWt:     MaxWeight,
		FSubHintAddWt:  0,
		BSubHintWt:     MaxWeight,
		BSubHintAddWt:  -1000,
		EquivHintWt:    MaxWeight,
		EquivHintAddWt: 0,

		LinkedURMaxDepth: 4,
		LinkedURMaxWidth: 8,
	}
}
