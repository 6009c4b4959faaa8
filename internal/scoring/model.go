package scoring

import (
	"fmt"
	"math"

	"github.com/openfinml/riskscore/constants"
)

// Result is the model output for one record.
type Result struct {
	Probability    float64 `json:"probability"`
	Classification string  `json:"classification"`
	Confidence     float64 `json:"confidence"`
}

// Classification values stored on prediction rows.
const (
	ClassLowRisk    = "LOW_RISK"
	ClassMediumRisk = "MEDIUM_RISK"
	ClassHighRisk   = "HIGH_RISK"
)

// InvalidInputError is returned when a feature value the caller passed is not
// a finite number. Validation upstream substitutes defaults for absent
// values, so seeing this error means a NaN or Inf leaked through.
type InvalidInputError struct {
	Feature string
	Value   float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input for feature %q: %v", e.Feature, e.Value)
}

// Interval is one bin of a feature's empirical risk table: values in
// [Lo, Hi) map to Rate.
type Interval struct {
	Lo   float64
	Hi   float64
	Rate float64
}

// Feature is one financial ratio the model consumes.
type Feature struct {
	Name    string
	Weight  float64
	Default float64 // substituted when the submitted row omits the ratio
	Bins    []Interval
}

// Model scores a feature vector by mapping each ratio into its bin's
// empirical rate and combining the rates by weight.
type Model struct {
	features []Feature
	highCut  float64 // probability at or above which a record is HIGH_RISK
	lowCut   float64 // probability below which a record is LOW_RISK
}

// NewModel builds a model from a feature table. Cuts partition the
// probability range into the three classifications.
func NewModel(features []Feature, lowCut, highCut float64) *Model {
	return &Model{features: features, lowCut: lowCut, highCut: highCut}
}

// Features returns the names and defaults the model expects, for validation.
func (m *Model) Features() map[string]float64 {
	out := make(map[string]float64, len(m.features))
	for _, f := range m.features {
		out[f.Name] = f.Default
	}
	return out
}

// Score maps each ratio to its interval rate and returns the weighted
// probability, classification and confidence. A value outside every interval
// takes the nearest interval's rate. Absent features take their default.
func (m *Model) Score(vector map[string]float64) (Result, error) {
	var weighted, totalWeight float64
	for _, f := range m.features {
		value, ok := vector[f.Name]
		if !ok {
			value = f.Default
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return Result{}, &InvalidInputError{Feature: f.Name, Value: value}
		}
		weighted += f.Weight * rateFor(f.Bins, value)
		totalWeight += f.Weight
	}
	if totalWeight == 0 {
		return Result{}, fmt.Errorf("model has no weighted features")
	}

	prob := weighted / totalWeight
	class := ClassMediumRisk
	switch {
	case prob >= m.highCut:
		class = ClassHighRisk
	case prob < m.lowCut:
		class = ClassLowRisk
	}

	return Result{
		Probability:    prob,
		Classification: class,
		Confidence:     m.confidence(prob),
	}, nil
}

// rateFor finds the interval containing value. Out-of-range values take the
// nearest interval's rate; bins are ordered by Lo.
func rateFor(bins []Interval, value float64) float64 {
	if len(bins) == 0 {
		return 0
	}
	if value < bins[0].Lo {
		return bins[0].Rate
	}
	for _, b := range bins {
		if value >= b.Lo && value < b.Hi {
			return b.Rate
		}
	}
	return bins[len(bins)-1].Rate
}

// confidence is the normalized distance from the nearest classification cut:
// probabilities deep inside a class score close to 1, borderline ones near 0.
func (m *Model) confidence(prob float64) float64 {
	d := math.Min(math.Abs(prob-m.lowCut), math.Abs(prob-m.highCut))
	span := math.Max(m.lowCut, math.Max(m.highCut-m.lowCut, 1-m.highCut))
	if span == 0 {
		return 0
	}
	return math.Min(d/span, 1)
}

// ModelFor returns the scoring table for a job kind. Quarterly statements
// carry noisier ratios, so their bins are wider and weighted slightly
// towards the leverage features.
func ModelFor(kind constants.JobKind) *Model {
	if kind == constants.JobKindQuarterly {
		return NewModel(quarterlyFeatures, 0.25, 0.60)
	}
	return NewModel(annualFeatures, 0.20, 0.55)
}

var annualFeatures = []Feature{
	{
		Name: "working_capital_to_assets", Weight: 1.2, Default: 0.10,
		Bins: []Interval{
			{Lo: -10, Hi: -0.10, Rate: 0.85},
			{Lo: -0.10, Hi: 0.05, Rate: 0.55},
			{Lo: 0.05, Hi: 0.20, Rate: 0.30},
			{Lo: 0.20, Hi: 10, Rate: 0.10},
		},
	},
	{
		Name: "retained_earnings_to_assets", Weight: 1.4, Default: 0.05,
		Bins: []Interval{
			{Lo: -10, Hi: -0.20, Rate: 0.90},
			{Lo: -0.20, Hi: 0.00, Rate: 0.60},
			{Lo: 0.00, Hi: 0.15, Rate: 0.35},
			{Lo: 0.15, Hi: 10, Rate: 0.10},
		},
	},
	{
		Name: "ebit_to_assets", Weight: 3.3, Default: 0.02,
		Bins: []Interval{
			{Lo: -10, Hi: -0.05, Rate: 0.80},
			{Lo: -0.05, Hi: 0.03, Rate: 0.50},
			{Lo: 0.03, Hi: 0.10, Rate: 0.25},
			{Lo: 0.10, Hi: 10, Rate: 0.08},
		},
	},
	{
		Name: "equity_to_liabilities", Weight: 0.6, Default: 0.40,
		Bins: []Interval{
			{Lo: 0, Hi: 0.30, Rate: 0.70},
			{Lo: 0.30, Hi: 0.80, Rate: 0.40},
			{Lo: 0.80, Hi: 2.00, Rate: 0.20},
			{Lo: 2.00, Hi: 100, Rate: 0.08},
		},
	},
	{
		Name: "sales_to_assets", Weight: 1.0, Default: 0.80,
		Bins: []Interval{
			{Lo: 0, Hi: 0.40, Rate: 0.60},
			{Lo: 0.40, Hi: 1.00, Rate: 0.35},
			{Lo: 1.00, Hi: 100, Rate: 0.15},
		},
	},
}

var quarterlyFeatures = []Feature{
	{
		Name: "working_capital_to_assets", Weight: 1.0, Default: 0.10,
		Bins: []Interval{
			{Lo: -10, Hi: -0.15, Rate: 0.85},
			{Lo: -0.15, Hi: 0.10, Rate: 0.50},
			{Lo: 0.10, Hi: 10, Rate: 0.15},
		},
	},
	{
		Name: "ebit_to_assets", Weight: 2.5, Default: 0.01,
		Bins: []Interval{
			{Lo: -10, Hi: -0.02, Rate: 0.80},
			{Lo: -0.02, Hi: 0.02, Rate: 0.45},
			{Lo: 0.02, Hi: 10, Rate: 0.12},
		},
	},
	{
		Name: "equity_to_liabilities", Weight: 1.2, Default: 0.40,
		Bins: []Interval{
			{Lo: 0, Hi: 0.25, Rate: 0.75},
			{Lo: 0.25, Hi: 1.00, Rate: 0.35},
			{Lo: 1.00, Hi: 100, Rate: 0.10},
		},
	},
	{
		Name: "quick_ratio", Weight: 0.8, Default: 0.90,
		Bins: []Interval{
			{Lo: 0, Hi: 0.50, Rate: 0.70},
			{Lo: 0.50, Hi: 1.20, Rate: 0.35},
			{Lo: 1.20, Hi: 100, Rate: 0.12},
		},
	},
}
