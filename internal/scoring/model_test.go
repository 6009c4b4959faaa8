package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfinml/riskscore/constants"
)

func TestRateFor(t *testing.T) {
	bins := []Interval{
		{Lo: 0, Hi: 1, Rate: 0.8},
		{Lo: 1, Hi: 2, Rate: 0.5},
		{Lo: 2, Hi: 3, Rate: 0.2},
	}

	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"inside first bin", 0.5, 0.8},
		{"inside middle bin", 1.0, 0.5},
		{"upper bound is exclusive", 2.0, 0.2},
		{"below all bins takes nearest", -5, 0.8},
		{"above all bins takes nearest", 42, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rateFor(bins, tt.value))
		})
	}
}

func TestScoreClassifications(t *testing.T) {
	m := NewModel([]Feature{
		{Name: "ratio", Weight: 1, Default: 0.5, Bins: []Interval{
			{Lo: 0, Hi: 1, Rate: 0.9},
			{Lo: 1, Hi: 2, Rate: 0.4},
			{Lo: 2, Hi: 3, Rate: 0.05},
		}},
	}, 0.2, 0.6)

	high, err := m.Score(map[string]float64{"ratio": 0.5})
	require.NoError(t, err)
	assert.Equal(t, ClassHighRisk, high.Classification)
	assert.InDelta(t, 0.9, high.Probability, 1e-9)

	mid, err := m.Score(map[string]float64{"ratio": 1.5})
	require.NoError(t, err)
	assert.Equal(t, ClassMediumRisk, mid.Classification)

	low, err := m.Score(map[string]float64{"ratio": 2.5})
	require.NoError(t, err)
	assert.Equal(t, ClassLowRisk, low.Classification)
	assert.Greater(t, low.Confidence, 0.0)
}

func TestScoreSubstitutesDefaultForAbsentFeature(t *testing.T) {
	m := ModelFor(constants.JobKindAnnual)

	got, err := m.Score(map[string]float64{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.Probability, 0.0)
	assert.LessOrEqual(t, got.Probability, 1.0)
	assert.NotEmpty(t, got.Classification)
}

func TestScoreRejectsNonFiniteInput(t *testing.T) {
	m := ModelFor(constants.JobKindQuarterly)

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := m.Score(map[string]float64{"ebit_to_assets": bad})
		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "ebit_to_assets", invalid.Feature)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	m := ModelFor(constants.JobKindAnnual)
	vector := map[string]float64{
		"working_capital_to_assets":   -0.2,
		"retained_earnings_to_assets": -0.3,
		"ebit_to_assets":              -0.1,
		"equity_to_liabilities":       0.1,
		"sales_to_assets":             0.2,
	}

	first, err := m.Score(vector)
	require.NoError(t, err)
	second, err := m.Score(vector)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, ClassHighRisk, first.Classification)
}
