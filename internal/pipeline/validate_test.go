package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfinml/riskscore/constants"
	"github.com/openfinml/riskscore/internal/entity"
)

var testDefaults = map[string]float64{
	"ebit_to_assets":        0.02,
	"equity_to_liabilities": 0.40,
}

func TestValidateRowAcceptsWellFormedRow(t *testing.T) {
	got, err := validateRow(constants.JobKindAnnual, testDefaults, entity.Row{
		Index:  0,
		Symbol: "acme",
		Period: "2025",
		Ratios: map[string]string{
			"ebit_to_assets":        "0.08",
			"equity_to_liabilities": "1.5",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "ACME", got.Symbol, "symbol is normalized to upper case")
	assert.Equal(t, 0.08, got.Vector["ebit_to_assets"])
	assert.Equal(t, 1.5, got.Vector["equity_to_liabilities"])
	assert.Empty(t, got.Warnings)
}

func TestValidateRowRejections(t *testing.T) {
	tests := []struct {
		name string
		kind constants.JobKind
		row  entity.Row
	}{
		{"empty symbol", constants.JobKindAnnual, entity.Row{Symbol: "  ", Period: "2025"}},
		{"bad annual period", constants.JobKindAnnual, entity.Row{Symbol: "ACME", Period: "2025-Q1"}},
		{"bad quarterly period", constants.JobKindQuarterly, entity.Row{Symbol: "ACME", Period: "2025"}},
		{"quarter out of range", constants.JobKindQuarterly, entity.Row{Symbol: "ACME", Period: "2025-Q5"}},
		{"non-numeric ratio", constants.JobKindAnnual, entity.Row{
			Symbol: "ACME", Period: "2025",
			Ratios: map[string]string{"ebit_to_assets": "lots"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateRow(tt.kind, testDefaults, tt.row)
			var rej *rejectionError
			require.ErrorAs(t, err, &rej)
		})
	}
}

func TestValidateRowSubstitutesDefaults(t *testing.T) {
	tests := []struct {
		name   string
		ratios map[string]string
	}{
		{"absent ratio", map[string]string{"equity_to_liabilities": "0.9"}},
		{"empty ratio", map[string]string{"ebit_to_assets": "", "equity_to_liabilities": "0.9"}},
		{"NaN substituted, not rejected", map[string]string{"ebit_to_assets": "NaN", "equity_to_liabilities": "0.9"}},
		{"Inf substituted, not rejected", map[string]string{"ebit_to_assets": "+Inf", "equity_to_liabilities": "0.9"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateRow(constants.JobKindAnnual, testDefaults, entity.Row{
				Symbol: "ACME", Period: "2024", Ratios: tt.ratios,
			})
			require.NoError(t, err)
			assert.Equal(t, testDefaults["ebit_to_assets"], got.Vector["ebit_to_assets"])
			assert.NotEmpty(t, got.Warnings)
		})
	}
}

func TestValidateRowQuarterlyPeriod(t *testing.T) {
	got, err := validateRow(constants.JobKindQuarterly, testDefaults, entity.Row{
		Symbol: "ACME", Period: " 2025-Q3 ",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-Q3", got.Period)
}
