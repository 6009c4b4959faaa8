package ingest

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/openfinml/riskscore/internal/common"
)

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		hint, filename string
		want           Format
		wantErr        bool
	}{
		{"json", "ignored.bin", FormatJSON, false},
		{"CSV", "", FormatCSV, false},
		{"", "ratios.xlsx", FormatXLSX, false},
		{"", "RATIOS.CSV", FormatCSV, false},
		{"", "upload.pdf", "", true},
		{"", "", "", true},
	}
	for _, tc := range cases {
		got, err := DetectFormat(tc.hint, tc.filename)
		if tc.wantErr {
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrValidation))
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestParseJSONBatch(t *testing.T) {
	data := []byte(`[
		{"symbol": "acme", "period": "2025", "ratios": {"EBIT to Assets": -0.2, "quick_ratio": "1.1"}},
		{"symbol": "GLOBEX", "period": "2025"}
	]`)

	rows, err := Parse(FormatJSON, data)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 0, rows[0].Index)
	assert.Equal(t, "acme", rows[0].Symbol)
	assert.Equal(t, "-0.2", rows[0].Ratios["ebit_to_assets"], "ratio keys are normalized, numbers keep their text")
	assert.Equal(t, "1.1", rows[0].Ratios["quick_ratio"])
	assert.Equal(t, "GLOBEX", rows[1].Symbol)
	assert.Empty(t, rows[1].Ratios)
}

func TestParseJSONBatchRejectsBadShapes(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not an array", `{"symbol": "ACME"}`},
		{"empty array", `[]`},
		{"missing period", `[{"symbol": "ACME"}]`},
		{"unknown field", `[{"symbol": "ACME", "period": "2025", "sector": "tech"}]`},
		{"truncated", `[{"symbol": "ACME", "period":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(FormatJSON, []byte(tc.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrValidation))
		})
	}
}

func TestParseCSVBatch(t *testing.T) {
	data := []byte("Symbol,Period,EBIT to Assets,sales_to_assets\n" +
		"ACME,2025,-0.2,1.4\n" +
		"\n" +
		"GLOBEX,2024,0.1,\n")

	rows, err := Parse(FormatCSV, data)
	require.NoError(t, err)
	require.Len(t, rows, 2, "blank lines do not consume row indices")
	assert.Equal(t, "ACME", rows[0].Symbol)
	assert.Equal(t, "2025", rows[0].Period)
	assert.Equal(t, "-0.2", rows[0].Ratios["ebit_to_assets"])
	assert.Equal(t, "1.4", rows[0].Ratios["sales_to_assets"])
	assert.Equal(t, 1, rows[1].Index)
	assert.Equal(t, "", rows[1].Ratios["sales_to_assets"], "empty cells pass through; the pipeline substitutes defaults")
}

func TestParseCSVBatchHeaderErrors(t *testing.T) {
	_, err := Parse(FormatCSV, []byte("ticker,period\nACME,2025\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "symbol")

	_, err = Parse(FormatCSV, []byte("symbol,year\nACME,2025\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "period")

	_, err = Parse(FormatCSV, []byte("symbol,period\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation), "header without data rows is rejected")
}

func TestParseXLSXBatch(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetList()[0]
	for i, record := range [][]any{
		{"symbol", "period", "ebit_to_assets"},
		{"ACME", "2025", -0.2},
		{"GLOBEX", "2024", 0.1},
	} {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &record))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	rows, err := Parse(FormatXLSX, buf.Bytes())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "ACME", rows[0].Symbol)
	assert.Equal(t, "-0.2", rows[0].Ratios["ebit_to_assets"])
	assert.Equal(t, "GLOBEX", rows[1].Symbol)
}

func TestParseXLSXBatchRejectsGarbage(t *testing.T) {
	_, err := Parse(FormatXLSX, []byte("not a zip archive"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))
}
