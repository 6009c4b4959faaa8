// Package ingest normalizes uploaded batches (JSON, CSV, XLSX) into the
// row form the scoring pipeline consumes. Ingestion only checks the shape
// of the upload; per-row content validation happens in the pipeline so one
// bad row costs one row, not the batch.
package ingest

import (
	"path/filepath"
	"strings"

	"github.com/openfinml/riskscore/internal/common"
	"github.com/openfinml/riskscore/internal/entity"
)

// Format identifies the encoding of an uploaded batch.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DetectFormat resolves a format from an explicit hint or, failing that,
// the file extension.
func DetectFormat(hint, filename string) (Format, error) {
	candidate := strings.ToLower(strings.TrimSpace(hint))
	if candidate == "" {
		candidate = strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	}
	switch candidate {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "xlsx":
		return FormatXLSX, nil
	}
	return "", common.WrapError(common.ErrValidation, "unsupported batch format: "+candidate)
}

// Parse decodes data into pipeline rows. Row indices are assigned in file
// order starting at zero.
func Parse(format Format, data []byte) ([]entity.Row, error) {
	switch format {
	case FormatJSON:
		return parseJSON(data)
	case FormatCSV:
		return parseCSV(data)
	case FormatXLSX:
		return parseXLSX(data)
	}
	return nil, common.WrapError(common.ErrValidation, "unsupported batch format: "+string(format))
}

// columnSymbol and columnPeriod are the two reserved tabular headers; every
// other column is carried as a ratio under its normalized header name.
const (
	columnSymbol = "symbol"
	columnPeriod = "period"
)

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.ReplaceAll(h, " ", "_")
}

// rowsFromRecords converts a header row plus data records into rows.
// Entirely empty records are skipped without consuming a row index.
func rowsFromRecords(records [][]string) ([]entity.Row, error) {
	if len(records) == 0 {
		return nil, common.WrapError(common.ErrValidation, "batch has no header row")
	}

	header := records[0]
	symbolCol, periodCol := -1, -1
	ratioCols := make(map[int]string)
	for i, h := range header {
		switch name := normalizeHeader(h); name {
		case columnSymbol:
			symbolCol = i
		case columnPeriod:
			periodCol = i
		case "":
			// unnamed columns are ignored
		default:
			ratioCols[i] = name
		}
	}
	if symbolCol < 0 {
		return nil, common.WrapError(common.ErrValidation, "batch header is missing a symbol column")
	}
	if periodCol < 0 {
		return nil, common.WrapError(common.ErrValidation, "batch header is missing a period column")
	}

	rows := make([]entity.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		if isEmptyRecord(record) {
			continue
		}
		row := entity.Row{Index: len(rows), Ratios: make(map[string]string, len(ratioCols))}
		if symbolCol < len(record) {
			row.Symbol = strings.TrimSpace(record[symbolCol])
		}
		if periodCol < len(record) {
			row.Period = strings.TrimSpace(record[periodCol])
		}
		for col, name := range ratioCols {
			if col < len(record) {
				row.Ratios[name] = strings.TrimSpace(record[col])
			}
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, common.WrapError(common.ErrValidation, "batch has no data rows")
	}
	return rows, nil
}

func isEmptyRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
