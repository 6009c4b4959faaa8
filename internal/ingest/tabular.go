package ingest

import (
	"bytes"
	"encoding/csv"

	"github.com/xuri/excelize/v2"

	"github.com/openfinml/riskscore/internal/common"
	"github.com/openfinml/riskscore/internal/entity"
)

func parseCSV(data []byte) ([]entity.Row, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // ragged rows are padded per column below
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, common.WrapError(common.ErrValidation, "malformed CSV batch: "+err.Error())
	}
	return rowsFromRecords(records)
}

func parseXLSX(data []byte) ([]entity.Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, common.WrapError(common.ErrValidation, "malformed XLSX batch: "+err.Error())
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, common.WrapError(common.ErrValidation, "XLSX batch has no sheets")
	}
	// Rows come from the first sheet; extra sheets are ignored.
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, common.WrapError(common.ErrValidation, "read XLSX sheet: "+err.Error())
	}
	return rowsFromRecords(records)
}
