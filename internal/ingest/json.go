package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/openfinml/riskscore/internal/common"
	"github.com/openfinml/riskscore/internal/entity"
)

// batchSchema is the shape contract for JSON uploads: a non-empty array of
// row objects, each with a symbol, a period and an optional ratios object.
var batchSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type":     "object",
		"required": []any{"symbol", "period"},
		"properties": map[string]any{
			"symbol": map[string]any{"type": "string"},
			"period": map[string]any{"type": "string"},
			"ratios": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": []any{"number", "string"}},
			},
		},
		"additionalProperties": false,
	},
}

var compiledBatchSchema = mustCompileSchema(batchSchema)

func mustCompileSchema(schemaMap map[string]any) *jsonschema.Schema {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		panic(fmt.Sprintf("marshal schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("batch.json", bytes.NewReader(b)); err != nil {
		panic(fmt.Sprintf("add schema: %v", err))
	}
	schema, err := compiler.Compile("batch.json")
	if err != nil {
		panic(fmt.Sprintf("compile schema: %v", err))
	}
	return schema
}

type jsonRow struct {
	Symbol string         `json:"symbol"`
	Period string         `json:"period"`
	Ratios map[string]any `json:"ratios"`
}

func parseJSON(data []byte) ([]entity.Row, error) {
	var generic any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&generic); err != nil {
		return nil, common.WrapError(common.ErrValidation, "malformed JSON batch: "+err.Error())
	}
	if err := compiledBatchSchema.Validate(generic); err != nil {
		return nil, common.WrapError(common.ErrValidation, "batch does not match schema: "+err.Error())
	}

	var decoded []jsonRow
	rowDecoder := json.NewDecoder(bytes.NewReader(data))
	rowDecoder.UseNumber() // keeps ratio numbers as their source text
	if err := rowDecoder.Decode(&decoded); err != nil {
		return nil, common.WrapError(common.ErrValidation, "malformed JSON batch: "+err.Error())
	}

	rows := make([]entity.Row, len(decoded))
	for i, jr := range decoded {
		row := entity.Row{
			Index:  i,
			Symbol: strings.TrimSpace(jr.Symbol),
			Period: strings.TrimSpace(jr.Period),
			Ratios: make(map[string]string, len(jr.Ratios)),
		}
		for name, value := range jr.Ratios {
			row.Ratios[normalizeHeader(name)] = ratioText(value)
		}
		rows[i] = row
	}
	return rows, nil
}

// ratioText renders a JSON ratio value as text for the pipeline's parser,
// which owns numeric validation.
func ratioText(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
