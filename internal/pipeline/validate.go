package pipeline

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/openfinml/riskscore/constants"
	"github.com/openfinml/riskscore/internal/entity"
)

var (
	annualPeriodRe    = regexp.MustCompile(`^\d{4}$`)
	quarterlyPeriodRe = regexp.MustCompile(`^\d{4}-Q[1-4]$`)
)

// validatedRow is a row that passed validation: symbol and period are
// well-formed and Vector holds only finite numbers, with the model's default
// substituted for absent or non-finite ratios.
type validatedRow struct {
	Symbol   string
	Period   string
	Vector   map[string]float64
	Warnings []string
}

// rejectionError carries the reason a single row was rejected. It never
// escapes the pipeline as a job-level error.
type rejectionError struct {
	reason string
}

func (e *rejectionError) Error() string { return e.reason }

func rejectf(format string, args ...any) error {
	return &rejectionError{reason: fmt.Sprintf(format, args...)}
}

// validateRow checks the natural key and period, and parses the ratios the
// model expects. Unparseable text rejects the row; an absent value or a
// parseable-but-non-finite one (NaN, Inf) is substituted with the model
// default and recorded as a warning, so it never reaches the scorer.
func validateRow(kind constants.JobKind, defaults map[string]float64, row entity.Row) (validatedRow, error) {
	symbol := strings.ToUpper(strings.TrimSpace(row.Symbol))
	if symbol == "" {
		return validatedRow{}, rejectf("missing company symbol")
	}

	period := strings.TrimSpace(row.Period)
	switch kind {
	case constants.JobKindAnnual:
		if !annualPeriodRe.MatchString(period) {
			return validatedRow{}, rejectf("period %q is not a valid annual period (want YYYY)", period)
		}
	case constants.JobKindQuarterly:
		if !quarterlyPeriodRe.MatchString(period) {
			return validatedRow{}, rejectf("period %q is not a valid quarterly period (want YYYY-Qn)", period)
		}
	default:
		return validatedRow{}, rejectf("unknown job kind %q", kind)
	}

	out := validatedRow{
		Symbol: symbol,
		Period: period,
		Vector: make(map[string]float64, len(defaults)),
	}
	for name, def := range defaults {
		raw, present := row.Ratios[name]
		raw = strings.TrimSpace(raw)
		if !present || raw == "" {
			out.Vector[name] = def
			out.Warnings = append(out.Warnings, fmt.Sprintf("ratio %s absent, substituted default %v", name, def))
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return validatedRow{}, rejectf("ratio %s: %q is not numeric", name, raw)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			out.Vector[name] = def
			out.Warnings = append(out.Warnings, fmt.Sprintf("ratio %s non-finite, substituted default %v", name, def))
			continue
		}
		out.Vector[name] = value
	}
	return out, nil
}
