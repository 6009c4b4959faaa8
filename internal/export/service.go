package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/openfinml/riskscore/internal/common"
	"github.com/openfinml/riskscore/internal/repository"
)

// Service produces XLSX bytes from a job's recorded predictions.
type Service struct {
	registry    repository.JobRepository
	predictions repository.PredictionRepository
	logger      *slog.Logger
}

func NewService(registry repository.JobRepository, predictions repository.PredictionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{registry: registry, predictions: predictions, logger: logger}
}

// PredictionsXLSX returns an XLSX workbook of the job's predictions plus a
// suggested file name.
func (s *Service) PredictionsXLSX(ctx context.Context, jobID uuid.UUID) ([]byte, string, error) {
	start := time.Now()

	job, err := s.registry.GetByID(ctx, jobID)
	if err != nil {
		return nil, "", err
	}
	preds, err := s.predictions.ListByJob(ctx, jobID)
	if err != nil {
		return nil, "", fmt.Errorf("query predictions: %w", err)
	}
	if len(preds) == 0 {
		return nil, "", common.WrapError(common.ErrNotFound, "job has no recorded predictions")
	}

	f := excelize.NewFile()
	const sheet = "Predictions"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", err
	}

	headers := []string{"Symbol", "Period", "Probability", "Classification", "Confidence", "Updated At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", err
		}
	}
	for rowIdx, p := range preds {
		values := []any{p.Symbol, p.Period, p.Probability, p.Classification, p.Confidence, p.UpdatedAt.UTC().Format(time.RFC3339)}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}

	name := fmt.Sprintf("predictions-%s-%s.xlsx", job.Kind, jobID)
	s.logger.Info("predictions exported",
		"job_id", jobID, "rows", len(preds), "bytes", buf.Len(), "took", time.Since(start))
	return buf.Bytes(), name, nil
}
