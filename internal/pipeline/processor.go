package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/openfinml/riskscore/constants"
	"github.com/openfinml/riskscore/internal/common"
	"github.com/openfinml/riskscore/internal/entity"
	"github.com/openfinml/riskscore/internal/repository"
	"github.com/openfinml/riskscore/internal/scoring"
)

// Scorer maps a validated feature vector to a risk result. *scoring.Model
// satisfies it; tests substitute their own.
type Scorer interface {
	Features() map[string]float64
	Score(vector map[string]float64) (scoring.Result, error)
}

// Processor runs one row through validate -> score -> upsert company ->
// upsert prediction. The terminal states are an OK or rejected RowOutcome;
// recording the outcome against the job belongs to the worker, which owns
// progress and finalization.
type Processor struct {
	logger      *slog.Logger
	companies   repository.CompanyRepository
	predictions repository.PredictionRepository
	scorerFor   func(constants.JobKind) Scorer
}

type Option func(*Processor)

// WithScorerFor overrides how the scoring model is resolved per job kind.
func WithScorerFor(f func(constants.JobKind) Scorer) Option {
	return func(p *Processor) {
		if f != nil {
			p.scorerFor = f
		}
	}
}

func NewProcessor(
	logger *slog.Logger,
	companies repository.CompanyRepository,
	predictions repository.PredictionRepository,
	opts ...Option,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Processor{
		logger:      logger,
		companies:   companies,
		predictions: predictions,
		scorerFor:   func(kind constants.JobKind) Scorer { return scoring.ModelFor(kind) },
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// ProcessRow executes the per-row pipeline for one row of job. A non-nil
// error is a job-level fatal condition (storage unreachable) and means the
// outcome was not reached; rejection of the row itself comes back as a
// failed outcome with a nil error.
func (p *Processor) ProcessRow(ctx context.Context, job *entity.Job, row entity.Row) (repository.RowOutcome, error) {
	reject := func(msg string) repository.RowOutcome {
		return repository.RowOutcome{RowIndex: row.Index, OK: false, Symbol: row.Symbol, Message: msg}
	}

	model := p.scorerFor(job.Kind)
	validated, err := validateRow(job.Kind, model.Features(), row)
	if err != nil {
		var rej *rejectionError
		if errors.As(err, &rej) {
			return reject(rej.reason), nil
		}
		return repository.RowOutcome{}, err
	}
	for _, w := range validated.Warnings {
		p.logger.Debug("row validation warning", "job_id", job.ID, "row_index", row.Index, "warning", w)
	}

	result, err := model.Score(validated.Vector)
	if err != nil {
		// Scoring failures are row-level by contract: only this row is lost.
		p.logger.Warn("scoring failed", "job_id", job.ID, "row_index", row.Index, "symbol", validated.Symbol, "err", err)
		return reject("scoring: " + err.Error()), nil
	}

	identity := job.Owner()
	tier := entity.AccessScopeFor(identity)
	scopeKey := entity.ScopeKeyFor(tier, identity)

	companyID, err := p.companies.ResolveOrCreate(ctx, validated.Symbol, "", tier, scopeKey)
	if err != nil {
		return repository.RowOutcome{}, common.WrapError(common.ErrFatal, "resolve company: "+err.Error())
	}

	jobID := job.ID
	if _, err := p.predictions.Upsert(ctx, &entity.Prediction{
		CompanyID:      companyID,
		Period:         validated.Period,
		ScopeKey:       scopeKey,
		JobID:          &jobID,
		Probability:    result.Probability,
		Classification: result.Classification,
		Confidence:     result.Confidence,
	}); err != nil {
		return repository.RowOutcome{}, common.WrapError(common.ErrFatal, "upsert prediction: "+err.Error())
	}

	return repository.RowOutcome{RowIndex: row.Index, OK: true, Symbol: validated.Symbol}, nil
}
