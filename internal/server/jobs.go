package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	jobspb "github.com/openfinml/riskscore/gen/proto/jobs/v1"

	"github.com/openfinml/riskscore/constants"
	"github.com/openfinml/riskscore/internal/common"
	"github.com/openfinml/riskscore/internal/entity"
	"github.com/openfinml/riskscore/internal/export"
	"github.com/openfinml/riskscore/internal/ingest"
	"github.com/openfinml/riskscore/internal/jobs"
)

type JobsService struct {
	jobspb.UnimplementedJobsServiceServer
	svc      *jobs.Service
	exporter *export.Service
	logger   *slog.Logger
}

func NewJobsService(svc *jobs.Service, exporter *export.Service, logger *slog.Logger) *JobsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobsService{svc: svc, exporter: exporter, logger: logger}
}

func (s *JobsService) SubmitJob(ctx context.Context, req *jobspb.SubmitJobRequest) (*jobspb.SubmitJobResponse, error) {
	identity, err := identityFromRequest(req)
	if err != nil {
		return nil, err
	}

	rows, err := s.batchRows(req)
	if err != nil {
		return nil, err
	}

	job, err := s.svc.Submit(ctx, jobs.SubmitRequest{
		Kind:     req.GetKind(),
		FileName: req.GetFileName(),
		Rows:     rows,
		Identity: identity,
	})
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error("submit failed", "file_name", req.GetFileName(), "err", err)
		return nil, status.Error(codes.Internal, "submit job failed")
	}

	return &jobspb.SubmitJobResponse{
		JobId:     job.ID.String(),
		State:     string(job.State),
		Lane:      string(job.Lane),
		TotalRows: int32(job.TotalRows),
	}, nil
}

// batchRows resolves the request's batch: inline rows win, otherwise the
// file bytes are parsed according to the format hint.
func (s *JobsService) batchRows(req *jobspb.SubmitJobRequest) ([]entity.Row, error) {
	if len(req.GetRows()) > 0 {
		rows := make([]entity.Row, len(req.GetRows()))
		for i, pb := range req.GetRows() {
			rows[i] = entity.Row{
				Index:  i,
				Symbol: pb.GetSymbol(),
				Period: pb.GetPeriod(),
				Ratios: pb.GetRatios(),
			}
		}
		return rows, nil
	}
	if len(req.GetFileContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "either rows or file_content is required")
	}
	format, err := ingest.DetectFormat(req.GetFileFormat(), req.GetFileName())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	rows, err := ingest.Parse(format, req.GetFileContent())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return rows, nil
}

func identityFromRequest(req *jobspb.SubmitJobRequest) (entity.Identity, error) {
	userID, err := uuid.Parse(strings.TrimSpace(req.GetUserId()))
	if err != nil {
		return entity.Identity{}, status.Error(codes.InvalidArgument, "user_id must be a UUID")
	}
	identity := entity.Identity{UserID: userID, Role: constants.Role(strings.ToUpper(strings.TrimSpace(req.GetRole())))}
	if identity.Role == "" {
		identity.Role = constants.RoleUser
	}
	if org := strings.TrimSpace(req.GetOrgId()); org != "" {
		orgID, err := uuid.Parse(org)
		if err != nil {
			return entity.Identity{}, status.Error(codes.InvalidArgument, "org_id must be a UUID")
		}
		identity.OrgID = &orgID
	}
	return identity, nil
}

func (s *JobsService) GetJobStatus(ctx context.Context, req *jobspb.GetJobStatusRequest) (*jobspb.GetJobStatusResponse, error) {
	jobID, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}

	st, err := s.svc.GetStatus(ctx, jobID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "job not found")
		}
		s.logger.Error("get status failed", "job_id", jobID, "err", err)
		return nil, status.Error(codes.Internal, "get job status failed")
	}

	job := st.Job
	resp := &jobspb.GetJobStatusResponse{
		JobId:          job.ID.String(),
		Kind:           string(job.Kind),
		State:          string(job.State),
		Lane:           string(job.Lane),
		TotalRows:      int32(job.TotalRows),
		ProcessedRows:  int32(job.ProcessedRows),
		SuccessfulRows: int32(job.SuccessfulRows),
		FailedRows:     int32(job.FailedRows),
		ProgressPct:    st.ProgressPct,
		SubmittedAt:    job.SubmittedAt.UTC().Format(time.RFC3339),
	}
	if job.FailReason != nil {
		resp.FailReason = *job.FailReason
	}
	if job.StartedAt != nil {
		resp.StartedAt = job.StartedAt.UTC().Format(time.RFC3339)
	}
	if job.FinishedAt != nil {
		resp.FinishedAt = job.FinishedAt.UTC().Format(time.RFC3339)
	}
	if st.ETA != nil {
		resp.EtaSeconds = int64(st.ETA.Seconds())
	}
	for _, re := range st.Errors {
		resp.Errors = append(resp.Errors, &jobspb.JobError{
			RowIndex: int32(re.RowIndex),
			Symbol:   re.Symbol,
			Message:  re.Message,
		})
	}
	return resp, nil
}

func (s *JobsService) CancelJob(ctx context.Context, req *jobspb.CancelJobRequest) (*jobspb.CancelJobResponse, error) {
	jobID, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}

	switch err := s.svc.Cancel(ctx, jobID); {
	case err == nil:
		return &jobspb.CancelJobResponse{Accepted: true}, nil
	case errors.Is(err, common.ErrTerminalState):
		return &jobspb.CancelJobResponse{Accepted: false, Reason: "job is already in a terminal state"}, nil
	case errors.Is(err, common.ErrNotFound):
		return nil, status.Error(codes.NotFound, "job not found")
	default:
		s.logger.Error("cancel failed", "job_id", jobID, "err", err)
		return nil, status.Error(codes.Internal, "cancel job failed")
	}
}

func (s *JobsService) DeleteJob(ctx context.Context, req *jobspb.DeleteJobRequest) (*jobspb.DeleteJobResponse, error) {
	jobID, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}

	switch err := s.svc.Delete(ctx, jobID); {
	case err == nil:
		return &jobspb.DeleteJobResponse{}, nil
	case errors.Is(err, common.ErrJobProcessing):
		return nil, common.FailedPreconditionError("job is processing; cancel it first")
	case errors.Is(err, common.ErrNotFound):
		return nil, status.Error(codes.NotFound, "job not found")
	default:
		s.logger.Error("delete failed", "job_id", jobID, "err", err)
		return nil, status.Error(codes.Internal, "delete job failed")
	}
}

func (s *JobsService) ExportPredictions(ctx context.Context, req *jobspb.ExportPredictionsRequest) (*jobspb.ExportPredictionsResponse, error) {
	jobID, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}

	content, name, err := s.exporter.PredictionsXLSX(ctx, jobID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		s.logger.Error("export failed", "job_id", jobID, "err", err)
		return nil, status.Error(codes.Internal, "export predictions failed")
	}
	return &jobspb.ExportPredictionsResponse{Content: content, FileName: name}, nil
}

func parseJobID(raw string) (uuid.UUID, error) {
	jobID, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}
	return jobID, nil
}
