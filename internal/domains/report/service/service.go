package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Report=MockReportService

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel"
	"frontdesk/infras/s3"
	"frontdesk/internal/domains/report/model"
	"frontdesk/internal/domains/report/model/dto"
	"frontdesk/internal/domains/report/repository"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const archiveDirectory = "reports"

type Report interface {
	Timesheet(ctx context.Context, session backend.Session) (dto.TimesheetResponse, error)
	StartShift(ctx context.Context, session backend.Session, req dto.StartShiftRequest) (dto.ReportResponse, error)
	FinishShift(ctx context.Context, session backend.Session, id int64, req dto.FinishShiftRequest) (dto.ReportResponse, error)
	Payments(ctx context.Context, session backend.Session, period gDto.DateRange, groupBy model.GroupBy) (model.PaymentsReport, error)
	Archive(ctx context.Context, session backend.Session, period gDto.DateRange, groupBy model.GroupBy) (dto.ArchiveResponse, error)
}

type serviceImpl struct {
	repo repository.Report
	cfg  *config.Config
	otel otel.Otel
	s3   s3.S3
}

func New(repo repository.Report, cfg *config.Config, otel otel.Otel, s3 s3.S3) Report {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
		s3:   s3,
	}
}

func (s *serviceImpl) Timesheet(ctx context.Context, session backend.Session) (res dto.TimesheetResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Timesheet")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reports, err := s.repo.ListAll(ctx, session)
	if err != nil {
		log.Error().Err(err).Msg("failed to load timesheet")

		return res, err
	}

	return dto.ToTimesheetResponse(reports), nil
}

func (s *serviceImpl) StartShift(ctx context.Context, session backend.Session, req dto.StartShiftRequest) (res dto.ReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.StartShift")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	report, err := s.repo.Create(ctx, session, req.ToPayload())
	if err != nil {
		log.Error().Err(err).Int64("worker", req.Worker).Msg("failed to start shift")

		return res, err
	}

	return dto.ToReportResponse(report), nil
}

func (s *serviceImpl) FinishShift(ctx context.Context, session backend.Session, id int64, req dto.FinishShiftRequest) (res dto.ReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.FinishShift")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id <= 0 {
		return res, failure.BadRequestFromString("report id must be a positive integer")
	}

	report, err := s.repo.Finish(ctx, session, id, req.ToPayload())
	if err != nil {
		log.Error().Err(err).Int64("reportID", id).Msg("failed to finish shift")

		return res, err
	}

	return dto.ToReportResponse(report), nil
}

// Payments totals shift payments per day or per worker over period.
func (s *serviceImpl) Payments(ctx context.Context, session backend.Session, period gDto.DateRange, groupBy model.GroupBy) (res model.PaymentsReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Payments")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if groupBy == "" {
		groupBy = model.GroupByDate
	}

	if !groupBy.Valid() {
		return res, failure.BadRequestFromString("group_by must be date or worker")
	}

	reports, err := s.repo.ListAll(ctx, session)
	if err != nil {
		log.Error().Err(err).Str("period", period.String()).Msg("failed to load payments report")

		return res, err
	}

	return model.BuildPaymentsReport(reports, period, groupBy), nil
}

// Archive stores a JSON snapshot of the payments report in object storage.
func (s *serviceImpl) Archive(ctx context.Context, session backend.Session, period gDto.DateRange, groupBy model.GroupBy) (res dto.ArchiveResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Archive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	report, err := s.Payments(ctx, session, period, groupBy)
	if err != nil {
		return res, err
	}

	data, err := json.Marshal(report)
	if err != nil {
		return res, fmt.Errorf("failed to encode payments report: %w", err)
	}

	fileName := fmt.Sprintf("payments_%s_%s_%s.json", report.From, report.To, uuid.NewString())

	url, err := s.s3.UploadBytes(ctx, archiveDirectory, fileName, constant.ContentTypeJSON, data)
	if errors.Is(err, s3.ErrNotConfigured) {
		log.Warn().Str("file", fileName).Msg("payments report archive requested without object storage")

		return res, failure.Unavailable(err, "report archive storage is not configured")
	}

	if err != nil {
		log.Error().Err(err).Str("file", fileName).Msg("failed to archive payments report")

		return res, failure.Gateway(err, "failed to archive payments report")
	}

	return dto.ArchiveResponse{URL: url, Report: report}, nil
}
