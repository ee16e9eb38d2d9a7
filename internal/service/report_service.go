package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mm-voicenote-be/internal/dto"
	"mm-voicenote-be/internal/entity"
	"mm-voicenote-be/internal/pkg/apperrors"
	"mm-voicenote-be/internal/pkg/logger"
	"mm-voicenote-be/internal/repository/contract"
	"mm-voicenote-be/pkg/events"
	"mm-voicenote-be/pkg/gemini"
)

type IReportService interface {
	// Generate synthesizes a report over all of the user's notes. Requires
	// at least one note; the check runs before any gateway call.
	Generate(ctx context.Context, userId string, req *dto.GenerateReportRequest) (*entity.Report, error)
	List(ctx context.Context, userId string) ([]*entity.Report, error)
}

type reportService struct {
	noteRepo         contract.NoteRepository
	reportRepo       contract.ReportRepository
	gateway          gemini.Gateway
	publisherService IPublisherService
	log              logger.ILogger
}

func NewReportService(
	noteRepo contract.NoteRepository,
	reportRepo contract.ReportRepository,
	gateway gemini.Gateway,
	publisherService IPublisherService,
	log logger.ILogger,
) IReportService {
	return &reportService{
		noteRepo:         noteRepo,
		reportRepo:       reportRepo,
		gateway:          gateway,
		publisherService: publisherService,
		log:              log,
	}
}

func (s *reportService) Generate(ctx context.Context, userId string, req *dto.GenerateReportRequest) (*entity.Report, error) {
	if !req.Period.Valid() {
		return nil, apperrors.Validation("period must be daily, weekly or monthly")
	}

	notes, err := s.noteRepo.List(ctx, userId)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, apperrors.Validation("at least one note is required to generate a report")
	}

	analysis, err := s.gateway.GenerateReport(ctx, notes, req.Period)
	if err != nil {
		// No partial report is saved on gateway failure.
		return nil, err
	}

	report := &entity.Report{
		Id:              uuid.NewString(),
		UserId:          userId,
		Period:          req.Period,
		NoteCount:       len(notes), // snapshot at generation time
		TopTopics:       analysis.TopTopics,
		Insights:        analysis.Insights,
		Recommendations: analysis.Recommendations,
		Timestamp:       time.Now().UnixMilli(),
	}

	if err := s.reportRepo.Save(ctx, report); err != nil {
		return nil, err
	}

	evt := events.BaseEvent{
		Type: events.TypeReportGenerated,
		Data: map[string]interface{}{
			"report_id":  report.Id,
			"user_id":    userId,
			"period":     string(report.Period),
			"note_count": report.NoteCount,
		},
		OccurredAt: time.Now(),
	}
	if err := s.publisherService.Publish(ctx, evt); err != nil {
		s.log.Warn("report_service", "failed to publish event", map[string]interface{}{
			"event": events.TypeReportGenerated,
			"error": err.Error(),
		})
	}

	return report, nil
}

func (s *reportService) List(ctx context.Context, userId string) ([]*entity.Report, error) {
	return s.reportRepo.List(ctx, userId)
}
