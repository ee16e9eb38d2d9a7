package implementation

import (
	"context"
	"encoding/json"

	"mm-voicenote-be/internal/entity"
	"mm-voicenote-be/internal/pkg/apperrors"
	"mm-voicenote-be/internal/pkg/logger"
	"mm-voicenote-be/internal/repository/contract"
	"mm-voicenote-be/pkg/kv"
)

type ReportRepositoryImpl struct {
	store kv.Store
	log   logger.ILogger
}

func NewReportRepository(store kv.Store, log logger.ILogger) contract.ReportRepository {
	return &ReportRepositoryImpl{
		store: store,
		log:   log,
	}
}

func (r *ReportRepositoryImpl) List(ctx context.Context, userId string) ([]*entity.Report, error) {
	key := reportsKey(userId)
	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return []*entity.Report{}, nil
	}

	var reports []*entity.Report
	if err := json.Unmarshal([]byte(raw), &reports); err != nil {
		r.log.Warn("report_repository", "corrupt report list, returning empty", map[string]interface{}{
			"key":   key,
			"error": apperrors.CorruptData(key, err).Error(),
		})
		return []*entity.Report{}, nil
	}
	if reports == nil {
		reports = []*entity.Report{}
	}
	return reports, nil
}

func (r *ReportRepositoryImpl) Save(ctx context.Context, report *entity.Report) error {
	reports, err := r.List(ctx, report.UserId)
	if err != nil {
		return err
	}

	reports = append([]*entity.Report{report}, reports...)

	raw, err := json.Marshal(reports)
	if err != nil {
		return apperrors.StorageWrite(reportsKey(report.UserId), err)
	}
	if err := r.store.Set(ctx, reportsKey(report.UserId), string(raw)); err != nil {
		return apperrors.StorageWrite(reportsKey(report.UserId), err)
	}
	return nil
}
