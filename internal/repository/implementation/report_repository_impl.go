package implementation

import (
	"context"
	"errors"

	"smart-summary-be/internal/entity"
	"smart-summary-be/internal/repository"

	"gorm.io/gorm"
)

type ReportRepositoryImpl struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &ReportRepositoryImpl{db: db}
}

func (r *ReportRepositoryImpl) CreateReport(ctx context.Context, record *entity.ReportRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *ReportRepositoryImpl) GetReportsByUserID(ctx context.Context, userID string, limit, offset int) ([]entity.ReportRecord, int64, error) {
	var records []entity.ReportRecord
	var total int64

	db := r.db.WithContext(ctx).Model(&entity.ReportRecord{}).Where("user_id = ?", userID)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// The list view never needs the archived payloads
	err := db.Omit("request", "response").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error

	return records, total, err
}

func (r *ReportRepositoryImpl) GetReportByID(ctx context.Context, userID string, id uint) (*entity.ReportRecord, error) {
	var record entity.ReportRecord
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
