package repository

import (
	"context"

	"smart-summary-be/internal/entity"
)

type ReportRepository interface {
	// Archive Operations
	CreateReport(ctx context.Context, record *entity.ReportRecord) error
	GetReportsByUserID(ctx context.Context, userID string, limit, offset int) ([]entity.ReportRecord, int64, error)
	GetReportByID(ctx context.Context, userID string, id uint) (*entity.ReportRecord, error)
}
