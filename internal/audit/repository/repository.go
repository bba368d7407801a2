package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/smallbiznis/qrbill/internal/audit/domain"
)

type generationRepository struct{}

// Provide constructs the gorm-backed repository.
func Provide() domain.Repository {
	return &generationRepository{}
}

func (r *generationRepository) Insert(ctx context.Context, db *gorm.DB, record *domain.GenerationRecord) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *generationRepository) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]*domain.GenerationRecord, error) {
	query := db.WithContext(ctx).Model(&domain.GenerationRecord{})
	if filter.InvoiceID != "" {
		query = query.Where("invoice_id = ?", filter.InvoiceID)
	}
	if filter.Result != "" {
		query = query.Where("result = ?", filter.Result)
	}
	if filter.StartAt != nil {
		query = query.Where("created_at >= ?", *filter.StartAt)
	}
	if filter.EndAt != nil {
		query = query.Where("created_at < ?", *filter.EndAt)
	}
	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	var records []*domain.GenerationRecord
	err := query.Order("created_at DESC, id DESC").Limit(limit).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
