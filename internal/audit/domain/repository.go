package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type ListFilter struct {
	InvoiceID string
	Result    string
	StartAt   *time.Time
	EndAt     *time.Time
	Limit     int
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, record *GenerationRecord) error
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]*GenerationRecord, error)
}
