package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smallbiznis/qrbill/internal/audit/domain"
	"github.com/smallbiznis/qrbill/internal/clock"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Node  *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type ServiceImpl struct {
	db    *gorm.DB
	log   *zap.Logger
	node  *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func NewService(p Params) domain.Service {
	return &ServiceImpl{
		db:    p.DB,
		log:   p.Log.Named("audit"),
		node:  p.Node,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

// Record persists a generation trace. Failures are logged, never surfaced:
// the audit trail must not break the generate call it describes.
func (s *ServiceImpl) Record(ctx context.Context, entry domain.Entry) error {
	record := &domain.GenerationRecord{
		ID:         s.node.Generate(),
		InvoiceID:  entry.InvoiceID,
		Result:     entry.Result,
		ErrorCount: entry.ErrorCount,
		Format:     entry.Format,
		OutputSize: entry.OutputSize,
		Appended:   entry.Appended,
		FileBytes:  entry.FileBytes,
		DurationMS: entry.DurationMS,
		CreatedAt:  s.clock.Now(),
	}
	if err := s.repo.Insert(ctx, s.db, record); err != nil {
		s.log.Warn("audit insert failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *ServiceImpl) Recent(ctx context.Context, limit int) ([]*domain.GenerationRecord, error) {
	return s.repo.List(ctx, s.db, domain.ListFilter{Limit: limit})
}
