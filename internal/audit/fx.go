package audit

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/smallbiznis/qrbill/internal/audit/domain"
	"github.com/smallbiznis/qrbill/internal/audit/repository"
	"github.com/smallbiznis/qrbill/internal/audit/service"
)

var Module = fx.Module("audit.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
	fx.Invoke(func(conn *gorm.DB) error {
		return conn.AutoMigrate(&domain.GenerationRecord{})
	}),
)
