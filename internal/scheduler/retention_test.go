package scheduler

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	auditdomain "github.com/smallbiznis/qrbill/internal/audit/domain"
	"github.com/smallbiznis/qrbill/internal/clock"
)

func setupSchedulerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&auditdomain.GenerationRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM generation_records")
	})
	return db
}

func TestSweepOnceDeletesExpiredRecords(t *testing.T) {
	db := setupSchedulerTestDB(t)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	fresh := auditdomain.GenerationRecord{ID: 1, InvoiceID: "R-new", Result: "OK", CreatedAt: now.Add(-24 * time.Hour)}
	stale := auditdomain.GenerationRecord{ID: 2, InvoiceID: "R-old", Result: "OK", CreatedAt: now.Add(-retention - time.Hour)}
	if err := db.Create(&fresh).Error; err != nil {
		t.Fatalf("insert fresh: %v", err)
	}
	if err := db.Create(&stale).Error; err != nil {
		t.Fatalf("insert stale: %v", err)
	}

	s := &Scheduler{db: db, log: zap.NewNop(), clock: clock.Fixed(now)}
	if err := s.SweepOnce(context.Background()); err != nil {
		t.Fatalf("sweep: %v", err)
	}

	var remaining []auditdomain.GenerationRecord
	if err := db.Find(&remaining).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(remaining) != 1 || remaining[0].InvoiceID != "R-new" {
		t.Fatalf("unexpected survivors: %+v", remaining)
	}
}
