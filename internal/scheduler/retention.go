// Package scheduler runs the periodic housekeeping of the service. Its only
// job today is trimming old generation records.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smallbiznis/qrbill/internal/clock"
)

const (
	sweepInterval = time.Hour
	retention     = 90 * 24 * time.Hour
)

// Scheduler deletes generation records past the retention horizon.
type Scheduler struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock

	cancel context.CancelFunc
	done   chan struct{}
}

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
}

func New(p Params) *Scheduler {
	return &Scheduler{
		db:    p.DB,
		log:   p.Log.Named("scheduler"),
		clock: p.Clock,
	}
}

// Start launches the hourly sweep loop.
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(ctx)
}

// Stop terminates the loop and waits for the in-flight sweep.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.SweepOnce(ctx); err != nil {
				s.log.Warn("retention sweep failed", zap.Error(err))
			}
		}
	}
}

// SweepOnce deletes records older than the retention horizon.
func (s *Scheduler) SweepOnce(ctx context.Context) error {
	horizon := s.clock.Now().Add(-retention)
	res := s.db.WithContext(ctx).
		Exec("DELETE FROM generation_records WHERE created_at < ?", horizon)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		s.log.Info("retention sweep", zap.Int64("deleted", res.RowsAffected))
	}
	return nil
}

var Module = fx.Module("scheduler",
	fx.Provide(New),
	fx.Invoke(func(lc fx.Lifecycle, s *Scheduler) {
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				s.Start()
				return nil
			},
			OnStop: func(context.Context) error {
				s.Stop()
				return nil
			},
		})
	}),
)
