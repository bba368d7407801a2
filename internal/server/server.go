package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	auditdomain "github.com/smallbiznis/qrbill/internal/audit/domain"
	billdomain "github.com/smallbiznis/qrbill/internal/bill/domain"
	"github.com/smallbiznis/qrbill/internal/config"
	"github.com/smallbiznis/qrbill/internal/observability/logger"
	"github.com/smallbiznis/qrbill/internal/observability/metrics"
)

type Params struct {
	fx.In

	Config config.Config
	Log    *zap.Logger
	Bills  billdomain.Service
	Audit  auditdomain.Service `optional:"true"`
}

// Server carries the HTTP surface of the generator service.
type Server struct {
	cfg     config.Config
	log     *zap.Logger
	bills   billdomain.Service
	audit   auditdomain.Service
	limiter *rateLimiter
}

func NewServer(p Params) *Server {
	return &Server{
		cfg:     p.Config,
		log:     p.Log.Named("server"),
		bills:   p.Bills,
		audit:   p.Audit,
		limiter: newRateLimiter(p.Config.RateLimit, p.Config.RateLimitWindow),
	}
}

// NewEngine builds the gin engine with the shared middleware chain.
func NewEngine(cfg config.Config, log *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.GinMiddleware(logger.MiddlewareConfig{
		Logger:    log,
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	engine.Use(metrics.GinMiddleware(metrics.HTTPWithConfig(metrics.Config{
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
	})))
	return engine
}

// RegisterRoutes wires all endpoints onto the engine.
func (s *Server) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/healthz", s.Health)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := engine.Group("/v1")
	v1.POST("/qrbills", s.CreateQRBill)
	v1.GET("/generations", s.ListGenerations)
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RunHTTP starts the HTTP server under the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: engine,
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
