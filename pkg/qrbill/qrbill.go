// Package qrbill exposes the generator as an embeddable library. The whole
// surface is one call: a JSON invoice description in, a JSON envelope out.
package qrbill

import (
	"context"

	"go.uber.org/zap"

	billdomain "github.com/smallbiznis/qrbill/internal/bill/domain"
	"github.com/smallbiznis/qrbill/internal/bill/render"
	"github.com/smallbiznis/qrbill/internal/bill/service"
	"github.com/smallbiznis/qrbill/internal/config"
)

// Generator produces QR bill graphics from JSON payloads. The zero value is
// not usable; build one with New.
type Generator struct {
	svc billdomain.Service
}

// Option customizes a Generator.
type Option func(*settings)

type settings struct {
	log           *zap.Logger
	renderer      render.Renderer
	platform      string
	defaultLocale string
}

// WithLogger routes the generator's logs to log instead of discarding them.
func WithLogger(log *zap.Logger) Option {
	return func(s *settings) { s.log = log }
}

// WithRenderer swaps the built-in renderer, mostly for tests.
func WithRenderer(r render.Renderer) Option {
	return func(s *settings) { s.renderer = r }
}

// WithPlatform overrides path normalization rules ("darwin", "windows",
// "linux") instead of following the host.
func WithPlatform(platform string) Option {
	return func(s *settings) { s.platform = platform }
}

// WithDefaultLocale sets the locale consulted when a payload names no
// language, e.g. "de_CH.UTF-8".
func WithDefaultLocale(locale string) Option {
	return func(s *settings) { s.defaultLocale = locale }
}

func New(opts ...Option) *Generator {
	s := settings{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.renderer == nil {
		s.renderer = render.NewRenderer(s.log)
	}
	svc := service.NewService(service.Params{
		Log:      s.log,
		Renderer: s.renderer,
		Config: config.Config{
			Platform:      s.platform,
			DefaultLocale: s.defaultLocale,
		},
	})
	return &Generator{svc: svc}
}

// Generate runs the pipeline on payload and returns the response envelope.
func (g *Generator) Generate(payload string) string {
	return g.svc.Generate(context.Background(), payload)
}

// GenerateContext is Generate with a caller-supplied context.
func (g *Generator) GenerateContext(ctx context.Context, payload string) string {
	return g.svc.Generate(ctx, payload)
}
