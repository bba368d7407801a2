package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/smallbiznis/qrbill/internal/config"
)

type stubBillService struct {
	response string
}

func (s stubBillService) Generate(ctx context.Context, payload string) string {
	return s.response
}

func newTestServer(t *testing.T, response string, rateLimit int) (*Server, *gin.Engine) {
	t.Helper()
	cfg := config.Config{
		ServiceName:     "qrbill",
		Environment:     "test",
		RateLimit:       rateLimit,
		RateLimitWindow: time.Minute,
	}
	srv := NewServer(Params{
		Config: cfg,
		Log:    zap.NewNop(),
		Bills:  stubBillService{response: response},
	})
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	srv.RegisterRoutes(engine)
	return srv, engine
}

func TestCreateQRBillReturnsOK(t *testing.T) {
	envelope := `{"result":"OK","invoice":"R-1","file":{"name":"QRBill_R-1.pdf","size":3,"qrbill":"YWJj"}}`
	_, engine := newTestServer(t, envelope, 0)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/qrbills", strings.NewReader(`{"invoice":"R-1"}`))
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != envelope {
		t.Fatalf("expected envelope echo, got %s", rec.Body.String())
	}
}

func TestCreateQRBillReturnsUnprocessable(t *testing.T) {
	envelope := `{"result":"ERROR","errors":[{"invoice":"'invoice' must contain the invoice number. It is mandatory."}]}`
	_, engine := newTestServer(t, envelope, 0)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/qrbills", strings.NewReader(`{}`))
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestCreateQRBillRateLimits(t *testing.T) {
	envelope := `{"result":"OK","invoice":"R-1"}`
	_, engine := newTestServer(t, envelope, 1)

	first := httptest.NewRecorder()
	engine.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/v1/qrbills", strings.NewReader(`{}`)))
	if first.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	engine.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/v1/qrbills", strings.NewReader(`{}`)))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", second.Code)
	}
}

func TestListGenerationsWithoutAudit(t *testing.T) {
	_, engine := newTestServer(t, `{"result":"OK"}`, 0)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/generations", nil))

	if rec.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501, got %d", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	_, engine := newTestServer(t, `{"result":"OK"}`, 0)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCreateQRBillLogsMaskedIBAN(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	orig := zap.L()
	zap.ReplaceGlobals(zap.New(core))
	defer zap.ReplaceGlobals(orig)

	envelope := `{"result":"OK","invoice":"R-1","iban":"CH44 3199 9123 0008 8901 2"}`
	_, engine := newTestServer(t, envelope, 0)

	traceID, _ := trace.TraceIDFromHex("0123456789abcdef0123456789abcdef")
	spanID, _ := trace.SpanIDFromHex("0123456789abcdef")
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID, TraceFlags: trace.FlagsSampled})

	req := httptest.NewRequest(http.MethodPost, "/v1/qrbills", strings.NewReader(`{"invoice":"R-1"}`))
	req = req.WithContext(trace.ContextWithSpanContext(req.Context(), sc))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	entries := logs.FilterMessage("qr bill generated").All()
	if len(entries) != 1 {
		t.Fatalf("expected one request log line, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["iban"] != "CH****9012" {
		t.Fatalf("expected masked iban, got %v", fields["iban"])
	}
	if fields["trace_id"] != traceID.String() {
		t.Fatalf("expected trace_id %q, got %v", traceID.String(), fields["trace_id"])
	}
}
