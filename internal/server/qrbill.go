package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	auditdomain "github.com/smallbiznis/qrbill/internal/audit/domain"
	billdomain "github.com/smallbiznis/qrbill/internal/bill/domain"
	"github.com/smallbiznis/qrbill/internal/observability/logger"
)

// CreateQRBill takes the raw request body as the generate payload and maps
// the envelope result onto the HTTP status: 200 for OK, 422 for ERROR.
func (s *Server) CreateQRBill(c *gin.Context) {
	if !s.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate_limit_exceeded"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable_body"})
		return
	}

	started := time.Now()
	raw := s.bills.Generate(c.Request.Context(), string(body))

	var resp billdomain.Response
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		s.log.Error("generate returned malformed envelope", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	s.recordAudit(c, resp, time.Since(started))

	// Trace ids come from the request context; account data is masked.
	logger.FromContext(c.Request.Context()).Info("qr bill generated",
		zap.String("invoice", resp.Invoice),
		zap.String("result", resp.Result),
		zap.String("iban", logger.MaskIBAN(resp.IBAN)),
		zap.Int("errors", len(resp.Errors)),
		zap.Duration("duration", time.Since(started)),
	)

	status := http.StatusOK
	if resp.Result != billdomain.ResultOK {
		status = http.StatusUnprocessableEntity
	}
	c.Data(status, "application/json", []byte(raw))
}

func (s *Server) recordAudit(c *gin.Context, resp billdomain.Response, elapsed time.Duration) {
	if s.audit == nil {
		return
	}

	entry := auditdomain.Entry{
		InvoiceID:  resp.Invoice,
		Result:     resp.Result,
		ErrorCount: len(resp.Errors),
		DurationMS: elapsed.Milliseconds(),
	}
	if resp.Form != nil {
		entry.Format = resp.Form.GraphicsFormat
		entry.OutputSize = resp.Form.OutputSize
	}
	if resp.Path != nil {
		entry.Appended = resp.Path.Invoice != ""
	}
	if resp.File != nil {
		entry.FileBytes = resp.File.Size
	}
	if err := s.audit.Record(c.Request.Context(), entry); err != nil {
		s.log.Warn("audit record failed", zap.Error(err))
	}
}

// ListGenerations returns recent generation records, newest first.
func (s *Server) ListGenerations(c *gin.Context) {
	if s.audit == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "audit_disabled"})
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_limit"})
			return
		}
		limit = n
	}

	records, err := s.audit.Recent(c.Request.Context(), limit)
	if err != nil {
		s.log.Error("list generations failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"generations": records})
}
