package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/smallbiznis/qrbill/internal/bill/domain"
	"github.com/smallbiznis/qrbill/internal/bill/render"
	"github.com/smallbiznis/qrbill/internal/config"
	"github.com/smallbiznis/qrbill/internal/observability/metrics"
	"github.com/smallbiznis/qrbill/internal/platform"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Renderer render.Renderer
	Config   config.Config
	Metrics  *metrics.GeneratorMetrics `optional:"true"`
}

// ServiceImpl assembles billing records from raw request JSON and drives
// the render or append pathway. All per-call state lives on the stack; the
// service itself is safe to share.
type ServiceImpl struct {
	log           *zap.Logger
	renderer      render.Renderer
	platform      platform.Platform
	defaultLocale string
	metrics       *metrics.GeneratorMetrics
}

func NewService(p Params) domain.Service {
	plat := platform.Current()
	if p.Config.Platform != "" {
		plat = platform.Platform(p.Config.Platform)
	}
	return &ServiceImpl{
		log:           p.Log.Named("bill.service"),
		renderer:      p.Renderer,
		platform:      plat,
		defaultLocale: p.Config.DefaultLocale,
		metrics:       p.Metrics,
	}
}

// Generate runs the full pipeline and serializes the response envelope.
// Every documented failure ends up inside the envelope; only failures
// outside the taxonomy (marshalling the envelope itself) escape via panic.
func (s *ServiceImpl) Generate(ctx context.Context, payload string) string {
	start := time.Now()
	resp := s.generate(ctx, payload)

	s.metrics.ObserveGenerate(resp.Result, len(resp.Errors), fileSize(resp.File), time.Since(start))
	s.log.Info("generate finished",
		zap.String("invoice", resp.Invoice),
		zap.String("result", resp.Result),
		zap.Int("errors", len(resp.Errors)),
		zap.Duration("duration", time.Since(start)),
	)

	out, err := json.Marshal(resp)
	if err != nil {
		panic(fmt.Sprintf("bill: marshal response: %v", err))
	}
	return string(out)
}

func (s *ServiceImpl) generate(ctx context.Context, payload string) domain.Response {
	agg := &aggregator{}
	resp := domain.Response{}

	root, err := parsePayload(payload)
	if err != nil {
		// The one case where processing stops before field validation.
		agg.add(keyParameter, msgParameterUnreadable)
		return errorResponse(resp, agg)
	}

	invoiceID, ok := root.text("invoice")
	if !ok {
		agg.add(keyInvoice, msgInvoiceMandatory)
		return errorResponse(resp, agg)
	}
	resp.Invoice = invoiceID

	record := domain.BillingRecord{InvoiceID: invoiceID}
	resolver := pathResolver{platform: s.platform}
	pathsNode, _ := root.child("path")

	var outputPath string
	if raw, ok := pathsNode.text("output"); ok {
		resolved, err := resolver.resolveForWrite(raw)
		if err != nil {
			agg.add("path.output", msgOutputPath)
		} else {
			outputPath = resolved
		}
	} else {
		agg.add("path.output", msgOutputPath)
	}

	var invoicePath string
	hasInvoiceTarget := pathsNode.has("invoice")
	if raw, ok := pathsNode.text("invoice"); ok {
		resolved, err := resolver.resolve(raw)
		if err != nil {
			agg.add("path.invoice", msgInvoicePath)
		} else {
			invoicePath = resolved
		}
	}
	if outputPath != "" || invoicePath != "" {
		resp.Path = &domain.PathInfo{Output: outputPath, Invoice: invoicePath}
	}

	formNode, _ := root.child("form")
	record.Format.Language = guessLanguage(formNode, s.defaultLocale)
	if format, ok := selectGraphicsFormat(formNode); ok {
		record.Format.GraphicsFormat = format
	} else {
		agg.add("form.graphics_format", graphicsFormatMessage())
	}
	if size, ok := selectOutputSize(formNode, hasInvoiceTarget); ok {
		record.Format.OutputSize = size
	} else {
		agg.add("form.output_size", outputSizeMessage())
	}
	resp.Form = &domain.FormInfo{
		Language:       string(record.Format.Language),
		GraphicsFormat: string(record.Format.GraphicsFormat),
		OutputSize:     string(record.Format.OutputSize),
	}

	// Entity fields, in fixed order. Currency falls back to CHF instead
	// of erroring; amounts are only attached when strictly positive.
	currency, ok := root.text("currency")
	if !ok || (currency != "CHF" && currency != "EUR") {
		currency = "CHF"
	}
	record.Currency = currency
	resp.Currency = currency

	if amount, ok := root.number("amount"); ok && amount.IsPositive() {
		record.Amount = &amount
		resp.Amount = &amount
	}

	if iban, ok := root.text("iban"); ok {
		record.Account = iban
		resp.IBAN = iban
	} else {
		agg.add(invoiceID, msgIBAN)
	}

	record.Creditor = extractParty(root, "creditor", creditorFields, agg, invoiceID)
	resp.Creditor = &record.Creditor

	if root.has("debtor") {
		debtor := extractParty(root, "debtor", debtorFields, agg, invoiceID)
		record.Debtor = &debtor
		resp.Debtor = &debtor
	}

	if message, ok := root.verbatim("message"); ok {
		record.Message = message
		resp.Message = message
	}

	// Reference resolution is skipped when the IBAN itself was rejected.
	record.ReferenceKind = domain.ReferenceKindNone
	if record.Account != "" {
		resolved, ok := resolveReference(record.Account, root)
		if !ok {
			agg.add(invoiceID, msgReference)
		} else {
			record.ReferenceKind = resolved.kind
			record.Reference = resolved.value
			if resolved.kind != domain.ReferenceKindNone {
				resp.Reference = resolved.value
			}
		}
	}

	// Collaborator validation merges into the same aggregator.
	for _, issue := range s.renderer.Validate(record) {
		agg.add(invoiceID, issue.Message)
	}

	if agg.hasErrors() {
		return errorResponse(resp, agg)
	}

	s.dispatch(ctx, record, outputPath, invoicePath, &resp, agg)
	if agg.hasErrors() {
		return errorResponse(resp, agg)
	}
	resp.Result = domain.ResultOK
	return resp
}

// dispatch runs the append or render-new pathway and persists the result.
// I/O failures here are a distinct failure class from validation: the bill
// was valid, the response still becomes ERROR.
func (s *ServiceImpl) dispatch(ctx context.Context, record domain.BillingRecord, outputPath, invoicePath string, resp *domain.Response, agg *aggregator) {
	invoiceID := record.InvoiceID
	format := record.Format.GraphicsFormat

	var data []byte
	if invoicePath != "" {
		// The append pathway always emits a PDF, whatever format the
		// form asked for.
		format = domain.GraphicsFormatPDF
		if _, err := os.Stat(invoicePath); err != nil {
			agg.add(invoiceID, fmt.Sprintf(msgSourceMissing, invoicePath))
			return
		}
		source, err := os.ReadFile(invoicePath)
		if err != nil {
			agg.add(invoiceID, msgSourceOpen)
			return
		}
		combined, err := s.renderer.Append(record, source)
		if err != nil {
			s.log.Warn("append failed", zap.String("invoice", invoiceID), zap.Error(err))
			agg.add(invoiceID, msgSourceOpen)
			return
		}
		data = combined
	} else {
		rendered, err := s.renderer.Render(record)
		if err != nil {
			s.log.Warn("render failed", zap.String("invoice", invoiceID), zap.Error(err))
			agg.add(invoiceID, fmt.Sprintf(msgTargetWrite, outputPath))
			return
		}
		data = rendered
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		agg.add(invoiceID, fmt.Sprintf(msgTargetWrite, outputPath))
		return
	}

	resp.File = &domain.FileInfo{
		Name:   fmt.Sprintf("QRBill_%s.%s", invoiceID, format.Extension()),
		Size:   len(data),
		QRBill: data,
	}
}

func errorResponse(resp domain.Response, agg *aggregator) domain.Response {
	resp.Result = domain.ResultError
	resp.File = nil
	resp.Errors = agg.list()
	return resp
}

func fileSize(file *domain.FileInfo) int {
	if file == nil {
		return 0
	}
	return file.Size
}
