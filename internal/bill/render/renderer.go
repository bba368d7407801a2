// Package render implements the rendering collaborator of the generate
// pipeline: semantic bill validation, the Swiss Payments Code payload and
// the PDF/PNG/SVG drawing of the payment part, standalone or appended onto
// an existing PDF document.
package render

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/smallbiznis/qrbill/internal/bill/domain"
)

// Issue is one semantic validation finding reported by the renderer.
type Issue struct {
	Field   string
	Message string
}

// Renderer validates assembled billing records and draws them.
type Renderer interface {
	// Validate reports the semantic findings for a record. Fields the
	// caller already rejected as missing are not re-reported.
	Validate(record domain.BillingRecord) []Issue

	// Render produces a standalone document in the record's format.
	// Identical records yield byte-identical output.
	Render(record domain.BillingRecord) ([]byte, error)

	// Append draws the payment part onto the last page of source, which
	// must be a PDF document, and returns the combined document.
	Append(record domain.BillingRecord, source []byte) ([]byte, error)
}

// QRRenderer is the default Renderer implementation.
type QRRenderer struct {
	log   *zap.Logger
	cache *artifactCache
}

// NewRenderer constructs the default renderer.
func NewRenderer(log *zap.Logger) Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &QRRenderer{
		log:   log.Named("bill.render"),
		cache: newArtifactCache(),
	}
}

// Render dispatches on the record's graphics format.
func (r *QRRenderer) Render(record domain.BillingRecord) ([]byte, error) {
	payload := Payload(record)
	key := artifactKey(payload,
		string(record.Format.GraphicsFormat),
		string(record.Format.OutputSize),
		string(record.Format.Language),
	)
	if data, ok := r.cache.get(key); ok {
		return data, nil
	}

	var data []byte
	var err error
	switch record.Format.GraphicsFormat {
	case domain.GraphicsFormatPDF:
		data, err = r.renderPDF(record, payload)
	case domain.GraphicsFormatPNG:
		data, err = r.renderPNG(record, payload)
	case domain.GraphicsFormatSVG:
		data, err = r.renderSVG(record, payload)
	default:
		return nil, fmt.Errorf("render: %w: graphics format %q", domain.ErrRenderFailed, record.Format.GraphicsFormat)
	}
	if err != nil {
		return nil, err
	}
	r.cache.put(key, data)
	return data, nil
}
