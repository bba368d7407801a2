package render

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"go.uber.org/zap"

	"github.com/smallbiznis/qrbill/internal/bill/domain"
)

// Append renders the payment part and stamps it onto the last page of the
// source document. The stamp sits at the bottom of the page, where the
// payment part of a Swiss invoice belongs.
func (r *QRRenderer) Append(record domain.BillingRecord, source []byte) ([]byte, error) {
	slip := record
	slip.Format.GraphicsFormat = domain.GraphicsFormatPDF
	stamp, err := r.renderPDF(slip, Payload(slip))
	if err != nil {
		return nil, err
	}

	// The watermark source has to be a file on disk.
	tmp, err := os.CreateTemp("", "qrbill-stamp-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("render: %w: %v", domain.ErrRenderFailed, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(stamp); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("render: %w: %v", domain.ErrRenderFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("render: %w: %v", domain.ErrRenderFailed, err)
	}

	wm, err := api.PDFWatermark(tmp.Name(), "pos:bc, rot:0, scalefactor:1 abs", true, false, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("render: %w: %v", domain.ErrRenderFailed, err)
	}

	var out bytes.Buffer
	if err := api.AddWatermarks(bytes.NewReader(source), &out, []string{"l"}, wm, nil); err != nil {
		return nil, fmt.Errorf("render: %w: %v", domain.ErrRenderFailed, err)
	}

	r.log.Debug("payment part appended",
		zap.String("invoice", record.InvoiceID),
		zap.Int("source_bytes", len(source)),
		zap.Int("combined_bytes", out.Len()),
	)
	return out.Bytes(), nil
}
