package render

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/smallbiznis/qrbill/internal/bill/domain"
)

const qrImageSize = 512

func (r *QRRenderer) renderPNG(record domain.BillingRecord, payload string) ([]byte, error) {
	qr, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("render: %w: %v", domain.ErrRenderFailed, err)
	}
	data, err := qr.PNG(qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("render: %w: %v", domain.ErrRenderFailed, err)
	}
	return data, nil
}

func (r *QRRenderer) renderSVG(record domain.BillingRecord, payload string) ([]byte, error) {
	qr, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("render: %w: %v", domain.ErrRenderFailed, err)
	}
	bitmap := qr.Bitmap()
	size := len(bitmap)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" shape-rendering="crispEdges">`+"\n", size, size)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#ffffff"/>`+"\n", size, size)
	for y, rowBits := range bitmap {
		// Run-length encode each row to keep the document small.
		x := 0
		for x < len(rowBits) {
			if !rowBits[x] {
				x++
				continue
			}
			start := x
			for x < len(rowBits) && rowBits[x] {
				x++
			}
			fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="1" fill="#000000"/>`+"\n", start, y, x-start)
		}
	}
	b.WriteString("</svg>\n")
	return []byte(b.String()), nil
}
