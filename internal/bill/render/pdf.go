package render

import (
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"go.uber.org/zap"

	"github.com/smallbiznis/qrbill/internal/bill/domain"
)

// Fixed creation date so identical records produce byte-identical files.
var pdfCreationDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

var lineGray = &props.Color{Red: 120, Green: 120, Blue: 120}

func (r *QRRenderer) renderPDF(record domain.BillingRecord, payload string) ([]byte, error) {
	builder := config.NewBuilder().
		WithLeftMargin(5).WithRightMargin(5).
		WithTopMargin(5).WithBottomMargin(5).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithCreationDate(pdfCreationDate)

	switch record.Format.OutputSize {
	case domain.OutputSizeQRBillOnly, domain.OutputSizeQRBillExtraSpace:
		builder = builder.WithDimensions(210, 105)
	case domain.OutputSizeQRCodeOnly:
		builder = builder.WithDimensions(56, 56)
	default:
		builder = builder.WithPageSize(pagesize.A4)
	}

	m := maroto.New(builder.Build())
	set := labelsFor(record.Format.Language)

	if record.Format.OutputSize == domain.OutputSizeQRCodeOnly {
		m.AddRows(row.New(46).Add(
			col.New(12).Add(code.NewQr(payload, props.Rect{Percent: 100, Center: true})),
		))
	} else {
		if record.Format.OutputSize == domain.OutputSizeA4PortraitSheet {
			// Payment part occupies the lower 105mm of the sheet.
			m.AddRows(row.New(187))
			m.AddRows(line.NewRow(1, props.Line{Color: lineGray, Thickness: 0.2}))
		}
		m.AddRows(r.paymentPartRows(record, payload, set)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("render: %w: %v", domain.ErrRenderFailed, err)
	}
	r.log.Debug("pdf rendered",
		zap.String("invoice", record.InvoiceID),
		zap.String("output_size", string(record.Format.OutputSize)),
	)
	return doc.GetBytes(), nil
}

func (r *QRRenderer) paymentPartRows(record domain.BillingRecord, payload string, set labelSet) []core.Row {
	heading := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 6})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 8, Top: top})
	}

	right := col.New(7).Add(
		heading(set.AccountPayableTo),
		value(formatIBAN(record.Account), 3),
		value(record.Creditor.Name, 7),
		value(record.Creditor.AddressLine1, 11),
		value(record.Creditor.AddressLine2, 15),
	)

	rows := []core.Row{
		row.New(8).Add(
			col.New(5).Add(text.New(set.PaymentPart, props.Text{Style: fontstyle.Bold, Size: 11, Top: 1})),
			col.New(7).Add(text.New(set.Receipt, props.Text{Style: fontstyle.Bold, Size: 11, Top: 1})),
		),
		row.New(50).Add(
			col.New(5).Add(code.NewQr(payload, props.Rect{Percent: 92})),
			right,
		),
	}

	if record.ReferenceKind != domain.ReferenceKindNone {
		rows = append(rows, row.New(8).Add(
			col.New(5),
			col.New(7).Add(heading(set.Reference), value(formatReference(record.Reference, record.ReferenceKind), 3)),
		))
	}
	if record.Message != "" {
		rows = append(rows, row.New(8).Add(
			col.New(5),
			col.New(7).Add(heading(set.AdditionalInfo), value(record.Message, 3)),
		))
	}

	amount := ""
	if record.Amount != nil {
		amount = record.Amount.StringFixed(2)
	}
	rows = append(rows, row.New(8).Add(
		col.New(2).Add(heading(set.Currency), value(record.Currency, 3)),
		col.New(3).Add(heading(set.Amount), value(amount, 3)),
		col.New(7).Add(debtorComponents(record, set)...),
	))

	return rows
}

func debtorComponents(record domain.BillingRecord, set labelSet) []core.Component {
	if record.Debtor == nil {
		return []core.Component{
			text.New(set.PayableByBlank, props.Text{Style: fontstyle.Bold, Size: 6}),
		}
	}
	return []core.Component{
		text.New(set.PayableBy, props.Text{Style: fontstyle.Bold, Size: 6}),
		text.New(record.Debtor.Name, props.Text{Size: 8, Top: 3}),
		text.New(record.Debtor.AddressLine1, props.Text{Size: 8, Top: 7}),
		text.New(record.Debtor.AddressLine2, props.Text{Size: 8, Top: 11}),
	}
}

// formatIBAN groups an IBAN into blocks of four for display.
func formatIBAN(iban string) string {
	return groupString(compactUpper(iban), 4)
}

// formatReference applies the display grouping of each reference kind.
func formatReference(reference string, kind domain.ReferenceKind) string {
	compacted := compactUpper(reference)
	switch kind {
	case domain.ReferenceKindQR:
		// 2-5-5-5-5-5 grouping from the left.
		if len(compacted) != 27 {
			return compacted
		}
		parts := []string{compacted[:2]}
		for i := 2; i < len(compacted); i += 5 {
			parts = append(parts, compacted[i:i+5])
		}
		return strings.Join(parts, " ")
	case domain.ReferenceKindCreditor:
		return groupString(compacted, 4)
	}
	return compacted
}

func groupString(value string, n int) string {
	var parts []string
	for len(value) > n {
		parts = append(parts, value[:n])
		value = value[n:]
	}
	if value != "" {
		parts = append(parts, value)
	}
	return strings.Join(parts, " ")
}
