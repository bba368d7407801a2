package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Language selects the language the payment part is printed in.
type Language string

const (
	LanguageDE Language = "DE"
	LanguageEN Language = "EN"
	LanguageFR Language = "FR"
	LanguageIT Language = "IT"
)

// Languages lists the supported payment part languages.
func Languages() []Language {
	return []Language{LanguageEN, LanguageDE, LanguageFR, LanguageIT}
}

// ParseLanguage returns the language matching value, if any.
func ParseLanguage(value string) (Language, bool) {
	for _, lang := range Languages() {
		if string(lang) == value {
			return lang, true
		}
	}
	return "", false
}

// GraphicsFormat is the output file format of the generated bill.
type GraphicsFormat string

const (
	GraphicsFormatPDF GraphicsFormat = "PDF"
	GraphicsFormatPNG GraphicsFormat = "PNG"
	GraphicsFormatSVG GraphicsFormat = "SVG"
)

// GraphicsFormatNames returns all valid format names in sorted order.
func GraphicsFormatNames() []string {
	names := []string{
		string(GraphicsFormatPDF),
		string(GraphicsFormatPNG),
		string(GraphicsFormatSVG),
	}
	sort.Strings(names)
	return names
}

// ParseGraphicsFormat returns the graphics format matching value, if any.
func ParseGraphicsFormat(value string) (GraphicsFormat, bool) {
	switch GraphicsFormat(value) {
	case GraphicsFormatPDF, GraphicsFormatPNG, GraphicsFormatSVG:
		return GraphicsFormat(value), true
	}
	return "", false
}

// Extension returns the lower-case file extension for the format.
func (f GraphicsFormat) Extension() string {
	switch f {
	case GraphicsFormatPDF:
		return "pdf"
	case GraphicsFormatPNG:
		return "png"
	case GraphicsFormatSVG:
		return "svg"
	}
	return ""
}

// OutputSize is the layout variant of the generated bill.
type OutputSize string

const (
	OutputSizeA4PortraitSheet  OutputSize = "A4_PORTRAIT_SHEET"
	OutputSizeQRBillOnly       OutputSize = "QR_BILL_ONLY"
	OutputSizeQRBillExtraSpace OutputSize = "QR_BILL_EXTRA_SPACE"
	OutputSizeQRCodeOnly       OutputSize = "QR_CODE_ONLY"
)

// OutputSizeNames returns all valid output size names in sorted order.
func OutputSizeNames() []string {
	names := []string{
		string(OutputSizeA4PortraitSheet),
		string(OutputSizeQRBillOnly),
		string(OutputSizeQRBillExtraSpace),
		string(OutputSizeQRCodeOnly),
	}
	sort.Strings(names)
	return names
}

// ParseOutputSize returns the output size matching value, if any.
func ParseOutputSize(value string) (OutputSize, bool) {
	switch OutputSize(value) {
	case OutputSizeA4PortraitSheet, OutputSizeQRBillOnly,
		OutputSizeQRBillExtraSpace, OutputSizeQRCodeOnly:
		return OutputSize(value), true
	}
	return "", false
}

// ReferenceKind distinguishes the structured reference attached to a bill.
type ReferenceKind string

const (
	ReferenceKindNone     ReferenceKind = "NON"
	ReferenceKindQR       ReferenceKind = "QRR"
	ReferenceKindCreditor ReferenceKind = "SCOR"
)

// BillFormat combines the resolved form options of a request.
type BillFormat struct {
	Language       Language
	GraphicsFormat GraphicsFormat
	OutputSize     OutputSize
}

// Party is a creditor or debtor address block.
type Party struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"address"`
	AddressLine2 string `json:"city"`
	CountryCode  string `json:"country"`
}

// BillingRecord is the fully validated, in-memory bill. It is assembled
// once per call and never mutated after being handed to the renderer.
type BillingRecord struct {
	InvoiceID     string
	Amount        *decimal.Decimal
	Currency      string
	Account       string
	ReferenceKind ReferenceKind
	Reference     string
	Message       string
	Creditor      Party
	Debtor        *Party
	Format        BillFormat
}
