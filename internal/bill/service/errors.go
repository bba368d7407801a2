package service

import (
	"strings"

	"github.com/smallbiznis/qrbill/internal/bill/domain"
)

// Sentinel keys used before an invoice id is available.
const (
	keyParameter = "Parameter"
	keyInvoice   = "invoice"
)

const (
	msgParameterUnreadable = "The request payload could not be read. Is it a valid JSON object?"
	msgInvoiceMandatory    = "'invoice' must contain the invoice number. It is mandatory."
	msgOutputPath          = "'path.output' must be a valid file system path or URI for the generated file."
	msgInvoicePath         = "'path.invoice' must be a valid file system path or URI of an existing document."
	msgIBAN                = "'iban' must contain the creditor's IBAN or QR-IBAN."
	msgReference           = "'reference' must be convertible into a valid 27-digit QR reference when a QR-IBAN is used."
	msgSourceMissing       = "The source file '%s' does not exist. It must be present for processing."
	msgSourceOpen          = "The document to append the QR bill to could not be opened."
	msgTargetWrite         = "The target file '%s' could not be accessed."

	msgCreditorName    = "'creditor.name' must contain the biller's name (at most 70 characters)."
	msgCreditorAddress = "'creditor.address' must contain the biller's address (at most 70 characters)."
	msgCreditorCity    = "'creditor.city' must contain the biller's postal code and city (at most 70 characters)."
	msgCreditorCountry = "'creditor.country' must contain the biller's two-letter ISO 3166 country code."

	msgDebtorName    = "'debtor.name' must contain the recipient's name (at most 70 characters)."
	msgDebtorAddress = "'debtor.address' must contain the recipient's address (at most 70 characters)."
	msgDebtorCity    = "'debtor.city' must contain the recipient's postal code and city (at most 70 characters)."
	msgDebtorCountry = "'debtor.country' must contain the recipient's two-letter ISO 3166 country code."
)

// graphicsFormatMessage enumerates the valid formats in stable order.
func graphicsFormatMessage() string {
	return "'graphics_format' must be one of the following values: " +
		strings.Join(domain.GraphicsFormatNames(), ", ")
}

// outputSizeMessage enumerates the valid output sizes in stable order.
func outputSizeMessage() string {
	return "'output_size' must be one of the following values: " +
		strings.Join(domain.OutputSizeNames(), ", ")
}

// aggregator collects every field-level failure of one call in insertion
// order. Nothing is deduplicated; the single OK/ERROR decision is taken
// once, after all fields have been processed.
type aggregator struct {
	entries []domain.ValidationError
}

func (a *aggregator) add(key, message string) {
	a.entries = append(a.entries, domain.ValidationError{Key: key, Message: message})
}

func (a *aggregator) hasErrors() bool {
	return len(a.entries) > 0
}

func (a *aggregator) list() []domain.ValidationError {
	return a.entries
}
