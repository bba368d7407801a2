package render

import (
	"strings"

	"github.com/smallbiznis/qrbill/internal/bill/domain"
)

// Payload assembles the Swiss Payments Code text encoded into the QR code.
// The element order is fixed by the standard; empty elements stay in place
// so the decoder can index into the payload positionally.
func Payload(record domain.BillingRecord) string {
	var elements []string

	// Header
	elements = append(elements, "SPC", "0200", "1")

	// Creditor account
	elements = append(elements, compactUpper(record.Account))
	elements = append(elements, addressElements(record.Creditor)...)

	// Ultimate creditor, reserved for future use
	elements = append(elements, "", "", "", "", "", "", "")

	// Payment amount
	amount := ""
	if record.Amount != nil {
		amount = record.Amount.StringFixed(2)
	}
	elements = append(elements, amount, record.Currency)

	// Ultimate debtor
	if record.Debtor != nil {
		elements = append(elements, addressElements(*record.Debtor)...)
	} else {
		elements = append(elements, "", "", "", "", "", "", "")
	}

	// Payment reference
	elements = append(elements, string(record.ReferenceKind), record.Reference)

	// Additional information
	elements = append(elements, record.Message, "EPD")

	return strings.Join(elements, "\n")
}

// addressElements emits a combined ("K") address block: type, name, two
// address lines, the two structured fields left blank, country.
func addressElements(party domain.Party) []string {
	return []string{
		"K",
		party.Name,
		party.AddressLine1,
		party.AddressLine2,
		"",
		"",
		party.CountryCode,
	}
}
