package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/smallbiznis/qrbill/internal/bill/domain"
)

const (
	maxLineLength    = 70
	maxMessageLength = 140
)

var validCurrencies = map[string]struct{}{
	"CHF": {},
	"EUR": {},
}

// Validate applies the cross-field rules of the payment standard that the
// assembling pipeline does not encode itself: value lengths, IBAN checksum
// and country, reference check digits and the currency allow-list. Empty
// values are skipped; their absence is the caller's finding, not ours.
func (r *QRRenderer) Validate(record domain.BillingRecord) []Issue {
	var issues []Issue

	if record.Account != "" {
		account := compactUpper(record.Account)
		if !IsValidIBAN(account) {
			issues = append(issues, Issue{Field: "iban", Message: "'iban' is not a valid IBAN (checksum mismatch)."})
		} else if !strings.HasPrefix(account, "CH") && !strings.HasPrefix(account, "LI") {
			issues = append(issues, Issue{Field: "iban", Message: "'iban' must be a Swiss or Liechtenstein IBAN (CH or LI)."})
		}
	}

	if record.Currency != "" {
		if _, ok := validCurrencies[record.Currency]; !ok {
			issues = append(issues, Issue{Field: "currency", Message: "'currency' must be CHF or EUR."})
		}
	}

	issues = append(issues, partyIssues("creditor", record.Creditor)...)
	if record.Debtor != nil {
		issues = append(issues, partyIssues("debtor", *record.Debtor)...)
	}

	switch record.ReferenceKind {
	case domain.ReferenceKindQR:
		if !IsValidQRReference(record.Reference) {
			issues = append(issues, Issue{Field: "reference", Message: "'reference' is not a valid 27-digit QR reference."})
		}
	case domain.ReferenceKindCreditor:
		if !IsValidCreditorReference(record.Reference) {
			issues = append(issues, Issue{Field: "reference", Message: "'reference' is not a valid ISO 11649 creditor reference."})
		}
	}

	if utf8.RuneCountInString(record.Message) > maxMessageLength {
		issues = append(issues, Issue{Field: "message", Message: fmt.Sprintf("'message' must not exceed %d characters.", maxMessageLength)})
	}

	return issues
}

func partyIssues(role string, party domain.Party) []Issue {
	var issues []Issue
	for _, field := range []struct {
		name  string
		value string
	}{
		{"name", party.Name},
		{"address", party.AddressLine1},
		{"city", party.AddressLine2},
	} {
		if utf8.RuneCountInString(field.value) > maxLineLength {
			issues = append(issues, Issue{
				Field:   role + "." + field.name,
				Message: fmt.Sprintf("'%s.%s' must not exceed %d characters.", role, field.name, maxLineLength),
			})
		}
	}
	if party.CountryCode != "" && !isCountryCode(party.CountryCode) {
		issues = append(issues, Issue{
			Field:   role + ".country",
			Message: fmt.Sprintf("'%s.country' must be a two-letter ISO 3166 country code.", role),
		})
	}
	return issues
}

func isCountryCode(value string) bool {
	if len(value) != 2 {
		return false
	}
	for _, r := range value {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
