package service

import (
	"strings"

	"github.com/smallbiznis/qrbill/internal/bill/domain"
	"github.com/smallbiznis/qrbill/internal/bill/render"
)

type resolvedReference struct {
	kind  domain.ReferenceKind
	value string
}

// resolveReference decides the reference kind from the IBAN's QR-IID range
// and the supplied reference value.
//
// QR-IBAN: a reference is mandatory and must be reducible to digits. A
// 27-digit value is taken as a complete QR reference; up to 26 digits are
// completed with the mod-10 check digit; anything longer degrades to the
// zero reference. Non-QR IBAN: an "RF" value becomes an ISO 11649 creditor
// reference, anything else means no reference.
//
// The caller skips resolution entirely when the IBAN itself is absent.
func resolveReference(iban string, root rawNode) (resolvedReference, bool) {
	supplied, hasReference := root.text("reference")

	if render.IsQRIBAN(iban) {
		if !hasReference {
			return resolvedReference{}, false
		}
		digits := digitsOf(supplied)
		if digits == "" {
			return resolvedReference{}, false
		}
		switch {
		case len(digits) == 27:
			return resolvedReference{kind: domain.ReferenceKindQR, value: digits}, true
		case len(digits) <= 26:
			return resolvedReference{kind: domain.ReferenceKindQR, value: render.CreateQRReference(digits)}, true
		default:
			// Oversized input degrades to the zero reference.
			return resolvedReference{kind: domain.ReferenceKindQR, value: render.CreateQRReference("")}, true
		}
	}

	if hasReference {
		compact := strings.ToUpper(strings.ReplaceAll(supplied, " ", ""))
		if strings.HasPrefix(compact, "RF") {
			return resolvedReference{kind: domain.ReferenceKindCreditor, value: compact}, true
		}
	}
	return resolvedReference{kind: domain.ReferenceKindNone}, true
}

// digitsOf strips grouping characters and returns the bare digit string,
// or "" when the value contains anything but digits.
func digitsOf(value string) string {
	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			// grouping, ignore
		default:
			return ""
		}
	}
	return b.String()
}
