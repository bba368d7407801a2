package render

import (
	"strings"
)

// The QR-IID band reserved for QR-IBANs. An IBAN whose institution id
// starts with 30 or 31 (range 30000-31999) only settles against a QR
// reference.
func IsQRIBAN(iban string) bool {
	compact := compactUpper(iban)
	if len(compact) < 6 {
		return false
	}
	iid := compact[4:6]
	return iid == "30" || iid == "31"
}

// Recursive mod-10 carry table used by the Swiss QR reference scheme.
var mod10Carry = [10]int{0, 9, 4, 6, 8, 2, 7, 1, 3, 5}

// QRReferenceCheckDigit computes the check digit over a digit string.
func QRReferenceCheckDigit(digits string) int {
	carry := 0
	for _, r := range digits {
		carry = mod10Carry[(carry+int(r-'0'))%10]
	}
	return (10 - carry) % 10
}

// CreateQRReference left-pads raw digits to 26 positions and appends the
// mod-10 check digit, yielding a valid 27-digit QR reference. Inputs longer
// than 26 digits degrade to the zero reference.
func CreateQRReference(digits string) string {
	if len(digits) > 26 {
		digits = ""
	}
	padded := strings.Repeat("0", 26-len(digits)) + digits
	return padded + string(rune('0'+QRReferenceCheckDigit(padded)))
}

// IsValidQRReference reports whether value is a well-formed 27-digit QR
// reference with a matching check digit.
func IsValidQRReference(value string) bool {
	compact := compact(value)
	if len(compact) != 27 || !allDigits(compact) {
		return false
	}
	return QRReferenceCheckDigit(compact[:26]) == int(compact[26]-'0')
}

// IsValidCreditorReference reports whether value is a well-formed ISO 11649
// creditor reference ("RF" + 2 check digits + up to 21 alphanumerics).
func IsValidCreditorReference(value string) bool {
	compact := compactUpper(value)
	if len(compact) < 5 || len(compact) > 25 || !strings.HasPrefix(compact, "RF") {
		return false
	}
	return mod97(compact[4:]+compact[:4]) == 1
}

// IsValidIBAN reports whether value passes the ISO 13616 shape and mod-97
// checksum rules.
func IsValidIBAN(value string) bool {
	compact := compactUpper(value)
	if len(compact) < 15 || len(compact) > 34 {
		return false
	}
	for i, r := range compact {
		switch {
		case r >= 'A' && r <= 'Z':
			if i == 2 || i == 3 {
				return false
			}
		case r >= '0' && r <= '9':
			if i == 0 || i == 1 {
				return false
			}
		default:
			return false
		}
	}
	return mod97(compact[4:]+compact[:4]) == 1
}

func mod97(rearranged string) int {
	remainder := 0
	for _, r := range rearranged {
		if r >= '0' && r <= '9' {
			remainder = (remainder*10 + int(r-'0')) % 97
		} else {
			value := int(r-'A') + 10
			remainder = (remainder*100 + value) % 97
		}
	}
	return remainder
}

func compact(value string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '-' {
			return -1
		}
		return r
	}, value)
}

func compactUpper(value string) string {
	return strings.ToUpper(compact(value))
}

func allDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(value) > 0
}
