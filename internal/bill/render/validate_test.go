package render

import (
	"strings"
	"testing"

	"github.com/smallbiznis/qrbill/internal/bill/domain"
)

func newTestRenderer() *QRRenderer {
	return NewRenderer(nil).(*QRRenderer)
}

func TestValidateAcceptsCompleteRecord(t *testing.T) {
	issues := newTestRenderer().Validate(testRecord())
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestValidateRejectsBadChecksum(t *testing.T) {
	record := testRecord()
	record.Account = "CH45 3199 9123 0008 8901 2"

	issues := newTestRenderer().Validate(record)
	if len(issues) != 1 || issues[0].Field != "iban" {
		t.Fatalf("expected one iban issue, got %v", issues)
	}
}

func TestValidateRejectsForeignIBAN(t *testing.T) {
	record := testRecord()
	record.Account = "DE89 3704 0044 0532 0130 00"

	issues := newTestRenderer().Validate(record)
	if len(issues) != 1 || !strings.Contains(issues[0].Message, "CH or LI") {
		t.Fatalf("expected country issue, got %v", issues)
	}
}

func TestValidateRejectsOverlongName(t *testing.T) {
	record := testRecord()
	record.Creditor.Name = strings.Repeat("x", 71)

	issues := newTestRenderer().Validate(record)
	if len(issues) != 1 || issues[0].Field != "creditor.name" {
		t.Fatalf("expected creditor.name issue, got %v", issues)
	}
}

func TestValidateRejectsBadCountry(t *testing.T) {
	record := testRecord()
	record.Debtor.CountryCode = "ch"

	issues := newTestRenderer().Validate(record)
	if len(issues) != 1 || issues[0].Field != "debtor.country" {
		t.Fatalf("expected debtor.country issue, got %v", issues)
	}
}

func TestValidateRejectsBadQRReference(t *testing.T) {
	record := testRecord()
	record.Reference = "210000000003139471430009018"

	issues := newTestRenderer().Validate(record)
	if len(issues) != 1 || issues[0].Field != "reference" {
		t.Fatalf("expected reference issue, got %v", issues)
	}
}

func TestValidateRejectsOverlongMessage(t *testing.T) {
	record := testRecord()
	record.Message = strings.Repeat("m", 141)

	issues := newTestRenderer().Validate(record)
	if len(issues) != 1 || issues[0].Field != "message" {
		t.Fatalf("expected message issue, got %v", issues)
	}
}

func TestValidateSkipsEmptyValues(t *testing.T) {
	record := domain.BillingRecord{InvoiceID: "R-1"}
	issues := newTestRenderer().Validate(record)
	if len(issues) != 0 {
		t.Fatalf("expected empty record to pass, got %v", issues)
	}
}
