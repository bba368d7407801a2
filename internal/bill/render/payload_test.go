package render

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/smallbiznis/qrbill/internal/bill/domain"
)

func testRecord() domain.BillingRecord {
	amount := decimal.RequireFromString("199.95")
	return domain.BillingRecord{
		InvoiceID:     "R-2024-0017",
		Amount:        &amount,
		Currency:      "CHF",
		Account:       "CH44 3199 9123 0008 8901 2",
		ReferenceKind: domain.ReferenceKindQR,
		Reference:     "210000000003139471430009017",
		Creditor: domain.Party{
			Name:         "Muster AG",
			AddressLine1: "Bahnhofstrasse 1",
			AddressLine2: "8001 Zürich",
			CountryCode:  "CH",
		},
		Debtor: &domain.Party{
			Name:         "Erika Beispiel",
			AddressLine1: "Dorfweg 9",
			AddressLine2: "3000 Bern",
			CountryCode:  "CH",
		},
		Format: domain.BillFormat{
			Language:       domain.LanguageDE,
			GraphicsFormat: domain.GraphicsFormatPDF,
			OutputSize:     domain.OutputSizeA4PortraitSheet,
		},
	}
}

func TestPayloadElementOrder(t *testing.T) {
	lines := strings.Split(Payload(testRecord()), "\n")

	if lines[0] != "SPC" || lines[1] != "0200" || lines[2] != "1" {
		t.Fatalf("bad header: %v", lines[:3])
	}
	if lines[3] != "CH4431999123000889012" {
		t.Fatalf("expected compacted account, got %q", lines[3])
	}
	if lines[4] != "K" || lines[5] != "Muster AG" {
		t.Fatalf("bad creditor block: %v", lines[4:6])
	}
	if lines[18] != "199.95" || lines[19] != "CHF" {
		t.Fatalf("bad amount block: %v", lines[18:20])
	}
	if lines[27] != "QRR" || lines[28] != "210000000003139471430009017" {
		t.Fatalf("bad reference block: %v", lines[27:29])
	}
	if lines[len(lines)-1] != "EPD" {
		t.Fatalf("expected EPD trailer, got %q", lines[len(lines)-1])
	}
}

func TestPayloadWithoutDebtorKeepsPlaceholders(t *testing.T) {
	record := testRecord()
	record.Debtor = nil
	record.Amount = nil

	lines := strings.Split(Payload(record), "\n")
	if lines[18] != "" {
		t.Fatalf("expected empty amount, got %q", lines[18])
	}
	for i := 20; i < 27; i++ {
		if lines[i] != "" {
			t.Fatalf("expected empty debtor element at %d, got %q", i, lines[i])
		}
	}
}
