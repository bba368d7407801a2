package qrbill

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"
)

type envelope struct {
	Result    string              `json:"result"`
	Invoice   string              `json:"invoice"`
	Currency  string              `json:"currency"`
	Reference string              `json:"reference"`
	File      *fileInfo           `json:"file"`
	Form      map[string]string   `json:"form"`
	Errors    []map[string]string `json:"errors"`
}

type fileInfo struct {
	Name   string `json:"name"`
	Size   int    `json:"size"`
	QRBill []byte `json:"qrbill"`
}

func TestGenerateProducesBill(t *testing.T) {
	output := filepath.Join(t.TempDir(), "bill.svg")
	payload := fmt.Sprintf(`{
		"invoice": "R-2024-0017",
		"path": {"output": %q},
		"form": {"graphics_format": "SVG"},
		"iban": "CH44 3199 9123 0008 8901 2",
		"reference": "210000000003139471430009017",
		"amount": 199.95,
		"creditor": {
			"name": "Muster AG",
			"address": "Bahnhofstrasse 1",
			"city": "8001 Zürich",
			"country": "CH"
		}
	}`, output)

	var resp envelope
	if err := json.Unmarshal([]byte(New().Generate(payload)), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Result != "OK" {
		t.Fatalf("expected OK, got %s with %v", resp.Result, resp.Errors)
	}
	if resp.File == nil || resp.File.Name != "QRBill_R-2024-0017.svg" {
		t.Fatalf("unexpected file: %+v", resp.File)
	}
	if resp.Currency != "CHF" {
		t.Fatalf("expected CHF default, got %s", resp.Currency)
	}
}

func TestGenerateReportsErrors(t *testing.T) {
	var resp envelope
	if err := json.Unmarshal([]byte(New().Generate(`{}`)), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Result != "ERROR" {
		t.Fatalf("expected ERROR, got %s", resp.Result)
	}
	if len(resp.Errors) != 1 {
		t.Fatalf("expected one error, got %v", resp.Errors)
	}
	if _, ok := resp.Errors[0]["invoice"]; !ok {
		t.Fatalf("expected invoice-keyed error, got %v", resp.Errors[0])
	}
}

func TestGenerateWithPlatformOverride(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "bill.png")
	payload := fmt.Sprintf(`{
		"invoice": "R-3",
		"path": {"output": %q},
		"form": {"graphics_format": "PNG", "language": "IT"},
		"iban": "CH93 0076 2011 6238 5295 7",
		"creditor": {"name": "A", "address": "B", "city": "C", "country": "CH"}
	}`, output)

	g := New(WithPlatform("linux"), WithDefaultLocale("de_CH.UTF-8"))
	var resp envelope
	if err := json.Unmarshal([]byte(g.Generate(payload)), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Result != "OK" {
		t.Fatalf("expected OK, got %v", resp.Errors)
	}
	if resp.Form["language"] != "IT" {
		t.Fatalf("explicit language must win, got %s", resp.Form["language"])
	}
}
