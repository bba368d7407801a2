package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

const (
	ResultOK    = "OK"
	ResultError = "ERROR"
)

// ValidationError is one field-level failure. Key is the invoice id once it
// is known, the offending field name (or the Parameter sentinel) otherwise.
type ValidationError struct {
	Key     string
	Message string
}

// MarshalJSON emits the single-entry object form {"<key>":"<message>"}.
func (e ValidationError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{e.Key: e.Message})
}

// UnmarshalJSON reads the single-entry object form back into Key/Message.
func (e *ValidationError) UnmarshalJSON(data []byte) error {
	var obj map[string]string
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	for key, message := range obj {
		e.Key = key
		e.Message = message
	}
	return nil
}

// PathInfo echoes the normalized paths of a request.
type PathInfo struct {
	Output  string `json:"output,omitempty"`
	Invoice string `json:"invoice,omitempty"`
}

// FormInfo echoes the resolved form options of a request.
type FormInfo struct {
	Language       string `json:"language,omitempty"`
	GraphicsFormat string `json:"graphics_format,omitempty"`
	OutputSize     string `json:"output_size,omitempty"`
}

// FileInfo describes the generated file on success. QRBill carries the raw
// bytes (base64 in the JSON encoding).
type FileInfo struct {
	Name   string `json:"name"`
	Size   int    `json:"size"`
	QRBill []byte `json:"qrbill"`
}

// Response is the JSON envelope returned for every generate call.
type Response struct {
	Result    string            `json:"result"`
	Invoice   string            `json:"invoice,omitempty"`
	Path      *PathInfo         `json:"path,omitempty"`
	Form      *FormInfo         `json:"form,omitempty"`
	Amount    *decimal.Decimal  `json:"amount,omitempty"`
	Currency  string            `json:"currency,omitempty"`
	IBAN      string            `json:"iban,omitempty"`
	Reference string            `json:"reference,omitempty"`
	Creditor  *Party            `json:"creditor,omitempty"`
	Debtor    *Party            `json:"debtor,omitempty"`
	Message   string            `json:"message,omitempty"`
	File      *FileInfo         `json:"file,omitempty"`
	Errors    []ValidationError `json:"errors,omitempty"`
}
