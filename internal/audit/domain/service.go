package domain

import "context"

// Entry is what callers know about a finished generate call.
type Entry struct {
	InvoiceID  string
	Result     string
	ErrorCount int
	Format     string
	OutputSize string
	Appended   bool
	FileBytes  int
	DurationMS int64
}

type Service interface {
	Record(ctx context.Context, entry Entry) error
	Recent(ctx context.Context, limit int) ([]*GenerationRecord, error)
}
