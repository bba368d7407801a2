package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// GenerationRecord is an immutable trace of one generate call.
type GenerationRecord struct {
	ID         snowflake.ID `gorm:"primaryKey"`
	InvoiceID  string       `gorm:"type:text;index"`
	Result     string       `gorm:"type:text;not null;index"`
	ErrorCount int          `gorm:"not null;default:0"`
	Format     string       `gorm:"type:text"`
	OutputSize string       `gorm:"type:text"`
	Appended   bool         `gorm:"not null;default:false"`
	FileBytes  int          `gorm:"not null;default:0"`
	DurationMS int64        `gorm:"not null;default:0"`
	CreatedAt  time.Time    `gorm:"not null;index"`
}

// TableName sets the database table name.
func (GenerationRecord) TableName() string { return "generation_records" }
