// Package journal keeps a terminal-local audit trail of successfully
// committed checkouts. The backend's transaction history is authoritative;
// the journal only lets the terminal show its own recent sales without a
// round trip and survive a process restart.
package journal

import (
	"time"

	"kasir/internal/models"
)

// Entry is one journaled receipt. Items are stored as a JSON blob: the
// journal is append-and-read-back only, never queried by line.
type Entry struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	ReceiptID     string `gorm:"uniqueIndex;type:varchar(36)"`
	Code          string `gorm:"type:varchar(64)"`
	TotalAmount   float64
	PaymentMethod string `gorm:"type:varchar(16)"`
	CashierID     string `gorm:"type:varchar(36)"`
	ShiftID       string `gorm:"type:varchar(36)"`
	Items         string
	CreatedAt     time.Time
}

// Journal defines the interface for the receipt audit trail.
type Journal interface {
	Append(receipt *models.Receipt) error
	Recent(limit int) ([]Entry, error)
}
