package journal

import (
	"encoding/json"
	"fmt"

	"kasir/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// GORMJournal is a GORM-on-sqlite implementation of Journal. The database is
// embedded in the terminal process; there is nothing else to connect to.
type GORMJournal struct {
	db *gorm.DB
}

// Open opens (or creates) the journal database at path and migrates it.
func Open(path string) (*GORMJournal, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal at %s: %w", path, err)
	}
	return NewGORMJournal(db)
}

// NewGORMJournal creates a GORMJournal on an existing DB handle.
func NewGORMJournal(db *gorm.DB) (*GORMJournal, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate journal: %w", err)
	}
	return &GORMJournal{db: db}, nil
}

// Append records a committed receipt.
func (j *GORMJournal) Append(receipt *models.Receipt) error {
	items, err := json.Marshal(receipt.Items)
	if err != nil {
		return fmt.Errorf("failed to encode receipt items: %w", err)
	}
	entry := Entry{
		ReceiptID:     receipt.ID,
		Code:          receipt.Code,
		TotalAmount:   receipt.TotalAmount,
		PaymentMethod: receipt.PaymentMethod,
		CashierID:     receipt.CashierID,
		ShiftID:       receipt.ShiftID,
		Items:         string(items),
		CreatedAt:     receipt.CreatedAt,
	}
	if err := j.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to journal receipt %s: %w", receipt.ID, err)
	}
	return nil
}

// Recent returns the newest entries, most recent first.
func (j *GORMJournal) Recent(limit int) ([]Entry, error) {
	var entries []Entry
	if err := j.db.Order("id DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return entries, nil
}
