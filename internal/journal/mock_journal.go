package journal

import (
	"encoding/json"
	"fmt"
	"sync"

	"kasir/internal/models"
)

// MockJournal is an in-memory implementation of Journal.
type MockJournal struct {
	mu      sync.RWMutex
	entries []Entry
	nextID  uint
}

// NewMockJournal creates a new instance of MockJournal.
func NewMockJournal() *MockJournal {
	return &MockJournal{nextID: 1}
}

// Append records a committed receipt.
func (j *MockJournal) Append(receipt *models.Receipt) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	items, err := json.Marshal(receipt.Items)
	if err != nil {
		return fmt.Errorf("failed to encode receipt items: %w", err)
	}
	j.entries = append(j.entries, Entry{
		ID:            j.nextID,
		ReceiptID:     receipt.ID,
		Code:          receipt.Code,
		TotalAmount:   receipt.TotalAmount,
		PaymentMethod: receipt.PaymentMethod,
		CashierID:     receipt.CashierID,
		ShiftID:       receipt.ShiftID,
		Items:         string(items),
		CreatedAt:     receipt.CreatedAt,
	})
	j.nextID++
	return nil
}

// Recent returns the newest entries, most recent first.
func (j *MockJournal) Recent(limit int) ([]Entry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]Entry, 0, limit)
	for i := len(j.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, j.entries[i])
	}
	return out, nil
}
