package journal_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"kasir/internal/journal"
	"kasir/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testReceipt(id string, total float64) *models.Receipt {
	return &models.Receipt{
		ID:            id,
		Code:          "TRX-" + id,
		TotalAmount:   total,
		PaymentMethod: models.PaymentCash,
		CashierID:     "u-budi",
		ShiftID:       "shift-1",
		Items: []models.ReceiptItem{
			{ProductID: "p-kopi", ProductName: "Kopi", Quantity: 2, Price: 25000, Subtotal: 50000},
		},
		CreatedAt: time.Now(),
	}
}

// openTestJournal opens a named in-memory database so each test gets its own
// isolated journal even across pooled connections.
func openTestJournal(t *testing.T, name string) *journal.GORMJournal {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	jrnl, err := journal.NewGORMJournal(db)
	if err != nil {
		t.Fatalf("failed to create journal: %v", err)
	}
	return jrnl
}

func TestGORMJournal_AppendAndRecent(t *testing.T) {
	jrnl := openTestJournal(t, "journal_append_recent")

	for i := 1; i <= 3; i++ {
		assert.NoError(t, jrnl.Append(testReceipt(fmt.Sprintf("trx-%d", i), float64(i)*10000)))
	}

	entries, err := jrnl.Recent(2)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	// Most recent first.
	assert.Equal(t, "trx-3", entries[0].ReceiptID)
	assert.Equal(t, "trx-2", entries[1].ReceiptID)
	assert.Equal(t, 30000.0, entries[0].TotalAmount)

	// The item lines survive the JSON round trip.
	var items []models.ReceiptItem
	assert.NoError(t, json.Unmarshal([]byte(entries[0].Items), &items))
	assert.Len(t, items, 1)
	assert.Equal(t, "Kopi", items[0].ProductName)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestGORMJournal_DuplicateReceiptRejected(t *testing.T) {
	jrnl := openTestJournal(t, "journal_duplicate")

	assert.NoError(t, jrnl.Append(testReceipt("trx-1", 50000)))
	assert.Error(t, jrnl.Append(testReceipt("trx-1", 50000)), "receipt ids are unique")
}

func TestMockJournal(t *testing.T) {
	jrnl := journal.NewMockJournal()

	assert.NoError(t, jrnl.Append(testReceipt("trx-1", 10000)))
	assert.NoError(t, jrnl.Append(testReceipt("trx-2", 20000)))

	entries, err := jrnl.Recent(5)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "trx-2", entries[0].ReceiptID)
	assert.Equal(t, "trx-1", entries[1].ReceiptID)
}
