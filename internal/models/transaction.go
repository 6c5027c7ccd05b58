package models

import "time"

// Payment methods accepted at the till. The backend owns final acceptance;
// this set mirrors what the transaction screen offers.
const (
	PaymentCash     = "cash"
	PaymentQRIS     = "qris"
	PaymentDebit    = "debit"
	PaymentTransfer = "transfer"
)

// CheckoutItem is one cart line as submitted to the backend. It carries the
// product id and quantity only: the authoritative unit price is resolved
// server-side so a stale or tampered client-held price can never reach a
// stored transaction.
type CheckoutItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CheckoutRequest is the write-only projection of a cart sent once per
// checkout. ShiftID is required for non-admin actors and omitted otherwise.
type CheckoutRequest struct {
	TotalAmount   float64        `json:"total_amount" validate:"required,gt=0"`
	PaymentMethod string         `json:"payment_method" validate:"required,oneof=cash qris debit transfer"`
	Items         []CheckoutItem `json:"items" validate:"required,min=1,dive"`
	ShiftID       string         `json:"shift_id,omitempty"`
}

// ReceiptItem is a settled transaction line with the price the server
// resolved at commit time.
type ReceiptItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
}

// Receipt is the backend's record of a committed checkout.
type Receipt struct {
	ID            string        `json:"id"`
	Code          string        `json:"code"`
	TotalAmount   float64       `json:"total_amount"`
	PaymentMethod string        `json:"payment_method"`
	CashierID     string        `json:"cashier_id"`
	CashierName   string        `json:"cashier_name,omitempty"`
	ShiftID       string        `json:"shift_id,omitempty"`
	Items         []ReceiptItem `json:"items"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Transaction is a row in the transaction history screen.
type Transaction struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	TotalAmount   float64   `json:"total_amount"`
	PaymentMethod string    `json:"payment_method"`
	CashierName   string    `json:"cashier_name"`
	CreatedAt     time.Time `json:"created_at"`
}
