package models

import "time"

// Shift is a cashier's open till session. Non-admin checkouts must be
// attributed to one.
type Shift struct {
	ID          string     `json:"id"`
	CashierID   string     `json:"cashier_id"`
	OpeningCash float64    `json:"opening_cash"`
	ClosingCash float64    `json:"closing_cash,omitempty"`
	OpenedAt    time.Time  `json:"opened_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
}
