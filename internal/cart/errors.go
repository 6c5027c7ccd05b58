package cart

import (
	"errors"
	"fmt"
	"strings"
)

// These are user-input conditions, not system faults: they resolve to a
// message at the till and are never logged as errors.
var (
	// ErrEmptyCart rejects a checkout attempt with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrCheckoutInProgress rejects re-entry while a checkout round trip is
	// in flight.
	ErrCheckoutInProgress = errors.New("a checkout is already in progress")
	// ErrNotInCart reports an operation on a product with no cart line.
	ErrNotInCart = errors.New("product is not in the cart")
	// ErrNoActiveShift reports a non-admin checkout without an open shift.
	// Terminal for the session: the cashier must open a shift or log in
	// again, not retry.
	ErrNoActiveShift = errors.New("no open shift for this cashier")
)

// OutOfStockError reports an add attempt against a product with no stock.
type OutOfStockError struct {
	Name string
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("%s is out of stock", e.Name)
}

// StockLimitError reports an increment that would exceed the line's stock
// snapshot.
type StockLimitError struct {
	Name  string
	Stock int
}

func (e *StockLimitError) Error() string {
	return fmt.Sprintf("only %d of %s available", e.Stock, e.Name)
}

// StockConflict is one cart line whose quantity exceeds the latest known
// stock for its product.
type StockConflict struct {
	ProductID string
	Name      string
	Requested int
	Available int
}

// StockConflictError is the local pre-submit rejection: every offending line
// is named so the cashier can fix the whole cart in one pass. The backend is
// never contacted when this fires.
type StockConflictError struct {
	Conflicts []StockConflict
}

func (e *StockConflictError) Error() string {
	parts := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		parts = append(parts, fmt.Sprintf("%s (requested %d, available %d)", c.Name, c.Requested, c.Available))
	}
	return "stock has changed: " + strings.Join(parts, ", ")
}
