// Package cart implements the cart and checkout state machine of the
// transaction screen. The cart holds at most one line per product, keeps
// every quantity within the product's stock snapshot, and never mutates the
// shared product list it validates against.
package cart

import "kasir/internal/models"

// Status is the cart's lifecycle state.
type Status int

const (
	// StatusEmpty is a cart with no lines.
	StatusEmpty Status = iota
	// StatusPopulated is a cart with at least one line.
	StatusPopulated
	// StatusSubmitting is a populated cart with a checkout round trip in
	// flight. All mutations and further checkouts are rejected until the
	// round trip resolves.
	StatusSubmitting
)

// Line is one cart entry: a product reference plus denormalized display
// fields and the stock snapshot captured when the product was added.
type Line struct {
	ProductID     string
	Name          string
	UnitPrice     float64
	StockSnapshot int
	Quantity      int
}

// Subtotal returns quantity times unit price for this line.
func (l Line) Subtotal() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// Cart is an ordered collection of lines keyed by product id.
type Cart struct {
	lines  []*Line
	index  map[string]*Line
	status Status
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{
		index: make(map[string]*Line),
	}
}

// Status returns the cart's current lifecycle state.
func (c *Cart) Status() Status {
	return c.status
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, *l)
	}
	return out
}

// Total returns the sum of quantity times unit price over all lines. It is
// recomputed on every call and never stored, so it cannot drift from the
// lines it summarizes. An empty cart totals zero.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// AddItem puts one unit of the product in the cart, capturing its current
// stock as the line's snapshot. A product already in the cart is incremented
// instead. A product with no stock is refused with no state change.
func (c *Cart) AddItem(p models.Product) error {
	if c.status == StatusSubmitting {
		return ErrCheckoutInProgress
	}
	if p.Stock <= 0 {
		return &OutOfStockError{Name: p.Name}
	}
	if _, ok := c.index[p.ID]; ok {
		return c.IncreaseQuantity(p.ID)
	}
	line := &Line{
		ProductID:     p.ID,
		Name:          p.Name,
		UnitPrice:     p.Price,
		StockSnapshot: p.Stock,
		Quantity:      1,
	}
	c.lines = append(c.lines, line)
	c.index[p.ID] = line
	c.status = StatusPopulated
	return nil
}

// IncreaseQuantity increments a line by one, bounded by its stock snapshot.
func (c *Cart) IncreaseQuantity(productID string) error {
	if c.status == StatusSubmitting {
		return ErrCheckoutInProgress
	}
	line, ok := c.index[productID]
	if !ok {
		return ErrNotInCart
	}
	if line.Quantity+1 > line.StockSnapshot {
		return &StockLimitError{Name: line.Name, Stock: line.StockSnapshot}
	}
	line.Quantity++
	return nil
}

// DecreaseQuantity decrements a line by one with a floor of one. Decreasing
// at one is a no-op; removal is RemoveItem's job.
func (c *Cart) DecreaseQuantity(productID string) error {
	if c.status == StatusSubmitting {
		return ErrCheckoutInProgress
	}
	line, ok := c.index[productID]
	if !ok {
		return ErrNotInCart
	}
	if line.Quantity > 1 {
		line.Quantity--
	}
	return nil
}

// RemoveItem deletes a line unconditionally. Removing the last line returns
// the cart to StatusEmpty.
func (c *Cart) RemoveItem(productID string) error {
	if c.status == StatusSubmitting {
		return ErrCheckoutInProgress
	}
	if _, ok := c.index[productID]; !ok {
		return ErrNotInCart
	}
	delete(c.index, productID)
	for i, l := range c.lines {
		if l.ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
	if len(c.lines) == 0 {
		c.status = StatusEmpty
	}
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[string]*Line)
	c.status = StatusEmpty
}

// beginSubmit moves the cart into StatusSubmitting for the duration of a
// checkout round trip. This is the double-submit guard: a second checkout
// cannot start until the first resolves.
func (c *Cart) beginSubmit() error {
	if c.status == StatusSubmitting {
		return ErrCheckoutInProgress
	}
	if c.Empty() {
		return ErrEmptyCart
	}
	c.status = StatusSubmitting
	return nil
}

// failSubmit returns a failed checkout to StatusPopulated with every line
// untouched, so the cashier's work is not lost.
func (c *Cart) failSubmit() {
	c.status = StatusPopulated
}

// completeSubmit clears the cart after a successful checkout.
func (c *Cart) completeSubmit() {
	c.Clear()
}
