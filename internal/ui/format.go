// Package ui holds pure presentation helpers for the terminal. Nothing here
// touches cart state or performs I/O; formatting is layered on top of the
// values it is given.
package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"kasir/internal/cart"
	"kasir/internal/models"
)

// FormatRupiah renders an amount as Indonesian rupiah with dot thousands
// separators and no decimals, e.g. 25000 -> "Rp25.000".
func FormatRupiah(amount float64) string {
	neg := amount < 0
	n := int64(math.Round(math.Abs(amount)))
	digits := strconv.FormatInt(n, 10)

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}

	if neg {
		return "-Rp" + b.String()
	}
	return "Rp" + b.String()
}

// RenderCart renders the cart lines and total as a plain-text table.
func RenderCart(lines []cart.Line, total float64) string {
	if len(lines) == 0 {
		return "Cart is empty.\n"
	}
	var b strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&b, "%-24s %3d x %-12s = %s\n",
			l.Name, l.Quantity, FormatRupiah(l.UnitPrice), FormatRupiah(l.Subtotal()))
	}
	fmt.Fprintf(&b, "%-45s %s\n", "Total:", FormatRupiah(total))
	return b.String()
}

// RenderReceipt renders a committed receipt for display at the till.
func RenderReceipt(r *models.Receipt) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Receipt %s\n", r.Code)
	for _, item := range r.Items {
		fmt.Fprintf(&b, "%-24s %3d x %-12s = %s\n",
			item.ProductName, item.Quantity, FormatRupiah(item.Price), FormatRupiah(item.Subtotal))
	}
	fmt.Fprintf(&b, "%-45s %s\n", "Total:", FormatRupiah(r.TotalAmount))
	fmt.Fprintf(&b, "Paid by %s at %s\n", r.PaymentMethod, r.CreatedAt.Format("2006-01-02 15:04"))
	return b.String()
}
