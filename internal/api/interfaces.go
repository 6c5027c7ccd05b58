package api

import (
	"context"

	"kasir/internal/models"
)

// ProductSource supplies the product catalog on demand. The cart consumes it
// in full for stock re-validation; there is no pagination at this layer.
type ProductSource interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// ShiftProvider reports the current open till session for the logged-in
// cashier. An empty id with a nil error means no shift is open.
type ShiftProvider interface {
	CurrentShiftID(ctx context.Context) (string, error)
}

// CheckoutSubmitter commits a finalized cart to the backend.
type CheckoutSubmitter interface {
	SubmitCheckout(ctx context.Context, req models.CheckoutRequest) (*models.Receipt, error)
}
