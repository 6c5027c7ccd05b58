package api

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"kasir/internal/models"
)

// SubmitCheckout commits a finalized cart. The request is validated before
// leaving the terminal; backend rejection messages come back verbatim in the
// returned error.
func (c *Client) SubmitCheckout(ctx context.Context, req models.CheckoutRequest) (*models.Receipt, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid checkout request: %w", err)
	}
	var receipt models.Receipt
	if err := c.rest.Post(ctx, "/transactions", req, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// ListTransactions retrieves the transaction history for a date range.
func (c *Client) ListTransactions(ctx context.Context, from, to time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := c.rest.Get(ctx, "/transactions?"+rangeQuery(from, to), &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func rangeQuery(from, to time.Time) string {
	q := url.Values{}
	q.Set("from", from.Format("2006-01-02"))
	q.Set("to", to.Format("2006-01-02"))
	return q.Encode()
}
