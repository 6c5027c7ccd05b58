package api

import (
	"context"

	"kasir/internal/models"
)

// CurrentShiftID returns the id of the logged-in cashier's open shift, or ""
// when no shift is open. The backend returns a null payload in that case.
func (c *Client) CurrentShiftID(ctx context.Context) (string, error) {
	var shift *models.Shift
	if err := c.rest.Get(ctx, "/shifts/current", &shift); err != nil {
		return "", err
	}
	if shift == nil {
		return "", nil
	}
	return shift.ID, nil
}

type openShiftRequest struct {
	OpeningCash float64 `json:"opening_cash" validate:"gte=0"`
}

// OpenShift opens a till session with the counted opening cash.
func (c *Client) OpenShift(ctx context.Context, openingCash float64) (*models.Shift, error) {
	req := openShiftRequest{OpeningCash: openingCash}
	if err := c.validate.Struct(req); err != nil {
		return nil, err
	}
	var shift models.Shift
	if err := c.rest.Post(ctx, "/shifts/open", req, &shift); err != nil {
		return nil, err
	}
	return &shift, nil
}

type closeShiftRequest struct {
	ClosingCash float64 `json:"closing_cash" validate:"gte=0"`
}

// CloseShift closes the current till session with the counted closing cash.
func (c *Client) CloseShift(ctx context.Context, closingCash float64) (*models.Shift, error) {
	req := closeShiftRequest{ClosingCash: closingCash}
	if err := c.validate.Struct(req); err != nil {
		return nil, err
	}
	var shift models.Shift
	if err := c.rest.Post(ctx, "/shifts/close", req, &shift); err != nil {
		return nil, err
	}
	return &shift, nil
}
