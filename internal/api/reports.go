package api

import (
	"context"
	"time"

	"kasir/internal/models"
)

// Cashflow retrieves the server-computed cashflow summary for a date range.
func (c *Client) Cashflow(ctx context.Context, from, to time.Time) (*models.CashflowSummary, error) {
	var summary models.CashflowSummary
	if err := c.rest.Get(ctx, "/reports/cashflow?"+rangeQuery(from, to), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Profit retrieves the server-computed profit report for a date range.
func (c *Client) Profit(ctx context.Context, from, to time.Time) (*models.ProfitReport, error) {
	var report models.ProfitReport
	if err := c.rest.Get(ctx, "/reports/profit?"+rangeQuery(from, to), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Dashboard retrieves the metrics backing the dashboard screen.
func (c *Client) Dashboard(ctx context.Context) (*models.DashboardSummary, error) {
	var summary models.DashboardSummary
	if err := c.rest.Get(ctx, "/dashboard", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
