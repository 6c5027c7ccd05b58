package api

import (
	"context"

	"kasir/internal/models"
)

// ListProducts retrieves the full product catalog. The stock values in the
// result are a snapshot; they go stale as other terminals sell.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.rest.Get(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListCategories retrieves the product categories.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.rest.Get(ctx, "/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
