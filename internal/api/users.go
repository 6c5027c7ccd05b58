package api

import (
	"context"
	"fmt"

	"kasir/internal/models"
)

// ListUsers retrieves all operator accounts. Admin only; the backend
// enforces the role.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.rest.Get(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser creates a new operator account.
func (c *Client) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}
	var user models.User
	if err := c.rest.Post(ctx, "/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates an existing operator account.
func (c *Client) UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.User, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}
	var user models.User
	if err := c.rest.Put(ctx, "/users/"+id, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an operator account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.rest.Delete(ctx, "/users/"+id)
}
