// Package api is the typed client for the POS backend. It covers every
// surface the terminal screens use: authentication, catalog, shifts,
// checkout, transaction history, reports, and user management. All business
// logic and persistence live on the backend; this package only shapes
// requests and decodes responses.
package api

import (
	"context"
	"fmt"

	"kasir/internal/models"
	"kasir/pkg/restclient"

	"github.com/go-playground/validator/v10"
)

// Client is the POS backend client.
type Client struct {
	rest     *restclient.Client
	validate *validator.Validate
}

// NewClient creates a Client on top of an authenticated transport.
func NewClient(rest *restclient.Client) *Client {
	return &Client{
		rest:     rest,
		validate: validator.New(),
	}
}

// LoginRequest is the body for the login call.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login authenticates the operator and stores the issued bearer token in the
// transport's credential, starting the session.
func (c *Client) Login(ctx context.Context, username, password string) (*models.User, error) {
	req := LoginRequest{Username: username, Password: password}
	if err := c.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("username and password are required")
	}

	var resp loginResponse
	if err := c.rest.PostPublic(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	c.rest.Credential().Set(resp.Token)
	return &resp.User, nil
}

// Logout clears the stored credential, ending the session. The backend keeps
// no session state beyond the token itself.
func (c *Client) Logout() {
	c.rest.Credential().Clear()
}
