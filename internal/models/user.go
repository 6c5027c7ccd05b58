package models

// Roles recognized by the backend. Cashiers must have an open shift to
// record a sale; admins are exempt.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// User represents an operator of the terminal.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username" validate:"required,min=3,max=100"`
	Role     string `json:"role" validate:"required,oneof=admin cashier"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CreateUserRequest is the body for creating a new operator account.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin cashier"`
}

// UpdateUserRequest is the body for updating an existing operator account.
// The password is optional; an empty value leaves it unchanged.
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin cashier"`
}
