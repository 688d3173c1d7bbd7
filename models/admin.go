package models

type UserRole string

const (
	RoleAdmin UserRole = "admin"
)

// Admin is the single operator account configured through the environment.
type Admin struct {
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}
