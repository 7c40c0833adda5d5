package constants

// User roles
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
	RoleBuyer  = "buyer"
)

// StatusVerified is set on a user by the admin promote route.
const StatusVerified = "verified"

// ContextEmailKey is where the verify middleware stores the decoded email.
const ContextEmailKey = "email"

// Error messages
const (
	ErrUnauthorizedAccess = "unauthorized access"
	ErrForbiddenAccess    = "forbidden access"
	ErrInvalidID          = "Invalid id"
	ErrInvalidInput       = "Invalid input"
	ErrUnexpected         = "Unexpected error"
)
