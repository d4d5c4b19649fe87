package constant

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// Context keys populated by the auth middleware
const (
	CtxKeyUserExtID ContextKey = "user_ext_id"
	CtxKeyUserRole  ContextKey = "user_role"
)

// Roles a user account can hold
const (
	RoleAdmin   = "admin"
	RoleTrainer = "trainer"
	RoleTrainee = "trainee"
)
