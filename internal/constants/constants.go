package constants

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ValidRole reports whether s is one of the two assignable roles.
func ValidRole(s string) bool {
	return s == string(RoleUser) || s == string(RoleAdmin)
}

// Task statuses are free-form strings as far as filtering is concerned;
// these are the values the service itself assigns.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)
