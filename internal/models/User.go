package models

// Roles recognised by the portal's view router.
const (
	RoleAdmin     = "Admin"
	RoleScheduler = "Scheduler"
	RoleWorker    = "Worker"
)

// User is the authenticated identity the backend (or demo fallback) hands
// back on login.
type User struct {
	EmpID string `json:"empId"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginRequest is the /auth/login payload.
type LoginRequest struct {
	EmpID    string `json:"empId"`
	Password string `json:"password"`
}

// LoginResponse carries the user plus the bearer token for later calls.
type LoginResponse struct {
	User
	Token string `json:"token"`
}
