package models

// Worker statuses. A worker holds at most one route/pickup slot at a time.
const (
	WorkerStatusAvailable = "available"
	WorkerStatusOccupied  = "occupied"
	WorkerStatusAbsent    = "absent"
)

type Worker struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	RoleID string `json:"roleId"`
	Status string `json:"status"`
}
