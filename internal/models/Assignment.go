package models

// Shifts for an assignment.
const (
	ShiftDay   = "DAY"
	ShiftNight = "NIGHT"
)

// Assignment binds a vehicle, route, zone and exactly two distinct workers
// to a shift.
type Assignment struct {
	AssignmentID    string   `json:"assignmentId"`
	Zone            string   `json:"zone"`
	Route           string   `json:"route"`
	Vehicle         string   `json:"vehicle"`
	AssignedWorkers []string `json:"assignedWorkers"`
	Shift           string   `json:"shift"`
}

// AssignmentRequest is the create/update payload the backend expects.
type AssignmentRequest struct {
	ZoneID    string   `json:"zoneId"`
	RouteID   string   `json:"routeId"`
	VehicleID string   `json:"vehicleId"`
	WorkerIDs []string `json:"workerIds"`
	Shift     string   `json:"shift"`
}

// HasWorker reports whether the given worker id holds one of the two slots.
func (a Assignment) HasWorker(workerID string) bool {
	for _, w := range a.AssignedWorkers {
		if w == workerID {
			return true
		}
	}
	return false
}
