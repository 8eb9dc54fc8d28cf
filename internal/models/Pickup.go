package models

// Pickup frequencies.
const (
	FrequencyDaily   = "Daily"
	FrequencyWeekly  = "Weekly"
	FrequencyMonthly = "Monthly"
)

// Pickup is an ad hoc, schedulable collection job with its own location and
// time slot, distinct from fixed-route assignments.
type Pickup struct {
	ID        string `json:"id"`
	Zone      string `json:"zone"`
	Location  string `json:"location"`
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM, at least an hour after start
	Frequency string `json:"frequency"`
	Vehicle   string `json:"vehicle"`
	Worker1   string `json:"worker1"`
	Worker2   string `json:"worker2"`
	Status    string `json:"status"`
}

// HasWorker reports whether the given worker id holds one of the two slots.
func (p Pickup) HasWorker(workerID string) bool {
	return p.Worker1 == workerID || p.Worker2 == workerID
}
