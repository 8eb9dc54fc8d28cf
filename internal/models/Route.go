package models

// Route is a planned path of stops within a zone, traversed by a route truck.
type Route struct {
	ID            string `json:"id"`
	ZoneID        string `json:"zoneId"`
	Name          string `json:"name"`
	PathDetails   string `json:"pathDetails"`
	EstimatedTime string `json:"estimatedTime"` // "<n> hour(s)" or "<n> minute(s)"
}
