package models

// Zone is a geographic service area. Owned by the backend; the portal only
// holds a cache copy.
type Zone struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	AreaCoverage string `json:"areaCoverage"`
	Status       string `json:"status"`
}

// ZoneNameID is the reduced shape returned by the namesandids endpoint.
type ZoneNameID struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
