package models

// WasteLog is one collection run as reported by the wastelogs endpoints.
// EndTime and Weight stay empty while a run is still in progress.
type WasteLog struct {
	ZoneID    string   `json:"zoneId"`
	VehicleID string   `json:"vehicleId"`
	StartTime string   `json:"collectionStartTime"`
	EndTime   string   `json:"collectionEndTime"`
	Weight    *float64 `json:"weightCollected"`
	Status    string   `json:"status"`
}

// CollectionSummary is the weekly/monthly aggregate the report endpoints
// return.
type CollectionSummary struct {
	TotalWeight      float64 `json:"totalWeight"`
	TotalCollections int     `json:"totalCollections"`
}
