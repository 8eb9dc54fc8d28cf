package models

// Vehicle types. Type is immutable after creation.
const (
	VehicleTypeRouteTruck  = "route truck"
	VehicleTypePickupTruck = "pickup truck"
)

// Vehicle statuses. "unavailable" implies an active assignment, which blocks
// deletion.
const (
	VehicleStatusAvailable        = "available"
	VehicleStatusUnderMaintenance = "under maintenance"
	VehicleStatusUnavailable      = "unavailable"
)

type Vehicle struct {
	ID                 string `json:"id"`
	Type               string `json:"type"`
	RegistrationNumber string `json:"registrationNumber"`
	Status             string `json:"status"`
}
