package models

// VehicleStatus is the stock status of a fleet vehicle.
type VehicleStatus string

const (
	VehicleAvailable  VehicleStatus = "available"
	VehicleOnHire     VehicleStatus = "on_hire"
	VehicleInWorkshop VehicleStatus = "in_workshop"
	VehicleStolen     VehicleStatus = "stolen"
	VehicleWithDriver VehicleStatus = "with_driver"
)

// Vehicle represents a fleet vehicle. Registration is treated as the
// natural key.
type Vehicle struct {
	ID           int64         `json:"id"`
	Model        string        `json:"model"`
	Registration string        `json:"registration"`
	Status       VehicleStatus `json:"status"`
}

// IsValidVehicleStatus checks if a vehicle status value is known.
func IsValidVehicleStatus(status VehicleStatus) bool {
	switch status {
	case VehicleAvailable, VehicleOnHire, VehicleInWorkshop, VehicleStolen, VehicleWithDriver:
		return true
	default:
		return false
	}
}
