package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleDriver    = "driver"
	RolePassenger = "passenger"
	RoleAdmin     = "admin"
)

// Verification holds the three driver verification flags. A driver may only
// publish trips once all three are true.
type Verification struct {
	Email    bool `json:"email"`
	Phone    bool `json:"phone"`
	Identity bool `json:"identity"`
}

// IsComplete reports whether every verification step has passed
func (v Verification) IsComplete() bool {
	return v.Email && v.Phone && v.Identity
}

// DriverInfo holds the driver profile fields relevant to trips
type DriverInfo struct {
	CarPlate      string `json:"car_plate"`
	CarModel      string `json:"car_model"`
	LicenseNumber string `json:"license_number"`
	Seats         int    `json:"seats"`
}

// User is the identity-service view of a user consumed by the trip core
type User struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Role         string       `json:"role"`
	Verification Verification `json:"verification"`
	DriverInfo   *DriverInfo  `json:"driver_info,omitempty"`
	Rating       float64      `json:"rating"`
	CreatedAt    time.Time    `json:"created_at"`
}

// IsFullyVerified reports whether the user is a driver cleared to publish trips
func (u *User) IsFullyVerified() bool {
	return u.Role == RoleDriver && u.Verification.IsComplete()
}

// VehicleSnapshot copies the driver's vehicle profile into the immutable
// per-trip snapshot. Returns nil when the user has no driver profile.
func (u *User) VehicleSnapshot() *VehicleInfo {
	if u.DriverInfo == nil {
		return nil
	}
	return &VehicleInfo{
		CarPlate: u.DriverInfo.CarPlate,
		CarModel: u.DriverInfo.CarModel,
		Seats:    u.DriverInfo.Seats,
	}
}
