package match

import "time"

type MatchDB struct {
	ID              int64
	ShipmentID      string
	TripID          string
	Score           int
	PickupScore     float64
	DeliveryScore   float64
	RouteScore      float64
	CapacityScore   float64
	DateScore       float64
	VehicleScore    float64
	Reasons         []string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ExpiresAt       time.Time
	ShipperViewedAt *time.Time
	CarrierViewedAt *time.Time
}

type MatchModifyDB struct {
	ID              *int64
	ShipmentID      *string
	TripID          *string
	Score           *int
	PickupScore     *float64
	DeliveryScore   *float64
	RouteScore      *float64
	CapacityScore   *float64
	DateScore       *float64
	VehicleScore    *float64
	Reasons         []string
	Status          *string
	ExpiresAt       *time.Time
	ShipperViewedAt *time.Time
	CarrierViewedAt *time.Time
}
