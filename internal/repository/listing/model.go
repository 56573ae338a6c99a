package listing

import "time"

type ShipmentDB struct {
	ID                   string
	ShipperID            string
	Title                string
	PickupLocation       string
	DeliveryLocation     string
	Weight               float64
	Dimensions           string
	PreferredDate        *time.Time
	PreferredVehicleType string
	Status               string
	CreatedAt            time.Time
}

type TripDB struct {
	ID            string
	CarrierID     string
	FromLocation  string
	ToLocation    string
	TravelDate    time.Time
	Capacity      float64
	VehicleType   string
	CarrierRating *float64
	Status        string
	CreatedAt     time.Time
}
