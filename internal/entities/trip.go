package entities

import "time"

type Trip struct {
	ID           string
	CarrierID    string
	FromLocation string
	ToLocation   string
	TravelDate   time.Time
	// свободная вместимость, кг
	Capacity    float64
	VehicleType string
	// 0-5, nil если у перевозчика еще нет оценок
	CarrierRating *float64
	Status        TripStatusType
	CreatedAt     time.Time
}

type TripStatusType string

const (
	TripActive    TripStatusType = "active"
	TripFull      TripStatusType = "full"
	TripCompleted TripStatusType = "completed"
	TripCancelled TripStatusType = "cancelled"
)

func (s TripStatusType) String() string {
	return string(s)
}
