package entities

import "time"

type Shipment struct {
	ID               string
	ShipperID        string
	Title            string
	PickupLocation   string
	DeliveryLocation string
	// кг
	Weight float64
	// "ДxШxВ" в сантиметрах, может быть пустой
	Dimensions           string
	PreferredDate        time.Time
	PreferredVehicleType string
	Status               ShipmentStatusType
	CreatedAt            time.Time
}

type ShipmentStatusType string

const (
	ShipmentPending   ShipmentStatusType = "pending"
	ShipmentMatched   ShipmentStatusType = "matched"
	ShipmentInTransit ShipmentStatusType = "in_transit"
	ShipmentDelivered ShipmentStatusType = "delivered"
	ShipmentCancelled ShipmentStatusType = "cancelled"
)

func (s ShipmentStatusType) String() string {
	return string(s)
}
