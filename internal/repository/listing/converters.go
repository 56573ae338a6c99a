package listing

import "matching/internal/entities"

func ShipmentToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}
	shipment := &entities.Shipment{
		ID:                   s.ID,
		ShipperID:            s.ShipperID,
		Title:                s.Title,
		PickupLocation:       s.PickupLocation,
		DeliveryLocation:     s.DeliveryLocation,
		Weight:               s.Weight,
		Dimensions:           s.Dimensions,
		PreferredVehicleType: s.PreferredVehicleType,
		Status:               entities.ShipmentStatusType(s.Status),
		CreatedAt:            s.CreatedAt,
	}
	// без даты остается нулевое время, скорер дает за дату 0
	if s.PreferredDate != nil {
		shipment.PreferredDate = *s.PreferredDate
	}
	return shipment
}

func TripToDomain(t *TripDB) *entities.Trip {
	if t == nil {
		return nil
	}
	return &entities.Trip{
		ID:            t.ID,
		CarrierID:     t.CarrierID,
		FromLocation:  t.FromLocation,
		ToLocation:    t.ToLocation,
		TravelDate:    t.TravelDate,
		Capacity:      t.Capacity,
		VehicleType:   t.VehicleType,
		CarrierRating: t.CarrierRating,
		Status:        entities.TripStatusType(t.Status),
		CreatedAt:     t.CreatedAt,
	}
}
