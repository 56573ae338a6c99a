package match_score_post

import (
	"github.com/AlekSi/pointer"
	"matching/internal/entities"
	"matching/internal/generated/dto"
)

func toShipment(in dto.ShipmentInput) entities.Shipment {
	shipment := entities.Shipment{
		ID:                   pointer.Get(in.ID),
		PickupLocation:       in.PickupLocation,
		DeliveryLocation:     in.DeliveryLocation,
		Weight:               pointer.Get(in.Weight),
		Dimensions:           pointer.Get(in.Dimensions),
		PreferredVehicleType: pointer.Get(in.PreferredVehicleType),
		Status:               entities.ShipmentPending,
	}
	if in.PreferredDate != nil {
		shipment.PreferredDate = in.PreferredDate.Time
	}
	return shipment
}

func toTrip(in dto.TripInput) entities.Trip {
	return entities.Trip{
		ID:            pointer.Get(in.ID),
		FromLocation:  in.FromLocation,
		ToLocation:    in.ToLocation,
		TravelDate:    in.TravelDate.Time,
		Capacity:      pointer.Get(in.Capacity),
		VehicleType:   pointer.Get(in.VehicleType),
		CarrierRating: in.CarrierRating,
		Status:        entities.TripActive,
	}
}
