package scorer

import "matching/internal/entities"

const (
	ReasonPickupMatches   = "pickup location matches"
	ReasonDeliveryMatches = "delivery location matches"
	ReasonCapacityOK      = "capacity sufficient"
	ReasonClassFits       = "vehicle class fits cargo"
	ReasonDatesAlign      = "dates align"
	ReasonVehicleMatches  = "vehicle type matches"
	ReasonWellRated       = "carrier well-rated"
)

const (
	disclosureThreshold = 0.8
	wellRatedThreshold  = 4.5
)

// reasons на счет не влияют, порядок фиксирован
func (s *Scorer) reasons(shipment entities.Shipment, trip entities.Trip, sub entities.SubScores) []string {
	reasons := make([]string, 0, 7)

	if sub.Pickup >= disclosureThreshold {
		reasons = append(reasons, ReasonPickupMatches)
	}
	if sub.Delivery >= disclosureThreshold {
		reasons = append(reasons, ReasonDeliveryMatches)
	}

	weight, capacity := nonNegative(shipment.Weight), nonNegative(trip.Capacity)
	if capacity > 0 && weight <= capacity {
		reasons = append(reasons, ReasonCapacityOK)
	}
	if s.opts.CapacityPolicy == CarrierClass && sub.Capacity >= disclosureThreshold {
		reasons = append(reasons, ReasonClassFits)
	}

	if sub.Date >= disclosureThreshold {
		reasons = append(reasons, ReasonDatesAlign)
	}
	if !isAnyVehicle(normalizeVehicleTag(shipment.PreferredVehicleType)) && sub.Vehicle == vehicleExact {
		reasons = append(reasons, ReasonVehicleMatches)
	}
	if trip.CarrierRating != nil && *trip.CarrierRating >= wellRatedThreshold {
		reasons = append(reasons, ReasonWellRated)
	}

	return reasons
}
