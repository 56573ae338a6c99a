package scorer

import "matching/internal/entities"

// UtilizationScore оценивает загрузку рейса: вес / свободная вместимость.
// Перегруз всегда 0.
func UtilizationScore(weight, capacity float64) float64 {
	weight, capacity = nonNegative(weight), nonNegative(capacity)
	if weight > capacity {
		return 0
	}
	if capacity == 0 {
		return 0.4
	}

	utilization := weight / capacity
	switch {
	case utilization >= 0.7 && utilization <= 0.9:
		return 1.0
	case utilization >= 0.5:
		return 0.8
	case utilization >= 0.3:
		return 0.6
	default:
		return 0.4
	}
}

// CarrierClassScore сравнивает класс груза с классом транспорта рейса.
func CarrierClassScore(b TierBreakpoints, shipment entities.Shipment, trip entities.Trip) float64 {
	weight, capacity := nonNegative(shipment.Weight), nonNegative(trip.Capacity)
	if weight > capacity {
		return 0
	}

	volume := ParseDimensions(shipment.Dimensions)
	available := TierForVehicle(trip.VehicleType)
	if (weight == 0 && volume == 0) || available == TierUnknown {
		// сравнивать не с чем
		return 0.5
	}

	required := b.Classify(weight, volume)
	switch gap := available - required; {
	case gap < 0:
		return 0
	case gap == 0:
		return 1.0
	case gap == 1:
		return 0.8
	default:
		return 0.7
	}
}
