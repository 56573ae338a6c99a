package scorer

import (
	"fmt"
	"math"

	"matching/internal/entities"
)

const (
	maxScore = 100

	strictLegThreshold = 0.8
	strictRouteFloor   = 0.1
	// нераспознанные, но непустые локации в нестрогом режиме
	lenientLocationFloor = 0.2
)

// Scorer чистая функция оценки пары груз/рейс. Состояния не меняет,
// безопасен для параллельного вызова.
type Scorer struct {
	opts      Options
	weights   Weights
	threshold int
}

func New(opts Options) (*Scorer, error) {
	weights, err := opts.Scheme.Weights()
	if err != nil {
		return nil, err
	}
	if weights.sum() != maxScore {
		return nil, fmt.Errorf("%w: weights of %s sum to %d", ErrInvalidOptions, opts.Scheme, weights.sum())
	}

	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Scorer{
		opts:      opts,
		weights:   weights,
		threshold: *opts.AcceptanceThreshold,
	}, nil
}

func (s *Scorer) Score(shipment entities.Shipment, trip entities.Trip) entities.MatchResult {
	sub := entities.SubScores{
		Pickup:   s.legSimilarity(shipment.PickupLocation, trip.FromLocation),
		Delivery: s.legSimilarity(shipment.DeliveryLocation, trip.ToLocation),
		Date:     DateScore(shipment.PreferredDate, trip.TravelDate),
		Vehicle:  VehicleScore(shipment.PreferredVehicleType, trip.VehicleType),
	}
	sub.Route = s.routeScore(sub.Pickup, sub.Delivery)
	sub.Capacity = s.capacityScore(shipment, trip)

	return entities.MatchResult{
		ShipmentID: shipment.ID,
		TripID:     trip.ID,
		Score:      s.combine(sub),
		SubScores:  sub,
		Reasons:    s.reasons(shipment, trip, sub),
		Status:     entities.MatchNew,
	}
}

func (s *Scorer) Accepts(result entities.MatchResult) bool {
	return result.Score >= s.threshold
}

func (s *Scorer) Threshold() int {
	return s.threshold
}

func (s *Scorer) Options() Options {
	return s.opts
}

func (s *Scorer) legSimilarity(shipmentLocation, tripLocation string) float64 {
	similarity := LocationSimilarity(shipmentLocation, tripLocation)
	if similarity == 0 && !s.opts.StrictRouteMatching &&
		normalizeLocation(shipmentLocation) != "" && normalizeLocation(tripLocation) != "" {
		return lenientLocationFloor
	}
	return similarity
}

func (s *Scorer) routeScore(pickup, delivery float64) float64 {
	if s.opts.StrictRouteMatching && (pickup < strictLegThreshold || delivery < strictLegThreshold) {
		// рейс, совпадающий только одним плечом, не довезет груз
		return strictRouteFloor
	}
	return (pickup + delivery) / 2
}

func (s *Scorer) capacityScore(shipment entities.Shipment, trip entities.Trip) float64 {
	if s.opts.CapacityPolicy == Utilization {
		return UtilizationScore(shipment.Weight, trip.Capacity)
	}
	return CarrierClassScore(s.opts.TierBreakpoints, shipment, trip)
}

func (s *Scorer) combine(sub entities.SubScores) int {
	total := sub.Route*float64(s.weights.Route) +
		sub.Capacity*float64(s.weights.Capacity) +
		sub.Date*float64(s.weights.Date) +
		sub.Vehicle*float64(s.weights.Vehicle)

	return int(math.Round(clamp(total, 0, maxScore)))
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// nonNegative приводит отсутствующие и битые числовые поля к нулю
func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
