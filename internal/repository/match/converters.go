package match

import "matching/internal/entities"

func ToDomain(m *MatchDB) *entities.Match {
	if m == nil {
		return nil
	}
	reasons := m.Reasons
	if reasons == nil {
		reasons = []string{}
	}

	return &entities.Match{
		ID:         m.ID,
		ShipmentID: m.ShipmentID,
		TripID:     m.TripID,
		Score:      m.Score,
		SubScores: entities.SubScores{
			Pickup:   m.PickupScore,
			Delivery: m.DeliveryScore,
			Route:    m.RouteScore,
			Capacity: m.CapacityScore,
			Date:     m.DateScore,
			Vehicle:  m.VehicleScore,
		},
		Reasons:         reasons,
		Status:          entities.MatchStatusType(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		ExpiresAt:       m.ExpiresAt,
		ShipperViewedAt: m.ShipperViewedAt,
		CarrierViewedAt: m.CarrierViewedAt,
	}
}

func FromDomainModify(m *entities.MatchModify) *MatchModifyDB {
	if m == nil {
		return nil
	}
	matchModifyDB := &MatchModifyDB{
		ID:              m.ID,
		ShipmentID:      m.ShipmentID,
		TripID:          m.TripID,
		Score:           m.Score,
		Reasons:         m.Reasons,
		ExpiresAt:       m.ExpiresAt,
		ShipperViewedAt: m.ShipperViewedAt,
		CarrierViewedAt: m.CarrierViewedAt,
	}

	if m.SubScores != nil {
		matchModifyDB.PickupScore = &m.SubScores.Pickup
		matchModifyDB.DeliveryScore = &m.SubScores.Delivery
		matchModifyDB.RouteScore = &m.SubScores.Route
		matchModifyDB.CapacityScore = &m.SubScores.Capacity
		matchModifyDB.DateScore = &m.SubScores.Date
		matchModifyDB.VehicleScore = &m.SubScores.Vehicle
	}
	if m.Status != nil {
		status := m.Status.String()
		matchModifyDB.Status = &status
	}

	return matchModifyDB
}
