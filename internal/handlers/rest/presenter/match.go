package presenter

import (
	"matching/internal/entities"
	"matching/internal/generated/dto"
)

func SubScores(s entities.SubScores) dto.SubScores {
	return dto.SubScores{
		Pickup:   s.Pickup,
		Delivery: s.Delivery,
		Route:    s.Route,
		Capacity: s.Capacity,
		Date:     s.Date,
		Vehicle:  s.Vehicle,
	}
}

func Match(m entities.Match) dto.Match {
	reasons := m.Reasons
	if reasons == nil {
		reasons = []string{}
	}
	return dto.Match{
		ID:              m.ID,
		ShipmentID:      m.ShipmentID,
		TripID:          m.TripID,
		Score:           m.Score,
		SubScores:       SubScores(m.SubScores),
		Reasons:         reasons,
		Status:          dto.MatchStatus(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		ExpiresAt:       m.ExpiresAt,
		ShipperViewedAt: m.ShipperViewedAt,
		CarrierViewedAt: m.CarrierViewedAt,
	}
}

// MatchList пустой список сериализуется как [], не null
func MatchList(matches []entities.Match) dto.MatchList {
	list := dto.MatchList{
		Matches: make([]dto.Match, 0, len(matches)),
		Count:   len(matches),
	}
	for _, m := range matches {
		list.Matches = append(list.Matches, Match(m))
	}
	return list
}
