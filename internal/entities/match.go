package entities

import "time"

type SubScores struct {
	Pickup   float64
	Delivery float64
	Route    float64
	Capacity float64
	Date     float64
	Vehicle  float64
}

// MatchResult результат оценки одной пары, еще не сохраненный.
type MatchResult struct {
	ShipmentID string
	TripID     string
	Score      int
	SubScores  SubScores
	Reasons    []string
	Status     MatchStatusType
}

type Match struct {
	ID              int64
	ShipmentID      string
	TripID          string
	Score           int
	SubScores       SubScores
	Reasons         []string
	Status          MatchStatusType
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ExpiresAt       time.Time
	ShipperViewedAt *time.Time
	CarrierViewedAt *time.Time
}

type MatchModify struct {
	ID              *int64
	ShipmentID      *string
	TripID          *string
	Score           *int
	SubScores       *SubScores
	Reasons         []string
	Status          *MatchStatusType
	ExpiresAt       *time.Time
	ShipperViewedAt *time.Time
	CarrierViewedAt *time.Time
}

type MatchPair struct {
	ShipmentID string
	TripID     string
}

func (m Match) Pair() MatchPair {
	return MatchPair{ShipmentID: m.ShipmentID, TripID: m.TripID}
}

type MatchStatusType string

const (
	MatchNew       MatchStatusType = "new"
	MatchViewed    MatchStatusType = "viewed"
	MatchContacted MatchStatusType = "contacted"
	MatchAccepted  MatchStatusType = "accepted"
	MatchRejected  MatchStatusType = "rejected"
	MatchExpired   MatchStatusType = "expired"
)

func (s MatchStatusType) String() string {
	return string(s)
}

type MatchViewer string

const (
	ViewerShipper MatchViewer = "shipper"
	ViewerCarrier MatchViewer = "carrier"
)

func (v MatchViewer) String() string {
	return string(v)
}
