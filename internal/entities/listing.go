package entities

import "time"

// ListingEvent событие из ленты изменений объявлений (груз или рейс).
type ListingEvent struct {
	EventID    string
	Kind       ListingKind
	Operation  ListingOperation
	ListingID  string
	OccurredAt time.Time
}

type ListingKind string

const (
	ListingShipment ListingKind = "shipment"
	ListingTrip     ListingKind = "trip"
)

func (k ListingKind) String() string {
	return string(k)
}

type ListingOperation string

const (
	ListingCreated ListingOperation = "created"
	ListingUpdated ListingOperation = "updated"
)

func (o ListingOperation) String() string {
	return string(o)
}
