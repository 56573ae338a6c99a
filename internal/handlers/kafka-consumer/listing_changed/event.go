package listing_changed

import (
	"time"

	"matching/internal/entities"
)

type listingChangedEvent struct {
	EventID    string    `json:"event_id"`
	Kind       string    `json:"kind"`
	Operation  string    `json:"operation"`
	ListingID  string    `json:"listing_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e listingChangedEvent) toDomain() entities.ListingEvent {
	return entities.ListingEvent{
		EventID:    e.EventID,
		Kind:       entities.ListingKind(e.Kind),
		Operation:  entities.ListingOperation(e.Operation),
		ListingID:  e.ListingID,
		OccurredAt: e.OccurredAt,
	}
}
