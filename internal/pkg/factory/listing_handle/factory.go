package listing_handle

import (
	"context"
	"errors"
	"fmt"

	"matching/internal/entities"
	"matching/internal/service/listing"
	"matching/internal/service/match"
)

type ListingHandlerFactory struct {
	matchService listing.MatchService
}

func NewListingHandlerFactory(matchService listing.MatchService) *ListingHandlerFactory {
	return &ListingHandlerFactory{
		matchService: matchService,
	}
}

func (f *ListingHandlerFactory) GetHandler(kind entities.ListingKind, operation entities.ListingOperation) (listing.ExecuteFn, error) {
	switch {
	case kind == entities.ListingShipment && operation == entities.ListingCreated:
		return f.shipmentHandler(false), nil
	case kind == entities.ListingShipment && operation == entities.ListingUpdated:
		return f.shipmentHandler(true), nil
	case kind == entities.ListingTrip && operation == entities.ListingCreated:
		return f.tripHandler(false), nil
	case kind == entities.ListingTrip && operation == entities.ListingUpdated:
		return f.tripHandler(true), nil
	default:
		return nil, fmt.Errorf("%w: %s %s", listing.ErrUndefinedEvent, kind, operation)
	}
}

// обновленное объявление пересчитывается принудительно
func (f *ListingHandlerFactory) shipmentHandler(force bool) listing.ExecuteFn {
	return func(ctx context.Context, shipmentID string) error {
		_, err := f.matchService.FindMatchesForShipment(ctx, shipmentID, force)
		if errors.Is(err, match.ErrShipmentNotMatchable) {
			// груз уже не ищет перевозчика
			return nil
		}
		if err != nil {
			return fmt.Errorf("find matches for shipment %s: %w", shipmentID, err)
		}
		return nil
	}
}

func (f *ListingHandlerFactory) tripHandler(force bool) listing.ExecuteFn {
	return func(ctx context.Context, tripID string) error {
		_, err := f.matchService.FindMatchesForTrip(ctx, tripID, force)
		if errors.Is(err, match.ErrTripNotMatchable) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("find matches for trip %s: %w", tripID, err)
		}
		return nil
	}
}
