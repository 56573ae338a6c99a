package match

import "errors"

var (
	ErrInvalidShipmentID = errors.New("invalid shipment id")
	ErrInvalidTripID     = errors.New("invalid trip id")
	ErrInvalidMatchID    = errors.New("invalid match id")
	ErrInvalidStatus     = errors.New("invalid match status")
	ErrInvalidViewer     = errors.New("invalid viewer")

	ErrInvalidStatusTransition = errors.New("invalid match status transition")

	ErrShipmentNotFound = errors.New("shipment not found")
	ErrTripNotFound     = errors.New("trip not found")
	ErrMatchNotFound    = errors.New("match not found")

	ErrShipmentNotMatchable = errors.New("shipment is not open for matching")
	ErrTripNotMatchable     = errors.New("trip is not open for matching")
)
