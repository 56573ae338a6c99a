package entities

import "time"

type NotificationRecipient string

const (
	RecipientShipper NotificationRecipient = "shipper"
	RecipientCarrier NotificationRecipient = "carrier"
)

func (r NotificationRecipient) String() string {
	return string(r)
}

// MatchNotification событие для сервиса уведомлений.
// TripID пустой в сводке для грузоотправителя, ShipmentID пустой в сводке для перевозчика.
type MatchNotification struct {
	Recipient    NotificationRecipient
	UserID       string
	ShipmentID   string
	TripID       string
	MatchIDs     []int64
	MatchCount   int
	BestScore    int
	HighPriority bool
	CreatedAt    time.Time
}
