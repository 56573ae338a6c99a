package entities

import "time"

// SweepCursor позиция прохода по ожидающим грузам в порядке (created_at, id).
type SweepCursor struct {
	CreatedAt  time.Time
	ShipmentID string
}

func (c SweepCursor) IsZero() bool {
	return c.CreatedAt.IsZero() && c.ShipmentID == ""
}

// After строго позже other. id сравниваются побайтно, как COLLATE "C" в базе.
func (c SweepCursor) After(other SweepCursor) bool {
	if !c.CreatedAt.Equal(other.CreatedAt) {
		return c.CreatedAt.After(other.CreatedAt)
	}
	return c.ShipmentID > other.ShipmentID
}
