package match_expiry

import "time"

// DefaultRetention срок жизни матча без ответа сторон.
const DefaultRetention = 30 * 24 * time.Hour

type MatchExpiryFactory struct {
	retention time.Duration
}

func New(retention time.Duration) *MatchExpiryFactory {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &MatchExpiryFactory{
		retention: retention,
	}
}

func (f *MatchExpiryFactory) ExpiresAt(createdAt time.Time) time.Time {
	return createdAt.Add(f.retention)
}

func (f *MatchExpiryFactory) Retention() time.Duration {
	return f.retention
}
