package match

import (
	"context"
	"time"

	"matching/internal/entities"
	"matching/pkg/logger"
)

// notify публикует уведомления только о парах, о которых еще не сообщали.
// Ошибки журнала и публикации логируются и не прерывают операцию.
func (s *Service) notify(ctx context.Context, created []entities.Match, build func(fresh []entities.Match) []entities.MatchNotification) {
	if len(created) == 0 {
		return
	}

	fresh := s.filterNotified(ctx, created)
	if len(fresh) == 0 {
		return
	}

	if err := s.notifier.PublishMatchNotifications(ctx, build(fresh)); err != nil {
		s.log.Warn("publish match notifications",
			logger.NewField("matches", len(fresh)),
			logger.NewField("error", err),
		)
	}
}

func (s *Service) filterNotified(ctx context.Context, matches []entities.Match) []entities.Match {
	pairs := make([]entities.MatchPair, 0, len(matches))
	for _, m := range matches {
		pairs = append(pairs, m.Pair())
	}

	newPairs, err := s.notificationLog.MarkNotified(ctx, pairs)
	if err != nil {
		// без журнала лучше уведомить повторно, чем потерять уведомление
		s.log.Warn("mark pairs notified",
			logger.NewField("pairs", len(pairs)),
			logger.NewField("error", err),
		)
		return matches
	}

	isNew := make(map[entities.MatchPair]struct{}, len(newPairs))
	for _, p := range newPairs {
		isNew[p] = struct{}{}
	}

	fresh := make([]entities.Match, 0, len(newPairs))
	for _, m := range matches {
		if _, ok := isNew[m.Pair()]; ok {
			fresh = append(fresh, m)
		}
	}
	return fresh
}

// shipmentNotifications: сводка грузоотправителю и по уведомлению каждому перевозчику.
func shipmentNotifications(
	shipment entities.Shipment,
	tripsByID map[string]entities.Trip,
	matches []entities.Match,
	highScore int,
	now time.Time,
) []entities.MatchNotification {
	notifications := make([]entities.MatchNotification, 0, len(matches)+1)

	summary := summarize(matches, highScore, now)
	summary.Recipient = entities.RecipientShipper
	summary.UserID = shipment.ShipperID
	summary.ShipmentID = shipment.ID
	notifications = append(notifications, summary)

	for _, m := range matches {
		n := single(m, highScore, now)
		n.Recipient = entities.RecipientCarrier
		n.UserID = tripsByID[m.TripID].CarrierID
		notifications = append(notifications, n)
	}
	return notifications
}

// tripNotifications: сводка перевозчику и по уведомлению каждому грузоотправителю.
func tripNotifications(
	trip entities.Trip,
	shipmentsByID map[string]entities.Shipment,
	matches []entities.Match,
	highScore int,
	now time.Time,
) []entities.MatchNotification {
	notifications := make([]entities.MatchNotification, 0, len(matches)+1)

	summary := summarize(matches, highScore, now)
	summary.Recipient = entities.RecipientCarrier
	summary.UserID = trip.CarrierID
	summary.TripID = trip.ID
	notifications = append(notifications, summary)

	for _, m := range matches {
		n := single(m, highScore, now)
		n.Recipient = entities.RecipientShipper
		n.UserID = shipmentsByID[m.ShipmentID].ShipperID
		notifications = append(notifications, n)
	}
	return notifications
}

func summarize(matches []entities.Match, highScore int, now time.Time) entities.MatchNotification {
	ids := make([]int64, 0, len(matches))
	best := 0
	for _, m := range matches {
		ids = append(ids, m.ID)
		if m.Score > best {
			best = m.Score
		}
	}

	return entities.MatchNotification{
		MatchIDs:     ids,
		MatchCount:   len(matches),
		BestScore:    best,
		HighPriority: best >= highScore,
		CreatedAt:    now,
	}
}

func single(m entities.Match, highScore int, now time.Time) entities.MatchNotification {
	return entities.MatchNotification{
		ShipmentID:   m.ShipmentID,
		TripID:       m.TripID,
		MatchIDs:     []int64{m.ID},
		MatchCount:   1,
		BestScore:    m.Score,
		HighPriority: m.Score >= highScore,
		CreatedAt:    now,
	}
}
