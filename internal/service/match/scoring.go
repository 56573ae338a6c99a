package match

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"matching/internal/entities"
)

// scoreCandidates оценивает n пар параллельно и возвращает прошедшие порог, лучшие первыми.
func (s *Service) scoreCandidates(
	ctx context.Context,
	direction string,
	n int,
	score func(i int) entities.MatchResult,
) ([]entities.MatchResult, error) {
	start := time.Now()
	defer func() {
		ScoringDuration.WithLabelValues(direction).Observe(time.Since(start).Seconds())
	}()

	scored := make([]entities.MatchResult, n)
	accepted := make([]bool, n)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.settings.ScoreWorkers)
	for i := 0; i < n; i++ {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			// каждая горутина пишет только свой индекс
			scored[i] = score(i)
			accepted[i] = s.scorer.Accepts(scored[i])
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]entities.MatchResult, 0, n)
	for i := range scored {
		MatchScore.Observe(float64(scored[i].Score))
		if accepted[i] {
			results = append(results, scored[i])
		}
	}
	PairsScoredTotal.WithLabelValues(direction).Add(float64(n))
	PairsAcceptedTotal.WithLabelValues(direction).Add(float64(len(results)))

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if results[i].ShipmentID != results[j].ShipmentID {
			return results[i].ShipmentID < results[j].ShipmentID
		}
		return results[i].TripID < results[j].TripID
	})
	return results, nil
}

func sortMatchesByScore(matches []entities.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].ID < matches[j].ID
	})
}
