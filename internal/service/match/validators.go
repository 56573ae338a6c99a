package match

import (
	"strings"

	"matching/internal/entities"
)

// допустимые переходы статуса через API, expired ставит только фоновая задача
var statusTransitions = map[entities.MatchStatusType][]entities.MatchStatusType{
	entities.MatchNew:       {entities.MatchViewed, entities.MatchContacted, entities.MatchRejected, entities.MatchExpired},
	entities.MatchViewed:    {entities.MatchContacted, entities.MatchAccepted, entities.MatchRejected, entities.MatchExpired},
	entities.MatchContacted: {entities.MatchAccepted, entities.MatchRejected, entities.MatchExpired},
}

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidStatus(status entities.MatchStatusType) bool {
	switch status {
	case entities.MatchNew, entities.MatchViewed, entities.MatchContacted,
		entities.MatchAccepted, entities.MatchRejected, entities.MatchExpired:
		return true
	default:
		return false
	}
}

func isValidViewer(viewer entities.MatchViewer) bool {
	return viewer == entities.ViewerShipper || viewer == entities.ViewerCarrier
}

func canTransition(from, to entities.MatchStatusType) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
