package trip_matches_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"matching/internal/handlers/rest/presenter"
	"matching/internal/service/match"
	"matching/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tripID := mux.Vars(r)["id"]

	matches, err := h.service.GetMatchesForTrip(r.Context(), tripID)
	if err != nil {
		switch {
		case errors.Is(err, match.ErrInvalidTripID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("trip_id", tripID),
				logger.NewField("error", err),
			).Error("get matches for trip")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(presenter.MatchList(matches))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
