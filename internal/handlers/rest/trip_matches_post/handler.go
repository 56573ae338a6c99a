package trip_matches_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tripID := mux.Vars(r)["id"]

	// force=true пересчитывает пары, по которым стороны еще не связывались
	force := false
	if raw := r.URL.Query().Get("force"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		force = parsed
	}

	matches, err := h.service.FindMatchesForTrip(r.Context(), tripID, force)
	if err != nil {
		switch {
		case errors.Is(err, match.ErrInvalidTripID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, match.ErrTripNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, match.ErrTripNotMatchable):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("trip_id", tripID),
				logger.NewField("error", err),
			).Error("find matches for trip")
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
