package shipment_matches_get

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
	shipmentID := mux.Vars(r)["id"]

	matches, err := h.service.GetMatchesForShipment(r.Context(), shipmentID)
	if err != nil {
		switch {
		case errors.Is(err, match.ErrInvalidShipmentID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("shipment_id", shipmentID),
				logger.NewField("error", err),
			).Error("get matches for shipment")
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
