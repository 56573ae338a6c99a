package match_score_post

import (
	"encoding/json"
	"net/http"
	"strings"

	"matching/internal/generated/dto"
	"matching/internal/handlers/rest/presenter"
	"matching/pkg/logger"
)

// Handler оценка пары без сохранения, для подбора порога и отладки весов.
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
	var req dto.ScorePreviewRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if !hasRoute(req) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, accepted, err := h.service.ScorePair(r.Context(), toShipment(req.Shipment), toTrip(req.Trip))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("score pair")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	reasons := result.Reasons
	if reasons == nil {
		reasons = []string{}
	}
	response := dto.ScorePreviewResponse{
		Score:     result.Score,
		SubScores: presenter.SubScores(result.SubScores),
		Reasons:   reasons,
		Accepted:  accepted,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func hasRoute(req dto.ScorePreviewRequest) bool {
	for _, location := range []string{
		req.Shipment.PickupLocation,
		req.Shipment.DeliveryLocation,
		req.Trip.FromLocation,
		req.Trip.ToLocation,
	} {
		if strings.TrimSpace(location) == "" {
			return false
		}
	}
	return true
}
