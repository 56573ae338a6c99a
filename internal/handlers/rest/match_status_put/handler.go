package match_status_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"matching/internal/entities"
	"matching/internal/generated/dto"
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
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var statusDTO dto.MatchStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	res, err := h.service.UpdateMatchStatus(r.Context(), id, entities.MatchStatusType(statusDTO.Status))
	if err != nil {
		switch {
		case errors.Is(err, match.ErrInvalidMatchID),
			errors.Is(err, match.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, match.ErrMatchNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, match.ErrInvalidStatusTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("match_id", id),
				logger.NewField("error", err),
			).Error("update match status")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(presenter.Match(*res))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
