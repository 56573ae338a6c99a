package ping_get

import (
	"encoding/json"
	"net/http"
	"time"

	"matching/internal/generated/dto"
	"matching/pkg/logger"
)

const serviceName = "matching"

type Handler struct {
	log handlerLogger
	now func() time.Time
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
		now: time.Now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	message := "pong"
	service := serviceName
	now := h.now().UTC()
	res := dto.PingResponse{
		Message: &message,
		Service: &service,
		Time:    &now,
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
