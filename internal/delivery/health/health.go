package health

import (
	"net/http"

	"movegraph/internal/httpresponse"
)

type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

type HealthHandler struct {
	store string
}

func NewHealthHandler(store string) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httpresponse.WriteJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Store:  h.store,
	})
}
