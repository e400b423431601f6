package moveset

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	errs "movegraph/internal/errors"
	"movegraph/internal/httpresponse"
	"movegraph/internal/middleware"
	movesetuc "movegraph/internal/usecase/moveset"
)

type MovesetHandler struct {
	log       *zap.SugaredLogger
	movesetUC *movesetuc.MovesetUseCase
}

func NewMovesetHandler(log *zap.SugaredLogger, store movesetuc.Store) *MovesetHandler {
	return &MovesetHandler{
		log:       log,
		movesetUC: movesetuc.NewMovesetUseCase(store),
	}
}

// GetMoveset godoc
// @Summary Moveset document
// @Description Returns the stored moveset exactly as parsed from the store
// @Tags moveset
// @Produce json
// @Success 200 {object} map[string]moveset.MoveNode
// @Failure 404 {object} httpresponse.DetailResponse
// @Failure 500 {object} httpresponse.DetailResponse
// @Router /moveset [get]
func (h *MovesetHandler) GetMoveset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, err := h.movesetUC.GetDocument(ctx)
	switch {
	case err == nil:
		httpresponse.WriteJSON(w, http.StatusOK, doc)
	case errors.Is(err, errs.ErrMovesetNotFound):
		h.log.Warnw("moveset not found", "location", h.movesetUC.Location(), "id", middleware.GetRequestID(ctx))
		httpresponse.WriteDetail(w, http.StatusNotFound,
			fmt.Sprintf("Moveset @ %s not found.", h.movesetUC.Location()))
	default:
		h.log.Errorw("failed to load moveset", "error", err, "id", middleware.GetRequestID(ctx))
		httpresponse.WriteInternalErrorResponse(w)
	}
}
