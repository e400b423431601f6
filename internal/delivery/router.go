package delivery

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"movegraph/internal/bootstrap"
	"movegraph/internal/delivery/health"
	"movegraph/internal/delivery/moveset"
	"movegraph/internal/delivery/pages"
	ownMiddleware "movegraph/internal/middleware"
	movesetuc "movegraph/internal/usecase/moveset"
)

const StaticPrefix = "/static/"

type MainDeliveryHandler struct {
	moveset *moveset.MovesetHandler
	pages   *pages.PagesHandler
	health  *health.HealthHandler
}

func NewMainDeliveryHandler(cfg bootstrap.Config, log *zap.SugaredLogger, store movesetuc.Store) *MainDeliveryHandler {
	return &MainDeliveryHandler{
		moveset: moveset.NewMovesetHandler(log, store),
		pages:   pages.NewPagesHandler(cfg.StaticDir),
		health:  health.NewHealthHandler(cfg.MovesetStore),
	}
}

func (h *MainDeliveryHandler) Router(r chi.Router, log *zap.SugaredLogger, isLocalCors bool) {
	r.Use(ownMiddleware.RequestID)
	r.Use(ownMiddleware.Logger(log))
	r.Use(chimw.Recoverer)
	if isLocalCors {
		r.Use(ownMiddleware.CORS)
	}

	r.Get("/", h.pages.Index)
	r.Get("/moveset", h.moveset.GetMoveset)
	r.Get("/health", h.health.HealthCheck)
	r.Handle(StaticPrefix+"*", h.pages.Static(StaticPrefix))
}

// NewRouter builds the full HTTP surface of the content server.
func NewRouter(cfg bootstrap.Config, log *zap.SugaredLogger, store movesetuc.Store) http.Handler {
	r := chi.NewRouter()
	NewMainDeliveryHandler(cfg, log, store).Router(r, log, cfg.IsLocalCors)
	return r
}
