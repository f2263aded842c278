package competitionhandlers

import (
	"log/slog"
	"net/http"

	competitionservice "github.com/Black-And-White-Club/football-league/app/modules/competition/application"
	"github.com/Black-And-White-Club/football-league/app/shared/httpx"
	"github.com/go-chi/chi/v5"
)

// CompetitionHandlers serves the competition and registration endpoints.
type CompetitionHandlers struct {
	service competitionservice.Service
	logger  *slog.Logger
}

// NewCompetitionHandlers creates a new CompetitionHandlers instance.
func NewCompetitionHandlers(service competitionservice.Service, logger *slog.Logger) *CompetitionHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &CompetitionHandlers{service: service, logger: logger}
}

// Routes mounts the competition endpoints on r. Standings are mounted by the
// standings module under the same prefix.
func (h *CompetitionHandlers) Routes(r chi.Router) {
	r.Post("/competitions", h.CreateCompetition)
	r.Get("/competitions", h.ListCompetitions)
	r.Get("/competitions/{competitionID}", h.GetCompetition)
	r.Patch("/competitions/{competitionID}", h.UpdateCompetition)
	r.Delete("/competitions/{competitionID}", h.DeleteCompetition)
	r.Post("/competitions/{competitionID}/registrations", h.RegisterTeam)
	r.Get("/competitions/{competitionID}/registrations", h.ListRegistrations)
}

func (h *CompetitionHandlers) CreateCompetition(w http.ResponseWriter, r *http.Request) {
	var req competitionservice.CreateCompetitionRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	c, err := h.service.CreateCompetition(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, c)
}

func (h *CompetitionHandlers) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	competitions, err := h.service.ListCompetitions(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, competitions)
}

func (h *CompetitionHandlers) GetCompetition(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "competitionID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	c, err := h.service.GetCompetition(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

func (h *CompetitionHandlers) UpdateCompetition(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "competitionID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	var req competitionservice.UpdateCompetitionRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	c, err := h.service.UpdateCompetition(r.Context(), id, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

func (h *CompetitionHandlers) DeleteCompetition(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "competitionID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if err := h.service.DeleteCompetition(r.Context(), id); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CompetitionHandlers) RegisterTeam(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "competitionID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	var req competitionservice.RegisterTeamRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	reg, err := h.service.RegisterTeam(r.Context(), id, req.TeamID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, reg)
}

func (h *CompetitionHandlers) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "competitionID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	regs, err := h.service.ListRegistrations(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, regs)
}
