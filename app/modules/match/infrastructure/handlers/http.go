package matchhandlers

import (
	"log/slog"
	"net/http"
	"strings"

	matchservice "github.com/Black-And-White-Club/football-league/app/modules/match/application"
	"github.com/Black-And-White-Club/football-league/app/shared/apperrors"
	"github.com/Black-And-White-Club/football-league/app/shared/httpx"
	"github.com/go-chi/chi/v5"
)

// MatchHandlers serves the match, event and audit endpoints.
type MatchHandlers struct {
	service matchservice.Service
	logger  *slog.Logger
}

// NewMatchHandlers creates a new MatchHandlers instance.
func NewMatchHandlers(service matchservice.Service, logger *slog.Logger) *MatchHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &MatchHandlers{service: service, logger: logger}
}

type statusRequest struct {
	Status string `json:"status"`
}

// Routes mounts the match endpoints on r.
func (h *MatchHandlers) Routes(r chi.Router) {
	r.Route("/matches", func(r chi.Router) {
		r.Post("/", h.CreateMatch)
		r.Get("/", h.ListMatches)
		r.Route("/{matchID}", func(r chi.Router) {
			r.Get("/", h.GetMatch)
			r.Patch("/", h.UpdateMatch)
			r.Delete("/", h.DeleteMatch)
			r.Post("/status", h.AdvanceStatus)
			r.Post("/events", h.ApplyEvent)
			r.Get("/events", h.ListEvents)
			r.Get("/audit", h.AuditScore)
		})
	})
}

func (h *MatchHandlers) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req matchservice.CreateMatchRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	match, err := h.service.CreateMatch(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, match)
}

func (h *MatchHandlers) ListMatches(w http.ResponseWriter, r *http.Request) {
	competitionID, err := httpx.QueryID(r, "competition_id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	req := matchservice.ListMatchesRequest{CompetitionID: competitionID}
	if status := strings.TrimSpace(r.URL.Query().Get("status")); status != "" {
		req.Status = &status
	}
	matches, err := h.service.ListMatches(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, matches)
}

func (h *MatchHandlers) GetMatch(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "matchID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	match, err := h.service.GetMatch(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, match)
}

func (h *MatchHandlers) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "matchID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	var req matchservice.UpdateMatchRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	match, err := h.service.UpdateMatch(r.Context(), id, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, match)
}

func (h *MatchHandlers) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "matchID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if err := h.service.DeleteMatch(r.Context(), id); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MatchHandlers) AdvanceStatus(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "matchID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	var req statusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	match, err := h.service.AdvanceStatus(r.Context(), id, req.Status)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, match)
}

// ApplyEvent takes the match from the path. A match_id in the body must agree.
func (h *MatchHandlers) ApplyEvent(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "matchID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	var req matchservice.ApplyEventRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if req.MatchID != 0 && req.MatchID != id {
		httpx.WriteError(w, r, h.logger, apperrors.Validation("match_id %d does not match path match %d", req.MatchID, id))
		return
	}
	req.MatchID = id

	applied, err := h.service.ApplyEvent(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, applied)
}

func (h *MatchHandlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "matchID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	events, err := h.service.ListEvents(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, events)
}

func (h *MatchHandlers) AuditScore(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "matchID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	audit, err := h.service.AuditScore(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, audit)
}
