package teamhandlers

import (
	"io"
	"log/slog"
	"net/http"

	teamservice "github.com/Black-And-White-Club/football-league/app/modules/team/application"
	"github.com/Black-And-White-Club/football-league/app/shared/apperrors"
	"github.com/Black-And-White-Club/football-league/app/shared/httpx"
	"github.com/go-chi/chi/v5"
)

// maxSquadUpload bounds squad sheet uploads.
const maxSquadUpload = 5 << 20

// TeamHandlers serves the team and player endpoints.
type TeamHandlers struct {
	service teamservice.Service
	logger  *slog.Logger
}

// NewTeamHandlers creates a new TeamHandlers instance.
func NewTeamHandlers(service teamservice.Service, logger *slog.Logger) *TeamHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &TeamHandlers{service: service, logger: logger}
}

// Routes mounts the team and player endpoints on r.
func (h *TeamHandlers) Routes(r chi.Router) {
	r.Route("/teams", func(r chi.Router) {
		r.Post("/", h.CreateTeam)
		r.Get("/", h.ListTeams)
		r.Route("/{teamID}", func(r chi.Router) {
			r.Get("/", h.GetTeam)
			r.Patch("/", h.UpdateTeam)
			r.Delete("/", h.DeleteTeam)
			r.Post("/players", h.CreatePlayer)
			r.Get("/players", h.ListPlayers)
			r.Post("/players/import", h.ImportSquad)
		})
	})
	r.Route("/players/{playerID}", func(r chi.Router) {
		r.Get("/", h.GetPlayer)
		r.Patch("/", h.UpdatePlayer)
		r.Delete("/", h.DeletePlayer)
	})
}

func (h *TeamHandlers) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req teamservice.CreateTeamRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	team, err := h.service.CreateTeam(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, team)
}

func (h *TeamHandlers) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.service.ListTeams(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, teams)
}

func (h *TeamHandlers) GetTeam(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "teamID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	team, err := h.service.GetTeam(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, team)
}

func (h *TeamHandlers) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "teamID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	var req teamservice.UpdateTeamRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	team, err := h.service.UpdateTeam(r.Context(), id, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, team)
}

func (h *TeamHandlers) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "teamID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if err := h.service.DeleteTeam(r.Context(), id); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TeamHandlers) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	teamID, err := httpx.PathID(r, "teamID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	var req teamservice.CreatePlayerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	player, err := h.service.CreatePlayer(r.Context(), teamID, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, player)
}

func (h *TeamHandlers) ListPlayers(w http.ResponseWriter, r *http.Request) {
	teamID, err := httpx.PathID(r, "teamID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	players, err := h.service.ListPlayers(r.Context(), teamID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, players)
}

// ImportSquad accepts a multipart upload with the sheet in the "file" field.
func (h *TeamHandlers) ImportSquad(w http.ResponseWriter, r *http.Request) {
	teamID, err := httpx.PathID(r, "teamID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxSquadUpload)
	if err := r.ParseMultipartForm(maxSquadUpload); err != nil {
		httpx.WriteError(w, r, h.logger, apperrors.Validation("invalid upload: %v", err))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		httpx.WriteError(w, r, h.logger, apperrors.Validation("missing file field: %v", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httpx.WriteError(w, r, h.logger, apperrors.Validation("failed to read upload: %v", err))
		return
	}

	players, err := h.service.ImportSquad(r.Context(), teamID, header.Filename, data)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"imported": len(players),
		"players":  players,
	})
}

func (h *TeamHandlers) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "playerID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	player, err := h.service.GetPlayer(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, player)
}

func (h *TeamHandlers) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "playerID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	var req teamservice.UpdatePlayerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	player, err := h.service.UpdatePlayer(r.Context(), id, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, player)
}

func (h *TeamHandlers) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "playerID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if err := h.service.DeletePlayer(r.Context(), id); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
