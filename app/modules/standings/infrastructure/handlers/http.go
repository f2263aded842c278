package standingshandlers

import (
	"fmt"
	"log/slog"
	"net/http"

	standingsservice "github.com/Black-And-White-Club/football-league/app/modules/standings/application"
	"github.com/Black-And-White-Club/football-league/app/shared/httpx"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// StandingsHandlers serves standings tables and their exports.
type StandingsHandlers struct {
	service standingsservice.Service
	logger  *slog.Logger
}

// NewStandingsHandlers creates a new StandingsHandlers instance.
func NewStandingsHandlers(service standingsservice.Service, logger *slog.Logger) *StandingsHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &StandingsHandlers{service: service, logger: logger}
}

// Routes mounts the standings endpoints on r.
func (h *StandingsHandlers) Routes(r chi.Router) {
	r.Get("/competitions/{competitionID}/standings", h.GetStandings)
	r.Get("/competitions/{competitionID}/standings.xlsx", h.ExportWorkbook)
	r.Get("/competitions/{competitionID}/standings.png", h.ExportChart)
}

func (h *StandingsHandlers) GetStandings(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "competitionID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	table, err := h.service.ComputeStandings(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, table)
}

func (h *StandingsHandlers) ExportWorkbook(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "competitionID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	body, err := h.service.ExportWorkbook(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteFile(w, xlsxContentType, fmt.Sprintf("standings-%d.xlsx", id), body)
}

func (h *StandingsHandlers) ExportChart(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "competitionID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	body, err := h.service.ExportChart(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteFile(w, "image/png", fmt.Sprintf("standings-%d.png", id), body)
}
