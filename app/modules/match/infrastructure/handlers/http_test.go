package matchhandlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	matchservice "github.com/Black-And-White-Club/football-league/app/modules/match/application"
	matchdb "github.com/Black-And-White-Club/football-league/app/modules/match/infrastructure/repositories"
	"github.com/Black-And-White-Club/football-league/app/shared/apperrors"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestMatchHandlers(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		url          string
		body         string
		setupService func(*FakeService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:       "create match",
			method:     http.MethodPost,
			url:        "/api/matches",
			body:       `{"home_team_id":1,"away_team_id":2,"scheduled_at_text":"next saturday at 3pm","time_zone":"Europe/London"}`,
			wantStatus: http.StatusCreated,
			wantBody:   `"status":"SCHEDULED"`,
		},
		{
			name:   "team plays itself",
			method: http.MethodPost,
			url:    "/api/matches",
			body:   `{"home_team_id":1,"away_team_id":1,"scheduled_at":"2026-10-20T18:00:00Z"}`,
			setupService: func(s *FakeService) {
				s.CreateMatchFunc = func(ctx context.Context, req matchservice.CreateMatchRequest) (*matchdb.Match, error) {
					return nil, apperrors.Validation("a team cannot play itself")
				}
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "cannot play itself",
		},
		{
			name:   "list filters",
			method: http.MethodGet,
			url:    "/api/matches?competition_id=4&status=finished",
			setupService: func(s *FakeService) {
				s.ListMatchesFunc = func(ctx context.Context, req matchservice.ListMatchesRequest) ([]matchdb.Match, error) {
					if req.CompetitionID == nil || *req.CompetitionID != 4 || req.Status == nil || *req.Status != "finished" {
						return nil, apperrors.Validation("filters not passed")
					}
					return []matchdb.Match{{ID: 9}}, nil
				}
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":9`,
		},
		{
			name:       "bad competition filter",
			method:     http.MethodGet,
			url:        "/api/matches?competition_id=abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "missing match",
			method: http.MethodGet,
			url:    "/api/matches/9",
			setupService: func(s *FakeService) {
				s.GetMatchFunc = func(ctx context.Context, id int64) (*matchdb.Match, error) {
					return nil, matchdb.ErrMatchNotFound
				}
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "backward status move",
			method: http.MethodPost,
			url:    "/api/matches/9/status",
			body:   `{"status":"IN_PLAY"}`,
			setupService: func(s *FakeService) {
				s.AdvanceStatusFunc = func(ctx context.Context, id int64, status string) (*matchdb.Match, error) {
					return nil, apperrors.Constraint("match cannot move from FINISHED to IN_PLAY")
				}
			},
			wantStatus: http.StatusConflict,
			wantBody:   "cannot move",
		},
		{
			name:   "apply event takes match from path",
			method: http.MethodPost,
			url:    "/api/matches/9/events",
			body:   `{"minute":23,"type":"GOAL","player_id":10,"team_id":1}`,
			setupService: func(s *FakeService) {
				s.ApplyEventFunc = func(ctx context.Context, req matchservice.ApplyEventRequest) (*matchservice.AppliedEvent, error) {
					return &matchservice.AppliedEvent{EventID: 31, MatchID: req.MatchID, HomeScore: 1, CreditedSide: "home"}, nil
				}
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"event_id":31,"match_id":9,"home_score":1`,
		},
		{
			name:       "event for another match",
			method:     http.MethodPost,
			url:        "/api/matches/9/events",
			body:       `{"match_id":8,"minute":23,"type":"GOAL"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "invalid minute",
			method: http.MethodPost,
			url:    "/api/matches/9/events",
			body:   `{"minute":140,"type":"GOAL"}`,
			setupService: func(s *FakeService) {
				s.ApplyEventFunc = func(ctx context.Context, req matchservice.ApplyEventRequest) (*matchservice.AppliedEvent, error) {
					return nil, apperrors.Validation("minute 140 outside [0, 130]")
				}
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "minute 140",
		},
		{
			name:       "list events",
			method:     http.MethodGet,
			url:        "/api/matches/9/events",
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "audit",
			method:     http.MethodGet,
			url:        "/api/matches/9/audit",
			wantStatus: http.StatusOK,
			wantBody:   `"consistent":true`,
		},
		{
			name:       "delete match",
			method:     http.MethodDelete,
			url:        "/api/matches/9",
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &FakeService{}
			if tt.setupService != nil {
				tt.setupService(svc)
			}
			r := chi.NewRouter()
			r.Route("/api", NewMatchHandlers(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Routes)

			var body io.Reader = http.NoBody
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.url, body))

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBody)
			}
		})
	}
}
