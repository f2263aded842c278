package matchhandlers

import (
	"context"
	"time"

	matchservice "github.com/Black-And-White-Club/football-league/app/modules/match/application"
	matchdb "github.com/Black-And-White-Club/football-league/app/modules/match/infrastructure/repositories"
)

type FakeService struct {
	CreateMatchFunc   func(ctx context.Context, req matchservice.CreateMatchRequest) (*matchdb.Match, error)
	GetMatchFunc      func(ctx context.Context, id int64) (*matchdb.Match, error)
	ListMatchesFunc   func(ctx context.Context, req matchservice.ListMatchesRequest) ([]matchdb.Match, error)
	AdvanceStatusFunc func(ctx context.Context, id int64, status string) (*matchdb.Match, error)
	ApplyEventFunc    func(ctx context.Context, req matchservice.ApplyEventRequest) (*matchservice.AppliedEvent, error)
	AuditScoreFunc    func(ctx context.Context, matchID int64) (*matchservice.ScoreAudit, error)
}

func (f *FakeService) CreateMatch(ctx context.Context, req matchservice.CreateMatchRequest) (*matchdb.Match, error) {
	if f.CreateMatchFunc != nil {
		return f.CreateMatchFunc(ctx, req)
	}
	return &matchdb.Match{ID: 1, HomeTeamID: req.HomeTeamID, AwayTeamID: req.AwayTeamID, Status: "SCHEDULED"}, nil
}

func (f *FakeService) GetMatch(ctx context.Context, id int64) (*matchdb.Match, error) {
	if f.GetMatchFunc != nil {
		return f.GetMatchFunc(ctx, id)
	}
	return &matchdb.Match{ID: id}, nil
}

func (f *FakeService) ListMatches(ctx context.Context, req matchservice.ListMatchesRequest) ([]matchdb.Match, error) {
	if f.ListMatchesFunc != nil {
		return f.ListMatchesFunc(ctx, req)
	}
	return []matchdb.Match{}, nil
}

func (f *FakeService) UpdateMatch(ctx context.Context, id int64, req matchservice.UpdateMatchRequest) (*matchdb.Match, error) {
	return &matchdb.Match{ID: id}, nil
}

func (f *FakeService) DeleteMatch(ctx context.Context, id int64) error {
	return nil
}

func (f *FakeService) AdvanceStatus(ctx context.Context, id int64, status string) (*matchdb.Match, error) {
	if f.AdvanceStatusFunc != nil {
		return f.AdvanceStatusFunc(ctx, id, status)
	}
	return &matchdb.Match{ID: id, Status: status}, nil
}

func (f *FakeService) KickOff(ctx context.Context, id int64, scheduledAt time.Time) (bool, error) {
	return false, nil
}

func (f *FakeService) ApplyEvent(ctx context.Context, req matchservice.ApplyEventRequest) (*matchservice.AppliedEvent, error) {
	if f.ApplyEventFunc != nil {
		return f.ApplyEventFunc(ctx, req)
	}
	return &matchservice.AppliedEvent{EventID: 1, MatchID: req.MatchID}, nil
}

func (f *FakeService) ListEvents(ctx context.Context, matchID int64) ([]matchdb.MatchEvent, error) {
	return []matchdb.MatchEvent{}, nil
}

func (f *FakeService) AuditScore(ctx context.Context, matchID int64) (*matchservice.ScoreAudit, error) {
	if f.AuditScoreFunc != nil {
		return f.AuditScoreFunc(ctx, matchID)
	}
	return &matchservice.ScoreAudit{MatchID: matchID, Consistent: true}, nil
}

var _ matchservice.Service = (*FakeService)(nil)
