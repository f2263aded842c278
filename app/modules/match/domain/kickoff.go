package matchdomain

import (
	"regexp"
	"strings"
	"time"

	"github.com/Black-And-White-Club/football-league/app/shared/apperrors"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var compactClock = regexp.MustCompile(`(\d{1,2})(\d{2})(am|pm)`)

// KickoffParser turns free text such as "next saturday 15:00" into a kickoff time.
type KickoffParser struct {
	w *when.Parser
}

// NewKickoffParser creates a parser with the English and common rule sets.
func NewKickoffParser() *KickoffParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &KickoffParser{w: w}
}

// Parse resolves text relative to now in the named IANA zone (UTC when empty)
// and returns the kickoff in UTC. RFC 3339 input is accepted as is. The
// kickoff must not lie in the past.
func (p *KickoffParser) Parse(text, zone string, now time.Time) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, apperrors.Validation("kickoff text is empty")
	}
	if t, err := time.Parse(time.RFC3339, text); err == nil {
		return t.UTC(), nil
	}

	loc := time.UTC
	if zone != "" {
		l, err := time.LoadLocation(zone)
		if err != nil {
			return time.Time{}, apperrors.Validation("unknown time zone %q", zone)
		}
		loc = l
	}

	normalized := strings.ToLower(text)
	normalized = strings.ReplaceAll(normalized, "today ", "today at ")
	normalized = compactClock.ReplaceAllString(normalized, "$1:$2 $3")

	nowInLoc := now.In(loc)
	r, err := p.w.Parse(normalized, nowInLoc)
	if err != nil {
		return time.Time{}, apperrors.Validation("could not parse kickoff %q: %v", text, err)
	}
	if r == nil {
		return time.Time{}, apperrors.Validation("could not recognise kickoff %q", text)
	}

	kickoff := r.Time.In(loc).Truncate(time.Minute)
	if kickoff.Before(nowInLoc.Truncate(time.Minute)) {
		return time.Time{}, apperrors.Validation("kickoff %s is in the past", kickoff.Format(time.RFC3339))
	}
	return kickoff.UTC(), nil
}
