package teamdomain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Black-And-White-Club/football-league/app/shared/apperrors"
)

// Position is the playing position of a squad member.
type Position string

const (
	Goalkeeper Position = "goalkeeper"
	Defender   Position = "defender"
	Midfielder Position = "midfielder"
	Forward    Position = "forward"
)

// Age bounds enforced on every player.
const (
	MinPlayerAge = 10
	MaxPlayerAge = 55
)

// MaxNameLength bounds team, player, stadium and coach names.
const MaxNameLength = 100

// earliestFoundedYear predates every professional club.
const earliestFoundedYear = 1850

var positionAliases = map[string]Position{
	"goalkeeper": Goalkeeper,
	"gk":         Goalkeeper,
	"defender":   Defender,
	"df":         Defender,
	"def":        Defender,
	"midfielder": Midfielder,
	"mf":         Midfielder,
	"mid":        Midfielder,
	"forward":    Forward,
	"fw":         Forward,
	"striker":    Forward,
}

// ParsePosition accepts a position name or its common abbreviation, ignoring case.
func ParsePosition(s string) (Position, error) {
	if p, ok := positionAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return p, nil
	}
	return "", apperrors.Validation("unknown position %q", s)
}

// ValidateAge checks the player age range.
func ValidateAge(age int) error {
	if age < MinPlayerAge || age > MaxPlayerAge {
		return apperrors.Validation("age %d outside [%d, %d]", age, MinPlayerAge, MaxPlayerAge)
	}
	return nil
}

// ValidateName requires a non-blank value no longer than MaxNameLength.
func ValidateName(field, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return apperrors.Validation("%s is required", field)
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLength {
		return apperrors.Validation("%s longer than %d characters", field, MaxNameLength)
	}
	if strings.ContainsRune(trimmed, 0) {
		return apperrors.Validation("%s must not contain NUL characters", field)
	}
	return nil
}

// ValidateOptionalName applies ValidateName to a present value.
func ValidateOptionalName(field string, value *string) error {
	if value == nil {
		return nil
	}
	return ValidateName(field, *value)
}

// ValidateFoundedYear rejects years in the future or implausibly far back.
func ValidateFoundedYear(year *int, now time.Time) error {
	if year == nil {
		return nil
	}
	if *year < earliestFoundedYear || *year > now.Year() {
		return apperrors.Validation("founded year %d outside [%d, %d]", *year, earliestFoundedYear, now.Year())
	}
	return nil
}
