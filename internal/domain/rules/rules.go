package rules

import (
	"strings"
	"time"
)

// AgeAt computes a person's age in whole years at the given instant,
// subtracting one when the birthday has not yet occurred this year.
func AgeAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// GenderMatches reports whether a candidate's gender satisfies the
// viewer's show-me preference. "everyone" (or unset) accepts anything;
// "men"/"women" map to male/female. Comparison is case-insensitive.
func GenderMatches(showMe, candidateGender string) bool {
	switch strings.ToLower(strings.TrimSpace(showMe)) {
	case "", "everyone":
		return true
	case "men":
		return strings.EqualFold(candidateGender, "male")
	case "women":
		return strings.EqualFold(candidateGender, "female")
	default:
		return false
	}
}

// Preferences is a user's discovery settings after default substitution.
type Preferences struct {
	MaxDistanceKM float64
	AgeMin        int
	AgeMax        int
	ShowMe        string
}

// Defaults used when a user has never configured their preferences.
type Defaults struct {
	MaxDistanceKM float64
	AgeMin        int
	AgeMax        int
	ShowMe        string
}

// ApplyDefaults fills unset (zero) preference fields from defaults.
func ApplyDefaults(p Preferences, d Defaults) Preferences {
	if p.MaxDistanceKM <= 0 {
		p.MaxDistanceKM = d.MaxDistanceKM
	}
	if p.AgeMin <= 0 {
		p.AgeMin = d.AgeMin
	}
	if p.AgeMax <= 0 {
		p.AgeMax = d.AgeMax
	}
	if strings.TrimSpace(p.ShowMe) == "" {
		p.ShowMe = d.ShowMe
	}
	return p
}
