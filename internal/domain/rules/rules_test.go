package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeAt(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	// birthday already passed this year
	assert.Equal(t, 30, AgeAt(time.Date(1996, time.March, 1, 0, 0, 0, 0, time.UTC), now))

	// birthday later this year
	assert.Equal(t, 29, AgeAt(time.Date(1996, time.September, 1, 0, 0, 0, 0, time.UTC), now))

	// birthday today counts as already occurred
	assert.Equal(t, 30, AgeAt(time.Date(1996, time.June, 15, 0, 0, 0, 0, time.UTC), now))

	// day boundary within the birth month
	assert.Equal(t, 29, AgeAt(time.Date(1996, time.June, 16, 0, 0, 0, 0, time.UTC), now))
}

func TestGenderMatches(t *testing.T) {
	assert.True(t, GenderMatches("everyone", "male"))
	assert.True(t, GenderMatches("", "female"))
	assert.True(t, GenderMatches("men", "male"))
	assert.True(t, GenderMatches("MEN", "Male"))
	assert.True(t, GenderMatches("women", "female"))

	assert.False(t, GenderMatches("men", "female"))
	assert.False(t, GenderMatches("women", "male"))
	assert.False(t, GenderMatches("martians", "male"))
}

func TestApplyDefaults(t *testing.T) {
	d := Defaults{MaxDistanceKM: 50, AgeMin: 18, AgeMax: 100, ShowMe: "everyone"}

	// fully unset -> all defaults
	p := ApplyDefaults(Preferences{}, d)
	assert.Equal(t, Preferences{MaxDistanceKM: 50, AgeMin: 18, AgeMax: 100, ShowMe: "everyone"}, p)

	// explicit values survive
	p = ApplyDefaults(Preferences{MaxDistanceKM: 10, AgeMin: 25, AgeMax: 35, ShowMe: "women"}, d)
	assert.Equal(t, Preferences{MaxDistanceKM: 10, AgeMin: 25, AgeMax: 35, ShowMe: "women"}, p)

	// partial
	p = ApplyDefaults(Preferences{AgeMin: 21}, d)
	assert.Equal(t, 21, p.AgeMin)
	assert.Equal(t, 100, p.AgeMax)
	assert.Equal(t, 50.0, p.MaxDistanceKM)
}
