// ABOUTME: Fixture domain model represents one scheduled match of the tracked club
// ABOUTME: Provides helpers to classify fixtures relative to a reference instant

package domain

import (
	"errors"
	"time"
)

// UnknownCompetition is used when the calendar does not carry a competition name
const UnknownCompetition = "Unknown"

// Fixture represents a single scheduled match between the tracked club and an opponent
type Fixture struct {
	// ID is the stable identifier taken from the calendar event UID
	ID string `json:"id"`

	// Date is the kickoff instant, always in UTC
	Date time.Time `json:"date"`

	// Opponent is the free-text name of the non-tracked side
	Opponent string `json:"opponent"`

	HomeTeam    string `json:"homeTeam"`
	AwayTeam    string `json:"awayTeam"`
	Competition string `json:"competition"`

	// IsHome is true when the tracked club is the home side
	IsHome bool `json:"isHome"`
}

// Validate checks the fixture invariants
func (f *Fixture) Validate() error {
	if f.ID == "" {
		return errors.New("fixture id cannot be empty")
	}

	if f.Date.IsZero() {
		return errors.New("fixture date cannot be empty")
	}

	if f.HomeTeam == "" || f.AwayTeam == "" {
		return errors.New("fixture teams cannot be empty")
	}

	return nil
}

// HasKickedOff reports whether the fixture kickoff is before now
func (f *Fixture) HasKickedOff(now time.Time) bool {
	return f.Date.Before(now)
}

// Title returns the "Home vs Away" label used in listings
func (f *Fixture) Title() string {
	return f.HomeTeam + " vs " + f.AwayTeam
}
