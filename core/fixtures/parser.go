// ABOUTME: Fixture parser turns calendar events into normalized fixtures of the tracked club
// ABOUTME: Pure functions; events that do not name the club are dropped without error

package fixtures

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"highlights-app-api/core/domain"
)

// versusSeparator matches "vs", "vs.", "v" and a spaced hyphen between the two sides
var versusSeparator = regexp.MustCompile(`(?i)\s+vs\.?\s+|\s+-\s+|\s+v\s+`)

// fixtureNamespace seeds ids for events that arrive without a UID
var fixtureNamespace = uuid.MustParse("6f1c7a2e-2b1d-4c55-9a3e-8d0f3f7e5b21")

// Event is one calendar entry as handed over by a calendar source
type Event struct {
	Summary    string
	Start      time.Time
	UID        string
	Categories []string
}

// Parser converts calendar events into fixtures for one club
type Parser struct {
	club domain.ClubProfile
}

// NewParser creates a parser for the given club profile
func NewParser(club domain.ClubProfile) *Parser {
	return &Parser{club: club}
}

// ParseEvent returns the fixture described by the event, or nil when the
// event is not a recognizable fixture of the tracked club.
func (p *Parser) ParseEvent(event Event) *domain.Fixture {
	if strings.TrimSpace(event.Summary) == "" || event.Start.IsZero() {
		return nil
	}

	parts := versusSeparator.Split(event.Summary, -1)
	if len(parts) < 2 {
		return nil
	}

	teamA := strings.TrimSpace(parts[0])
	teamB := strings.TrimSpace(parts[1])
	if teamA == "" || teamB == "" {
		return nil
	}

	fixture := &domain.Fixture{
		ID:          event.UID,
		Date:        event.Start.UTC(),
		Competition: competition(event.Categories),
	}

	switch {
	case p.club.IsClub(teamA):
		fixture.IsHome = true
		fixture.Opponent = teamB
		fixture.HomeTeam = p.club.Name
		fixture.AwayTeam = teamB
	case p.club.IsClub(teamB):
		fixture.Opponent = teamA
		fixture.HomeTeam = teamA
		fixture.AwayTeam = p.club.Name
	default:
		return nil
	}

	if fixture.ID == "" {
		fixture.ID = uuid.NewSHA1(fixtureNamespace, []byte(event.Summary+"|"+fixture.Date.Format(time.RFC3339))).String()
	}

	return fixture
}

// ParseEvents parses every event, skipping the ones that are not fixtures.
// The result is sorted newest first.
func (p *Parser) ParseEvents(events []Event) []domain.Fixture {
	fixtures := make([]domain.Fixture, 0, len(events))
	for _, event := range events {
		if f := p.ParseEvent(event); f != nil {
			fixtures = append(fixtures, *f)
		}
	}

	sort.SliceStable(fixtures, func(i, j int) bool {
		return fixtures[i].Date.After(fixtures[j].Date)
	})

	return fixtures
}

func competition(categories []string) string {
	for _, c := range categories {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	return domain.UnknownCompetition
}
