// ABOUTME: Matcher pairs a fixture with its highlight video from the trusted channel feed
// ABOUTME: Applies a tight publish window plus opponent and club keyword filters

package matcher

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"highlights-app-api/core/domain"
)

// RankingStrategy decides the order of accepted candidates
type RankingStrategy string

const (
	// MostRecent prefers the latest upload inside the window
	MostRecent RankingStrategy = "most_recent"

	// FeedOrder keeps the order the videos were supplied in (first found wins)
	FeedOrder RankingStrategy = "feed_order"
)

// ParseRankingStrategy maps a configuration value to a strategy
func ParseRankingStrategy(s string) (RankingStrategy, error) {
	switch RankingStrategy(strings.ToLower(strings.TrimSpace(s))) {
	case MostRecent, "":
		return MostRecent, nil
	case FeedOrder:
		return FeedOrder, nil
	default:
		return "", fmt.Errorf("unknown ranking strategy %q", s)
	}
}

// Window bounds the publish time of a highlight relative to kickoff
type Window struct {
	// Before is how long before kickoff an upload is still accepted
	Before time.Duration

	// After is how long after kickoff an upload is still accepted
	After time.Duration
}

// DefaultWindow accepts uploads from 1h before to 12h after kickoff
var DefaultWindow = Window{Before: time.Hour, After: 12 * time.Hour}

// Contains reports whether published falls inside the window around kickoff
func (w Window) Contains(kickoff, published time.Time) bool {
	delta := published.Sub(kickoff)
	return delta >= -w.Before && delta <= w.After
}

// Options configures a Matcher
type Options struct {
	Window   Window
	Strategy RankingStrategy
}

// Matcher selects trusted-feed highlights for fixtures
type Matcher struct {
	club     domain.ClubProfile
	window   Window
	strategy RankingStrategy
}

// New creates a matcher for the given club
func New(club domain.ClubProfile, opts Options) *Matcher {
	if opts.Window == (Window{}) {
		opts.Window = DefaultWindow
	}
	if opts.Strategy == "" {
		opts.Strategy = MostRecent
	}
	return &Matcher{
		club:     club,
		window:   opts.Window,
		strategy: opts.Strategy,
	}
}

// Evaluate runs every filter on one video and returns the heuristic trail.
// Evaluation stops at the first failing check.
func (m *Matcher) Evaluate(fixture domain.Fixture, video domain.Video) domain.MatchCandidate {
	candidate := domain.MatchCandidate{Fixture: fixture, Video: video}

	if video.Published.IsZero() {
		candidate.Record(domain.CheckWindow, false, "no publish time")
		return candidate
	}
	if !candidate.Record(domain.CheckWindow, m.window.Contains(fixture.Date, video.Published), windowDetail(fixture.Date, video.Published)) {
		return candidate
	}

	title := domain.Normalize(video.Title)

	if !candidate.Record(domain.CheckOpponent, ContainsOpponent(title, OpponentWords(fixture.Opponent, nil)), "") {
		return candidate
	}

	candidate.Record(domain.CheckClub, domain.ContainsAny(title, m.club.MatchKeywords), "")
	return candidate
}

// RankCandidates returns every video that passes the filters, ordered by the
// configured strategy. It never fails; no input means no candidates.
func (m *Matcher) RankCandidates(fixture domain.Fixture, videos []domain.Video) []domain.Video {
	if len(videos) == 0 {
		return []domain.Video{}
	}

	candidates := make([]domain.Video, 0)
	for _, video := range videos {
		c := m.Evaluate(fixture, video)
		if c.Accepted() {
			candidates = append(candidates, video)
		}
	}

	if m.strategy == MostRecent {
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Published.After(candidates[j].Published)
		})
	}

	return candidates
}

// SelectBest returns the top ranked candidate, or nil when there is none
func (m *Matcher) SelectBest(fixture domain.Fixture, videos []domain.Video) *domain.Video {
	candidates := m.RankCandidates(fixture, videos)
	if len(candidates) == 0 {
		return nil
	}
	best := candidates[0]
	return &best
}

// OpponentWords splits an opponent name into normalized discriminating words.
// Words of two characters or fewer and any excluded keyword are dropped.
func OpponentWords(opponent string, exclude []string) []string {
	words := make([]string, 0)
	for _, raw := range strings.Fields(opponent) {
		word := domain.Normalize(raw)
		if len(word) <= 2 || contains(exclude, word) {
			continue
		}
		words = append(words, word)
	}
	return words
}

// ContainsOpponent reports whether any opponent word appears in the normalized title
func ContainsOpponent(normalizedTitle string, words []string) bool {
	return domain.ContainsAny(normalizedTitle, words)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func windowDetail(kickoff, published time.Time) string {
	return fmt.Sprintf("%.1fh from kickoff", published.Sub(kickoff).Hours())
}
