// ABOUTME: Search fallback ranker filters open search results for a fixture's highlight
// ABOUTME: Uses a lenient publish window, club and opponent keywords, a junk denylist and view counts

package search

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"highlights-app-api/core/domain"
	"highlights-app-api/core/matcher"
)

// WindowPolicy names an acceptance window for resolved publish times
type WindowPolicy string

const (
	// Lenient rejects only uploads more than 7 days before kickoff
	Lenient WindowPolicy = "lenient"

	// Strict accepts uploads from 2h before to 48h after kickoff
	Strict WindowPolicy = "strict"
)

// DefaultLimit is the number of ranked results returned
const DefaultLimit = 10

// ParseWindowPolicy maps a configuration value to a policy
func ParseWindowPolicy(s string) (WindowPolicy, error) {
	switch WindowPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case Lenient, "":
		return Lenient, nil
	case Strict:
		return Strict, nil
	default:
		return "", fmt.Errorf("unknown search window policy %q", s)
	}
}

// Window returns the bounds of the policy. A zero After means unbounded.
func (p WindowPolicy) Window() matcher.Window {
	if p == Strict {
		return matcher.Window{Before: 2 * time.Hour, After: 48 * time.Hour}
	}
	return matcher.Window{Before: 7 * 24 * time.Hour}
}

// RankerOptions configures a Ranker
type RankerOptions struct {
	Policy WindowPolicy
	Limit  int
}

// Ranker orders search results for human disambiguation
type Ranker struct {
	club   domain.ClubProfile
	window matcher.Window
	limit  int
}

// NewRanker creates a ranker for the given club
func NewRanker(club domain.ClubProfile, opts RankerOptions) *Ranker {
	if opts.Policy == "" {
		opts.Policy = Lenient
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	return &Ranker{
		club:   club,
		window: opts.Policy.Window(),
		limit:  opts.Limit,
	}
}

// ClubKeywords returns the keywords that prove the club is in a title.
// Keywords contained in the opponent's own name are dropped, so the
// opponent alone never satisfies the club check.
func (r *Ranker) ClubKeywords(opponent string) []string {
	normalizedOpponent := domain.Normalize(opponent)
	keywords := make([]string, 0, len(r.club.SearchKeywords)+len(r.club.GenericKeywords))
	for _, list := range [][]string{r.club.SearchKeywords, r.club.GenericKeywords} {
		for _, keyword := range list {
			if !strings.Contains(normalizedOpponent, keyword) {
				keywords = append(keywords, keyword)
			}
		}
	}
	return keywords
}

// Evaluate runs every filter on one search result.
// The returned candidate's video carries the resolved publish instant.
func (r *Ranker) Evaluate(fixture domain.Fixture, video domain.Video, searchedAt time.Time) domain.MatchCandidate {
	candidate := domain.MatchCandidate{Fixture: fixture, Video: video}

	published, ok := r.resolve(video, searchedAt)
	if !ok {
		candidate.Record(domain.CheckWindow, false, "unknown publish time")
		return candidate
	}
	candidate.Video.Published = published
	if !candidate.Record(domain.CheckWindow, r.inWindow(fixture.Date, published), "") {
		return candidate
	}

	title := domain.Normalize(video.Title)
	if title == "" {
		candidate.Record(domain.CheckOpponent, false, "empty title")
		return candidate
	}

	words := matcher.OpponentWords(fixture.Opponent, r.club.GenericKeywords)
	if !candidate.Record(domain.CheckOpponent, matcher.ContainsOpponent(title, words), "") {
		return candidate
	}

	if !candidate.Record(domain.CheckClub, domain.ContainsAny(title, r.ClubKeywords(fixture.Opponent)), "") {
		return candidate
	}

	candidate.Record(domain.CheckJunk, !domain.ContainsAny(title, r.club.JunkTerms), "")
	return candidate
}

// Rank filters results and returns the most viewed ones, at most the configured limit.
// The output is not deduplicated.
func (r *Ranker) Rank(fixture domain.Fixture, videos []domain.Video, searchedAt time.Time) []domain.Video {
	ranked := make([]domain.Video, 0)
	for _, video := range videos {
		c := r.Evaluate(fixture, video, searchedAt)
		if c.Accepted() {
			ranked = append(ranked, c.Video)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Views > ranked[j].Views
	})

	if len(ranked) > r.limit {
		ranked = ranked[:r.limit]
	}
	return ranked
}

func (r *Ranker) resolve(video domain.Video, searchedAt time.Time) (time.Time, bool) {
	if video.HasAbsoluteTime() {
		return video.Published, true
	}
	if video.PublishedText == "" {
		return time.Time{}, false
	}
	return ResolveRelativeTime(video.PublishedText, searchedAt)
}

func (r *Ranker) inWindow(kickoff, published time.Time) bool {
	delta := published.Sub(kickoff)
	if delta < -r.window.Before {
		return false
	}
	return r.window.After == 0 || delta <= r.window.After
}
