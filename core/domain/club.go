// ABOUTME: ClubProfile holds the keyword tables that identify the tracked club
// ABOUTME: Profiles are immutable configuration injected into the parser, matcher and ranker

package domain

import "strings"

// ClubProfile describes how the tracked club shows up in calendars and video titles.
// Aliases are lowercase phrases; keyword lists are already normalized to [a-z0-9].
type ClubProfile struct {
	Name            string   `toml:"name" validate:"required"`
	ShortName       string   `toml:"short_name" validate:"required"`
	Aliases         []string `toml:"aliases" validate:"required,min=1,dive,required"`
	MatchKeywords   []string `toml:"match_keywords" validate:"required,min=1,dive,required,alphanum,lowercase"`
	SearchKeywords  []string `toml:"search_keywords" validate:"required,min=1,dive,required,alphanum,lowercase"`
	GenericKeywords []string `toml:"generic_keywords" validate:"dive,required,alphanum,lowercase"`
	JunkTerms       []string `toml:"junk_terms" validate:"dive,required,alphanum,lowercase"`
}

// DefaultClubProfile returns the profile for Manchester United
func DefaultClubProfile() ClubProfile {
	return ClubProfile{
		Name:            "Manchester United",
		ShortName:       "Man United",
		Aliases:         []string{"man utd", "manchester united", "man united"},
		MatchKeywords:   []string{"manutd", "manchesterunited", "manunited", "mu"},
		SearchKeywords:  []string{"manutd", "manchester", "manunited", "mu", "reddevils", "mufc"},
		GenericKeywords: []string{"united"},
		JunkTerms:       []string{"preview", "prediction", "fifa", "pes", "efootball"},
	}
}

// IsClub reports whether a raw team name denotes the tracked club
func (p ClubProfile) IsClub(team string) bool {
	lower := strings.ToLower(strings.TrimSpace(team))
	for _, alias := range p.Aliases {
		if alias != "" && strings.Contains(lower, alias) {
			return true
		}
	}
	return false
}

// Normalize lowercases s and strips every character outside [a-z0-9]
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ContainsAny reports whether the normalized text contains any of the keywords
func ContainsAny(normalized string, keywords []string) bool {
	for _, k := range keywords {
		if k != "" && strings.Contains(normalized, k) {
			return true
		}
	}
	return false
}
