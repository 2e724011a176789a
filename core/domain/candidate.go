// ABOUTME: MatchCandidate pairs a fixture with a video and records which heuristics it passed
// ABOUTME: Candidates are produced for diagnostics and discarded immediately

package domain

// Check names used in a candidate trail
const (
	CheckWindow   = "window"
	CheckOpponent = "opponent"
	CheckClub     = "club"
	CheckJunk     = "junk"
)

// CheckResult is one step of the heuristic trail
type CheckResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// MatchCandidate is a (Fixture, Video) pairing annotated with its heuristic trail
type MatchCandidate struct {
	Fixture Fixture       `json:"fixture"`
	Video   Video         `json:"video"`
	Trail   []CheckResult `json:"trail"`
}

// Accepted reports whether every recorded check passed
func (c *MatchCandidate) Accepted() bool {
	for _, check := range c.Trail {
		if !check.Passed {
			return false
		}
	}
	return len(c.Trail) > 0
}

// FailedCheck returns the name of the first failing check, or empty when accepted
func (c *MatchCandidate) FailedCheck() string {
	for _, check := range c.Trail {
		if !check.Passed {
			return check.Name
		}
	}
	return ""
}

// Record appends a check to the trail and returns its outcome
func (c *MatchCandidate) Record(name string, passed bool, detail string) bool {
	c.Trail = append(c.Trail, CheckResult{Name: name, Passed: passed, Detail: detail})
	return passed
}
