// ABOUTME: Calendar service fetches ICS calendars and hands their events to the fixture parser
// ABOUTME: Tries each configured source in order and degrades to an empty list on failure

package fixtures

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	coreerrors "highlights-app-api/core/errors"
	"highlights-app-api/core/domain"
	"highlights-app-api/core/interfaces"
)

// DefaultSourceTimeout bounds a single calendar download
const DefaultSourceTimeout = 15 * time.Second

// CalendarService retrieves fixtures from one or more ICS sources
type CalendarService struct {
	deps    interfaces.Dependencies
	parser  *Parser
	sources []string
	timeout time.Duration
}

// NewCalendarService creates a calendar service. Sources are tried in order.
func NewCalendarService(deps interfaces.Dependencies, parser *Parser, sources []string, timeout time.Duration) *CalendarService {
	if timeout <= 0 {
		timeout = DefaultSourceTimeout
	}
	return &CalendarService{
		deps:    deps,
		parser:  parser,
		sources: sources,
		timeout: timeout,
	}
}

// FetchFixtures returns the fixtures of the first source that yields any.
// Every failure is logged and the method falls through to the next source;
// when all sources fail the result is an empty slice.
func (s *CalendarService) FetchFixtures(ctx context.Context) []domain.Fixture {
	logger := s.deps.Log()

	for i, source := range s.sources {
		fixtures, err := s.fetchSource(ctx, source)
		if err == nil && len(fixtures) == 0 {
			err = errors.New("no fixtures found in source")
		}
		if err != nil {
			logger.Warn("Calendar source failed", map[string]interface{}{
				"source":   source,
				"attempt":  i + 1,
				"fallback": i+1 < len(s.sources),
				"error":    err.Error(),
			})
			if ctx.Err() != nil {
				break
			}
			continue
		}

		logger.Info("Fetched fixtures from calendar", map[string]interface{}{
			"source": source,
			"count":  len(fixtures),
		})
		return fixtures
	}

	logger.Error("All calendar sources failed", map[string]interface{}{
		"sources": len(s.sources),
	})
	return []domain.Fixture{}
}

func (s *CalendarService) fetchSource(ctx context.Context, source string) ([]domain.Fixture, error) {
	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	url := normalizeCalendarURL(source)
	resp, err := s.deps.HTTPClient.Get(ctx, url)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to fetch calendar")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "calendar returned non-200 status code",
			API:        url,
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to read calendar")
	}

	events, err := ParseCalendar(body)
	if err != nil {
		return nil, err
	}

	return s.parser.ParseEvents(events), nil
}

// ParseCalendar extracts the VEVENTs of an ICS document.
// Events without a summary or a readable start are skipped.
func ParseCalendar(content []byte) ([]Event, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, errors.New("empty calendar content")
	}

	cal, err := ics.ParseCalendar(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar: %w", err)
	}

	vevents := cal.Events()
	events := make([]Event, 0, len(vevents))
	for _, ve := range vevents {
		summary := propertyValue(ve, ics.ComponentPropertySummary)
		if summary == "" {
			continue
		}

		start, err := ve.GetStartAt()
		if err != nil {
			continue
		}

		event := Event{
			Summary: summary,
			Start:   start,
			UID:     propertyValue(ve, ics.ComponentPropertyUniqueId),
		}
		if categories := propertyValue(ve, ics.ComponentPropertyCategories); categories != "" {
			event.Categories = strings.Split(categories, ",")
		}

		events = append(events, event)
	}

	return events, nil
}

func propertyValue(ve *ics.VEvent, name ics.ComponentProperty) string {
	prop := ve.GetProperty(name)
	if prop == nil {
		return ""
	}
	return unescapeText(prop.Value)
}

// unescapeText undoes RFC 5545 TEXT escaping
func unescapeText(s string) string {
	r := strings.NewReplacer(`\n`, " ", `\N`, " ", `\,`, ",", `\;`, ";", `\\`, `\`)
	return strings.TrimSpace(r.Replace(s))
}

// normalizeCalendarURL rewrites webcal links to https
func normalizeCalendarURL(source string) string {
	if strings.HasPrefix(source, "webcal://") {
		return "https://" + strings.TrimPrefix(source, "webcal://")
	}
	return source
}
