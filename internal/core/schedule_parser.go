// ABOUTME: Schedule extractor: line-oriented state machine over generated plans
// ABOUTME: Includes the deterministic fallback used when generation fails or parses empty
package core

import (
	"fmt"
	"strconv"
	"strings"

	"studypilot/internal/models"
)

// scheduleParseState tracks whether a day record is being accumulated.
type scheduleParseState int

const (
	noActiveDay scheduleParseState = iota
	inDay
)

const (
	dayPrefix     = "Day "
	topicsTag     = "Topics:"
	activitiesTag = "Activities:"
	durationTag   = "Duration:"
)

// partialDay accumulates fields until the record is flushed.
type partialDay struct {
	day        string
	topics     string
	activities string
	duration   string
}

// complete requires topics: a Day header with no body indicates a
// truncated or malformed generation and is dropped.
func (p *partialDay) complete() bool {
	return p.day != "" && p.topics != ""
}

func (p *partialDay) toModel() models.ScheduleDay {
	return models.ScheduleDay{
		Day:        p.day,
		Topics:     p.topics,
		Activities: p.activities,
		Duration:   p.duration,
	}
}

// ParseSchedule scans generated schedule text line by line and returns day
// records in generation order. Field markers are accepted with or without
// a leading bullet dash; unrecognized lines are ignored.
func ParseSchedule(raw string) []models.ScheduleDay {
	var (
		days    []models.ScheduleDay
		current partialDay
		state   = noActiveDay
	)

	flush := func() {
		if current.complete() {
			days = append(days, current.toModel())
		}
		current = partialDay{}
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, dayPrefix) {
			flush()
			label, _, _ := strings.Cut(line, ":")
			current.day = strings.TrimSpace(label)
			state = inDay
			continue
		}

		if state != inDay {
			continue
		}

		if v, ok := markerValue(line, topicsTag); ok {
			current.topics = v
		} else if v, ok := markerValue(line, activitiesTag); ok {
			current.activities = v
		} else if v, ok := markerValue(line, durationTag); ok {
			current.duration = v
		}
	}
	flush()

	return days
}

// markerValue strips "- Tag:" or "Tag:" from the line and returns the rest.
func markerValue(line, tag string) (string, bool) {
	switch {
	case strings.HasPrefix(line, "- "+tag):
		return strings.TrimSpace(strings.TrimPrefix(line, "- "+tag)), true
	case strings.HasPrefix(line, tag):
		return strings.TrimSpace(strings.TrimPrefix(line, tag)), true
	}
	return "", false
}

// FallbackSchedule builds a generic day-by-day plan when the generative
// path fails or yields nothing usable. The output is shaped exactly like a
// parsed schedule so downstream consumers cannot tell them apart except by
// content.
func FallbackSchedule(days int, hoursPerDay float64) []models.ScheduleDay {
	schedule := make([]models.ScheduleDay, 0, days)
	for i := 1; i <= days; i++ {
		schedule = append(schedule, models.ScheduleDay{
			Day:        fmt.Sprintf("Day %d", i),
			Topics:     fmt.Sprintf("Study session %d: review the course material", i),
			Activities: "Read chapters, take notes, review key concepts",
			Duration:   FormatHours(hoursPerDay),
		})
	}
	return schedule
}

// FormatHours renders an hours-per-day value without trailing zeros,
// e.g. "2 hours" or "1.5 hours".
func FormatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64) + " hours"
}
