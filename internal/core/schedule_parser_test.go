// ABOUTME: Tests for the schedule text extractor and the deterministic fallback
// ABOUTME: Covers bulleted and bare markers, partial days, and hour formatting
package core

import (
	"testing"
)

func TestParseScheduleWellFormed(t *testing.T) {
	raw := `Day 1:
- Topics: Introduction to thermodynamics
- Activities: Read chapter 1, work the example problems
- Duration: 2 hours

Day 2:
- Topics: The first law
- Activities: Read chapter 2
- Duration: 1.5 hours`

	days := ParseSchedule(raw)
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}

	d := days[0]
	if d.Day != "Day 1" {
		t.Errorf("day = %q, want %q", d.Day, "Day 1")
	}
	if d.Topics != "Introduction to thermodynamics" {
		t.Errorf("topics = %q", d.Topics)
	}
	if d.Activities != "Read chapter 1, work the example problems" {
		t.Errorf("activities = %q", d.Activities)
	}
	if d.Duration != "2 hours" {
		t.Errorf("duration = %q", d.Duration)
	}
}

func TestParseSchedulePartialDay(t *testing.T) {
	raw := `Day 1:
- Topics: intro
- Activities: read
- Duration: 1 hour
Day 2:
- Topics: advanced`

	days := ParseSchedule(raw)
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	d := days[1]
	if d.Day != "Day 2" || d.Topics != "advanced" {
		t.Errorf("second day = %+v", d)
	}
	if d.Activities != "" || d.Duration != "" {
		t.Errorf("expected empty optional fields, got %+v", d)
	}
}

func TestParseScheduleBareMarkers(t *testing.T) {
	raw := "Day 3:\nTopics: revision\nDuration: 45 minutes"
	days := ParseSchedule(raw)
	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}
	if days[0].Topics != "revision" || days[0].Duration != "45 minutes" {
		t.Errorf("day = %+v", days[0])
	}
}

func TestParseScheduleDropsHeaderWithoutTopics(t *testing.T) {
	raw := "Day 1:\nDay 2:\n- Topics: the only real day"
	days := ParseSchedule(raw)
	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}
	if days[0].Day != "Day 2" {
		t.Errorf("day = %q, want %q", days[0].Day, "Day 2")
	}
}

func TestParseScheduleIgnoresPreamble(t *testing.T) {
	raw := "Here is your study plan:\n\nDay 1:\n- Topics: kickoff\n\nGood luck!"
	days := ParseSchedule(raw)
	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}
}

func TestParseScheduleEmpty(t *testing.T) {
	if got := ParseSchedule(""); len(got) != 0 {
		t.Errorf("got %d days from empty input, want 0", len(got))
	}
}

func TestFallbackSchedule(t *testing.T) {
	days := FallbackSchedule(3, 2.5)
	if len(days) != 3 {
		t.Fatalf("got %d days, want 3", len(days))
	}

	if days[0].Day != "Day 1" || days[2].Day != "Day 3" {
		t.Errorf("day labels = %q .. %q", days[0].Day, days[2].Day)
	}
	if days[1].Topics != "Study session 2: review the course material" {
		t.Errorf("topics = %q", days[1].Topics)
	}
	for _, d := range days {
		if d.Activities != "Read chapters, take notes, review key concepts" {
			t.Errorf("activities = %q", d.Activities)
		}
		if d.Duration != "2.5 hours" {
			t.Errorf("duration = %q", d.Duration)
		}
	}
}

func TestFallbackScheduleDeterministic(t *testing.T) {
	a := FallbackSchedule(5, 2)
	b := FallbackSchedule(5, 2)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("day %d differs between runs", i+1)
		}
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{2, "2 hours"},
		{2.5, "2.5 hours"},
		{1.25, "1.25 hours"},
		{0.5, "0.5 hours"},
	}
	for _, tt := range tests {
		if got := FormatHours(tt.hours); got != tt.want {
			t.Errorf("FormatHours(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}
