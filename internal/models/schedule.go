// ABOUTME: Study schedule data types for the extractor and API layers
// ABOUTME: Defines ScheduleDay (AI-generated plans) and LessonDay (arithmetic plans)
package models

// ScheduleDay is one day of a generated study plan.
type ScheduleDay struct {
	Day        string `json:"day"`
	Topics     string `json:"topics"`
	Activities string `json:"activities"`
	Duration   string `json:"duration"`
}

// LessonDay is one day of an arithmetic lesson split: a fixed number of
// lessons spread evenly across the available days.
type LessonDay struct {
	Day     string  `json:"day"`
	Lessons int     `json:"lessons"`
	Hours   float64 `json:"hours"`
}
