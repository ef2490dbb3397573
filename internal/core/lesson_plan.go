// ABOUTME: Arithmetic lesson planner: spreads a lesson count over study days
// ABOUTME: No generation involved; pure integer split with remainder up front
package core

import (
	"fmt"
	"math"

	"studypilot/internal/models"
)

// SplitLessons distributes totalLessons across studyDays. Leftover lessons
// after the integer division go to the earliest days. Per-day hours scale
// with that day's lesson count relative to the base load, rounded to two
// decimals.
func SplitLessons(totalLessons, studyDays int, hoursPerDay float64) []models.LessonDay {
	if studyDays <= 0 {
		return nil
	}

	perDay := totalLessons / studyDays
	extra := totalLessons % studyDays

	schedule := make([]models.LessonDay, 0, studyDays)
	for day := 1; day <= studyDays; day++ {
		lessons := perDay
		if day <= extra {
			lessons++
		}
		hours := hoursPerDay * float64(lessons) / (float64(perDay) + 1e-9)
		schedule = append(schedule, models.LessonDay{
			Day:     fmt.Sprintf("Day %d", day),
			Lessons: lessons,
			Hours:   math.Round(hours*100) / 100,
		})
	}
	return schedule
}
