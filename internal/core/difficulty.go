// ABOUTME: Difficulty selector derives a quiz difficulty tier from past scores
// ABOUTME: Rolling mean over the most recent attempts with fixed thresholds
package core

import "studypilot/internal/models"

// ScoreWindow is how many recent attempts feed the difficulty decision.
const ScoreWindow = 5

// SelectDifficulty maps the mean percentage of the most recent attempts
// (newest first, at most ScoreWindow consumed) to a difficulty tier:
// above 80 is difficult, below 50 is easy, anything else is medium. The
// comparisons are strict, so a mean of exactly 80 or 50 lands on medium.
// Returns false when there is no usable history, meaning the quiz prompt
// should carry no difficulty hint at all.
func SelectDifficulty(recent []models.Score) (models.Difficulty, bool) {
	if len(recent) > ScoreWindow {
		recent = recent[:ScoreWindow]
	}

	var sum float64
	var n int
	for _, s := range recent {
		if s.Total <= 0 {
			continue
		}
		sum += float64(s.Correct) / float64(s.Total) * 100
		n++
	}
	if n == 0 {
		return "", false
	}

	mean := sum / float64(n)
	switch {
	case mean > 80:
		return models.DifficultyDifficult, true
	case mean < 50:
		return models.DifficultyEasy, true
	default:
		return models.DifficultyMedium, true
	}
}
