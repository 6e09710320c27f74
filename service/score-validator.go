package service

import (
	"fmt"
	"math"
	"staffeval/app_error"
	"staffeval/utils"
)

const (
	MinPoint = 0.0
	MaxPoint = 10.0
)

// Scores maps question id to the point given for it.
type Scores map[int]float64

func validPoint(point float64) bool {
	return !math.IsNaN(point) && !math.IsInf(point, 0) && point >= MinPoint && point <= MaxPoint
}

// ValidateScores checks every point is finite and within [0, 10]. The returned
// error lists every offending question id in ascending order. An empty mapping is valid.
func ValidateScores(scores Scores) error {
	invalid := make([]int, 0)
	for _, questionId := range utils.SortedKeys(scores) {
		if !validPoint(scores[questionId]) {
			invalid = append(invalid, questionId)
		}
	}
	if len(invalid) == 0 {
		return nil
	}
	return &app_error.Error{
		Kind:        app_error.KindInvalidScore,
		Message:     fmt.Sprintf("Points for questions %v must be numbers between %v and %v", invalid, MinPoint, MaxPoint),
		QuestionIds: invalid,
	}
}
