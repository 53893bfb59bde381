package services

import (
	"time"

	"neet-rank-predictor/internal/models"
)

var day0 = time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

func submission(id int64, topic string, accuracy float64, dayOffset int) models.QuizSubmission {
	return models.QuizSubmission{
		ID:          id,
		QuizID:      id * 10,
		UserID:      "alice",
		SubmittedAt: day0.AddDate(0, 0, dayOffset),
		Accuracy:    accuracy,
		FinalScore:  accuracy * 100,
		Topic:       topic,
	}
}
