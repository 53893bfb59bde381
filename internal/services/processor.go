package services

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"neet-rank-predictor/internal/models"

	"github.com/shopspring/decimal"
)

const unknownTopic = "Unknown"

type DataProcessor struct{}

func NewDataProcessor() *DataProcessor {
	return &DataProcessor{}
}

// ParseAccuracy converts an accuracy string such as "90 %" into a fraction.
func ParseAccuracy(s string) (float64, error) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid accuracy %q: %w", s, err)
	}
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
		return 0, fmt.Errorf("accuracy %q out of range", s)
	}
	return d.Div(decimal.NewFromInt(100)).InexactFloat64(), nil
}

func (p *DataProcessor) Preprocess(a models.QuizAttempt) (models.QuizSubmission, error) {
	if a.UserID == "" {
		return models.QuizSubmission{}, errors.New("missing required field: user_id")
	}
	if a.SubmittedAt.IsZero() {
		return models.QuizSubmission{}, errors.New("missing required field: submitted_at")
	}
	accuracy, err := ParseAccuracy(a.Accuracy)
	if err != nil {
		return models.QuizSubmission{}, err
	}

	score, speed, finalScore := a.Score.InexactFloat64(), a.Speed.InexactFloat64(), a.FinalScore.InexactFloat64()
	for _, f := range []struct {
		name  string
		value float64
	}{{"score", score}, {"speed", speed}, {"final_score", finalScore}} {
		if math.IsInf(f.value, 0) || math.IsNaN(f.value) {
			return models.QuizSubmission{}, fmt.Errorf("%s out of range", f.name)
		}
	}

	topic := unknownTopic
	if a.Quiz != nil && a.Quiz.Topic != "" {
		topic = a.Quiz.Topic
	}

	return models.QuizSubmission{
		ID:               a.ID,
		QuizID:           a.QuizID,
		UserID:           a.UserID,
		SubmittedAt:      a.SubmittedAt,
		Score:            score,
		Accuracy:         accuracy,
		Speed:            speed,
		FinalScore:       finalScore,
		CorrectAnswers:   a.CorrectAnswers,
		IncorrectAnswers: a.IncorrectAnswers,
		TotalQuestions:   a.TotalQuestions,
		ResponseMap:      a.ResponseMap,
		Topic:            topic,
		Questions:        a.Questions,
	}, nil
}

// ProcessHistorical converts every attempt it can, logging and skipping the rest.
func (p *DataProcessor) ProcessHistorical(attempts []models.QuizAttempt) []models.QuizSubmission {
	processed := make([]models.QuizSubmission, 0, len(attempts))
	for _, a := range attempts {
		s, err := p.Preprocess(a)
		if err != nil {
			log.Printf("processor: skipping invalid submission %d: %v", a.ID, err)
			continue
		}
		processed = append(processed, s)
	}
	return processed
}
