package services

import (
	"neet-rank-predictor/internal/models"

	"github.com/shopspring/decimal"
)

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// ScoreResponses checks each parsed response against the quiz question bank.
// Responses to questions the quiz does not contain are scored incorrect.
func (s *ScoringService) ScoreResponses(quiz models.QuizDetail, responses []models.ParsedResponse) []models.QuizResponse {
	scored := make([]models.QuizResponse, 0, len(responses))
	for _, r := range responses {
		entry := models.QuizResponse{
			QuestionID:       r.QuestionID,
			SelectedOptionID: r.SelectedOptionID,
			Topic:            quiz.Topic,
		}

		if question, ok := quiz.Question(r.QuestionID); ok {
			if question.Topic != "" {
				entry.Topic = question.Topic
			}
			entry.DifficultyLevel = question.DifficultyLevel
			for _, opt := range question.Options {
				if opt.ID == r.SelectedOptionID {
					entry.IsCorrect = opt.IsCorrect
					break
				}
			}
		}

		scored = append(scored, entry)
	}
	return scored
}

// CalculateMarks applies the quiz marking scheme: correct answer marks for
// each correct response, minus negative marks for each incorrect one.
func (s *ScoringService) CalculateMarks(quiz models.QuizDetail, responses []models.QuizResponse) decimal.Decimal {
	marks := decimal.Zero
	for _, r := range responses {
		if r.IsCorrect {
			marks = marks.Add(quiz.CorrectAnswerMarks)
		} else {
			marks = marks.Sub(quiz.NegativeMarks)
		}
	}
	return marks
}
