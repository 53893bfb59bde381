package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuizAttempt is one submission as it appears in the quiz history and
// current submission fixtures.
type QuizAttempt struct {
	ID               int64            `json:"id"`
	QuizID           int64            `json:"quiz_id"`
	UserID           string           `json:"user_id"`
	SubmittedAt      time.Time        `json:"submitted_at"`
	Score            decimal.Decimal  `json:"score"`
	Accuracy         string           `json:"accuracy" example:"90 %"`
	Speed            decimal.Decimal  `json:"speed"`
	FinalScore       decimal.Decimal  `json:"final_score"`
	CorrectAnswers   int              `json:"correct_answers"`
	IncorrectAnswers int              `json:"incorrect_answers"`
	TotalQuestions   int              `json:"total_questions"`
	ResponseMap      ResponseMap      `json:"response_map,omitempty"`
	Quiz             *AttemptQuiz     `json:"quiz,omitempty"`
	Questions        []QuestionResult `json:"questions,omitempty"`
}

// AttemptQuiz is the quiz summary embedded in an attempt.
type AttemptQuiz struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Topic string `json:"topic"`
}

// QuestionResult is the per-question outcome recorded with an attempt.
type QuestionResult struct {
	QuestionID int64  `json:"question_id,omitempty"`
	Difficulty string `json:"difficulty"`
	IsCorrect  bool   `json:"is_correct"`
}

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// DifficultyLevels lists the levels in display order.
var DifficultyLevels = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}
