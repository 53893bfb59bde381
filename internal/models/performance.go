package models

import "time"

// QuizSubmission is a QuizAttempt converted into typed analysis input.
// Accuracy is a fraction in [0, 1].
type QuizSubmission struct {
	ID               int64
	QuizID           int64
	UserID           string
	SubmittedAt      time.Time
	Score            float64
	Accuracy         float64
	Speed            float64
	FinalScore       float64
	CorrectAnswers   int
	IncorrectAnswers int
	TotalQuestions   int
	ResponseMap      ResponseMap
	Topic            string
	Questions        []QuestionResult
}

// DifficultyBreakdown holds accuracy percentages per difficulty level.
type DifficultyBreakdown struct {
	Easy   float64 `json:"easy"`
	Medium float64 `json:"medium"`
	Hard   float64 `json:"hard"`
}

type StudentPerformance struct {
	UserID             string                         `json:"user_id"`
	QuizHistory        []QuizSubmission               `json:"-"`
	TopicWiseAccuracy  map[string]float64             `json:"topic_wise_accuracy"`
	DifficultyAnalysis map[string]DifficultyBreakdown `json:"difficulty_analysis"`
	WeakAreas          []string                       `json:"weak_areas"`
	ImprovementTrends  map[string][]float64           `json:"improvement_trends"`
}
