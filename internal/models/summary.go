package models

import "time"

type Summary struct {
	Analysis       *StudentPerformance `json:"analysis"`
	Insights       InsightReport       `json:"insights"`
	Predictions    RankPrediction      `json:"predictions"`
	Visualizations Visualizations      `json:"visualizations"`
	GeneratedAt    time.Time           `json:"generated_at"`
}

// ScoredSubmission is a submission's responses checked against its quiz.
type ScoredSubmission struct {
	UserID    string         `json:"user_id"`
	QuizID    int64          `json:"quiz_id"`
	QuizTitle string         `json:"quiz_title"`
	Responses []QuizResponse `json:"responses"`
	Correct   int            `json:"correct"`
	Incorrect int            `json:"incorrect"`
	Marks     float64        `json:"marks"`
}
