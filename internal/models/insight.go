package models

import "time"

type OverallStatistics struct {
	AverageAccuracy          float64 `json:"average_accuracy"`
	TotalQuizzes             int     `json:"total_quizzes"`
	TopicsCovered            int     `json:"topics_covered"`
	TopicsNeedingImprovement int     `json:"topics_needing_improvement"`
}

type TopicInsight struct {
	Score           float64  `json:"score"`
	Status          string   `json:"status"`
	Recommendations []string `json:"recommendations"`
}

type WeakArea struct {
	Topic        string `json:"topic"`
	CurrentScore string `json:"current_score"`
	Priority     string `json:"priority"`
}

type Recommendation struct {
	Area     string `json:"area"`
	Action   string `json:"action"`
	Priority string `json:"priority"`
}

// InsightReport is the comprehensive performance report for one student.
// Error is set instead of the other fields when there was nothing to report.
type InsightReport struct {
	OverallStatistics OverallStatistics       `json:"overall_statistics"`
	TopicInsights     map[string]TopicInsight `json:"topic_insights"`
	WeakAreas         []WeakArea              `json:"weak_areas"`
	Recommendations   []Recommendation        `json:"recommendations"`
	UncoveredTopics   []string                `json:"uncovered_topics"`
	Error             string                  `json:"error,omitempty"`
	GeneratedAt       time.Time               `json:"generated_at"`
}
