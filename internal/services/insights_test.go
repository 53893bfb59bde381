package services

import (
	"testing"
	"time"

	"neet-rank-predictor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInsightGenerator(topics ...string) *InsightGenerator {
	g := NewInsightGenerator(topics)
	g.now = func() time.Time { return day0 }
	return g
}

func TestGenerateReport_Empty(t *testing.T) {
	report := newTestInsightGenerator().GenerateReport(nil)
	assert.Equal(t, "No quiz history available", report.Error)
	assert.Equal(t, day0, report.GeneratedAt)
}

func TestGenerateReport(t *testing.T) {
	g := newTestInsightGenerator("Reproduction", "Human Physiology", "Reproductive Health", "Microbes in Human Welfare")
	report := g.GenerateReport([]models.QuizSubmission{
		submission(1, "Reproduction", 0.9, 0),
		submission(2, "Reproduction", 0.8, 1),
		submission(3, "Human Physiology", 0.5, 2),
		submission(4, "Body Fluids and Circulation", 0.65, 3),
	})

	require.Empty(t, report.Error)
	assert.Equal(t, models.OverallStatistics{
		AverageAccuracy:          71.25,
		TotalQuizzes:             4,
		TopicsCovered:            3,
		TopicsNeedingImprovement: 2,
	}, report.OverallStatistics)

	repro := report.TopicInsights["Reproduction"]
	assert.Equal(t, 85.0, repro.Score)
	assert.Equal(t, StatusGood, repro.Status)
	assert.Equal(t, []string{"Maintain performance in Reproduction"}, repro.Recommendations)

	physio := report.TopicInsights["Human Physiology"]
	assert.Equal(t, StatusAverage, physio.Status)
	assert.Equal(t, []string{"Focus on Human Physiology fundamentals"}, physio.Recommendations)

	assert.Equal(t, []string{"Practice more Body Fluids and Circulation problems"},
		report.TopicInsights["Body Fluids and Circulation"].Recommendations)

	assert.Equal(t, []models.WeakArea{
		{Topic: "Body Fluids and Circulation", CurrentScore: "65.0%", Priority: "Medium"},
		{Topic: "Human Physiology", CurrentScore: "50.0%", Priority: "High"},
	}, report.WeakAreas)
	require.Len(t, report.Recommendations, 2)
	assert.Equal(t, "Intensive practice needed in Human Physiology", report.Recommendations[1].Action)

	assert.Equal(t, []string{"Reproductive Health", "Microbes in Human Welfare"}, report.UncoveredTopics)
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "52.0%", formatPercent(52))
	assert.Equal(t, "71.25%", formatPercent(71.25))
	assert.Equal(t, "0.0%", formatPercent(0))
}
