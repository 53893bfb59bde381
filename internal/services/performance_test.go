package services

import (
	"testing"

	"neet-rank-predictor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicPerformance(t *testing.T) {
	a := NewPerformanceAnalyzer()
	got := a.TopicPerformance([]models.QuizSubmission{
		submission(1, "Reproduction", 0.8, 0),
		submission(2, "Reproduction", 0.6, 1),
		submission(3, "Human Physiology", 0.5, 2),
	})
	assert.InDelta(t, 0.7, got["Reproduction"], 1e-9)
	assert.InDelta(t, 0.5, got["Human Physiology"], 1e-9)
}

func TestWeakAreas(t *testing.T) {
	a := NewPerformanceAnalyzer()
	got := a.WeakAreas(map[string]float64{"B": 0.3, "A": 0.59, "C": 0.6})
	assert.Equal(t, []string{"A", "B"}, got)
	assert.NotNil(t, a.WeakAreas(map[string]float64{"C": 0.9}))
}

func TestImprovementTrends_OrderedByDate(t *testing.T) {
	a := NewPerformanceAnalyzer()
	got := a.ImprovementTrends([]models.QuizSubmission{
		submission(1, "A", 0.9, 5),
		submission(2, "A", 0.5, 1),
		submission(3, "B", 0.4, 0),
		submission(4, "A", 0.7, 3),
	})
	assert.Equal(t, []float64{0.5, 0.7, 0.9}, got["A"])
	assert.Equal(t, []float64{0.4}, got["B"])
}

func TestDifficultyAnalysis(t *testing.T) {
	q := submission(1, "A", 0.5, 0)
	q.Questions = []models.QuestionResult{
		{Difficulty: models.DifficultyEasy, IsCorrect: true},
		{Difficulty: models.DifficultyEasy, IsCorrect: false},
		{Difficulty: models.DifficultyHard, IsCorrect: true},
		{Difficulty: "Unknown", IsCorrect: true},
	}
	got := NewPerformanceAnalyzer().DifficultyAnalysis([]models.QuizSubmission{q, submission(2, "B", 0.5, 1)})
	assert.Equal(t, models.DifficultyBreakdown{Easy: 50, Medium: 0, Hard: 100}, got["A"])
	assert.Equal(t, models.DifficultyBreakdown{}, got["B"])
}

func TestAnalyze(t *testing.T) {
	a := NewPerformanceAnalyzer()

	_, err := a.Analyze(nil)
	assert.ErrorIs(t, err, ErrEmptyHistory)

	perf, err := a.Analyze([]models.QuizSubmission{
		submission(1, "A", 0.4, 0),
		submission(2, "B", 0.9, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", perf.UserID)
	assert.Equal(t, []string{"A"}, perf.WeakAreas)
	assert.Len(t, perf.QuizHistory, 2)
	assert.Contains(t, perf.DifficultyAnalysis, "B")
}
