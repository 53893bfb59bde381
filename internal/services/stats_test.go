package services

import (
	"math"
	"testing"
	"time"

	"neet-rank-predictor/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 66.67, round2(200.0/3))
	assert.Equal(t, 0.5, round2(0.499999))
	assert.Equal(t, -1.23, round2(-1.234))
	assert.Equal(t, 0.0, round2(math.Inf(1)))
	assert.Equal(t, 0.0, round2(math.NaN()))
}

func TestCalculateAccuracy(t *testing.T) {
	assert.Equal(t, 75.0, CalculateAccuracy(3, 4))
	assert.Equal(t, 0.0, CalculateAccuracy(3, 0))
}

func TestCalculateImprovement(t *testing.T) {
	assert.Equal(t, 50.0, CalculateImprovement(40, 60))
	assert.Equal(t, 0.0, CalculateImprovement(0, 60))
}

func TestCategorizePerformance(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     string
	}{
		{0.9, StatusGood},
		{0.75, StatusGood},
		{0.6, StatusAverage},
		{0.4, StatusNeedsImprovement},
		{0.1, StatusNeedsImprovement},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CategorizePerformance(tt.accuracy), "accuracy %v", tt.accuracy)
	}
}

func TestConsistencyScore(t *testing.T) {
	assert.Equal(t, 0.0, ConsistencyScore(nil))
	assert.Equal(t, 1.0, ConsistencyScore([]float64{70, 70, 70}))
	// std dev of {50, 90} is 20.
	assert.InDelta(t, 0.8, ConsistencyScore([]float64{50, 90}), 1e-9)
}

func TestFormatTimeTaken(t *testing.T) {
	assert.Equal(t, "00:00", FormatTimeTaken(0))
	assert.Equal(t, "02:05", FormatTimeTaken(125))
	assert.Equal(t, "61:01", FormatTimeTaken(3661))
}

func TestDetectSignificantImprovement(t *testing.T) {
	assert.False(t, DetectSignificantImprovement([]float64{0.5}))
	assert.False(t, DetectSignificantImprovement([]float64{0, 0.9}))
	assert.True(t, DetectSignificantImprovement([]float64{0.5, 0.4, 0.6}))
	assert.False(t, DetectSignificantImprovement([]float64{0.5, 0.52}))
}

func TestRecentActivities(t *testing.T) {
	now := day0.AddDate(0, 0, 40)
	history := []models.QuizSubmission{
		submission(1, "A", 0.5, 0),
		submission(2, "A", 0.5, 20),
		submission(3, "A", 0.5, 39),
	}

	got := RecentActivities(history, now, RecentActivityDays)
	assert.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)

	assert.Empty(t, RecentActivities(history, now.Add(365*24*time.Hour), RecentActivityDays))
}
