package services

import (
	"fmt"
	"math"
	"time"

	"neet-rank-predictor/internal/models"

	"github.com/shopspring/decimal"
)

// Performance thresholds, as accuracy fractions.
const (
	WeakPerformanceThreshold    = 0.4
	AveragePerformanceThreshold = 0.6
	GoodPerformanceThreshold    = 0.75

	SignificantImprovement = 0.1
	RecentActivityDays     = 30
)

const (
	StatusGood             = "Good"
	StatusAverage          = "Average"
	StatusNeedsImprovement = "Needs Improvement"
)

// round2 rounds to two decimal places. Non-finite values become 0.
func round2(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// CalculateAccuracy returns correct/total as a percentage.
func CalculateAccuracy(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

// CalculateImprovement returns the relative change from oldScore to newScore
// as a percentage.
func CalculateImprovement(oldScore, newScore float64) float64 {
	if oldScore <= 0 {
		return 0
	}
	return (newScore - oldScore) / oldScore * 100
}

func CategorizePerformance(accuracy float64) string {
	switch {
	case accuracy >= GoodPerformanceThreshold:
		return StatusGood
	case accuracy <= WeakPerformanceThreshold:
		return StatusNeedsImprovement
	default:
		return StatusAverage
	}
}

// ConsistencyScore maps the population standard deviation of percentage
// accuracies onto [0, 1], where 1 means every quiz scored the same.
func ConsistencyScore(accuracies []float64) float64 {
	if len(accuracies) == 0 {
		return 0
	}
	m := mean(accuracies)
	var variance float64
	for _, a := range accuracies {
		variance += (a - m) * (a - m)
	}
	stdDev := math.Sqrt(variance / float64(len(accuracies)))
	return math.Max(0, math.Min(1, 1-stdDev/100))
}

// FormatTimeTaken renders seconds as mm:ss.
func FormatTimeTaken(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// DetectSignificantImprovement reports whether the last score improved on
// the first by at least SignificantImprovement.
func DetectSignificantImprovement(scores []float64) bool {
	if len(scores) < 2 || scores[0] == 0 {
		return false
	}
	return (scores[len(scores)-1]-scores[0])/scores[0] >= SignificantImprovement
}

// RecentActivities returns submissions made within the last days days of now.
func RecentActivities(history []models.QuizSubmission, now time.Time, days int) []models.QuizSubmission {
	cutoff := now.AddDate(0, 0, -days)
	recent := []models.QuizSubmission{}
	for _, q := range history {
		if q.SubmittedAt.After(cutoff) {
			recent = append(recent, q)
		}
	}
	return recent
}
