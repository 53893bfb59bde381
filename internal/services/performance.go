package services

import (
	"errors"
	"sort"

	"neet-rank-predictor/internal/models"
)

// ErrEmptyHistory is returned when there is nothing to analyze.
var ErrEmptyHistory = errors.New("quiz history is empty")

// weaknessThreshold is the topic accuracy below which a topic is a weak area.
const weaknessThreshold = 0.6

type PerformanceAnalyzer struct{}

func NewPerformanceAnalyzer() *PerformanceAnalyzer {
	return &PerformanceAnalyzer{}
}

// TopicPerformance returns the mean accuracy fraction per topic.
func (a *PerformanceAnalyzer) TopicPerformance(history []models.QuizSubmission) map[string]float64 {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, q := range history {
		sums[q.Topic] += q.Accuracy
		counts[q.Topic]++
	}
	result := make(map[string]float64, len(sums))
	for topic, sum := range sums {
		result[topic] = sum / float64(counts[topic])
	}
	return result
}

// WeakAreas returns topics below the weakness threshold, sorted by name.
func (a *PerformanceAnalyzer) WeakAreas(topicPerformance map[string]float64) []string {
	weak := []string{}
	for topic, score := range topicPerformance {
		if score < weaknessThreshold {
			weak = append(weak, topic)
		}
	}
	sort.Strings(weak)
	return weak
}

// ImprovementTrends returns each topic's accuracies in submission order.
func (a *PerformanceAnalyzer) ImprovementTrends(history []models.QuizSubmission) map[string][]float64 {
	sorted := sortedByDate(history)
	trends := map[string][]float64{}
	for _, q := range sorted {
		trends[q.Topic] = append(trends[q.Topic], q.Accuracy)
	}
	return trends
}

// DifficultyAnalysis returns per-topic accuracy percentages by difficulty
// level, from the per-question results recorded with each attempt.
func (a *PerformanceAnalyzer) DifficultyAnalysis(history []models.QuizSubmission) map[string]models.DifficultyBreakdown {
	type tally struct{ total, correct int }
	byTopic := map[string]map[string]*tally{}

	for _, q := range history {
		levels, ok := byTopic[q.Topic]
		if !ok {
			levels = map[string]*tally{}
			byTopic[q.Topic] = levels
		}
		for _, r := range q.Questions {
			t, ok := levels[r.Difficulty]
			if !ok {
				t = &tally{}
				levels[r.Difficulty] = t
			}
			t.total++
			if r.IsCorrect {
				t.correct++
			}
		}
	}

	pct := func(t *tally) float64 {
		if t == nil {
			return 0
		}
		return round2(CalculateAccuracy(t.correct, t.total))
	}

	result := make(map[string]models.DifficultyBreakdown, len(byTopic))
	for topic, levels := range byTopic {
		result[topic] = models.DifficultyBreakdown{
			Easy:   pct(levels[models.DifficultyEasy]),
			Medium: pct(levels[models.DifficultyMedium]),
			Hard:   pct(levels[models.DifficultyHard]),
		}
	}
	return result
}

func (a *PerformanceAnalyzer) Analyze(history []models.QuizSubmission) (*models.StudentPerformance, error) {
	if len(history) == 0 {
		return nil, ErrEmptyHistory
	}

	topicPerformance := a.TopicPerformance(history)
	return &models.StudentPerformance{
		UserID:             history[0].UserID,
		QuizHistory:        history,
		TopicWiseAccuracy:  topicPerformance,
		DifficultyAnalysis: a.DifficultyAnalysis(history),
		WeakAreas:          a.WeakAreas(topicPerformance),
		ImprovementTrends:  a.ImprovementTrends(history),
	}, nil
}

func sortedByDate(history []models.QuizSubmission) []models.QuizSubmission {
	sorted := make([]models.QuizSubmission, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SubmittedAt.Before(sorted[j].SubmittedAt)
	})
	return sorted
}
