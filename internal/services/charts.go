package services

import (
	"fmt"
	"sort"

	"neet-rank-predictor/internal/models"
)

const (
	colorPrimary   = "#2563eb"
	colorSecondary = "#16a34a"
	colorError     = "#ef4444"
	colorNeutral   = "#64748b"

	// targetAccuracy is the percentage every topic should reach.
	targetAccuracy = 70
)

var percentDomain = []float64{0, 100}

type ChartGenerator struct{}

func NewChartGenerator() *ChartGenerator {
	return &ChartGenerator{}
}

// PerformanceTrend plots accuracy and final score per quiz, oldest first.
func (g *ChartGenerator) PerformanceTrend(history []models.QuizSubmission) models.Chart {
	data := []map[string]any{}
	for _, q := range sortedByDate(history) {
		data = append(data, map[string]any{
			"date":     q.SubmittedAt.Format("2006-01-02"),
			"accuracy": round2(q.Accuracy * 100),
			"score":    round2(q.FinalScore),
		})
	}
	return models.Chart{
		Type:  "line",
		Title: "Performance Trend",
		Data:  data,
		Axes: map[string]models.ChartAxis{
			"x": {Label: "Quiz Date", DataKey: "date"},
			"y": {Label: "Score/Accuracy (%)", Domain: percentDomain},
		},
		Series: []models.ChartSeries{
			{Name: "Accuracy", DataKey: "accuracy", Color: colorPrimary},
			{Name: "Score", DataKey: "score", Color: colorSecondary},
		},
	}
}

// TopicPerformance plots topic accuracy, best topic first.
func (g *ChartGenerator) TopicPerformance(topicAccuracy map[string]float64) models.Chart {
	topics := topicsBy(topicAccuracy, true)
	data := make([]map[string]any, 0, len(topics))
	for _, topic := range topics {
		acc := topicAccuracy[topic]
		status := "Needs Improvement"
		if acc >= 0.7 {
			status = "Good"
		}
		data = append(data, map[string]any{
			"topic":    topic,
			"accuracy": round2(acc * 100),
			"status":   status,
		})
	}
	return models.Chart{
		Type:  "bar",
		Title: "Topic-wise Performance",
		Data:  data,
		Axes: map[string]models.ChartAxis{
			"x": {Label: "Subjects", DataKey: "topic"},
			"y": {Label: "Accuracy (%)", Domain: percentDomain},
		},
		Series: []models.ChartSeries{
			{Name: "Current Performance", DataKey: "accuracy", Color: colorPrimary},
		},
	}
}

// WeakAreas plots weak topics, weakest first, with the gap to the target.
func (g *ChartGenerator) WeakAreas(weakAccuracy map[string]float64) models.Chart {
	topics := topicsBy(weakAccuracy, false)
	data := make([]map[string]any, 0, len(topics))
	for _, topic := range topics {
		acc := weakAccuracy[topic]
		status := "Needs Work"
		if acc < 0.6 {
			status = "Critical"
		}
		data = append(data, map[string]any{
			"topic":    topic,
			"accuracy": round2(acc * 100),
			"gap":      round2(targetAccuracy - acc*100),
			"status":   status,
		})
	}
	return models.Chart{
		Type:  "bar",
		Title: "Areas Needing Improvement",
		Data:  data,
		Axes: map[string]models.ChartAxis{
			"x": {Label: "Current Score (%)", Domain: percentDomain},
			"y": {Label: "Subjects", DataKey: "topic"},
		},
		Series: []models.ChartSeries{
			{Name: "Current Score", DataKey: "accuracy", Color: colorError},
		},
	}
}

// ImprovementTrends plots one line per topic over quiz number. Topics with
// fewer quizzes have no value at the later points.
func (g *ChartGenerator) ImprovementTrends(trends map[string][]float64) models.Chart {
	topics := make([]string, 0, len(trends))
	points := 0
	for topic, scores := range trends {
		topics = append(topics, topic)
		if len(scores) > points {
			points = len(scores)
		}
	}
	sort.Strings(topics)

	data := make([]map[string]any, 0, points)
	for i := 0; i < points; i++ {
		point := map[string]any{"quiz": fmt.Sprintf("Quiz %d", i+1)}
		for _, topic := range topics {
			if scores := trends[topic]; i < len(scores) {
				point[topic] = round2(scores[i] * 100)
			}
		}
		data = append(data, point)
	}

	series := make([]models.ChartSeries, 0, len(topics))
	for i, topic := range topics {
		series = append(series, models.ChartSeries{
			Name:    topic,
			DataKey: topic,
			Color:   fmt.Sprintf("hsl(%d, 70%%, 50%%)", i*45),
		})
	}
	return models.Chart{
		Type:  "line",
		Title: "Improvement Trends",
		Data:  data,
		Axes: map[string]models.ChartAxis{
			"x": {Label: "Quiz Number", DataKey: "quiz"},
			"y": {Label: "Score (%)", Domain: percentDomain},
		},
		Series: series,
	}
}

// DifficultyDistribution counts questions and correct answers per level.
func (g *ChartGenerator) DifficultyDistribution(history []models.QuizSubmission) models.Chart {
	total := map[string]int{}
	correct := map[string]int{}
	for _, q := range history {
		for _, r := range q.Questions {
			total[r.Difficulty]++
			if r.IsCorrect {
				correct[r.Difficulty]++
			}
		}
	}

	data := make([]map[string]any, 0, len(models.DifficultyLevels))
	for _, level := range models.DifficultyLevels {
		data = append(data, map[string]any{
			"difficulty": level,
			"total":      total[level],
			"correct":    correct[level],
			"accuracy":   round2(CalculateAccuracy(correct[level], total[level])),
		})
	}
	return models.Chart{
		Type:  "bar",
		Title: "Difficulty Distribution",
		Data:  data,
		Axes: map[string]models.ChartAxis{
			"x": {Label: "Difficulty Level", DataKey: "difficulty"},
			"y": {Label: "Questions Count"},
		},
		Series: []models.ChartSeries{
			{Name: "Total Questions", DataKey: "total", Color: colorNeutral},
			{Name: "Correct Answers", DataKey: "correct", Color: colorPrimary},
		},
	}
}

func (g *ChartGenerator) Visualizations(perf *models.StudentPerformance) models.Visualizations {
	weak := make(map[string]float64, len(perf.WeakAreas))
	for _, topic := range perf.WeakAreas {
		weak[topic] = perf.TopicWiseAccuracy[topic]
	}
	return models.Visualizations{
		PerformanceTrend:       g.PerformanceTrend(perf.QuizHistory),
		TopicPerformance:       g.TopicPerformance(perf.TopicWiseAccuracy),
		WeakAreas:              g.WeakAreas(weak),
		ImprovementTrends:      g.ImprovementTrends(perf.ImprovementTrends),
		DifficultyDistribution: g.DifficultyDistribution(perf.QuizHistory),
	}
}

// topicsBy orders topics by value, breaking ties by name.
func topicsBy(values map[string]float64, descending bool) []string {
	topics := make([]string, 0, len(values))
	for topic := range values {
		topics = append(topics, topic)
	}
	sort.Slice(topics, func(i, j int) bool {
		a, b := values[topics[i]], values[topics[j]]
		if a != b {
			if descending {
				return a > b
			}
			return a < b
		}
		return topics[i] < topics[j]
	})
	return topics
}
