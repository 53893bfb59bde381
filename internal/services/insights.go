package services

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"neet-rank-predictor/internal/models"
)

// weakInsightScore is the topic score percentage below which a topic is
// reported as a weak area.
const weakInsightScore = 70

type InsightGenerator struct {
	topics []string
	now    func() time.Time
}

// NewInsightGenerator builds a generator that reports coverage against topics.
func NewInsightGenerator(topics []string) *InsightGenerator {
	return &InsightGenerator{topics: topics, now: time.Now}
}

func (g *InsightGenerator) GenerateReport(history []models.QuizSubmission) models.InsightReport {
	if len(history) == 0 {
		log.Printf("insights: no quiz history provided")
		return models.InsightReport{
			Error:       "No quiz history available",
			GeneratedAt: g.now(),
		}
	}

	byTopic := map[string][]float64{}
	accuracies := make([]float64, 0, len(history))
	for _, q := range history {
		accuracies = append(accuracies, q.Accuracy)
		byTopic[q.Topic] = append(byTopic[q.Topic], q.Accuracy)
	}

	topics := make([]string, 0, len(byTopic))
	for topic := range byTopic {
		topics = append(topics, topic)
	}
	sort.Strings(topics)

	insights := make(map[string]models.TopicInsight, len(topics))
	weakAreas := []models.WeakArea{}
	recommendations := []models.Recommendation{}
	for _, topic := range topics {
		avg := mean(byTopic[topic])
		score := round2(avg * 100)
		insights[topic] = models.TopicInsight{
			Score:           score,
			Status:          CategorizePerformance(avg),
			Recommendations: []string{topicRecommendation(topic, avg)},
		}

		if score < weakInsightScore {
			priority := "Medium"
			if score < 60 {
				priority = "High"
			}
			weakAreas = append(weakAreas, models.WeakArea{
				Topic:        topic,
				CurrentScore: formatPercent(score),
				Priority:     priority,
			})
			recommendations = append(recommendations, models.Recommendation{
				Area:     topic,
				Action:   "Intensive practice needed in " + topic,
				Priority: priority,
			})
		}
	}
	log.Printf("insights: %d topics, %d weak areas", len(topics), len(weakAreas))

	uncovered := []string{}
	for _, topic := range g.topics {
		if _, ok := insights[topic]; !ok {
			uncovered = append(uncovered, topic)
		}
	}

	return models.InsightReport{
		OverallStatistics: models.OverallStatistics{
			AverageAccuracy:          round2(mean(accuracies) * 100),
			TotalQuizzes:             len(history),
			TopicsCovered:            len(topics),
			TopicsNeedingImprovement: len(weakAreas),
		},
		TopicInsights:   insights,
		WeakAreas:       weakAreas,
		Recommendations: recommendations,
		UncoveredTopics: uncovered,
		GeneratedAt:     g.now(),
	}
}

func topicRecommendation(topic string, accuracy float64) string {
	switch {
	case accuracy < 0.6:
		return fmt.Sprintf("Focus on %s fundamentals", topic)
	case accuracy < 0.8:
		return fmt.Sprintf("Practice more %s problems", topic)
	default:
		return fmt.Sprintf("Maintain performance in %s", topic)
	}
}

// formatPercent renders a percentage with at least one decimal place,
// e.g. 52 as "52.0%" and 71.25 as "71.25%".
func formatPercent(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + "%"
}
