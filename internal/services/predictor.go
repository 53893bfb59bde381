package services

import (
	"fmt"
	"math"
	"sort"

	"neet-rank-predictor/internal/config"
	"neet-rank-predictor/internal/models"
)

const (
	maxRecommendedColleges = 5
	fallbackColleges       = 3
)

// Features are the normalized inputs to the composite score, each in [0, 1].
type Features struct {
	Accuracy      float64 `json:"accuracy"`
	Consistency   float64 `json:"consistency"`
	Improvement   float64 `json:"improvement"`
	TopicCoverage float64 `json:"topic_coverage"`
}

// RankPredictor estimates a rank by looking up a weighted performance score
// in a static bucket table. There is no trained model behind it.
type RankPredictor struct {
	table *config.RankTable
}

func NewRankPredictor(table *config.RankTable) *RankPredictor {
	return &RankPredictor{table: table}
}

func (p *RankPredictor) Features(perf *models.StudentPerformance) Features {
	topicAccuracies := make([]float64, 0, len(perf.TopicWiseAccuracy))
	for _, acc := range perf.TopicWiseAccuracy {
		topicAccuracies = append(topicAccuracies, acc)
	}

	quizAccuracies := make([]float64, 0, len(perf.QuizHistory))
	for _, q := range perf.QuizHistory {
		quizAccuracies = append(quizAccuracies, q.Accuracy*100)
	}

	var deltas []float64
	for _, trend := range perf.ImprovementTrends {
		if len(trend) > 1 {
			deltas = append(deltas, trend[len(trend)-1]-trend[0])
		}
	}
	// A delta of -1..1 maps to 0..1; no trend data is neutral.
	improvement := 0.5
	if len(deltas) > 0 {
		improvement = (mean(deltas) + 1) / 2
	}

	var coverage float64
	if len(p.table.NEETTopics) > 0 {
		covered := 0
		for _, topic := range p.table.NEETTopics {
			if _, ok := perf.TopicWiseAccuracy[topic]; ok {
				covered++
			}
		}
		coverage = float64(covered) / float64(len(p.table.NEETTopics))
	}

	return Features{
		Accuracy:      clamp01(mean(topicAccuracies)),
		Consistency:   ConsistencyScore(quizAccuracies),
		Improvement:   clamp01(improvement),
		TopicCoverage: coverage,
	}
}

func (p *RankPredictor) CompositeScore(f Features) float64 {
	w := p.table.FeatureWeights
	return clamp01(f.Accuracy*w.Accuracy +
		f.Consistency*w.Consistency +
		f.Improvement*w.Improvement +
		f.TopicCoverage*w.TopicCoverage)
}

// bucket returns the first bucket whose min score the composite reaches.
func (p *RankPredictor) bucket(score float64) config.RankBucket {
	for _, b := range p.table.RankBuckets {
		if score >= b.MinScore {
			return b
		}
	}
	return p.table.RankBuckets[len(p.table.RankBuckets)-1]
}

// PredictRank returns the rank estimate for perf, without college
// recommendations.
func (p *RankPredictor) PredictRank(perf *models.StudentPerformance) models.RankPrediction {
	score := p.CompositeScore(p.Features(perf))
	b := p.bucket(score)

	low := b.Rank - b.Spread
	if low < 1 {
		low = 1
	}
	return models.RankPrediction{
		UserID:          perf.UserID,
		PredictedRank:   b.Rank,
		RankRange:       fmt.Sprintf("%d to %d", low, b.Rank+b.Spread),
		ConfidenceScore: confidence(len(perf.QuizHistory)),
		CompositeScore:  round2(score),
	}
}

// RecommendColleges lists colleges whose cutoff the rank reaches, best
// first. When none are reachable the most attainable ones are returned.
func (p *RankPredictor) RecommendColleges(rank int) []models.CollegePrediction {
	colleges := make([]config.College, len(p.table.Colleges))
	copy(colleges, p.table.Colleges)
	sort.SliceStable(colleges, func(i, j int) bool {
		return colleges[i].CutoffRank < colleges[j].CutoffRank
	})

	var picked []config.College
	for _, c := range colleges {
		if c.CutoffRank >= rank {
			picked = append(picked, c)
		}
	}
	if len(picked) > maxRecommendedColleges {
		picked = picked[:maxRecommendedColleges]
	}
	if len(picked) == 0 && len(colleges) > 0 {
		start := len(colleges) - fallbackColleges
		if start < 0 {
			start = 0
		}
		picked = colleges[start:]
	}

	result := make([]models.CollegePrediction, 0, len(picked))
	for i, c := range picked {
		result = append(result, models.CollegePrediction{
			Name:        c.Name,
			Probability: admissionProbability(i),
			CutoffRange: fmt.Sprintf("≤ %d", c.CutoffRank),
		})
	}
	return result
}

// admissionProbability is 0.9 for the first recommended college and drops
// by 0.1 per position, never below 0.1.
func admissionProbability(idx int) float64 {
	return round2(math.Max(0.1, 0.9-0.1*float64(idx)))
}

// confidence grows with the number of quizzes analyzed.
func confidence(quizzes int) float64 {
	return round2(math.Min(0.95, 0.5+0.05*float64(quizzes)))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
