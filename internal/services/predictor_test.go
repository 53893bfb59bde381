package services

import (
	"testing"

	"neet-rank-predictor/internal/config"
	"neet-rank-predictor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRankTable() *config.RankTable {
	return &config.RankTable{
		RankBuckets: []config.RankBucket{
			{MinScore: 0.8, Rank: 100, Spread: 150},
			{MinScore: 0.5, Rank: 1000, Spread: 200},
			{MinScore: 0, Rank: 10000, Spread: 1000},
		},
		Colleges: []config.College{
			{Name: "C", CutoffRank: 5000},
			{Name: "A", CutoffRank: 50},
			{Name: "B", CutoffRank: 1000},
		},
		FeatureWeights: config.FeatureWeights{Accuracy: 0.4, Consistency: 0.2, Improvement: 0.2, TopicCoverage: 0.2},
		NEETTopics:     []string{"A", "B"},
	}
}

func analyzed(t *testing.T, history ...models.QuizSubmission) *models.StudentPerformance {
	t.Helper()
	perf, err := NewPerformanceAnalyzer().Analyze(history)
	require.NoError(t, err)
	return perf
}

func TestFeatures(t *testing.T) {
	p := NewRankPredictor(testRankTable())
	perf := analyzed(t,
		submission(1, "A", 0.5, 0),
		submission(2, "A", 0.7, 1),
		submission(3, "X", 0.9, 2),
	)

	f := p.Features(perf)
	// topic means: A=0.6, X=0.9
	assert.InDelta(t, 0.75, f.Accuracy, 1e-9)
	// A improved by 0.2 -> (0.2+1)/2
	assert.InDelta(t, 0.6, f.Improvement, 1e-9)
	assert.InDelta(t, 0.5, f.TopicCoverage, 1e-9)
	assert.Greater(t, f.Consistency, 0.8)
	assert.LessOrEqual(t, f.Consistency, 1.0)
}

func TestFeatures_NoTrendIsNeutral(t *testing.T) {
	p := NewRankPredictor(testRankTable())
	f := p.Features(analyzed(t, submission(1, "A", 0.5, 0)))
	assert.Equal(t, 0.5, f.Improvement)
	assert.Equal(t, 1.0, f.Consistency)
}

func TestPredictRank_Buckets(t *testing.T) {
	p := NewRankPredictor(testRankTable())

	strong := p.PredictRank(analyzed(t,
		submission(1, "A", 1, 0),
		submission(2, "B", 1, 1),
	))
	assert.Equal(t, 100, strong.PredictedRank)
	assert.Equal(t, "1 to 250", strong.RankRange)
	assert.Equal(t, 0.6, strong.ConfidenceScore)

	weak := p.PredictRank(analyzed(t, submission(1, "X", 0.1, 0)))
	assert.Equal(t, 10000, weak.PredictedRank)
	assert.Equal(t, "9000 to 11000", weak.RankRange)
	assert.Less(t, weak.CompositeScore, 0.5)
}

func TestRecommendColleges(t *testing.T) {
	p := NewRankPredictor(testRankTable())

	got := p.RecommendColleges(800)
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].Name)
	assert.Equal(t, "C", got[1].Name)
	assert.Equal(t, "≤ 1000", got[0].CutoffRange)
	assert.Equal(t, 0.9, got[0].Probability)
	assert.Equal(t, 0.8, got[1].Probability)

	top := p.RecommendColleges(10)
	require.Len(t, top, 3)
	assert.Equal(t, "A", top[0].Name)
}

func TestRecommendColleges_NoneReachable(t *testing.T) {
	p := NewRankPredictor(testRankTable())

	got := p.RecommendColleges(50000)
	require.Len(t, got, 3)
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, []float64{0.9, 0.8, 0.7}, []float64{
		got[0].Probability, got[1].Probability, got[2].Probability,
	})
}

func TestAdmissionProbability(t *testing.T) {
	assert.Equal(t, 0.9, admissionProbability(0))
	assert.Equal(t, 0.5, admissionProbability(4))
	assert.Equal(t, 0.1, admissionProbability(8))
	assert.Equal(t, 0.1, admissionProbability(20))
}
