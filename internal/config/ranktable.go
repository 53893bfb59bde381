package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed ranktable.yaml
var defaultRankTable []byte

type RankBucket struct {
	MinScore float64 `yaml:"min_score"`
	Rank     int     `yaml:"rank"`
	Spread   int     `yaml:"spread"`
}

type College struct {
	Name       string `yaml:"name"`
	CutoffRank int    `yaml:"cutoff_rank"`
}

type FeatureWeights struct {
	Accuracy      float64 `yaml:"accuracy"`
	Consistency   float64 `yaml:"consistency"`
	Improvement   float64 `yaml:"improvement"`
	TopicCoverage float64 `yaml:"topic_coverage"`
}

func (w FeatureWeights) sum() float64 {
	return w.Accuracy + w.Consistency + w.Improvement + w.TopicCoverage
}

// RankTable holds the static lookup data behind rank prediction and
// topic coverage.
type RankTable struct {
	RankBuckets    []RankBucket   `yaml:"rank_buckets"`
	Colleges       []College      `yaml:"colleges"`
	FeatureWeights FeatureWeights `yaml:"feature_weights"`
	NEETTopics     []string       `yaml:"neet_topics"`
}

// LoadRankTable reads a rank table from path, or the built-in table when
// path is empty.
func LoadRankTable(path string) (*RankTable, error) {
	data := defaultRankTable
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}
	return ParseRankTable(data)
}

// DefaultRankTable returns the built-in table.
func DefaultRankTable() *RankTable {
	table, err := ParseRankTable(defaultRankTable)
	if err != nil {
		panic(fmt.Sprintf("config: built-in rank table: %v", err))
	}
	return table
}

func ParseRankTable(data []byte) (*RankTable, error) {
	var table RankTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse rank table: %w", err)
	}
	if err := table.validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

func (t *RankTable) validate() error {
	if len(t.RankBuckets) == 0 {
		return fmt.Errorf("rank table: rank_buckets is required")
	}
	for i, b := range t.RankBuckets {
		if b.Rank < 1 {
			return fmt.Errorf("rank table: bucket %d: rank must be positive", i)
		}
		if b.Spread < 0 {
			return fmt.Errorf("rank table: bucket %d: spread must not be negative", i)
		}
		if i > 0 && b.MinScore >= t.RankBuckets[i-1].MinScore {
			return fmt.Errorf("rank table: bucket %d: min_score must be descending", i)
		}
	}
	if last := t.RankBuckets[len(t.RankBuckets)-1]; last.MinScore > 0 {
		return fmt.Errorf("rank table: last bucket must have min_score 0")
	}
	for i, c := range t.Colleges {
		if c.Name == "" || c.CutoffRank < 1 {
			return fmt.Errorf("rank table: college %d: name and positive cutoff_rank are required", i)
		}
	}
	if math.Abs(t.FeatureWeights.sum()-1) > 1e-9 {
		return fmt.Errorf("rank table: feature weights must sum to 1, got %g", t.FeatureWeights.sum())
	}
	return nil
}
