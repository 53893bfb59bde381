package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRankTable_Default(t *testing.T) {
	table, err := LoadRankTable("")
	require.NoError(t, err)
	assert.Len(t, table.NEETTopics, 8)
	assert.Equal(t, "AIIMS New Delhi", table.Colleges[0].Name)
	assert.Equal(t, 0.4, table.FeatureWeights.Accuracy)
	assert.Equal(t, 0.0, table.RankBuckets[len(table.RankBuckets)-1].MinScore)
}

func TestLoadRankTable_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranks.yaml")
	body := `
rank_buckets:
  - {min_score: 0.5, rank: 10, spread: 5}
  - {min_score: 0, rank: 100, spread: 50}
feature_weights: {accuracy: 1}
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	table, err := LoadRankTable(path)
	require.NoError(t, err)
	assert.Len(t, table.RankBuckets, 2)
	assert.Empty(t, table.Colleges)
}

func TestLoadRankTable_MissingFile(t *testing.T) {
	_, err := LoadRankTable(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseRankTable_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no buckets", "feature_weights: {accuracy: 1}"},
		{"ascending buckets", "rank_buckets: [{min_score: 0, rank: 1}, {min_score: 0.5, rank: 2}]\nfeature_weights: {accuracy: 1}"},
		{"no floor bucket", "rank_buckets: [{min_score: 0.5, rank: 1}]\nfeature_weights: {accuracy: 1}"},
		{"zero rank", "rank_buckets: [{min_score: 0, rank: 0}]\nfeature_weights: {accuracy: 1}"},
		{"bad weights", "rank_buckets: [{min_score: 0, rank: 1}]\nfeature_weights: {accuracy: 0.5}"},
		{"bad college", "rank_buckets: [{min_score: 0, rank: 1}]\nfeature_weights: {accuracy: 1}\ncolleges: [{name: X}]"},
		{"not yaml", "rank_buckets: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRankTable([]byte(tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATA_DIR", "/srv/fixtures")
	t.Setenv("RANK_TABLE_PATH", "")

	cfg := Load()
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "/srv/fixtures", cfg.DataDir)
	assert.Equal(t, "", cfg.RankTablePath)
}
