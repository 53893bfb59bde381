package models

type ChartAxis struct {
	Label   string    `json:"label"`
	DataKey string    `json:"dataKey,omitempty"`
	Domain  []float64 `json:"domain,omitempty"`
}

type ChartSeries struct {
	Name    string `json:"name"`
	DataKey string `json:"dataKey"`
	Color   string `json:"color"`
}

// Chart is a chart-library agnostic description of one chart.
type Chart struct {
	Type   string               `json:"type"`
	Title  string               `json:"title"`
	Data   []map[string]any     `json:"data"`
	Axes   map[string]ChartAxis `json:"axes"`
	Series []ChartSeries        `json:"series"`
}

type Visualizations struct {
	PerformanceTrend       Chart `json:"performance_trend_chart"`
	TopicPerformance       Chart `json:"topic_performance_chart"`
	WeakAreas              Chart `json:"weak_areas_chart"`
	ImprovementTrends      Chart `json:"improvement_trends_chart"`
	DifficultyDistribution Chart `json:"difficulty_distribution_chart"`
}
