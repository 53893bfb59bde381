package models

type CollegePrediction struct {
	Name        string  `json:"name"`
	Probability float64 `json:"probability"`
	CutoffRange string  `json:"cutoff_range"`
}

type RankPrediction struct {
	UserID              string              `json:"user_id"`
	PredictedRank       int                 `json:"predicted_rank"`
	RankRange           string              `json:"rank_range"`
	ConfidenceScore     float64             `json:"confidence_score"`
	CompositeScore      float64             `json:"composite_score"`
	RecommendedColleges []CollegePrediction `json:"recommended_colleges"`
}
