package handlers

import "neet-rank-predictor/internal/models"

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// Type aliases so swag can resolve models in annotations.
type StudentPerformance = models.StudentPerformance
type InsightReport = models.InsightReport
type RankPrediction = models.RankPrediction
type Visualizations = models.Visualizations
type Summary = models.Summary
type ScoredSubmission = models.ScoredSubmission
