package handlers

import (
	"errors"
	"log"
	"net/http"

	"neet-rank-predictor/internal/quizdata"
	"neet-rank-predictor/internal/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// respondError maps service errors onto HTTP status codes.
func respondError(c *gin.Context, op string, err error) {
	var malformed *quizdata.ErrMalformedResponse
	switch {
	case errors.Is(err, services.ErrNoQuizData), errors.Is(err, services.ErrQuizNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.As(err, &malformed):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		log.Printf("%s for user %s failed: %v", op, c.Param("user_id"), err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to generate " + op})
	}
}

// GetAnalysis godoc
// @Summary      Student performance analysis
// @Description  Topic accuracy, difficulty breakdown, weak areas and trends over history and the current submission
// @Tags         reports
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200 {object} StudentPerformance
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /analysis/{user_id} [get]
func (h *ReportHandler) GetAnalysis(c *gin.Context) {
	perf, err := h.reports.Analysis(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, "analysis", err)
		return
	}
	c.JSON(http.StatusOK, perf)
}

// GetInsights godoc
// @Summary      Student insights
// @Description  Overall statistics, topic insights, weak areas and study recommendations
// @Tags         reports
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200 {object} InsightReport
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /insights/{user_id} [get]
func (h *ReportHandler) GetInsights(c *gin.Context) {
	report, err := h.reports.Insights(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, "insights", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetPredictions godoc
// @Summary      Rank prediction
// @Description  Predicted NEET rank, rank range, confidence and college recommendations
// @Tags         reports
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200 {object} RankPrediction
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /predictions/{user_id} [get]
func (h *ReportHandler) GetPredictions(c *gin.Context) {
	prediction, err := h.reports.Prediction(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, "predictions", err)
		return
	}
	c.JSON(http.StatusOK, prediction)
}

// GetVisualizations godoc
// @Summary      Chart data
// @Description  Performance trend, topic performance, weak areas, improvement trends and difficulty distribution charts
// @Tags         reports
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200 {object} Visualizations
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /visualizations/{user_id} [get]
func (h *ReportHandler) GetVisualizations(c *gin.Context) {
	charts, err := h.reports.Visualizations(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, "visualizations", err)
		return
	}
	c.JSON(http.StatusOK, charts)
}

// GetSummary godoc
// @Summary      Full report
// @Description  Analysis, insights, predictions and visualizations in one response
// @Tags         reports
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200 {object} Summary
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /summary/{user_id} [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	summary, err := h.reports.Summary(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, "summary", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetCurrentResponses godoc
// @Summary      Score current submission
// @Description  Parses the current submission's responses in order and scores them against the quiz
// @Tags         submissions
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200 {object} ScoredSubmission
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /submissions/{user_id}/responses [get]
func (h *ReportHandler) GetCurrentResponses(c *gin.Context) {
	scored, err := h.reports.CurrentResponses(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, "responses", err)
		return
	}
	c.JSON(http.StatusOK, scored)
}
