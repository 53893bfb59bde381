package handlers

import (
	"net/http"
	"time"

	"neet-rank-predictor/internal/quizdata"

	"github.com/gin-gonic/gin"
)

const (
	ServiceName    = "NEET Rank Predictor API"
	ServiceVersion = "1.0.0"
)

type SystemHandler struct {
	client *quizdata.Client
}

func NewSystemHandler(client *quizdata.Client) *SystemHandler {
	return &SystemHandler{client: client}
}

type RootResponse struct {
	Name      string            `json:"name" example:"NEET Rank Predictor API"`
	Version   string            `json:"version" example:"1.0.0"`
	Timestamp time.Time         `json:"timestamp"`
	Endpoints map[string]string `json:"endpoints"`
}

type HealthResponse struct {
	Status     string            `json:"status" example:"healthy"`
	Timestamp  time.Time         `json:"timestamp"`
	Components map[string]string `json:"components"`
	Missing    []string          `json:"missing_fixtures,omitempty"`
}

// Root godoc
// @Summary      API information
// @Description  Service name, version and the available endpoints
// @Tags         system
// @Produce      json
// @Success      200 {object} RootResponse
// @Router       / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Name:      ServiceName,
		Version:   ServiceVersion,
		Timestamp: time.Now().UTC(),
		Endpoints: map[string]string{
			"analysis":       "/analysis/{user_id}",
			"insights":       "/insights/{user_id}",
			"predictions":    "/predictions/{user_id}",
			"visualizations": "/visualizations/{user_id}",
			"summary":        "/summary/{user_id}",
			"responses":      "/submissions/{user_id}/responses",
			"health":         "/health",
			"docs":           "/swagger/index.html",
		},
	})
}

// Health godoc
// @Summary      Health check
// @Description  Reports whether the quiz data directory is available
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} HealthResponse
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Components: map[string]string{
			"api":         "up",
			"data_source": "up",
		},
	}

	missing, err := h.client.CheckDataDir()
	if err != nil {
		resp.Status = "unhealthy"
		resp.Components["data_source"] = "down"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	if len(missing) > 0 {
		resp.Status = "degraded"
		resp.Components["data_source"] = "partial"
		resp.Missing = missing
	}
	c.JSON(http.StatusOK, resp)
}
