package handlers

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter, system *SystemHandler, reports *ReportHandler) {
	r.GET("/", system.Root)
	r.GET("/health", system.Health)

	r.GET("/analysis/:user_id", reports.GetAnalysis)
	r.GET("/insights/:user_id", reports.GetInsights)
	r.GET("/predictions/:user_id", reports.GetPredictions)
	r.GET("/visualizations/:user_id", reports.GetVisualizations)
	r.GET("/summary/:user_id", reports.GetSummary)
	r.GET("/submissions/:user_id/responses", reports.GetCurrentResponses)
}
