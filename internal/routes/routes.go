package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/moonkaicuzui/hwk-loadplan/internal/middlewares"
	pipelineService "github.com/moonkaicuzui/hwk-loadplan/internal/services/pipeline-service"
	reportService "github.com/moonkaicuzui/hwk-loadplan/internal/services/report-service"
	"github.com/moonkaicuzui/hwk-loadplan/internal/utils"
)

func RegisterRoutes(router *gin.Engine) {
	router.Use(middlewares.CorsMiddleware())

	router.POST("/Loadplan/RunPipeline", func(c *gin.Context) {
		utils.ProcessRequestPayload(c, pipelineService.RunPipeline)
	})

	router.POST("/Loadplan/ParseLocal", func(c *gin.Context) {
		utils.ProcessRequestPayload(c, pipelineService.ParseLocal)
	})

	router.POST("/Loadplan/UploadLoadplan", func(c *gin.Context) {
		utils.ProcessRequestMultiPart(c, pipelineService.UploadLoadplan)
	})

	router.POST("/Loadplan/GetDashboardSummary", func(c *gin.Context) {
		utils.ProcessRequestPayload(c, reportService.GetDashboardSummary)
	})

	router.POST("/Loadplan/GetDashboardOverall", func(c *gin.Context) {
		utils.ProcessRequestPayload(c, reportService.GetDashboardOverall)
	})

	router.POST("/Loadplan/GenerateReport", func(c *gin.Context) {
		utils.ProcessRequestPayload(c, reportService.GenerateReport)
	})
}
