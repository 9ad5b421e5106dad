package routes

import (
	"jnv-po/internal/middlewares"
	masterService "jnv-po/internal/services/master-service"
	poService "jnv-po/internal/services/po-service"
	"jnv-po/internal/services/reportService"
	stockPipelineService "jnv-po/internal/services/stock-pipeline-service"
	"jnv-po/internal/utils"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine) {
	router.Use(middlewares.CorsMiddleware())

	router.POST("/PO/GeneratePo", func(c *gin.Context) {
		utils.ProcessRequestPayload(c, poService.GeneratePo)
	})

	router.GET("/PO/DownloadPo", poService.DownloadPo)

	router.POST("/PO/UploadStandardInfo", func(c *gin.Context) {
		utils.ProcessRequestMultiPart(c, masterService.UploadStandardInfo)
	})

	router.POST("/PO/GetOpenPoReport", func(c *gin.Context) {
		utils.ProcessRequestPayload(c, reportService.GetOpenPoReport)
	})

	router.GET("/PO/ManualStockPipeline", func(c *gin.Context) {
		utils.ProcessRequestPayload(c, stockPipelineService.ManualStockPipeline)
	})
}
