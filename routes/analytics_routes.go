package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/DreKwasi/brazilian-ecom-analysis/controllers/analytics_controller"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")

	analytics.GET("/catalog", analytics_controller.GetFilterCatalog)
	analytics.POST("/aggregate", analytics_controller.PostAggregate)
	analytics.POST("/contributors", analytics_controller.PostContributors)
	analytics.POST("/trend", analytics_controller.PostTrend)
	analytics.POST("/overview", analytics_controller.PostOverview)
	analytics.POST("/customers", analytics_controller.PostCustomers)
	analytics.POST("/distribution", analytics_controller.PostDistribution)
	analytics.POST("/segmentation", analytics_controller.PostSegmentation)
}
