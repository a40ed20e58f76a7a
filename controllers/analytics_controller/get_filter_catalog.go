package analytics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/DreKwasi/brazilian-ecom-analysis/config"
	"github.com/DreKwasi/brazilian-ecom-analysis/models"
	"github.com/DreKwasi/brazilian-ecom-analysis/services"
)

// GetFilterCatalog godoc
// @Summary Get the filter catalog
// @Description Returns every filterable dimension with its full value universe, the selectable date columns with their ranges, and the calendar display names
// @Tags Analytics
// @Produce json
// @Param add_geo query bool false "Load the geo-enriched frame"
// @Success 200 {object} models.ApiResponse{data=models.FilterCatalog}
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/catalog [get]
func GetFilterCatalog(c *gin.Context) {
	logrus.Infof("[analytics.catalog] start")

	addGeo := c.Query("add_geo") == "true"

	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders, err := services.LoadOrders(ctx, addGeo)
	if err != nil {
		respondError(c, "analytics.catalog", err)
		return
	}
	cal, err := services.LoadCalendarNames()
	if err != nil {
		respondError(c, "analytics.catalog", err)
		return
	}

	catalog := services.BuildCatalog(orders, cal)

	logrus.Infof("[analytics.catalog] respond 200 dimensions=%d date_columns=%d",
		len(catalog.Dimensions), len(catalog.DateColumns))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter catalog retrieved successfully", catalog))
}
