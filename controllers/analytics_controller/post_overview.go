package analytics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/DreKwasi/brazilian-ecom-analysis/models"
	"github.com/DreKwasi/brazilian-ecom-analysis/services"
)

// PostOverview godoc
// @Summary Overview metrics
// @Description Returns the home page header cards (total requested value, order/customer/product counts) for the filtered frame
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body FilterRequest true "Filter selection"
// @Success 200 {object} models.ApiResponse{data=models.OverviewMetrics}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/overview [post]
func PostOverview(c *gin.Context) {
	logrus.Infof("[analytics.overview] start")

	var req FilterRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Selection.Validate(); err != nil {
		respondError(c, "analytics.overview", err)
		return
	}

	orders, err := filteredFrame(req)
	if err != nil {
		respondError(c, "analytics.overview", err)
		return
	}

	overview := services.OverviewMetrics(orders)

	logrus.Infof("[analytics.overview] respond 200 orders=%d customers=%d",
		overview.TotalOrders, overview.TotalCustomers)

	message := "Overview computed successfully"
	if len(orders) == 0 {
		message = noDataMessage
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, overview))
}
