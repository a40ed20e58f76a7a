package analytics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/DreKwasi/brazilian-ecom-analysis/models"
	"github.com/DreKwasi/brazilian-ecom-analysis/services"
)

type DistributionRequest struct {
	FilterRequest
	Frequency models.Frequency `json:"frequency" binding:"required"`
}

// PostDistribution godoc
// @Summary Delivery distribution insights
// @Description Returns average delivery time and distance plus per-bucket mean trends over delivered orders (geo-enriched frame, IQR outliers removed)
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body DistributionRequest true "Filter selection and trend frequency"
// @Success 200 {object} models.ApiResponse{data=models.DistributionInsights}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/distribution [post]
func PostDistribution(c *gin.Context) {
	logrus.Infof("[analytics.distribution] start")

	var req DistributionRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Selection.Validate(); err != nil {
		respondError(c, "analytics.distribution", err)
		return
	}
	if !req.Frequency.Valid() {
		respondError(c, "analytics.distribution", models.NewInputError("unknown frequency %q", req.Frequency))
		return
	}

	// distance metrics need the geo-enriched frame regardless of the toggle
	req.AddGeo = true
	orders, err := filteredFrame(req.FilterRequest)
	if err != nil {
		respondError(c, "analytics.distribution", err)
		return
	}

	insights, err := services.DistributionMetrics(orders, req.Frequency)
	if err != nil {
		respondError(c, "analytics.distribution", err)
		return
	}

	logrus.Infof("[analytics.distribution] respond 200 avg_days=%.1f rows=%d",
		insights.AvgDeliveryDays, insights.RowsAfterOutlierDrop)

	message := "Distribution insights computed successfully"
	if insights.RowsAfterOutlierDrop == 0 {
		message = noDataMessage
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, insights))
}
