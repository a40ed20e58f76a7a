package analytics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/DreKwasi/brazilian-ecom-analysis/models"
	"github.com/DreKwasi/brazilian-ecom-analysis/services"
)

type TrendRequest struct {
	FilterRequest
	Spec models.AggregationSpec `json:"spec" binding:"required"`
}

// PostTrend godoc
// @Summary Time-bucketed trend
// @Description Buckets the filtered frame at the requested frequency and returns chronologically ordered rows for line/bar charts
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body TrendRequest true "Filter selection and time-bucketed aggregation spec"
// @Success 200 {object} models.ApiResponse{data=[]models.GroupedRow}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/trend [post]
func PostTrend(c *gin.Context) {
	logrus.Infof("[analytics.trend] start")

	var req TrendRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Selection.Validate(); err != nil {
		respondError(c, "analytics.trend", err)
		return
	}
	if req.Spec.TimeColumn == "" {
		respondError(c, "analytics.trend", models.NewInputError("trend requires a time column"))
		return
	}

	orders, err := filteredFrame(req.FilterRequest)
	if err != nil {
		respondError(c, "analytics.trend", err)
		return
	}

	trend, err := services.Aggregate(orders, req.Spec)
	if err != nil {
		respondError(c, "analytics.trend", err)
		return
	}
	services.SortByBucket(trend)

	logrus.Infof("[analytics.trend] respond 200 buckets=%d", len(trend))

	message := "Trend computed successfully"
	if len(trend) == 0 {
		message = noDataMessage
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, trend))
}
