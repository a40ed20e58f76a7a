package analytics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/DreKwasi/brazilian-ecom-analysis/config"
	"github.com/DreKwasi/brazilian-ecom-analysis/models"
	"github.com/DreKwasi/brazilian-ecom-analysis/services"
)

type AggregateRequest struct {
	FilterRequest
	Spec models.AggregationSpec `json:"spec" binding:"required"`
}

// PostAggregate godoc
// @Summary Aggregate the filtered frame
// @Description Applies the filter selection and returns the grouped/aggregated table for one chart
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body AggregateRequest true "Filter selection and aggregation spec"
// @Success 200 {object} models.ApiResponse{data=[]models.GroupedRow}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/aggregate [post]
func PostAggregate(c *gin.Context) {
	logrus.Infof("[analytics.aggregate] start")

	var req AggregateRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Selection.Validate(); err != nil {
		respondError(c, "analytics.aggregate", err)
		return
	}

	var grouped []models.GroupedRow
	var err error
	if req.AddFreight {
		// the freight view changes prices, so it bypasses the shared memo
		var orders []models.Order
		orders, err = filteredFrame(req.FilterRequest)
		if err == nil {
			grouped, err = services.Aggregate(orders, req.Spec)
		}
	} else {
		ctx, cancel := config.WithTimeout()
		grouped, err = services.AggregateFiltered(ctx, req.AddGeo, req.Selection, req.Spec)
		cancel()
	}
	if err != nil {
		respondError(c, "analytics.aggregate", err)
		return
	}
	if req.Spec.TimeColumn != "" {
		services.SortByBucket(grouped)
	}

	logrus.Infof("[analytics.aggregate] respond 200 groups=%d", len(grouped))

	message := "Aggregation computed successfully"
	if len(grouped) == 0 {
		message = noDataMessage
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, grouped))
}
