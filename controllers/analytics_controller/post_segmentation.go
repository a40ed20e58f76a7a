package analytics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/DreKwasi/brazilian-ecom-analysis/models"
	"github.com/DreKwasi/brazilian-ecom-analysis/services"
)

type SegmentationRequest struct {
	FilterRequest
	// geo: one row per customer coordinate pair; revenue: adds summed price;
	// delivery_time / distance: mean columns over the cleaned delivered
	// frame, for the distribution page's map charts.
	Variant   string `json:"variant" binding:"required,oneof=geo revenue delivery_time distance"`
	NClusters int    `json:"n_clusters" binding:"required"`
}

// PostSegmentation godoc
// @Summary Customer segmentation feature table
// @Description Builds the numeric feature table for the ML collaborator and attaches its cluster labels when one is wired
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body SegmentationRequest true "Filter selection, table variant, cluster count"
// @Success 200 {object} models.ApiResponse{data=models.FeatureTable}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/segmentation [post]
func PostSegmentation(c *gin.Context) {
	logrus.Infof("[analytics.segmentation] start")

	var req SegmentationRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Selection.Validate(); err != nil {
		respondError(c, "analytics.segmentation", err)
		return
	}

	// coordinates only exist on the geo-enriched frame
	req.AddGeo = true
	orders, err := filteredFrame(req.FilterRequest)
	if err != nil {
		respondError(c, "analytics.segmentation", err)
		return
	}

	var table models.FeatureTable
	switch req.Variant {
	case "revenue":
		table = services.GeoFeatureTable(orders, true)
	case "delivery_time":
		table = services.DeliveryFeatureTable(services.CleanDeliveredFrame(orders))
	case "distance":
		table = services.DistanceFeatureTable(services.CleanDeliveredFrame(orders))
	default:
		table = services.GeoFeatureTable(orders, false)
	}
	table, err = services.ClusterFeatures(table, req.NClusters)
	if err != nil {
		respondError(c, "analytics.segmentation", err)
		return
	}

	logrus.Infof("[analytics.segmentation] respond 200 variant=%s rows=%d labeled=%t",
		req.Variant, len(table.Rows), table.Labels != nil)

	message := "Segmentation features computed successfully"
	if len(table.Rows) == 0 {
		message = noDataMessage
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, table))
}
