package analytics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/DreKwasi/brazilian-ecom-analysis/models"
	"github.com/DreKwasi/brazilian-ecom-analysis/services"
	"github.com/DreKwasi/brazilian-ecom-analysis/utils"
)

type ContributorsRequest struct {
	FilterRequest
	Spec  models.AggregationSpec `json:"spec" binding:"required"`
	Order string                 `json:"order" binding:"required,oneof=top bottom"`
	N     int                    `json:"n" binding:"required"`
}

type ContributorsResponse struct {
	models.RankedContribution
	// DetailRows is the full multi-key table narrowed to the ranked primary
	// values, for stacked charts. Present only for two-key specs.
	DetailRows []models.GroupedRow `json:"detail_rows,omitempty"`
}

// PostContributors godoc
// @Summary Rank top/bottom-N contributors
// @Description Groups the filtered frame by the primary dimension, ranks the requested slice, and reports key metrics and the slice's share of the unsliced total
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body ContributorsRequest true "Filter selection, aggregation spec, sort order and N"
// @Success 200 {object} models.ApiResponse{data=ContributorsResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/contributors [post]
func PostContributors(c *gin.Context) {
	logrus.Infof("[analytics.contributors] start")

	var req ContributorsRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Selection.Validate(); err != nil {
		respondError(c, "analytics.contributors", err)
		return
	}
	if len(req.Spec.GroupBy) == 0 {
		respondError(c, "analytics.contributors", models.NewInputError("ranking needs at least one group dimension"))
		return
	}

	orders, err := filteredFrame(req.FilterRequest)
	if err != nil {
		respondError(c, "analytics.contributors", err)
		return
	}

	// rank on the table regrouped by the primary dimension only
	primarySpec := req.Spec
	primarySpec.GroupBy = req.Spec.GroupBy[:1]
	primarySpec.TimeColumn = ""
	primarySpec.Frequency = ""
	grouped, err := services.Aggregate(orders, primarySpec)
	if err != nil {
		respondError(c, "analytics.contributors", err)
		return
	}
	if len(grouped) == 0 {
		c.JSON(http.StatusOK, models.SuccessResponse(c, noDataMessage, ContributorsResponse{}))
		return
	}

	ranked, err := services.RankAndSlice(grouped, req.Order == "bottom", req.N)
	if err != nil {
		respondError(c, "analytics.contributors", err)
		return
	}

	metrics := services.KeyMetrics(ranked)
	// denominator over the filtered but unsliced frame, recomputed fresh
	overall := services.Total(orders, req.Spec.Measure, req.Spec.Agg)

	resp := ContributorsResponse{
		RankedContribution: models.RankedContribution{
			Rows:           ranked,
			Metrics:        metrics,
			Overall:        overall,
			PercentOfTotal: services.PercentOfTotal(metrics.Total, overall),
			TotalFormatted: utils.MustCleanFormat(metrics.Total),
		},
	}

	if len(req.Spec.GroupBy) > 1 {
		resp.DetailRows, err = detailRows(orders, req.Spec, ranked)
		if err != nil {
			respondError(c, "analytics.contributors", err)
			return
		}
	}

	logrus.Infof("[analytics.contributors] respond 200 order=%s n=%d percent=%.0f",
		req.Order, req.N, resp.PercentOfTotal)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Contributors ranked successfully", resp))
}

func detailRows(orders []models.Order, spec models.AggregationSpec, ranked []models.GroupedRow) ([]models.GroupedRow, error) {
	keep := make(map[string]struct{}, len(ranked))
	for _, r := range ranked {
		keep[r.Keys[0]] = struct{}{}
	}
	full, err := services.Aggregate(orders, spec)
	if err != nil {
		return nil, err
	}
	detail := make([]models.GroupedRow, 0, len(full))
	for _, r := range full {
		if _, ok := keep[r.Keys[0]]; ok {
			detail = append(detail, r)
		}
	}
	return detail, nil
}
