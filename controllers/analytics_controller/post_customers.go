package analytics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/DreKwasi/brazilian-ecom-analysis/models"
	"github.com/DreKwasi/brazilian-ecom-analysis/services"
	"github.com/DreKwasi/brazilian-ecom-analysis/utils"
)

type CustomersRequest struct {
	FilterRequest
	Frequency models.Frequency `json:"frequency" binding:"required"`
	// Optional category-preference ranking; omit N to skip the block.
	Order string `json:"order" binding:"omitempty,oneof=top bottom"`
	N     int    `json:"n"`
}

type CustomersResponse struct {
	models.CustomerInsights
	CategoryPreference *models.RankedContribution `json:"category_preference,omitempty"`
}

// PostCustomers godoc
// @Summary Customer insights
// @Description Returns retention/churn/renewal rates, the onboarding trend, and optionally the top/bottom-N product categories by distinct customers
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body CustomersRequest true "Filter selection, trend frequency, optional ranking"
// @Success 200 {object} models.ApiResponse{data=CustomersResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/customers [post]
func PostCustomers(c *gin.Context) {
	logrus.Infof("[analytics.customers] start")

	var req CustomersRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Selection.Validate(); err != nil {
		respondError(c, "analytics.customers", err)
		return
	}
	if !req.Frequency.Valid() {
		respondError(c, "analytics.customers", models.NewInputError("unknown frequency %q", req.Frequency))
		return
	}

	orders, err := filteredFrame(req.FilterRequest)
	if err != nil {
		respondError(c, "analytics.customers", err)
		return
	}

	resp := CustomersResponse{CustomerInsights: services.CustomerMetrics(orders)}
	resp.OnboardingTrend, err = services.OnboardingTrend(orders, req.Frequency)
	if err != nil {
		respondError(c, "analytics.customers", err)
		return
	}

	if req.N > 0 {
		pref, err := categoryPreferenceBlock(orders, req.Order == "bottom", req.N, resp.TotalCustomers)
		if err != nil {
			respondError(c, "analytics.customers", err)
			return
		}
		resp.CategoryPreference = pref
	}

	logrus.Infof("[analytics.customers] respond 200 customers=%d active=%d",
		resp.TotalCustomers, resp.ActiveCustomers)

	message := "Customer insights computed successfully"
	if resp.TotalCustomers == 0 {
		message = noDataMessage
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, resp))
}

// categoryPreferenceBlock ranks categories by distinct interested customers.
// The percent denominator is the full customer base, not category sums,
// since one customer prefers exactly one category after dedup.
func categoryPreferenceBlock(orders []models.Order, ascending bool, n, totalCustomers int) (*models.RankedContribution, error) {
	grouped, err := services.CategoryPreference(orders)
	if err != nil {
		return nil, err
	}
	ranked, err := services.RankAndSlice(grouped, ascending, n)
	if err != nil {
		return nil, err
	}
	metrics := services.KeyMetrics(ranked)
	overall := float64(totalCustomers)
	return &models.RankedContribution{
		Rows:           ranked,
		Metrics:        metrics,
		Overall:        overall,
		PercentOfTotal: services.PercentOfTotal(metrics.Total, overall),
		TotalFormatted: utils.MustCleanFormat(metrics.Total),
	}, nil
}
