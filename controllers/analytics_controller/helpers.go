package analytics_controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/DreKwasi/brazilian-ecom-analysis/config"
	"github.com/DreKwasi/brazilian-ecom-analysis/models"
	"github.com/DreKwasi/brazilian-ecom-analysis/services"
)

const noDataMessage = "no data for the selected filters"

// FilterRequest is the common request leg: the filter selection plus the
// loader/view toggles from the sidebar.
type FilterRequest struct {
	AddGeo     bool                   `json:"add_geo"`
	AddFreight bool                   `json:"add_freight"`
	Selection  models.FilterSelection `json:"selection" binding:"required"`
}

// filteredFrame runs the memoized load → filter leg under the interaction
// time budget and applies the freight-into-price view toggle.
func filteredFrame(req FilterRequest) ([]models.Order, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders, err := services.FilteredFrame(ctx, req.AddGeo, req.Selection)
	if err != nil {
		return nil, err
	}
	if req.AddFreight {
		orders = services.FoldFreightIntoPrice(orders)
	}
	return orders, nil
}

// bindJSON decodes and validates a request body, answering 400 with a
// field-level message on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field()+" failed on "+fe.Tag())
			}
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+strings.Join(fields, "; ")))
			return false
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return false
	}
	return true
}

// respondError maps the error taxonomy onto status codes: input errors are
// the user's to fix, data integrity failures are ours.
func respondError(c *gin.Context, tag string, err error) {
	if models.IsInputError(err) {
		logrus.Warnf("[%s] rejected err=%v", tag, err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}
	logrus.Errorf("[%s] ERROR err=%v", tag, err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to compute analytics"))
}
