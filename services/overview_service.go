package services

import (
	"github.com/DreKwasi/brazilian-ecom-analysis/models"
	"github.com/DreKwasi/brazilian-ecom-analysis/utils"
)

// OverviewMetrics derives the home page header cards from a filtered frame.
func OverviewMetrics(orders []models.Order) models.OverviewMetrics {
	ordersSeen := map[string]struct{}{}
	customersSeen := map[string]struct{}{}
	productsSeen := map[string]struct{}{}
	var totalValue float64
	for i := range orders {
		totalValue += orders[i].Price
		ordersSeen[orders[i].OrderID] = struct{}{}
		customersSeen[orders[i].CustomerUniqueID] = struct{}{}
		productsSeen[orders[i].ProductID] = struct{}{}
	}
	return models.OverviewMetrics{
		TotalRequestedValue:          totalValue,
		TotalRequestedValueFormatted: utils.MustCleanFormat(totalValue),
		TotalOrders:                  len(ordersSeen),
		TotalCustomers:               len(customersSeen),
		TotalProducts:                len(productsSeen),
	}
}
