package services

import (
	"github.com/DreKwasi/brazilian-ecom-analysis/models"
	"github.com/DreKwasi/brazilian-ecom-analysis/utils"
)

// RemoveOutliers drops rows whose measure falls outside the IQR fence
// (Q1 − 1.5·IQR, Q3 + 1.5·IQR). Both bounds are exclusive: a value exactly
// on a fence is removed. Quartiles use linear interpolation.
func RemoveOutliers(orders []models.Order, measure models.Measure) []models.Order {
	if len(orders) == 0 {
		return orders
	}
	values := make([]float64, len(orders))
	for i := range orders {
		values[i] = orders[i].MeasureValue(measure)
	}
	q1 := utils.Quantile(values, 0.25)
	q3 := utils.Quantile(values, 0.75)
	iqr := q3 - q1
	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	kept := make([]models.Order, 0, len(orders))
	for i := range orders {
		if values[i] > lower && values[i] < upper {
			kept = append(kept, orders[i])
		}
	}
	return kept
}
