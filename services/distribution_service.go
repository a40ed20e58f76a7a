package services

import (
	"github.com/DreKwasi/brazilian-ecom-analysis/models"
	"github.com/DreKwasi/brazilian-ecom-analysis/utils"
)

// PrepareDeliveredFrame narrows a frame to delivered orders and derives the
// delivery time in days. Missing delivered-to-customer dates fall back to
// the carrier date, then the approval date. Rows delivered before approval
// are dropped as inconsistent.
func PrepareDeliveredFrame(orders []models.Order) []models.Order {
	out := make([]models.Order, 0, len(orders))
	for i := range orders {
		o := orders[i]
		if o.OrderStatus != "delivered" || o.ApprovedAt == nil {
			continue
		}
		delivered := o.DeliveredCustomerDate
		if delivered == nil {
			delivered = o.DeliveredCarrierDate
		}
		if delivered == nil {
			delivered = o.ApprovedAt
		}
		if delivered.Before(*o.ApprovedAt) {
			continue
		}
		d := *delivered
		o.DeliveredCustomerDate = &d
		o.DeliveryDays = d.Sub(*o.ApprovedAt).Hours() / 24
		out = append(out, o)
	}
	return out
}

// DedupLineItems keeps the first row per (order, product) pair so per-order
// statistics are not inflated by repeated line items.
func DedupLineItems(orders []models.Order) []models.Order {
	type pair struct{ order, product string }
	seen := map[pair]struct{}{}
	out := make([]models.Order, 0, len(orders))
	for i := range orders {
		k := pair{orders[i].OrderID, orders[i].ProductID}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, orders[i])
	}
	return out
}

// DistributionMetrics builds the delivery distribution payload: average
// delivery time and distance over the prepared frame, plus per-bucket mean
// trends over the (order, product)-deduplicated rows with delivery-time
// outliers removed by the IQR fence.
func DistributionMetrics(orders []models.Order, freq models.Frequency) (models.DistributionInsights, error) {
	prepared := PrepareDeliveredFrame(orders)
	if len(prepared) == 0 {
		return models.DistributionInsights{}, nil
	}

	days := make([]float64, len(prepared))
	miles := make([]float64, len(prepared))
	for i := range prepared {
		days[i] = prepared[i].DeliveryDays
		miles[i] = prepared[i].DistanceCovered
	}

	clean := RemoveOutliers(DedupLineItems(prepared), models.MeasureDeliveryDays)

	timeTrend, err := Aggregate(clean, models.AggregationSpec{
		TimeColumn: models.DateApproved,
		Frequency:  freq,
		Measure:    models.MeasureDeliveryDays,
		Agg:        models.AggMean,
	})
	if err != nil {
		return models.DistributionInsights{}, err
	}
	SortByBucket(timeTrend)

	distanceTrend, err := Aggregate(clean, models.AggregationSpec{
		TimeColumn: models.DateApproved,
		Frequency:  freq,
		Measure:    models.MeasureDistance,
		Agg:        models.AggMean,
	})
	if err != nil {
		return models.DistributionInsights{}, err
	}
	SortByBucket(distanceTrend)

	return models.DistributionInsights{
		AvgDeliveryDays:      utils.Mean(days),
		AvgDistanceMiles:     utils.Mean(miles),
		DeliveryTimeTrend:    timeTrend,
		DistanceTrend:        distanceTrend,
		RowsAfterOutlierDrop: len(clean),
	}, nil
}
