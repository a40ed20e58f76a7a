package services

import (
	"time"

	"github.com/DreKwasi/brazilian-ecom-analysis/models"
)

const (
	churnWindow     = 365 * 24 * time.Hour
	retentionWindow = 30 * 24 * time.Hour
	renewalWindow   = 365 * 24 * time.Hour
)

// CustomerMetrics derives the customer insight rates from a filtered frame.
// "Active"/retained means a purchase within 30 days of the frame's latest
// purchase; churned means no activity newer than 365 days before it. A
// renewal is a later delivered order within 365 days of the customer's
// first delivered order. An empty frame yields zero metrics, not a panic.
func CustomerMetrics(orders []models.Order) models.CustomerInsights {
	customers := map[string]struct{}{}
	var maxPurchase time.Time
	for i := range orders {
		if orders[i].CustomerUniqueID != "" {
			customers[orders[i].CustomerUniqueID] = struct{}{}
		}
		if t := orders[i].PurchaseTimestamp; t != nil && t.After(maxPurchase) {
			maxPurchase = *t
		}
	}
	total := len(customers)
	if total == 0 || maxPurchase.IsZero() {
		return models.CustomerInsights{}
	}

	churnCutoff := maxPurchase.Add(-churnWindow)
	retainCutoff := maxPurchase.Add(-retentionWindow)
	churned := map[string]struct{}{}
	retained := map[string]struct{}{}
	for i := range orders {
		t := orders[i].PurchaseTimestamp
		if t == nil {
			continue
		}
		if t.Before(churnCutoff) {
			churned[orders[i].CustomerUniqueID] = struct{}{}
		}
		if !t.Before(retainCutoff) {
			retained[orders[i].CustomerUniqueID] = struct{}{}
		}
	}

	renewalRate, revenueRenewalRate := renewalRates(orders, total)

	return models.CustomerInsights{
		TotalCustomers:        total,
		ActiveCustomers:       len(retained),
		RetentionRatePercent:  float64(len(retained)) / float64(total) * 100,
		ChurnRatePercent:      float64(len(churned)) / float64(total) * 100,
		RenewalRatePercent:    renewalRate,
		RevenueRenewalPercent: revenueRenewalRate,
	}
}

func renewalRates(orders []models.Order, totalCustomers int) (renewal, revenueRenewal float64) {
	// first delivered purchase per customer
	first := map[string]time.Time{}
	var totalRevenue float64
	for i := range orders {
		o := &orders[i]
		totalRevenue += o.Price
		if o.DeliveredCustomerDate == nil || o.PurchaseTimestamp == nil {
			continue
		}
		if f, ok := first[o.CustomerUniqueID]; !ok || o.PurchaseTimestamp.Before(f) {
			first[o.CustomerUniqueID] = *o.PurchaseTimestamp
		}
	}

	renewed := map[string]struct{}{}
	var renewalRevenue float64
	for i := range orders {
		o := &orders[i]
		if o.DeliveredCustomerDate == nil || o.PurchaseTimestamp == nil {
			continue
		}
		f, ok := first[o.CustomerUniqueID]
		if !ok {
			continue
		}
		t := *o.PurchaseTimestamp
		if t.After(f) && t.Before(f.Add(renewalWindow)) {
			renewed[o.CustomerUniqueID] = struct{}{}
			renewalRevenue += o.Price
		}
	}

	if totalCustomers > 0 {
		renewal = float64(len(renewed)) / float64(totalCustomers) * 100
	}
	if totalRevenue > 0 {
		revenueRenewal = renewalRevenue / totalRevenue * 100
	}
	return renewal, revenueRenewal
}

// OnboardingTrend counts customer activity per approved-at bucket.
func OnboardingTrend(orders []models.Order, freq models.Frequency) ([]models.GroupedRow, error) {
	trend, err := Aggregate(orders, models.AggregationSpec{
		TimeColumn: models.DateApproved,
		Frequency:  freq,
		Measure:    models.MeasureCustomerUniqueID,
		Agg:        models.AggCount,
	})
	if err != nil {
		return nil, err
	}
	SortByBucket(trend)
	return trend, nil
}

// CategoryPreference deduplicates the frame to one row per customer (first
// occurrence wins) and counts customers per product category.
func CategoryPreference(orders []models.Order) ([]models.GroupedRow, error) {
	seen := map[string]struct{}{}
	deduped := make([]models.Order, 0, len(orders))
	for i := range orders {
		id := orders[i].CustomerUniqueID
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		deduped = append(deduped, orders[i])
	}
	return Aggregate(deduped, models.AggregationSpec{
		GroupBy: []models.Dimension{models.DimProductCategory},
		Measure: models.MeasureCustomerUniqueID,
		Agg:     models.AggCount,
	})
}
