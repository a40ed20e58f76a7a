package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DreKwasi/brazilian-ecom-analysis/models"
	"github.com/DreKwasi/brazilian-ecom-analysis/services"
)

func TestPrepareDeliveredFrame(t *testing.T) {
	frame := []models.Order{
		{ // 2 full days approval to delivery
			OrderID: "d1", OrderStatus: "delivered",
			ApprovedAt:            ts("2024-01-01 10:00:00"),
			DeliveredCustomerDate: ts("2024-01-03 10:00:00"),
		},
		{ // no customer date, carrier date serves
			OrderID: "d2", OrderStatus: "delivered",
			ApprovedAt:           ts("2024-01-02 10:00:00"),
			DeliveredCarrierDate: ts("2024-01-03 10:00:00"),
		},
		{ // no delivery dates at all, approval date gives zero days
			OrderID: "d3", OrderStatus: "delivered",
			ApprovedAt: ts("2024-01-03 10:00:00"),
		},
		{ // delivered before approval, inconsistent
			OrderID: "d4", OrderStatus: "delivered",
			ApprovedAt:            ts("2024-01-05 10:00:00"),
			DeliveredCustomerDate: ts("2024-01-04 10:00:00"),
		},
		{OrderID: "d5", OrderStatus: "shipped", ApprovedAt: ts("2024-01-01 10:00:00")},
		{OrderID: "d6", OrderStatus: "delivered"}, // never approved
	}

	prepared := services.PrepareDeliveredFrame(frame)
	require.Len(t, prepared, 3)

	byID := map[string]models.Order{}
	for _, o := range prepared {
		byID[o.OrderID] = o
	}
	assert.Equal(t, 2.0, byID["d1"].DeliveryDays)
	assert.Equal(t, 1.0, byID["d2"].DeliveryDays)
	require.NotNil(t, byID["d2"].DeliveredCustomerDate)
	assert.Equal(t, 3, byID["d2"].DeliveredCustomerDate.Day())
	assert.Equal(t, 0.0, byID["d3"].DeliveryDays)
}

func TestDedupLineItems(t *testing.T) {
	frame := []models.Order{
		{OrderID: "o1", ProductID: "p1", Price: 10},
		{OrderID: "o1", ProductID: "p1", Price: 10}, // repeated line item
		{OrderID: "o1", ProductID: "p2", Price: 20},
		{OrderID: "o2", ProductID: "p1", Price: 30},
	}
	deduped := services.DedupLineItems(frame)
	require.Len(t, deduped, 3)
	assert.Equal(t, "p1", deduped[0].ProductID)
	assert.Equal(t, "p2", deduped[1].ProductID)
	assert.Equal(t, "o2", deduped[2].OrderID)
}

func deliveredOrder(id string, approved string, days int, miles float64) models.Order {
	a := *ts(approved)
	d := a.Add(time.Duration(days) * 24 * time.Hour)
	return models.Order{
		OrderID: id, ProductID: "p-" + id, OrderStatus: "delivered",
		ApprovedAt: &a, DeliveredCustomerDate: &d,
		DistanceCovered: miles,
	}
}

func TestDistributionMetrics(t *testing.T) {
	frame := []models.Order{
		deliveredOrder("d1", "2024-01-02 10:00:00", 2, 100),
		deliveredOrder("d2", "2024-01-10 10:00:00", 4, 200),
		deliveredOrder("d3", "2024-02-05 10:00:00", 3, 150),
		deliveredOrder("d4", "2024-02-20 10:00:00", 5, 250),
	}

	insights, err := services.DistributionMetrics(frame, models.FreqMonthly)
	require.NoError(t, err)

	assert.Equal(t, 3.5, insights.AvgDeliveryDays)
	assert.Equal(t, 175.0, insights.AvgDistanceMiles)
	assert.Equal(t, 4, insights.RowsAfterOutlierDrop)

	require.Len(t, insights.DeliveryTimeTrend, 2)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *insights.DeliveryTimeTrend[0].Bucket)
	assert.Equal(t, 3.0, insights.DeliveryTimeTrend[0].Value)
	assert.Equal(t, 4.0, insights.DeliveryTimeTrend[1].Value)

	require.Len(t, insights.DistanceTrend, 2)
	assert.Equal(t, 150.0, insights.DistanceTrend[0].Value)
	assert.Equal(t, 200.0, insights.DistanceTrend[1].Value)
}

func TestDistributionMetricsDropsOutliers(t *testing.T) {
	frame := []models.Order{
		deliveredOrder("d1", "2024-01-02 10:00:00", 1, 10),
		deliveredOrder("d2", "2024-01-03 10:00:00", 2, 10),
		deliveredOrder("d3", "2024-01-04 10:00:00", 3, 10),
		deliveredOrder("d4", "2024-01-05 10:00:00", 4, 10),
		deliveredOrder("d5", "2024-01-06 10:00:00", 5, 10),
		deliveredOrder("d6", "2024-01-07 10:00:00", 100, 10),
	}

	insights, err := services.DistributionMetrics(frame, models.FreqMonthly)
	require.NoError(t, err)

	// averages keep every prepared row; the trends drop the 100-day order
	assert.InDelta(t, 19.17, insights.AvgDeliveryDays, 0.01)
	assert.Equal(t, 5, insights.RowsAfterOutlierDrop)
	require.Len(t, insights.DeliveryTimeTrend, 1)
	assert.Equal(t, 3.0, insights.DeliveryTimeTrend[0].Value)
}

func TestDistributionMetricsEmpty(t *testing.T) {
	insights, err := services.DistributionMetrics(nil, models.FreqMonthly)
	require.NoError(t, err)
	assert.Equal(t, models.DistributionInsights{}, insights)
}
