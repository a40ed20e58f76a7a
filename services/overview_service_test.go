package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DreKwasi/brazilian-ecom-analysis/services"
)

func TestOverviewMetrics(t *testing.T) {
	frame := fourRowFrame()
	// a repeated line item must not inflate the distinct counts
	extra := frame[0]
	extra.Price = 900
	frame = append(frame, extra)

	m := services.OverviewMetrics(frame)
	assert.Equal(t, 1000.0, m.TotalRequestedValue)
	assert.Equal(t, "1K", m.TotalRequestedValueFormatted)
	assert.Equal(t, 4, m.TotalOrders)
	assert.Equal(t, 4, m.TotalCustomers)
	assert.Equal(t, 4, m.TotalProducts)
}

func TestOverviewMetricsEmpty(t *testing.T) {
	m := services.OverviewMetrics(nil)
	assert.Zero(t, m.TotalRequestedValue)
	assert.Equal(t, "0", m.TotalRequestedValueFormatted)
	assert.Zero(t, m.TotalOrders)
}

func TestFoldFreightIntoPrice(t *testing.T) {
	frame := fourRowFrame()
	folded := services.FoldFreightIntoPrice(frame)

	assert.Equal(t, 11.0, folded[0].Price)
	assert.Equal(t, 44.0, folded[3].Price)
	// input frame untouched
	assert.Equal(t, 10.0, frame[0].Price)
}
