package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DreKwasi/brazilian-ecom-analysis/models"
	"github.com/DreKwasi/brazilian-ecom-analysis/services"
)

func TestAggregateSumByStatus(t *testing.T) {
	grouped, err := services.Aggregate(fourRowFrame(), models.AggregationSpec{
		GroupBy: []models.Dimension{models.DimOrderStatus},
		Measure: models.MeasurePrice,
		Agg:     models.AggSum,
	})
	require.NoError(t, err)

	got := map[string]float64{}
	for _, r := range grouped {
		got[r.Keys[0]] = r.Value
	}
	assert.Equal(t, map[string]float64{
		"delivered": 30,
		"shipped":   30,
		"canceled":  40,
	}, got)
}

func TestAggregateCountIdentifier(t *testing.T) {
	frame := fourRowFrame()
	frame[1].ProductID = "" // null-like id must not be counted

	grouped, err := services.Aggregate(frame, models.AggregationSpec{
		GroupBy: []models.Dimension{models.DimOrderStatus},
		Measure: models.MeasureProductID,
		Agg:     models.AggCount,
	})
	require.NoError(t, err)

	got := map[string]float64{}
	for _, r := range grouped {
		got[r.Keys[0]] = r.Value
	}
	assert.Equal(t, 1.0, got["delivered"])
	assert.Equal(t, 1.0, got["shipped"])
}

func TestAggregateMean(t *testing.T) {
	grouped, err := services.Aggregate(fourRowFrame(), models.AggregationSpec{
		GroupBy: []models.Dimension{models.DimSellerState},
		Measure: models.MeasurePrice,
		Agg:     models.AggMean,
	})
	require.NoError(t, err)

	got := map[string]float64{}
	for _, r := range grouped {
		got[r.Keys[0]] = r.Value
	}
	assert.Equal(t, 15.0, got["SP"]) // (10+20)/2
	assert.Equal(t, 35.0, got["PR"]) // (30+40)/2
}

func TestAggregateTimeBucketsSkipNullDates(t *testing.T) {
	grouped, err := services.Aggregate(fourRowFrame(), models.AggregationSpec{
		TimeColumn: models.DateDeliveredCustomer,
		Frequency:  models.FreqMonthly,
		Measure:    models.MeasurePrice,
		Agg:        models.AggSum,
	})
	require.NoError(t, err)

	// row 2 has no delivered date and is excluded from the bucketing
	require.Len(t, grouped, 1)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), *grouped[0].Bucket)
	assert.Equal(t, 80.0, grouped[0].Value)
}

func TestAggregateRejectsInvalidSpec(t *testing.T) {
	_, err := services.Aggregate(fourRowFrame(), models.AggregationSpec{
		GroupBy: []models.Dimension{"bogus"},
		Measure: models.MeasurePrice,
		Agg:     models.AggSum,
	})
	assert.True(t, models.IsInputError(err))

	_, err = services.Aggregate(fourRowFrame(), models.AggregationSpec{
		GroupBy: []models.Dimension{models.DimOrderStatus},
		Measure: models.MeasureOrderID,
		Agg:     models.AggSum, // identifiers only support count
	})
	assert.True(t, models.IsInputError(err))
}

func TestTruncateTime(t *testing.T) {
	thu := time.Date(2024, time.February, 15, 13, 45, 0, 0, time.UTC) // a Thursday

	assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		services.TruncateTime(thu, models.FreqDaily))
	assert.Equal(t, time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC), // Monday
		services.TruncateTime(thu, models.FreqWeekly))
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		services.TruncateTime(thu, models.FreqMonthly))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		services.TruncateTime(thu, models.FreqYearly))

	// a Monday is its own week start
	mon := time.Date(2024, time.February, 12, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC),
		services.TruncateTime(mon, models.FreqWeekly))
	// Sunday belongs to the week started the previous Monday
	sun := time.Date(2024, time.February, 18, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC),
		services.TruncateTime(sun, models.FreqWeekly))
}

func rankedFixture() []models.GroupedRow {
	return []models.GroupedRow{
		{Keys: []string{"SP"}, Value: 100},
		{Keys: []string{"RJ"}, Value: 50},
		{Keys: []string{"PR"}, Value: 50},
		{Keys: []string{"BA"}, Value: 75},
		{Keys: []string{"MG"}, Value: 10},
		{Keys: []string{"RS"}, Value: 5},
	}
}

func TestRankAndSliceTopBottom(t *testing.T) {
	top, err := services.RankAndSlice(rankedFixture(), false, 5)
	require.NoError(t, err)
	assert.Equal(t, "SP", top[0].Keys[0])
	assert.Equal(t, "BA", top[1].Keys[0])
	// tie between RJ and PR keeps input order
	assert.Equal(t, "RJ", top[2].Keys[0])
	assert.Equal(t, "PR", top[3].Keys[0])

	bottom, err := services.RankAndSlice(rankedFixture(), true, 5)
	require.NoError(t, err)
	assert.Equal(t, "RS", bottom[0].Keys[0])
	assert.Equal(t, "MG", bottom[1].Keys[0])
	assert.Equal(t, "RJ", bottom[2].Keys[0])
	assert.Equal(t, "PR", bottom[3].Keys[0])
}

func TestRankAndSliceFullCount(t *testing.T) {
	all, err := services.RankAndSlice(rankedFixture(), false, 6)
	require.NoError(t, err)
	assert.Len(t, all, 6)
	assert.Equal(t, "RS", all[5].Keys[0])
}

func TestRankAndSliceBounds(t *testing.T) {
	_, err := services.RankAndSlice(rankedFixture(), false, 4)
	assert.True(t, models.IsInputError(err))

	_, err = services.RankAndSlice(rankedFixture(), false, 7)
	assert.True(t, models.IsInputError(err))
}

func TestRankAndSliceDoesNotMutateInput(t *testing.T) {
	in := rankedFixture()
	_, err := services.RankAndSlice(in, false, 5)
	require.NoError(t, err)
	assert.Equal(t, rankedFixture(), in)
}

func TestKeyMetricsDistinctEntityAverage(t *testing.T) {
	// primary key repeats (two-key table regrouped); average divides by
	// distinct entity count, not row count
	rows := []models.GroupedRow{
		{Keys: []string{"SP", "RJ"}, Value: 30},
		{Keys: []string{"SP", "BA"}, Value: 30},
		{Keys: []string{"PR", "RJ"}, Value: 40},
	}
	m := services.KeyMetrics(rows)
	assert.Equal(t, 100.0, m.Total)
	assert.Equal(t, 50.0, m.Average) // 100 / 2 distinct, not / 3 rows
	assert.Equal(t, 30.0, m.Median)
	assert.Equal(t, 30.0, m.Min)
	assert.Equal(t, 40.0, m.Max)
}

func TestKeyMetricsEmpty(t *testing.T) {
	assert.Equal(t, models.KeyMetrics{}, services.KeyMetrics(nil))
}

func TestPercentOfTotalSanity(t *testing.T) {
	frame := fourRowFrame()
	overall := services.Total(frame, models.MeasurePrice, models.AggSum)
	assert.Equal(t, 100.0, overall)

	grouped, err := services.Aggregate(frame, models.AggregationSpec{
		GroupBy: []models.Dimension{models.DimCustomerCity},
		Measure: models.MeasurePrice,
		Agg:     models.AggSum,
	})
	require.NoError(t, err)
	require.Len(t, grouped, 4)

	perc := services.PercentOfTotal(services.KeyMetrics(grouped).Total, overall)
	assert.GreaterOrEqual(t, perc, 0.0)
	assert.LessOrEqual(t, perc, 100.0)
	assert.Equal(t, 100.0, perc)
}

func TestPercentOfTotalTopAtLeastBottom(t *testing.T) {
	rows := rankedFixture()
	top, err := services.RankAndSlice(rows, false, 5)
	require.NoError(t, err)
	bottom, err := services.RankAndSlice(rows, true, 5)
	require.NoError(t, err)

	overall := 0.0
	for _, r := range rows {
		overall += r.Value
	}
	topPerc := services.PercentOfTotal(services.KeyMetrics(top).Total, overall)
	bottomPerc := services.PercentOfTotal(services.KeyMetrics(bottom).Total, overall)
	assert.GreaterOrEqual(t, topPerc, bottomPerc)
}

func TestTotalCountAndMean(t *testing.T) {
	frame := fourRowFrame()
	assert.Equal(t, 4.0, services.Total(frame, models.MeasureProductID, models.AggCount))
	assert.Equal(t, 25.0, services.Total(frame, models.MeasurePrice, models.AggMean))
}

func TestAggregateEmptyFrame(t *testing.T) {
	grouped, err := services.Aggregate(nil, models.AggregationSpec{
		GroupBy: []models.Dimension{models.DimOrderStatus},
		Measure: models.MeasurePrice,
		Agg:     models.AggSum,
	})
	require.NoError(t, err)
	assert.Empty(t, grouped)
}
