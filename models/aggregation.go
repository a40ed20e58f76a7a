package models

import "time"

// Frequency is a time-truncation granularity applied to a timestamp key
// before grouping.
type Frequency string

const (
	FreqDaily   Frequency = "daily"
	FreqWeekly  Frequency = "weekly"
	FreqMonthly Frequency = "monthly"
	FreqYearly  Frequency = "yearly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FreqDaily, FreqWeekly, FreqMonthly, FreqYearly:
		return true
	}
	return false
}

// AggFn is the aggregation applied to the measure within each group.
type AggFn string

const (
	AggSum   AggFn = "sum"
	AggCount AggFn = "count"
	AggMean  AggFn = "mean"
)

func (a AggFn) Valid() bool {
	switch a {
	case AggSum, AggCount, AggMean:
		return true
	}
	return false
}

// Measure is a column being aggregated. Identifier measures only make sense
// under count; numeric measures under sum/mean (count also works).
type Measure string

const (
	MeasurePrice            Measure = "price"
	MeasureFreightValue     Measure = "freight_value"
	MeasureDistance         Measure = "distance_covered"
	MeasureDeliveryDays     Measure = "delivery_days"
	MeasureProductID        Measure = "product_id"
	MeasureOrderID          Measure = "order_id"
	MeasureCustomerUniqueID Measure = "customer_unique_id"
)

func (m Measure) Valid() bool {
	switch m {
	case MeasurePrice, MeasureFreightValue, MeasureDistance, MeasureDeliveryDays,
		MeasureProductID, MeasureOrderID, MeasureCustomerUniqueID:
		return true
	}
	return false
}

// Numeric reports whether the measure carries a magnitude of its own, as
// opposed to being an identifier column that is only countable.
func (m Measure) Numeric() bool {
	switch m {
	case MeasurePrice, MeasureFreightValue, MeasureDistance, MeasureDeliveryDays:
		return true
	}
	return false
}

// AggregationSpec describes one chart's worth of aggregation: ordered group
// dimensions, an optional time bucket, the measure, and the function.
type AggregationSpec struct {
	GroupBy    []Dimension `json:"group_by"`
	TimeColumn DateColumn  `json:"time_column,omitempty"`
	Frequency  Frequency   `json:"frequency,omitempty"`
	Measure    Measure     `json:"measure" binding:"required"`
	Agg        AggFn       `json:"agg" binding:"required"`
}

func (s *AggregationSpec) Validate() error {
	for _, d := range s.GroupBy {
		if !d.Valid() {
			return NewInputError("unknown group dimension %q", d)
		}
	}
	if s.TimeColumn != "" && !s.TimeColumn.Valid() {
		return NewInputError("unknown time column %q", s.TimeColumn)
	}
	if s.TimeColumn != "" && !s.Frequency.Valid() {
		return NewInputError("time bucketing requires a frequency (daily/weekly/monthly/yearly)")
	}
	if s.TimeColumn == "" && len(s.GroupBy) == 0 {
		return NewInputError("aggregation needs at least one group key")
	}
	if !s.Measure.Valid() {
		return NewInputError("unknown measure %q", s.Measure)
	}
	if !s.Agg.Valid() {
		return NewInputError("unknown aggregation %q", s.Agg)
	}
	if !s.Measure.Numeric() && s.Agg != AggCount {
		return NewInputError("measure %q is an identifier column and only supports count", s.Measure)
	}
	return nil
}

// GroupedRow is one row of an aggregated table. Keys line up with the
// spec's GroupBy order; Bucket is set when a time key was requested. Rows
// keep the first-seen order of the input frame.
type GroupedRow struct {
	Bucket *time.Time `json:"bucket,omitempty"`
	Keys   []string   `json:"keys,omitempty"`
	Value  float64    `json:"value"`
}

// KeyMetrics summarises a ranked slice the way the dashboard header does.
// Average divides by the distinct count of the primary grouping entity, not
// by row count, since grouping keys can repeat in two-key tables.
type KeyMetrics struct {
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}
