package models

// OverviewMetrics backs the home page header cards.
type OverviewMetrics struct {
	TotalRequestedValue          float64 `json:"total_requested_value"`
	TotalRequestedValueFormatted string  `json:"total_requested_value_formatted"`
	TotalOrders                  int     `json:"total_orders"`
	TotalCustomers               int     `json:"total_customers"`
	TotalProducts                int     `json:"total_products"`
}

// CustomerInsights is the customer analytics page payload. Rates are
// percentages of the distinct customer base under the current filters.
type CustomerInsights struct {
	TotalCustomers        int     `json:"total_customers"`
	ActiveCustomers       int     `json:"active_customers"`
	RetentionRatePercent  float64 `json:"retention_rate_percent"`
	ChurnRatePercent      float64 `json:"churn_rate_percent"`
	RenewalRatePercent    float64 `json:"renewal_rate_percent"`
	RevenueRenewalPercent float64 `json:"revenue_renewal_rate_percent"`

	OnboardingTrend []GroupedRow `json:"onboarding_trend"`
}

// DistributionInsights is the delivery distribution page payload.
type DistributionInsights struct {
	AvgDeliveryDays      float64      `json:"avg_delivery_days"`
	AvgDistanceMiles     float64      `json:"avg_distance_miles"`
	DeliveryTimeTrend    []GroupedRow `json:"delivery_time_trend"`
	DistanceTrend        []GroupedRow `json:"distance_trend"`
	RowsAfterOutlierDrop int          `json:"rows_after_outlier_drop"`
}

// RankedContribution is the "Top/Bottom N contributed X% of total" block.
type RankedContribution struct {
	Rows           []GroupedRow `json:"rows"`
	Metrics        KeyMetrics   `json:"metrics"`
	Overall        float64      `json:"overall"`
	PercentOfTotal float64      `json:"percent_of_total"`
	TotalFormatted string       `json:"total_formatted"`
}
