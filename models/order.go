package models

import "time"

// Order is one fully parsed line item: one row per (order, product) pair.
// Pairs may repeat, so per-order questions must de-duplicate on order_id or
// on (order_id, product_id) depending on whether orders or units are counted.
// Timestamp pointers are nil when the order has not reached that stage yet.
type Order struct {
	OrderID          string `json:"order_id"`
	CustomerID       string `json:"customer_id"`
	CustomerUniqueID string `json:"customer_unique_id"`
	ProductID        string `json:"product_id"`
	SellerID         string `json:"seller_id"`

	OrderStatus         string `json:"order_status"`
	PaymentType         string `json:"payment_type"`
	ProductCategoryName string `json:"product_category_name"`
	SellerCity          string `json:"seller_city"`
	SellerState         string `json:"seller_state"`
	CustomerCity        string `json:"customer_city"`
	CustomerState       string `json:"customer_state"`

	Price        float64 `json:"price"`
	FreightValue float64 `json:"freight_value"`

	PurchaseTimestamp     *time.Time `json:"order_purchase_timestamp"`
	ApprovedAt            *time.Time `json:"order_approved_at"`
	DeliveredCarrierDate  *time.Time `json:"order_delivered_carrier_date"`
	DeliveredCustomerDate *time.Time `json:"order_delivered_customer_date"`
	EstimatedDeliveryDate *time.Time `json:"order_estimated_delivery_date"`
	ShippingLimitDate     *time.Time `json:"shipping_limit_date"`

	// Populated only when the loader runs with geo enrichment.
	CustomerLat     float64 `json:"customer_lat,omitempty"`
	CustomerLng     float64 `json:"customer_lng,omitempty"`
	SellerLat       float64 `json:"seller_lat,omitempty"`
	SellerLng       float64 `json:"seller_lng,omitempty"`
	DistanceCovered float64 `json:"distance_covered,omitempty"` // miles

	// Derived by the distribution preparation step (delivered orders only).
	DeliveryDays float64 `json:"delivery_days,omitempty"`
}

// OrderRow is the on-disk parquet shape of the order table. Timestamps are
// stored as strings and parsed by the loader; unparseable cells become nil.
type OrderRow struct {
	OrderID          string `parquet:"order_id"`
	CustomerID       string `parquet:"customer_id"`
	CustomerUniqueID string `parquet:"customer_unique_id"`
	ProductID        string `parquet:"product_id"`
	SellerID         string `parquet:"seller_id"`

	OrderStatus         string `parquet:"order_status"`
	PaymentType         string `parquet:"payment_type"`
	ProductCategoryName string `parquet:"product_category_name"`
	SellerCity          string `parquet:"seller_city"`
	SellerState         string `parquet:"seller_state"`
	CustomerCity        string `parquet:"customer_city"`
	CustomerState       string `parquet:"customer_state"`

	Price        float64 `parquet:"price"`
	FreightValue float64 `parquet:"freight_value"`

	OrderPurchaseTimestamp     string `parquet:"order_purchase_timestamp,optional"`
	OrderApprovedAt            string `parquet:"order_approved_at,optional"`
	OrderDeliveredCarrierDate  string `parquet:"order_delivered_carrier_date,optional"`
	OrderDeliveredCustomerDate string `parquet:"order_delivered_customer_date,optional"`
	OrderEstimatedDeliveryDate string `parquet:"order_estimated_delivery_date,optional"`
	ShippingLimitDate          string `parquet:"shipping_limit_date,optional"`
}

// CategoryTranslation maps a raw category code to its English name.
type CategoryTranslation struct {
	CategoryName        string `csv:"product_category_name"`
	CategoryNameEnglish string `csv:"product_category_name_english"`
}

// GeoLocation is one row of the zip→city→coordinates table.
type GeoLocation struct {
	ZipCodePrefix string  `csv:"geolocation_zip_code_prefix"`
	Lat           float64 `csv:"geolocation_lat"`
	Lng           float64 `csv:"geolocation_lng"`
	City          string  `csv:"geolocation_city"`
	State         string  `csv:"geolocation_state"`
}

// DimensionValue returns the categorical value of dimension d for this row.
func (o *Order) DimensionValue(d Dimension) string {
	switch d {
	case DimOrderStatus:
		return o.OrderStatus
	case DimPaymentType:
		return o.PaymentType
	case DimProductCategory:
		return o.ProductCategoryName
	case DimSellerCity:
		return o.SellerCity
	case DimSellerState:
		return o.SellerState
	case DimCustomerCity:
		return o.CustomerCity
	case DimCustomerState:
		return o.CustomerState
	}
	return ""
}

// DateValue returns the timestamp behind a date column, nil when the order
// has not reached that stage.
func (o *Order) DateValue(c DateColumn) *time.Time {
	switch c {
	case DatePurchase:
		return o.PurchaseTimestamp
	case DateApproved:
		return o.ApprovedAt
	case DateDeliveredCarrier:
		return o.DeliveredCarrierDate
	case DateDeliveredCustomer:
		return o.DeliveredCustomerDate
	case DateEstimatedDelivery:
		return o.EstimatedDeliveryDate
	}
	return nil
}

// MeasureValue returns the numeric value of a measure column. Identifier
// measures report 1 for a non-empty id and 0 otherwise, so count
// aggregations match non-null-count semantics.
func (o *Order) MeasureValue(m Measure) float64 {
	switch m {
	case MeasurePrice:
		return o.Price
	case MeasureFreightValue:
		return o.FreightValue
	case MeasureDistance:
		return o.DistanceCovered
	case MeasureDeliveryDays:
		return o.DeliveryDays
	case MeasureProductID:
		if o.ProductID != "" {
			return 1
		}
	case MeasureOrderID:
		if o.OrderID != "" {
			return 1
		}
	case MeasureCustomerUniqueID:
		if o.CustomerUniqueID != "" {
			return 1
		}
	}
	return 0
}
