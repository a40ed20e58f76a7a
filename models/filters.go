package models

import (
	"fmt"
	"strings"
	"time"
)

// Dimension is a categorical column usable as a filter or group-by key.
// Using a tagged type instead of raw column names means a bad dimension is
// rejected when a selection is validated, not deep inside aggregation.
type Dimension string

const (
	DimOrderStatus     Dimension = "order_status"
	DimPaymentType     Dimension = "payment_type"
	DimProductCategory Dimension = "product_category_name"
	DimSellerCity      Dimension = "seller_city"
	DimSellerState     Dimension = "seller_state"
	DimCustomerCity    Dimension = "customer_city"
	DimCustomerState   Dimension = "customer_state"
)

// Dimensions lists every filterable categorical column, in sidebar order.
func Dimensions() []Dimension {
	return []Dimension{
		DimOrderStatus, DimPaymentType, DimProductCategory,
		DimSellerCity, DimSellerState, DimCustomerCity, DimCustomerState,
	}
}

func (d Dimension) Valid() bool {
	switch d {
	case DimOrderStatus, DimPaymentType, DimProductCategory,
		DimSellerCity, DimSellerState, DimCustomerCity, DimCustomerState:
		return true
	}
	return false
}

// DateColumn is one of the timestamp columns a date range can run against.
type DateColumn string

const (
	DatePurchase          DateColumn = "order_purchase_timestamp"
	DateApproved          DateColumn = "order_approved_at"
	DateDeliveredCarrier  DateColumn = "order_delivered_carrier_date"
	DateDeliveredCustomer DateColumn = "order_delivered_customer_date"
	DateEstimatedDelivery DateColumn = "order_estimated_delivery_date"
)

// DateColumns is the fixed list offered by the filter sidebar. The approved
// timestamp is parsed and usable for trends but is not a sidebar option.
func DateColumns() []DateColumn {
	return []DateColumn{
		DatePurchase, DateDeliveredCarrier,
		DateDeliveredCustomer, DateEstimatedDelivery,
	}
}

func (c DateColumn) Valid() bool {
	switch c {
	case DatePurchase, DateApproved, DateDeliveredCarrier,
		DateDeliveredCustomer, DateEstimatedDelivery:
		return true
	}
	return false
}

const civilDateLayout = "2006-01-02"

// CivilDate is a calendar date without a time-of-day component. Range
// filtering compares dates only, never clock time.
type CivilDate struct {
	time.Time
}

func NewCivilDate(year int, month time.Month, day int) CivilDate {
	return CivilDate{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// CivilDateOf truncates a timestamp to its calendar date.
func CivilDateOf(t time.Time) CivilDate {
	return NewCivilDate(t.Year(), t.Month(), t.Day())
}

func (d CivilDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(civilDateLayout) + `"`), nil
}

func (d *CivilDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(civilDateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}

// FilterSelection is one user interaction's worth of filter state: a date
// column with an inclusive range, plus per-dimension value sets. An absent
// or empty set means "no restriction on that dimension".
type FilterSelection struct {
	DateColumn DateColumn             `json:"date_column" binding:"required"`
	StartDate  CivilDate              `json:"start_date" binding:"required"`
	EndDate    CivilDate              `json:"end_date" binding:"required"`
	Dimensions map[Dimension][]string `json:"dimensions"`
}

// Validate rejects a selection before it enters the pipeline: unknown
// columns and an inverted date range are user-correctable input errors.
func (s *FilterSelection) Validate() error {
	if !s.DateColumn.Valid() {
		return NewInputError("unknown date column %q", s.DateColumn)
	}
	if s.StartDate.IsZero() || s.EndDate.IsZero() {
		return NewInputError("start and end dates are required")
	}
	if s.StartDate.After(s.EndDate.Time) {
		return NewInputError("start date can not be greater than end date")
	}
	for d := range s.Dimensions {
		if !d.Valid() {
			return NewInputError("unknown filter dimension %q", d)
		}
	}
	return nil
}

// DateColumnRange is the selectable extent of one date column, computed
// over the unfiltered frame.
type DateColumnRange struct {
	Column  DateColumn `json:"column"`
	MinDate CivilDate  `json:"min_date"`
	MaxDate CivilDate  `json:"max_date"`
}

// FilterCatalog backs the sidebar: every dimension's full value universe
// plus the date columns and their ranges. Built from the frame as loaded so
// applying one filter never shrinks another filter's pick-list.
type FilterCatalog struct {
	Dimensions  map[Dimension][]string `json:"dimensions"`
	DateColumns []DateColumnRange      `json:"date_columns"`
	DayNames    []string               `json:"day_names"`
	MonthNames  []string               `json:"month_names"`
}
