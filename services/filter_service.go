package services

import (
	"sort"
	"time"

	"github.com/DreKwasi/brazilian-ecom-analysis/models"
)

// BuildCatalog computes each dimension's value universe and every date
// column's selectable range from the frame as loaded. The catalog never
// reflects an applied filter, so one filter can't shrink another's options.
func BuildCatalog(orders []models.Order, cal CalendarNames) models.FilterCatalog {
	catalog := models.FilterCatalog{
		Dimensions: make(map[models.Dimension][]string, len(models.Dimensions())),
		DayNames:   cal.DayNames,
		MonthNames: cal.MonthNames,
	}

	for _, dim := range models.Dimensions() {
		seen := map[string]struct{}{}
		for i := range orders {
			v := orders[i].DimensionValue(dim)
			if v == "" {
				continue
			}
			seen[v] = struct{}{}
		}
		values := make([]string, 0, len(seen))
		for v := range seen {
			values = append(values, v)
		}
		sort.Strings(values)
		catalog.Dimensions[dim] = values
	}

	for _, col := range models.DateColumns() {
		if r, ok := dateColumnRange(orders, col); ok {
			catalog.DateColumns = append(catalog.DateColumns, r)
		}
	}
	return catalog
}

func dateColumnRange(orders []models.Order, col models.DateColumn) (models.DateColumnRange, bool) {
	var minDate, maxDate time.Time
	found := false
	for i := range orders {
		t := orders[i].DateValue(col)
		if t == nil {
			continue
		}
		if !found || t.Before(minDate) {
			minDate = *t
		}
		if !found || t.After(maxDate) {
			maxDate = *t
		}
		found = true
	}
	if !found {
		return models.DateColumnRange{}, false
	}
	return models.DateColumnRange{
		Column:  col,
		MinDate: models.CivilDateOf(minDate),
		MaxDate: models.CivilDateOf(maxDate),
	}, true
}

// ApplyFilters narrows a frame to the rows matching a selection. Rows with
// a null selected date column are dropped first, then the inclusive
// date-only range, then each non-empty categorical set; all conditions
// compose with AND. The operation is idempotent and the evaluation order of
// the categorical filters does not affect the result.
func ApplyFilters(orders []models.Order, sel models.FilterSelection) ([]models.Order, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	sets := make(map[models.Dimension]map[string]struct{}, len(sel.Dimensions))
	for dim, values := range sel.Dimensions {
		if len(values) == 0 {
			continue // empty set imposes no restriction
		}
		set := make(map[string]struct{}, len(values))
		for _, v := range values {
			set[v] = struct{}{}
		}
		sets[dim] = set
	}

	filtered := make([]models.Order, 0, len(orders))
rows:
	for i := range orders {
		t := orders[i].DateValue(sel.DateColumn)
		if t == nil {
			continue
		}
		day := models.CivilDateOf(*t)
		if day.Before(sel.StartDate.Time) || day.After(sel.EndDate.Time) {
			continue
		}
		for dim, set := range sets {
			if _, ok := set[orders[i].DimensionValue(dim)]; !ok {
				continue rows
			}
		}
		filtered = append(filtered, orders[i])
	}
	return filtered, nil
}
