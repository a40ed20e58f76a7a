package services

import (
	"context"

	"github.com/DreKwasi/brazilian-ecom-analysis/cache"
	"github.com/DreKwasi/brazilian-ecom-analysis/models"
)

// Memo-key argument tuples. Dates are reduced to their string form because
// the memo hash only sees exported fields.
type filterArgs struct {
	AddGeo     bool
	DateColumn string
	StartDate  string
	EndDate    string
	Dimensions map[string][]string
}

type aggregateArgs struct {
	Filter filterArgs
	Spec   models.AggregationSpec
}

func filterArgsOf(addGeo bool, sel models.FilterSelection) filterArgs {
	dims := make(map[string][]string, len(sel.Dimensions))
	for d, vs := range sel.Dimensions {
		dims[string(d)] = vs
	}
	return filterArgs{
		AddGeo:     addGeo,
		DateColumn: string(sel.DateColumn),
		StartDate:  sel.StartDate.Format("2006-01-02"),
		EndDate:    sel.EndDate.Format("2006-01-02"),
		Dimensions: dims,
	}
}

// FilteredFrame is the memoized load → filter leg of the pipeline. The
// context bounds one interaction's recomputation.
func FilteredFrame(ctx context.Context, addGeo bool, sel models.FilterSelection) ([]models.Order, error) {
	key, hashable := cache.ResultKey("filter", filterArgsOf(addGeo, sel))
	if hashable {
		if v, hit := cache.GetResult(key); hit {
			return v.([]models.Order), nil
		}
	}

	orders, err := LoadOrders(ctx, addGeo)
	if err != nil {
		return nil, err
	}
	filtered, err := ApplyFilters(orders, sel)
	if err != nil {
		return nil, err
	}
	if hashable {
		cache.SetResult(key, filtered)
	}
	return filtered, nil
}

// AggregateFiltered is the memoized full pass: load → filter → aggregate.
func AggregateFiltered(ctx context.Context, addGeo bool, sel models.FilterSelection, spec models.AggregationSpec) ([]models.GroupedRow, error) {
	key, hashable := cache.ResultKey("aggregate", aggregateArgs{Filter: filterArgsOf(addGeo, sel), Spec: spec})
	if hashable {
		if v, hit := cache.GetResult(key); hit {
			return v.([]models.GroupedRow), nil
		}
	}

	filtered, err := FilteredFrame(ctx, addGeo, sel)
	if err != nil {
		return nil, err
	}
	grouped, err := Aggregate(filtered, spec)
	if err != nil {
		return nil, err
	}
	if hashable {
		cache.SetResult(key, grouped)
	}
	return grouped, nil
}

// FoldFreightIntoPrice returns a copy of the frame with freight value added
// onto each line's price, for the "add freight to order" revenue view.
func FoldFreightIntoPrice(orders []models.Order) []models.Order {
	out := make([]models.Order, len(orders))
	copy(out, orders)
	for i := range out {
		out[i].Price += out[i].FreightValue
	}
	return out
}
