package services

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/DreKwasi/brazilian-ecom-analysis/models"
	"github.com/DreKwasi/brazilian-ecom-analysis/utils"
)

// Aggregate groups a frame per the spec and reduces the measure within each
// group. Output rows keep the first-seen order of the input frame, which is
// what makes downstream ranking ties deterministic. Rows whose time key is
// null are skipped when a time bucket is requested.
func Aggregate(orders []models.Order, spec models.AggregationSpec) ([]models.GroupedRow, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	type acc struct {
		sum   float64
		count int
	}
	index := map[string]int{}
	var grouped []models.GroupedRow
	var accs []acc

	var sb strings.Builder
	for i := range orders {
		o := &orders[i]

		var bucket time.Time
		if spec.TimeColumn != "" {
			t := o.DateValue(spec.TimeColumn)
			if t == nil {
				continue
			}
			bucket = TruncateTime(*t, spec.Frequency)
		}

		sb.Reset()
		if spec.TimeColumn != "" {
			sb.WriteString(bucket.Format(time.RFC3339))
		}
		keys := make([]string, len(spec.GroupBy))
		for j, dim := range spec.GroupBy {
			keys[j] = o.DimensionValue(dim)
			sb.WriteByte(0)
			sb.WriteString(keys[j])
		}
		mapKey := sb.String()

		idx, ok := index[mapKey]
		if !ok {
			idx = len(grouped)
			index[mapKey] = idx
			row := models.GroupedRow{Keys: keys}
			if spec.TimeColumn != "" {
				b := bucket
				row.Bucket = &b
			}
			grouped = append(grouped, row)
			accs = append(accs, acc{})
		}

		v := o.MeasureValue(spec.Measure)
		switch spec.Agg {
		case models.AggCount:
			if spec.Measure.Numeric() || v != 0 {
				accs[idx].count++
			}
		default:
			accs[idx].sum += v
			accs[idx].count++
		}
	}

	for i := range grouped {
		switch spec.Agg {
		case models.AggSum:
			grouped[i].Value = accs[i].sum
		case models.AggCount:
			grouped[i].Value = float64(accs[i].count)
		case models.AggMean:
			if accs[i].count > 0 {
				grouped[i].Value = accs[i].sum / float64(accs[i].count)
			}
		}
	}
	return grouped, nil
}

// TruncateTime floors a timestamp to its frequency bucket: calendar day,
// ISO week start (Monday), first of the month, or first of the year.
func TruncateTime(t time.Time, freq models.Frequency) time.Time {
	switch freq {
	case models.FreqWeekly:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
		return day.AddDate(0, 0, -offset)
	case models.FreqMonthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	case models.FreqYearly:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default: // daily
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
}

// RankAndSlice sorts a grouped table by value and keeps the first n rows:
// descending for Top-N, ascending for Bottom-N. Ties keep the input's
// first-seen order (stable sort, no secondary key). n must lie in
// [5, distinct group count]; anything else is a caller bug and is rejected
// rather than clamped.
func RankAndSlice(grouped []models.GroupedRow, ascending bool, n int) ([]models.GroupedRow, error) {
	if n < 5 || n > len(grouped) {
		return nil, models.NewInputError("n must be between 5 and %d, got %d", len(grouped), n)
	}
	ranked := make([]models.GroupedRow, len(grouped))
	copy(ranked, grouped)
	stableSortByValue(ranked, ascending)
	return ranked[:n], nil
}

// SortByBucket orders trend rows chronologically (then by keys) for the
// chart layer.
func SortByBucket(rows []models.GroupedRow) {
	stableSort(rows, func(a, b *models.GroupedRow) bool {
		switch {
		case a.Bucket == nil || b.Bucket == nil:
			return false
		case !a.Bucket.Equal(*b.Bucket):
			return a.Bucket.Before(*b.Bucket)
		}
		for i := range a.Keys {
			if i < len(b.Keys) && a.Keys[i] != b.Keys[i] {
				return a.Keys[i] < b.Keys[i]
			}
		}
		return false
	})
}

// Total reduces the measure over the whole (filtered, unsliced) frame. It
// is the only sanctioned percent-of-total denominator.
func Total(orders []models.Order, measure models.Measure, agg models.AggFn) float64 {
	var sum float64
	count := 0
	for i := range orders {
		v := orders[i].MeasureValue(measure)
		if agg == models.AggCount {
			if measure.Numeric() || v != 0 {
				count++
			}
			continue
		}
		sum += v
		count++
	}
	switch agg {
	case models.AggCount:
		return float64(count)
	case models.AggMean:
		if count == 0 {
			return 0
		}
		return sum / float64(count)
	default:
		return sum
	}
}

// KeyMetrics summarises a ranked slice. Average divides the slice total by
// the distinct count of the primary grouping value rather than the row
// count, because two-key tables repeat the primary key.
func KeyMetrics(rows []models.GroupedRow) models.KeyMetrics {
	if len(rows) == 0 {
		return models.KeyMetrics{}
	}
	values := make([]float64, len(rows))
	entities := map[string]struct{}{}
	for i, r := range rows {
		values[i] = r.Value
		if len(r.Keys) > 0 {
			entities[r.Keys[0]] = struct{}{}
		}
	}
	distinct := len(entities)
	if distinct == 0 {
		distinct = len(rows)
	}
	total := utils.Sum(values)
	return models.KeyMetrics{
		Total:   total,
		Average: math.Round(total / float64(distinct)),
		Median:  utils.Median(values),
		Min:     utils.Min(values),
		Max:     utils.Max(values),
	}
}

// PercentOfTotal is the slice's share of the overall total, rounded to the
// nearest integer for display.
func PercentOfTotal(sliceTotal, overall float64) float64 {
	if overall == 0 {
		return 0
	}
	return math.Round(sliceTotal / overall * 100)
}

func stableSortByValue(rows []models.GroupedRow, ascending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		if ascending {
			return rows[i].Value < rows[j].Value
		}
		return rows[i].Value > rows[j].Value
	})
}

func stableSort(rows []models.GroupedRow, less func(a, b *models.GroupedRow) bool) {
	sort.SliceStable(rows, func(i, j int) bool { return less(&rows[i], &rows[j]) })
}
