package services

import (
	"sync"

	"github.com/DreKwasi/brazilian-ecom-analysis/models"
)

var (
	clustererMu sync.RWMutex
	clusterer   models.Clusterer
)

// RegisterClusterer wires the external ML collaborator. A nil collaborator
// means feature tables are returned unlabeled.
func RegisterClusterer(c models.Clusterer) {
	clustererMu.Lock()
	clusterer = c
	clustererMu.Unlock()
}

func activeClusterer() models.Clusterer {
	clustererMu.RLock()
	defer clustererMu.RUnlock()
	return clusterer
}

// GeoFeatureTable groups a geo-enriched frame to one row per customer
// coordinate pair. With sumPrice the frame contributes a summed revenue
// column; otherwise the first-seen row represents the location.
func GeoFeatureTable(orders []models.Order, sumPrice bool) models.FeatureTable {
	type coord struct{ lat, lng float64 }
	index := map[coord]int{}
	table := models.FeatureTable{Columns: []string{"customer_lat", "customer_lng"}}
	if sumPrice {
		table.Columns = append(table.Columns, "price")
	}
	for i := range orders {
		c := coord{orders[i].CustomerLat, orders[i].CustomerLng}
		idx, ok := index[c]
		if !ok {
			idx = len(table.Rows)
			index[c] = idx
			row := []float64{c.lat, c.lng}
			if sumPrice {
				row = append(row, 0)
			}
			table.Rows = append(table.Rows, row)
		}
		if sumPrice {
			table.Rows[idx][2] += orders[i].Price
		}
	}
	return table
}

// CleanDeliveredFrame is the delivered frame behind the distribution maps:
// line-item deduplicated, with delivery-time outliers removed by the IQR
// fence.
func CleanDeliveredFrame(orders []models.Order) []models.Order {
	return RemoveOutliers(DedupLineItems(PrepareDeliveredFrame(orders)), models.MeasureDeliveryDays)
}

// DeliveryFeatureTable groups a cleaned delivered frame to one row per
// (customer city, coordinate pair) with the mean delivery time in days,
// backing the delivery-time heatmap. RowNames carries the city.
func DeliveryFeatureTable(orders []models.Order) models.FeatureTable {
	return meanFeatureTable(orders, "delivery_days", true, models.MeasureDeliveryDays)
}

// DistanceFeatureTable groups a cleaned delivered frame to one row per
// customer coordinate pair with the mean distance covered in miles, backing
// the distance clustering map.
func DistanceFeatureTable(orders []models.Order) models.FeatureTable {
	return meanFeatureTable(orders, "distance_covered", false, models.MeasureDistance)
}

func meanFeatureTable(orders []models.Order, column string, withCity bool, measure models.Measure) models.FeatureTable {
	type key struct {
		city     string
		lat, lng float64
	}
	index := map[key]int{}
	var sums []float64
	var counts []int
	table := models.FeatureTable{Columns: []string{"customer_lat", "customer_lng", column}}
	for i := range orders {
		k := key{lat: orders[i].CustomerLat, lng: orders[i].CustomerLng}
		if withCity {
			k.city = orders[i].CustomerCity
		}
		idx, ok := index[k]
		if !ok {
			idx = len(table.Rows)
			index[k] = idx
			table.Rows = append(table.Rows, []float64{k.lat, k.lng, 0})
			if withCity {
				table.RowNames = append(table.RowNames, k.city)
			}
			sums = append(sums, 0)
			counts = append(counts, 0)
		}
		sums[idx] += orders[i].MeasureValue(measure)
		counts[idx]++
	}
	for i := range table.Rows {
		table.Rows[i][2] = sums[i] / float64(counts[i])
	}
	return table
}

// ClusterFeatures hands a feature table to the registered collaborator and
// attaches the returned label column. Labels are opaque to the core. The
// cluster count must sit in the dashboard's 2..5 slider range.
func ClusterFeatures(table models.FeatureTable, nClusters int) (models.FeatureTable, error) {
	if nClusters < 2 || nClusters > 5 {
		return models.FeatureTable{}, models.NewInputError("cluster count must be between 2 and 5, got %d", nClusters)
	}
	c := activeClusterer()
	if c == nil || len(table.Rows) == 0 {
		return table, nil
	}
	labels, err := c.Cluster(nClusters, table)
	if err != nil {
		return models.FeatureTable{}, err
	}
	table.Labels = labels
	return table, nil
}
