package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DreKwasi/brazilian-ecom-analysis/models"
	"github.com/DreKwasi/brazilian-ecom-analysis/services"
)

func geoFrame() []models.Order {
	return []models.Order{
		{OrderID: "o1", CustomerLat: -23.55, CustomerLng: -46.63, Price: 10},
		{OrderID: "o2", CustomerLat: -23.55, CustomerLng: -46.63, Price: 20},
		{OrderID: "o3", CustomerLat: -22.91, CustomerLng: -43.17, Price: 30},
	}
}

func TestGeoFeatureTable(t *testing.T) {
	table := services.GeoFeatureTable(geoFrame(), false)
	assert.Equal(t, []string{"customer_lat", "customer_lng"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []float64{-23.55, -46.63}, table.Rows[0])
	assert.Equal(t, []float64{-22.91, -43.17}, table.Rows[1])
}

func TestGeoFeatureTableSumsPrice(t *testing.T) {
	table := services.GeoFeatureTable(geoFrame(), true)
	assert.Equal(t, []string{"customer_lat", "customer_lng", "price"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, 30.0, table.Rows[0][2])
	assert.Equal(t, 30.0, table.Rows[1][2])
}

func cityOrder(id, city string, lat, lng float64, days int, miles float64) models.Order {
	o := deliveredOrder(id, "2024-01-02 10:00:00", days, miles)
	o.CustomerCity = city
	o.CustomerLat, o.CustomerLng = lat, lng
	return o
}

func mapFrame() []models.Order {
	return []models.Order{
		cityOrder("m1", "sao paulo", -23.55, -46.63, 2, 100),
		cityOrder("m2", "sao paulo", -23.55, -46.63, 4, 200),
		cityOrder("m3", "rio de janeiro", -22.91, -43.17, 6, 300),
	}
}

func TestDeliveryFeatureTable(t *testing.T) {
	table := services.DeliveryFeatureTable(services.CleanDeliveredFrame(mapFrame()))

	assert.Equal(t, []string{"customer_lat", "customer_lng", "delivery_days"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"sao paulo", "rio de janeiro"}, table.RowNames)
	assert.Equal(t, []float64{-23.55, -46.63, 3}, table.Rows[0]) // mean of 2 and 4
	assert.Equal(t, []float64{-22.91, -43.17, 6}, table.Rows[1])
}

func TestDistanceFeatureTable(t *testing.T) {
	table := services.DistanceFeatureTable(services.CleanDeliveredFrame(mapFrame()))

	assert.Equal(t, []string{"customer_lat", "customer_lng", "distance_covered"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Nil(t, table.RowNames)
	assert.Equal(t, 150.0, table.Rows[0][2])
	assert.Equal(t, 300.0, table.Rows[1][2])
}

func TestCleanDeliveredFrame(t *testing.T) {
	frame := []models.Order{
		cityOrder("m1", "sao paulo", -23.55, -46.63, 1, 10),
		cityOrder("m2", "sao paulo", -23.55, -46.63, 2, 10),
		cityOrder("m3", "sao paulo", -23.55, -46.63, 3, 10),
		cityOrder("m4", "sao paulo", -23.55, -46.63, 4, 10),
		cityOrder("m5", "sao paulo", -23.55, -46.63, 5, 10),
		cityOrder("m6", "sao paulo", -23.55, -46.63, 100, 10),
	}
	// repeated line item for m1 must not survive the dedup
	frame = append(frame, frame[0])

	clean := services.CleanDeliveredFrame(frame)
	require.Len(t, clean, 5)
	for _, o := range clean {
		assert.Less(t, o.DeliveryDays, 100.0)
	}
}

type stubClusterer struct {
	gotN int
	err  error
}

func (s *stubClusterer) Cluster(nClusters int, table models.FeatureTable) ([]int, error) {
	s.gotN = nClusters
	if s.err != nil {
		return nil, s.err
	}
	labels := make([]int, len(table.Rows))
	for i := range labels {
		labels[i] = i % nClusters
	}
	return labels, nil
}

func TestClusterFeatures(t *testing.T) {
	stub := &stubClusterer{}
	services.RegisterClusterer(stub)
	t.Cleanup(func() { services.RegisterClusterer(nil) })

	table := services.GeoFeatureTable(geoFrame(), true)
	labeled, err := services.ClusterFeatures(table, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, stub.gotN)
	assert.Equal(t, []int{0, 1}, labeled.Labels)
}

func TestClusterFeaturesBounds(t *testing.T) {
	table := services.GeoFeatureTable(geoFrame(), false)

	_, err := services.ClusterFeatures(table, 1)
	assert.True(t, models.IsInputError(err))
	_, err = services.ClusterFeatures(table, 6)
	assert.True(t, models.IsInputError(err))
}

func TestClusterFeaturesWithoutCollaborator(t *testing.T) {
	services.RegisterClusterer(nil)

	table := services.GeoFeatureTable(geoFrame(), false)
	out, err := services.ClusterFeatures(table, 3)
	require.NoError(t, err)
	assert.Nil(t, out.Labels)
	assert.Equal(t, table.Rows, out.Rows)
}
