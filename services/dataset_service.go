package services

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/parquet-go/parquet-go"
	"github.com/sirupsen/logrus"
	"github.com/umahmood/haversine"

	"github.com/DreKwasi/brazilian-ecom-analysis/cache"
	"github.com/DreKwasi/brazilian-ecom-analysis/config"
	"github.com/DreKwasi/brazilian-ecom-analysis/models"
)

// Timestamps in the order table are year-first, with and without a
// time-of-day part.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// LoadOrders reads the order table, joins the English category names, and
// (optionally) enriches each row with customer/seller coordinates and the
// great-circle distance between them. The result is memoized per addGeo
// because the backing files never change during a session; a cache hit is
// served even under an expired context.
func LoadOrders(ctx context.Context, addGeo bool) ([]models.Order, error) {
	if orders, ok := cache.GetFrame(addGeo); ok {
		return orders, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := parquet.ReadFile[models.OrderRow](config.OrdersPath())
	if err != nil {
		return nil, models.NewDataIntegrityError("read orders parquet", err)
	}

	translations, err := readCategoryTranslations(config.CategoryTranslationPath())
	if err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(rows))
	dropped := 0
	for i := range rows {
		english, ok := translations[rows[i].ProductCategoryName]
		if !ok {
			// inner-join semantics: untranslated categories are dropped
			dropped++
			continue
		}
		o := parseOrderRow(&rows[i])
		o.ProductCategoryName = english
		orders = append(orders, o)
	}

	if addGeo {
		orders, err = enrichGeo(orders, config.GeolocationPath())
		if err != nil {
			return nil, err
		}
	}

	logrus.Infof("[dataset.load] loaded rows=%d dropped_untranslated=%d add_geo=%t",
		len(orders), dropped, addGeo)

	cache.SetFrame(addGeo, orders)
	return orders, nil
}

func parseOrderRow(r *models.OrderRow) models.Order {
	return models.Order{
		OrderID:          r.OrderID,
		CustomerID:       r.CustomerID,
		CustomerUniqueID: r.CustomerUniqueID,
		ProductID:        r.ProductID,
		SellerID:         r.SellerID,

		OrderStatus:         r.OrderStatus,
		PaymentType:         r.PaymentType,
		ProductCategoryName: r.ProductCategoryName,
		SellerCity:          r.SellerCity,
		SellerState:         r.SellerState,
		CustomerCity:        r.CustomerCity,
		CustomerState:       r.CustomerState,

		Price:        r.Price,
		FreightValue: r.FreightValue,

		PurchaseTimestamp:     parseTimestamp(r.OrderPurchaseTimestamp),
		ApprovedAt:            parseTimestamp(r.OrderApprovedAt),
		DeliveredCarrierDate:  parseTimestamp(r.OrderDeliveredCarrierDate),
		DeliveredCustomerDate: parseTimestamp(r.OrderDeliveredCustomerDate),
		EstimatedDeliveryDate: parseTimestamp(r.OrderEstimatedDeliveryDate),
		ShippingLimitDate:     parseTimestamp(r.ShippingLimitDate),
	}
}

// parseTimestamp turns an on-disk timestamp string into a time, or nil when
// the cell is empty or unparseable (order not yet at that stage).
func parseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func readCategoryTranslations(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, models.NewDataIntegrityError("open category translation csv", err)
	}
	defer f.Close()

	var rows []models.CategoryTranslation
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, models.NewDataIntegrityError("parse category translation csv", err)
	}

	translations := make(map[string]string, len(rows))
	for _, r := range rows {
		translations[r.CategoryName] = r.CategoryNameEnglish
	}
	return translations, nil
}

// enrichGeo joins the geolocation table on customer city and on seller city
// (inner joins: rows whose city has no entry are dropped) and derives the
// distance covered per row, in miles.
func enrichGeo(orders []models.Order, path string) ([]models.Order, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, models.NewDataIntegrityError("open geolocation csv", err)
	}
	defer f.Close()

	var rows []models.GeoLocation
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, models.NewDataIntegrityError("parse geolocation csv", err)
	}

	// one coordinate pair per city, first-seen wins
	byCity := make(map[string]models.GeoLocation, len(rows))
	for _, r := range rows {
		if _, seen := byCity[r.City]; !seen {
			byCity[r.City] = r
		}
	}

	enriched := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		cust, ok := byCity[o.CustomerCity]
		if !ok {
			continue
		}
		sell, ok := byCity[o.SellerCity]
		if !ok {
			continue
		}
		o.CustomerLat, o.CustomerLng = cust.Lat, cust.Lng
		o.SellerLat, o.SellerLng = sell.Lat, sell.Lng
		mi, _ := haversine.Distance(
			haversine.Coord{Lat: sell.Lat, Lon: sell.Lng},
			haversine.Coord{Lat: cust.Lat, Lon: cust.Lng},
		)
		o.DistanceCovered = mi
		enriched = append(enriched, o)
	}
	return enriched, nil
}
