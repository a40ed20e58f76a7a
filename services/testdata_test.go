package services_test

import (
	"time"

	"github.com/DreKwasi/brazilian-ecom-analysis/models"
)

func ts(value string) *time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		if t, err = time.Parse("2006-01-02", value); err != nil {
			panic(err)
		}
	}
	return &t
}

// fourRowFrame is the canonical scenario frame: dates 2024-01-01..04,
// statuses delivered/delivered/shipped/canceled, prices 10/20/30/40. The
// second delivered row has no delivered-to-customer date yet.
func fourRowFrame() []models.Order {
	return []models.Order{
		{
			OrderID: "o1", CustomerID: "c1", CustomerUniqueID: "u1", ProductID: "p1", SellerID: "s1",
			OrderStatus: "delivered", PaymentType: "credit_card", ProductCategoryName: "toys",
			SellerCity: "sao paulo", SellerState: "SP", CustomerCity: "rio de janeiro", CustomerState: "RJ",
			Price: 10, FreightValue: 1,
			PurchaseTimestamp:     ts("2024-01-01 08:00:00"),
			ApprovedAt:            ts("2024-01-01 09:00:00"),
			DeliveredCarrierDate:  ts("2024-01-02 10:00:00"),
			DeliveredCustomerDate: ts("2024-01-01 17:00:00"),
			EstimatedDeliveryDate: ts("2024-01-10"),
		},
		{
			OrderID: "o2", CustomerID: "c2", CustomerUniqueID: "u2", ProductID: "p2", SellerID: "s1",
			OrderStatus: "delivered", PaymentType: "boleto", ProductCategoryName: "toys",
			SellerCity: "sao paulo", SellerState: "SP", CustomerCity: "campinas", CustomerState: "SP",
			Price: 20, FreightValue: 2,
			PurchaseTimestamp:     ts("2024-01-02 08:00:00"),
			ApprovedAt:            ts("2024-01-02 09:00:00"),
			DeliveredCustomerDate: nil, // not delivered to the customer yet
			EstimatedDeliveryDate: ts("2024-01-11"),
		},
		{
			OrderID: "o3", CustomerID: "c3", CustomerUniqueID: "u3", ProductID: "p3", SellerID: "s2",
			OrderStatus: "shipped", PaymentType: "credit_card", ProductCategoryName: "electronics",
			SellerCity: "curitiba", SellerState: "PR", CustomerCity: "sao paulo", CustomerState: "SP",
			Price: 30, FreightValue: 3,
			PurchaseTimestamp:     ts("2024-01-03 08:00:00"),
			ApprovedAt:            ts("2024-01-03 09:00:00"),
			DeliveredCustomerDate: ts("2024-01-03 18:00:00"),
			EstimatedDeliveryDate: ts("2024-01-12"),
		},
		{
			OrderID: "o4", CustomerID: "c4", CustomerUniqueID: "u4", ProductID: "p4", SellerID: "s2",
			OrderStatus: "canceled", PaymentType: "voucher", ProductCategoryName: "electronics",
			SellerCity: "curitiba", SellerState: "PR", CustomerCity: "salvador", CustomerState: "BA",
			Price: 40, FreightValue: 4,
			PurchaseTimestamp:     ts("2024-01-04 08:00:00"),
			ApprovedAt:            ts("2024-01-04 09:00:00"),
			DeliveredCustomerDate: ts("2024-01-04 18:00:00"),
			EstimatedDeliveryDate: ts("2024-01-13"),
		},
	}
}

func selectionAll() models.FilterSelection {
	return models.FilterSelection{
		DateColumn: models.DatePurchase,
		StartDate:  models.NewCivilDate(2024, time.January, 1),
		EndDate:    models.NewCivilDate(2024, time.January, 4),
	}
}
