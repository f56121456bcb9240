package pharmacy

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pharmanet/pharmacy-console/internal/service/medication"
)

type SaleItem struct {
	MedicationID int64 `json:"medication_id"`
	Quantity     int   `json:"quantity"`
	UnitPrice    int   `json:"unit_price"`
}

type SaleRequest struct {
	SaleItems []SaleItem `json:"sale_items"`
}

type MostSoldMedication struct {
	MedicationID int64                   `json:"medication_id"`
	Name         string                  `json:"name"`
	Quantity     int                     `json:"quantity"`
	Manufacturer medication.Manufacturer `json:"manufacturer"`
}

// SaleTrend is one day of aggregated sales.
type SaleTrend struct {
	SaleDate         time.Time `json:"sale_date"`
	TotalSalesAmount float64   `json:"total_sales_amount"`
	NumberOfSales    int       `json:"number_of_sales"`
}

// The backend serializes sale_date as a timezone-naive datetime, sometimes
// truncated to a bare date. Naive values read as UTC.
var saleDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t *SaleTrend) UnmarshalJSON(data []byte) error {
	var raw struct {
		SaleDate         string  `json:"sale_date"`
		TotalSalesAmount float64 `json:"total_sales_amount"`
		NumberOfSales    int     `json:"number_of_sales"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var parsed time.Time
	var err error
	for _, layout := range saleDateLayouts {
		parsed, err = time.Parse(layout, raw.SaleDate)
		if err == nil {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("parse sale_date %q: %w", raw.SaleDate, err)
	}

	t.SaleDate = parsed
	t.TotalSalesAmount = raw.TotalSalesAmount
	t.NumberOfSales = raw.NumberOfSales
	return nil
}

type InventoryRegistration struct {
	MedicationID   int64     `json:"medication_id"`
	Quantity       int       `json:"quantity"`
	ExpirationDate time.Time `json:"expiration_date"`
}

// InventoryUpdate carries a partial inventory change; nil fields are left
// untouched.
type InventoryUpdate struct {
	MedicationID   int64      `json:"medication_id"`
	Quantity       *int       `json:"quantity"`
	ExpirationDate *time.Time `json:"expiration_date"`
}

type messageResponse struct {
	Message string `json:"message"`
}
