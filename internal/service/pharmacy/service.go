package pharmacy

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pharmanet/pharmacy-console/internal/service/medication"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
)

const (
	DefaultMostSoldLimit = 3
	DefaultTrendDays     = 7
)

// Service wraps the pharmacy backend. Every endpoint is authenticated; the
// backend scopes manager routes (/m/) and employee routes (/e/) to the
// caller's pharmacies itself.
type Service struct {
	auth pkghttp.Client
}

func NewService(client pkghttp.Client, tokens pkghttp.TokenSource) *Service {
	return &Service{
		auth: client.With(pkghttp.WithBearerAuth(tokens)),
	}
}

// MostSold returns the top-sold medications across the manager's pharmacies.
func (s *Service) MostSold(ctx context.Context, limit int) ([]MostSoldMedication, error) {
	if limit <= 0 {
		limit = DefaultMostSoldLimit
	}
	req := s.auth.NewRequest(ctx).SetQueryParam("most_sold", strconv.Itoa(limit))
	return pkghttp.Send[[]MostSoldMedication](req, http.MethodGet, "/pharmacies/m/sales")
}

// SaleTrends returns daily sale aggregates for the past days.
func (s *Service) SaleTrends(ctx context.Context, days int) ([]SaleTrend, error) {
	if days <= 0 {
		days = DefaultTrendDays
	}
	req := s.auth.NewRequest(ctx).SetQueryParam("days", strconv.Itoa(days))
	return pkghttp.Send[[]SaleTrend](req, http.MethodGet, "/pharmacies/m/sales/trends")
}

func (s *Service) RegisterInventory(ctx context.Context, pharmacyID int64, registration InventoryRegistration) (string, error) {
	req := s.auth.NewRequest(ctx).
		SetPathParam("pharmacyID", strconv.FormatInt(pharmacyID, 10)).
		SetBody(registration)
	resp, err := pkghttp.Send[messageResponse](req, http.MethodPost, "/pharmacies/m/{pharmacyID}/inventory")
	return resp.Message, err
}

func (s *Service) Medications(ctx context.Context, pharmacyID int64) ([]medication.Medication, error) {
	req := s.auth.NewRequest(ctx).SetPathParam("pharmacyID", strconv.FormatInt(pharmacyID, 10))
	return pkghttp.Send[[]medication.Medication](req, http.MethodGet, "/pharmacies/e/{pharmacyID}/medications")
}

func (s *Service) RecordSale(ctx context.Context, pharmacyID int64, sale SaleRequest) (string, error) {
	req := s.auth.NewRequest(ctx).
		SetPathParam("pharmacyID", strconv.FormatInt(pharmacyID, 10)).
		SetBody(sale)
	resp, err := pkghttp.Send[messageResponse](req, http.MethodPost, "/pharmacies/e/{pharmacyID}/sales")
	return resp.Message, err
}

func (s *Service) UpdateInventory(ctx context.Context, pharmacyID int64, update InventoryUpdate) (string, error) {
	req := s.auth.NewRequest(ctx).
		SetPathParam("pharmacyID", strconv.FormatInt(pharmacyID, 10)).
		SetBody(update)
	resp, err := pkghttp.Send[messageResponse](req, http.MethodPatch, "/pharmacies/e/{pharmacyID}/inventory")
	return resp.Message, err
}
