package pharmacy_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmanet/pharmacy-console/internal/service/pharmacy"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *pharmacy.Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := pkghttp.NewClient(pkghttp.WithClientDestination("pharmacy", srv.URL))
	return pharmacy.NewService(client, func(context.Context) (string, bool) {
		return "sometokenvalue", true
	})
}

func TestService_SaleTrends_DecodesBackendDates(t *testing.T) {
	tests := []struct {
		name     string
		saleDate string
		expect   time.Time
	}{
		{
			name:     "naive_datetime",
			saleDate: "2024-05-01T00:00:00",
			expect:   time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "rfc3339_datetime",
			saleDate: "2024-05-01T10:30:00Z",
			expect:   time.Date(2024, time.May, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "bare_date",
			saleDate: "2024-05-01",
			expect:   time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`[{"sale_date":"` + tc.saleDate + `","total_sales_amount":12.5,"number_of_sales":3}]`))
			})

			trends, err := svc.SaleTrends(context.Background(), 7)
			require.NoError(t, err)
			require.Len(t, trends, 1)
			assert.True(t, tc.expect.Equal(trends[0].SaleDate))
			assert.Equal(t, 12.5, trends[0].TotalSalesAmount)
			assert.Equal(t, 3, trends[0].NumberOfSales)
		})
	}
}

func TestService_SaleTrends_FailsOnUnparsableDate(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"sale_date":"not-a-date","total_sales_amount":1,"number_of_sales":1}]`))
	})

	_, err := svc.SaleTrends(context.Background(), 7)
	assert.ErrorContains(t, err, "sale_date")
}
