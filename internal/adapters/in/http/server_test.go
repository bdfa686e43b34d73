package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", errs.NewValidationError(errs.NewFieldError("pincode", "must be 6 digits")), http.StatusUnprocessableEntity},
		{"rate unavailable", errs.NewRateUnavailableError("special", nil, 500), http.StatusUnprocessableEntity},
		{"required", errs.NewValueIsRequiredError("reason"), http.StatusBadRequest},
		{"invalid", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("limit", 500, 1, 200), http.StatusBadRequest},
		{"not found", errs.NewObjectNotFoundError("shipment", "x"), http.StatusNotFound},
		{"conflict", errs.NewConflictError("order", "x", "already shipped"), http.StatusConflict},
		{"invalid transition", errs.NewInvalidTransitionError("shipment", "delivered", "rto"), http.StatusConflict},
		{"deadline", fmt.Errorf("load cards: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"unknown", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusOf(tt.err))
		})
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	e, err := NewRouter(NewServer(Handlers{}, zap.NewNop()), zap.NewNop(), time.Second)
	require.NoError(t, err)
	return e
}

func serve(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_HealthAndDocument(t *testing.T) {
	h := newTestRouter(t)

	rec := serve(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())

	rec = serve(t, h, http.MethodGet, "/openapi.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Contains(t, doc["paths"], "/api/v1/shipments")
}

func TestRouter_RejectsMalformedPathParameter(t *testing.T) {
	rec := serve(t, newTestRouter(t), http.MethodGet, "/api/v1/orders/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_RejectsMalformedBody(t *testing.T) {
	rec := serve(t, newTestRouter(t), http.MethodPost, "/api/v1/orders", `{"paymentType":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ReportsEveryBadMoneyField(t *testing.T) {
	body := `{
		"orderIds": ["0b9b2f0e-5a43-4a51-9d0b-6f0c1d7c2a11"],
		"pickupWarehouseId": "9c4e0a52-45a4-4c63-8f5e-0c9f6c1b7d22",
		"quote": {"carrier": "delhivery", "service": "surface", "zone": "metro-to-metro",
			"chargeableWeightGrams": 700, "freight": "sixty", "codCharge": "30.00",
			"otherCharges": "0", "total": "-5"}
	}`

	rec := serve(t, newTestRouter(t), http.MethodPost, "/api/v1/shipments", body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var got servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.Fields)
	fields := make([]string, 0, len(*got.Fields))
	for _, f := range *got.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"quote.freight", "quote.total"}, fields)
}

func TestRouter_RejectsNilIdentifiers(t *testing.T) {
	body := `{"orderId": "00000000-0000-0000-0000-000000000000",
		"warehouseId": "9c4e0a52-45a4-4c63-8f5e-0c9f6c1b7d22"}`

	rec := serve(t, newTestRouter(t), http.MethodPost, "/api/v1/rate-quotes", body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "orderId")
}

func TestRouter_InvalidNDRStatusFilter(t *testing.T) {
	rec := serve(t, newTestRouter(t), http.MethodGet, "/api/v1/ndr?status=closed", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
