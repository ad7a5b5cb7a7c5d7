package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mohamadsobeh/menu-sub000/internal/cart"
	"github.com/mohamadsobeh/menu-sub000/internal/catalog"
	"github.com/mohamadsobeh/menu-sub000/internal/checkout"
	"github.com/mohamadsobeh/menu-sub000/internal/coupon"
	"github.com/mohamadsobeh/menu-sub000/internal/events"
)

// newTestRouter wires the full customer API against the built-in seed, with
// simulated latencies turned off.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	repo := catalog.NewMemoryRepository(catalog.DefaultSeed())
	catalogService := catalog.NewService(repo, catalog.NewMemoryCache(), nil)

	cartStore := cart.NewStore()
	t.Cleanup(func() { cartStore.Close() })

	couponService := coupon.NewService(coupon.DefaultCoupons(), 0, nil)
	checkoutService := checkout.NewService(cartStore, couponService, catalogService, events.NewLogPublisher(nil), 0, nil)

	return NewRouter(catalogService, cartStore, checkoutService, 5*time.Second)
}

func doJSON(t *testing.T, h http.Handler, method, path, sessionID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type envelopeDTO struct {
	Data json.RawMessage `json:"data"`
	Meta json.RawMessage `json:"meta"`
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) envelopeDTO {
	t.Helper()

	var env envelopeDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}

func decodeMeta(t *testing.T, env envelopeDTO, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Meta, out))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
