package payments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitiatePayment_Success(t *testing.T) {
	var gotPath, gotPhone, gotAmount string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotPhone = r.URL.Query().Get("phone_number")
		gotAmount = r.URL.Query().Get("total_amount")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ResponseCode":"0","CheckoutRequestID":"ws_CO_42"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, zap.NewNop().Sugar())
	result, err := client.InitiatePayment(context.Background(), "254700000001", decimal.NewFromInt(1500))
	require.NoError(t, err)
	require.Equal(t, "/payment/pay", gotPath)
	require.Equal(t, "254700000001", gotPhone)
	require.Equal(t, "1500", gotAmount)
	require.Equal(t, http.StatusOK, result.StatusCode)
	require.Equal(t, "0", result.ResponseCode)
	require.Equal(t, "ws_CO_42", result.CheckoutRequestID)
}

func TestInitiatePayment_AmountTruncatedToWholeUnits(t *testing.T) {
	var gotAmount string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAmount = r.URL.Query().Get("total_amount")
		w.Write([]byte(`{"ResponseCode":"0","CheckoutRequestID":"x"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, zap.NewNop().Sugar())
	_, err := client.InitiatePayment(context.Background(), "254700000001", decimal.NewFromFloat(249.50))
	require.NoError(t, err)
	require.Equal(t, "249", gotAmount, "fractional units are dropped, not rounded up")
}

func TestInitiatePayment_NonOKKeepsRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"errorMessage":"gateway busy"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, zap.NewNop().Sugar())
	result, err := client.InitiatePayment(context.Background(), "254700000001", decimal.NewFromInt(100))
	require.NoError(t, err)
	require.Equal(t, http.StatusServiceUnavailable, result.StatusCode)
	require.JSONEq(t, `{"errorMessage":"gateway busy"}`, string(result.RawBody))
	require.Empty(t, result.CheckoutRequestID)
}

func TestInitiatePayment_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := NewClient(srv.URL, time.Second, zap.NewNop().Sugar())
	_, err := client.InitiatePayment(context.Background(), "254700000001", decimal.NewFromInt(100))
	require.Error(t, err)
}

func TestInitiatePayment_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, zap.NewNop().Sugar())
	_, err := client.InitiatePayment(context.Background(), "254700000001", decimal.NewFromInt(100))
	require.Error(t, err)
}
