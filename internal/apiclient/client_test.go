package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cashier/registrations", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": [
				{"name": "Arun", "region": "West", "amountPaid": "1,000", "totalFamilyMembers": "4"},
				{"name": "Bina", "region": "East", "amountPaid": null}
			]
		}`))
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)
	regs, err := client.Registrations(context.Background())
	require.NoError(t, err)

	require.Len(t, regs, 2)
	assert.Equal(t, "Arun", regs[0].Name)
	assert.Equal(t, "1000", regs[0].AmountPaid.String())
	assert.Equal(t, 4, int(regs[0].TotalFamilyMembers))
	assert.True(t, regs[1].AmountPaid.IsZero())
}

func TestPaymentsEnvelopeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cashier/list", r.URL.Path)
		_, _ = w.Write([]byte(`{"success": false, "message": "not authorized"}`))
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)
	_, err := client.Payments(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authorized")
}

func TestPaymentRequestsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)
	_, err := client.PaymentRequests(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestBaseURLTrailingSlash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cashier/registrations", r.URL.Path)
		_, _ = w.Write([]byte(`{"success": true, "data": []}`))
	}))
	defer server.Close()

	client := New(server.URL+"/", 5*time.Second)
	regs, err := client.Registrations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, regs)
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := New(server.URL, 0)
	_, err := client.Registrations(ctx)
	assert.Error(t, err)
}
