// Package apiclient talks to the registration back-office HTTP API. Every
// list endpoint wraps its payload in the same success envelope, so one
// generic fetch path serves all three collections.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"sjtech/spicon-recon/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// API paths for the cashier collections.
const (
	registrationsPath   = "/api/cashier/registrations"
	paymentsPath        = "/api/cashier/list"
	paymentRequestsPath = "/api/cashier/payment-requests"
)

// Client fetches cashier collections from one API base URL.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a client for baseURL. A zero timeout means no client-side
// deadline beyond the caller's context.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// Registrations fetches the full registration collection.
func (c *Client) Registrations(ctx context.Context) ([]models.Registration, error) {
	return fetchList[models.Registration](ctx, c, registrationsPath)
}

// Payments fetches the payment collection.
func (c *Client) Payments(ctx context.Context) ([]models.Payment, error) {
	return fetchList[models.Payment](ctx, c, paymentsPath)
}

// PaymentRequests fetches the worker payment-request collection.
func (c *Client) PaymentRequests(ctx context.Context) ([]models.PaymentRequest, error) {
	return fetchList[models.PaymentRequest](ctx, c, paymentRequestsPath)
}

// fetchList is a free function because Go methods cannot take type
// parameters of their own.
func fetchList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	url := c.baseURL + path
	log.WithField("url", url).Debug("Fetching collection")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching %s: %w", path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.WithError(err).Warn("Failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, path, strings.TrimSpace(string(body)))
	}

	var envelope models.Envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("error decoding %s response: %w", path, err)
	}
	if !envelope.Success {
		return nil, fmt.Errorf("api rejected %s request: %s", path, envelope.Message)
	}

	log.WithFields(logrus.Fields{
		"path":  path,
		"count": len(envelope.Data),
	}).Debug("Fetched collection")
	return envelope.Data, nil
}
