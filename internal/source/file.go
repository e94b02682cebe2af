package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

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

// Files reads collections from envelope JSON files saved from the API. An
// empty path yields an empty collection, so reports that only need one feed
// can run without the others.
type Files struct {
	RegistrationsPath   string
	PaymentsPath        string
	PaymentRequestsPath string
}

// Registrations reads the registrations file.
func (f Files) Registrations(_ context.Context) ([]models.Registration, error) {
	return readEnvelope[models.Registration](f.RegistrationsPath)
}

// Payments reads the payments file.
func (f Files) Payments(_ context.Context) ([]models.Payment, error) {
	return readEnvelope[models.Payment](f.PaymentsPath)
}

// PaymentRequests reads the payment-requests file.
func (f Files) PaymentRequests(_ context.Context) ([]models.PaymentRequest, error) {
	return readEnvelope[models.PaymentRequest](f.PaymentRequestsPath)
}

func readEnvelope[T any](path string) ([]T, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	var envelope models.Envelope[T]
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	if !envelope.Success {
		return nil, fmt.Errorf("export %s records a failed fetch: %s", path, envelope.Message)
	}

	log.WithFields(logrus.Fields{
		"file":  path,
		"count": len(envelope.Data),
	}).Debug("Read collection from file")
	return envelope.Data, nil
}
