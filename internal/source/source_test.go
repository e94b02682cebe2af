package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sjtech/spicon-recon/internal/models"
)

type stubSource struct {
	regs    []models.Registration
	pays    []models.Payment
	regsErr error
	paysErr error
}

func (s stubSource) Registrations(context.Context) ([]models.Registration, error) {
	return s.regs, s.regsErr
}

func (s stubSource) Payments(context.Context) ([]models.Payment, error) {
	return s.pays, s.paysErr
}

func (s stubSource) PaymentRequests(context.Context) ([]models.PaymentRequest, error) {
	return nil, nil
}

func TestSnapshot(t *testing.T) {
	src := stubSource{
		regs: []models.Registration{{Name: "Arun"}},
		pays: []models.Payment{{TransactionID: "TX1"}},
	}

	snap, err := Snapshot(context.Background(), src)
	require.NoError(t, err)
	assert.Len(t, snap.Registrations, 1)
	assert.Len(t, snap.Payments, 1)
}

func TestSnapshotPropagatesError(t *testing.T) {
	src := stubSource{paysErr: errors.New("api down")}

	_, err := Snapshot(context.Background(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api down")
}

func TestFilesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	regsPath := filepath.Join(dir, "registrations.json")
	content := `{"success": true, "data": [{"name": "Arun", "region": "West", "amountPaid": 1000}]}`
	require.NoError(t, os.WriteFile(regsPath, []byte(content), 0600))

	files := Files{RegistrationsPath: regsPath}
	regs, err := files.Registrations(context.Background())
	require.NoError(t, err)

	require.Len(t, regs, 1)
	assert.Equal(t, "Arun", regs[0].Name)
	assert.Equal(t, "1000", regs[0].AmountPaid.String())

	// Unconfigured feeds come back empty rather than failing.
	pays, err := files.Payments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pays)
}

func TestFilesFailedEnvelope(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "payments.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"success": false, "message": "expired token"}`), 0600))

	files := Files{PaymentsPath: path}
	_, err := files.Payments(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired token")
}

func TestFilesMissingFile(t *testing.T) {
	files := Files{RegistrationsPath: filepath.Join(t.TempDir(), "nope.json")}
	_, err := files.Registrations(context.Background())
	assert.Error(t, err)
}
