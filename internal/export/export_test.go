package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sjtech/spicon-recon/internal/categorizer"
	"sjtech/spicon-recon/internal/reports"
	"sjtech/spicon-recon/internal/workerledger"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestWriteAbstract(t *testing.T) {
	report := reports.AbstractReport{
		Rows: []reports.AbstractRow{
			{
				Key:           "Andheri",
				Registrations: 2,
				Categories: map[categorizer.Category]int{
					categorizer.Family: 1,
					"Priest":           1,
				},
				TotalPeople:   5,
				TotalExpected: 2500,
				TotalPaid:     decimal.NewFromInt(1000),
			},
		},
		Registrations: 2,
		TotalPeople:   5,
		TotalExpected: 2500,
		TotalPaid:     decimal.NewFromInt(1000),
	}

	path := filepath.Join(t.TempDir(), "abstract.csv")
	require.NoError(t, WriteAbstract(report, path))

	lines := readLines(t, path)
	require.Len(t, lines, 3, "header, one row, TOTAL")
	assert.Contains(t, lines[0], "Group")
	assert.Contains(t, lines[1], "Andheri")
	assert.Contains(t, lines[1], "1500.00", "balance column")
	// The unrecognized category folds into Other.
	fields := strings.Split(lines[1], ",")
	assert.Contains(t, fields, "5")
	assert.True(t, strings.HasPrefix(lines[2], TotalLabel))
}

func TestWriteCollectionsDelimiter(t *testing.T) {
	SetDelimiter(';')
	defer SetDelimiter(',')

	report := reports.CollectionReport{
		Rows: []reports.CollectionRow{
			{District: "Bandra", Payments: 1, TotalPeople: 1, Amount: decimal.NewFromInt(250)},
		},
		Payments:    1,
		TotalPeople: 1,
		Amount:      decimal.NewFromInt(250),
	}

	path := filepath.Join(t.TempDir(), "collections.csv")
	require.NoError(t, WriteCollections(report, path))

	lines := readLines(t, path)
	assert.Contains(t, lines[1], "Bandra;1;1;250.00")
}

func TestWriteTreasurer(t *testing.T) {
	report := reports.TreasurerReport{
		Rows: []reports.TreasurerRow{
			{
				Name: "Arun", UniqueID: "SP-001", GroupType: "Family",
				TransactionID: "TX1",
				TotalAmount:   decimal.NewFromInt(2500),
				AmountPaid:    decimal.NewFromInt(1000),
				Balance:       decimal.NewFromInt(1500),
			},
		},
		TotalAmount: decimal.NewFromInt(2500),
		AmountPaid:  decimal.NewFromInt(1000),
		Balance:     decimal.NewFromInt(1500),
	}

	path := filepath.Join(t.TempDir(), "treasurer.csv")
	require.NoError(t, WriteTreasurer(report, path))

	lines := readLines(t, path)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "SP-001")
	assert.Contains(t, lines[1], "2500.00")
	assert.Contains(t, lines[2], TotalLabel)
}

func TestWriteWorkerLedger(t *testing.T) {
	ledger := workerledger.Ledger{
		Region: "West",
		Transactions: []workerledger.Transaction{
			{Title: "Bank transfer", Type: workerledger.TypeDisbursement, Method: "NEFT", Amount: decimal.NewFromInt(2000)},
			{Title: "Returned excess", Type: workerledger.TypeRefund, Method: "Cash", Amount: decimal.NewFromInt(300)},
		},
		TotalDisbursed: decimal.NewFromInt(2000),
		TotalRefunded:  decimal.NewFromInt(300),
	}

	path := filepath.Join(t.TempDir(), "ledger.csv")
	require.NoError(t, WriteWorkerLedger(ledger, path))

	lines := readLines(t, path)
	require.Len(t, lines, 4)
	assert.Contains(t, lines[3], "1700.00", "TOTAL line carries the net outflow")
}

func TestWriteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "attendance.csv")
	require.NoError(t, WriteAttendance(reports.AttendanceReport{}, path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
