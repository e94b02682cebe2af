// Package workerledger reconstructs a field worker's cash ledger for one
// region from approved payment requests. Disbursements and refunds are not
// first-class records upstream; they are encoded in the free-text description
// of a payment request, so the ledger parses them back out.
package workerledger

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"sjtech/spicon-recon/internal/classifier"
	"sjtech/spicon-recon/internal/dedupe"
	"sjtech/spicon-recon/internal/models"
	"sjtech/spicon-recon/internal/pricing"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Transaction types recovered from a request description.
const (
	TypeDisbursement = "DISBURSEMENT"
	TypeRefund       = "REFUND"
)

// descriptionMarker identifies payment requests that encode a worker
// transaction. The marker match is case-sensitive; the field extraction
// below is not.
const descriptionMarker = "Payment Method:"

var (
	methodPattern = regexp.MustCompile(`(?i)Payment Method:\s*(.+)`)
	typePattern   = regexp.MustCompile(`(?i)Transaction Type:\s*(DISBURSEMENT|REFUND)`)
)

// Transaction is one decoded ledger movement.
type Transaction struct {
	ID        string
	Title     string
	Type      string
	Method    string
	Amount    decimal.Decimal
	Status    string
	CreatedAt string
}

// Ledger is the region's money position: what registrants were expected to
// pay and actually paid in, against what the worker sent out or got back.
type Ledger struct {
	Region         string
	Transactions   []Transaction
	TotalExpected  int64
	TotalCollected decimal.Decimal
	TotalDisbursed decimal.Decimal
	TotalRefunded  decimal.Decimal
}

// NetSent is the amount that left the region's cash box: disbursements less
// refunds.
func (l Ledger) NetSent() decimal.Decimal {
	return l.TotalDisbursed.Sub(l.TotalRefunded)
}

// Balance is the cash still held in the region after the net outflow. It may
// be negative when more was sent out than collected.
func (l Ledger) Balance() decimal.Decimal {
	return l.TotalCollected.Sub(l.NetSent())
}

// Build decodes the region's ledger. Only requests for exactly this region
// whose description carries the transaction marker participate; everything
// else on the requests feed is ordinary expense paperwork. The collected side
// sums the region's deduplicated registrations, gifts included, because gift
// money sits in the same cash box.
func Build(requests []models.PaymentRequest, registrations []models.Registration, table pricing.Table, region string) Ledger {
	ledger := Ledger{Region: region}

	for _, req := range requests {
		if strings.TrimSpace(req.Region) != region {
			continue
		}
		if !strings.Contains(req.Description, descriptionMarker) {
			continue
		}
		tx := decode(req)
		ledger.Transactions = append(ledger.Transactions, tx)
		switch tx.Type {
		case TypeRefund:
			ledger.TotalRefunded = ledger.TotalRefunded.Add(tx.Amount)
		default:
			ledger.TotalDisbursed = ledger.TotalDisbursed.Add(tx.Amount)
		}
	}
	sort.SliceStable(ledger.Transactions, func(i, j int) bool {
		return ledger.Transactions[i].CreatedAt < ledger.Transactions[j].CreatedAt
	})

	regional := make([]models.Registration, 0, len(registrations))
	for _, reg := range registrations {
		if strings.TrimSpace(reg.Region) == region {
			regional = append(regional, reg)
		}
	}
	for _, reg := range dedupe.ByTransaction(regional) {
		ledger.TotalCollected = ledger.TotalCollected.Add(reg.AmountPaid.Decimal)
		if !classifier.IsGift(reg) {
			ledger.TotalExpected += table.Amount(reg.Region, reg.GroupType, reg.MaritalStatus, reg.SpouseAttending)
		}
	}

	log.WithFields(logrus.Fields{
		"region":       region,
		"transactions": len(ledger.Transactions),
		"disbursed":    ledger.TotalDisbursed,
		"refunded":     ledger.TotalRefunded,
	}).Debug("Built worker ledger")
	return ledger
}

// decode recovers the transaction fields from a request. Requests predating
// the Transaction Type convention default to disbursements.
func decode(req models.PaymentRequest) Transaction {
	tx := Transaction{
		ID:        req.ID,
		Title:     req.Title,
		Type:      TypeDisbursement,
		Amount:    req.RequestedAmount.Decimal,
		Status:    req.Status,
		CreatedAt: req.CreatedAt,
	}
	if m := methodPattern.FindStringSubmatch(req.Description); m != nil {
		tx.Method = strings.TrimSpace(m[1])
	}
	if m := typePattern.FindStringSubmatch(req.Description); m != nil {
		tx.Type = strings.ToUpper(m[1])
	}
	return tx
}
