// Package models provides the data structures shared across the reconciliation
// engine: registrations, payments and the worker payment-request feed, plus the
// lenient numeric types the upstream API requires.
package models

import "strings"

// Registration is one person or family's signup record. Records are created
// by the registration forms and fetched read-only here; gift contributions
// arrive through the same collection and are separated by the classifier.
type Registration struct {
	ID                 string `json:"_id"`
	Type               string `json:"type,omitempty"`
	UniqueID           string `json:"uniqueId,omitempty"`
	Name               string `json:"name,omitempty"`
	FullName           string `json:"fullName,omitempty"`
	Gender             string `json:"gender,omitempty"`
	Region             string `json:"region,omitempty"`
	District           string `json:"district,omitempty"`
	GroupType          string `json:"groupType,omitempty"`
	MaritalStatus      string `json:"maritalStatus,omitempty"`
	SpouseAttending    string `json:"spouseAttending,omitempty"`
	SpouseName         string `json:"spouseName,omitempty"`
	TotalFamilyMembers Count  `json:"totalFamilyMembers,omitempty"`
	Email              string `json:"email,omitempty"`
	Mobile             string `json:"mobile,omitempty"`
	TransactionID      string `json:"transactionId,omitempty"`
	AmountPaid         Amount `json:"amountPaid,omitempty"`
	Purpose            string `json:"purpose,omitempty"`
	DTCAttended        string `json:"dtcAttended,omitempty"`
	RecommendedByRole  string `json:"recommendedByRole,omitempty"`
	ArrivalTime        string `json:"arrivalTime,omitempty"`
	CollectionPlace    string `json:"collectionPlace,omitempty"`
	ApprovalStatus     string `json:"approvalStatus,omitempty"`
	PaymentDate        string `json:"paymentDate,omitempty"`
	CreatedAt          string `json:"createdAt,omitempty"`
	UpdatedAt          string `json:"updatedAt,omitempty"`
}

// DisplayName returns the full name when present, falling back to the short
// name. Gift records captured outside the registration flow carry their
// marker in whichever of the two fields the capture form filled.
func (r Registration) DisplayName() string {
	if r.FullName != "" {
		return r.FullName
	}
	return r.Name
}

// TransactionRef returns the trimmed transaction identifier, or "" when the
// record carries none.
func (r Registration) TransactionRef() string {
	return strings.TrimSpace(r.TransactionID)
}

// EffectivePaymentDate picks the best available payment timestamp: the
// recorded payment date, else the last update, else creation time.
func (r Registration) EffectivePaymentDate() string {
	if r.PaymentDate != "" {
		return r.PaymentDate
	}
	if r.UpdatedAt != "" {
		return r.UpdatedAt
	}
	return r.CreatedAt
}

// Payment is an independently sourced record of money received. Two payments
// sharing a non-empty trimmed TransactionID denote the same underlying
// transaction.
type Payment struct {
	ID            string `json:"_id"`
	TransactionID string `json:"transactionId,omitempty"`
	Region        string `json:"region,omitempty"`
	District      string `json:"district,omitempty"`
	GroupType     string `json:"groupType,omitempty"`
	Name          string `json:"name,omitempty"`
	FullName      string `json:"fullName,omitempty"`
	Email         string `json:"email,omitempty"`
	Mobile        string `json:"mobile,omitempty"`
	AmountPaid    Amount `json:"amountPaid,omitempty"`
	TotalAmount   Amount `json:"totalAmount,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
}

// TransactionRef returns the trimmed transaction identifier, or "" when the
// record carries none.
func (p Payment) TransactionRef() string {
	return strings.TrimSpace(p.TransactionID)
}

// PaymentRequest is one entry of the worker disbursement/refund ledger. The
// transaction type and payment method are encoded as line-prefixed tokens in
// the free-text description and extracted by the workerledger package.
type PaymentRequest struct {
	ID              string   `json:"_id"`
	Region          string   `json:"region,omitempty"`
	Title           string   `json:"title,omitempty"`
	Description     string   `json:"description,omitempty"`
	RequestedAmount Amount   `json:"requestedAmount,omitempty"`
	RequestImages   []string `json:"requestImages,omitempty"`
	Status          string   `json:"status,omitempty"`
	CreatedAt       string   `json:"createdAt,omitempty"`
}

// Snapshot is one immutable pair of source collections handed to the engine.
// Both sides must have resolved before a snapshot exists; the engine never
// sees partial data.
type Snapshot struct {
	Registrations []Registration
	Payments      []Payment
}

// Envelope is the wire wrapper every back-office endpoint uses.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    []T    `json:"data"`
}
