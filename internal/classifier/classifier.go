// Package classifier decides whether a raw registration record is a gift
// contribution or a real registrant. Gifts share the registration collection
// but must stay out of approval workflows and registrant counts.
package classifier

import "sjtech/spicon-recon/internal/models"

// GiftDisplayName marks gift records captured outside the registration flow.
const GiftDisplayName = "Gift - Non-Registered"

// Rule names reported in Result, in evaluation order.
const (
	RuleTypeField   = "type_field"
	RuleDisplayName = "display_name"
	RulePurpose     = "purpose"
	RulePaymentOnly = "payment_without_registration_fields"
)

// Result reports which rule, if any, classified the record as a gift.
type Result struct {
	Matched bool
	Rule    string
}

type rule struct {
	name  string
	match func(models.Registration) bool
}

// The chain is ordered: a later rule is consulted only when every earlier one
// failed. RulePaymentOnly is deliberately loose — a sparsely filled
// registration that carries a payment is reported as a gift.
var rules = []rule{
	{RuleTypeField, func(r models.Registration) bool {
		return r.Type == "gift"
	}},
	{RuleDisplayName, func(r models.Registration) bool {
		return r.DisplayName() == GiftDisplayName
	}},
	{RulePurpose, func(r models.Registration) bool {
		return r.Purpose != ""
	}},
	{RulePaymentOnly, func(r models.Registration) bool {
		hasPayment := r.TransactionID != "" && !r.AmountPaid.IsZero()
		lacksRegistrationFields := r.UniqueID == "" && r.DTCAttended == "" &&
			r.RecommendedByRole == "" && r.ArrivalTime == ""
		return hasPayment && lacksRegistrationFields
	}},
}

// Classify evaluates the rule chain and reports the first matching rule.
func Classify(reg models.Registration) Result {
	for _, rl := range rules {
		if rl.match(reg) {
			return Result{Matched: true, Rule: rl.name}
		}
	}
	return Result{}
}

// IsGift is the boolean boundary over Classify. It is total: any record,
// including a zero value, yields an answer.
func IsGift(reg models.Registration) bool {
	return Classify(reg).Matched
}

// Partition splits records into registrants and gifts, preserving input order
// on both sides.
func Partition(records []models.Registration) (registrants, gifts []models.Registration) {
	registrants = make([]models.Registration, 0, len(records))
	for _, reg := range records {
		if IsGift(reg) {
			gifts = append(gifts, reg)
			continue
		}
		registrants = append(registrants, reg)
	}
	return registrants, gifts
}
