// Package strategy implements the dispute-strategy core: the static
// item-type and bureau catalogs, the round escalation state machine,
// the strategy selector, and the shared score-improvement estimator.
package strategy

import "github.com/scorelens/scorelens/pkg/credit"

// DisputeType is the legal argument a dispute letter leads with.
type DisputeType string

const (
	DisputeNotMine             DisputeType = "not_mine"
	DisputeInaccurateInfo      DisputeType = "inaccurate_info"
	DisputeOutdatedInfo        DisputeType = "outdated_info"
	DisputeIdentityTheft       DisputeType = "identity_theft"
	DisputeDebtValidation      DisputeType = "debt_validation"
	DisputeGoodwillAdjustment  DisputeType = "goodwill_adjustment"
	DisputeIncorrectBalance    DisputeType = "incorrect_balance"
	DisputeUnauthorizedInquiry DisputeType = "unauthorized_inquiry"
	DisputePaidInFull          DisputeType = "paid_in_full"
)

// Label returns a display name for the dispute type.
func (t DisputeType) Label() string {
	switch t {
	case DisputeNotMine:
		return "Not Mine"
	case DisputeInaccurateInfo:
		return "Inaccurate Information"
	case DisputeOutdatedInfo:
		return "Outdated Information"
	case DisputeIdentityTheft:
		return "Identity Theft"
	case DisputeDebtValidation:
		return "Debt Validation"
	case DisputeGoodwillAdjustment:
		return "Goodwill Adjustment"
	case DisputeIncorrectBalance:
		return "Incorrect Balance"
	case DisputeUnauthorizedInquiry:
		return "Unauthorized Inquiry"
	case DisputePaidInFull:
		return "Paid In Full"
	}
	return string(t)
}

// Range is an estimated score gain in points.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ItemTypeStrategy is one entry of the static dispute playbook: how to
// attack a category of negative item, what it is worth, and the law
// behind the attack. Entries are versioned reference data, never
// derived from request state.
type ItemTypeStrategy struct {
	ItemType     credit.ItemType `json:"item_type"`
	Name         string          `json:"name"`
	Primary      DisputeType     `json:"primary"`
	Alternatives []DisputeType   `json:"alternatives"`
	Impact       Range           `json:"impact"` // base gain before adjustment
	Tips         []string        `json:"tips"`
	Citations    []string        `json:"citations"`
}

// BureauProfile documents a bureau's known procedural weaknesses and
// the tactics that exploit them.
type BureauProfile struct {
	Bureau     credit.Bureau `json:"bureau"`
	Name       string        `json:"name"`
	Weaknesses []string      `json:"weaknesses"`
	Tactics    []string      `json:"tactics"`
}
