// Package credit defines the domain records for scorelens: bureau score
// observations, negative report items, and dispute attempts.
// These types are the shared vocabulary across all packages.
package credit

import (
	"errors"
	"fmt"
	"time"
)

// Score bounds enforced for every observation and every projected score.
const (
	ScoreFloor   = 300
	ScoreCeiling = 850
)

// Sentinel validation errors.
var (
	ErrScoreOutOfRange = errors.New("score outside 300-850 range")
	ErrUnknownBureau   = errors.New("unknown bureau")
	ErrUnknownItemType = errors.New("unknown item type")
)

// Bureau identifies one of the three national credit reporting agencies.
type Bureau string

const (
	BureauExperian   Bureau = "experian"
	BureauEquifax    Bureau = "equifax"
	BureauTransUnion Bureau = "transunion"
)

// AllBureaus returns the bureaus in fixed display order.
func AllBureaus() []Bureau {
	return []Bureau{BureauExperian, BureauEquifax, BureauTransUnion}
}

// ParseBureau validates a raw bureau value.
func ParseBureau(s string) (Bureau, error) {
	b := Bureau(s)
	if !b.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownBureau, s)
	}
	return b, nil
}

// Valid reports whether the bureau is a known enum value.
func (b Bureau) Valid() bool {
	switch b {
	case BureauExperian, BureauEquifax, BureauTransUnion:
		return true
	}
	return false
}

// DisplayName returns the bureau's proper name.
func (b Bureau) DisplayName() string {
	switch b {
	case BureauExperian:
		return "Experian"
	case BureauEquifax:
		return "Equifax"
	case BureauTransUnion:
		return "TransUnion"
	}
	return string(b)
}

// ItemType categorizes a negative report item.
type ItemType string

const (
	ItemLatePayment  ItemType = "late_payment"
	ItemCollection   ItemType = "collection"
	ItemChargeOff    ItemType = "charge_off"
	ItemBankruptcy   ItemType = "bankruptcy"
	ItemForeclosure  ItemType = "foreclosure"
	ItemRepossession ItemType = "repossession"
	ItemInquiry      ItemType = "inquiry"
	ItemOther        ItemType = "other"
)

// AllItemTypes returns the item types in catalog display order.
func AllItemTypes() []ItemType {
	return []ItemType{
		ItemLatePayment,
		ItemCollection,
		ItemChargeOff,
		ItemBankruptcy,
		ItemForeclosure,
		ItemRepossession,
		ItemInquiry,
		ItemOther,
	}
}

// ParseItemType validates a raw item type value.
func ParseItemType(s string) (ItemType, error) {
	t := ItemType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownItemType, s)
	}
	return t, nil
}

// Valid reports whether the item type is a known enum value.
func (t ItemType) Valid() bool {
	switch t {
	case ItemLatePayment, ItemCollection, ItemChargeOff, ItemBankruptcy,
		ItemForeclosure, ItemRepossession, ItemInquiry, ItemOther:
		return true
	}
	return false
}

// ItemStatus tracks where a negative item stands in its lifecycle.
// Status transitions are driven by dispute outcomes upstream; this
// library only reads the status.
type ItemStatus string

const (
	StatusIdentified ItemStatus = "identified"
	StatusDisputing  ItemStatus = "disputing"
	StatusVerified   ItemStatus = "verified"
	StatusUpdated    ItemStatus = "updated"
	StatusDeleted    ItemStatus = "deleted"
)

// DisputeStatus is the recorded state of a single dispute attempt.
type DisputeStatus string

const (
	DisputeSent          DisputeStatus = "sent"
	DisputeInvestigating DisputeStatus = "investigating"
	DisputeVerified      DisputeStatus = "verified"
	DisputeResolved      DisputeStatus = "resolved"
)

// ScoreObservation is a single bureau score reading.
// Observations are immutable once recorded; the series per
// (client, bureau) is append-only.
type ScoreObservation struct {
	ClientID   string    `json:"client_id"`
	Bureau     Bureau    `json:"bureau"`
	Score      int       `json:"score"`
	ObservedAt time.Time `json:"observed_at"`
	Note       string    `json:"note,omitempty"`
}

// NewScoreObservation builds a validated observation.
func NewScoreObservation(clientID string, bureau Bureau, score int, observedAt time.Time) (ScoreObservation, error) {
	o := ScoreObservation{
		ClientID:   clientID,
		Bureau:     bureau,
		Score:      score,
		ObservedAt: observedAt,
	}
	if err := o.Validate(); err != nil {
		return ScoreObservation{}, err
	}
	return o, nil
}

// Validate checks the score range. Enum correctness is the upstream
// validation layer's job; analytics stay resilient to legacy values.
func (o ScoreObservation) Validate() error {
	if o.Score < ScoreFloor || o.Score > ScoreCeiling {
		return fmt.Errorf("%w: got %d", ErrScoreOutOfRange, o.Score)
	}
	return nil
}

// NegativeItem is a derogatory entry on a client's report.
type NegativeItem struct {
	ID           string     `json:"id"`
	ClientID     string     `json:"client_id"`
	Type         ItemType   `json:"item_type"`
	CreditorName string     `json:"creditor_name"`
	Balance      float64    `json:"balance,omitempty"`
	Bureau       Bureau     `json:"bureau"`
	Status       ItemStatus `json:"status"`
	DateOpened   *time.Time `json:"date_opened,omitempty"`
	DateReported *time.Time `json:"date_reported,omitempty"`
}

// Active reports whether the item still weighs on the report.
// Updated and deleted items count as resolved.
func (i NegativeItem) Active() bool {
	return i.Status != StatusUpdated && i.Status != StatusDeleted
}

// AgeMonths returns whole calendar months since the item was opened.
// ok is false when the open date is unknown.
func (i NegativeItem) AgeMonths(now time.Time) (months int, ok bool) {
	if i.DateOpened == nil {
		return 0, false
	}
	opened := *i.DateOpened
	months = (now.Year()-opened.Year())*12 + int(now.Month()) - int(opened.Month())
	if now.Day() < opened.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	return months, true
}

// DisputeAttempt records one dispute sent for an item at a bureau.
// Analytics only count attempts per (item, bureau) and read the last
// recorded status; attempts are never mutated here.
type DisputeAttempt struct {
	ID           string        `json:"id"`
	CreditItemID string        `json:"credit_item_id"`
	Bureau       Bureau        `json:"bureau"`
	Status       DisputeStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}
