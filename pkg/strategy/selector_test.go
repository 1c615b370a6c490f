package strategy_test

import (
	"testing"

	"github.com/scorelens/scorelens/pkg/credit"
	"github.com/scorelens/scorelens/pkg/strategy"
)

func TestSelectStrategy_FirstRoundUsesPrimary(t *testing.T) {
	rec := strategy.SelectStrategy(credit.ItemCollection, credit.BureauEquifax, 1, strategy.OutcomeNone)

	if rec.Recommended != strategy.DisputeNotMine {
		t.Errorf("recommended %q, want %q", rec.Recommended, strategy.DisputeNotMine)
	}
	if rec.Round.Round != 1 || rec.Round.Name != "Initial Dispute" {
		t.Errorf("unexpected round %+v", rec.Round)
	}
	if rec.Bureau == nil {
		t.Fatal("expected a bureau profile for equifax")
	}
	if rec.Bureau.Name != "Equifax" {
		t.Errorf("bureau profile %q", rec.Bureau.Name)
	}
}

func TestSelectStrategy_VerifiedSwitchesToFirstAlternative(t *testing.T) {
	tests := []struct {
		itemType credit.ItemType
		want     strategy.DisputeType
	}{
		{credit.ItemCollection, strategy.DisputeDebtValidation},
		{credit.ItemLatePayment, strategy.DisputeGoodwillAdjustment},
		{credit.ItemChargeOff, strategy.DisputeNotMine},
		{credit.ItemBankruptcy, strategy.DisputeInaccurateInfo},
	}

	for _, tt := range tests {
		rec := strategy.SelectStrategy(tt.itemType, credit.BureauExperian, 2, strategy.OutcomeVerified)
		if rec.Recommended != tt.want {
			t.Errorf("%s round 2 after verification: recommended %q, want %q", tt.itemType, rec.Recommended, tt.want)
		}
	}
}

func TestSelectStrategy_ResolvedKeepsPrimary(t *testing.T) {
	rec := strategy.SelectStrategy(credit.ItemCollection, credit.BureauEquifax, 2, strategy.OutcomeResolved)
	if rec.Recommended != strategy.DisputeNotMine {
		t.Errorf("round 2 after resolution: recommended %q, want primary %q", rec.Recommended, strategy.DisputeNotMine)
	}
}

func TestSelectStrategy_LateRoundsForceInaccurateInfo(t *testing.T) {
	for _, it := range credit.AllItemTypes() {
		for _, round := range []int{3, 4} {
			rec := strategy.SelectStrategy(it, credit.BureauTransUnion, round, strategy.OutcomeVerified)
			if rec.Recommended != strategy.DisputeInaccurateInfo {
				t.Errorf("%s round %d: recommended %q, want %q", it, round, rec.Recommended, strategy.DisputeInaccurateInfo)
			}
		}
	}
}

func TestSelectStrategy_UnknownItemTypeFallsBack(t *testing.T) {
	rec := strategy.SelectStrategy(credit.ItemType("tax_lien"), credit.BureauExperian, 1, strategy.OutcomeNone)

	if rec.ItemType != credit.ItemType("tax_lien") {
		t.Errorf("request item type not preserved: %q", rec.ItemType)
	}
	if rec.Strategy.ItemType != credit.ItemOther {
		t.Errorf("resolved playbook entry %q, want %q", rec.Strategy.ItemType, credit.ItemOther)
	}
	if rec.Recommended != strategy.DisputeInaccurateInfo {
		t.Errorf("recommended %q, want the fallback primary", rec.Recommended)
	}
}

func TestSelectStrategy_UnknownBureauHasNilProfile(t *testing.T) {
	rec := strategy.SelectStrategy(credit.ItemCollection, credit.Bureau("innovis"), 1, strategy.OutcomeNone)
	if rec.Bureau != nil {
		t.Errorf("expected nil profile for unknown bureau, got %+v", rec.Bureau)
	}
}

func TestSelectStrategy_RoundClamped(t *testing.T) {
	low := strategy.SelectStrategy(credit.ItemCollection, credit.BureauEquifax, 0, strategy.OutcomeNone)
	if low.Round.Round != 1 {
		t.Errorf("round 0 resolved to %d, want 1", low.Round.Round)
	}

	high := strategy.SelectStrategy(credit.ItemCollection, credit.BureauEquifax, 9, strategy.OutcomeVerified)
	if high.Round.Round != 4 || !high.Round.Terminal {
		t.Errorf("round 9 resolved to %+v, want terminal round 4", high.Round)
	}
}

func TestSelectStrategy_EmptyOutcomeTreatedAsNone(t *testing.T) {
	rec := strategy.SelectStrategy(credit.ItemCollection, credit.BureauEquifax, 1, "")
	if rec.PreviousResult != strategy.OutcomeNone {
		t.Errorf("previous result %q, want %q", rec.PreviousResult, strategy.OutcomeNone)
	}
	if rec.Recommended != strategy.DisputeNotMine {
		t.Errorf("recommended %q, want primary", rec.Recommended)
	}
}
