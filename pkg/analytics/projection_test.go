package analytics_test

import (
	"testing"

	"github.com/scorelens/scorelens/pkg/analytics"
	"github.com/scorelens/scorelens/pkg/credit"
	"github.com/scorelens/scorelens/pkg/strategy"
)

func item(id string, itemType credit.ItemType, status credit.ItemStatus) credit.NegativeItem {
	return credit.NegativeItem{
		ID:       id,
		ClientID: "cl-test",
		Type:     itemType,
		Bureau:   credit.BureauEquifax,
		Status:   status,
	}
}

func TestProjectImprovement_RanksByAdjustedMax(t *testing.T) {
	items := []credit.NegativeItem{
		item("item-lp", credit.ItemLatePayment, credit.StatusIdentified),
		item("item-ce", credit.ItemCollection, credit.StatusDisputing),
		item("item-co", credit.ItemChargeOff, credit.StatusVerified),
	}

	report := analytics.ProjectImprovement(items, 614)

	if report.ActiveItemCount != 3 {
		t.Fatalf("active count %d, want 3", report.ActiveItemCount)
	}
	if report.CurrentBand != analytics.BandFair {
		t.Errorf("current band %q, want %q", report.CurrentBand, analytics.BandFair)
	}
	wantOrder := []string{"item-co", "item-ce", "item-lp"}
	for i, impact := range report.Items {
		if impact.ItemID != wantOrder[i] {
			t.Errorf("position %d holds %s, want %s", i, impact.ItemID, wantOrder[i])
		}
	}
	if len(report.TopPriorities) != 3 {
		t.Fatalf("expected 3 top priorities, got %d", len(report.TopPriorities))
	}
	for i, impact := range report.TopPriorities {
		if impact.ItemID != wantOrder[i] {
			t.Errorf("top priority %d is %s, want %s", i, impact.ItemID, wantOrder[i])
		}
	}

	// 614 sits in the 580-649 band: base impacts scale by 1.1.
	wantEstimates := map[string]strategy.Range{
		"item-co": {Min: 55, Max: 99},
		"item-ce": {Min: 44, Max: 88},
		"item-lp": {Min: 22, Max: 44},
	}
	wantPriorities := map[string]analytics.Priority{
		"item-co": analytics.PriorityCritical,
		"item-ce": analytics.PriorityCritical,
		"item-lp": analytics.PriorityHigh,
	}
	for _, impact := range report.Items {
		if impact.Estimate != wantEstimates[impact.ItemID] {
			t.Errorf("%s estimate %+v, want %+v", impact.ItemID, impact.Estimate, wantEstimates[impact.ItemID])
		}
		if impact.Priority != wantPriorities[impact.ItemID] {
			t.Errorf("%s priority %q, want %q", impact.ItemID, impact.Priority, wantPriorities[impact.ItemID])
		}
	}
}

func TestProjectImprovement_Timeline(t *testing.T) {
	items := []credit.NegativeItem{
		item("item-lp", credit.ItemLatePayment, credit.StatusIdentified),
		item("item-ce", credit.ItemCollection, credit.StatusDisputing),
		item("item-co", credit.ItemChargeOff, credit.StatusVerified),
	}

	report := analytics.ProjectImprovement(items, 614)

	if len(report.Timeline) != 3 {
		t.Fatalf("expected 3 timeline steps, got %d", len(report.Timeline))
	}
	wantScores := []int{691, 757, 790}
	wantGains := []int{77, 66, 33}
	for i, step := range report.Timeline {
		if step.Step != i+1 {
			t.Errorf("step %d numbered %d", i, step.Step)
		}
		if step.Gain != wantGains[i] {
			t.Errorf("step %d gain %d, want %d", step.Step, step.Gain, wantGains[i])
		}
		if step.ProjectedScore != wantScores[i] {
			t.Errorf("step %d projects %d, want %d", step.Step, step.ProjectedScore, wantScores[i])
		}
	}

	if report.BestCase != 845 {
		t.Errorf("best case %d, want 845", report.BestCase)
	}
	if report.Conservative != 735 {
		t.Errorf("conservative %d, want 735", report.Conservative)
	}
}

func TestProjectImprovement_TimelineCapped(t *testing.T) {
	items := []credit.NegativeItem{
		item("a", credit.ItemCollection, credit.StatusIdentified),
		item("b", credit.ItemCollection, credit.StatusIdentified),
		item("c", credit.ItemCollection, credit.StatusIdentified),
		item("d", credit.ItemCollection, credit.StatusIdentified),
		item("e", credit.ItemCollection, credit.StatusIdentified),
	}

	report := analytics.ProjectImprovement(items, 600)

	if len(report.Items) != 5 {
		t.Errorf("expected all 5 items ranked, got %d", len(report.Items))
	}
	if len(report.TopPriorities) != 3 {
		t.Errorf("top priorities should hold the best 3 items, got %d", len(report.TopPriorities))
	}
	if len(report.Timeline) != 3 {
		t.Errorf("timeline should stop at the top 3 items, got %d steps", len(report.Timeline))
	}
}

func TestProjectImprovement_ClampsAtCeiling(t *testing.T) {
	items := []credit.NegativeItem{
		item("bk-1", credit.ItemBankruptcy, credit.StatusIdentified),
		item("bk-2", credit.ItemBankruptcy, credit.StatusIdentified),
	}

	report := analytics.ProjectImprovement(items, 800)

	if report.BestCase != credit.ScoreCeiling {
		t.Errorf("best case %d, want clamped to %d", report.BestCase, credit.ScoreCeiling)
	}
	if report.Conservative != credit.ScoreCeiling {
		t.Errorf("conservative %d, want clamped to %d", report.Conservative, credit.ScoreCeiling)
	}
	for _, step := range report.Timeline {
		if step.ProjectedScore > credit.ScoreCeiling {
			t.Errorf("step %d projects %d above the ceiling", step.Step, step.ProjectedScore)
		}
	}
}

func TestProjectImprovement_SkipsResolvedItems(t *testing.T) {
	items := []credit.NegativeItem{
		item("active", credit.ItemCollection, credit.StatusIdentified),
		item("deleted", credit.ItemCollection, credit.StatusDeleted),
		item("updated", credit.ItemChargeOff, credit.StatusUpdated),
	}

	report := analytics.ProjectImprovement(items, 600)

	if report.ActiveItemCount != 1 {
		t.Errorf("active count %d, want 1", report.ActiveItemCount)
	}
	if len(report.Items) != 1 || report.Items[0].ItemID != "active" {
		t.Errorf("ranked items %+v, want only the active one", report.Items)
	}
}

func TestProjectImprovement_DilutionByActiveCount(t *testing.T) {
	var items []credit.NegativeItem
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		items = append(items, item(id, credit.ItemInquiry, credit.StatusIdentified))
	}

	report := analytics.ProjectImprovement(items, 700)

	// Six active items: inquiry base 5-15 scaled by 0.85.
	want := strategy.Range{Min: 4, Max: 13}
	for _, impact := range report.Items {
		if impact.Estimate != want {
			t.Errorf("%s estimate %+v, want %+v", impact.ItemID, impact.Estimate, want)
		}
		if impact.Priority != analytics.PriorityMedium {
			t.Errorf("%s priority %q, want medium", impact.ItemID, impact.Priority)
		}
	}
}

func TestProjectImprovement_StableOnTies(t *testing.T) {
	items := []credit.NegativeItem{
		item("first", credit.ItemCollection, credit.StatusIdentified),
		item("second", credit.ItemCollection, credit.StatusIdentified),
	}

	report := analytics.ProjectImprovement(items, 700)

	if report.Items[0].ItemID != "first" || report.Items[1].ItemID != "second" {
		t.Errorf("equal estimates should keep input order, got %s then %s",
			report.Items[0].ItemID, report.Items[1].ItemID)
	}
}

func TestProjectImprovement_Empty(t *testing.T) {
	report := analytics.ProjectImprovement(nil, 640)

	if report.ActiveItemCount != 0 || len(report.Items) != 0 || len(report.Timeline) != 0 {
		t.Errorf("expected an empty projection, got %+v", report)
	}
	if len(report.TopPriorities) != 0 {
		t.Errorf("expected no top priorities, got %d", len(report.TopPriorities))
	}
	if report.BestCase != 640 || report.Conservative != 640 {
		t.Errorf("best/conservative %d/%d, want the current score unchanged", report.BestCase, report.Conservative)
	}
	if report.CurrentBand != analytics.BandFair {
		t.Errorf("current band %q, want %q", report.CurrentBand, analytics.BandFair)
	}

	noScores := analytics.ProjectImprovement(nil, 0)
	if noScores.CurrentBand != "" {
		t.Errorf("band without observed scores = %q, want empty", noScores.CurrentBand)
	}
}
