package analytics_test

import (
	"testing"

	"github.com/scorelens/scorelens/pkg/analytics"
	"github.com/scorelens/scorelens/pkg/credit"
)

func TestCompareBureaus(t *testing.T) {
	observations := []credit.ScoreObservation{
		obs(credit.BureauTransUnion, 592, day(2025, 7, 20)),
		obs(credit.BureauExperian, 648, day(2025, 7, 10)),
		obs(credit.BureauEquifax, 601, day(2025, 6, 20)),
	}

	result := analytics.CompareBureaus(observations)

	if len(result.Scores) != 3 {
		t.Fatalf("expected 3 bureau scores, got %d", len(result.Scores))
	}
	wantOrder := []credit.Bureau{credit.BureauExperian, credit.BureauEquifax, credit.BureauTransUnion}
	for i, bs := range result.Scores {
		if bs.Bureau != wantOrder[i] {
			t.Errorf("position %d holds %q, want %q", i, bs.Bureau, wantOrder[i])
		}
	}

	if result.Average != 614 {
		t.Errorf("average %d, want 614", result.Average)
	}
	if result.Max != 648 || result.Min != 592 {
		t.Errorf("max/min %d/%d, want 648/592", result.Max, result.Min)
	}
	if result.Spread != 56 {
		t.Errorf("spread %d, want 56", result.Spread)
	}
	if result.Band != analytics.BandFair {
		t.Errorf("band %q, want %q", result.Band, analytics.BandFair)
	}
}

func TestCompareBureaus_UsesLatestPerBureau(t *testing.T) {
	observations := []credit.ScoreObservation{
		obs(credit.BureauExperian, 500, day(2025, 1, 1)),
		obs(credit.BureauExperian, 700, day(2025, 7, 1)),
	}

	result := analytics.CompareBureaus(observations)

	if len(result.Scores) != 1 {
		t.Fatalf("expected 1 bureau score, got %d", len(result.Scores))
	}
	if result.Scores[0].Score != 700 {
		t.Errorf("score %d, want the latest reading 700", result.Scores[0].Score)
	}
	if result.Spread != 0 {
		t.Errorf("spread %d, want 0 for a single bureau", result.Spread)
	}
}

func TestCompareBureaus_MissingBureauSkipped(t *testing.T) {
	observations := []credit.ScoreObservation{
		obs(credit.BureauExperian, 700, day(2025, 7, 1)),
		obs(credit.BureauTransUnion, 680, day(2025, 7, 2)),
	}

	result := analytics.CompareBureaus(observations)

	if len(result.Scores) != 2 {
		t.Fatalf("expected 2 bureau scores, got %d", len(result.Scores))
	}
	if result.Average != 690 {
		t.Errorf("average %d, want 690 over the reporting bureaus only", result.Average)
	}
}

func TestCompareBureaus_Empty(t *testing.T) {
	result := analytics.CompareBureaus(nil)

	if len(result.Scores) != 0 {
		t.Errorf("expected no scores, got %d", len(result.Scores))
	}
	if result.Average != 0 || result.Max != 0 || result.Min != 0 || result.Spread != 0 {
		t.Errorf("expected zeroed summary, got %+v", result)
	}
	if result.Band != "" {
		t.Errorf("band %q, want empty for no data", result.Band)
	}
}

func TestCompareBureaus_RoundsAverage(t *testing.T) {
	observations := []credit.ScoreObservation{
		obs(credit.BureauExperian, 701, day(2025, 7, 1)),
		obs(credit.BureauEquifax, 700, day(2025, 7, 1)),
	}

	result := analytics.CompareBureaus(observations)

	// 700.5 rounds up.
	if result.Average != 701 {
		t.Errorf("average %d, want 701", result.Average)
	}
}

func TestScoreBandFromScore(t *testing.T) {
	tests := []struct {
		score int
		want  analytics.ScoreBand
	}{
		{850, analytics.BandExcellent},
		{800, analytics.BandExcellent},
		{799, analytics.BandVeryGood},
		{740, analytics.BandVeryGood},
		{739, analytics.BandGood},
		{670, analytics.BandGood},
		{669, analytics.BandFair},
		{580, analytics.BandFair},
		{579, analytics.BandPoor},
		{300, analytics.BandPoor},
	}

	for _, tt := range tests {
		if got := analytics.ScoreBandFromScore(tt.score); got != tt.want {
			t.Errorf("ScoreBandFromScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
