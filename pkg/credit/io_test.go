package credit

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func testdataPath(name string) string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..", "testdata", name)
}

func TestLoadDossier_Testdata(t *testing.T) {
	d, err := LoadDossier(testdataPath("dossier_sample.json"))
	if err != nil {
		t.Fatalf("loading sample dossier: %v", err)
	}

	if d.ClientID != "cl-3021" {
		t.Errorf("client id = %s, want cl-3021", d.ClientID)
	}
	if d.Stats.ObservationCount != 11 {
		t.Errorf("observation count = %d, want 11", d.Stats.ObservationCount)
	}
	if d.Stats.ItemCount != 4 {
		t.Errorf("item count = %d, want 4", d.Stats.ItemCount)
	}
	if d.Stats.DisputeCount != 2 {
		t.Errorf("dispute count = %d, want 2", d.Stats.DisputeCount)
	}
	if len(d.ActiveItems()) != 3 {
		t.Errorf("active items = %d, want 3", len(d.ActiveItems()))
	}
}

func TestSaveLoadDossier_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "dossier.json")

	opened := time.Date(2020, 2, 10, 0, 0, 0, 0, time.UTC)
	d := &Dossier{
		ClientID: "cl-9",
		Observations: []ScoreObservation{
			{ClientID: "cl-9", Bureau: BureauTransUnion, Score: 702, ObservedAt: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)},
		},
		Items: []NegativeItem{
			{ID: "i-1", ClientID: "cl-9", Type: ItemRepossession, CreditorName: "Lakeshore Auto", Balance: 8400.50, Bureau: BureauTransUnion, Status: StatusIdentified, DateOpened: &opened},
		},
		CompiledAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := SaveDossier(path, d); err != nil {
		t.Fatalf("SaveDossier: %v", err)
	}

	loaded, err := LoadDossier(path)
	if err != nil {
		t.Fatalf("LoadDossier: %v", err)
	}
	if loaded.ClientID != "cl-9" {
		t.Errorf("client id = %s, want cl-9", loaded.ClientID)
	}
	if loaded.Items[0].Balance != 8400.50 {
		t.Errorf("balance = %f, want 8400.50", loaded.Items[0].Balance)
	}
	if loaded.Items[0].DateOpened == nil || !loaded.Items[0].DateOpened.Equal(opened) {
		t.Error("open date did not survive the round trip")
	}
	if loaded.Stats.ObservationCount != 1 {
		t.Errorf("stats not recomputed on load: %+v", loaded.Stats)
	}
}

func TestLoadDossier_Missing(t *testing.T) {
	_, err := LoadDossier(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadDossier_RejectsOutOfRangeScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	raw := `{
  "client_id": "cl-2",
  "observations": [
    {"client_id": "cl-2", "bureau": "experian", "score": 900, "observed_at": "2025-01-01T00:00:00Z"}
  ]
}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write test dossier: %v", err)
	}

	_, err := LoadDossier(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, ErrScoreOutOfRange) {
		t.Errorf("expected ErrScoreOutOfRange, got %v", err)
	}
}

func TestLoadDossier_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}

	_, err := LoadDossier(path)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
