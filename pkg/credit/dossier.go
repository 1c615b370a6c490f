package credit

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Dossier is the point-in-time record snapshot for one client: every
// score observation, negative item, and dispute attempt the record
// store holds for them. Dossiers are immutable once loaded; all
// analytics are read-only derivations over this container.
type Dossier struct {
	ClientID     string             `json:"client_id"`
	Observations []ScoreObservation `json:"observations"`
	Items        []NegativeItem     `json:"items"`
	Disputes     []DisputeAttempt   `json:"disputes"`
	Stats        DossierStats       `json:"stats"`
	CompiledAt   time.Time          `json:"compiled_at"`
}

// DossierStats holds summary counts for a dossier.
type DossierStats struct {
	ObservationCount int `json:"observation_count"`
	ItemCount        int `json:"item_count"`
	DisputeCount     int `json:"dispute_count"`
}

// Normalize sorts the record series chronologically, assigns IDs to
// records missing one, and recomputes Stats. Safe to call repeatedly.
func (d *Dossier) Normalize() {
	sort.SliceStable(d.Observations, func(i, j int) bool {
		return d.Observations[i].ObservedAt.Before(d.Observations[j].ObservedAt)
	})
	sort.SliceStable(d.Disputes, func(i, j int) bool {
		return d.Disputes[i].CreatedAt.Before(d.Disputes[j].CreatedAt)
	})

	for i := range d.Items {
		if d.Items[i].ID == "" {
			d.Items[i].ID = uuid.New().String()
		}
	}
	for i := range d.Disputes {
		if d.Disputes[i].ID == "" {
			d.Disputes[i].ID = uuid.New().String()
		}
	}

	d.Stats = DossierStats{
		ObservationCount: len(d.Observations),
		ItemCount:        len(d.Items),
		DisputeCount:     len(d.Disputes),
	}
}

// Validate checks every observation against the score range.
func (d *Dossier) Validate() error {
	for _, o := range d.Observations {
		if err := o.Validate(); err != nil {
			return fmt.Errorf("observation %s/%s: %w", o.Bureau, o.ObservedAt.Format("2006-01-02"), err)
		}
	}
	return nil
}

// ObservationsFor returns the bureau's observations ascending by date.
func (d *Dossier) ObservationsFor(b Bureau) []ScoreObservation {
	var out []ScoreObservation
	for _, o := range d.Observations {
		if o.Bureau == b {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ObservedAt.Before(out[j].ObservedAt)
	})
	return out
}

// LatestPerBureau returns the most recent observation per bureau.
// Ties on the observed date keep the record appearing later in the
// series.
func (d *Dossier) LatestPerBureau() map[Bureau]ScoreObservation {
	latest := make(map[Bureau]ScoreObservation)
	for _, o := range d.Observations {
		cur, ok := latest[o.Bureau]
		if !ok || !o.ObservedAt.Before(cur.ObservedAt) {
			latest[o.Bureau] = o
		}
	}
	return latest
}

// ActiveItems returns the items still weighing on the report.
func (d *Dossier) ActiveItems() []NegativeItem {
	var out []NegativeItem
	for _, item := range d.Items {
		if item.Active() {
			out = append(out, item)
		}
	}
	return out
}

// AttemptsFor returns the dispute attempts for an (item, bureau) pair,
// ascending by creation time.
func (d *Dossier) AttemptsFor(itemID string, b Bureau) []DisputeAttempt {
	var out []DisputeAttempt
	for _, a := range d.Disputes {
		if a.CreditItemID == itemID && a.Bureau == b {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// DisputesInWindow counts the client's dispute attempts created in
// [from, to], across all items and bureaus.
func (d *Dossier) DisputesInWindow(from, to time.Time) int {
	n := 0
	for _, a := range d.Disputes {
		if !a.CreatedAt.Before(from) && !a.CreatedAt.After(to) {
			n++
		}
	}
	return n
}
