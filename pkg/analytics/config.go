package analytics

// Thresholds holds the tuning knobs for all anomaly checks.
type Thresholds struct {
	// Scan window
	WindowDays int // lookback for drop and stagnation checks

	// Sudden drop
	DropWarning  int // flag drops larger than this between readings
	DropCritical int // escalate drops larger than this

	// Bureau inconsistency
	SpreadWarning  int // flag when latest scores disagree by more than this
	SpreadCritical int // escalate past this spread

	// Stagnation
	StagnationRange      int // flag when the in-window range stays below this
	StagnationMinSamples int // minimum readings required in the window

	// Item expiration
	ExpirationInfoMonths     int // surface items at this age
	ExpirationCriticalMonths int // escalate items at this age
}

// DefaultThresholds returns the standard check thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		WindowDays: 90,

		DropWarning:  30,
		DropCritical: 60,

		SpreadWarning:  40,
		SpreadCritical: 80,

		StagnationRange:      10,
		StagnationMinSamples: 2,

		ExpirationInfoMonths:     78,
		ExpirationCriticalMonths: 82,
	}
}
