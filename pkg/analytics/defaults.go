package analytics

// DefaultChecks returns the standard set of anomaly checks with default
// thresholds.
func DefaultChecks() []Check {
	return ChecksFrom(DefaultThresholds())
}

// ChecksFrom builds the check set from explicit thresholds.
func ChecksFrom(t Thresholds) []Check {
	return []Check{
		&SuddenDropCheck{
			WarningDrop:  t.DropWarning,
			CriticalDrop: t.DropCritical,
		},
		&InconsistencyCheck{
			WarningSpread:  t.SpreadWarning,
			CriticalSpread: t.SpreadCritical,
		},
		&StagnationCheck{
			MaxRange:   t.StagnationRange,
			MinSamples: t.StagnationMinSamples,
		},
		&ExpirationCheck{
			InfoMonths:     t.ExpirationInfoMonths,
			CriticalMonths: t.ExpirationCriticalMonths,
		},
	}
}
