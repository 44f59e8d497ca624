package rrdb

// validateArchives enforces the multi-archive compatibility rules over specs already sorted
// ascending by SecondsPerPoint, returning a descriptive ConfigError on the
// first violation found when scanning adjacent pairs finest-to-coarsest.
func validateArchives(sorted []ArchiveSpec) error {
	if len(sorted) == 0 {
		return configErrorf(nil, "at least one archive is required")
	}
	for i, s := range sorted {
		if s.SecondsPerPoint == 0 {
			return configErrorf(nil, "archive%d must have a precision greater than 0 seconds", i)
		}
	}

	for i := 0; i < len(sorted)-1; i++ {
		a, b := sorted[i], sorted[i+1]

		if !(a.SecondsPerPoint < b.SecondsPerPoint) {
			return configErrorf(nil,
				"a database may not have two archives with the same precision (archive%d: %ds, archive%d: %ds)",
				i, a.SecondsPerPoint, i+1, b.SecondsPerPoint)
		}

		if b.SecondsPerPoint%a.SecondsPerPoint != 0 {
			return configErrorf(nil,
				"higher precision archives' precision must evenly divide lower precision archives' precision (archive%d: %ds, archive%d: %ds)",
				i, a.SecondsPerPoint, i+1, b.SecondsPerPoint)
		}

		aRetention := uint64(a.SecondsPerPoint) * uint64(a.Points)
		bRetention := uint64(b.SecondsPerPoint) * uint64(b.Points)
		if aRetention > bRetention {
			return configErrorf(nil,
				"lower precision archives must cover larger time intervals than higher precision archives (archive%d: %ds, archive%d: %ds)",
				i, aRetention, i+1, bRetention)
		}

		k := b.SecondsPerPoint / a.SecondsPerPoint
		if a.Points < k {
			return configErrorf(nil,
				"archive%d must have enough points to consolidate into archive%d (needs >= %d, has %d)",
				i, i+1, k, a.Points)
		}
	}
	return nil
}
