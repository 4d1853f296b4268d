package player

import "bestiary_rankings/internal/app"

// Outcome is the qualification decision for one username
type Outcome int

const (
	// OutcomeUnresolved means the profile could not be fetched this run;
	// the username stays pending.
	OutcomeUnresolved Outcome = iota
	// OutcomeFailed means the API reported no profile for the username.
	OutcomeFailed
	// OutcomeQualified means the maps threshold was met.
	OutcomeQualified
	// OutcomeBelowThreshold means the profile exists but has too few maps.
	OutcomeBelowThreshold
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnresolved:
		return "unresolved"
	case OutcomeFailed:
		return "failed"
	case OutcomeQualified:
		return "qualified"
	case OutcomeBelowThreshold:
		return "below_threshold"
	default:
		return "unknown"
	}
}

// MapsCompleted returns the maps count, treating an absent field as 0
func MapsCompleted(profile *app.Profile) int64 {
	if profile == nil || profile.Maps == nil {
		return 0
	}
	return *profile.Maps
}

// Qualify decides the outcome for a fetched profile. A nil profile means
// the API answered with no profile. A null maps count cannot be compared,
// so the username stays pending.
func Qualify(profile *app.Profile, minMaps int64) Outcome {
	if profile == nil {
		return OutcomeFailed
	}
	if profile.NullMaps {
		return OutcomeUnresolved
	}
	if MapsCompleted(profile) >= minMaps {
		return OutcomeQualified
	}
	return OutcomeBelowThreshold
}
