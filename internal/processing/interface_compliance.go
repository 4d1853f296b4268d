package processing

import (
	"bestiary_rankings/internal/bestiary"
)

// Compile-time interface compliance checks
// These will cause compilation errors if the types don't implement the interfaces

var (
	_ bestiary.ProfileAPI         = (*bestiary.Client)(nil)
	_ QualifierInterface          = (*Qualifier)(nil)
	_ LeaderboardBuilderInterface = (*LeaderboardBuilder)(nil)
	_ ErrorLogInterface           = (*ErrorLog)(nil)
)
