package app

import "encoding/json"

// ProfileResponse represents the batched tRPC response from
// serverSide.profilePageData. The endpoint answers with one element per
// batched call; only the first is used.
type ProfileResponse []ProfileResult

// ProfileResult is a single tRPC call result
type ProfileResult struct {
	Result *struct {
		Data *struct {
			// JSON is null when the username has no profile
			JSON json.RawMessage `json:"json"`
		} `json:"data"`
	} `json:"result"`
}

// Profile holds the profile fields used by the qualification filter and
// the leaderboard. Absent or null fields decode to nil.
type Profile struct {
	Exp             *int64 `json:"exp"`
	Shell           *int64 `json:"shell"`
	Tasks           *int64 `json:"tasks"`
	PlayCount       *int64 `json:"playCount"`
	OwnedOutfits    *int64 `json:"ownedOutfits"`
	PerfectMonsters *int64 `json:"perfectMonsters"`
	BisEquips       *int64 `json:"bisEquips"`
	RankPoints      *int64 `json:"rankPoints"`
	Ticks           *int64 `json:"ticks"`
	Maps            *int64 `json:"maps"`

	// NullMaps is set by the decoder when "maps" is present but null
	NullMaps bool `json:"-"`
}

// RankingEntry represents one leaderboard row
type RankingEntry struct {
	Name            string
	Level           int64
	Exp             *int64
	PlayCount       *int64
	RankPoints      *int64
	Ticks           *int64
	Shell           *int64
	Tasks           *int64
	PerfectMonsters *int64
	BisEquips       *int64
	OwnedOutfits    *int64
}

// QualificationSummary reports the outcome of one qualification run
type QualificationSummary struct {
	Pending    int
	Qualified  []string
	Failed     []string
	Unresolved []string
	Dropped    int
}
