package handicap

// maxDifferential bounds the matchup differential used for threshold lookups.
const maxDifferential = 12

// MatchDifferential returns the clamped home and away differentials for a
// matchup. homeTotal already includes the team handicap bonus; the two
// results are symmetric inverses before clamping.
func MatchDifferential(homeTotal, awayTotal int) (int, int) {
	home := clamp(homeTotal-awayTotal, -maxDifferential, maxDifferential)
	away := clamp(awayTotal-homeTotal, -maxDifferential, maxDifferential)
	return home, away
}
