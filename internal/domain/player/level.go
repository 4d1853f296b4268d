package player

// ExpPerLevel is the experience needed for each level above 1
const ExpPerLevel = 400

// LevelFromExp derives a level as floor(exp / 400) + 1.
// A nil experience value is level 1.
func LevelFromExp(exp *int64) int64 {
	if exp == nil {
		return 1
	}
	return floorDiv(*exp, ExpPerLevel) + 1
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
