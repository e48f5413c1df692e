package reward

import "chorepet/internal/model"

// Amounts holds the coin reward per difficulty tier.
type Amounts struct {
	Easy  int `yaml:"easy" json:"easy"`
	Other int `yaml:"other" json:"other"`
}

// Default returns the reference reward amounts.
func Default() Amounts {
	return Amounts{Easy: 5, Other: 15}
}

// For returns the coin reward for a task difficulty. Only "easy" gets the
// smaller amount; every other value is the higher tier.
func (a Amounts) For(difficulty string) int {
	if difficulty == model.DifficultyEasy {
		return a.Easy
	}
	return a.Other
}

// Apply returns balance+delta clamped at zero. Used for rewards (positive
// delta) and spends/penalties (negative delta); the caller persists the
// result.
func Apply(balance, delta int) int {
	next := balance + delta
	if next < 0 {
		return 0
	}
	return next
}
