package model

// Wallet is the single persisted coin balance. Exactly one row exists after
// first boot; Money never goes below zero.
type Wallet struct {
	Money int `json:"money"`
}
