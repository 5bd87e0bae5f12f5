package types

// Unstake is a one-shot ticket binding an unstake amount to a release time.
// It is immutable once created and destroyed on Withdraw or CancelUnstake.
type Unstake struct {
	Id        uint64 `json:"id"`
	Vault     uint64 `json:"vault"`
	Owner     string `json:"owner"`
	Amount    uint64 `json:"unstake_amount"`
	CreatedAt int64  `json:"created_at"`
	ReleaseAt int64  `json:"release_at"`
}

// Released reports whether the lock has expired.
func (u Unstake) Released(now int64) bool {
	return now >= u.ReleaseAt
}
