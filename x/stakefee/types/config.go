package types

// Config is an admin-owned template used to construct new vaults.
type Config struct {
	Index               uint64 `json:"index"`
	SecondsToFullUnlock uint64 `json:"seconds_to_full_unlock"`
	UnstakeLockDuration uint64 `json:"unstake_lock_duration"`
	// Time window (in seconds) for stakers to stake before the first lock
	// escrow claim fee happens
	JoinWindowDuration uint64 `json:"join_window_duration"`
	TopListLength      uint16 `json:"top_list_length"`
}

// Validate checks every field against the production ranges.
func (c Config) Validate() error {
	if err := ValidateTopListLength(c.TopListLength); err != nil {
		return err
	}
	if err := ValidateSecondsToFullUnlock(c.SecondsToFullUnlock); err != nil {
		return err
	}
	if err := ValidateUnstakeLockDuration(c.UnstakeLockDuration); err != nil {
		return err
	}
	return ValidateJoinWindowDuration(c.JoinWindowDuration)
}

// ValidateTopListLength checks the top list capacity range.
func ValidateTopListLength(length uint16) error {
	if length < MinListLength || length > MaxListLength {
		return ErrInvalidTopListLength.Wrapf("top list length %d not in [%d, %d]", length, MinListLength, MaxListLength)
	}
	return nil
}

// ValidateSecondsToFullUnlock checks the drip window range.
func ValidateSecondsToFullUnlock(seconds uint64) error {
	if seconds < MinSecondsToFullUnlock || seconds > MaxSecondsToFullUnlock {
		return ErrInvalidSecondsToFullUnlock.Wrapf("seconds to full unlock %d not in [%d, %d]", seconds, MinSecondsToFullUnlock, MaxSecondsToFullUnlock)
	}
	return nil
}

// ValidateUnstakeLockDuration checks the unstake lock range.
func ValidateUnstakeLockDuration(seconds uint64) error {
	if seconds < MinUnstakeLockDuration || seconds > MaxUnstakeLockDuration {
		return ErrInvalidUnstakeLockDuration.Wrapf("unstake lock duration %d not in [%d, %d]", seconds, MinUnstakeLockDuration, MaxUnstakeLockDuration)
	}
	return nil
}

// ValidateJoinWindowDuration checks the join window range.
func ValidateJoinWindowDuration(seconds uint64) error {
	if seconds > MaxJoinWindowDuration {
		return ErrInvalidJoinWindowDuration.Wrapf("join window duration %d exceeds %d", seconds, MaxJoinWindowDuration)
	}
	return nil
}
