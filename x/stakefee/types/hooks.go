package types

import (
	"context"
)

// StakefeeHooks defines callbacks other modules can register for top set
// membership changes.
type StakefeeHooks interface {
	// AfterTopSetChanged is called when an owner enters or leaves a vault's
	// top staker set.
	AfterTopSetChanged(ctx context.Context, vaultID uint64, owner string, joined bool) error
}

// MultiStakefeeHooks combines multiple hooks into one that calls all of them.
type MultiStakefeeHooks []StakefeeHooks

// NewMultiStakefeeHooks creates a new MultiStakefeeHooks from a list of hooks.
func NewMultiStakefeeHooks(hooks ...StakefeeHooks) MultiStakefeeHooks {
	return hooks
}

// AfterTopSetChanged calls AfterTopSetChanged on all registered hooks.
func (h MultiStakefeeHooks) AfterTopSetChanged(ctx context.Context, vaultID uint64, owner string, joined bool) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterTopSetChanged(ctx, vaultID, owner, joined); err != nil {
			return err
		}
	}
	return nil
}
