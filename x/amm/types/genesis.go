package types

// GenesisState holds the exported state of the amm module.
type GenesisState struct {
	Params           Params       `json:"params"`
	Pools            []Pool       `json:"pools"`
	LockEscrows      []LockEscrow `json:"lock_escrows"`
	NextPoolId       uint64       `json:"next_pool_id"`
	NextLockEscrowId uint64       `json:"next_lock_escrow_id"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seenPools := make(map[uint64]bool)
	for _, pool := range gs.Pools {
		if pool.Id == 0 {
			return ErrInvalidGenesis.Wrap("pool id cannot be zero")
		}
		if seenPools[pool.Id] {
			return ErrInvalidGenesis.Wrapf("duplicate pool id %d", pool.Id)
		}
		seenPools[pool.Id] = true
		if pool.TokenA == pool.TokenB {
			return ErrInvalidGenesis.Wrapf("pool %d tokens must differ", pool.Id)
		}
		if pool.ReserveA.IsNil() || !pool.ReserveA.IsPositive() ||
			pool.ReserveB.IsNil() || !pool.ReserveB.IsPositive() {
			return ErrInvalidGenesis.Wrapf("pool %d reserves must be positive", pool.Id)
		}
		if pool.TotalShares.IsNil() || !pool.TotalShares.IsPositive() {
			return ErrInvalidGenesis.Wrapf("pool %d total shares must be positive", pool.Id)
		}
	}

	seenEscrows := make(map[uint64]bool)
	for _, escrow := range gs.LockEscrows {
		if seenEscrows[escrow.Id] {
			return ErrInvalidGenesis.Wrapf("duplicate lock escrow id %d", escrow.Id)
		}
		seenEscrows[escrow.Id] = true
		if !seenPools[escrow.PoolId] {
			return ErrInvalidGenesis.Wrapf("lock escrow %d references unknown pool %d", escrow.Id, escrow.PoolId)
		}
		if escrow.LockedShares.IsNil() || escrow.LockedShares.IsNegative() {
			return ErrInvalidGenesis.Wrapf("lock escrow %d has invalid locked shares", escrow.Id)
		}
	}

	return nil
}
