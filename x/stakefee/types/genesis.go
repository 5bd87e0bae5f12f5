package types

// GenesisState holds the full exported state of the stakefee module.
type GenesisState struct {
	Params           Params                    `json:"params"`
	Configs          []Config                  `json:"configs"`
	Vaults           []FeeVault                `json:"vaults"`
	FullBalanceLists []GenesisFullBalanceList  `json:"full_balance_lists"`
	TopStakerLists   []GenesisTopStakerList    `json:"top_staker_lists"`
	StakeEscrows     []StakeEscrow             `json:"stake_escrows"`
	Unstakes         []Unstake                 `json:"unstakes"`
	NextVaultId      uint64                    `json:"next_vault_id"`
	NextUnstakeId    uint64                    `json:"next_unstake_id"`
}

// GenesisFullBalanceList is one vault's registry snapshot.
type GenesisFullBalanceList struct {
	Vault    uint64          `json:"vault"`
	Balances []StakerBalance `json:"balances"`
}

// GenesisTopStakerList is one vault's top list snapshot, empty slots included.
type GenesisTopStakerList struct {
	Vault uint64           `json:"vault"`
	Slots []StakerMetadata `json:"slots"`
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

	seenConfigs := make(map[uint64]bool)
	for _, cfg := range gs.Configs {
		if seenConfigs[cfg.Index] {
			return ErrInvalidGenesis.Wrapf("duplicate config index %d", cfg.Index)
		}
		seenConfigs[cfg.Index] = true
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	seenVaults := make(map[uint64]bool)
	seenPools := make(map[uint64]bool)
	for _, vault := range gs.Vaults {
		if seenVaults[vault.Id] {
			return ErrInvalidGenesis.Wrapf("duplicate vault id %d", vault.Id)
		}
		seenVaults[vault.Id] = true
		if seenPools[vault.Pool] {
			return ErrInvalidGenesis.Wrapf("multiple vaults for pool %d", vault.Pool)
		}
		seenPools[vault.Pool] = true

		info := vault.TopStakerInfo
		if info.CurrentLength > info.TopListLength {
			return ErrInvalidGenesis.Wrapf("vault %d current length %d exceeds capacity %d", vault.Id, info.CurrentLength, info.TopListLength)
		}
		if info.CumulativeFeeAPerLiquidity.IsNil() || info.CumulativeFeeAPerLiquidity.IsNegative() {
			return ErrInvalidGenesis.Wrapf("vault %d has invalid cumulative fee a index", vault.Id)
		}
		if info.CumulativeFeeBPerLiquidity.IsNil() || info.CumulativeFeeBPerLiquidity.IsNegative() {
			return ErrInvalidGenesis.Wrapf("vault %d has invalid cumulative fee b index", vault.Id)
		}
	}

	// Per-vault stake consistency: metrics.total_staked = sum escrow stake
	// + sum ongoing unstake.
	stakeByVault := make(map[uint64]uint64)
	for _, escrow := range gs.StakeEscrows {
		if !seenVaults[escrow.Vault] {
			return ErrInvalidGenesis.Wrapf("escrow of %s references unknown vault %d", escrow.Owner, escrow.Vault)
		}
		if escrow.FeeAPerLiquidityCheckpoint.IsNil() || escrow.FeeBPerLiquidityCheckpoint.IsNil() {
			return ErrInvalidGenesis.Wrapf("escrow of %s has nil checkpoint", escrow.Owner)
		}
		stakeByVault[escrow.Vault] += escrow.StakeAmount + escrow.OngoingTotalPartialUnstakeAmount
	}
	for _, vault := range gs.Vaults {
		if stakeByVault[vault.Id] != vault.Metrics.TotalStakedAmount {
			return ErrInvalidGenesis.Wrapf("vault %d total staked %d does not match escrow sum %d",
				vault.Id, vault.Metrics.TotalStakedAmount, stakeByVault[vault.Id])
		}
	}

	for _, unstake := range gs.Unstakes {
		if !seenVaults[unstake.Vault] {
			return ErrInvalidGenesis.Wrapf("unstake %d references unknown vault %d", unstake.Id, unstake.Vault)
		}
		if unstake.ReleaseAt < unstake.CreatedAt {
			return ErrInvalidGenesis.Wrapf("unstake %d releases before creation", unstake.Id)
		}
	}

	for _, list := range gs.TopStakerLists {
		if !seenVaults[list.Vault] {
			return ErrInvalidGenesis.Wrapf("top staker list references unknown vault %d", list.Vault)
		}
	}
	for _, list := range gs.FullBalanceLists {
		if !seenVaults[list.Vault] {
			return ErrInvalidGenesis.Wrapf("full balance list references unknown vault %d", list.Vault)
		}
		if uint64(len(list.Balances)) > FullBalanceListHardLimit {
			return ErrInvalidGenesis.Wrapf("full balance list of vault %d exceeds hard limit", list.Vault)
		}
	}

	return nil
}
