package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

// Params holds module-level parameters: the admin allowed to manage configs
// and vault durations, and the closed set of quote denoms a vault's pool
// must carry.
type Params struct {
	Admin      string   `json:"admin"`
	QuoteMints []string `json:"quote_mints"`
}

// DefaultAuthority returns the default module authority (governance module address string)
func DefaultAuthority() string {
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}

// DefaultParams returns default parameters for the stakefee module
func DefaultParams() Params {
	return Params{
		Admin:      DefaultAuthority(),
		QuoteMints: []string{"usol", "uusdc"},
	}
}

// Validate checks parameter sanity.
func (p Params) Validate() error {
	if _, err := sdk.AccAddressFromBech32(p.Admin); err != nil {
		return ErrInvalidAdmin.Wrapf("invalid admin address: %s", p.Admin)
	}
	if len(p.QuoteMints) == 0 {
		return ErrInvalidGenesis.Wrap("quote mint set cannot be empty")
	}
	for _, denom := range p.QuoteMints {
		if err := sdk.ValidateDenom(denom); err != nil {
			return ErrInvalidGenesis.Wrapf("invalid quote mint denom %s", denom)
		}
	}
	return nil
}

// IsQuoteMint reports whether denom belongs to the closed quote set.
func (p Params) IsQuoteMint(denom string) bool {
	for _, q := range p.QuoteMints {
		if q == denom {
			return true
		}
	}
	return false
}
