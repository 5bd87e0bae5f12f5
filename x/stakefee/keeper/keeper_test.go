package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"

	keepertest "github.com/stakefee-chain/stakefee/testutil/keeper"
	"github.com/stakefee-chain/stakefee/x/stakefee/keeper"
)

// testEnv bundles the fixture pieces most keeper tests need.
type testEnv struct {
	k    keeper.Keeper
	bank *keepertest.MockBankKeeper
	amm  *keepertest.MockAmmKeeper
	ctx  sdk.Context
}

func newTestEnv(t *testing.T) testEnv {
	k, bank, amm, ctx := keepertest.StakefeeKeeper(t)
	return testEnv{k: k, bank: bank, amm: amm, ctx: ctx}
}
