package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MockBankKeeper is a simple in-memory bank for keeper tests. Transfers
// debit the sender and credit the recipient; Fund seeds balances from thin
// air.
type MockBankKeeper struct {
	balances map[string]sdk.Coins
}

// NewMockBankKeeper creates an empty mock bank.
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{balances: make(map[string]sdk.Coins)}
}

// Fund credits an address without a sender.
func (m *MockBankKeeper) Fund(addr sdk.AccAddress, amt sdk.Coins) {
	key := addr.String()
	m.balances[key] = m.balances[key].Add(amt...)
}

// SendCoins moves coins between accounts.
func (m *MockBankKeeper) SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	fromKey := fromAddr.String()
	newFrom, neg := m.balances[fromKey].SafeSub(amt...)
	if neg {
		return sdkerrors.ErrInsufficientFunds.Wrapf("account %s", fromKey)
	}
	m.balances[fromKey] = newFrom
	m.balances[toAddr.String()] = m.balances[toAddr.String()].Add(amt...)
	return nil
}

// GetBalance returns one denom's balance.
func (m *MockBankKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

// GetAllBalances returns all balances of an address.
func (m *MockBankKeeper) GetAllBalances(ctx context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.balances[addr.String()]
}

// TestAddr derives a deterministic bech32 test address from a seed string.
func TestAddr(seed string) sdk.AccAddress {
	bz := make([]byte, 20)
	copy(bz, seed)
	return sdk.AccAddress(bz)
}

// Coins is a shorthand for building a single-denom coin set.
func Coins(denom string, amount uint64) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(denom, math.NewIntFromUint64(amount)))
}
