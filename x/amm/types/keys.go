package types

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// ModuleNamespace is the namespace byte for the AMM module (0x08)
	ModuleNamespace = byte(0x08)

	// PoolKeyPrefix is the prefix for pool store keys
	PoolKeyPrefix = []byte{0x08, 0x01}

	// PoolCountKey is the key for the next pool ID counter
	PoolCountKey = []byte{0x08, 0x02}

	// LiquidityKeyPrefix is the prefix for liquidity position store keys
	LiquidityKeyPrefix = []byte{0x08, 0x03}

	// LockEscrowKeyPrefix is the prefix for lock escrow store keys
	LockEscrowKeyPrefix = []byte{0x08, 0x04}

	// LockEscrowCountKey is the key for the next lock escrow ID counter
	LockEscrowCountKey = []byte{0x08, 0x05}

	// LockEscrowByPoolKeyPrefix indexes lock escrows by pool
	LockEscrowByPoolKeyPrefix = []byte{0x08, 0x06}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x08, 0x07}
)

func uint64Bytes(v uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, v)
	return bz
}

// GetPoolKey returns the store key for a pool
func GetPoolKey(poolID uint64) []byte {
	return append(PoolKeyPrefix, uint64Bytes(poolID)...)
}

// GetLiquidityKey returns the store key for a provider's position
func GetLiquidityKey(poolID uint64, provider sdk.AccAddress) []byte {
	key := append(LiquidityKeyPrefix, uint64Bytes(poolID)...)
	return append(key, provider.Bytes()...)
}

// GetLockEscrowKey returns the store key for a lock escrow
func GetLockEscrowKey(lockEscrowID uint64) []byte {
	return append(LockEscrowKeyPrefix, uint64Bytes(lockEscrowID)...)
}

// GetLockEscrowByPoolKey returns the index key for a pool's lock escrows
func GetLockEscrowByPoolKey(poolID, lockEscrowID uint64) []byte {
	key := append(LockEscrowByPoolKeyPrefix, uint64Bytes(poolID)...)
	return append(key, uint64Bytes(lockEscrowID)...)
}
