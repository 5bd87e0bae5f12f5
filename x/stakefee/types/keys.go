package types

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// ModuleNamespace is the namespace byte for the stakefee module (0x07)
	ModuleNamespace = byte(0x07)

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x07, 0x01}

	// ConfigKeyPrefix is the prefix for config template store keys
	ConfigKeyPrefix = []byte{0x07, 0x02}

	// VaultKeyPrefix is the prefix for vault store keys
	VaultKeyPrefix = []byte{0x07, 0x03}

	// VaultCountKey is the key for the next vault ID counter
	VaultCountKey = []byte{0x07, 0x04}

	// VaultByPoolKeyPrefix indexes vaults by their backing pool
	VaultByPoolKeyPrefix = []byte{0x07, 0x05}

	// FullBalanceMetadataKeyPrefix is the prefix for registry metadata keys
	FullBalanceMetadataKeyPrefix = []byte{0x07, 0x06}

	// FullBalanceKeyPrefix is the prefix for registry entry keys
	FullBalanceKeyPrefix = []byte{0x07, 0x07}

	// TopStakerKeyPrefix is the prefix for top staker slot keys
	TopStakerKeyPrefix = []byte{0x07, 0x08}

	// StakeEscrowKeyPrefix is the prefix for stake escrow keys
	StakeEscrowKeyPrefix = []byte{0x07, 0x09}

	// UnstakeKeyPrefix is the prefix for unstake ticket keys
	UnstakeKeyPrefix = []byte{0x07, 0x0A}

	// UnstakeCountKey is the key for the next unstake ID counter
	UnstakeCountKey = []byte{0x07, 0x0B}
)

func uint64Bytes(v uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, v)
	return bz
}

// GetConfigKey returns the store key for a config template
func GetConfigKey(index uint64) []byte {
	return append(ConfigKeyPrefix, uint64Bytes(index)...)
}

// GetVaultKey returns the store key for a vault
func GetVaultKey(vaultID uint64) []byte {
	return append(VaultKeyPrefix, uint64Bytes(vaultID)...)
}

// GetVaultByPoolKey returns the index key mapping a pool to its vault
func GetVaultByPoolKey(poolID uint64) []byte {
	return append(VaultByPoolKeyPrefix, uint64Bytes(poolID)...)
}

// GetFullBalanceMetadataKey returns the store key for a vault's registry metadata
func GetFullBalanceMetadataKey(vaultID uint64) []byte {
	return append(FullBalanceMetadataKeyPrefix, uint64Bytes(vaultID)...)
}

// GetFullBalanceKey returns the store key for one registry entry
func GetFullBalanceKey(vaultID, index uint64) []byte {
	key := append(FullBalanceKeyPrefix, uint64Bytes(vaultID)...)
	return append(key, uint64Bytes(index)...)
}

// GetTopStakerKey returns the store key for one top list slot
func GetTopStakerKey(vaultID, slot uint64) []byte {
	key := append(TopStakerKeyPrefix, uint64Bytes(vaultID)...)
	return append(key, uint64Bytes(slot)...)
}

// GetStakeEscrowKey returns the store key for an owner's escrow in a vault
func GetStakeEscrowKey(vaultID uint64, owner sdk.AccAddress) []byte {
	key := append(StakeEscrowKeyPrefix, uint64Bytes(vaultID)...)
	return append(key, owner.Bytes()...)
}

// GetUnstakeKey returns the store key for an unstake ticket
func GetUnstakeKey(unstakeID uint64) []byte {
	return append(UnstakeKeyPrefix, uint64Bytes(unstakeID)...)
}
