package types

// Event types for the stakefee module
// All event types use lowercase with underscore separator (module_action format)
const (
	EventTypeVaultCreated             = "stakefee_vault_created"
	EventTypeStakeEscrowCreated       = "stakefee_stake_escrow_created"
	EventTypeConfigCreated            = "stakefee_config_created"
	EventTypeConfigClosed             = "stakefee_config_closed"
	EventTypeUserStake                = "stakefee_user_stake"
	EventTypeUnstakeCreated           = "stakefee_unstake_created"
	EventTypeCancelUnstakeSucceed     = "stakefee_cancel_unstake_succeed"
	EventTypeWithdrawSucceed          = "stakefee_withdraw_succeed"
	EventTypeClaimFeeSucceed          = "stakefee_claim_fee_succeed"
	EventTypeFeeEmission              = "stakefee_fee_emission"
	EventTypeAddNewUserToTopHolder    = "stakefee_add_new_user_to_top_holder"
	EventTypeRemoveUserFromTopHolder  = "stakefee_remove_user_from_top_holder"
	EventTypeReclaimIndex             = "stakefee_reclaim_index"
	EventTypeUpdateUnstakeLockDuration = "stakefee_update_unstake_lock_duration"
	EventTypeUpdateSecondsToFullUnlock = "stakefee_update_seconds_to_full_unlock"
)

// Event attribute keys for the stakefee module
const (
	AttributeKeyVault    = "vault"
	AttributeKeyPool     = "pool"
	AttributeKeyOwner    = "owner"
	AttributeKeyCreator  = "creator"
	AttributeKeyConfig   = "config"
	AttributeKeyEscrow   = "escrow"
	AttributeKeyUnstake  = "unstake"
	AttributeKeyIndex    = "index"

	AttributeKeyStakeMint = "stake_mint"
	AttributeKeyQuoteMint = "quote_mint"
	AttributeKeyTokenA    = "token_a"
	AttributeKeyTokenB    = "token_b"

	AttributeKeyAmount           = "amount"
	AttributeKeyStakeAmount      = "stake_amount"
	AttributeKeyTotalStakeAmount = "total_stake_amount"
	AttributeKeyNewStakeAmount   = "new_stake_escrow_amount"
	AttributeKeyOngoingUnstake   = "new_stake_escrow_ongoing_total_unstake_amount"

	AttributeKeyFeeAPending = "fee_a_pending"
	AttributeKeyFeeBPending = "fee_b_pending"
	AttributeKeyFeeAAmount  = "fee_a_amount"
	AttributeKeyFeeBAmount  = "fee_b_amount"
	AttributeKeyTotalFeeA   = "total_fee_a_amount"
	AttributeKeyTotalFeeB   = "total_fee_b_amount"

	AttributeKeyFeeACheckpoint = "fee_a_per_liquidity_checkpoint"
	AttributeKeyFeeBCheckpoint = "fee_b_per_liquidity_checkpoint"
	AttributeKeyCumulativeFeeA = "cumulative_fee_a_per_liquidity"
	AttributeKeyCumulativeFeeB = "cumulative_fee_b_per_liquidity"

	AttributeKeyTokenAClaimed  = "token_a_claimed"
	AttributeKeyTokenBClaimed  = "token_b_claimed"
	AttributeKeyTokenAReleased = "token_a_released"
	AttributeKeyTokenBReleased = "token_b_released"

	AttributeKeyEffectiveStakeAmount = "effective_stake_amount"
	AttributeKeyTopListLength        = "top_list_length"
	AttributeKeySecondsToFullUnlock  = "seconds_to_full_unlock"
	AttributeKeyUnstakeLockDuration  = "unstake_lock_duration"
	AttributeKeyJoinWindowDuration   = "join_window_duration"

	AttributeKeyStartAt = "start_at"
	AttributeKeyEndAt   = "end_at"
)
