package types

// Event types for the AMM module
const (
	EventTypePoolCreated     = "amm_pool_created"
	EventTypeSwap            = "amm_swap"
	EventTypeAddLiquidity    = "amm_add_liquidity"
	EventTypeLiquidityLocked = "amm_liquidity_locked"
	EventTypeFeeAccrued      = "amm_fee_accrued"
	EventTypeLockedFeesClaimed = "amm_locked_fees_claimed"
)

// Event attribute keys for the AMM module
const (
	AttributeKeyPoolID     = "pool_id"
	AttributeKeyCreator    = "creator"
	AttributeKeyTrader     = "trader"
	AttributeKeyProvider   = "provider"
	AttributeKeyRecipient  = "recipient"
	AttributeKeyLockEscrow = "lock_escrow"

	AttributeKeyTokenA   = "token_a"
	AttributeKeyTokenB   = "token_b"
	AttributeKeyTokenIn  = "token_in"
	AttributeKeyTokenOut = "token_out"

	AttributeKeyAmountIn     = "amount_in"
	AttributeKeyAmountOut    = "amount_out"
	AttributeKeyAmountA      = "amount_a"
	AttributeKeyAmountB      = "amount_b"
	AttributeKeyShares       = "shares"
	AttributeKeyLockedShares = "locked_shares"
	AttributeKeyFeeAmount    = "fee_amount"
	AttributeKeyFeeA         = "fee_a"
	AttributeKeyFeeB         = "fee_b"
)
