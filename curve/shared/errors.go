package shared

import "errors"

var (
	// ErrInvalidTradeAmount is returned for a zero amount where a positive one is
	// required, or an output that would consume the whole effective reserve.
	ErrInvalidTradeAmount = errors.New("invalid trade amount")
	// ErrArithmeticOverflow is returned when a result does not fit its type.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
	// ErrInvalidFeeRate is returned when a fee rate is at or above the full scale.
	ErrInvalidFeeRate = errors.New("invalid fee rate")

	ErrInsufficientLiquidity = errors.New("insufficient liquidity")
	ErrPoolComplete          = errors.New("bonding curve is complete")
	ErrExceedsSupply         = errors.New("base reserve would exceed allocated supply")
	ErrInvalidSlippage       = errors.New("invalid slippage")
	ErrSlippageExceeded      = errors.New("slippage tolerance exceeded")
	ErrInvalidAccount        = errors.New("invalid pool account")
	ErrPoolNotFound          = errors.New("pool not found")
)
