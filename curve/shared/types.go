package shared

const (
	// FeeDenominator is the per-rate divisor of the fee formulas. A second fixed
	// factor of 100 is folded in to give FullScale, so a rate of 100 is 1%.
	FeeDenominator = 100
	FullScale      = FeeDenominator * 100

	MaxBasisPoint = 10_000

	// PoolStateSize is the encoded account size including the discriminator.
	PoolStateSize = 8 + 32 + 32 + 8 + 8 + 32 + 8 + 8 + 8 + 1
	// AccountSpace is the allocated size of a pool account on chain: the
	// discriminator plus the 8-byte aligned in-memory struct. It is larger than
	// PoolStateSize; the tail is zero padding.
	AccountSpace = 8 + 144
)

// Account keys supported by the program
const (
	AccountKeyPoolState = "PoolState"
)

var Seed = struct {
	Pool []byte
}{
	Pool: []byte("pool"),
}

type TradeDirection uint8

const (
	TradeDirectionBaseToQuote TradeDirection = 0
	TradeDirectionQuoteToBase TradeDirection = 1
)

func (d TradeDirection) String() string {
	switch d {
	case TradeDirectionBaseToQuote:
		return "base_to_quote"
	case TradeDirectionQuoteToBase:
		return "quote_to_base"
	}
	return "unknown"
}

type Rounding uint8

const (
	RoundingUp   Rounding = 0
	RoundingDown Rounding = 1
)
