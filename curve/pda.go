package curve

import (
	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/pumpcurve-go/curve/shared"
)

// DerivePoolAddress returns the pool account address for a mint pair.
func DerivePoolAddress(programID, baseMint, quoteMint solanago.PublicKey) (solanago.PublicKey, error) {
	pub, _, err := solanago.FindProgramAddress([][]byte{shared.Seed.Pool, baseMint.Bytes(), quoteMint.Bytes()}, programID)
	return pub, err
}
