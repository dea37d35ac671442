package escrow

import (
	"math/big"

	"github.com/asoebi/goapi/domain"
)

// SplitFee divides an escrowed wei amount into the payee share and the
// marketplace fee. fee = amount * pct / 100 with integer division, the
// rounding remainder stays with the payee.
func SplitFee(amount string, pct int32) (payee string, fee string, err error) {
	if pct < 0 || pct > 100 {
		return "", "", ErrInvalidFeePercentage
	}

	bn, err := domain.ToBigInt(amount)
	if err != nil {
		return "", "", ErrInvalidAmount
	}
	if bn.Sign() <= 0 {
		return "", "", ErrInvalidAmount
	}

	feeBn := new(big.Int).Mul(bn, big.NewInt(int64(pct)))
	feeBn.Div(feeBn, big.NewInt(100))
	payeeBn := new(big.Int).Sub(bn, feeBn)

	return payeeBn.String(), feeBn.String(), nil
}
