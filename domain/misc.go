package domain

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// weiDecimals is the scale used by display formatting
const weiDecimals = 18

// ToBigInt parses a base-10 wei amount
func ToBigInt(num string) (*big.Int, error) {
	bn, ok := new(big.Int).SetString(num, 10)
	if !ok {
		return nil, ErrInvalidNumberFormat
	}
	return bn, nil
}

// ToDisplayPrice renders a wei amount in whole-token units, e.g.
// "1500000000000000000" -> "1.5"
func ToDisplayPrice(wei string) (string, error) {
	bn, err := ToBigInt(wei)
	if err != nil {
		return "", xerrors.Errorf("parse wei %s: %w", wei, err)
	}
	return decimal.NewFromBigInt(bn, -weiDecimals).String(), nil
}
