package wallet

import (
	"errors"
	"time"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/domain"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")
)

// Wallet is a per-address wei balance ledger entry. Balances move only
// through Usecase so every debit is checked against the current balance.
type Wallet struct {
	Address   domain.Address `json:"address" bson:"address"`
	Balance   string         `json:"balance" bson:"balance"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type Patchable struct {
	Balance   *string    `bson:"balance,omitempty"`
	UpdatedAt *time.Time `bson:"updatedAt,omitempty"`
}

type Repo interface {
	FindOne(c ctx.Ctx, address domain.Address) (*Wallet, error)
	Upsert(c ctx.Ctx, w *Wallet) error
}

type Usecase interface {
	BalanceOf(c ctx.Ctx, address domain.Address) (string, error)
	// Deposit credits address, the faucet path for test and top-up flows
	Deposit(c ctx.Ctx, address domain.Address, amount string) error
	// Transfer debits from and credits to atomically within the caller's
	// session
	Transfer(c ctx.Ctx, from, to domain.Address, amount string) error
}
