package usecase

import (
	"math/big"

	"github.com/asoebi/goapi/base/clock"
	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/base/log"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/domain/wallet"
)

type WalletUseCaseCfg struct {
	WalletRepo wallet.Repo
	Clock      clock.Clock
}

type impl struct {
	walletRepo wallet.Repo
	clock      clock.Clock
}

func New(cfg *WalletUseCaseCfg) wallet.Usecase {
	return &impl{
		walletRepo: cfg.WalletRepo,
		clock:      cfg.Clock,
	}
}

func (im *impl) BalanceOf(ctx ctx.Ctx, address domain.Address) (string, error) {
	w, err := im.walletRepo.FindOne(ctx, address)
	if err == domain.ErrNotFound {
		return "0", nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("failed to walletRepo.FindOne")
		return "", err
	}

	return w.Balance, nil
}

func (im *impl) Deposit(ctx ctx.Ctx, address domain.Address, amount string) error {
	value, err := domain.ToBigInt(amount)
	if err != nil || value.Sign() <= 0 {
		return wallet.ErrInvalidAmount
	}

	balance, err := im.balanceOf(ctx, address)
	if err != nil {
		return err
	}

	return im.setBalance(ctx, address, new(big.Int).Add(balance, value))
}

func (im *impl) Transfer(ctx ctx.Ctx, from, to domain.Address, amount string) error {
	value, err := domain.ToBigInt(amount)
	if err != nil || value.Sign() <= 0 {
		return wallet.ErrInvalidAmount
	}

	// a transfer onto itself would re-add the amount on top of the
	// untouched source balance
	if from.Equals(to) {
		return wallet.ErrInvalidAmount
	}

	fromBalance, err := im.balanceOf(ctx, from)
	if err != nil {
		return err
	}

	if fromBalance.Cmp(value) < 0 {
		return wallet.ErrInsufficientFunds
	}

	toBalance, err := im.balanceOf(ctx, to)
	if err != nil {
		return err
	}

	if err := im.setBalance(ctx, from, new(big.Int).Sub(fromBalance, value)); err != nil {
		return err
	}

	return im.setBalance(ctx, to, new(big.Int).Add(toBalance, value))
}

func (im *impl) balanceOf(ctx ctx.Ctx, address domain.Address) (*big.Int, error) {
	balance, err := im.BalanceOf(ctx, address)
	if err != nil {
		return nil, err
	}

	value, err := domain.ToBigInt(balance)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
			"balance": balance,
		}).Error("stored balance is not a valid number")
		return nil, domain.ErrInternalServerError
	}
	return value, nil
}

func (im *impl) setBalance(ctx ctx.Ctx, address domain.Address, balance *big.Int) error {
	err := im.walletRepo.Upsert(ctx, &wallet.Wallet{
		Address:   address,
		Balance:   balance.String(),
		UpdatedAt: im.clock.Now(),
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("failed to walletRepo.Upsert")
		return err
	}
	return nil
}
