package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/asoebi/goapi/base/ctx"
	clockmocks "github.com/asoebi/goapi/base/clock/mocks"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/domain/wallet"
	"github.com/asoebi/goapi/domain/wallet/mocks"
)

var mockCtx = ctx.Background()

func newTestUsecase(repo *mocks.Repo) wallet.Usecase {
	clk := &clockmocks.Clock{}
	clk.On("Now").Return(time.Unix(1000, 0).UTC())
	return New(&WalletUseCaseCfg{
		WalletRepo: repo,
		Clock:      clk,
	})
}

func TestBalanceOfMissingWallet(t *testing.T) {
	req := require.New(t)
	repo := &mocks.Repo{}
	repo.On("FindOne", mock.Anything, domain.Address("0xaaa")).Return(nil, domain.ErrNotFound)

	uc := newTestUsecase(repo)

	balance, err := uc.BalanceOf(mockCtx, "0xaaa")
	req.NoError(err)
	req.Equal("0", balance)
}

func TestDeposit(t *testing.T) {
	req := require.New(t)
	repo := &mocks.Repo{}
	repo.On("FindOne", mock.Anything, domain.Address("0xaaa")).Return(&wallet.Wallet{
		Address: "0xaaa",
		Balance: "1000",
	}, nil)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(w *wallet.Wallet) bool {
		return w.Address == "0xaaa" && w.Balance == "1500"
	})).Return(nil)

	uc := newTestUsecase(repo)

	req.NoError(uc.Deposit(mockCtx, "0xaaa", "500"))
	repo.AssertExpectations(t)
}

func TestDepositInvalidAmount(t *testing.T) {
	req := require.New(t)
	uc := newTestUsecase(&mocks.Repo{})

	req.Equal(wallet.ErrInvalidAmount, uc.Deposit(mockCtx, "0xaaa", "0"))
	req.Equal(wallet.ErrInvalidAmount, uc.Deposit(mockCtx, "0xaaa", "-5"))
	req.Equal(wallet.ErrInvalidAmount, uc.Deposit(mockCtx, "0xaaa", "abc"))
}

func TestTransfer(t *testing.T) {
	req := require.New(t)
	repo := &mocks.Repo{}
	repo.On("FindOne", mock.Anything, domain.Address("0xaaa")).Return(&wallet.Wallet{
		Address: "0xaaa",
		Balance: "1000",
	}, nil)
	repo.On("FindOne", mock.Anything, domain.Address("0xbbb")).Return(nil, domain.ErrNotFound)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(w *wallet.Wallet) bool {
		return w.Address == "0xaaa" && w.Balance == "400"
	})).Return(nil)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(w *wallet.Wallet) bool {
		return w.Address == "0xbbb" && w.Balance == "600"
	})).Return(nil)

	uc := newTestUsecase(repo)

	req.NoError(uc.Transfer(mockCtx, "0xaaa", "0xbbb", "600"))
	repo.AssertExpectations(t)
}

func TestTransferToSelf(t *testing.T) {
	req := require.New(t)
	repo := &mocks.Repo{}

	uc := newTestUsecase(repo)

	// a self transfer must not write the balance back with the amount
	// added on top
	req.Equal(wallet.ErrInvalidAmount, uc.Transfer(mockCtx, "0xaaa", "0xaaa", "60"))
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestTransferInsufficientFunds(t *testing.T) {
	req := require.New(t)
	repo := &mocks.Repo{}
	repo.On("FindOne", mock.Anything, domain.Address("0xaaa")).Return(&wallet.Wallet{
		Address: "0xaaa",
		Balance: "100",
	}, nil)

	uc := newTestUsecase(repo)

	req.Equal(wallet.ErrInsufficientFunds, uc.Transfer(mockCtx, "0xaaa", "0xbbb", "600"))
}
