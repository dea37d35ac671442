package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	clockmocks "github.com/asoebi/goapi/base/clock/mocks"
	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/domain/asset"
	assetmocks "github.com/asoebi/goapi/domain/asset/mocks"
	"github.com/asoebi/goapi/domain/escrow"
	escrowmocks "github.com/asoebi/goapi/domain/escrow/mocks"
	eventmocks "github.com/asoebi/goapi/domain/event/mocks"
	walletmocks "github.com/asoebi/goapi/domain/wallet/mocks"
	querymocks "github.com/asoebi/goapi/service/query/mocks"
)

var mockCtx = ctx.Background()

const (
	escrowAddr = domain.Address("0x00000000000000000000000000000000000e5c20")
	buyer      = domain.Address("0x1111111111111111111111111111111111111111")
	seller     = domain.Address("0x2222222222222222222222222222222222222222")
	owner      = domain.Address("0x3333333333333333333333333333333333333333")
	feeTaker   = domain.Address("0x4444444444444444444444444444444444444444")
	engine     = domain.Address("0x5555555555555555555555555555555555555555")
	winner     = domain.Address("0x6666666666666666666666666666666666666666")
	market     = domain.Address("0x7777777777777777777777777777777777777777")
)

type testDeps struct {
	orderRepo   *escrowmocks.OrderEscrowRepo
	auctionRepo *escrowmocks.AuctionEscrowRepo
	configRepo  *escrowmocks.ConfigRepo
	assetUC     *assetmocks.Usecase
	walletUC    *walletmocks.Usecase
	eventUC     *eventmocks.Usecase
	q           *querymocks.Mongo
}

func newTestUsecase() (escrow.Usecase, *testDeps) {
	deps := &testDeps{
		orderRepo:   &escrowmocks.OrderEscrowRepo{},
		auctionRepo: &escrowmocks.AuctionEscrowRepo{},
		configRepo:  &escrowmocks.ConfigRepo{},
		assetUC:     &assetmocks.Usecase{},
		walletUC:    &walletmocks.Usecase{},
		eventUC:     &eventmocks.Usecase{},
		q:           &querymocks.Mongo{},
	}

	clk := &clockmocks.Clock{}
	clk.On("Now").Return(time.Unix(5000, 0).UTC())

	deps.q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
		return run(c)
	})

	uc := New(&EscrowUseCaseCfg{
		OrderEscrowRepo:   deps.orderRepo,
		AuctionEscrowRepo: deps.auctionRepo,
		ConfigRepo:        deps.configRepo,
		AssetUC:           deps.assetUC,
		WalletUC:          deps.walletUC,
		EventUC:           deps.eventUC,
		Query:             deps.q,
		Clock:             clk,
		EscrowAddress:     escrowAddr,
	})
	return uc, deps
}

func defaultConfig() *escrow.Config {
	return &escrow.Config{
		Key:                 escrow.ConfigKey,
		Owner:               owner,
		FeePercentage:       2,
		FeeRecipient:        feeTaker,
		MarketplaceContract: market,
		AuctionContract:     engine,
	}
}

func TestDepositForOrder(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	id := escrow.OrderEscrowId{Buyer: buyer, Seller: seller, OrderId: "order-1"}
	deps.configRepo.On("Get", mock.Anything).Return(defaultConfig(), nil)
	deps.orderRepo.On("FindOne", mock.Anything, id).Return(nil, domain.ErrNotFound)
	deps.walletUC.On("Transfer", mock.Anything, buyer, escrowAddr, "1000000000000000000").Return(nil)
	deps.orderRepo.On("Insert", mock.Anything, mock.MatchedBy(func(e *escrow.OrderEscrow) bool {
		return e.State == escrow.StateDeposited && e.Amount == "1000000000000000000"
	})).Return(nil)
	deps.eventUC.On("Emit", mock.Anything, escrow.EventOrderDeposited, mock.Anything).Return(nil)

	e, err := uc.DepositForOrder(mockCtx, market, &escrow.OrderDepositPayload{
		Buyer:   buyer,
		Seller:  seller,
		OrderId: "order-1",
		Amount:  "1000000000000000000",
	})
	req.NoError(err)
	req.Equal(escrow.StateDeposited, e.State)
	deps.orderRepo.AssertExpectations(t)
	deps.walletUC.AssertExpectations(t)
}

func TestDepositForOrderOnlyMarketplace(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.configRepo.On("Get", mock.Anything).Return(defaultConfig(), nil)

	_, err := uc.DepositForOrder(mockCtx, buyer, &escrow.OrderDepositPayload{
		Buyer:   buyer,
		Seller:  seller,
		OrderId: "order-1",
		Amount:  "1000",
	})
	req.Equal(escrow.ErrUnauthorizedDeposit, err)
}

func TestDepositForOrderTwiceFails(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	id := escrow.OrderEscrowId{Buyer: buyer, Seller: seller, OrderId: "order-1"}
	deps.configRepo.On("Get", mock.Anything).Return(defaultConfig(), nil)
	deps.orderRepo.On("FindOne", mock.Anything, id).Return(&escrow.OrderEscrow{State: escrow.StateDeposited}, nil)

	_, err := uc.DepositForOrder(mockCtx, market, &escrow.OrderDepositPayload{
		Buyer:   buyer,
		Seller:  seller,
		OrderId: "order-1",
		Amount:  "1000",
	})
	req.Equal(escrow.ErrAlreadyDeposited, err)
}

func TestDepositForOrderInvalidAmount(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.configRepo.On("Get", mock.Anything).Return(defaultConfig(), nil)

	for _, amount := range []string{"0", "-5", "abc"} {
		_, err := uc.DepositForOrder(mockCtx, market, &escrow.OrderDepositPayload{
			Buyer:   buyer,
			Seller:  seller,
			OrderId: "order-1",
			Amount:  amount,
		})
		req.Equal(escrow.ErrInvalidAmount, err)
	}
}

func TestReleaseForOrderSplitsFee(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	id := escrow.OrderEscrowId{Buyer: buyer, Seller: seller, OrderId: "order-1"}
	deps.orderRepo.On("FindOne", mock.Anything, id).Return(&escrow.OrderEscrow{
		Buyer:   buyer,
		Seller:  seller,
		OrderId: "order-1",
		Amount:  "1000000000000000000",
		State:   escrow.StateDeposited,
	}, nil)
	deps.configRepo.On("Get", mock.Anything).Return(defaultConfig(), nil)

	// 2% of 1 ether
	deps.walletUC.On("Transfer", mock.Anything, escrowAddr, seller, "980000000000000000").Return(nil)
	deps.walletUC.On("Transfer", mock.Anything, escrowAddr, feeTaker, "20000000000000000").Return(nil)
	deps.orderRepo.On("Update", mock.Anything, id, mock.MatchedBy(func(p escrow.OrderEscrowPatchable) bool {
		return p.State != nil && *p.State == escrow.StateReleased && p.ReleasedAt != nil
	})).Return(nil)
	deps.eventUC.On("Emit", mock.Anything, escrow.EventOrderReleased, mock.Anything).Return(nil)

	receipt, err := uc.ReleaseForOrder(mockCtx, buyer, id)
	req.NoError(err)
	req.Equal("980000000000000000", receipt.PayeeAmount)
	req.Equal("20000000000000000", receipt.Fee)
	req.Equal(feeTaker, receipt.FeeRecipient)
	deps.walletUC.AssertExpectations(t)
}

func TestReleaseForOrderOnlyBuyer(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	id := escrow.OrderEscrowId{Buyer: buyer, Seller: seller, OrderId: "order-1"}
	deps.orderRepo.On("FindOne", mock.Anything, id).Return(&escrow.OrderEscrow{
		Buyer:  buyer,
		Seller: seller,
		Amount: "1000",
		State:  escrow.StateDeposited,
	}, nil)

	_, err := uc.ReleaseForOrder(mockCtx, seller, id)
	req.Equal(escrow.ErrUnauthorizedRelease, err)
}

func TestReleaseForOrderIdempotent(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	id := escrow.OrderEscrowId{Buyer: buyer, Seller: seller, OrderId: "order-1"}
	deps.orderRepo.On("FindOne", mock.Anything, id).Return(&escrow.OrderEscrow{
		Buyer:  buyer,
		Seller: seller,
		Amount: "1000",
		State:  escrow.StateReleased,
	}, nil)

	_, err := uc.ReleaseForOrder(mockCtx, buyer, id)
	req.Equal(escrow.ErrAlreadyReleased, err)
}

func TestDepositForAuctionOnlyEngine(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.configRepo.On("Get", mock.Anything).Return(defaultConfig(), nil)

	_, err := uc.DepositForAuction(mockCtx, buyer, &escrow.AuctionDepositPayload{
		AssetContract: "0xccc",
		AssetId:       "1",
		Seller:        seller,
		Winner:        winner,
		WinningBid:    "1000",
	})
	req.Equal(escrow.ErrUnauthorizedDeposit, err)
}

func TestDepositAndReleaseForAuction(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	id := escrow.AuctionEscrowId{AssetContract: "0xccc", AssetId: "1"}

	deps.configRepo.On("Get", mock.Anything).Return(defaultConfig(), nil)
	deps.auctionRepo.On("FindOne", mock.Anything, id).Return(nil, domain.ErrNotFound).Once()
	deps.assetUC.On("HolderOf", mock.Anything, asset.Id{Contract: "0xccc", TokenId: "1"}).Return(escrowAddr, nil)
	deps.walletUC.On("Transfer", mock.Anything, engine, escrowAddr, "1500000000000000000").Return(nil)
	deps.auctionRepo.On("Insert", mock.Anything, mock.MatchedBy(func(e *escrow.AuctionEscrow) bool {
		return e.Winner == winner && e.State == escrow.StateDeposited
	})).Return(nil)
	deps.eventUC.On("Emit", mock.Anything, escrow.EventAuctionDeposited, mock.Anything).Return(nil)

	e, err := uc.DepositForAuction(mockCtx, engine, &escrow.AuctionDepositPayload{
		AssetContract: "0xccc",
		AssetId:       "1",
		Seller:        seller,
		Winner:        winner,
		WinningBid:    "1500000000000000000",
	})
	req.NoError(err)
	req.Equal("1500000000000000000", e.WinningBid)

	deps.auctionRepo.On("FindOne", mock.Anything, id).Return(e, nil)
	deps.walletUC.On("Transfer", mock.Anything, escrowAddr, seller, "1470000000000000000").Return(nil)
	deps.walletUC.On("Transfer", mock.Anything, escrowAddr, feeTaker, "30000000000000000").Return(nil)
	deps.assetUC.On("Transfer", mock.Anything, asset.Id{Contract: "0xccc", TokenId: "1"}, escrowAddr, winner).Return(nil)
	deps.auctionRepo.On("Update", mock.Anything, id, mock.MatchedBy(func(p escrow.AuctionEscrowPatchable) bool {
		return p.State != nil && *p.State == escrow.StateReleased
	})).Return(nil)
	deps.eventUC.On("Emit", mock.Anything, escrow.EventAuctionReleased, mock.Anything).Return(nil)

	receipt, err := uc.ReleaseForAuction(mockCtx, winner, id)
	req.NoError(err)
	req.Equal("1470000000000000000", receipt.PayeeAmount)
	req.Equal("30000000000000000", receipt.Fee)
	deps.walletUC.AssertExpectations(t)
	deps.assetUC.AssertExpectations(t)
}

func TestDepositForAuctionRequiresCustody(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	id := escrow.AuctionEscrowId{AssetContract: "0xccc", AssetId: "1"}

	deps.configRepo.On("Get", mock.Anything).Return(defaultConfig(), nil)
	deps.auctionRepo.On("FindOne", mock.Anything, id).Return(nil, domain.ErrNotFound)
	// the asset still sits with the seller, the winning bid must not lock
	deps.assetUC.On("HolderOf", mock.Anything, asset.Id{Contract: "0xccc", TokenId: "1"}).Return(seller, nil)

	_, err := uc.DepositForAuction(mockCtx, engine, &escrow.AuctionDepositPayload{
		AssetContract: "0xccc",
		AssetId:       "1",
		Seller:        seller,
		Winner:        winner,
		WinningBid:    "1500000000000000000",
	})
	req.Equal(escrow.ErrAssetNotInCustody, err)
	deps.walletUC.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	deps.auctionRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestReleaseForAuctionOnlyWinner(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	id := escrow.AuctionEscrowId{AssetContract: "0xccc", AssetId: "1"}
	deps.auctionRepo.On("FindOne", mock.Anything, id).Return(&escrow.AuctionEscrow{
		Seller:     seller,
		Winner:     winner,
		WinningBid: "1000",
		State:      escrow.StateDeposited,
	}, nil)

	_, err := uc.ReleaseForAuction(mockCtx, seller, id)
	req.Equal(escrow.ErrUnauthorizedRelease, err)
}

func TestUpdateFeePercentage(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.configRepo.On("Get", mock.Anything).Return(defaultConfig(), nil)
	deps.configRepo.On("Patch", mock.Anything, mock.MatchedBy(func(p escrow.ConfigPatchable) bool {
		return p.FeePercentage != nil && *p.FeePercentage == 5
	})).Return(nil)
	deps.eventUC.On("Emit", mock.Anything, escrow.EventConfigUpdated, mock.Anything).Return(nil)

	req.NoError(uc.UpdateFeePercentage(mockCtx, owner, 5))

	req.Equal(escrow.ErrInvalidFeePercentage, uc.UpdateFeePercentage(mockCtx, owner, 101))
	req.Equal(escrow.ErrInvalidFeePercentage, uc.UpdateFeePercentage(mockCtx, owner, -1))
}

func TestUpdateConfigOnlyOwner(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.configRepo.On("Get", mock.Anything).Return(defaultConfig(), nil)

	req.Equal(escrow.ErrNotOwner, uc.UpdateFeeRecipient(mockCtx, buyer, feeTaker))
	req.Equal(escrow.ErrNotOwner, uc.UpdateAuctionContract(mockCtx, buyer, engine))
}
