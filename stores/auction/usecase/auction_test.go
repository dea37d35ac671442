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
	"github.com/asoebi/goapi/domain/auction"
	auctionmocks "github.com/asoebi/goapi/domain/auction/mocks"
	"github.com/asoebi/goapi/domain/escrow"
	escrowmocks "github.com/asoebi/goapi/domain/escrow/mocks"
	eventmocks "github.com/asoebi/goapi/domain/event/mocks"
	walletmocks "github.com/asoebi/goapi/domain/wallet/mocks"
	querymocks "github.com/asoebi/goapi/service/query/mocks"
)

var mockCtx = ctx.Background()

const (
	engine      = domain.Address("0x00000000000000000000000000000000000000e1")
	escrowAddr  = domain.Address("0x00000000000000000000000000000000000e5c20")
	seller      = domain.Address("0x1111111111111111111111111111111111111111")
	alice       = domain.Address("0x2222222222222222222222222222222222222222")
	bob         = domain.Address("0x3333333333333333333333333333333333333333")
	contract    = domain.Address("0xcccccccccccccccccccccccccccccccccccccccc")
	tokenId     = domain.TokenId("7")
	oneEther    = "1000000000000000000"
	halfEther   = "500000000000000000"
	ether1Dot5  = "1500000000000000000"
	belowFloor  = "400000000000000000"
	almostPrice = "900000000000000000"
)

var (
	auctionId = auction.Id{AssetContract: contract, AssetId: tokenId}
	startTime = time.Unix(10000, 0).UTC()
	endTime   = startTime.Add(time.Hour)
)

type testDeps struct {
	auctionRepo *auctionmocks.Repo
	heldBidRepo *auctionmocks.HeldBidRepo
	assetUC     *assetmocks.Usecase
	walletUC    *walletmocks.Usecase
	escrowUC    *escrowmocks.Usecase
	eventUC     *eventmocks.Usecase
	q           *querymocks.Mongo
	clk         *clockmocks.Clock
}

func newTestUsecase() (auction.Usecase, *testDeps) {
	deps := &testDeps{
		auctionRepo: &auctionmocks.Repo{},
		heldBidRepo: &auctionmocks.HeldBidRepo{},
		assetUC:     &assetmocks.Usecase{},
		walletUC:    &walletmocks.Usecase{},
		escrowUC:    &escrowmocks.Usecase{},
		eventUC:     &eventmocks.Usecase{},
		q:           &querymocks.Mongo{},
		clk:         &clockmocks.Clock{},
	}

	deps.q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
		return run(c)
	})

	uc := New(&AuctionUseCaseCfg{
		AuctionRepo:   deps.auctionRepo,
		HeldBidRepo:   deps.heldBidRepo,
		AssetUC:       deps.assetUC,
		WalletUC:      deps.walletUC,
		EscrowUC:      deps.escrowUC,
		EventUC:       deps.eventUC,
		Query:         deps.q,
		Clock:         deps.clk,
		EngineAddress: engine,
		EscrowAddress: escrowAddr,
	})
	return uc, deps
}

func (d *testDeps) nowAt(t time.Time) {
	d.clk.On("Now").Return(t)
}

func openAuction() *auction.Auction {
	return &auction.Auction{
		AssetContract:       contract,
		AssetId:             tokenId,
		Owner:               seller,
		MinimumSellingPrice: oneEther,
		StartTime:           startTime,
		EndTime:             endTime,
		Type:                auction.TypeFabric,
	}
}

func claimId(bidder domain.Address) auction.HeldBidId {
	return auction.HeldBidId{AssetContract: contract, AssetId: tokenId, Bidder: bidder}
}

func TestCreate(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.nowAt(startTime.Add(-time.Hour))
	deps.assetUC.On("HolderOf", mock.Anything, asset.Id{Contract: contract, TokenId: tokenId}).Return(seller, nil)
	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(nil, domain.ErrNotFound)
	deps.auctionRepo.On("Insert", mock.Anything, mock.MatchedBy(func(a *auction.Auction) bool {
		return a.Owner == seller && a.MinimumSellingPrice == oneEther && !a.Finalized
	})).Return(nil)
	deps.eventUC.On("Emit", mock.Anything, auction.EventAuctionCreated, mock.Anything).Return(nil)

	a, err := uc.Create(mockCtx, seller, &auction.CreatePayload{
		AssetContract:       contract,
		AssetId:             tokenId,
		MinimumSellingPrice: oneEther,
		StartTime:           startTime.Unix(),
		EndTime:             endTime.Unix(),
	})
	req.NoError(err)
	req.Equal(startTime, a.StartTime)
	req.False(a.HasBid())
	deps.auctionRepo.AssertExpectations(t)
}

func TestCreateValidations(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.nowAt(startTime.Add(-time.Hour))

	payload := func() *auction.CreatePayload {
		return &auction.CreatePayload{
			AssetContract:       contract,
			AssetId:             tokenId,
			MinimumSellingPrice: oneEther,
			StartTime:           startTime.Unix(),
			EndTime:             endTime.Unix(),
		}
	}

	p := payload()
	p.MinimumSellingPrice = "0"
	_, err := uc.Create(mockCtx, seller, p)
	req.Equal(auction.ErrInvalidSellingPrice, err)

	p = payload()
	p.StartTime = startTime.Add(-2 * time.Hour).Unix()
	_, err = uc.Create(mockCtx, seller, p)
	req.Equal(auction.ErrInvalidStartTime, err)

	p = payload()
	p.EndTime = startTime.Add(auction.MinDuration - time.Second).Unix()
	_, err = uc.Create(mockCtx, seller, p)
	req.Equal(auction.ErrInvalidEndTime, err)
}

func TestCreateOnlyHolder(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.nowAt(startTime.Add(-time.Hour))
	deps.assetUC.On("HolderOf", mock.Anything, mock.Anything).Return(alice, nil)

	_, err := uc.Create(mockCtx, seller, &auction.CreatePayload{
		AssetContract:       contract,
		AssetId:             tokenId,
		MinimumSellingPrice: oneEther,
		StartTime:           startTime.Unix(),
		EndTime:             endTime.Unix(),
	})
	req.Equal(auction.ErrInvalidOwner, err)
}

func TestCreateDuplicate(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.nowAt(startTime.Add(-time.Hour))
	deps.assetUC.On("HolderOf", mock.Anything, mock.Anything).Return(seller, nil)
	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(openAuction(), nil)

	_, err := uc.Create(mockCtx, seller, &auction.CreatePayload{
		AssetContract:       contract,
		AssetId:             tokenId,
		MinimumSellingPrice: oneEther,
		StartTime:           startTime.Unix(),
		EndTime:             endTime.Unix(),
	})
	req.Equal(auction.ErrAlreadyExists, err)
}

func TestPlaceBidHalfFloor(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	// above half the minimum selling price though below the minimum itself
	now := startTime.Add(time.Minute)
	deps.nowAt(now)
	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(openAuction(), nil)
	deps.heldBidRepo.On("FindOne", mock.Anything, claimId(alice)).Return(nil, domain.ErrNotFound)
	deps.walletUC.On("Transfer", mock.Anything, alice, engine, almostPrice).Return(nil)
	deps.heldBidRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(b *auction.HeldBid) bool {
		return b.Bidder == alice && b.Amount == almostPrice && !b.Refundable
	})).Return(nil)
	deps.auctionRepo.On("Update", mock.Anything, auctionId, mock.MatchedBy(func(p auction.Patchable) bool {
		return p.HighestBidder != nil && *p.HighestBidder == alice && *p.HighestBid == almostPrice
	})).Return(nil)
	deps.eventUC.On("Emit", mock.Anything, auction.EventBidPlaced, mock.Anything).Return(nil)

	req.NoError(uc.PlaceBid(mockCtx, auctionId, alice, almostPrice))
	deps.walletUC.AssertExpectations(t)
	deps.heldBidRepo.AssertExpectations(t)
}

func TestPlaceBidBelowFloor(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.nowAt(startTime.Add(time.Minute))
	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(openAuction(), nil)

	// exactly half the minimum selling price does not clear the floor
	req.Equal(auction.ErrInvalidBid, uc.PlaceBid(mockCtx, auctionId, alice, halfEther))
	req.Equal(auction.ErrInvalidBid, uc.PlaceBid(mockCtx, auctionId, alice, belowFloor))
}

func TestPlaceBidStrictFloor(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	a := openAuction()
	a.MinBidMustMeetSellingPrice = true

	deps.nowAt(startTime.Add(time.Minute))
	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)

	// below the full minimum selling price even though above half of it
	req.Equal(auction.ErrInvalidBid, uc.PlaceBid(mockCtx, auctionId, alice, almostPrice))
}

func TestPlaceBidMustOutbid(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	a := openAuction()
	a.HighestBidder = alice
	a.HighestBid = oneEther

	deps.nowAt(startTime.Add(time.Minute))
	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)

	req.Equal(auction.ErrDidNotOutBid, uc.PlaceBid(mockCtx, auctionId, bob, oneEther))
	req.Equal(auction.ErrDidNotOutBid, uc.PlaceBid(mockCtx, auctionId, bob, halfEther))
}

func TestPlaceBidMarksOutbidClaimRefundable(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	a := openAuction()
	a.HighestBidder = alice
	a.HighestBid = oneEther

	now := startTime.Add(2 * time.Minute)
	deps.nowAt(now)
	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)
	deps.heldBidRepo.On("FindOne", mock.Anything, claimId(bob)).Return(nil, domain.ErrNotFound)
	deps.walletUC.On("Transfer", mock.Anything, bob, engine, ether1Dot5).Return(nil)
	deps.heldBidRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(b *auction.HeldBid) bool {
		return b.Bidder == bob && b.Amount == ether1Dot5
	})).Return(nil)
	deps.heldBidRepo.On("Update", mock.Anything, claimId(alice), mock.MatchedBy(func(p auction.HeldBidPatchable) bool {
		return p.Refundable != nil && *p.Refundable
	})).Return(nil)
	deps.auctionRepo.On("Update", mock.Anything, auctionId, mock.Anything).Return(nil)
	deps.eventUC.On("Emit", mock.Anything, auction.EventBidPlaced, mock.Anything).Return(nil)

	req.NoError(uc.PlaceBid(mockCtx, auctionId, bob, ether1Dot5))
	deps.heldBidRepo.AssertExpectations(t)
}

func TestPlaceBidRaiseOwnBid(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	a := openAuction()
	a.HighestBidder = alice
	a.HighestBid = oneEther

	deps.nowAt(startTime.Add(2 * time.Minute))
	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)
	deps.heldBidRepo.On("FindOne", mock.Anything, claimId(alice)).Return(&auction.HeldBid{
		AssetContract: contract,
		AssetId:       tokenId,
		Bidder:        alice,
		Amount:        oneEther,
	}, nil)

	// old hold comes back before the new one goes in
	deps.walletUC.On("Transfer", mock.Anything, engine, alice, oneEther).Return(nil)
	deps.walletUC.On("Transfer", mock.Anything, alice, engine, ether1Dot5).Return(nil)
	deps.heldBidRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(b *auction.HeldBid) bool {
		return b.Bidder == alice && b.Amount == ether1Dot5
	})).Return(nil)
	deps.auctionRepo.On("Update", mock.Anything, auctionId, mock.Anything).Return(nil)
	deps.eventUC.On("Emit", mock.Anything, auction.EventBidPlaced, mock.Anything).Return(nil)

	req.NoError(uc.PlaceBid(mockCtx, auctionId, alice, ether1Dot5))
	deps.walletUC.AssertExpectations(t)
	deps.heldBidRepo.AssertNotCalled(t, "Update", mock.Anything, claimId(alice), mock.Anything)
}

func TestPlaceBidOutsideWindow(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(openAuction(), nil)

	deps.clk.On("Now").Return(startTime.Add(-time.Minute)).Once()
	req.Equal(auction.ErrInvalidAuction, uc.PlaceBid(mockCtx, auctionId, alice, oneEther))

	deps.clk.On("Now").Return(endTime).Once()
	req.Equal(auction.ErrInvalidAuction, uc.PlaceBid(mockCtx, auctionId, alice, oneEther))
}

func TestPlaceBidNonexistentAuction(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(nil, domain.ErrNotFound)

	req.Equal(auction.ErrInvalidAuction, uc.PlaceBid(mockCtx, auctionId, alice, oneEther))
}

func TestFinalize(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	a := openAuction()
	a.HighestBidder = bob
	a.HighestBid = ether1Dot5

	deps.nowAt(endTime.Add(time.Minute))
	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)
	// custody parks with the escrow, not the winner
	deps.assetUC.On("Transfer", mock.Anything, asset.Id{Contract: contract, TokenId: tokenId}, seller, escrowAddr).Return(nil)
	deps.escrowUC.On("DepositForAuction", mock.Anything, engine, mock.MatchedBy(func(p *escrow.AuctionDepositPayload) bool {
		return p.Winner == bob && p.WinningBid == ether1Dot5 && p.Seller == seller
	})).Return(&escrow.AuctionEscrow{State: escrow.StateDeposited}, nil)
	deps.heldBidRepo.On("Remove", mock.Anything, claimId(bob)).Return(nil)
	deps.auctionRepo.On("Update", mock.Anything, auctionId, mock.MatchedBy(func(p auction.Patchable) bool {
		return p.Finalized != nil && *p.Finalized
	})).Return(nil)
	deps.eventUC.On("Emit", mock.Anything, auction.EventAuctionFinalized, mock.Anything).Return(nil)

	req.NoError(uc.Finalize(mockCtx, auctionId, seller))
	deps.escrowUC.AssertExpectations(t)
	deps.assetUC.AssertExpectations(t)
	deps.assetUC.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, seller, bob)
}

func TestFinalizeOnlyOwner(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(openAuction(), nil)

	req.Equal(auction.ErrInvalidOwner, uc.Finalize(mockCtx, auctionId, bob))
}

func TestFinalizeWhileActive(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	a := openAuction()
	a.HighestBidder = bob
	a.HighestBid = ether1Dot5

	deps.nowAt(endTime.Add(-time.Minute))
	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)

	req.Equal(auction.ErrIsActive, uc.Finalize(mockCtx, auctionId, seller))
}

func TestFinalizeNoBid(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.nowAt(endTime.Add(time.Minute))
	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(openAuction(), nil)

	req.Equal(auction.ErrNoBid, uc.Finalize(mockCtx, auctionId, seller))
}

func TestFinalizeBelowMinimum(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	// half-floor opening bid never got outbid past the minimum
	a := openAuction()
	a.HighestBidder = alice
	a.HighestBid = halfEther

	deps.nowAt(endTime.Add(time.Minute))
	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)

	req.Equal(auction.ErrInvalidWinningBid, uc.Finalize(mockCtx, auctionId, seller))
}

func TestCancel(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	a := openAuction()
	a.HighestBidder = alice
	a.HighestBid = oneEther

	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)
	deps.heldBidRepo.On("Update", mock.Anything, claimId(alice), mock.MatchedBy(func(p auction.HeldBidPatchable) bool {
		return p.Refundable != nil && *p.Refundable
	})).Return(nil)
	deps.auctionRepo.On("Remove", mock.Anything, auctionId).Return(nil)
	deps.eventUC.On("Emit", mock.Anything, auction.EventAuctionCancelled, map[string]interface{}{
		"assetContract": contract,
		"assetId":       tokenId,
	}).Return(nil)

	req.NoError(uc.Cancel(mockCtx, auctionId, seller))
	deps.heldBidRepo.AssertExpectations(t)
	deps.auctionRepo.AssertExpectations(t)
}

func TestCancelOnlyOwner(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(openAuction(), nil)

	req.Equal(auction.ErrInvalidOwner, uc.Cancel(mockCtx, auctionId, alice))
}

func TestWithdrawBidTimeLock(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	a := openAuction()
	a.HighestBidder = alice
	a.HighestBid = oneEther

	deps.nowAt(endTime.Add(auction.WithdrawLock - time.Minute))
	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)

	req.Equal(auction.ErrTimeLock, uc.WithdrawBid(mockCtx, auctionId, alice))
}

func TestWithdrawBid(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	a := openAuction()
	a.HighestBidder = alice
	a.HighestBid = oneEther

	deps.nowAt(endTime.Add(auction.WithdrawLock + time.Minute))
	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)
	deps.heldBidRepo.On("FindOne", mock.Anything, claimId(alice)).Return(&auction.HeldBid{
		AssetContract: contract,
		AssetId:       tokenId,
		Bidder:        alice,
		Amount:        oneEther,
	}, nil)
	deps.walletUC.On("Transfer", mock.Anything, engine, alice, oneEther).Return(nil)
	deps.heldBidRepo.On("Remove", mock.Anything, claimId(alice)).Return(nil)
	deps.auctionRepo.On("Update", mock.Anything, auctionId, mock.MatchedBy(func(p auction.Patchable) bool {
		return p.HighestBidder != nil && *p.HighestBidder == "" && p.HighestBid != nil && *p.HighestBid == ""
	})).Return(nil)
	deps.eventUC.On("Emit", mock.Anything, auction.EventBidWithdrawn, mock.Anything).Return(nil)

	req.NoError(uc.WithdrawBid(mockCtx, auctionId, alice))
	deps.walletUC.AssertExpectations(t)
	deps.auctionRepo.AssertExpectations(t)
}

func TestWithdrawBidOnlyHighestBidder(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	a := openAuction()
	a.HighestBidder = alice
	a.HighestBid = oneEther

	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)

	req.Equal(auction.ErrInvalidOwner, uc.WithdrawBid(mockCtx, auctionId, bob))
}

func TestRefundBid(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.heldBidRepo.On("FindOne", mock.Anything, claimId(alice)).Return(&auction.HeldBid{
		AssetContract: contract,
		AssetId:       tokenId,
		Bidder:        alice,
		Amount:        oneEther,
		Refundable:    true,
	}, nil)
	deps.walletUC.On("Transfer", mock.Anything, engine, alice, oneEther).Return(nil)
	deps.heldBidRepo.On("Remove", mock.Anything, claimId(alice)).Return(nil)
	deps.eventUC.On("Emit", mock.Anything, auction.EventBidRefunded, mock.Anything).Return(nil)

	req.NoError(uc.RefundBid(mockCtx, auctionId, alice))
	deps.walletUC.AssertExpectations(t)
}

func TestRefundBidNotRefundable(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.heldBidRepo.On("FindOne", mock.Anything, claimId(alice)).Return(&auction.HeldBid{
		Bidder: alice,
		Amount: oneEther,
	}, nil)

	req.Equal(auction.ErrNotRefundable, uc.RefundBid(mockCtx, auctionId, alice))
}

func TestRefundBidNoClaim(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.heldBidRepo.On("FindOne", mock.Anything, claimId(alice)).Return(nil, domain.ErrNotFound)

	req.Equal(auction.ErrNoClaim, uc.RefundBid(mockCtx, auctionId, alice))
}

func TestUpdateBeforeStartOnly(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.nowAt(startTime.Add(time.Minute))
	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(openAuction(), nil)

	req.Equal(auction.ErrAlreadyStarted, uc.UpdateMinimumSellingPrice(mockCtx, auctionId, seller, oneEther))
	req.Equal(auction.ErrAlreadyStarted, uc.UpdateEndTime(mockCtx, auctionId, seller, endTime.Add(time.Hour)))
}

func TestUpdateMinimumSellingPrice(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.nowAt(startTime.Add(-time.Hour))
	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(openAuction(), nil)
	deps.auctionRepo.On("Update", mock.Anything, auctionId, mock.MatchedBy(func(p auction.Patchable) bool {
		return p.MinimumSellingPrice != nil && *p.MinimumSellingPrice == ether1Dot5
	})).Return(nil)
	deps.eventUC.On("Emit", mock.Anything, auction.EventUpdatedMinimumSellingPrice, mock.Anything).Return(nil)

	req.NoError(uc.UpdateMinimumSellingPrice(mockCtx, auctionId, seller, ether1Dot5))

	req.Equal(auction.ErrInvalidSellingPrice, uc.UpdateMinimumSellingPrice(mockCtx, auctionId, seller, "0"))
}

func TestUpdateEndTimeTooShort(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.nowAt(startTime.Add(-time.Hour))
	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(openAuction(), nil)

	err := uc.UpdateEndTime(mockCtx, auctionId, seller, startTime.Add(auction.MinDuration-time.Second))
	req.Equal(auction.ErrInvalidEndTime, err)
}

func TestGetHighestBidder(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	a := openAuction()
	a.HighestBidder = bob
	a.HighestBid = ether1Dot5

	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(a, nil)

	info, err := uc.GetHighestBidder(mockCtx, auctionId)
	req.NoError(err)
	req.Equal(bob, info.Bidder)
	req.Equal(ether1Dot5, info.Bid)
	req.Equal("1.5", info.DisplayBid)
}

func TestGetHighestBidderNoBid(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.auctionRepo.On("FindOne", mock.Anything, auctionId).Return(openAuction(), nil)

	_, err := uc.GetHighestBidder(mockCtx, auctionId)
	req.Equal(auction.ErrNoBid, err)
}
