package usecase

import (
	"math/big"
	"time"

	"github.com/asoebi/goapi/base/clock"
	bCtx "github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/base/log"
	"github.com/asoebi/goapi/base/ptr"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/domain/asset"
	"github.com/asoebi/goapi/domain/auction"
	"github.com/asoebi/goapi/domain/escrow"
	"github.com/asoebi/goapi/domain/event"
	"github.com/asoebi/goapi/domain/wallet"
	"github.com/asoebi/goapi/service/query"
)

type AuctionUseCaseCfg struct {
	AuctionRepo auction.Repo
	HeldBidRepo auction.HeldBidRepo
	AssetUC     asset.Usecase
	WalletUC    wallet.Usecase
	EscrowUC    escrow.Usecase
	EventUC     event.Usecase
	Query       query.Mongo
	Clock       clock.Clock

	// EngineAddress is the ledger identity holding active bid funds, it
	// must match the escrow config's auction contract address
	EngineAddress domain.Address

	// EscrowAddress is the escrow ledger identity, finalize parks asset
	// custody there until the winner releases
	EscrowAddress domain.Address
}

type impl struct {
	auctionRepo   auction.Repo
	heldBidRepo   auction.HeldBidRepo
	assetUC       asset.Usecase
	walletUC      wallet.Usecase
	escrowUC      escrow.Usecase
	eventUC       event.Usecase
	q             query.Mongo
	clock         clock.Clock
	engineAddress domain.Address
	escrowAddress domain.Address
}

func New(cfg *AuctionUseCaseCfg) auction.Usecase {
	return &impl{
		auctionRepo:   cfg.AuctionRepo,
		heldBidRepo:   cfg.HeldBidRepo,
		assetUC:       cfg.AssetUC,
		walletUC:      cfg.WalletUC,
		escrowUC:      cfg.EscrowUC,
		eventUC:       cfg.EventUC,
		q:             cfg.Query,
		clock:         cfg.Clock,
		engineAddress: cfg.EngineAddress.ToLower(),
		escrowAddress: cfg.EscrowAddress.ToLower(),
	}
}

func (im *impl) Create(ctx bCtx.Ctx, caller domain.Address, payload *auction.CreatePayload) (*auction.Auction, error) {
	price, err := domain.ToBigInt(payload.MinimumSellingPrice)
	if err != nil || price.Sign() <= 0 {
		return nil, auction.ErrInvalidSellingPrice
	}

	if !payload.Type.IsValid() {
		return nil, domain.ErrBadParamInput
	}

	now := im.clock.Now()
	startTime := time.Unix(payload.StartTime, 0).UTC()
	endTime := time.Unix(payload.EndTime, 0).UTC()

	if startTime.Before(now) {
		return nil, auction.ErrInvalidStartTime
	}

	if endTime.Sub(startTime) < auction.MinDuration {
		return nil, auction.ErrInvalidEndTime
	}

	id := auction.Id{
		AssetContract: payload.AssetContract.ToLower(),
		AssetId:       payload.AssetId,
	}

	holder, err := im.assetUC.HolderOf(ctx, asset.Id{Contract: id.AssetContract, TokenId: id.AssetId})
	if err != nil {
		return nil, err
	}
	if !holder.Equals(caller) {
		return nil, auction.ErrInvalidOwner
	}

	if _, err := im.auctionRepo.FindOne(ctx, id); err == nil {
		return nil, auction.ErrAlreadyExists
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	a := &auction.Auction{
		AssetContract:              id.AssetContract,
		AssetId:                    id.AssetId,
		Owner:                      caller.ToLower(),
		MinimumSellingPrice:        payload.MinimumSellingPrice,
		StartTime:                  startTime,
		EndTime:                    endTime,
		Type:                       payload.Type,
		MinBidMustMeetSellingPrice: payload.MinBidMustMeetSellingPrice,
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}

	err = im.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		if err := im.auctionRepo.Insert(c, a); err != nil {
			return err
		}
		return im.eventUC.Emit(c, auction.EventAuctionCreated, map[string]interface{}{
			"assetContract": a.AssetContract,
			"assetId":       a.AssetId,
			"auctionType":   a.Type,
		})
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("create auction failed")
		return nil, err
	}

	return a, nil
}

func (im *impl) PlaceBid(ctx bCtx.Ctx, id auction.Id, bidder domain.Address, value string) error {
	id.AssetContract = id.AssetContract.ToLower()
	bidder = bidder.ToLower()

	a, err := im.auctionRepo.FindOne(ctx, id)
	if err == domain.ErrNotFound {
		return auction.ErrInvalidAuction
	} else if err != nil {
		return err
	}

	if a.Finalized {
		return auction.ErrAlreadyFinalized
	}

	now := im.clock.Now()
	if now.Before(a.StartTime) || !now.Before(a.EndTime) {
		return auction.ErrInvalidAuction
	}

	bid, err := domain.ToBigInt(value)
	if err != nil || bid.Sign() <= 0 {
		return auction.ErrInvalidBid
	}

	if a.HasBid() {
		highest, err := domain.ToBigInt(a.HighestBid)
		if err != nil {
			return domain.ErrInternalServerError
		}
		if bid.Cmp(highest) <= 0 {
			return auction.ErrDidNotOutBid
		}
	} else if err := im.checkFirstBidFloor(a, bid); err != nil {
		return err
	}

	prevBidder := a.HighestBidder

	return im.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		// a bidder raising their own bid gets the old claim credited
		// back, there is only ever one claim per bidder and auction
		claimId := auction.HeldBidId{AssetContract: id.AssetContract, AssetId: id.AssetId, Bidder: bidder}
		if existing, err := im.heldBidRepo.FindOne(c, claimId); err == nil {
			if err := im.walletUC.Transfer(c, im.engineAddress, bidder, existing.Amount); err != nil {
				return err
			}
		} else if err != domain.ErrNotFound {
			return err
		}

		if err := im.walletUC.Transfer(c, bidder, im.engineAddress, value); err != nil {
			return err
		}

		if err := im.heldBidRepo.Upsert(c, &auction.HeldBid{
			AssetContract: id.AssetContract,
			AssetId:       id.AssetId,
			Bidder:        bidder,
			Amount:        value,
			Refundable:    false,
			PlacedAt:      now,
		}); err != nil {
			return err
		}

		if !prevBidder.IsEmpty() && !prevBidder.Equals(bidder) {
			prevClaimId := auction.HeldBidId{AssetContract: id.AssetContract, AssetId: id.AssetId, Bidder: prevBidder}
			if err := im.heldBidRepo.Update(c, prevClaimId, auction.HeldBidPatchable{
				Refundable: ptr.Bool(true),
			}); err != nil {
				return err
			}
		}

		if err := im.auctionRepo.Update(c, id, auction.Patchable{
			HighestBidder: &bidder,
			HighestBid:    &value,
			UpdatedAt:     &now,
		}); err != nil {
			return err
		}

		return im.eventUC.Emit(c, auction.EventBidPlaced, map[string]interface{}{
			"assetContract": id.AssetContract,
			"assetId":       id.AssetId,
			"bidder":        bidder,
			"value":         value,
		})
	})
}

// checkFirstBidFloor guards the opening bid. With the strict flag the
// bid must reach the minimum selling price; without it the bid only has
// to clear half of it, settlement below the minimum is still refused at
// finalize.
func (im *impl) checkFirstBidFloor(a *auction.Auction, bid *big.Int) error {
	price, err := domain.ToBigInt(a.MinimumSellingPrice)
	if err != nil {
		return domain.ErrInternalServerError
	}
	if a.MinBidMustMeetSellingPrice {
		if bid.Cmp(price) < 0 {
			return auction.ErrInvalidBid
		}
		return nil
	}
	if new(big.Int).Mul(bid, big.NewInt(2)).Cmp(price) <= 0 {
		return auction.ErrInvalidBid
	}
	return nil
}

func (im *impl) Finalize(ctx bCtx.Ctx, id auction.Id, caller domain.Address) error {
	id.AssetContract = id.AssetContract.ToLower()

	a, err := im.auctionRepo.FindOne(ctx, id)
	if err != nil {
		return err
	}

	if !a.Owner.Equals(caller) {
		return auction.ErrInvalidOwner
	}

	if a.Finalized {
		return auction.ErrAlreadyFinalized
	}

	now := im.clock.Now()
	if now.Before(a.EndTime) {
		return auction.ErrIsActive
	}

	if !a.HasBid() {
		return auction.ErrNoBid
	}

	highest, err := domain.ToBigInt(a.HighestBid)
	if err != nil {
		return domain.ErrInternalServerError
	}
	price, err := domain.ToBigInt(a.MinimumSellingPrice)
	if err != nil {
		return domain.ErrInternalServerError
	}
	if highest.Cmp(price) < 0 {
		return auction.ErrInvalidWinningBid
	}

	winner := a.HighestBidder
	winningBid := a.HighestBid

	return im.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		// custody parks with the escrow before funds lock, the asset only
		// reaches the winner when they release the escrow
		if err := im.assetUC.Transfer(c, asset.Id{Contract: id.AssetContract, TokenId: id.AssetId}, a.Owner, im.escrowAddress); err != nil {
			return err
		}

		if _, err := im.escrowUC.DepositForAuction(c, im.engineAddress, &escrow.AuctionDepositPayload{
			AssetContract: id.AssetContract,
			AssetId:       id.AssetId,
			Seller:        a.Owner,
			Winner:        winner,
			WinningBid:    winningBid,
		}); err != nil {
			return err
		}

		claimId := auction.HeldBidId{AssetContract: id.AssetContract, AssetId: id.AssetId, Bidder: winner}
		if err := im.heldBidRepo.Remove(c, claimId); err != nil {
			return err
		}

		if err := im.auctionRepo.Update(c, id, auction.Patchable{
			Finalized: ptr.Bool(true),
			UpdatedAt: &now,
		}); err != nil {
			return err
		}

		return im.eventUC.Emit(c, auction.EventAuctionFinalized, map[string]interface{}{
			"owner":         a.Owner,
			"assetContract": id.AssetContract,
			"assetId":       id.AssetId,
			"winner":        winner,
			"winningBid":    winningBid,
		})
	})
}

func (im *impl) Cancel(ctx bCtx.Ctx, id auction.Id, caller domain.Address) error {
	id.AssetContract = id.AssetContract.ToLower()

	a, err := im.auctionRepo.FindOne(ctx, id)
	if err != nil {
		return err
	}

	if !a.Owner.Equals(caller) {
		return auction.ErrInvalidOwner
	}

	if a.Finalized {
		return auction.ErrAlreadyFinalized
	}

	return im.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		// the highest claim turns refundable so the bidder can reclaim
		// through the refund path after the record is gone
		if a.HasBid() {
			claimId := auction.HeldBidId{AssetContract: id.AssetContract, AssetId: id.AssetId, Bidder: a.HighestBidder}
			if err := im.heldBidRepo.Update(c, claimId, auction.HeldBidPatchable{
				Refundable: ptr.Bool(true),
			}); err != nil {
				return err
			}
		}

		if err := im.auctionRepo.Remove(c, id); err != nil {
			return err
		}

		return im.eventUC.Emit(c, auction.EventAuctionCancelled, map[string]interface{}{
			"assetContract": id.AssetContract,
			"assetId":       id.AssetId,
		})
	})
}

func (im *impl) WithdrawBid(ctx bCtx.Ctx, id auction.Id, caller domain.Address) error {
	id.AssetContract = id.AssetContract.ToLower()
	caller = caller.ToLower()

	a, err := im.auctionRepo.FindOne(ctx, id)
	if err != nil {
		return err
	}

	if a.Finalized {
		return auction.ErrAlreadyFinalized
	}

	if !a.HighestBidder.Equals(caller) {
		// outbid claims leave through the refund path
		return auction.ErrInvalidOwner
	}

	now := im.clock.Now()
	if now.Before(a.EndTime.Add(auction.WithdrawLock)) {
		return auction.ErrTimeLock
	}

	claimId := auction.HeldBidId{AssetContract: id.AssetContract, AssetId: id.AssetId, Bidder: caller}
	claim, err := im.heldBidRepo.FindOne(ctx, claimId)
	if err == domain.ErrNotFound {
		return auction.ErrNoClaim
	} else if err != nil {
		return err
	}

	return im.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		if err := im.walletUC.Transfer(c, im.engineAddress, caller, claim.Amount); err != nil {
			return err
		}

		if err := im.heldBidRepo.Remove(c, claimId); err != nil {
			return err
		}

		// clearing the highest bid keeps a later finalize from paying
		// out funds that already left the engine
		if err := im.auctionRepo.Update(c, id, auction.Patchable{
			HighestBidder: (*domain.Address)(ptr.String("")),
			HighestBid:    ptr.String(""),
			UpdatedAt:     &now,
		}); err != nil {
			return err
		}

		return im.eventUC.Emit(c, auction.EventBidWithdrawn, map[string]interface{}{
			"assetContract": id.AssetContract,
			"assetId":       id.AssetId,
			"bidder":        caller,
			"amount":        claim.Amount,
		})
	})
}

func (im *impl) RefundBid(ctx bCtx.Ctx, id auction.Id, caller domain.Address) error {
	id.AssetContract = id.AssetContract.ToLower()
	caller = caller.ToLower()

	// works off the claim alone so funds never strand when the auction
	// record was removed by cancel
	claimId := auction.HeldBidId{AssetContract: id.AssetContract, AssetId: id.AssetId, Bidder: caller}
	claim, err := im.heldBidRepo.FindOne(ctx, claimId)
	if err == domain.ErrNotFound {
		return auction.ErrNoClaim
	} else if err != nil {
		return err
	}

	if !claim.Refundable {
		return auction.ErrNotRefundable
	}

	return im.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		if err := im.walletUC.Transfer(c, im.engineAddress, caller, claim.Amount); err != nil {
			return err
		}

		if err := im.heldBidRepo.Remove(c, claimId); err != nil {
			return err
		}

		return im.eventUC.Emit(c, auction.EventBidRefunded, map[string]interface{}{
			"assetContract": id.AssetContract,
			"assetId":       id.AssetId,
			"bidder":        caller,
			"amount":        claim.Amount,
		})
	})
}

func (im *impl) UpdateStartTime(ctx bCtx.Ctx, id auction.Id, caller domain.Address, startTime time.Time) error {
	a, err := im.loadForUpdate(ctx, &id, caller)
	if err != nil {
		return err
	}

	now := im.clock.Now()
	if startTime.Before(now) {
		return auction.ErrInvalidStartTime
	}
	if a.EndTime.Sub(startTime) < auction.MinDuration {
		return auction.ErrInvalidStartTime
	}

	startTime = startTime.UTC()
	return im.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		if err := im.auctionRepo.Update(c, id, auction.Patchable{
			StartTime: &startTime,
			UpdatedAt: &now,
		}); err != nil {
			return err
		}
		return im.eventUC.Emit(c, auction.EventUpdatedStartTime, map[string]interface{}{
			"assetContract": id.AssetContract,
			"assetId":       id.AssetId,
			"startTime":     startTime.Unix(),
		})
	})
}

func (im *impl) UpdateEndTime(ctx bCtx.Ctx, id auction.Id, caller domain.Address, endTime time.Time) error {
	a, err := im.loadForUpdate(ctx, &id, caller)
	if err != nil {
		return err
	}

	now := im.clock.Now()
	if endTime.Sub(a.StartTime) < auction.MinDuration {
		return auction.ErrInvalidEndTime
	}

	endTime = endTime.UTC()
	return im.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		if err := im.auctionRepo.Update(c, id, auction.Patchable{
			EndTime:   &endTime,
			UpdatedAt: &now,
		}); err != nil {
			return err
		}
		return im.eventUC.Emit(c, auction.EventUpdatedEndTime, map[string]interface{}{
			"assetContract": id.AssetContract,
			"assetId":       id.AssetId,
			"endTime":       endTime.Unix(),
		})
	})
}

func (im *impl) UpdateMinimumSellingPrice(ctx bCtx.Ctx, id auction.Id, caller domain.Address, price string) error {
	if _, err := im.loadForUpdate(ctx, &id, caller); err != nil {
		return err
	}

	value, err := domain.ToBigInt(price)
	if err != nil || value.Sign() <= 0 {
		return auction.ErrInvalidSellingPrice
	}

	now := im.clock.Now()
	return im.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		if err := im.auctionRepo.Update(c, id, auction.Patchable{
			MinimumSellingPrice: &price,
			UpdatedAt:           &now,
		}); err != nil {
			return err
		}
		return im.eventUC.Emit(c, auction.EventUpdatedMinimumSellingPrice, map[string]interface{}{
			"assetContract": id.AssetContract,
			"assetId":       id.AssetId,
			"price":         price,
		})
	})
}

// loadForUpdate guards the owner-mutable fields, they may only change
// before the auction opens for bidding
func (im *impl) loadForUpdate(ctx bCtx.Ctx, id *auction.Id, caller domain.Address) (*auction.Auction, error) {
	id.AssetContract = id.AssetContract.ToLower()

	a, err := im.auctionRepo.FindOne(ctx, *id)
	if err != nil {
		return nil, err
	}

	if !a.Owner.Equals(caller) {
		return nil, auction.ErrInvalidOwner
	}

	if a.Finalized {
		return nil, auction.ErrAlreadyFinalized
	}

	if !im.clock.Now().Before(a.StartTime) {
		return nil, auction.ErrAlreadyStarted
	}

	return a, nil
}

func (im *impl) Get(ctx bCtx.Ctx, id auction.Id) (*auction.Auction, error) {
	id.AssetContract = id.AssetContract.ToLower()
	return im.auctionRepo.FindOne(ctx, id)
}

func (im *impl) GetHighestBidder(ctx bCtx.Ctx, id auction.Id) (*auction.HighestBidInfo, error) {
	id.AssetContract = id.AssetContract.ToLower()

	a, err := im.auctionRepo.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if !a.HasBid() {
		return nil, auction.ErrNoBid
	}

	displayBid, err := domain.ToDisplayPrice(a.HighestBid)
	if err != nil {
		return nil, domain.ErrInternalServerError
	}

	return &auction.HighestBidInfo{
		Bidder:     a.HighestBidder,
		Bid:        a.HighestBid,
		DisplayBid: displayBid,
	}, nil
}

func (im *impl) FindAll(ctx bCtx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	res, err := im.auctionRepo.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to auctionRepo.FindAll")
		return nil, err
	}
	return res, nil
}
