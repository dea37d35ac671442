package usecase

import (
	"github.com/asoebi/goapi/base/clock"
	bCtx "github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/base/log"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/domain/asset"
	"github.com/asoebi/goapi/domain/escrow"
	"github.com/asoebi/goapi/domain/event"
	"github.com/asoebi/goapi/domain/wallet"
	"github.com/asoebi/goapi/service/query"
)

type EscrowUseCaseCfg struct {
	OrderEscrowRepo   escrow.OrderEscrowRepo
	AuctionEscrowRepo escrow.AuctionEscrowRepo
	ConfigRepo        escrow.ConfigRepo
	AssetUC           asset.Usecase
	WalletUC          wallet.Usecase
	EventUC           event.Usecase
	Query             query.Mongo
	Clock             clock.Clock

	// EscrowAddress is the ledger identity that holds custody of all
	// deposited funds and assets between deposit and release
	EscrowAddress domain.Address
}

type impl struct {
	orderEscrowRepo   escrow.OrderEscrowRepo
	auctionEscrowRepo escrow.AuctionEscrowRepo
	configRepo        escrow.ConfigRepo
	assetUC           asset.Usecase
	walletUC          wallet.Usecase
	eventUC           event.Usecase
	q                 query.Mongo
	clock             clock.Clock
	escrowAddress     domain.Address
}

func New(cfg *EscrowUseCaseCfg) escrow.Usecase {
	return &impl{
		orderEscrowRepo:   cfg.OrderEscrowRepo,
		auctionEscrowRepo: cfg.AuctionEscrowRepo,
		configRepo:        cfg.ConfigRepo,
		assetUC:           cfg.AssetUC,
		walletUC:          cfg.WalletUC,
		eventUC:           cfg.EventUC,
		q:                 cfg.Query,
		clock:             cfg.Clock,
		escrowAddress:     cfg.EscrowAddress.ToLower(),
	}
}

func (im *impl) DepositForOrder(ctx bCtx.Ctx, caller domain.Address, payload *escrow.OrderDepositPayload) (*escrow.OrderEscrow, error) {
	cfg, err := im.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	// only the marketplace identity deposits order funds
	if !caller.Equals(cfg.MarketplaceContract) {
		return nil, escrow.ErrUnauthorizedDeposit
	}

	if value, err := domain.ToBigInt(payload.Amount); err != nil || value.Sign() <= 0 {
		return nil, escrow.ErrInvalidAmount
	}

	id := escrow.OrderEscrowId{
		Buyer:   payload.Buyer.ToLower(),
		Seller:  payload.Seller.ToLower(),
		OrderId: payload.OrderId,
	}

	// an entry that was released stays on record, redepositing under the
	// same key is refused in both states
	if _, err := im.orderEscrowRepo.FindOne(ctx, id); err == nil {
		return nil, escrow.ErrAlreadyDeposited
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	e := &escrow.OrderEscrow{
		Buyer:     id.Buyer,
		Seller:    id.Seller,
		OrderId:   id.OrderId,
		Amount:    payload.Amount,
		State:     escrow.StateDeposited,
		CreatedAt: im.clock.Now(),
	}

	err = im.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		if err := im.walletUC.Transfer(c, id.Buyer, im.escrowAddress, e.Amount); err != nil {
			return err
		}
		if err := im.orderEscrowRepo.Insert(c, e); err != nil {
			return err
		}
		return im.eventUC.Emit(c, escrow.EventOrderDeposited, map[string]interface{}{
			"buyer":   id.Buyer,
			"seller":  id.Seller,
			"orderId": id.OrderId,
			"amount":  e.Amount,
		})
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("deposit for order failed")
		return nil, err
	}

	return e, nil
}

func (im *impl) ReleaseForOrder(ctx bCtx.Ctx, caller domain.Address, id escrow.OrderEscrowId) (*escrow.ReleaseReceipt, error) {
	id.Buyer = id.Buyer.ToLower()
	id.Seller = id.Seller.ToLower()

	e, err := im.orderEscrowRepo.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if e.State == escrow.StateReleased {
		return nil, escrow.ErrAlreadyReleased
	}

	// only the buyer confirms receipt
	if !caller.Equals(e.Buyer) {
		return nil, escrow.ErrUnauthorizedRelease
	}

	cfg, err := im.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	payee, fee, err := escrow.SplitFee(e.Amount, cfg.FeePercentage)
	if err != nil {
		return nil, err
	}

	now := im.clock.Now()
	released := escrow.StateReleased

	err = im.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		if err := im.walletUC.Transfer(c, im.escrowAddress, e.Seller, payee); err != nil {
			return err
		}
		if fee != "0" {
			if err := im.walletUC.Transfer(c, im.escrowAddress, cfg.FeeRecipient, fee); err != nil {
				return err
			}
		}
		if err := im.orderEscrowRepo.Update(c, id, escrow.OrderEscrowPatchable{
			State:      &released,
			ReleasedAt: &now,
		}); err != nil {
			return err
		}
		return im.eventUC.Emit(c, escrow.EventOrderReleased, map[string]interface{}{
			"buyer":   id.Buyer,
			"seller":  id.Seller,
			"orderId": id.OrderId,
			"amount":  e.Amount,
			"fee":     fee,
		})
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("release for order failed")
		return nil, err
	}

	return &escrow.ReleaseReceipt{
		PayeeAmount:  payee,
		Fee:          fee,
		FeeRecipient: cfg.FeeRecipient,
	}, nil
}

func (im *impl) GetOrderEscrow(ctx bCtx.Ctx, id escrow.OrderEscrowId) (*escrow.OrderEscrow, error) {
	id.Buyer = id.Buyer.ToLower()
	id.Seller = id.Seller.ToLower()
	return im.orderEscrowRepo.FindOne(ctx, id)
}

func (im *impl) DepositForAuction(ctx bCtx.Ctx, caller domain.Address, payload *escrow.AuctionDepositPayload) (*escrow.AuctionEscrow, error) {
	cfg, err := im.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	// only the auction engine settles winning bids into escrow
	if !caller.Equals(cfg.AuctionContract) {
		return nil, escrow.ErrUnauthorizedDeposit
	}

	if value, err := domain.ToBigInt(payload.WinningBid); err != nil || value.Sign() <= 0 {
		return nil, escrow.ErrInvalidAmount
	}

	id := escrow.AuctionEscrowId{
		AssetContract: payload.AssetContract.ToLower(),
		AssetId:       payload.AssetId,
	}

	if _, err := im.auctionEscrowRepo.FindOne(ctx, id); err == nil {
		return nil, escrow.ErrAlreadyDeposited
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	// custody must already sit with the escrow identity before funds lock
	holder, err := im.assetUC.HolderOf(ctx, asset.Id{Contract: id.AssetContract, TokenId: id.AssetId})
	if err != nil {
		return nil, err
	}
	if !holder.Equals(im.escrowAddress) {
		return nil, escrow.ErrAssetNotInCustody
	}

	e := &escrow.AuctionEscrow{
		AssetContract: id.AssetContract,
		AssetId:       id.AssetId,
		Seller:        payload.Seller.ToLower(),
		Winner:        payload.Winner.ToLower(),
		WinningBid:    payload.WinningBid,
		State:         escrow.StateDeposited,
		CreatedAt:     im.clock.Now(),
	}

	err = im.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		if err := im.walletUC.Transfer(c, caller, im.escrowAddress, e.WinningBid); err != nil {
			return err
		}
		if err := im.auctionEscrowRepo.Insert(c, e); err != nil {
			return err
		}
		return im.eventUC.Emit(c, escrow.EventAuctionDeposited, map[string]interface{}{
			"assetContract": id.AssetContract,
			"assetId":       id.AssetId,
			"seller":        e.Seller,
			"winner":        e.Winner,
			"winningBid":    e.WinningBid,
		})
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("deposit for auction failed")
		return nil, err
	}

	return e, nil
}

func (im *impl) ReleaseForAuction(ctx bCtx.Ctx, caller domain.Address, id escrow.AuctionEscrowId) (*escrow.ReleaseReceipt, error) {
	id.AssetContract = id.AssetContract.ToLower()

	e, err := im.auctionEscrowRepo.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if e.State == escrow.StateReleased {
		return nil, escrow.ErrAlreadyReleased
	}

	// only the winner confirms receipt of the asset
	if !caller.Equals(e.Winner) {
		return nil, escrow.ErrUnauthorizedRelease
	}

	cfg, err := im.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	payee, fee, err := escrow.SplitFee(e.WinningBid, cfg.FeePercentage)
	if err != nil {
		return nil, err
	}

	now := im.clock.Now()
	released := escrow.StateReleased

	err = im.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		if err := im.walletUC.Transfer(c, im.escrowAddress, e.Seller, payee); err != nil {
			return err
		}
		if fee != "0" {
			if err := im.walletUC.Transfer(c, im.escrowAddress, cfg.FeeRecipient, fee); err != nil {
				return err
			}
		}
		if err := im.assetUC.Transfer(c, asset.Id{Contract: id.AssetContract, TokenId: id.AssetId}, im.escrowAddress, e.Winner); err != nil {
			return err
		}
		if err := im.auctionEscrowRepo.Update(c, id, escrow.AuctionEscrowPatchable{
			State:      &released,
			ReleasedAt: &now,
		}); err != nil {
			return err
		}
		return im.eventUC.Emit(c, escrow.EventAuctionReleased, map[string]interface{}{
			"assetContract": id.AssetContract,
			"assetId":       id.AssetId,
			"seller":        e.Seller,
			"winner":        e.Winner,
			"winningBid":    e.WinningBid,
			"fee":           fee,
		})
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("release for auction failed")
		return nil, err
	}

	return &escrow.ReleaseReceipt{
		PayeeAmount:  payee,
		Fee:          fee,
		FeeRecipient: cfg.FeeRecipient,
	}, nil
}

func (im *impl) GetAuctionEscrow(ctx bCtx.Ctx, id escrow.AuctionEscrowId) (*escrow.AuctionEscrow, error) {
	id.AssetContract = id.AssetContract.ToLower()
	return im.auctionEscrowRepo.FindOne(ctx, id)
}

func (im *impl) GetConfig(ctx bCtx.Ctx) (*escrow.Config, error) {
	return im.configRepo.Get(ctx)
}

func (im *impl) UpdateFeePercentage(ctx bCtx.Ctx, caller domain.Address, pct int32) error {
	if pct < 0 || pct > 100 {
		return escrow.ErrInvalidFeePercentage
	}
	return im.patchConfig(ctx, caller, escrow.ConfigPatchable{FeePercentage: &pct}, map[string]interface{}{
		"feePercentage": pct,
	})
}

func (im *impl) UpdateFeeRecipient(ctx bCtx.Ctx, caller domain.Address, recipient domain.Address) error {
	recipient = recipient.ToLower()
	return im.patchConfig(ctx, caller, escrow.ConfigPatchable{FeeRecipient: &recipient}, map[string]interface{}{
		"feeRecipient": recipient,
	})
}

func (im *impl) UpdateMarketplaceContract(ctx bCtx.Ctx, caller domain.Address, contract domain.Address) error {
	contract = contract.ToLower()
	return im.patchConfig(ctx, caller, escrow.ConfigPatchable{MarketplaceContract: &contract}, map[string]interface{}{
		"marketplaceContract": contract,
	})
}

func (im *impl) UpdateAuctionContract(ctx bCtx.Ctx, caller domain.Address, contract domain.Address) error {
	contract = contract.ToLower()
	return im.patchConfig(ctx, caller, escrow.ConfigPatchable{AuctionContract: &contract}, map[string]interface{}{
		"auctionContract": contract,
	})
}

func (im *impl) patchConfig(ctx bCtx.Ctx, caller domain.Address, patchable escrow.ConfigPatchable, args map[string]interface{}) error {
	cfg, err := im.configRepo.Get(ctx)
	if err != nil {
		return err
	}

	if !caller.Equals(cfg.Owner) {
		return escrow.ErrNotOwner
	}

	now := im.clock.Now()
	patchable.UpdatedAt = &now

	if err := im.configRepo.Patch(ctx, patchable); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"patchable": patchable,
		}).Error("failed to configRepo.Patch")
		return err
	}

	return im.eventUC.Emit(ctx, escrow.EventConfigUpdated, args)
}
