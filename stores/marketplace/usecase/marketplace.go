package usecase

import (
	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"

	"github.com/asoebi/goapi/base/clock"
	bCtx "github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/base/log"
	"github.com/asoebi/goapi/base/ptr"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/domain/escrow"
	"github.com/asoebi/goapi/domain/event"
	"github.com/asoebi/goapi/domain/marketplace"
	"github.com/asoebi/goapi/service/query"
)

type MarketplaceUseCaseCfg struct {
	UserRepo    marketplace.UserRepo
	ListingRepo marketplace.ListingRepo
	OrderRepo   marketplace.OrderRepo
	EscrowUC    escrow.Usecase
	EventUC     event.Usecase
	Query       query.Mongo
	Clock       clock.Clock

	// MarketplaceAddress is the identity registered with the escrow
	// ledger for order deposits
	MarketplaceAddress domain.Address
}

type impl struct {
	userRepo           marketplace.UserRepo
	listingRepo        marketplace.ListingRepo
	orderRepo          marketplace.OrderRepo
	escrowUC           escrow.Usecase
	eventUC            event.Usecase
	q                  query.Mongo
	clock              clock.Clock
	marketplaceAddress domain.Address
}

func New(cfg *MarketplaceUseCaseCfg) marketplace.Usecase {
	return &impl{
		userRepo:           cfg.UserRepo,
		listingRepo:        cfg.ListingRepo,
		orderRepo:          cfg.OrderRepo,
		escrowUC:           cfg.EscrowUC,
		eventUC:            cfg.EventUC,
		q:                  cfg.Query,
		clock:              cfg.Clock,
		marketplaceAddress: cfg.MarketplaceAddress.ToLower(),
	}
}

func (im *impl) Register(ctx bCtx.Ctx, address domain.Address, payload *marketplace.RegisterPayload) (*marketplace.User, error) {
	if !payload.Role.IsValid() {
		return nil, marketplace.ErrInvalidRole
	}

	address = address.ToLower()

	if _, err := im.userRepo.FindOne(ctx, address); err == nil {
		return nil, marketplace.ErrNotANewUser
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	u := &marketplace.User{
		Address:     address,
		DisplayName: payload.DisplayName,
		Role:        payload.Role,
		JoinedAt:    im.clock.Now(),
	}

	err := im.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		if err := im.userRepo.Insert(c, u); err != nil {
			return err
		}
		return im.eventUC.Emit(c, marketplace.EventUserRegistered, map[string]interface{}{
			"address": address,
			"role":    payload.Role,
		})
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("register failed")
		return nil, err
	}

	return u, nil
}

func (im *impl) GetUser(ctx bCtx.Ctx, address domain.Address) (*marketplace.User, error) {
	return im.userRepo.FindOne(ctx, address.ToLower())
}

func (im *impl) CreateListing(ctx bCtx.Ctx, seller domain.Address, payload *marketplace.ListingPayload) (*marketplace.Listing, error) {
	seller = seller.ToLower()

	u, err := im.userRepo.FindOne(ctx, seller)
	if err == domain.ErrNotFound {
		return nil, marketplace.ErrNotRegistered
	} else if err != nil {
		return nil, err
	}

	if !u.Role.CanSell() {
		return nil, marketplace.ErrNotSeller
	}

	if value, err := domain.ToBigInt(payload.Price); err != nil || value.Sign() <= 0 {
		return nil, marketplace.ErrInvalidPrice
	}

	now := im.clock.Now()
	l := &marketplace.Listing{
		ListingId: uuid.New().String(),
		Seller:    seller,
		Title:     payload.Title,
		Price:     payload.Price,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = im.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		if err := im.listingRepo.Insert(c, l); err != nil {
			return err
		}
		return im.eventUC.Emit(c, marketplace.EventListingCreated, map[string]interface{}{
			"listingId": l.ListingId,
			"seller":    seller,
			"price":     l.Price,
		})
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"seller": seller,
		}).Error("create listing failed")
		return nil, err
	}

	return l, nil
}

func (im *impl) RemoveListing(ctx bCtx.Ctx, seller domain.Address, listingId string) error {
	l, err := im.listingRepo.FindOne(ctx, listingId)
	if err != nil {
		return err
	}

	if !l.Seller.Equals(seller) {
		return marketplace.ErrNotSeller
	}

	if !l.Active {
		return marketplace.ErrListingInactive
	}

	now := im.clock.Now()
	return im.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		if err := im.listingRepo.Update(c, listingId, marketplace.ListingPatchable{
			Active:    ptr.Bool(false),
			UpdatedAt: &now,
		}); err != nil {
			return err
		}
		return im.eventUC.Emit(c, marketplace.EventListingRemoved, map[string]interface{}{
			"listingId": listingId,
			"seller":    l.Seller,
		})
	})
}

func (im *impl) GetListings(ctx bCtx.Ctx, opts ...marketplace.ListingFindAllOptionsFunc) ([]*marketplace.Listing, error) {
	return im.listingRepo.FindAll(ctx, opts...)
}

func (im *impl) GetListingInfos(ctx bCtx.Ctx, opts ...marketplace.ListingFindAllOptionsFunc) ([]*marketplace.ListingInfo, error) {
	listings, err := im.listingRepo.FindAll(ctx, opts...)
	if err != nil {
		return nil, err
	}

	if len(listings) == 0 {
		return []*marketplace.ListingInfo{}, nil
	}

	// batch get seller profiles
	b := goroutines.NewBatch(10, goroutines.WithBatchSize(len(listings)))
	defer b.Close()
	for i := 0; i < len(listings); i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			info := &marketplace.ListingInfo{Listing: *listings[idx]}
			if u, err := im.userRepo.FindOne(ctx, listings[idx].Seller); err == nil {
				info.SellerName = u.DisplayName
			}
			return info, nil
		})
	}
	b.QueueComplete()

	idx := 0
	infos := make([]*marketplace.ListingInfo, len(listings))
	for ret := range b.Results() {
		if ret.Error() != nil {
			ctx.WithField("err", ret.Error()).Error("get listing info error result")
			continue
		}
		infos[idx] = ret.Value().(*marketplace.ListingInfo)
		idx++
	}
	return infos, nil
}

func (im *impl) PlaceOrder(ctx bCtx.Ctx, buyer domain.Address, listingId string) (*marketplace.Order, error) {
	buyer = buyer.ToLower()

	if _, err := im.userRepo.FindOne(ctx, buyer); err == domain.ErrNotFound {
		return nil, marketplace.ErrNotRegistered
	} else if err != nil {
		return nil, err
	}

	l, err := im.listingRepo.FindOne(ctx, listingId)
	if err != nil {
		return nil, err
	}

	if !l.Active {
		return nil, marketplace.ErrListingInactive
	}

	if l.Seller.Equals(buyer) {
		return nil, marketplace.ErrSelfPurchase
	}

	now := im.clock.Now()
	o := &marketplace.Order{
		OrderId:   uuid.New().String(),
		ListingId: listingId,
		Buyer:     buyer,
		Seller:    l.Seller,
		Amount:    l.Price,
		CreatedAt: now,
	}

	err = im.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		if _, err := im.escrowUC.DepositForOrder(c, im.marketplaceAddress, &escrow.OrderDepositPayload{
			Buyer:   buyer,
			Seller:  l.Seller,
			OrderId: o.OrderId,
			Amount:  l.Price,
		}); err != nil {
			return err
		}

		if err := im.orderRepo.Insert(c, o); err != nil {
			return err
		}

		if err := im.listingRepo.Update(c, listingId, marketplace.ListingPatchable{
			Active:    ptr.Bool(false),
			UpdatedAt: &now,
		}); err != nil {
			return err
		}

		return im.eventUC.Emit(c, marketplace.EventOrderPlaced, map[string]interface{}{
			"orderId":   o.OrderId,
			"listingId": listingId,
			"buyer":     buyer,
			"seller":    l.Seller,
			"amount":    l.Price,
		})
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": listingId,
			"buyer":     buyer,
		}).Error("place order failed")
		return nil, err
	}

	return o, nil
}

func (im *impl) GetOrder(ctx bCtx.Ctx, orderId string) (*marketplace.Order, error) {
	return im.orderRepo.FindOne(ctx, orderId)
}

func (im *impl) GetOrdersByBuyer(ctx bCtx.Ctx, buyer domain.Address) ([]*marketplace.Order, error) {
	return im.orderRepo.FindAllByBuyer(ctx, buyer.ToLower())
}
