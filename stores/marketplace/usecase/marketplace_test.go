package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	clockmocks "github.com/asoebi/goapi/base/clock/mocks"
	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/domain/escrow"
	escrowmocks "github.com/asoebi/goapi/domain/escrow/mocks"
	eventmocks "github.com/asoebi/goapi/domain/event/mocks"
	"github.com/asoebi/goapi/domain/marketplace"
	marketplacemocks "github.com/asoebi/goapi/domain/marketplace/mocks"
	querymocks "github.com/asoebi/goapi/service/query/mocks"
)

var mockCtx = ctx.Background()

const (
	buyer  = domain.Address("0x1111111111111111111111111111111111111111")
	seller = domain.Address("0x2222222222222222222222222222222222222222")
	market = domain.Address("0x00000000000000000000000000000000000000e2")
)

type testDeps struct {
	userRepo    *marketplacemocks.UserRepo
	listingRepo *marketplacemocks.ListingRepo
	orderRepo   *marketplacemocks.OrderRepo
	escrowUC    *escrowmocks.Usecase
	eventUC     *eventmocks.Usecase
	q           *querymocks.Mongo
}

func newTestUsecase() (marketplace.Usecase, *testDeps) {
	deps := &testDeps{
		userRepo:    &marketplacemocks.UserRepo{},
		listingRepo: &marketplacemocks.ListingRepo{},
		orderRepo:   &marketplacemocks.OrderRepo{},
		escrowUC:    &escrowmocks.Usecase{},
		eventUC:     &eventmocks.Usecase{},
		q:           &querymocks.Mongo{},
	}

	clk := &clockmocks.Clock{}
	clk.On("Now").Return(time.Unix(5000, 0).UTC())

	deps.q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
		return run(c)
	})

	uc := New(&MarketplaceUseCaseCfg{
		UserRepo:           deps.userRepo,
		ListingRepo:        deps.listingRepo,
		OrderRepo:          deps.orderRepo,
		EscrowUC:           deps.escrowUC,
		EventUC:            deps.eventUC,
		Query:              deps.q,
		Clock:              clk,
		MarketplaceAddress: market,
	})
	return uc, deps
}

func TestRegister(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.userRepo.On("FindOne", mock.Anything, buyer).Return(nil, domain.ErrNotFound)
	deps.userRepo.On("Insert", mock.Anything, mock.MatchedBy(func(u *marketplace.User) bool {
		return u.Address == buyer && u.Role == marketplace.RoleBuyer
	})).Return(nil)
	deps.eventUC.On("Emit", mock.Anything, marketplace.EventUserRegistered, mock.Anything).Return(nil)

	u, err := uc.Register(mockCtx, buyer, &marketplace.RegisterPayload{
		DisplayName: "ada",
		Role:        marketplace.RoleBuyer,
	})
	req.NoError(err)
	req.Equal("ada", u.DisplayName)
	deps.userRepo.AssertExpectations(t)
}

func TestRegisterTwiceFails(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.userRepo.On("FindOne", mock.Anything, buyer).Return(&marketplace.User{Address: buyer}, nil)

	_, err := uc.Register(mockCtx, buyer, &marketplace.RegisterPayload{
		DisplayName: "ada",
		Role:        marketplace.RoleBuyer,
	})
	req.Equal(marketplace.ErrNotANewUser, err)
}

func TestRegisterInvalidRole(t *testing.T) {
	req := require.New(t)
	uc, _ := newTestUsecase()

	_, err := uc.Register(mockCtx, buyer, &marketplace.RegisterPayload{
		DisplayName: "ada",
		Role:        marketplace.Role(9),
	})
	req.Equal(marketplace.ErrInvalidRole, err)
}

func TestCreateListing(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.userRepo.On("FindOne", mock.Anything, seller).Return(&marketplace.User{
		Address: seller,
		Role:    marketplace.RoleDesigner,
	}, nil)
	deps.listingRepo.On("Insert", mock.Anything, mock.MatchedBy(func(l *marketplace.Listing) bool {
		return l.Seller == seller && l.Active && l.ListingId != ""
	})).Return(nil)
	deps.eventUC.On("Emit", mock.Anything, marketplace.EventListingCreated, mock.Anything).Return(nil)

	l, err := uc.CreateListing(mockCtx, seller, &marketplace.ListingPayload{
		Title: "aso oke gown",
		Price: "1000000000000000000",
	})
	req.NoError(err)
	req.True(l.Active)
	deps.listingRepo.AssertExpectations(t)
}

func TestCreateListingBuyerCannotSell(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.userRepo.On("FindOne", mock.Anything, buyer).Return(&marketplace.User{
		Address: buyer,
		Role:    marketplace.RoleBuyer,
	}, nil)

	_, err := uc.CreateListing(mockCtx, buyer, &marketplace.ListingPayload{
		Title: "gown",
		Price: "1000",
	})
	req.Equal(marketplace.ErrNotSeller, err)
}

func TestCreateListingInvalidPrice(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.userRepo.On("FindOne", mock.Anything, seller).Return(&marketplace.User{
		Address: seller,
		Role:    marketplace.RoleFabricSeller,
	}, nil)

	_, err := uc.CreateListing(mockCtx, seller, &marketplace.ListingPayload{
		Title: "fabric",
		Price: "0",
	})
	req.Equal(marketplace.ErrInvalidPrice, err)
}

func TestRemoveListingOnlySeller(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.listingRepo.On("FindOne", mock.Anything, "listing-1").Return(&marketplace.Listing{
		ListingId: "listing-1",
		Seller:    seller,
		Active:    true,
	}, nil)

	req.Equal(marketplace.ErrNotSeller, uc.RemoveListing(mockCtx, buyer, "listing-1"))
}

func TestGetListingInfos(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.listingRepo.On("FindAll", mock.Anything).Return([]*marketplace.Listing{
		{ListingId: "listing-1", Seller: seller, Price: "1000", Active: true},
	}, nil)
	deps.userRepo.On("FindOne", mock.Anything, seller).Return(&marketplace.User{
		Address:     seller,
		DisplayName: "tailor",
		Role:        marketplace.RoleDesigner,
	}, nil)

	infos, err := uc.GetListingInfos(mockCtx)
	req.NoError(err)
	req.Len(infos, 1)
	req.Equal("tailor", infos[0].SellerName)
	req.Equal("listing-1", infos[0].ListingId)
}

func TestPlaceOrder(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.userRepo.On("FindOne", mock.Anything, buyer).Return(&marketplace.User{Address: buyer}, nil)
	deps.listingRepo.On("FindOne", mock.Anything, "listing-1").Return(&marketplace.Listing{
		ListingId: "listing-1",
		Seller:    seller,
		Price:     "1000000000000000000",
		Active:    true,
	}, nil)
	deps.escrowUC.On("DepositForOrder", mock.Anything, market, mock.MatchedBy(func(p *escrow.OrderDepositPayload) bool {
		return p.Buyer == buyer && p.Seller == seller && p.Amount == "1000000000000000000" && p.OrderId != ""
	})).Return(&escrow.OrderEscrow{State: escrow.StateDeposited}, nil)
	deps.orderRepo.On("Insert", mock.Anything, mock.MatchedBy(func(o *marketplace.Order) bool {
		return o.Buyer == buyer && o.Seller == seller && o.Amount == "1000000000000000000"
	})).Return(nil)
	deps.listingRepo.On("Update", mock.Anything, "listing-1", mock.MatchedBy(func(p marketplace.ListingPatchable) bool {
		return p.Active != nil && !*p.Active
	})).Return(nil)
	deps.eventUC.On("Emit", mock.Anything, marketplace.EventOrderPlaced, mock.Anything).Return(nil)

	o, err := uc.PlaceOrder(mockCtx, buyer, "listing-1")
	req.NoError(err)
	req.Equal("listing-1", o.ListingId)
	deps.escrowUC.AssertExpectations(t)
	deps.listingRepo.AssertExpectations(t)
}

func TestPlaceOrderInactiveListing(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.userRepo.On("FindOne", mock.Anything, buyer).Return(&marketplace.User{Address: buyer}, nil)
	deps.listingRepo.On("FindOne", mock.Anything, "listing-1").Return(&marketplace.Listing{
		ListingId: "listing-1",
		Seller:    seller,
		Active:    false,
	}, nil)

	_, err := uc.PlaceOrder(mockCtx, buyer, "listing-1")
	req.Equal(marketplace.ErrListingInactive, err)
}

func TestPlaceOrderSelfPurchase(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.userRepo.On("FindOne", mock.Anything, seller).Return(&marketplace.User{Address: seller}, nil)
	deps.listingRepo.On("FindOne", mock.Anything, "listing-1").Return(&marketplace.Listing{
		ListingId: "listing-1",
		Seller:    seller,
		Active:    true,
	}, nil)

	_, err := uc.PlaceOrder(mockCtx, seller, "listing-1")
	req.Equal(marketplace.ErrSelfPurchase, err)
}

func TestPlaceOrderUnregisteredBuyer(t *testing.T) {
	req := require.New(t)
	uc, deps := newTestUsecase()

	deps.userRepo.On("FindOne", mock.Anything, buyer).Return(nil, domain.ErrNotFound)

	_, err := uc.PlaceOrder(mockCtx, buyer, "listing-1")
	req.Equal(marketplace.ErrNotRegistered, err)
}
