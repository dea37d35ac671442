package marketplace

import (
	"errors"
	"time"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/domain"
)

var (
	ErrNotANewUser     = errors.New("address already registered")
	ErrNotRegistered   = errors.New("address not registered")
	ErrInvalidRole     = errors.New("invalid role")
	ErrNotSeller       = errors.New("caller is not the seller")
	ErrListingInactive = errors.New("listing is not active")
	ErrInvalidPrice    = errors.New("invalid price")
	ErrSelfPurchase    = errors.New("seller cannot buy own listing")
)

const (
	EventUserRegistered = "UserRegistered"
	EventListingCreated = "ListingCreated"
	EventListingRemoved = "ListingRemoved"
	EventOrderPlaced    = "OrderPlaced"
)

// Role of a registered marketplace user
type Role int32

const (
	RoleBuyer        Role = 0
	RoleFabricSeller Role = 1
	RoleDesigner     Role = 2
)

func (r Role) IsValid() bool {
	return r == RoleBuyer || r == RoleFabricSeller || r == RoleDesigner
}

func (r Role) CanSell() bool {
	return r == RoleFabricSeller || r == RoleDesigner
}

type User struct {
	Address     domain.Address `json:"address" bson:"address"`
	DisplayName string         `json:"displayName" bson:"displayName"`
	Role        Role           `json:"role" bson:"role"`
	JoinedAt    time.Time      `json:"joinedAt" bson:"joinedAt"`
}

type RegisterPayload struct {
	DisplayName string `json:"displayName" validate:"required"`
	Role        Role   `json:"role"`
}

type Listing struct {
	ListingId string         `json:"listingId" bson:"listingId"`
	Seller    domain.Address `json:"seller" bson:"seller"`
	Title     string         `json:"title" bson:"title"`
	Price     string         `json:"price" bson:"price"`
	Active    bool           `json:"active" bson:"active"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// ListingInfo is the listing read model with the seller profile folded in
type ListingInfo struct {
	Listing
	SellerName string `json:"sellerName"`
}

type ListingPatchable struct {
	Price     *string    `bson:"price,omitempty"`
	Active    *bool      `bson:"active,omitempty"`
	UpdatedAt *time.Time `bson:"updatedAt,omitempty"`
}

type ListingPayload struct {
	Title string `json:"title" validate:"required"`
	Price string `json:"price" validate:"required"`
}

// Order is a fixed-price purchase, its funds sit in the order escrow
// until the buyer confirms receipt
type Order struct {
	OrderId   string         `json:"orderId" bson:"orderId"`
	ListingId string         `json:"listingId" bson:"listingId"`
	Buyer     domain.Address `json:"buyer" bson:"buyer"`
	Seller    domain.Address `json:"seller" bson:"seller"`
	Amount    string         `json:"amount" bson:"amount"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

type ListingFindAllOptions struct {
	Seller *domain.Address
	Active *bool
	Offset *int32
	Limit  *int32
}

type ListingFindAllOptionsFunc func(*ListingFindAllOptions) error

func GetListingFindAllOptions(opts ...ListingFindAllOptionsFunc) (ListingFindAllOptions, error) {
	res := ListingFindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func ListingWithSeller(seller domain.Address) ListingFindAllOptionsFunc {
	return func(options *ListingFindAllOptions) error {
		options.Seller = &seller
		return nil
	}
}

func ListingWithActive(active bool) ListingFindAllOptionsFunc {
	return func(options *ListingFindAllOptions) error {
		options.Active = &active
		return nil
	}
}

func ListingWithPagination(offset, limit int32) ListingFindAllOptionsFunc {
	return func(options *ListingFindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type UserRepo interface {
	FindOne(c ctx.Ctx, address domain.Address) (*User, error)
	Insert(c ctx.Ctx, u *User) error
}

type ListingRepo interface {
	FindOne(c ctx.Ctx, listingId string) (*Listing, error)
	FindAll(c ctx.Ctx, opts ...ListingFindAllOptionsFunc) ([]*Listing, error)
	Insert(c ctx.Ctx, l *Listing) error
	Update(c ctx.Ctx, listingId string, patchable ListingPatchable) error
}

type OrderRepo interface {
	FindOne(c ctx.Ctx, orderId string) (*Order, error)
	FindAllByBuyer(c ctx.Ctx, buyer domain.Address) ([]*Order, error)
	Insert(c ctx.Ctx, o *Order) error
}

type Usecase interface {
	Register(c ctx.Ctx, address domain.Address, payload *RegisterPayload) (*User, error)
	GetUser(c ctx.Ctx, address domain.Address) (*User, error)

	CreateListing(c ctx.Ctx, seller domain.Address, payload *ListingPayload) (*Listing, error)
	RemoveListing(c ctx.Ctx, seller domain.Address, listingId string) error
	GetListings(c ctx.Ctx, opts ...ListingFindAllOptionsFunc) ([]*Listing, error)
	GetListingInfos(c ctx.Ctx, opts ...ListingFindAllOptionsFunc) ([]*ListingInfo, error)

	// PlaceOrder debits the buyer and deposits the price into the order
	// escrow in one transaction
	PlaceOrder(c ctx.Ctx, buyer domain.Address, listingId string) (*Order, error)
	GetOrder(c ctx.Ctx, orderId string) (*Order, error)
	GetOrdersByBuyer(c ctx.Ctx, buyer domain.Address) ([]*Order, error)
}
