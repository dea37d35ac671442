package auction

import (
	"time"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/domain"
)

// MinDuration is the shortest allowed span between start and end time
const MinDuration = 10 * time.Minute

// WithdrawLock is the grace period after end time during which only the
// owner can act; the highest bidder may reclaim held funds only after it
const WithdrawLock = 6 * time.Hour

// Type tags an auction for downstream indexing, it does not affect the
// lifecycle rules
type Type int32

const (
	TypeFabric      Type = 0
	TypeReadyToWear Type = 1
)

func (t Type) IsValid() bool {
	return t == TypeFabric || t == TypeReadyToWear
}

// Id is the auction key, one active auction per asset
type Id struct {
	AssetContract domain.Address `json:"assetContract" bson:"assetContract" param:"contract"`
	AssetId       domain.TokenId `json:"assetId" bson:"assetId" param:"assetId"`
}

// Auction is a single-asset, single-winner english auction record
type Auction struct {
	AssetContract domain.Address `json:"assetContract" bson:"assetContract"`
	AssetId       domain.TokenId `json:"assetId" bson:"assetId"`
	Owner         domain.Address `json:"owner" bson:"owner"`

	// wei amount, positive
	MinimumSellingPrice string    `json:"minimumSellingPrice" bson:"minimumSellingPrice"`
	StartTime           time.Time `json:"startTime" bson:"startTime"`
	EndTime             time.Time `json:"endTime" bson:"endTime"`
	Type                Type      `json:"auctionType" bson:"auctionType"`

	// when set, finalize re-validates highestBid >= minimumSellingPrice;
	// when unset, a first bid only has to clear the absolute floor
	// (half the minimum selling price) but settlement below the minimum
	// is still refused
	MinBidMustMeetSellingPrice bool `json:"minBidMustMeetSellingPrice" bson:"minBidMustMeetSellingPrice"`

	Finalized     bool           `json:"finalized" bson:"finalized"`
	HighestBidder domain.Address `json:"highestBidder" bson:"highestBidder"`
	HighestBid    string         `json:"highestBid" bson:"highestBid"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (a *Auction) ToId() Id {
	return Id{
		AssetContract: a.AssetContract,
		AssetId:       a.AssetId,
	}
}

func (a *Auction) HasBid() bool {
	return !a.HighestBidder.IsEmpty() && a.HighestBid != "" && a.HighestBid != "0"
}

// Patchable expresses partial updates, nil means leave unchanged
type Patchable struct {
	MinimumSellingPrice *string         `bson:"minimumSellingPrice,omitempty"`
	StartTime           *time.Time      `bson:"startTime,omitempty"`
	EndTime             *time.Time      `bson:"endTime,omitempty"`
	HighestBidder       *domain.Address `bson:"highestBidder,omitempty"`
	HighestBid          *string         `bson:"highestBid,omitempty"`
	Finalized           *bool           `bson:"finalized,omitempty"`
	UpdatedAt           *time.Time      `bson:"updatedAt,omitempty"`
}

// HighestBidInfo is the read model returned by getHighestBidder
type HighestBidInfo struct {
	Bidder domain.Address `json:"bidder"`
	Bid    string         `json:"bid"`
	// whole-token rendering of Bid
	DisplayBid string `json:"displayBid"`
}

// CreatePayload carries createAuction arguments
type CreatePayload struct {
	AssetContract              domain.Address `json:"assetContract" validate:"required"`
	AssetId                    domain.TokenId `json:"assetId" validate:"required"`
	MinimumSellingPrice        string         `json:"minimumSellingPrice" validate:"required"`
	StartTime                  int64          `json:"startTime" validate:"required"`
	EndTime                    int64          `json:"endTime" validate:"required"`
	Type                       Type           `json:"auctionType"`
	MinBidMustMeetSellingPrice bool           `json:"minBidMustMeetSellingPrice"`
}

type FindAllOptions struct {
	Owner     *domain.Address
	Contract  *domain.Address
	Finalized *bool
	Type      *Type
	EndTimeLT *time.Time
	EndTimeGT *time.Time
	Offset    *int32
	Limit     *int32
	SortBy    *string
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithOwner(owner domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Owner = &owner
		return nil
	}
}

func WithContract(contract domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Contract = &contract
		return nil
	}
}

func WithFinalized(finalized bool) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Finalized = &finalized
		return nil
	}
}

func WithType(t Type) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Type = &t
		return nil
	}
}

func WithEndTimeLT(t time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.EndTimeLT = &t
		return nil
	}
}

func WithEndTimeGT(t time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.EndTimeGT = &t
		return nil
	}
}

func WithPagination(offset, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sort string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SortBy = &sort
		return nil
	}
}

// Repo is the auction record store
type Repo interface {
	FindOne(c ctx.Ctx, id Id) (*Auction, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)
	Count(c ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	Insert(c ctx.Ctx, a *Auction) error
	Update(c ctx.Ctx, id Id, patchable Patchable) error
	Remove(c ctx.Ctx, id Id) error
}

// Usecase enforces the auction lifecycle state machine
type Usecase interface {
	Create(c ctx.Ctx, caller domain.Address, payload *CreatePayload) (*Auction, error)
	PlaceBid(c ctx.Ctx, id Id, bidder domain.Address, value string) error
	Finalize(c ctx.Ctx, id Id, caller domain.Address) error
	Cancel(c ctx.Ctx, id Id, caller domain.Address) error
	WithdrawBid(c ctx.Ctx, id Id, caller domain.Address) error
	RefundBid(c ctx.Ctx, id Id, caller domain.Address) error

	UpdateStartTime(c ctx.Ctx, id Id, caller domain.Address, startTime time.Time) error
	UpdateEndTime(c ctx.Ctx, id Id, caller domain.Address, endTime time.Time) error
	UpdateMinimumSellingPrice(c ctx.Ctx, id Id, caller domain.Address, price string) error

	Get(c ctx.Ctx, id Id) (*Auction, error)
	GetHighestBidder(c ctx.Ctx, id Id) (*HighestBidInfo, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)
}
