package escrow

import (
	"time"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/domain"
)

// State of an escrow entry. An entry that was never deposited has no
// record at all, so StateNonExistent only shows up in read models.
type State int32

const (
	StateNonExistent State = 0
	StateDeposited   State = 1
	StateReleased    State = 2
)

// OrderEscrowId keys a fixed-price purchase escrow
type OrderEscrowId struct {
	Buyer   domain.Address `json:"buyer" bson:"buyer"`
	Seller  domain.Address `json:"seller" bson:"seller"`
	OrderId string         `json:"orderId" bson:"orderId"`
}

// OrderEscrow holds a buyer's payment until release splits it between
// seller and fee recipient
type OrderEscrow struct {
	Buyer   domain.Address `json:"buyer" bson:"buyer"`
	Seller  domain.Address `json:"seller" bson:"seller"`
	OrderId string         `json:"orderId" bson:"orderId"`
	Amount  string         `json:"amount" bson:"amount"`
	State   State          `json:"state" bson:"state"`

	CreatedAt  time.Time  `json:"createdAt" bson:"createdAt"`
	ReleasedAt *time.Time `json:"releasedAt,omitempty" bson:"releasedAt,omitempty"`
}

func (e *OrderEscrow) ToId() OrderEscrowId {
	return OrderEscrowId{
		Buyer:   e.Buyer,
		Seller:  e.Seller,
		OrderId: e.OrderId,
	}
}

type OrderEscrowPatchable struct {
	State      *State     `bson:"state,omitempty"`
	ReleasedAt *time.Time `bson:"releasedAt,omitempty"`
}

// AuctionEscrowId keys a settlement escrow, one per asset
type AuctionEscrowId struct {
	AssetContract domain.Address `json:"assetContract" bson:"assetContract"`
	AssetId       domain.TokenId `json:"assetId" bson:"assetId"`
}

// AuctionEscrow holds the winning bid between finalize and release
type AuctionEscrow struct {
	AssetContract domain.Address `json:"assetContract" bson:"assetContract"`
	AssetId       domain.TokenId `json:"assetId" bson:"assetId"`
	Seller        domain.Address `json:"seller" bson:"seller"`
	Winner        domain.Address `json:"winner" bson:"winner"`
	WinningBid    string         `json:"winningBid" bson:"winningBid"`
	State         State          `json:"state" bson:"state"`

	CreatedAt  time.Time  `json:"createdAt" bson:"createdAt"`
	ReleasedAt *time.Time `json:"releasedAt,omitempty" bson:"releasedAt,omitempty"`
}

func (e *AuctionEscrow) ToId() AuctionEscrowId {
	return AuctionEscrowId{
		AssetContract: e.AssetContract,
		AssetId:       e.AssetId,
	}
}

type AuctionEscrowPatchable struct {
	State      *State     `bson:"state,omitempty"`
	ReleasedAt *time.Time `bson:"releasedAt,omitempty"`
}

// OrderDepositPayload carries depositForOrder arguments, only the
// marketplace identity may call it on the buyer's behalf
type OrderDepositPayload struct {
	Buyer   domain.Address `json:"buyer" validate:"required"`
	Seller  domain.Address `json:"seller" validate:"required"`
	OrderId string         `json:"orderId" validate:"required"`
	Amount  string         `json:"amount" validate:"required"`
}

// AuctionDepositPayload carries depositForAuction arguments, only the
// auction engine identity may call it
type AuctionDepositPayload struct {
	AssetContract domain.Address `json:"assetContract" validate:"required"`
	AssetId       domain.TokenId `json:"assetId" validate:"required"`
	Seller        domain.Address `json:"seller" validate:"required"`
	Winner        domain.Address `json:"winner" validate:"required"`
	WinningBid    string         `json:"winningBid" validate:"required"`
}

// ReleaseReceipt reports how a released amount was split
type ReleaseReceipt struct {
	PayeeAmount  string         `json:"payeeAmount"`
	Fee          string         `json:"fee"`
	FeeRecipient domain.Address `json:"feeRecipient"`
}

type OrderEscrowRepo interface {
	FindOne(c ctx.Ctx, id OrderEscrowId) (*OrderEscrow, error)
	FindAll(c ctx.Ctx, opts ...OrderEscrowFindAllOptionsFunc) ([]*OrderEscrow, error)
	Insert(c ctx.Ctx, e *OrderEscrow) error
	Update(c ctx.Ctx, id OrderEscrowId, patchable OrderEscrowPatchable) error
}

type AuctionEscrowRepo interface {
	FindOne(c ctx.Ctx, id AuctionEscrowId) (*AuctionEscrow, error)
	FindAll(c ctx.Ctx, opts ...AuctionEscrowFindAllOptionsFunc) ([]*AuctionEscrow, error)
	Insert(c ctx.Ctx, e *AuctionEscrow) error
	Update(c ctx.Ctx, id AuctionEscrowId, patchable AuctionEscrowPatchable) error
}

// Usecase is the fund-custody ledger
type Usecase interface {
	DepositForOrder(c ctx.Ctx, caller domain.Address, payload *OrderDepositPayload) (*OrderEscrow, error)
	ReleaseForOrder(c ctx.Ctx, caller domain.Address, id OrderEscrowId) (*ReleaseReceipt, error)
	GetOrderEscrow(c ctx.Ctx, id OrderEscrowId) (*OrderEscrow, error)

	DepositForAuction(c ctx.Ctx, caller domain.Address, payload *AuctionDepositPayload) (*AuctionEscrow, error)
	ReleaseForAuction(c ctx.Ctx, caller domain.Address, id AuctionEscrowId) (*ReleaseReceipt, error)
	GetAuctionEscrow(c ctx.Ctx, id AuctionEscrowId) (*AuctionEscrow, error)

	GetConfig(c ctx.Ctx) (*Config, error)
	UpdateFeePercentage(c ctx.Ctx, caller domain.Address, pct int32) error
	UpdateFeeRecipient(c ctx.Ctx, caller domain.Address, recipient domain.Address) error
	UpdateMarketplaceContract(c ctx.Ctx, caller domain.Address, contract domain.Address) error
	UpdateAuctionContract(c ctx.Ctx, caller domain.Address, contract domain.Address) error
}
