package auction

import (
	"time"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/domain"
)

// HeldBid is the engine-held claim for one bidder's escrowed bid funds.
// Outbid claims turn refundable immediately; the current highest claim can
// only leave through the time-locked withdraw path.
type HeldBid struct {
	AssetContract domain.Address `json:"assetContract" bson:"assetContract"`
	AssetId       domain.TokenId `json:"assetId" bson:"assetId"`
	Bidder        domain.Address `json:"bidder" bson:"bidder"`
	Amount        string         `json:"amount" bson:"amount"`
	Refundable    bool           `json:"refundable" bson:"refundable"`
	PlacedAt      time.Time      `json:"placedAt" bson:"placedAt"`
}

func (b *HeldBid) ToId() HeldBidId {
	return HeldBidId{
		AssetContract: b.AssetContract,
		AssetId:       b.AssetId,
		Bidder:        b.Bidder,
	}
}

type HeldBidId struct {
	AssetContract domain.Address `json:"assetContract" bson:"assetContract"`
	AssetId       domain.TokenId `json:"assetId" bson:"assetId"`
	Bidder        domain.Address `json:"bidder" bson:"bidder"`
}

type HeldBidPatchable struct {
	Refundable *bool `bson:"refundable,omitempty"`
}

type HeldBidFindAllOptions struct {
	AssetContract *domain.Address
	AssetId       *domain.TokenId
	Bidder        *domain.Address
	Refundable    *bool
}

type HeldBidFindAllOptionsFunc func(*HeldBidFindAllOptions) error

func GetHeldBidFindAllOptions(opts ...HeldBidFindAllOptionsFunc) (HeldBidFindAllOptions, error) {
	res := HeldBidFindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func HeldBidWithAuction(id Id) HeldBidFindAllOptionsFunc {
	return func(options *HeldBidFindAllOptions) error {
		options.AssetContract = &id.AssetContract
		options.AssetId = &id.AssetId
		return nil
	}
}

func HeldBidWithBidder(bidder domain.Address) HeldBidFindAllOptionsFunc {
	return func(options *HeldBidFindAllOptions) error {
		options.Bidder = &bidder
		return nil
	}
}

func HeldBidWithRefundable(refundable bool) HeldBidFindAllOptionsFunc {
	return func(options *HeldBidFindAllOptions) error {
		options.Refundable = &refundable
		return nil
	}
}

// HeldBidRepo stores per-bidder held claims
type HeldBidRepo interface {
	FindOne(c ctx.Ctx, id HeldBidId) (*HeldBid, error)
	FindAll(c ctx.Ctx, opts ...HeldBidFindAllOptionsFunc) ([]*HeldBid, error)
	Upsert(c ctx.Ctx, bid *HeldBid) error
	Update(c ctx.Ctx, id HeldBidId, patchable HeldBidPatchable) error
	Remove(c ctx.Ctx, id HeldBidId) error
}
