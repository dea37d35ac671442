package escrow

import (
	"time"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/domain"
)

// ConfigKey is the fixed key of the singleton config document
const ConfigKey = "escrow"

// Config is the escrow service configuration, owner-mutable at runtime
type Config struct {
	Key                 string         `json:"-" bson:"key"`
	Owner               domain.Address `json:"owner" bson:"owner"`
	FeePercentage       int32          `json:"feePercentage" bson:"feePercentage"`
	FeeRecipient        domain.Address `json:"feeRecipient" bson:"feeRecipient"`
	MarketplaceContract domain.Address `json:"marketplaceContract" bson:"marketplaceContract"`
	AuctionContract     domain.Address `json:"auctionContract" bson:"auctionContract"`
	UpdatedAt           time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type ConfigPatchable struct {
	FeePercentage       *int32          `bson:"feePercentage,omitempty"`
	FeeRecipient        *domain.Address `bson:"feeRecipient,omitempty"`
	MarketplaceContract *domain.Address `bson:"marketplaceContract,omitempty"`
	AuctionContract     *domain.Address `bson:"auctionContract,omitempty"`
	UpdatedAt           *time.Time      `bson:"updatedAt,omitempty"`
}

type ConfigRepo interface {
	Get(c ctx.Ctx) (*Config, error)
	Upsert(c ctx.Ctx, cfg *Config) error
	Patch(c ctx.Ctx, patchable ConfigPatchable) error
}
