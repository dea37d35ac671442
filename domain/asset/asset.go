package asset

import (
	"errors"
	"time"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/domain"
)

var (
	ErrAlreadyMinted = errors.New("asset already minted")
	ErrNotHolder     = errors.New("caller does not hold the asset")
)

// EventTransferred is recorded on every custody change including mint
const EventTransferred = "AssetTransferred"

// Asset is a custody registry entry for one token
type Asset struct {
	Contract  domain.Address `json:"assetContract" bson:"assetContract"`
	TokenId   domain.TokenId `json:"assetId" bson:"assetId"`
	Holder    domain.Address `json:"holder" bson:"holder"`
	MintedAt  time.Time      `json:"mintedAt" bson:"mintedAt"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type Id struct {
	Contract domain.Address `json:"assetContract" bson:"assetContract" param:"contract"`
	TokenId  domain.TokenId `json:"assetId" bson:"assetId" param:"assetId"`
}

func (a *Asset) ToId() Id {
	return Id{
		Contract: a.Contract,
		TokenId:  a.TokenId,
	}
}

type Patchable struct {
	Holder    *domain.Address `bson:"holder,omitempty"`
	UpdatedAt *time.Time      `bson:"updatedAt,omitempty"`
}

type FindAllOptions struct {
	Contract *domain.Address
	Holder   *domain.Address
	Offset   *int32
	Limit    *int32
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

func WithContract(contract domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Contract = &contract
		return nil
	}
}

func WithHolder(holder domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Holder = &holder
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

type Repo interface {
	FindOne(c ctx.Ctx, id Id) (*Asset, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Asset, error)
	Insert(c ctx.Ctx, a *Asset) error
	Update(c ctx.Ctx, id Id, patchable Patchable) error
}

type Usecase interface {
	Mint(c ctx.Ctx, id Id, holder domain.Address) (*Asset, error)
	HolderOf(c ctx.Ctx, id Id) (domain.Address, error)
	// Transfer moves custody, from must be the current holder
	Transfer(c ctx.Ctx, id Id, from, to domain.Address) error
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Asset, error)
}
