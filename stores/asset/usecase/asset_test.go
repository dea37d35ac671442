package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	clockmocks "github.com/asoebi/goapi/base/clock/mocks"
	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/domain/asset"
	assetmocks "github.com/asoebi/goapi/domain/asset/mocks"
	eventmocks "github.com/asoebi/goapi/domain/event/mocks"
)

var mockCtx = ctx.Background()

func newTestUsecase(repo *assetmocks.Repo, eventUC *eventmocks.Usecase) asset.Usecase {
	clk := &clockmocks.Clock{}
	clk.On("Now").Return(time.Unix(1000, 0).UTC())
	return New(&AssetUseCaseCfg{
		AssetRepo: repo,
		EventUC:   eventUC,
		Clock:     clk,
	})
}

func TestMint(t *testing.T) {
	req := require.New(t)
	repo := &assetmocks.Repo{}
	eventUC := &eventmocks.Usecase{}

	id := asset.Id{Contract: "0xCCC", TokenId: "1"}

	repo.On("FindOne", mock.Anything, id).Return(nil, domain.ErrNotFound)
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(a *asset.Asset) bool {
		return a.Contract == "0xccc" && a.Holder == "0xaaa"
	})).Return(nil)
	eventUC.On("Emit", mock.Anything, asset.EventTransferred, mock.Anything).Return(nil)

	uc := newTestUsecase(repo, eventUC)

	a, err := uc.Mint(mockCtx, id, "0xAAA")
	req.NoError(err)
	req.Equal(domain.Address("0xaaa"), a.Holder)
	repo.AssertExpectations(t)
}

func TestMintTwiceFails(t *testing.T) {
	req := require.New(t)
	repo := &assetmocks.Repo{}

	id := asset.Id{Contract: "0xccc", TokenId: "1"}
	repo.On("FindOne", mock.Anything, id).Return(&asset.Asset{Contract: "0xccc", TokenId: "1"}, nil)

	uc := newTestUsecase(repo, &eventmocks.Usecase{})

	_, err := uc.Mint(mockCtx, id, "0xaaa")
	req.Equal(asset.ErrAlreadyMinted, err)
}

func TestTransfer(t *testing.T) {
	req := require.New(t)
	repo := &assetmocks.Repo{}
	eventUC := &eventmocks.Usecase{}

	id := asset.Id{Contract: "0xccc", TokenId: "1"}
	repo.On("FindOne", mock.Anything, id).Return(&asset.Asset{
		Contract: "0xccc",
		TokenId:  "1",
		Holder:   "0xaaa",
	}, nil)
	repo.On("Update", mock.Anything, id, mock.MatchedBy(func(p asset.Patchable) bool {
		return p.Holder != nil && *p.Holder == "0xbbb"
	})).Return(nil)
	eventUC.On("Emit", mock.Anything, asset.EventTransferred, mock.Anything).Return(nil)

	uc := newTestUsecase(repo, eventUC)

	req.NoError(uc.Transfer(mockCtx, id, "0xAAA", "0xBBB"))
	repo.AssertExpectations(t)
}

func TestTransferNotHolder(t *testing.T) {
	req := require.New(t)
	repo := &assetmocks.Repo{}

	id := asset.Id{Contract: "0xccc", TokenId: "1"}
	repo.On("FindOne", mock.Anything, id).Return(&asset.Asset{
		Contract: "0xccc",
		TokenId:  "1",
		Holder:   "0xaaa",
	}, nil)

	uc := newTestUsecase(repo, &eventmocks.Usecase{})

	req.Equal(asset.ErrNotHolder, uc.Transfer(mockCtx, id, "0xbbb", "0xddd"))
}
