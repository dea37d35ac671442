package usecase

import (
	"github.com/asoebi/goapi/base/clock"
	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/base/log"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/domain/asset"
	"github.com/asoebi/goapi/domain/event"
)

type AssetUseCaseCfg struct {
	AssetRepo asset.Repo
	EventUC   event.Usecase
	Clock     clock.Clock
}

type impl struct {
	assetRepo asset.Repo
	eventUC   event.Usecase
	clock     clock.Clock
}

func New(cfg *AssetUseCaseCfg) asset.Usecase {
	return &impl{
		assetRepo: cfg.AssetRepo,
		eventUC:   cfg.EventUC,
		clock:     cfg.Clock,
	}
}

func (im *impl) Mint(ctx ctx.Ctx, id asset.Id, holder domain.Address) (*asset.Asset, error) {
	if _, err := im.assetRepo.FindOne(ctx, id); err == nil {
		return nil, asset.ErrAlreadyMinted
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	now := im.clock.Now()
	a := &asset.Asset{
		Contract:  id.Contract.ToLower(),
		TokenId:   id.TokenId,
		Holder:    holder.ToLower(),
		MintedAt:  now,
		UpdatedAt: now,
	}

	if err := im.assetRepo.Insert(ctx, a); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to assetRepo.Insert")
		return nil, err
	}

	if err := im.eventUC.Emit(ctx, asset.EventTransferred, map[string]interface{}{
		"assetContract": a.Contract,
		"assetId":       a.TokenId,
		"from":          domain.EmptyAddress,
		"to":            a.Holder,
	}); err != nil {
		return nil, err
	}

	return a, nil
}

func (im *impl) HolderOf(ctx ctx.Ctx, id asset.Id) (domain.Address, error) {
	a, err := im.assetRepo.FindOne(ctx, id)
	if err != nil {
		return domain.EmptyAddress, err
	}
	return a.Holder, nil
}

func (im *impl) Transfer(ctx ctx.Ctx, id asset.Id, from, to domain.Address) error {
	a, err := im.assetRepo.FindOne(ctx, id)
	if err != nil {
		return err
	}

	if !a.Holder.Equals(from) {
		return asset.ErrNotHolder
	}

	holder := to.ToLower()
	now := im.clock.Now()
	err = im.assetRepo.Update(ctx, id, asset.Patchable{
		Holder:    &holder,
		UpdatedAt: &now,
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to assetRepo.Update")
		return err
	}

	return im.eventUC.Emit(ctx, asset.EventTransferred, map[string]interface{}{
		"assetContract": a.Contract,
		"assetId":       a.TokenId,
		"from":          from.ToLower(),
		"to":            holder,
	})
}

func (im *impl) FindAll(ctx ctx.Ctx, opts ...asset.FindAllOptionsFunc) ([]*asset.Asset, error) {
	res, err := im.assetRepo.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to assetRepo.FindAll")
		return nil, err
	}
	return res, nil
}
