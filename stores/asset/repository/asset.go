package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/base/database/mongoclient"
	"github.com/asoebi/goapi/base/log"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/domain/asset"
	"github.com/asoebi/goapi/service/query"
)

type assetRepoImpl struct {
	q query.Mongo
}

func NewAssetRepo(q query.Mongo) asset.Repo {
	return &assetRepoImpl{q}
}

func (im *assetRepoImpl) makeQuery(opts ...asset.FindAllOptionsFunc) (bson.M, error) {
	options, err := asset.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	qry := bson.M{}

	if options.Contract != nil {
		qry["assetContract"] = *options.Contract
	}

	if options.Holder != nil {
		qry["holder"] = *options.Holder
	}

	return qry, nil
}

func (im *assetRepoImpl) FindOne(ctx ctx.Ctx, id asset.Id) (*asset.Asset, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return nil, err
	}

	res := asset.Asset{}
	err = im.q.FindOne(ctx, domain.TableAssets, qry, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	return &res, nil
}

func (im *assetRepoImpl) FindAll(ctx ctx.Ctx, opts ...asset.FindAllOptionsFunc) ([]*asset.Asset, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	options, _ := asset.GetFindAllOptions(opts...)

	offset := 0
	limit := 0
	if options.Offset != nil {
		offset = int(*options.Offset)
	}
	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	res := []*asset.Asset{}
	err = im.q.Search(ctx, domain.TableAssets, offset, limit, "_id", qry, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *assetRepoImpl) Insert(ctx ctx.Ctx, a *asset.Asset) error {
	err := im.q.Insert(ctx, domain.TableAssets, a)
	if err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"asset": *a,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *assetRepoImpl) Update(ctx ctx.Ctx, id asset.Id, patchable asset.Patchable) error {
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"patchable": patchable,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.q.Patch(ctx, domain.TableAssets, selector, updater)
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"updater":  updater,
		}).Error("failed to q.Patch")
		return err
	}

	return nil
}
