package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/base/database/mongoclient"
	"github.com/asoebi/goapi/base/log"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/domain/auction"
	"github.com/asoebi/goapi/service/query"
)

type auctionRepoImpl struct {
	q query.Mongo
}

func NewAuctionRepo(q query.Mongo) auction.Repo {
	return &auctionRepoImpl{q}
}

func (im *auctionRepoImpl) makeQuery(opts ...auction.FindAllOptionsFunc) (bson.M, error) {
	options, err := auction.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	qry := bson.M{}

	if options.Owner != nil {
		qry["owner"] = *options.Owner
	}

	if options.Contract != nil {
		qry["assetContract"] = *options.Contract
	}

	if options.Finalized != nil {
		qry["finalized"] = *options.Finalized
	}

	if options.Type != nil {
		qry["auctionType"] = *options.Type
	}

	endTimeQuery := bson.M{}
	if options.EndTimeGT != nil {
		endTimeQuery["$gt"] = *options.EndTimeGT
	}

	if options.EndTimeLT != nil {
		endTimeQuery["$lt"] = *options.EndTimeLT
	}

	if len(endTimeQuery) > 0 {
		qry["endTime"] = endTimeQuery
	}

	return qry, nil
}

func (im *auctionRepoImpl) FindOne(ctx ctx.Ctx, id auction.Id) (*auction.Auction, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return nil, err
	}

	res := auction.Auction{}
	err = im.q.FindOne(ctx, domain.TableAuctions, qry, &res)
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

func (im *auctionRepoImpl) FindAll(ctx ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	options, _ := auction.GetFindAllOptions(opts...)

	offset := 0
	limit := 0
	sort := "_id"
	if options.Offset != nil {
		offset = int(*options.Offset)
	}
	if options.Limit != nil {
		limit = int(*options.Limit)
	}
	if options.SortBy != nil {
		sort = *options.SortBy
	}

	res := []*auction.Auction{}
	err = im.q.Search(ctx, domain.TableAuctions, offset, limit, sort, qry, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *auctionRepoImpl) Count(ctx ctx.Ctx, opts ...auction.FindAllOptionsFunc) (int, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return 0, err
	}

	cnt, err := im.q.Count(ctx, domain.TableAuctions, qry)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Count")
		return 0, err
	}

	return cnt, nil
}

func (im *auctionRepoImpl) Insert(ctx ctx.Ctx, a *auction.Auction) error {
	err := im.q.Insert(ctx, domain.TableAuctions, a)
	if err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"auction": *a,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *auctionRepoImpl) Update(ctx ctx.Ctx, id auction.Id, patchable auction.Patchable) error {
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

	err = im.q.Patch(ctx, domain.TableAuctions, selector, updater)
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

func (im *auctionRepoImpl) Remove(ctx ctx.Ctx, id auction.Id) error {
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.q.Remove(ctx, domain.TableAuctions, selector)
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("failed to q.Remove")
		return err
	}

	return nil
}
