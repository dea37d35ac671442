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

type heldBidRepoImpl struct {
	q query.Mongo
}

func NewHeldBidRepo(q query.Mongo) auction.HeldBidRepo {
	return &heldBidRepoImpl{q}
}

func (im *heldBidRepoImpl) makeQuery(opts ...auction.HeldBidFindAllOptionsFunc) (bson.M, error) {
	options, err := auction.GetHeldBidFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	qry := bson.M{}

	if options.AssetContract != nil {
		qry["assetContract"] = *options.AssetContract
	}

	if options.AssetId != nil {
		qry["assetId"] = *options.AssetId
	}

	if options.Bidder != nil {
		qry["bidder"] = *options.Bidder
	}

	if options.Refundable != nil {
		qry["refundable"] = *options.Refundable
	}

	return qry, nil
}

func (im *heldBidRepoImpl) FindOne(ctx ctx.Ctx, id auction.HeldBidId) (*auction.HeldBid, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return nil, err
	}

	res := auction.HeldBid{}
	err = im.q.FindOne(ctx, domain.TableHeldBids, qry, &res)
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

func (im *heldBidRepoImpl) FindAll(ctx ctx.Ctx, opts ...auction.HeldBidFindAllOptionsFunc) ([]*auction.HeldBid, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	res := []*auction.HeldBid{}
	err = im.q.Search(ctx, domain.TableHeldBids, 0, 0, "_id", qry, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *heldBidRepoImpl) Upsert(ctx ctx.Ctx, bid *auction.HeldBid) error {
	id := bid.ToId()
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.q.Upsert(ctx, domain.TableHeldBids, selector, bid)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"heldBid":  *bid,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}

func (im *heldBidRepoImpl) Update(ctx ctx.Ctx, id auction.HeldBidId, patchable auction.HeldBidPatchable) error {
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

	err = im.q.Patch(ctx, domain.TableHeldBids, selector, updater)
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

func (im *heldBidRepoImpl) Remove(ctx ctx.Ctx, id auction.HeldBidId) error {
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.q.Remove(ctx, domain.TableHeldBids, selector)
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
