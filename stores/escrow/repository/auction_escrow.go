package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/base/database/mongoclient"
	"github.com/asoebi/goapi/base/log"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/domain/escrow"
	"github.com/asoebi/goapi/service/query"
)

type auctionEscrowRepoImpl struct {
	q query.Mongo
}

func NewAuctionEscrowRepo(q query.Mongo) escrow.AuctionEscrowRepo {
	return &auctionEscrowRepoImpl{q}
}

func (im *auctionEscrowRepoImpl) makeQuery(opts ...escrow.AuctionEscrowFindAllOptionsFunc) (bson.M, error) {
	options, err := escrow.GetAuctionEscrowFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	qry := bson.M{}

	if options.Seller != nil {
		qry["seller"] = *options.Seller
	}

	if options.Winner != nil {
		qry["winner"] = *options.Winner
	}

	if options.State != nil {
		qry["state"] = *options.State
	}

	return qry, nil
}

func (im *auctionEscrowRepoImpl) FindOne(ctx ctx.Ctx, id escrow.AuctionEscrowId) (*escrow.AuctionEscrow, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return nil, err
	}

	res := escrow.AuctionEscrow{}
	err = im.q.FindOne(ctx, domain.TableAuctionEscrows, qry, &res)
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

func (im *auctionEscrowRepoImpl) FindAll(ctx ctx.Ctx, opts ...escrow.AuctionEscrowFindAllOptionsFunc) ([]*escrow.AuctionEscrow, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	res := []*escrow.AuctionEscrow{}
	err = im.q.Search(ctx, domain.TableAuctionEscrows, 0, 0, "-createdAt", qry, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *auctionEscrowRepoImpl) Insert(ctx ctx.Ctx, e *escrow.AuctionEscrow) error {
	err := im.q.Insert(ctx, domain.TableAuctionEscrows, e)
	if err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"escrow": *e,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *auctionEscrowRepoImpl) Update(ctx ctx.Ctx, id escrow.AuctionEscrowId, patchable escrow.AuctionEscrowPatchable) error {
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

	err = im.q.Patch(ctx, domain.TableAuctionEscrows, selector, updater)
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
