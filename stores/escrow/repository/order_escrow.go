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

type orderEscrowRepoImpl struct {
	q query.Mongo
}

func NewOrderEscrowRepo(q query.Mongo) escrow.OrderEscrowRepo {
	return &orderEscrowRepoImpl{q}
}

func (im *orderEscrowRepoImpl) makeQuery(opts ...escrow.OrderEscrowFindAllOptionsFunc) (bson.M, error) {
	options, err := escrow.GetOrderEscrowFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	qry := bson.M{}

	if options.Buyer != nil {
		qry["buyer"] = *options.Buyer
	}

	if options.Seller != nil {
		qry["seller"] = *options.Seller
	}

	if options.State != nil {
		qry["state"] = *options.State
	}

	return qry, nil
}

func (im *orderEscrowRepoImpl) FindOne(ctx ctx.Ctx, id escrow.OrderEscrowId) (*escrow.OrderEscrow, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return nil, err
	}

	res := escrow.OrderEscrow{}
	err = im.q.FindOne(ctx, domain.TableOrderEscrows, qry, &res)
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

func (im *orderEscrowRepoImpl) FindAll(ctx ctx.Ctx, opts ...escrow.OrderEscrowFindAllOptionsFunc) ([]*escrow.OrderEscrow, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	res := []*escrow.OrderEscrow{}
	err = im.q.Search(ctx, domain.TableOrderEscrows, 0, 0, "-createdAt", qry, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *orderEscrowRepoImpl) Insert(ctx ctx.Ctx, e *escrow.OrderEscrow) error {
	err := im.q.Insert(ctx, domain.TableOrderEscrows, e)
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

func (im *orderEscrowRepoImpl) Update(ctx ctx.Ctx, id escrow.OrderEscrowId, patchable escrow.OrderEscrowPatchable) error {
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

	err = im.q.Patch(ctx, domain.TableOrderEscrows, selector, updater)
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
