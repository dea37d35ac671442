package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/base/database/mongoclient"
	"github.com/asoebi/goapi/base/log"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/domain/marketplace"
	"github.com/asoebi/goapi/service/query"
)

type listingRepoImpl struct {
	q query.Mongo
}

func NewListingRepo(q query.Mongo) marketplace.ListingRepo {
	return &listingRepoImpl{q}
}

func (im *listingRepoImpl) makeQuery(opts ...marketplace.ListingFindAllOptionsFunc) (bson.M, error) {
	options, err := marketplace.GetListingFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	qry := bson.M{}

	if options.Seller != nil {
		qry["seller"] = *options.Seller
	}

	if options.Active != nil {
		qry["active"] = *options.Active
	}

	return qry, nil
}

func (im *listingRepoImpl) FindOne(ctx ctx.Ctx, listingId string) (*marketplace.Listing, error) {
	res := marketplace.Listing{}
	err := im.q.FindOne(ctx, domain.TableListings, bson.M{"listingId": listingId}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": listingId,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	return &res, nil
}

func (im *listingRepoImpl) FindAll(ctx ctx.Ctx, opts ...marketplace.ListingFindAllOptionsFunc) ([]*marketplace.Listing, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	options, _ := marketplace.GetListingFindAllOptions(opts...)

	offset := int32(0)
	limit := int32(0)
	if options.Offset != nil {
		offset = *options.Offset
	}
	if options.Limit != nil {
		limit = *options.Limit
	}

	res := []*marketplace.Listing{}
	err = im.q.Search(ctx, domain.TableListings, int(offset), int(limit), "-createdAt", qry, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *listingRepoImpl) Insert(ctx ctx.Ctx, l *marketplace.Listing) error {
	err := im.q.Insert(ctx, domain.TableListings, l)
	if err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"listing": *l,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *listingRepoImpl) Update(ctx ctx.Ctx, listingId string, patchable marketplace.ListingPatchable) error {
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"patchable": patchable,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.q.Patch(ctx, domain.TableListings, bson.M{"listingId": listingId}, updater)
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": listingId,
			"updater":   updater,
		}).Error("failed to q.Patch")
		return err
	}

	return nil
}
