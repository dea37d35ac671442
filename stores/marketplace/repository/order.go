package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/base/log"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/domain/marketplace"
	"github.com/asoebi/goapi/service/query"
)

type orderRepoImpl struct {
	q query.Mongo
}

func NewOrderRepo(q query.Mongo) marketplace.OrderRepo {
	return &orderRepoImpl{q}
}

func (im *orderRepoImpl) FindOne(ctx ctx.Ctx, orderId string) (*marketplace.Order, error) {
	res := marketplace.Order{}
	err := im.q.FindOne(ctx, domain.TableMarketOrders, bson.M{"orderId": orderId}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"orderId": orderId,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	return &res, nil
}

func (im *orderRepoImpl) FindAllByBuyer(ctx ctx.Ctx, buyer domain.Address) ([]*marketplace.Order, error) {
	res := []*marketplace.Order{}
	err := im.q.Search(ctx, domain.TableMarketOrders, 0, 0, "-createdAt", bson.M{"buyer": buyer.ToLower()}, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"buyer": buyer,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *orderRepoImpl) Insert(ctx ctx.Ctx, o *marketplace.Order) error {
	err := im.q.Insert(ctx, domain.TableMarketOrders, o)
	if err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"order": *o,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}
