package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/base/log"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/domain/marketplace"
	"github.com/asoebi/goapi/service/query"
)

type userRepoImpl struct {
	q query.Mongo
}

func NewUserRepo(q query.Mongo) marketplace.UserRepo {
	return &userRepoImpl{q}
}

func (im *userRepoImpl) FindOne(ctx ctx.Ctx, address domain.Address) (*marketplace.User, error) {
	res := marketplace.User{}
	err := im.q.FindOne(ctx, domain.TableMarketUsers, bson.M{"address": address.ToLower()}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	return &res, nil
}

func (im *userRepoImpl) Insert(ctx ctx.Ctx, u *marketplace.User) error {
	err := im.q.Insert(ctx, domain.TableMarketUsers, u)
	if err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"user": *u,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}
