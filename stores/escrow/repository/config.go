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

type configRepoImpl struct {
	q query.Mongo
}

func NewConfigRepo(q query.Mongo) escrow.ConfigRepo {
	return &configRepoImpl{q}
}

func (im *configRepoImpl) Get(ctx ctx.Ctx) (*escrow.Config, error) {
	res := escrow.Config{}
	err := im.q.FindOne(ctx, domain.TableEscrowConfigs, bson.M{"key": escrow.ConfigKey}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	return &res, nil
}

func (im *configRepoImpl) Upsert(ctx ctx.Ctx, cfg *escrow.Config) error {
	cfg.Key = escrow.ConfigKey
	err := im.q.Upsert(ctx, domain.TableEscrowConfigs, bson.M{"key": escrow.ConfigKey}, cfg)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"config": *cfg,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}

func (im *configRepoImpl) Patch(ctx ctx.Ctx, patchable escrow.ConfigPatchable) error {
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"patchable": patchable,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.q.Patch(ctx, domain.TableEscrowConfigs, bson.M{"key": escrow.ConfigKey}, updater)
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"updater": updater,
		}).Error("failed to q.Patch")
		return err
	}

	return nil
}
