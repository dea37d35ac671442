package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/base/log"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/domain/wallet"
	"github.com/asoebi/goapi/service/query"
)

type walletRepoImpl struct {
	q query.Mongo
}

func NewWalletRepo(q query.Mongo) wallet.Repo {
	return &walletRepoImpl{q}
}

func (im *walletRepoImpl) FindOne(ctx ctx.Ctx, address domain.Address) (*wallet.Wallet, error) {
	res := wallet.Wallet{}
	err := im.q.FindOne(ctx, domain.TableWallets, bson.M{"address": address.ToLower()}, &res)
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

func (im *walletRepoImpl) Upsert(ctx ctx.Ctx, w *wallet.Wallet) error {
	w.Address = w.Address.ToLower()
	err := im.q.Upsert(ctx, domain.TableWallets, bson.M{"address": w.Address}, w)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"wallet": *w,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}
