package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/base/log"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/domain/event"
	"github.com/asoebi/goapi/service/query"
)

type eventRepoImpl struct {
	q query.Mongo
}

func NewEventRepo(q query.Mongo) event.Repo {
	return &eventRepoImpl{q}
}

func (im *eventRepoImpl) Insert(ctx ctx.Ctx, ev *event.Event) error {
	err := im.q.Insert(ctx, domain.TableEvents, ev)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"event": *ev,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *eventRepoImpl) FindAll(ctx ctx.Ctx, opts ...event.FindAllOptionsFunc) ([]*event.Event, error) {
	options, err := event.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}

	qry := bson.M{}
	if options.Name != nil {
		qry["name"] = *options.Name
	}

	offset := 0
	limit := 0
	if options.Offset != nil {
		offset = int(*options.Offset)
	}
	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	res := []*event.Event{}
	err = im.q.Search(ctx, domain.TableEvents, offset, limit, "-emittedAt", qry, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}
