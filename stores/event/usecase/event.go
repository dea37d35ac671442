package usecase

import (
	"github.com/asoebi/goapi/base/clock"
	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/base/log"
	"github.com/asoebi/goapi/domain/event"
)

type EventUseCaseCfg struct {
	EventRepo event.Repo
	Clock     clock.Clock
}

type impl struct {
	eventRepo event.Repo
	clock     clock.Clock
}

func New(cfg *EventUseCaseCfg) event.Usecase {
	return &impl{
		eventRepo: cfg.EventRepo,
		clock:     cfg.Clock,
	}
}

func (im *impl) Emit(ctx ctx.Ctx, name string, args map[string]interface{}) error {
	ev := &event.Event{
		Name:      name,
		Args:      args,
		EmittedAt: im.clock.Now(),
	}

	if err := im.eventRepo.Insert(ctx, ev); err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"name": name,
		}).Error("failed to eventRepo.Insert")
		return err
	}
	return nil
}

func (im *impl) FindAll(ctx ctx.Ctx, opts ...event.FindAllOptionsFunc) ([]*event.Event, error) {
	res, err := im.eventRepo.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to eventRepo.FindAll")
		return nil, err
	}
	return res, nil
}
