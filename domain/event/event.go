package event

import (
	"time"

	"github.com/asoebi/goapi/base/ctx"
)

// Event is an append-only audit record of a state transition
type Event struct {
	Name      string                 `json:"name" bson:"name"`
	Args      map[string]interface{} `json:"args" bson:"args"`
	EmittedAt time.Time              `json:"emittedAt" bson:"emittedAt"`
}

type FindAllOptions struct {
	Name   *string
	Offset *int32
	Limit  *int32
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithName(name string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Name = &name
		return nil
	}
}

func WithPagination(offset, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type Repo interface {
	Insert(c ctx.Ctx, ev *Event) error
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Event, error)
}

type Usecase interface {
	Emit(c ctx.Ctx, name string, args map[string]interface{}) error
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Event, error)
}
