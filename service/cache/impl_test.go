package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/service/cache/provider/primitive"
)

type payload struct {
	Bidder string `json:"bidder"`
	Bid    string `json:"bid"`
}

func newTestService() Service {
	return New(ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "test",
		Cache: primitive.NewPrimitive("test", 1),
	})
}

func TestGetSet(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	svc := newTestService()

	out := &payload{}
	req.Equal(ErrNotFound, svc.Get(c, "key", out))

	req.NoError(svc.Set(c, "key", &payload{"0xabc", "1000"}))
	req.NoError(svc.Get(c, "key", out))
	req.Equal(payload{"0xabc", "1000"}, *out)

	req.NoError(svc.Del(c, "key"))
	req.Equal(ErrNotFound, svc.Get(c, "key", out))
}

func TestGetByFunc(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	svc := newTestService()

	calls := 0
	getter := func() (interface{}, error) {
		calls++
		return &payload{"0xabc", "1000"}, nil
	}

	out := &payload{}
	req.NoError(svc.GetByFunc(c, "key", out, getter))
	req.Equal(payload{"0xabc", "1000"}, *out)
	req.Equal(1, calls)

	out = &payload{}
	req.NoError(svc.GetByFunc(c, "key", out, getter))
	req.Equal(payload{"0xabc", "1000"}, *out)
	req.Equal(1, calls)
}

func TestGetByFuncGetterError(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	svc := newTestService()

	mockErr := errors.New("boom")
	out := &payload{}
	err := svc.GetByFunc(c, "key", out, func() (interface{}, error) { return nil, mockErr })
	req.Equal(mockErr, err)
}
