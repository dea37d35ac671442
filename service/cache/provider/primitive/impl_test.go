package primitive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/service/cache/provider"
)

func TestGetSetDel(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	p := NewPrimitive("test", 1)

	_, _, err := p.Get(c, "missing")
	req.Equal(provider.ErrNotFound, err)

	req.NoError(p.Set(c, "key", []byte("value"), time.Minute))

	val, _, err := p.Get(c, "key")
	req.NoError(err)
	req.Equal([]byte("value"), val)

	req.NoError(p.Del(c, "key"))

	_, _, err = p.Get(c, "key")
	req.Equal(provider.ErrNotFound, err)
}

func TestIncr(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	p := NewPrimitive("test", 1)

	req.NoError(p.Set(c, "counter", []byte("41"), time.Minute))

	v, _, err := p.Incr(c, "counter", 1)
	req.NoError(err)
	req.Equal(int64(42), v)
}
