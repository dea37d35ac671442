package ctx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithValue(t *testing.T) {
	req := require.New(t)

	c := Background()
	c = WithValue(c, "auctionKey", "0xabc:1")

	req.Equal("0xabc:1", c.Value("auctionKey"))
}

func TestWithValues(t *testing.T) {
	req := require.New(t)

	c := Background()
	c = WithValues(c, map[string]interface{}{
		"contract": "0xabc",
		"assetId":  "1",
	})

	req.Equal("0xabc", c.Value("contract"))
	req.Equal("1", c.Value("assetId"))
}

func TestWithCancel(t *testing.T) {
	req := require.New(t)

	c, cancel := WithCancel(Background())
	cancel()

	select {
	case <-c.Done():
	default:
		req.Fail("context should be canceled")
	}
}
