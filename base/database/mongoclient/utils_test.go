package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/asoebi/goapi/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	req := require.New(t)

	type patchable struct {
		Finalized     *bool   `bson:"finalized,omitempty"`
		HighestBid    *string `bson:"highestBid,omitempty"`
		HighestBidder *string `bson:"highestBidder,omitempty"`
		Skipped       string  `bson:"-"`
	}

	m, err := MakeBsonM(&patchable{
		Finalized:  ptr.Bool(true),
		HighestBid: ptr.String("1500000000000000000"),
		Skipped:    "nope",
	})
	req.NoError(err)
	req.Equal(bson.M{
		"finalized":  true,
		"highestBid": "1500000000000000000",
	}, m)
}

func TestMakeBsonMZeroValues(t *testing.T) {
	req := require.New(t)

	type selector struct {
		Contract string `bson:"assetContract"`
		AssetId  string `bson:"assetId"`
		Ignored  string `bson:"ignored,omitempty"`
	}

	m, err := MakeBsonM(selector{Contract: "0xabc", AssetId: "1"})
	req.NoError(err)
	req.Equal(bson.M{
		"assetContract": "0xabc",
		"assetId":       "1",
	}, m)
}
