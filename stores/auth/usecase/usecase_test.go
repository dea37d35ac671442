package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/stores/auth/usecase"
)

func TestSignAndParseToken(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret")

	address := "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"

	tkn, err := u.SignToken(ctx, domain.Address(address))
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)

	ads, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, "0x71c7656ec7ab88b098defb751b7401b5f6d8976f", ads)
}

func TestSignTokenRejectsBadAddress(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret")

	_, err := u.SignToken(ctx, "not-an-address")
	assert.Equal(t, domain.ErrInvalidAddress, err)
}

func TestParseTokenRejectsForgedToken(t *testing.T) {
	ctx := ctx.Background()

	signer := usecase.New("jwt-secret")
	other := usecase.New("another-secret")

	tkn, err := signer.SignToken(ctx, "0x71c7656ec7ab88b098defb751b7401b5f6d8976f")
	assert.NoError(t, err)

	_, err = other.ParseToken(ctx, tkn)
	assert.Error(t, err)
}
