package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/base/delivery"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/domain/asset"
	authMiddleware "github.com/asoebi/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	asset asset.Usecase
}

func New(
	e *echo.Echo,
	asset asset.Usecase,
	authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{asset}

	gs := e.Group("/assets")

	gs.GET("", h.getAll)

	gs.POST("", h.mint, authMiddleware.Auth())

	g := e.Group("/asset/:contract/:assetId")

	g.GET("/holder", h.getHolder)

	g.POST("/transfers", h.transfer, authMiddleware.Auth())
}

func assetId(c echo.Context) asset.Id {
	return asset.Id{
		Contract: domain.Address(c.Param("contract")),
		TokenId:  domain.TokenId(c.Param("assetId")),
	}
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Contract *domain.Address `query:"contract"`
		Holder   *domain.Address `query:"holder"`
		Offset   int32           `query:"offset"`
		Limit    int32           `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []asset.FindAllOptionsFunc{}

	if p.Contract != nil {
		opts = append(opts, asset.WithContract(*p.Contract))
	}

	if p.Holder != nil {
		opts = append(opts, asset.WithHolder(*p.Holder))
	}

	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, asset.WithPagination(p.Offset, p.Limit))
	}

	res, err := h.asset.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		Contract domain.Address `json:"contract" validate:"required"`
		TokenId  domain.TokenId `json:"tokenId" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.asset.Mint(ctx, asset.Id{Contract: p.Contract, TokenId: p.TokenId}, address)
	if err != nil {
		if err == asset.ErrAlreadyMinted {
			return delivery.MakeJsonResp(c, http.StatusConflict, err)
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) getHolder(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	holder, err := h.asset.HolderOf(ctx, assetId(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return delivery.MakeJsonResp(c, http.StatusNotFound, err)
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Holder domain.Address `json:"holder"`
	}{
		Holder: holder,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) transfer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		To domain.Address `json:"to" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.asset.Transfer(ctx, assetId(c), address, p.To); err != nil {
		switch err {
		case domain.ErrNotFound:
			return delivery.MakeJsonResp(c, http.StatusNotFound, err)
		case asset.ErrNotHolder:
			return delivery.MakeJsonResp(c, http.StatusForbidden, err)
		default:
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
		}
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
