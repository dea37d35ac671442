package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/base/delivery"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/domain/escrow"
	authMiddleware "github.com/asoebi/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	escrow escrow.Usecase
}

func New(
	e *echo.Echo,
	escrow escrow.Usecase,
	authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{escrow}

	g := e.Group("/escrow")

	g.GET("/config", h.getConfig)

	g.PUT("/config/fee-percentage", h.updateFeePercentage, authMiddleware.Auth())

	g.PUT("/config/fee-recipient", h.updateFeeRecipient, authMiddleware.Auth())

	g.PUT("/config/marketplace-contract", h.updateMarketplaceContract, authMiddleware.Auth())

	g.PUT("/config/auction-contract", h.updateAuctionContract, authMiddleware.Auth())

	g.GET("/order/:buyer/:seller/:orderId", h.getOrderEscrow)

	g.POST("/order/:buyer/:seller/:orderId/release", h.releaseForOrder, authMiddleware.Auth())

	g.GET("/auction/:contract/:assetId", h.getAuctionEscrow)

	g.POST("/auction/:contract/:assetId/release", h.releaseForAuction, authMiddleware.Auth())
}

func orderEscrowId(c echo.Context) escrow.OrderEscrowId {
	return escrow.OrderEscrowId{
		Buyer:   domain.Address(c.Param("buyer")),
		Seller:  domain.Address(c.Param("seller")),
		OrderId: c.Param("orderId"),
	}
}

func auctionEscrowId(c echo.Context) escrow.AuctionEscrowId {
	return escrow.AuctionEscrowId{
		AssetContract: domain.Address(c.Param("contract")),
		AssetId:       domain.TokenId(c.Param("assetId")),
	}
}

func statusOf(err error) int {
	switch err {
	case domain.ErrNotFound:
		return http.StatusNotFound
	case escrow.ErrNotOwner,
		escrow.ErrUnauthorizedDeposit,
		escrow.ErrUnauthorizedRelease:
		return http.StatusForbidden
	case escrow.ErrAlreadyDeposited:
		return http.StatusConflict
	case escrow.ErrAlreadyReleased,
		escrow.ErrInvalidAmount,
		escrow.ErrInvalidFeePercentage,
		escrow.ErrAssetNotInCustody:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) getConfig(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.escrow.GetConfig(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) updateFeePercentage(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		FeePercentage int32 `json:"feePercentage"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.escrow.UpdateFeePercentage(ctx, address, p.FeePercentage); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) updateFeeRecipient(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		FeeRecipient domain.Address `json:"feeRecipient" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.escrow.UpdateFeeRecipient(ctx, address, p.FeeRecipient); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) updateMarketplaceContract(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		Contract domain.Address `json:"contract" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.escrow.UpdateMarketplaceContract(ctx, address, p.Contract); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) updateAuctionContract(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		Contract domain.Address `json:"contract" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.escrow.UpdateAuctionContract(ctx, address, p.Contract); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) getOrderEscrow(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.escrow.GetOrderEscrow(ctx, orderEscrowId(c))
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) releaseForOrder(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	res, err := h.escrow.ReleaseForOrder(ctx, address, orderEscrowId(c))
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getAuctionEscrow(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.escrow.GetAuctionEscrow(ctx, auctionEscrowId(c))
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) releaseForAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	res, err := h.escrow.ReleaseForAuction(ctx, address, auctionEscrowId(c))
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
