package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/base/delivery"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/domain/wallet"
	authMiddleware "github.com/asoebi/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	wallet wallet.Usecase
}

func New(
	e *echo.Echo,
	wallet wallet.Usecase,
	authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{wallet}

	g := e.Group("/wallet")

	g.GET("/:address/balance", h.getBalance)

	g.POST("/deposits", h.deposit, authMiddleware.Auth())

	g.POST("/transfers", h.transfer, authMiddleware.Auth())
}

func (h *handler) getBalance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	balance, err := h.wallet.BalanceOf(ctx, domain.Address(c.Param("address")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Balance string `json:"balance"`
	}{
		Balance: balance,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		Amount string `json:"amount" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.wallet.Deposit(ctx, address, p.Amount); err != nil {
		if err == wallet.ErrInvalidAmount {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) transfer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		To     domain.Address `json:"to" validate:"required"`
		Amount string         `json:"amount" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.wallet.Transfer(ctx, address, p.To, p.Amount); err != nil {
		switch err {
		case wallet.ErrInvalidAmount, wallet.ErrInsufficientFunds:
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		default:
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
		}
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
