package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/base/delivery"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/domain/escrow"
	"github.com/asoebi/goapi/domain/marketplace"
	"github.com/asoebi/goapi/middleware"
	authMiddleware "github.com/asoebi/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	marketplace marketplace.Usecase
}

func New(
	e *echo.Echo,
	marketplace marketplace.Usecase,
	authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{marketplace}

	g := e.Group("/marketplace")

	g.POST("/users", h.register, authMiddleware.Auth())

	g.GET("/user/:address", h.getUser)

	g.GET("/listings", h.getListings, middleware.CacheHttp(15*time.Second))

	g.POST("/listings", h.createListing, authMiddleware.Auth())

	g.DELETE("/listing/:listingId", h.removeListing, authMiddleware.Auth())

	g.POST("/orders", h.placeOrder, authMiddleware.Auth())

	g.GET("/orders", h.getOrders, authMiddleware.Auth())

	g.GET("/order/:orderId", h.getOrder)
}

func statusOf(err error) int {
	switch err {
	case domain.ErrNotFound:
		return http.StatusNotFound
	case marketplace.ErrNotANewUser:
		return http.StatusConflict
	case marketplace.ErrNotSeller:
		return http.StatusForbidden
	case marketplace.ErrNotRegistered,
		marketplace.ErrInvalidRole,
		marketplace.ErrListingInactive,
		marketplace.ErrInvalidPrice,
		marketplace.ErrSelfPurchase,
		escrow.ErrInvalidAmount,
		escrow.ErrAlreadyDeposited:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) register(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	p := &marketplace.RegisterPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.marketplace.Register(ctx, address, p)
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) getUser(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.marketplace.GetUser(ctx, domain.Address(c.Param("address")))
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Seller *domain.Address `query:"seller"`
		Active *bool           `query:"active"`
		Offset int32           `query:"offset"`
		Limit  int32           `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []marketplace.ListingFindAllOptionsFunc{}

	if p.Seller != nil {
		opts = append(opts, marketplace.ListingWithSeller(*p.Seller))
	}

	if p.Active != nil {
		opts = append(opts, marketplace.ListingWithActive(*p.Active))
	}

	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, marketplace.ListingWithPagination(p.Offset, p.Limit))
	}

	res, err := h.marketplace.GetListingInfos(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) createListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	p := &marketplace.ListingPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.marketplace.CreateListing(ctx, address, p)
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) removeListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	if err := h.marketplace.RemoveListing(ctx, address, c.Param("listingId")); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) placeOrder(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		ListingId string `json:"listingId" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.marketplace.PlaceOrder(ctx, address, p.ListingId)
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) getOrders(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	res, err := h.marketplace.GetOrdersByBuyer(ctx, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getOrder(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.marketplace.GetOrder(ctx, c.Param("orderId"))
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
