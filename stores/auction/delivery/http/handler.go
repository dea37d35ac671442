package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/base/delivery"
	"github.com/asoebi/goapi/base/metrics"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/domain/auction"
	"github.com/asoebi/goapi/middleware"
	authMiddleware "github.com/asoebi/goapi/stores/auth/delivery/http/middleware"
)

var met metrics.Service

type handler struct {
	auction auction.Usecase
}

func New(
	e *echo.Echo,
	auction auction.Usecase,
	authMiddleware *authMiddleware.AuthMiddleware) {
	met = metrics.New("auction")

	h := &handler{auction}

	gs := e.Group("/auctions")

	gs.GET("", h.getAll, middleware.CacheHttp(30*time.Second))

	gs.POST("", h.create, authMiddleware.Auth())

	g := e.Group("/auction/:contract/:assetId")

	g.GET("", h.get)

	g.GET("/highest-bidder", h.getHighestBidder)

	g.POST("/bids", h.placeBid, authMiddleware.Auth())

	g.POST("/finalize", h.finalize, authMiddleware.Auth())

	g.DELETE("", h.cancel, authMiddleware.Auth())

	g.POST("/bids/withdraw", h.withdrawBid, authMiddleware.Auth())

	g.POST("/bids/refund", h.refundBid, authMiddleware.Auth())

	g.PUT("/start-time", h.updateStartTime, authMiddleware.Auth())

	g.PUT("/end-time", h.updateEndTime, authMiddleware.Auth())

	g.PUT("/minimum-selling-price", h.updateMinimumSellingPrice, authMiddleware.Auth())
}

func auctionId(c echo.Context) auction.Id {
	return auction.Id{
		AssetContract: domain.Address(c.Param("contract")),
		AssetId:       domain.TokenId(c.Param("assetId")),
	}
}

func statusOf(err error) int {
	switch err {
	case domain.ErrNotFound:
		return http.StatusNotFound
	case auction.ErrInvalidOwner:
		return http.StatusForbidden
	case auction.ErrAlreadyExists:
		return http.StatusConflict
	case auction.ErrInvalidSellingPrice,
		auction.ErrInvalidStartTime,
		auction.ErrInvalidEndTime,
		auction.ErrAlreadyFinalized,
		auction.ErrAlreadyStarted,
		auction.ErrIsActive,
		auction.ErrNoBid,
		auction.ErrInvalidWinningBid,
		auction.ErrInvalidAuction,
		auction.ErrTimeLock,
		auction.ErrInvalidBid,
		auction.ErrDidNotOutBid,
		auction.ErrNoClaim,
		auction.ErrNotRefundable:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Owner     *domain.Address `query:"owner"`
		Contract  *domain.Address `query:"contract"`
		Finalized *bool           `query:"finalized"`
		Type      *auction.Type   `query:"auctionType"`
		Offset    int32           `query:"offset"`
		Limit     int32           `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []auction.FindAllOptionsFunc{}

	if p.Owner != nil {
		opts = append(opts, auction.WithOwner(*p.Owner))
	}

	if p.Contract != nil {
		opts = append(opts, auction.WithContract(*p.Contract))
	}

	if p.Finalized != nil {
		opts = append(opts, auction.WithFinalized(*p.Finalized))
	}

	if p.Type != nil {
		opts = append(opts, auction.WithType(*p.Type))
	}

	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, auction.WithPagination(p.Offset, p.Limit))
	}

	res, err := h.auction.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	p := &auction.CreatePayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.auction.Create(ctx, address, p)
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.auction.Get(ctx, auctionId(c))
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getHighestBidder(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.auction.GetHighestBidder(ctx, auctionId(c))
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		Value string `json:"value" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.PlaceBid(ctx, auctionId(c), address, p.Value); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	met.BumpSum("bid.placed", 1)
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) finalize(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	if err := h.auction.Finalize(ctx, auctionId(c), address); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	met.BumpSum("auction.finalized", 1)
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	if err := h.auction.Cancel(ctx, auctionId(c), address); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) withdrawBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	if err := h.auction.WithdrawBid(ctx, auctionId(c), address); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) refundBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	if err := h.auction.RefundBid(ctx, auctionId(c), address); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) updateStartTime(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		StartTime int64 `json:"startTime" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.UpdateStartTime(ctx, auctionId(c), address, time.Unix(p.StartTime, 0).UTC()); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) updateEndTime(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		EndTime int64 `json:"endTime" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.UpdateEndTime(ctx, auctionId(c), address, time.Unix(p.EndTime, 0).UTC()); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) updateMinimumSellingPrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		MinimumSellingPrice string `json:"minimumSellingPrice" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.UpdateMinimumSellingPrice(ctx, auctionId(c), address, p.MinimumSellingPrice); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
