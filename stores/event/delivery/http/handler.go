package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/base/delivery"
	"github.com/asoebi/goapi/domain/event"
	"github.com/asoebi/goapi/middleware"
)

type handler struct {
	event event.Usecase
}

func New(e *echo.Echo, event event.Usecase) {
	h := &handler{event}

	g := e.Group("/events")

	g.GET("", h.getAll, middleware.CacheHttp(10*time.Second))
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Name   *string `query:"name"`
		Offset int32   `query:"offset"`
		Limit  int32   `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []event.FindAllOptionsFunc{}

	if p.Name != nil {
		opts = append(opts, event.WithName(*p.Name))
	}

	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, event.WithPagination(p.Offset, p.Limit))
	}

	res, err := h.event.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
