package game

import (
	"log/slog"
	"net/http"

	"boardcamp/app/echoServer/controller/httperr"
	"boardcamp/model"
	gamesvc "boardcamp/service/game"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc gamesvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /games
func (h *Controller) Create(c echo.Context) error {
	var req CreateGameReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		h.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	out, err := h.Svc.Create(c.Request().Context(), model.GameInput{
		Name:        req.Name,
		Image:       req.Image,
		StockTotal:  req.StockTotal,
		PricePerDay: req.PricePerDay,
	})
	if err != nil {
		return httperr.Write(c, h.Log, "game create", err)
	}
	return c.JSON(http.StatusCreated, out)
}

// GET /games?name=
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return httperr.Write(c, h.Log, "game list", err)
	}
	if rows == nil {
		rows = []model.Game{}
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /games/:id
func (h *Controller) Detail(c echo.Context) error {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	row, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		return httperr.Write(c, h.Log, "game detail", err)
	}
	return c.JSON(http.StatusOK, row)
}
