package rental

import (
	"log/slog"
	"net/http"
	"strconv"

	"boardcamp/app/echoServer/controller/httperr"
	"boardcamp/model"
	rs "boardcamp/service/rental"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	Log *slog.Logger
}

// Create a rental
// @Summary      Rent a game
// @Description  Opens a rental when the game still has a free unit. The price is frozen at days x pricePerDay.
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        payload  body  CreateRentalReq  true  "Rental payload"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any "invalid input or no units to rent"
// @Failure      404  {object}  map[string]any "customer or game not found"
// @Failure      500  {object}  map[string]any "internal server error"
// @Router       /rentals [post]
func (h *Controller) Create(c echo.Context) error {
	var req CreateRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := c.Validate(&req); err != nil {
		h.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	id, err := h.Svc.Create(c.Request().Context(), req.CustomerID, req.GameID, req.DaysRented)
	if err != nil {
		return httperr.Write(c, h.Log, "rental create", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// Return a rental
// @Summary      Return a game
// @Description  Closes an open rental today and charges the delay fee at the game's current price
// @Tags         rentals
// @Produce      json
// @Param        id   path      int  true  "rental id"
// @Success      200  {object}  model.Rental
// @Failure      400  {object}  map[string]any "rental already finalized"
// @Failure      404  {object}  map[string]any "rental not found"
// @Router       /rentals/{id}/return [post]
func (h *Controller) Return(c echo.Context) error {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	out, err := h.Svc.Return(c.Request().Context(), id)
	if err != nil {
		return httperr.Write(c, h.Log, "rental return", err)
	}
	return c.JSON(http.StatusOK, out)
}

// DELETE /rentals/:id
func (h *Controller) Delete(c echo.Context) error {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return httperr.Write(c, h.Log, "rental delete", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}

// List rentals
// @Summary      List rentals
// @Tags         rentals
// @Produce      json
// @Param        customerId  query  int  false  "only this customer's rentals"
// @Param        gameId      query  int  false  "only rentals of this game"
// @Success      200  {array}   model.RentalView
// @Failure      400  {object}  map[string]any
// @Router       /rentals [get]
func (h *Controller) List(c echo.Context) error {
	var f model.RentalFilter
	for _, q := range []struct {
		name string
		dst  *int64
	}{
		{"customerId", &f.CustomerID},
		{"gameId", &f.GameID},
	} {
		raw := c.QueryParam(q.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid " + q.name})
		}
		*q.dst = v
	}

	rows, err := h.Svc.List(c.Request().Context(), f)
	if err != nil {
		return httperr.Write(c, h.Log, "rental list", err)
	}
	if rows == nil {
		rows = []model.RentalView{}
	}
	return c.JSON(http.StatusOK, rows)
}
