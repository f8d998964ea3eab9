package customer

import (
	"log/slog"
	"net/http"

	"boardcamp/app/echoServer/controller/httperr"
	"boardcamp/model"
	customersvc "boardcamp/service/customer"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc customersvc.Service
	Log *slog.Logger
}

// List customers
// @Summary      List customers
// @Description  Lists customers, optionally only those whose cpf starts with the given prefix
// @Tags         customers
// @Produce      json
// @Param        cpf  query  string  false  "cpf prefix"
// @Success      200  {array}   model.Customer
// @Failure      500  {object}  map[string]any "internal server error"
// @Router       /customers [get]
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context(), c.QueryParam("cpf"))
	if err != nil {
		return httperr.Write(c, h.Log, "customer list", err)
	}
	if rows == nil {
		rows = []model.Customer{}
	}
	return c.JSON(http.StatusOK, rows)
}

// Detail of one customer
// @Summary      Get customer
// @Tags         customers
// @Produce      json
// @Param        id   path      int  true  "customer id"
// @Success      200  {object}  model.Customer
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any "customer not found"
// @Router       /customers/{id} [get]
func (h *Controller) Detail(c echo.Context) error {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	row, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		return httperr.Write(c, h.Log, "customer detail", err)
	}
	return c.JSON(http.StatusOK, row)
}

// Create a customer
// @Summary      Create customer
// @Description  Registers a customer; cpf must be unique
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        payload  body  model.CustomerInput  true  "Customer payload"
// @Success      201  {object}  model.Customer
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any "cpf already registered"
// @Failure      500  {object}  map[string]any "internal server error"
// @Router       /customers [post]
func (h *Controller) Create(c echo.Context) error {
	var req model.CustomerInput
	if err := c.Bind(&req); err != nil {
		h.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	out, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		return httperr.Write(c, h.Log, "customer create", err)
	}
	return c.JSON(http.StatusCreated, out)
}

// Update a customer
// @Summary      Update customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id       path  int                  true  "customer id"
// @Param        payload  body  model.CustomerInput  true  "Customer payload"
// @Success      200  {object}  model.Customer
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any "customer not found"
// @Failure      409  {object}  map[string]any "cpf already registered"
// @Router       /customers/{id} [put]
func (h *Controller) Update(c echo.Context) error {
	id, ok := httperr.ParamID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req model.CustomerInput
	if err := c.Bind(&req); err != nil {
		h.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	out, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return httperr.Write(c, h.Log, "customer update", err)
	}
	return c.JSON(http.StatusOK, out)
}
