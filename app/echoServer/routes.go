package echoServer

import (
	"boardcamp/app/echoServer/controller/customer"
	"boardcamp/app/echoServer/controller/game"
	"boardcamp/app/echoServer/controller/rental"

	"github.com/labstack/echo/v4"
)

type C struct {
	Customer *customer.Controller
	Game     *game.Controller
	Rental   *rental.Controller
}

func Register(e *echo.Echo, c C) {
	// Customers
	e.GET("/customers", c.Customer.List)
	e.GET("/customers/:id", c.Customer.Detail)
	e.POST("/customers", c.Customer.Create)
	e.PUT("/customers/:id", c.Customer.Update)

	// Games
	e.GET("/games", c.Game.List)
	e.GET("/games/:id", c.Game.Detail)
	e.POST("/games", c.Game.Create)

	// Rentals
	e.GET("/rentals", c.Rental.List)
	e.POST("/rentals", c.Rental.Create)
	e.POST("/rentals/:id/return", c.Rental.Return)
	e.DELETE("/rentals/:id", c.Rental.Delete)
}
