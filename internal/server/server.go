package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func Start(addr string, supplierH *handler.SupplierHandler, productH *handler.ProductHandler) error {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	RegisterRoutes(e, supplierH, productH)
	return e.Start(addr)
}
