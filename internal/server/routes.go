package server

import (
	"net/http"

	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, supplierH *handler.SupplierHandler, productH *handler.ProductHandler) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "inventory api"})
	})

	supplierH.RegisterRoutes(e)
	productH.RegisterRoutes(e)
}
